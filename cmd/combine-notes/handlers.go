package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/taigrr/combine-notes/internal/picker"
	"github.com/taigrr/combine-notes/internal/sink"
	"go.uber.org/zap"
)

func handleCombine(ctx context.Context, req *mcp.CallToolRequest, input CombineInput) (*mcp.CallToolResult, CombineOutput, error) {
	root, err := lookupFolder(strings.TrimSpace(input.Folder))
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, CombineOutput{}, err
	}

	doc, err := combiner.Combine(ctx, root)
	if err != nil {
		logger.Error("Failed to combine notes", zap.String("root", root.Path), zap.Error(err))
		return &mcp.CallToolResult{IsError: true}, CombineOutput{}, err
	}

	return nil, CombineOutput{
		Text:  doc.Text,
		Files: doc.Files,
		Count: doc.Count(),
	}, nil
}

func handleSave(ctx context.Context, req *mcp.CallToolRequest, input SaveInput) (*mcp.CallToolResult, SaveOutput, error) {
	root, err := lookupFolder(strings.TrimSpace(input.Folder))
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, SaveOutput{}, err
	}

	fileSink := sink.NewFileSink(vaultService, appSettings.OutputFolder, time.Now())
	if _, err := sink.Run(ctx, combiner, root, fileSink, sink.NewConsoleNotifier(os.Stderr), logger); err != nil {
		return &mcp.CallToolResult{IsError: true}, SaveOutput{}, err
	}

	res := fileSink.Result()
	return nil, SaveOutput{
		Path:  res.Path,
		Count: res.Count,
		URI:   res.URI,
	}, nil
}

func handleFolders(ctx context.Context, req *mcp.CallToolRequest, input FoldersInput) (*mcp.CallToolResult, FoldersOutput, error) {
	folders, err := vaultService.ListFolders(ctx)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, FoldersOutput{}, err
	}

	ranked := picker.Rank(folders, input.Query)
	if ranked == nil {
		ranked = []string{}
	}
	return nil, FoldersOutput{Folders: ranked}, nil
}
