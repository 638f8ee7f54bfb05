package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/taigrr/combine-notes/internal/combine"
	"github.com/taigrr/combine-notes/internal/picker"
	"github.com/taigrr/combine-notes/internal/settings"
	"github.com/taigrr/combine-notes/internal/sink"
	"github.com/taigrr/combine-notes/internal/types"
)

func newSaveCommand() *cobra.Command {
	return newCombineCommand("save", "Save the combined notes as a new file in the vault",
		func(cmd *cobra.Command) sink.Sink {
			return sink.NewFileSink(vaultService, appSettings.OutputFolder, time.Now())
		})
}

func newCopyCommand() *cobra.Command {
	return newCombineCommand("copy", "Copy the combined notes to the clipboard",
		func(cmd *cobra.Command) sink.Sink {
			return sink.NewClipboardSink(sink.SystemClipboard{})
		})
}

func newPreviewCommand() *cobra.Command {
	return newCombineCommand("preview", "Show the combined notes and offer to copy them",
		func(cmd *cobra.Command) sink.Sink {
			return sink.NewPreviewSink(cmd.OutOrStdout(), sink.SystemClipboard{},
				sink.WithInteractive(isTerminal()))
		})
}

func newCombineCommand(name, short string, newSink func(cmd *cobra.Command) sink.Sink) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " [folder]",
		Short: short,
		Long: short + `.

Without a folder an interactive picker asks for one. With --active the
picker starts from the folder of that note.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := chooseFolder(cmd, args)
			if err != nil {
				return err
			}
			return runCombine(cmd, root, newSink(cmd))
		},
	}
	cmd.Flags().StringVar(&opts.active, "active", "", "vault path of the note currently open, used to preselect its folder")
	return cmd
}

func chooseFolder(cmd *cobra.Command, args []string) (types.Folder, error) {
	if len(args) > 0 {
		return lookupFolder(args[0])
	}

	if !isTerminal() {
		return types.Folder{}, fmt.Errorf("no folder given and no terminal to pick one")
	}

	folders, err := vaultService.ListFolders(cmd.Context())
	if err != nil {
		return types.Folder{}, fmt.Errorf("failed to list folders: %w", err)
	}

	choice, err := picker.Pick(folders, picker.InitialQuery(appSettings, opts.active))
	if err != nil {
		return types.Folder{}, err
	}
	return lookupFolder(choice)
}

func runCombine(cmd *cobra.Command, root types.Folder, s sink.Sink) error {
	notifier := sink.NewConsoleNotifier(cmd.ErrOrStderr())
	_, err := sink.Run(cmd.Context(), combiner, root, s, notifier, logger)
	if errors.Is(err, combine.ErrNothingToCombine) {
		return nil
	}
	return err
}

func newFoldersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "folders [query]",
		Short: "List vault folders, best fuzzy match first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folders, err := vaultService.ListFolders(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list folders: %w", err)
			}

			query := strings.Join(args, " ")
			for _, f := range picker.Rank(folders, query) {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
}

func newSettingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the plugin settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printSettings(cmd, appSettings)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set <key> <value>",
		Short:     "Change one setting (" + strings.Join(settings.Keys(), ", ") + ")",
		Args:      cobra.ExactArgs(2),
		ValidArgs: settings.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := settings.Set(appSettings, args[0], args[1])
			if err != nil {
				return err
			}
			if err := settings.Save(settingsPath, updated); err != nil {
				return err
			}
			appSettings = updated
			printSettings(cmd, appSettings)
			return nil
		},
	})

	return cmd
}

func printSettings(cmd *cobra.Command, s types.Settings) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %s\n", settings.KeyOutputFolder, s.OutputFolder)
	fmt.Fprintf(out, "%s: %t\n", settings.KeyPreselectParentFolder, s.PreselectParentFolder)
	fmt.Fprintf(out, "file: %s\n", settingsPath)
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run an MCP server over stdio",
		Long: `serve exposes the vault through the Model Context Protocol so any
MCP-compatible harness can combine, save and list folders.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := mcp.NewServer(&mcp.Implementation{
				Name:    appName,
				Version: version,
			}, nil)

			registerTools(server)

			if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
				return fmt.Errorf("error running server: %w", err)
			}
			return nil
		},
	}
}
