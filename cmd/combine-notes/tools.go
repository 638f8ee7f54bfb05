package main

import "github.com/modelcontextprotocol/go-sdk/mcp"

type (
	// CombineInput contains parameters for combining a folder.
	CombineInput struct {
		Folder string `json:"folder,omitempty" jsonschema:"Folder path relative to vault root (default: the whole vault)"`
	}

	// CombineOutput contains the combined document.
	CombineOutput struct {
		Text  string   `json:"text"`
		Files []string `json:"files"`
		Count int      `json:"count"`
	}

	// SaveInput contains parameters for saving a combined folder.
	SaveInput struct {
		Folder string `json:"folder,omitempty" jsonschema:"Folder path relative to vault root (default: the whole vault)"`
	}

	// SaveOutput describes the file that was written.
	SaveOutput struct {
		Path  string `json:"path"`
		Count int    `json:"count"`
		URI   string `json:"uri"`
	}

	// FoldersInput contains parameters for listing folders.
	FoldersInput struct {
		Query string `json:"query,omitempty" jsonschema:"Fuzzy search over folder paths (default: list all)"`
	}

	// FoldersOutput lists matching folders.
	FoldersOutput struct {
		Folders []string `json:"folders"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "combine",
		Description: "Combine every markdown note below a folder into one document ordered by path. Each note is preceded by a '# Document: <relative path>' header.",
	}, handleCombine)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "save",
		Description: "Combine a folder and save the result as a new note in the configured output folder. Returns the vault path and an obsidian:// link.",
	}, handleSave)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "folders",
		Description: "List vault folders. With a query, folders are fuzzy matched and sorted best first.",
	}, handleFolders)
}
