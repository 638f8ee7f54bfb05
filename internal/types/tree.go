// Package types defines all data structures shared across combine-notes.
package types

// RootPath is the path of the vault root folder.
const RootPath = "/"

type (
	// Folder is a directory node in the vault tree.
	Folder struct {
		Path string `json:"path"`
		Name string `json:"name"`
	}

	// File is a single file in the vault tree.
	File struct {
		Path      string `json:"path"`
		Name      string `json:"name"`
		Extension string `json:"extension"` // without the leading dot
	}

	// Entry is one child of a Folder. Exactly one of Folder or File is set.
	Entry struct {
		Folder *Folder `json:"folder,omitempty"`
		File   *File   `json:"file,omitempty"`
	}
)

// IsRoot reports whether the folder is the vault root.
func (f Folder) IsRoot() bool {
	return f.Path == RootPath
}
