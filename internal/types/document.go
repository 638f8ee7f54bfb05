package types

type (
	// Document is the combined text of every markdown file under a folder.
	Document struct {
		Root  string   `json:"root"`
		Text  string   `json:"text"`
		Files []string `json:"files"` // relative paths, in output order
	}

	// SaveResult describes a combined document written into the vault.
	SaveResult struct {
		Path  string `json:"path"`
		Count int    `json:"count"`
		URI   string `json:"uri"`
	}
)

// Count returns the number of files that contributed to the document.
func (d Document) Count() int {
	return len(d.Files)
}
