// Package picker provides fuzzy folder search for choosing what to combine.
package picker

import (
	"errors"
	"path"
	"slices"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sahilm/fuzzy"
	"github.com/taigrr/combine-notes/internal/types"
)

// ErrNoMatch is returned when no folder matches the search query.
var ErrNoMatch = errors.New("no folder matches the search")

// Rank orders folders by how well they match query, best first. A folder
// equal to the query always comes first.
// An empty query keeps every folder in its original order.
func Rank(folders []string, query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return append([]string(nil), folders...)
	}

	matches := fuzzy.Find(query, folders)
	ranked := make([]string, 0, len(matches)+1)
	if slices.Contains(folders, query) {
		ranked = append(ranked, query)
	}
	for _, m := range matches {
		if m.Str == query {
			continue
		}
		ranked = append(ranked, m.Str)
	}
	return ranked
}

// InitialQuery returns the text the picker search starts with. When
// PreselectParentFolder is set it is the folder holding the active file.
func InitialQuery(s types.Settings, activeFile string) string {
	if !s.PreselectParentFolder {
		return ""
	}

	activeFile = strings.Trim(strings.ReplaceAll(strings.TrimSpace(activeFile), "\\", "/"), "/")
	if activeFile == "" {
		return ""
	}

	parent := path.Dir(activeFile)
	if parent == "." {
		return types.RootPath
	}
	return parent
}

// Pick asks the user for a search query, prefilled with initialQuery, and then
// for one of the matching folders.
func Pick(folders []string, initialQuery string) (string, error) {
	query := initialQuery
	err := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Search folders").
			Placeholder("type part of a folder path").
			Value(&query),
	)).Run()
	if err != nil {
		return "", goerr.Wrap(err, "folder search cancelled")
	}

	ranked := Rank(folders, query)
	if len(ranked) == 0 {
		return "", goerr.Wrap(ErrNoMatch, "no folder to combine", goerr.V("query", query))
	}
	if len(ranked) == 1 {
		return ranked[0], nil
	}

	choice := ranked[0]
	err = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Combine notes in folder").
			Options(huh.NewOptions(ranked...)...).
			Filtering(true).
			Value(&choice),
	)).Run()
	if err != nil {
		return "", goerr.Wrap(err, "folder selection cancelled")
	}

	return choice, nil
}
