// Package combine concatenates the markdown notes under a folder into one document.
package combine

import (
	"context"
	"cmp"
	"errors"
	"slices"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/taigrr/combine-notes/internal/pathfilter"
	"github.com/taigrr/combine-notes/internal/types"
	"go.uber.org/zap"
)

// Separator opens every block of a combined document.
const Separator = "------------\n"

// ErrNothingToCombine is returned when a folder holds no markdown files.
var ErrNothingToCombine = errors.New("nothing to combine")

// Tree is the read side of the vault the Combiner walks.
type Tree interface {
	Children(ctx context.Context, folder types.Folder) ([]types.Entry, error)
	Read(ctx context.Context, file types.File) (string, error)
}

// Combiner builds combined documents from a Tree.
type Combiner struct {
	tree       Tree
	pathFilter *pathfilter.PathFilter
	logger     *zap.Logger
}

// New creates a Combiner. A nil filter or logger gets a default.
func New(tree Tree, pf *pathfilter.PathFilter, logger *zap.Logger) *Combiner {
	if pf == nil {
		pf = pathfilter.New(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Combiner{
		tree:       tree,
		pathFilter: pf,
		logger:     logger,
	}
}

type options struct {
	exclude string
}

// Option adjusts a single Combine call.
type Option func(*options)

// Exclude skips the file at the given vault path. Sinks that write into the
// vault use it so the output never includes itself.
func Exclude(path string) Option {
	return func(o *options) {
		o.exclude = path
	}
}

// CollectFiles returns every markdown file below root in traversal order.
func (c *Combiner) CollectFiles(ctx context.Context, root types.Folder) ([]types.File, error) {
	children, err := c.tree.Children(ctx, root)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list folder", goerr.V("folder", root.Path))
	}

	var files []types.File
	for _, child := range children {
		switch {
		case child.Folder != nil:
			nested, err := c.CollectFiles(ctx, *child.Folder)
			if err != nil {
				return nil, err
			}
			files = append(files, nested...)
		case child.File != nil && c.pathFilter.IsMarkdown(child.File.Extension):
			files = append(files, *child.File)
		}
	}

	return files, nil
}

// Combine concatenates the markdown files under root, ordered by ComparePaths
// on the full path.
func (c *Combiner) Combine(ctx context.Context, root types.Folder, opts ...Option) (types.Document, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	files, err := c.CollectFiles(ctx, root)
	if err != nil {
		return types.Document{}, err
	}

	slices.SortFunc(files, func(a, b types.File) int {
		return ComparePaths(a.Path, b.Path)
	})

	if len(files) == 0 {
		return types.Document{}, ErrNothingToCombine
	}

	c.logger.Debug("Collected markdown files",
		zap.String("root", root.Path),
		zap.Int("count", len(files)))

	var text strings.Builder
	included := make([]string, 0, len(files))
	for _, file := range files {
		if o.exclude != "" && file.Path == o.exclude {
			c.logger.Debug("Skipping combine output", zap.String("path", file.Path))
			continue
		}

		content, err := c.tree.Read(ctx, file)
		if err != nil {
			return types.Document{}, goerr.Wrap(err, "failed to read note", goerr.V("path", file.Path))
		}

		relativePath := RelativePath(root, file.Path)
		text.WriteString(FormatBlock(relativePath, content))
		included = append(included, relativePath)
	}

	if len(included) == 0 {
		return types.Document{}, ErrNothingToCombine
	}

	return types.Document{
		Root:  root.Path,
		Text:  text.String(),
		Files: included,
	}, nil
}

// ComparePaths orders paths ignoring case, falling back to byte order so
// that paths differing only in case still have a fixed order.
func ComparePaths(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return cmp.Compare(a, b)
}

// RelativePath returns filePath relative to root.
// For the vault root the full path is returned unchanged.
func RelativePath(root types.Folder, filePath string) string {
	if root.IsRoot() {
		return filePath
	}

	prefix := root.Path + "/"
	if len(filePath) < len(prefix) {
		return filePath
	}
	return filePath[len(prefix):]
}

// FormatBlock renders one file of a combined document.
func FormatBlock(relativePath, content string) string {
	return Separator + "# Document: " + relativePath + "\n\n" + content + "\n\n"
}
