package sink

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/taigrr/combine-notes/internal/types"
	"github.com/taigrr/combine-notes/internal/uri"
)

// TimestampLayout formats the local time prefix of saved documents (YYYY-MM-DD-HHmm).
const TimestampLayout = "2006-01-02-1504"

// Vault is the write side of the vault the file sink needs.
type Vault interface {
	Name() string
	Resolve(path string) (types.Entry, bool)
	CreateDirectory(path string) error
	CreateFile(path, content string) (types.File, error)
}

// FileSink saves the document as a new file in the vault.
type FileSink struct {
	vault        Vault
	outputFolder string
	at           time.Time
	result       types.SaveResult
}

// NewFileSink creates a file sink writing below outputFolder. The time at
// names the file and is fixed for the lifetime of the sink.
func NewFileSink(v Vault, outputFolder string, at time.Time) *FileSink {
	return &FileSink{
		vault:        v,
		outputFolder: cleanFolder(outputFolder),
		at:           at,
	}
}

func cleanFolder(folder string) string {
	folder = strings.ReplaceAll(strings.TrimSpace(folder), "\\", "/")
	return strings.Trim(path.Clean("/"+folder), "/")
}

// OutputPath returns <outputFolder>/<YYYY-MM-DD-HHmm>_<rootName>-combined.md.
func OutputPath(outputFolder string, at time.Time, rootName string) string {
	name := at.Format(TimestampLayout) + "_" + rootName + "-combined.md"
	return path.Join(cleanFolder(outputFolder), name)
}

// Exclude implements Sink.
func (f *FileSink) Exclude(root types.Folder) string {
	return OutputPath(f.outputFolder, f.at, root.Name)
}

// Deliver implements Sink. The file is created only once the full document
// exists, and creation fails rather than overwrite an existing file.
func (f *FileSink) Deliver(ctx context.Context, root types.Folder, doc types.Document) (string, error) {
	if f.outputFolder != "" {
		entry, ok := f.vault.Resolve(f.outputFolder)
		switch {
		case !ok:
			if err := f.vault.CreateDirectory(f.outputFolder); err != nil {
				return "", goerr.Wrap(err, "failed to create output folder", goerr.V("folder", f.outputFolder))
			}
		case entry.Folder == nil:
			return "", goerr.New("output folder is not a folder", goerr.V("folder", f.outputFolder))
		}
	}

	target := f.Exclude(root)
	file, err := f.vault.CreateFile(target, doc.Text)
	if err != nil {
		return "", goerr.Wrap(err, "failed to save combined notes", goerr.V("path", target))
	}

	f.result = types.SaveResult{
		Path:  file.Path,
		Count: doc.Count(),
		URI:   uri.Open(f.vault.Name(), file.Path),
	}

	return fmt.Sprintf("Combined %s into %s (%s)", plural(doc.Count(), "note"), file.Path, f.result.URI), nil
}

// Result returns what the last successful Deliver wrote.
func (f *FileSink) Result() types.SaveResult {
	return f.result
}
