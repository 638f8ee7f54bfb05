package sink

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/m-mizutani/goerr/v2"
	"github.com/taigrr/combine-notes/internal/types"
)

// ClipboardWriter replaces the clipboard contents.
type ClipboardWriter interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

// WriteAll implements ClipboardWriter.
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// ClipboardSink copies the document to the clipboard.
type ClipboardSink struct {
	clipboard ClipboardWriter
}

// NewClipboardSink creates a clipboard sink.
func NewClipboardSink(cb ClipboardWriter) *ClipboardSink {
	return &ClipboardSink{clipboard: cb}
}

// Exclude implements Sink. The clipboard never aliases a vault file.
func (c *ClipboardSink) Exclude(root types.Folder) string {
	return ""
}

// Deliver implements Sink.
func (c *ClipboardSink) Deliver(ctx context.Context, root types.Folder, doc types.Document) (string, error) {
	if err := copyDocument(c.clipboard, doc); err != nil {
		return "", err
	}
	return copiedMessage(doc), nil
}

func copyDocument(cb ClipboardWriter, doc types.Document) error {
	if err := cb.WriteAll(doc.Text); err != nil {
		return goerr.Wrap(err, "failed to copy to clipboard")
	}
	return nil
}

func copiedMessage(doc types.Document) string {
	return fmt.Sprintf("Copied %s to clipboard", plural(doc.Count(), "note"))
}
