package sink

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/huh"
	"github.com/m-mizutani/goerr/v2"
	"github.com/taigrr/combine-notes/internal/types"
)

const previewWordWrap = 100

// PreviewSink shows the document and offers to copy it.
type PreviewSink struct {
	out         io.Writer
	clipboard   ClipboardWriter
	interactive bool
	render      func(markdown string) (string, error)
	confirm     func(title string) (bool, error)
}

// PreviewOption configures a PreviewSink.
type PreviewOption func(*PreviewSink)

// WithInteractive enables styled rendering and the copy prompt.
func WithInteractive(interactive bool) PreviewOption {
	return func(p *PreviewSink) {
		p.interactive = interactive
	}
}

// WithRenderer overrides how markdown is rendered.
func WithRenderer(render func(string) (string, error)) PreviewOption {
	return func(p *PreviewSink) {
		p.render = render
	}
}

// WithConfirm overrides the copy prompt.
func WithConfirm(confirm func(string) (bool, error)) PreviewOption {
	return func(p *PreviewSink) {
		p.confirm = confirm
	}
}

// NewPreviewSink creates a preview sink writing to out.
func NewPreviewSink(out io.Writer, cb ClipboardWriter, opts ...PreviewOption) *PreviewSink {
	p := &PreviewSink{
		out:       out,
		clipboard: cb,
		confirm:   confirmCopy,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.render == nil {
		p.render = renderPlain
		if p.interactive {
			p.render = renderMarkdown
		}
	}
	return p
}

// Exclude implements Sink.
func (p *PreviewSink) Exclude(root types.Folder) string {
	return ""
}

// Deliver implements Sink.
func (p *PreviewSink) Deliver(ctx context.Context, root types.Folder, doc types.Document) (string, error) {
	rendered, err := p.render(doc.Text)
	if err != nil {
		return "", goerr.Wrap(err, "failed to render preview")
	}

	if _, err := io.WriteString(p.out, rendered); err != nil {
		return "", goerr.Wrap(err, "failed to write preview")
	}

	if !p.interactive {
		return fmt.Sprintf("Previewed %s", plural(doc.Count(), "note")), nil
	}

	copyIt, err := p.confirm(fmt.Sprintf("Copy %s to clipboard?", plural(doc.Count(), "note")))
	if err != nil {
		return "", goerr.Wrap(err, "preview prompt failed")
	}
	if !copyIt {
		return "Preview closed", nil
	}

	if err := copyDocument(p.clipboard, doc); err != nil {
		return "", err
	}
	return copiedMessage(doc), nil
}

func renderPlain(markdown string) (string, error) {
	return markdown, nil
}

func renderMarkdown(markdown string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(previewWordWrap),
	)
	if err != nil {
		return "", err
	}
	return r.Render(markdown)
}

func confirmCopy(title string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Copy").
		Negative("Close").
		Value(&ok).
		Run()
	return ok, err
}
