// Package sink delivers combined documents to files, the clipboard or a preview.
package sink

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/taigrr/combine-notes/internal/combine"
	"github.com/taigrr/combine-notes/internal/types"
	"go.uber.org/zap"
)

// Sink receives the combined document for a folder.
type Sink interface {
	// Exclude returns the vault path the sink is about to create, or "".
	Exclude(root types.Folder) string
	// Deliver consumes the document and returns a message for the user.
	Deliver(ctx context.Context, root types.Folder, doc types.Document) (string, error)
}

// Notifier shows short messages to the user.
type Notifier interface {
	Notify(msg string)
}

// ConsoleNotifier prints one line per notification.
type ConsoleNotifier struct {
	w io.Writer
}

// NewConsoleNotifier creates a notifier writing to w.
func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{w: w}
}

// Notify implements Notifier.
func (n *ConsoleNotifier) Notify(msg string) {
	fmt.Fprintln(n.w, msg)
}

// Run combines the notes under root and hands the result to s. Every outcome
// produces exactly one notification.
func Run(ctx context.Context, c *combine.Combiner, root types.Folder, s Sink, n Notifier, logger *zap.Logger) (types.Document, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("root", root.Path))

	doc, err := c.Combine(ctx, root, combine.Exclude(s.Exclude(root)))
	if errors.Is(err, combine.ErrNothingToCombine) {
		n.Notify(fmt.Sprintf("No markdown files found in %s", displayName(root)))
		logger.Info("Nothing to combine")
		return types.Document{}, err
	}
	if err != nil {
		n.Notify(fmt.Sprintf("Failed to combine notes: %v", err))
		logger.Error("Failed to combine notes", zap.Error(err))
		return types.Document{}, err
	}

	msg, err := s.Deliver(ctx, root, doc)
	if err != nil {
		n.Notify(fmt.Sprintf("Failed to combine notes: %v", err))
		logger.Error("Failed to deliver combined notes", zap.Error(err))
		return types.Document{}, err
	}

	n.Notify(msg)
	logger.Info("Combined notes", zap.Int("count", doc.Count()))
	return doc, nil
}

func displayName(root types.Folder) string {
	if root.IsRoot() {
		return "the vault root"
	}
	return root.Path
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
