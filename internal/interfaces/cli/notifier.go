package cli

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/riskibarqy/content-brain/internal/usecase"
)

// TerminalNotifier prints toasts as single lines, usually on stderr.
type TerminalNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewTerminalNotifier(w io.Writer) *TerminalNotifier {
	return &TerminalNotifier{w: w}
}

func (n *TerminalNotifier) Notify(_ context.Context, t usecase.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()

	marker := "[ok]"
	if t.Variant == usecase.VariantDestructive {
		marker = "[error]"
	}
	if t.Description == "" {
		_, _ = fmt.Fprintf(n.w, "%s %s\n", marker, t.Title)
		return
	}
	_, _ = fmt.Fprintf(n.w, "%s %s: %s\n", marker, t.Title, t.Description)
}
