package notify

import (
	"context"
	"fmt"
	"io"
	"os"
)

// ConsoleNotifier prints notifications to a writer. It is the local fallback
// channel and always succeeds.
type ConsoleNotifier struct {
	Writer io.Writer
}

// NewConsoleNotifier creates a console notifier writing to stdout.
func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{Writer: os.Stdout}
}

// Notify prints the notification.
func (c *ConsoleNotifier) Notify(_ context.Context, title, message string) error {
	w := c.Writer
	if w == nil {
		w = os.Stdout
	}
	_, err := fmt.Fprintf(w, "● %s: %s\n", title, message)
	return err
}
