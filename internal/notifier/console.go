package notifier

import (
	"fmt"
	"io"
	"strings"
)

// Notifier delivers human-readable messages.
type Notifier interface {
	Send(text string) error
}

// ConsoleNotifier writes messages to a terminal or any other writer.
type ConsoleNotifier struct {
	W io.Writer
}

// NewConsoleNotifier creates a notifier writing to w.
func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{W: w}
}

// Send writes text followed by a newline.
func (c *ConsoleNotifier) Send(text string) error {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if _, err := io.WriteString(c.W, text); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}
