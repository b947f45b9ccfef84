package doctor

import (
	"context"
	"fmt"

	"golang.org/x/term"
)

// Minimum terminal size for the chat view to be usable.
const (
	MinTerminalWidth  = 60
	MinTerminalHeight = 20
)

// TerminalCheck reports whether the TUI can run on the given file descriptor.
type TerminalCheck struct {
	fd         int
	isTerminal func(fd int) bool
	getSize    func(fd int) (width, height int, err error)
}

// NewTerminalCheck creates a terminal check for fd, usually stdout.
func NewTerminalCheck(fd int) *TerminalCheck {
	return &TerminalCheck{
		fd:         fd,
		isTerminal: term.IsTerminal,
		getSize:    term.GetSize,
	}
}

func (c *TerminalCheck) Name() string {
	return "Terminal"
}

func (c *TerminalCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	if !c.isTerminal(c.fd) {
		result.add("Interactive terminal", StatusWarn, "output is not a terminal; only 'chatbox send' and 'chatbox replies' will work")
		return result
	}

	result.add("Interactive terminal", StatusPass, "")

	width, height, err := c.getSize(c.fd)
	if err != nil {
		result.add("Terminal size", StatusWarn, fmt.Sprintf("unable to read size: %v", err))
		return result
	}

	if width < MinTerminalWidth || height < MinTerminalHeight {
		result.add("Terminal size", StatusWarn, fmt.Sprintf("%dx%d is smaller than the recommended %dx%d", width, height, MinTerminalWidth, MinTerminalHeight))
	} else {
		result.add("Terminal size", StatusPass, fmt.Sprintf("%dx%d", width, height))
	}

	return result
}
