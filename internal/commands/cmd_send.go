package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/chatbox/internal/core/chat"
	"github.com/hay-kot/chatbox/internal/printer"
)

type SendCmd struct {
	flags *Flags
	json  bool
	seed  uint64
}

// NewSendCmd creates a new send command
func NewSendCmd(flags *Flags) *SendCmd {
	return &SendCmd{flags: flags}
}

// Register adds the send command to the application
func (cmd *SendCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "send",
		Usage:     "Send messages to the mock assistant and print the conversation",
		UsageText: "chatbox send [options] <message>...",
		Description: `Each argument is submitted as one user message and answered with a mock reply.
With no arguments a single message is read from stdin.

The conversation starts empty on every run.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print the conversation as JSON",
				Destination: &cmd.json,
			},
			&cli.Uint64Flag{
				Name:        "seed",
				Usage:       "seed for reply selection (overrides chat.seed, 0 keeps it)",
				Destination: &cmd.seed,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *SendCmd) run(_ context.Context, c *cli.Command) error {
	texts, err := cmd.readMessages(c)
	if err != nil {
		return err
	}

	conversation := cmd.flags.NewChat(cmd.seed, log.With().Str("component", "chat").Logger())

	for _, text := range texts {
		if err := conversation.Submit(text); err != nil {
			return fmt.Errorf("submit message: %w", err)
		}
	}

	out := c.Root().Writer
	msgs := conversation.Messages()

	if cmd.json {
		return writeJSON(out, msgs)
	}

	cmd.printConversation(out, msgs)
	return nil
}

func (cmd *SendCmd) printConversation(out io.Writer, msgs []chat.Message) {
	p := printer.New(out).WithColor(isTerminal(out))
	for i, msg := range msgs {
		if i > 0 {
			p.Printf("")
		}
		p.Message(msg, cmd.flags.Config.Chat.TimestampFormat)
	}
}

// readMessages returns the positional arguments, or the whole of stdin as one
// message when there are none.
func (cmd *SendCmd) readMessages(c *cli.Command) ([]string, error) {
	if args := c.Args().Slice(); len(args) > 0 {
		return args, nil
	}

	reader := c.Root().Reader
	if reader == nil {
		reader = os.Stdin
	}
	if f, ok := reader.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, fmt.Errorf("no message provided (stdin is a terminal); pass a message or pipe one in")
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	return []string{strings.TrimRight(string(data), "\r\n")}, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// isTerminal reports whether w writes to a terminal, used to decide on color.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
