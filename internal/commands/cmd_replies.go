package commands

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/mattn/go-runewidth"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/chatbox/internal/core/chat"
)

// replyPreviewWidth is the display width of the reply column.
const replyPreviewWidth = 60

type RepliesCmd struct {
	flags *Flags
	json  bool
}

// NewRepliesCmd creates a new replies command
func NewRepliesCmd(flags *Flags) *RepliesCmd {
	return &RepliesCmd{flags: flags}
}

// Register adds the replies command to the application
func (cmd *RepliesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "replies",
		Usage:       "List the mock reply table",
		UsageText:   "chatbox replies [options]",
		Description: "Displays the replies the mock assistant chooses from: the built-in table, or chat.responses when configured.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print the table as JSON",
				Destination: &cmd.json,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RepliesCmd) run(_ context.Context, c *cli.Command) error {
	table := cmd.flags.Config.ResponseTable()
	out := c.Root().Writer

	if cmd.json {
		return writeJSON(out, table)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "#\tTOKENS\tCHARS\tREPLY")

	for i, r := range table {
		_, _ = fmt.Fprintf(w, "%d\t%d\t%d\t%s\n", i, r.TokenLength, chat.CharCount(r.Content), preview(r.Content))
	}

	return w.Flush()
}

// preview flattens s onto one line and truncates it to the reply column.
func preview(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return runewidth.Truncate(s, replyPreviewWidth, "…")
}
