package commands

import (
	"context"
	"encoding/json"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/chatbox/internal/commands/doctor"
	"github.com/hay-kot/chatbox/internal/core/chat"
	"github.com/hay-kot/chatbox/internal/printer"
)

type DoctorCmd struct {
	flags  *Flags
	format string
}

func NewDoctorCmd(flags *Flags) *DoctorCmd {
	return &DoctorCmd{flags: flags}
}

func (cmd *DoctorCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "doctor",
		Usage:       "Run health checks on your chatbox setup",
		UsageText:   "chatbox doctor [options]",
		Description: `Checks that the config file is valid, that every mock reply can be drawn,
and that the terminal is large enough for the chat view.

Exits 1 when a check fails. Warnings do not change the exit code.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *DoctorCmd) run(ctx context.Context, c *cli.Command) error {
	var table []chat.MockResponse
	if cmd.flags.Config != nil {
		table = cmd.flags.Config.ResponseTable()
	}

	report := doctor.Run(ctx,
		doctor.NewConfigCheck(cmd.flags.ConfigPath, cmd.flags.Config),
		doctor.NewRepliesCheck(table, nil),
		doctor.NewTerminalCheck(int(os.Stdout.Fd())),
	)

	if cmd.format == "json" {
		out := struct {
			Healthy bool `json:"healthy"`
			doctor.Report
		}{
			Healthy: report.Healthy(),
			Report:  report,
		}
		enc := json.NewEncoder(c.Root().Writer)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
	} else {
		printReport(printer.Ctx(ctx), report)
	}

	if !report.Healthy() {
		return cli.Exit("", 1)
	}
	return nil
}

// printReport lists every item of each check, then one line per check.
func printReport(p *printer.Printer, report doctor.Report) {
	printStatus := func(status doctor.Status, label, detail string) {
		switch status {
		case doctor.StatusPass:
			p.CheckItem(label, detail)
		case doctor.StatusWarn:
			p.WarnItem(label, detail)
		default:
			p.FailItem(label, detail)
		}
	}

	for _, result := range report.Checks {
		p.Section(result.Name)
		for _, item := range result.Items {
			printStatus(item.Status, item.Label, item.Detail)
		}
		p.Printf("")
	}

	p.Section("Summary")
	for _, result := range report.Checks {
		printStatus(result.Status, result.Name, result.Status.String())
	}
	p.Printf("")

	if report.Healthy() {
		p.Successf("chatbox is ready (%d ok, %d with warnings)", report.Passed, report.Warned)
		return
	}
	p.Errorf("%d of %d checks failed", report.Failed, len(report.Checks))
}
