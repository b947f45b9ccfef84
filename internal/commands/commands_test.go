package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/chatbox/internal/core/chat"
	"github.com/hay-kot/chatbox/internal/core/config"
)

func testFlags(mutate func(*config.Config)) *Flags {
	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return &Flags{Config: &cfg}
}

// runApp runs args against an app with only the given command registered.
func runApp(t *testing.T, stdin string, register func(*cli.Command) *cli.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := &cli.Command{
		Name:   "chatbox",
		Writer: &out,
		Reader: strings.NewReader(stdin),
		// Keep cli.Exit errors from ending the test binary.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
	app = register(app)

	err := app.Run(context.Background(), append([]string{"chatbox"}, args...))
	return out.String(), err
}

func TestSendCmd_JSON(t *testing.T) {
	flags := testFlags(nil)

	out, err := runApp(t, "", NewSendCmd(flags).Register, "send", "--json", "--seed", "7", "hello", "again")
	require.NoError(t, err)

	var msgs []chat.Message
	require.NoError(t, json.Unmarshal([]byte(out), &msgs))
	require.Len(t, msgs, 4)

	assert.Equal(t, "hello", msgs[0].Content)
	assert.Equal(t, 5, msgs[0].TokenLength)
	assert.Equal(t, chat.SenderUser, msgs[0].Sender)
	assert.Equal(t, chat.SenderAI, msgs[1].Sender)
	assert.Equal(t, "again", msgs[2].Content)
	assert.Equal(t, chat.SenderAI, msgs[3].Sender)

	for _, msg := range msgs {
		assert.NotEmpty(t, msg.ID)
		assert.False(t, msg.CreatedAt.IsZero())
	}
}

func TestSendCmd_SeedIsReproducible(t *testing.T) {
	replies := func() []string {
		out, err := runApp(t, "", NewSendCmd(testFlags(nil)).Register, "send", "--json", "--seed", "11", "a", "b", "c")
		require.NoError(t, err)

		var msgs []chat.Message
		require.NoError(t, json.Unmarshal([]byte(out), &msgs))

		var got []string
		for _, msg := range msgs {
			if msg.Sender == chat.SenderAI {
				got = append(got, msg.Content)
			}
		}
		return got
	}

	assert.Equal(t, replies(), replies())
}

func TestSendCmd_Stdin(t *testing.T) {
	out, err := runApp(t, "from a pipe\n", NewSendCmd(testFlags(nil)).Register, "send", "--json")
	require.NoError(t, err)

	var msgs []chat.Message
	require.NoError(t, json.Unmarshal([]byte(out), &msgs))
	require.Len(t, msgs, 2)
	assert.Equal(t, "from a pipe", msgs[0].Content)
}

func TestSendCmd_Text(t *testing.T) {
	flags := testFlags(func(cfg *config.Config) {
		cfg.Chat.Responses = []chat.MockResponse{{Content: "pong", TokenLength: 1}}
	})

	out, err := runApp(t, "", NewSendCmd(flags).Register, "send", "ping")
	require.NoError(t, err)

	assert.Contains(t, out, "You • ")
	assert.Contains(t, out, "• 4 tokens\n  ping\n")
	assert.Contains(t, out, "Assistant • ")
	assert.Contains(t, out, "• 1 tokens\n  pong\n")
	assert.NotContains(t, out, "\033[", "no color when not writing to a terminal")
}

func TestSendCmd_RejectEmpty(t *testing.T) {
	flags := testFlags(func(cfg *config.Config) { cfg.Chat.RejectEmpty = true })

	_, err := runApp(t, "", NewSendCmd(flags).Register, "send", "   ")
	require.ErrorIs(t, err, chat.ErrEmptyMessage)
}

func TestRepliesCmd(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		out, err := runApp(t, "", NewRepliesCmd(testFlags(nil)).Register, "replies")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 5)
		assert.Contains(t, lines[0], "TOKENS")
		assert.Contains(t, lines[4], "76")
	})

	t.Run("json", func(t *testing.T) {
		out, err := runApp(t, "", NewRepliesCmd(testFlags(nil)).Register, "replies", "--json")
		require.NoError(t, err)

		var table []chat.MockResponse
		require.NoError(t, json.Unmarshal([]byte(out), &table))
		assert.Equal(t, chat.DefaultResponses(), table)
	})
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "a b", preview("a\n  b"))

	long := strings.Repeat("x", replyPreviewWidth+10)
	got := preview(long)
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.Len(t, []rune(got), replyPreviewWidth)
}

func TestConfigValidateCmd(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		out, err := runApp(t, "", NewConfigValidateCmd(testFlags(nil)).Register, "config", "validate", "--format", "json")
		require.NoError(t, err)

		var got struct {
			Valid     bool `json:"valid"`
			FileFound bool `json:"file_found"`
			Replies   int  `json:"replies"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.True(t, got.Valid)
		assert.False(t, got.FileFound)
		assert.Equal(t, 4, got.Replies)
	})

	t.Run("invalid text exits non-zero", func(t *testing.T) {
		flags := testFlags(func(cfg *config.Config) { cfg.UI.InputMaxHeight = -1 })

		_, err := runApp(t, "", NewConfigValidateCmd(flags).Register, "config", "validate")
		var exit cli.ExitCoder
		require.ErrorAs(t, err, &exit)
		assert.Equal(t, 1, exit.ExitCode())
	})

	t.Run("invalid", func(t *testing.T) {
		flags := testFlags(func(cfg *config.Config) { cfg.UI.StartRoute = "/settings" })

		out, err := runApp(t, "", NewConfigValidateCmd(flags).Register, "config", "validate", "--format", "json")
		require.NoError(t, err)

		var got struct {
			Valid  bool `json:"valid"`
			Errors []struct {
				Field string `json:"field"`
			} `json:"errors"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.False(t, got.Valid)
		require.Len(t, got.Errors, 1)
		assert.Equal(t, "ui.start_route", got.Errors[0].Field)
	})
}

func TestDoctorCmd_JSON(t *testing.T) {
	t.Run("defaults are healthy", func(t *testing.T) {
		out, err := runApp(t, "", NewDoctorCmd(testFlags(nil)).Register, "doctor", "--format", "json")
		require.NoError(t, err)

		var got struct {
			Healthy bool `json:"healthy"`
			Failed  int  `json:"failed"`
			Checks  []struct {
				Name   string `json:"name"`
				Status string `json:"status"`
			} `json:"checks"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.True(t, got.Healthy)
		assert.Zero(t, got.Failed)

		names := make([]string, len(got.Checks))
		for i, c := range got.Checks {
			names[i] = c.Name
		}
		assert.Equal(t, []string{"Configuration", "Mock Replies", "Terminal"}, names)
		assert.Equal(t, "ok", got.Checks[0].Status)
	})

	t.Run("invalid config fails", func(t *testing.T) {
		flags := testFlags(func(cfg *config.Config) { cfg.UI.StartRoute = "/settings" })

		out, err := runApp(t, "", NewDoctorCmd(flags).Register, "doctor", "--format", "json")
		var exit cli.ExitCoder
		require.ErrorAs(t, err, &exit)
		assert.Contains(t, out, `"healthy": false`)
	})
}
