package doctor

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/chatbox/internal/core/chat"
	"github.com/hay-kot/chatbox/internal/core/config"
)

func TestConfigCheck(t *testing.T) {
	t.Run("nil config fails", func(t *testing.T) {
		result := NewConfigCheck("", nil).Run(context.Background())
		require.Len(t, result.Items, 1)
		assert.Equal(t, StatusFail, result.Status)
	})

	t.Run("default config passes", func(t *testing.T) {
		cfg := config.DefaultConfig()
		result := NewConfigCheck("", &cfg).Run(context.Background())

		assert.Equal(t, "Configuration", result.Name)
		assert.Equal(t, StatusPass, result.Status)
		require.Len(t, result.Items, 2)
		assert.Equal(t, "built-in defaults", result.Items[0].Detail)
		assert.Equal(t, "Settings", result.Items[1].Label)
	})

	t.Run("reports the config path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		cfg := config.DefaultConfig()

		result := NewConfigCheck(path, &cfg).Run(context.Background())
		assert.Contains(t, result.Items[0].Detail, "not found, using defaults")

		require.NoError(t, os.WriteFile(path, []byte("chat: {}\n"), 0o644))
		result = NewConfigCheck(path, &cfg).Run(context.Background())
		assert.Equal(t, path, result.Items[0].Detail)
	})

	t.Run("field errors are itemized", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.UI.StartRoute = "/nowhere"
		cfg.UI.InputMaxHeight = 0

		result := NewConfigCheck("", &cfg).Run(context.Background())
		assert.Equal(t, StatusFail, result.Status)

		var labels []string
		for _, item := range result.Items[1:] {
			assert.Equal(t, StatusFail, item.Status)
			labels = append(labels, item.Label)
		}
		assert.ElementsMatch(t, []string{"ui.start_route", "ui.input_max_height"}, labels)
	})

	t.Run("warnings are labeled by key", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Chat.Seed = 42

		result := NewConfigCheck("", &cfg).Run(context.Background())
		assert.Equal(t, StatusWarn, result.Status)
		require.Len(t, result.Items, 2)
		assert.Equal(t, "chat.seed", result.Items[1].Label)
	})
}

type fixedSource int

func (f fixedSource) IntN(int) int { return int(f) }

func TestRepliesCheck(t *testing.T) {
	t.Run("default table is fully covered", func(t *testing.T) {
		result := NewRepliesCheck(nil, nil).Run(context.Background())

		require.Len(t, result.Items, 2)
		assert.Equal(t, "4 replies", result.Items[0].Detail)
		assert.Equal(t, StatusPass, result.Items[1].Status)
	})

	t.Run("unreachable replies warn", func(t *testing.T) {
		result := NewRepliesCheck(nil, fixedSource(0)).Run(context.Background())

		require.Len(t, result.Items, 2)
		assert.Equal(t, StatusWarn, result.Items[1].Status)
		assert.Contains(t, result.Items[1].Detail, "1/4")
	})

	t.Run("failing draw fails", func(t *testing.T) {
		table := []chat.MockResponse{{Content: "only", TokenLength: 4}}
		result := NewRepliesCheck(table, fixedSource(5)).Run(context.Background())

		require.Len(t, result.Items, 2)
		assert.Equal(t, StatusFail, result.Items[1].Status)
	})
}

func TestTerminalCheck(t *testing.T) {
	newCheck := func(tty bool, w, h int, err error) *TerminalCheck {
		return &TerminalCheck{
			isTerminal: func(int) bool { return tty },
			getSize:    func(int) (int, int, error) { return w, h, err },
		}
	}

	tests := []struct {
		name   string
		check  *TerminalCheck
		status []Status
	}{
		{name: "not a terminal", check: newCheck(false, 0, 0, nil), status: []Status{StatusWarn}},
		{name: "large enough", check: newCheck(true, 120, 40, nil), status: []Status{StatusPass, StatusPass}},
		{name: "too small", check: newCheck(true, 40, 10, nil), status: []Status{StatusPass, StatusWarn}},
		{name: "size unavailable", check: newCheck(true, 0, 0, errors.New("no size")), status: []Status{StatusPass, StatusWarn}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.check.Run(context.Background())

			got := make([]Status, len(result.Items))
			for i, item := range result.Items {
				got[i] = item.Status
			}
			assert.Equal(t, tt.status, got)
		})
	}
}

func TestRun(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Chat.Seed = 7

	report := Run(context.Background(),
		NewConfigCheck("", &cfg),
		NewRepliesCheck(nil, nil),
		NewRepliesCheck([]chat.MockResponse{{Content: "only"}}, fixedSource(3)),
	)

	require.Len(t, report.Checks, 3)
	assert.Equal(t, StatusWarn, report.Checks[0].Status)
	assert.Equal(t, StatusPass, report.Checks[1].Status)
	assert.Equal(t, StatusFail, report.Checks[2].Status)

	assert.Equal(t, 1, report.Passed)
	assert.Equal(t, 1, report.Warned)
	assert.Equal(t, 1, report.Failed)
	assert.False(t, report.Healthy())

	out, err := json.Marshal(report.Checks[0])
	require.NoError(t, err)
	assert.Contains(t, string(out), `"status":"warn"`)
}
