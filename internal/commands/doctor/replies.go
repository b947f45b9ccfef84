package doctor

import (
	"context"
	"fmt"

	"github.com/hay-kot/chatbox/internal/core/chat"
)

// defaultReplySamples is enough draws to see every entry of a small table.
const defaultReplySamples = 1000

// RepliesCheck draws replies from the mock table and reports whether every
// entry can be produced.
type RepliesCheck struct {
	table   []chat.MockResponse
	rng     chat.RandSource
	samples int
}

// NewRepliesCheck creates a reply table check. A nil rng uses a fixed seed so
// the report is stable between runs.
func NewRepliesCheck(table []chat.MockResponse, rng chat.RandSource) *RepliesCheck {
	if rng == nil {
		rng = chat.NewRandSource(1)
	}
	return &RepliesCheck{
		table:   table,
		rng:     rng,
		samples: defaultReplySamples,
	}
}

func (c *RepliesCheck) Name() string {
	return "Mock Replies"
}

func (c *RepliesCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	replier := chat.NewMockReplier(c.table, c.rng)
	table := replier.Table()

	result.add("Reply table", StatusPass, fmt.Sprintf("%d replies", len(table)))

	seen := make(map[int]bool, len(table))
	for range c.samples {
		resp, err := replier.Reply()
		if err != nil {
			result.add("Reply draw", StatusFail, err.Error())
			return result
		}
		for i, r := range table {
			if r == resp {
				seen[i] = true
			}
		}
	}

	status := StatusPass
	if len(seen) < len(table) {
		status = StatusWarn
	}
	result.add("Reply coverage", status, fmt.Sprintf("%d/%d replies drawn in %d samples", len(seen), len(table), c.samples))

	return result
}
