package chat

import (
	"fmt"
	"math/rand/v2"
)

// MockResponse is a canned reply with a precomputed token length.
type MockResponse struct {
	Content     string `json:"content"      yaml:"content"`
	TokenLength int    `json:"token_length" yaml:"token_length"`
}

var defaultResponses = []MockResponse{
	{
		Content:     "收到，謝謝！",
		TokenLength: 5,
	},
	{
		Content:     "這個方法不錯，我會試試看。",
		TokenLength: 12,
	},
	{
		Content:     "非常感謝你的詳細說明，對我理解這個議題幫助很大！",
		TokenLength: 23,
	},
	{
		Content:     "你提供的資訊真的非常詳細且全面，不僅解決了我原本的問題，也讓我對相關背景有更深入的理解。我會依照你的建議逐步操作，若有遇到任何問題，再向你請教。再次感謝你的幫助與耐心解說，真的非常受用！",
		TokenLength: 76,
	},
}

// DefaultResponses returns a copy of the built-in reply table.
func DefaultResponses() []MockResponse {
	out := make([]MockResponse, len(defaultResponses))
	copy(out, defaultResponses)
	return out
}

// RandSource picks an index in [0, n).
type RandSource interface {
	IntN(n int) int
}

// NewRandSource returns a PCG-backed source. A zero seed produces a randomly
// seeded source; any other seed yields a reproducible sequence.
func NewRandSource(seed uint64) RandSource {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Replier produces the next AI reply.
type Replier interface {
	Reply() (MockResponse, error)
}

// MockReplier draws replies uniformly at random, with replacement, from a
// fixed table.
type MockReplier struct {
	table []MockResponse
	rng   RandSource
}

// NewMockReplier creates a replier over table. An empty table falls back to
// DefaultResponses and a nil rng to a randomly seeded source.
func NewMockReplier(table []MockResponse, rng RandSource) *MockReplier {
	if len(table) == 0 {
		table = DefaultResponses()
	} else {
		table = append([]MockResponse(nil), table...)
	}
	if rng == nil {
		rng = NewRandSource(0)
	}
	return &MockReplier{table: table, rng: rng}
}

// Reply returns one record of the table.
func (r *MockReplier) Reply() (MockResponse, error) {
	idx := r.rng.IntN(len(r.table))
	if idx < 0 || idx >= len(r.table) {
		return MockResponse{}, fmt.Errorf("random source returned index %d for table of %d", idx, len(r.table))
	}
	return r.table[idx], nil
}

// Table returns a copy of the replies this replier draws from.
func (r *MockReplier) Table() []MockResponse {
	return append([]MockResponse(nil), r.table...)
}
