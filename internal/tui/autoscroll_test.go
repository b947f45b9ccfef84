package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/chatbox/internal/core/chat"
)

type countingTarget struct {
	scrolls int
}

func (c *countingTarget) ScrollToBottom() { c.scrolls++ }

// manualScheduler holds callbacks until run is called, like a render pass
// that has not happened yet.
type manualScheduler struct {
	pending []func()
}

func (s *manualScheduler) schedule(fn func()) {
	s.pending = append(s.pending, fn)
}

func (s *manualScheduler) run() {
	pending := s.pending
	s.pending = nil
	for _, fn := range pending {
		fn()
	}
}

func newTestChat() *chat.Chat {
	store := chat.NewStore(chat.WithReplier(chat.NewMockReplier(nil, chat.NewRandSource(1))))
	return chat.New(store)
}

func TestAutoScroll(t *testing.T) {
	t.Run("scrolls after each change once rendered", func(t *testing.T) {
		c := newTestChat()
		sched := &manualScheduler{}
		target := &countingTarget{}

		stop := AutoScroll(c, sched.schedule, target)
		defer stop()

		require.NoError(t, c.Submit("hello"))
		assert.Len(t, sched.pending, 2, "one callback per appended message")
		assert.Zero(t, target.scrolls, "scrolling waits for the render pass")

		sched.run()
		assert.Equal(t, 2, target.scrolls)
	})

	t.Run("stop detaches the observer", func(t *testing.T) {
		c := newTestChat()
		sched := &manualScheduler{}
		target := &countingTarget{}

		stop := AutoScroll(c, sched.schedule, target)
		stop()

		require.NoError(t, c.Submit("hello"))
		assert.Empty(t, sched.pending)
	})

	t.Run("stop skips scrolls already scheduled", func(t *testing.T) {
		c := newTestChat()
		sched := &manualScheduler{}
		target := &countingTarget{}

		stop := AutoScroll(c, sched.schedule, target)
		require.NoError(t, c.Submit("hello"))
		stop()

		sched.run()
		assert.Zero(t, target.scrolls)
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		stop := AutoScroll(newTestChat(), func(fn func()) { fn() }, &countingTarget{})
		assert.NotPanics(t, func() {
			stop()
			stop()
		})
	})
}

func TestAfterRender(t *testing.T) {
	a := newAfterRender()

	ran := false
	a.Schedule(func() { ran = true })

	msg := a.wait()()
	got, ok := msg.(afterRenderMsg)
	require.True(t, ok)
	got.fn()
	assert.True(t, ran)

	t.Run("full queue never blocks", func(t *testing.T) {
		a := newAfterRender()
		done := make(chan struct{})
		go func() {
			for range cap(a.queue) + 5 {
				a.Schedule(func() {})
			}
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Schedule blocked on a full queue")
		}
		assert.Len(t, a.queue, cap(a.queue))
	})
}
