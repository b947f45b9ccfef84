package tui

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hay-kot/chatbox/internal/core/chat"
)

// Observable is a conversation that reports appended messages.
type Observable interface {
	Subscribe(fn func(chat.Event)) (stop func())
}

// Scheduler runs fn once the UI has rendered the latest change.
type Scheduler func(fn func())

// ScrollTarget is a scrollable message list.
type ScrollTarget interface {
	ScrollToBottom()
}

// AutoScroll scrolls target to its end after every change to src. Scrolling
// is deferred through after so the new message is laid out before the
// position is computed. The returned stop detaches the observer; a scroll
// already scheduled when stop is called is skipped. stop is safe to call more
// than once.
func AutoScroll(src Observable, after Scheduler, target ScrollTarget) (stop func()) {
	var stopped atomic.Bool

	unsubscribe := src.Subscribe(func(chat.Event) {
		after(func() {
			if stopped.Load() {
				return
			}
			target.ScrollToBottom()
		})
	})

	return func() {
		stopped.Store(true)
		unsubscribe()
	}
}

// afterRenderMsg carries a deferred callback back into the update loop.
type afterRenderMsg struct {
	fn func()
}

// afterRender queues callbacks from outside the update loop and hands them
// back as messages, one per Update, after the model refreshes its views.
type afterRender struct {
	queue chan func()
}

func newAfterRender() *afterRender {
	return &afterRender{queue: make(chan func(), 16)}
}

// Schedule queues fn. It never blocks: when the queue is full the pending
// callbacks already cover the change, so fn is dropped.
func (a *afterRender) Schedule(fn func()) {
	select {
	case a.queue <- fn:
	default:
	}
}

// wait returns a command that delivers the next queued callback.
func (a *afterRender) wait() tea.Cmd {
	return func() tea.Msg {
		return afterRenderMsg{fn: <-a.queue}
	}
}
