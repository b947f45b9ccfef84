package notify

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifier(t *testing.T) {
	t.Run("zero value notifies in registration order", func(t *testing.T) {
		var n Notifier[int]
		var got []string

		n.Subscribe(func(v int) { got = append(got, "a") })
		n.Subscribe(func(v int) { got = append(got, "b") })
		n.Notify(1)

		assert.Equal(t, []string{"a", "b"}, got)
	})

	t.Run("stop detaches and is idempotent", func(t *testing.T) {
		var n Notifier[string]
		calls := 0

		stop := n.Subscribe(func(string) { calls++ })
		n.Notify("x")
		stop()
		stop()
		n.Notify("y")

		assert.Equal(t, 1, calls)
		assert.Empty(t, n.subs)
	})

	t.Run("observer may unsubscribe itself", func(t *testing.T) {
		var n Notifier[int]
		calls := 0

		var stop func()
		stop = n.Subscribe(func(int) {
			calls++
			stop()
		})

		n.Notify(1)
		n.Notify(2)
		assert.Equal(t, 1, calls)
	})

	t.Run("concurrent subscribe and notify", func(t *testing.T) {
		var n Notifier[int]
		var wg sync.WaitGroup

		for range 10 {
			wg.Add(2)
			go func() {
				defer wg.Done()
				stop := n.Subscribe(func(int) {})
				stop()
			}()
			go func() {
				defer wg.Done()
				n.Notify(1)
			}()
		}
		wg.Wait()

		assert.Empty(t, n.subs)
	})
}
