package chat

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChat_Submit(t *testing.T) {
	t.Run("hello scenario", func(t *testing.T) {
		c := New(newTestStore(&seqSource{vals: []int{3}}))

		require.NoError(t, c.Submit("hello"))

		msgs := c.Messages()
		require.Len(t, msgs, 2)

		assert.Equal(t, "hello", msgs[0].Content)
		assert.Equal(t, SenderUser, msgs[0].Sender)
		assert.Equal(t, 5, msgs[0].TokenLength)

		assert.Equal(t, SenderAI, msgs[1].Sender)
		assert.True(t, inTable(t, msgs[1]))
		assert.Equal(t, DefaultResponses()[3].TokenLength, msgs[1].TokenLength)
	})

	t.Run("n submits produce 2n messages in call order", func(t *testing.T) {
		c := New(newTestStore(&seqSource{vals: []int{0, 1, 2, 3}}))

		const n = 25
		for i := range n {
			require.NoError(t, c.Submit(fmt.Sprintf("message %d", i)))
		}

		msgs := c.Messages()
		require.Len(t, msgs, 2*n)
		for i := range n {
			user, ai := msgs[2*i], msgs[2*i+1]
			assert.Equal(t, SenderUser, user.Sender)
			assert.Equal(t, fmt.Sprintf("message %d", i), user.Content)
			assert.Equal(t, SenderAI, ai.Sender)
			assert.True(t, ai.CreatedAt.After(user.CreatedAt))
		}
	})

	t.Run("empty text accepted by default", func(t *testing.T) {
		c := New(newTestStore(&seqSource{vals: []int{0}}))

		require.NoError(t, c.Submit(""))

		msgs := c.Messages()
		require.Len(t, msgs, 2)
		assert.Equal(t, "", msgs[0].Content)
		assert.Equal(t, 0, msgs[0].TokenLength)
	})

	t.Run("blank text rejected when enabled", func(t *testing.T) {
		c := New(newTestStore(&seqSource{vals: []int{0}}), WithRejectEmpty(true))

		for _, text := range []string{"", "   ", "\n\t"} {
			err := c.Submit(text)
			require.ErrorIs(t, err, ErrEmptyMessage)
		}
		assert.Empty(t, c.Messages())

		require.NoError(t, c.Submit("ok"))
		assert.Len(t, c.Messages(), 2)
	})

	t.Run("reply failure keeps user message", func(t *testing.T) {
		c := New(NewStore(WithReplier(failingReplier{})))

		err := c.Submit("anyone there?")
		require.ErrorIs(t, err, ErrReplyUnavailable)

		msgs := c.Messages()
		require.Len(t, msgs, 1)
		assert.Equal(t, SenderUser, msgs[0].Sender)
	})
}

func TestChat_SubscribeSeesBothMessages(t *testing.T) {
	c := New(newTestStore(&seqSource{vals: []int{1}}))

	var senders []Sender
	stop := c.Subscribe(func(e Event) {
		senders = append(senders, e.Message.Sender)
	})
	defer stop()

	require.NoError(t, c.Submit("hi"))
	assert.Equal(t, []Sender{SenderUser, SenderAI}, senders)
}

func TestChat_ConcurrentSubmitsKeepPairs(t *testing.T) {
	var tick atomic.Int64
	store := NewStore(
		WithReplier(NewMockReplier(nil, NewRandSource(9))),
		WithClock(func() time.Time { return time.Unix(0, tick.Add(1)) }),
	)
	c := New(store)

	const workers, perWorker = 8, 25

	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perWorker {
				assert.NoError(t, c.Submit(fmt.Sprintf("w%d-%d", w, i)))
			}
		}()
	}
	wg.Wait()

	msgs := c.Messages()
	require.Len(t, msgs, 2*workers*perWorker)

	for i := 0; i < len(msgs); i += 2 {
		assert.Equal(t, SenderUser, msgs[i].Sender, "message %d", i)
		assert.Equal(t, SenderAI, msgs[i+1].Sender, "message %d", i+1)
	}
	for i := 1; i < len(msgs); i++ {
		assert.True(t, msgs[i].CreatedAt.After(msgs[i-1].CreatedAt), "timestamps follow insertion order at %d", i)
	}
}
