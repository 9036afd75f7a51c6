package companion

import (
	"context"
	"errors"
	"iter"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hearth/internal/assistant"
)

type mockService struct {
	assistant.Static
	chunks      []string
	err         error
	lastHistory []assistant.Turn
	lastText    string
}

func (m *mockService) Converse(_ context.Context, history []assistant.Turn, text string) iter.Seq2[string, error] {
	m.lastHistory = history
	m.lastText = text
	return func(yield func(string, error) bool) {
		for _, c := range m.chunks {
			if !yield(c, nil) {
				return
			}
		}
		if m.err != nil {
			yield("", m.err)
		}
	}
}

func TestThreadAsk(t *testing.T) {
	ctx := context.Background()

	t.Run("streams into the thread", func(t *testing.T) {
		svc := &mockService{chunks: []string{"Try ", "a pill ", "organiser."}}
		th := NewThread(svc, nil)

		var seen []string
		reply, err := th.Ask(ctx, "  How do we track meds?  ", nil, func(c string) { seen = append(seen, c) })
		require.NoError(t, err)
		assert.Equal(t, "Try a pill organiser.", reply)
		assert.Equal(t, svc.chunks, seen)
		assert.Equal(t, "How do we track meds?", svc.lastText)
		assert.Len(t, svc.lastHistory, 1, "history excludes the new question")

		turns := th.Turns()
		require.Len(t, turns, 3)
		assert.Equal(t, assistant.HelperGreeting, turns[0].Text)
		assert.Equal(t, assistant.Turn{Role: assistant.RoleUser, Text: "How do we track meds?"}, turns[1])
		assert.Equal(t, assistant.Turn{Role: assistant.RoleAssistant, Text: "Try a pill organiser."}, turns[2])
	})

	t.Run("stream error leaves apology", func(t *testing.T) {
		svc := &mockService{chunks: []string{"Part"}, err: errors.New("reset")}
		th := NewThread(svc, nil)

		reply, err := th.Ask(ctx, "hello", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, assistant.FallbackConversation, reply)
		assert.Equal(t, assistant.FallbackConversation, th.Turns()[2].Text)
	})

	t.Run("stale view drops the reply", func(t *testing.T) {
		svc := &mockService{chunks: []string{"one", "two", "three"}}
		th := NewThread(svc, nil)

		var calls atomic.Int32
		alive := func() bool { return calls.Add(1) <= 1 }
		var seen []string
		_, err := th.Ask(ctx, "hello", alive, func(c string) { seen = append(seen, c) })
		assert.ErrorIs(t, err, ErrStale)
		assert.Equal(t, []string{"one"}, seen)
		assert.Len(t, th.Turns(), 1, "thread is rolled back")
	})

	t.Run("stale after last chunk", func(t *testing.T) {
		svc := &mockService{chunks: []string{"done"}}
		th := NewThread(svc, nil)

		var calls atomic.Int32
		_, err := th.Ask(ctx, "hello", func() bool { return calls.Add(1) <= 1 }, nil)
		assert.ErrorIs(t, err, ErrStale)
		assert.Len(t, th.Turns(), 1)
	})

	t.Run("empty message", func(t *testing.T) {
		th := NewThread(&mockService{}, nil)
		_, err := th.Ask(ctx, "   ", nil, nil)
		assert.ErrorIs(t, err, ErrEmpty)
	})

	t.Run("second ask while streaming", func(t *testing.T) {
		th := NewThread(&mockService{}, nil)
		svc := &mockService{chunks: []string{"x"}}
		th.svc = svc

		var inner error
		_, err := th.Ask(ctx, "outer", nil, func(string) {
			_, inner = th.Ask(ctx, "inner", nil, nil)
		})
		require.NoError(t, err)
		assert.ErrorIs(t, inner, ErrBusy)
	})

	t.Run("history grows across turns", func(t *testing.T) {
		svc := &mockService{chunks: []string{"ok"}}
		th := NewThread(svc, nil)
		_, err := th.Ask(ctx, "first", nil, nil)
		require.NoError(t, err)
		_, err = th.Ask(ctx, "second", nil, nil)
		require.NoError(t, err)
		assert.Len(t, svc.lastHistory, 3)
		assert.Len(t, th.Turns(), 5)
	})
}

func TestThreadBegin(t *testing.T) {
	ctx := context.Background()

	t.Run("reserves the thread until streamed", func(t *testing.T) {
		svc := &mockService{chunks: []string{"Sure."}}
		th := NewThread(svc, nil)

		p, err := th.Begin("first")
		require.NoError(t, err)
		_, err = th.Begin("second")
		assert.ErrorIs(t, err, ErrBusy)
		require.Len(t, th.Turns(), 3)

		reply, err := p.Stream(ctx, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "Sure.", reply)
		assert.False(t, p.Failed())

		_, err = p.Stream(ctx, nil, nil)
		assert.ErrorIs(t, err, ErrStale)

		_, err = th.Begin("second")
		assert.NoError(t, err)
	})

	t.Run("cancel rolls back and frees", func(t *testing.T) {
		th := NewThread(&mockService{}, nil)

		p, err := th.Begin("never mind")
		require.NoError(t, err)
		p.Cancel()
		assert.Len(t, th.Turns(), 1)

		_, err = th.Begin("again")
		assert.NoError(t, err)
	})

	t.Run("failed stream is reported", func(t *testing.T) {
		th := NewThread(&mockService{chunks: []string{"Part"}, err: errors.New("reset")}, nil)

		p, err := th.Begin("hello")
		require.NoError(t, err)
		_, err = p.Stream(ctx, nil, nil)
		require.NoError(t, err)
		assert.True(t, p.Failed())
	})

	t.Run("blank message", func(t *testing.T) {
		_, err := NewThread(&mockService{}, nil).Begin("  ")
		assert.ErrorIs(t, err, ErrEmpty)
	})
}
