// Package companion runs the in-app helper conversation on top of the
// assistant's streaming reply.
package companion

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"hearth/internal/assistant"
)

var (
	// ErrStale is returned when the caller's view went away mid-reply. The
	// thread is left as it was before the question.
	ErrStale = errors.New("companion: reply abandoned, view no longer active")
	ErrBusy  = errors.New("companion: a reply is already streaming")
	ErrEmpty = errors.New("companion: message is empty")
)

// Thread is one helper conversation. It opens with the greeting.
type Thread struct {
	svc    assistant.Service
	logger *zap.Logger

	mu        sync.Mutex
	turns     []assistant.Turn
	streaming bool
}

func NewThread(svc assistant.Service, logger *zap.Logger) *Thread {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Thread{
		svc:    svc,
		logger: logger.Named("companion"),
		turns:  []assistant.Turn{{Role: assistant.RoleAssistant, Text: assistant.HelperGreeting}},
	}
}

// Turns returns a copy of the conversation so far.
func (t *Thread) Turns() []assistant.Turn {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.turns)
}

// Ask sends text and streams the reply into the thread, calling onChunk
// for each piece when it is non-nil. alive is checked before every write;
// once it reports false the reply is dropped and ErrStale returned. A
// failed stream leaves the apology as the reply.
func (t *Thread) Ask(ctx context.Context, text string, alive func() bool, onChunk func(string)) (string, error) {
	p, err := t.Begin(text)
	if err != nil {
		return "", err
	}
	return p.Stream(ctx, alive, onChunk)
}

// Pending is a question the thread has accepted but not yet answered. The
// thread stays busy until Stream or Cancel is called.
type Pending struct {
	t       *Thread
	text    string
	history []assistant.Turn
	mark    int
	reply   int
	failed  bool
	settled bool
}

// Begin records text as the next question and reserves the thread for its
// reply. It fails with ErrEmpty or ErrBusy without touching the thread.
func (t *Thread) Begin(text string) (*Pending, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmpty
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.streaming {
		return nil, ErrBusy
	}
	t.streaming = true
	p := &Pending{t: t, text: text, history: slices.Clone(t.turns), mark: len(t.turns)}
	t.turns = append(t.turns,
		assistant.Turn{Role: assistant.RoleUser, Text: text},
		assistant.Turn{Role: assistant.RoleAssistant},
	)
	p.reply = len(t.turns) - 1
	return p, nil
}

// Stream asks the assistant and writes the reply into the thread. Calls
// after the first, or after Cancel, return ErrStale.
func (p *Pending) Stream(ctx context.Context, alive func() bool, onChunk func(string)) (string, error) {
	if p.settled {
		return "", ErrStale
	}
	defer p.release()
	if alive == nil {
		alive = func() bool { return true }
	}

	t := p.t
	for chunk, err := range t.svc.Converse(ctx, p.history, p.text) {
		if !alive() {
			t.rollback(p.mark)
			return "", ErrStale
		}
		if err != nil {
			t.logger.Warn("helper reply failed", zap.Error(err))
			t.setReply(p.reply, assistant.FallbackConversation)
			p.failed = true
			return assistant.FallbackConversation, nil
		}
		t.appendReply(p.reply, chunk)
		if onChunk != nil {
			onChunk(chunk)
		}
	}
	if !alive() {
		t.rollback(p.mark)
		return "", ErrStale
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.turns[p.reply].Text, nil
}

// Failed reports whether the stream broke and the reply was replaced by
// the apology.
func (p *Pending) Failed() bool {
	return p.failed
}

// Cancel drops the question and frees the thread. It does nothing after
// Stream.
func (p *Pending) Cancel() {
	if p.settled {
		return
	}
	p.t.rollback(p.mark)
	p.release()
}

func (p *Pending) release() {
	p.settled = true
	p.t.mu.Lock()
	p.t.streaming = false
	p.t.mu.Unlock()
}

func (t *Thread) appendReply(i int, chunk string) {
	t.mu.Lock()
	t.turns[i].Text += chunk
	t.mu.Unlock()
}

func (t *Thread) setReply(i int, text string) {
	t.mu.Lock()
	t.turns[i].Text = text
	t.mu.Unlock()
}

func (t *Thread) rollback(mark int) {
	t.mu.Lock()
	t.turns = t.turns[:mark]
	t.mu.Unlock()
}
