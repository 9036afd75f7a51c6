// Package state owns the household aggregate and the session around it.
//
// The container publishes immutable snapshots: every mutation builds a new
// *model.AppData from a clone of the current one, swaps it in and saves it.
// A snapshot returned by Data is never written to again.
package state

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"hearth/internal/model"
)

var (
	ErrNoUser       = errors.New("state: no user selected")
	ErrEmptyMessage = errors.New("state: message is empty")
)

// Persister is the storage the container reads once and writes after every
// mutation. *store.Adapter satisfies it.
type Persister interface {
	Load(ctx context.Context, key string) ([]byte, bool)
	Save(ctx context.Context, key string, value []byte)
}

// Session is the non-persisted part of the application state.
type Session struct {
	CurrentUser   *model.User
	Screen        model.Screen
	VaultUnlocked bool
}

type Container struct {
	persister  Persister
	key        string
	now        func() time.Time
	logger     *zap.Logger
	passphrase string

	mu          sync.Mutex
	data        *model.AppData
	session     Session
	generation  uint64
	watchers    map[int]func(model.Screen)
	nextWatcher int
}

func New(persister Persister, opts ...Option) *Container {
	c := &Container{
		persister: persister,
		key:       DefaultKey,
		now:       time.Now,
		logger:    zap.NewNop(),
		session:   Session{Screen: model.ScreenDashboard},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.Named("state")
	return c
}

// Initialize loads the stored aggregate. A missing or undecodable blob is
// replaced by the built-in dataset. The result is saved back so the store
// always holds what is in memory.
func (c *Container) Initialize(ctx context.Context) *model.AppData {
	c.mu.Lock()
	defer c.mu.Unlock()

	data := c.load(ctx)
	c.data = data
	c.persist(ctx, data)
	return data
}

func (c *Container) load(ctx context.Context) *model.AppData {
	raw, ok := c.persister.Load(ctx, c.key)
	if !ok {
		c.logger.Info("no stored data, using defaults", zap.String("key", c.key))
		return model.Default(c.now())
	}
	var data model.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		c.logger.Warn("stored data is malformed, using defaults",
			zap.String("key", c.key),
			zap.Error(err),
		)
		return model.Default(c.now())
	}
	return &data
}

// Data returns the current snapshot. Callers must not modify it.
func (c *Container) Data() *model.AppData {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current()
}

// current must be called with mu held.
func (c *Container) current() *model.AppData {
	if c.data == nil {
		c.data = model.Default(c.now())
	}
	return c.data
}

func (c *Container) Session() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.session
	if s.CurrentUser != nil {
		u := *s.CurrentUser
		s.CurrentUser = &u
	}
	return s
}

// SelectUser makes user the current user. The user is not checked against
// the aggregate.
func (c *Container) SelectUser(user model.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.CurrentUser = &user
	c.generation++
}

// Logout clears the user, returns to the dashboard and relocks the vault.
// Calling it with nobody logged in leaves the same end state.
func (c *Container) Logout() {
	c.mu.Lock()
	prev := c.session.Screen
	c.session = Session{Screen: model.ScreenDashboard}
	c.generation++
	notify := c.screenChanged(prev)
	c.mu.Unlock()
	notify()
}

// Navigate switches the active screen. Leaving the vault relocks it.
func (c *Container) Navigate(screen model.Screen) {
	c.mu.Lock()
	prev := c.session.Screen
	if screen != model.ScreenVault {
		c.session.VaultUnlocked = false
	}
	c.session.Screen = screen
	c.generation++
	notify := c.screenChanged(prev)
	c.mu.Unlock()
	notify()
}

// OnScreenChange registers fn to run whenever the active screen changes.
// fn is called outside the container lock with the new screen. The
// returned func unregisters it.
func (c *Container) OnScreenChange(fn func(model.Screen)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.watchers == nil {
		c.watchers = make(map[int]func(model.Screen))
	}
	id := c.nextWatcher
	c.nextWatcher++
	c.watchers[id] = fn
	return func() {
		c.mu.Lock()
		delete(c.watchers, id)
		c.mu.Unlock()
	}
}

// screenChanged must be called with mu held. It returns the notification
// to run once mu is released.
func (c *Container) screenChanged(prev model.Screen) func() {
	screen := c.session.Screen
	if screen == prev || len(c.watchers) == 0 {
		return func() {}
	}
	fns := make([]func(model.Screen), 0, len(c.watchers))
	for _, fn := range c.watchers {
		fns = append(fns, fn)
	}
	return func() {
		for _, fn := range fns {
			fn(screen)
		}
	}
}

// UnlockVault compares passphrase with the configured one. This is a
// display gate only; vault data is stored in the clear.
func (c *Container) UnlockVault(passphrase string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.passphrase == "" || passphrase != c.passphrase {
		return false
	}
	c.session.VaultUnlocked = true
	return true
}

// AppendChatMessage adds msg after all existing messages.
func (c *Container) AppendChatMessage(ctx context.Context, msg model.ChatMessage) *model.AppData {
	return c.mutate(ctx, func(d *model.AppData) *model.AppData {
		return d.WithChatMessage(msg)
	})
}

// PrependMemory adds memory before all existing memories.
func (c *Container) PrependMemory(ctx context.Context, memory model.MemoryItem) *model.AppData {
	return c.mutate(ctx, func(d *model.AppData) *model.AppData {
		return d.WithMemory(memory)
	})
}

// SendChatMessage posts content as the current user.
func (c *Container) SendChatMessage(ctx context.Context, content string) (model.ChatMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return model.ChatMessage{}, ErrEmptyMessage
	}
	session := c.Session()
	if session.CurrentUser == nil {
		return model.ChatMessage{}, ErrNoUser
	}
	msg := model.NewChatMessage(session.CurrentUser.ID, content, c.now())
	c.AppendChatMessage(ctx, msg)
	return msg, nil
}

// Replace publishes a copy of data as the aggregate and saves it. The
// session is left alone.
func (c *Container) Replace(ctx context.Context, data *model.AppData) *model.AppData {
	return c.mutate(ctx, func(*model.AppData) *model.AppData {
		if data == nil {
			return model.Default(c.now())
		}
		return data.Clone()
	})
}

func (c *Container) mutate(ctx context.Context, fn func(*model.AppData) *model.AppData) *model.AppData {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := fn(c.current())
	c.data = next
	c.persist(ctx, next)
	return next
}

// persist must be called with mu held so saves land in mutation order.
func (c *Container) persist(ctx context.Context, data *model.AppData) {
	out := *data
	out.Version = model.CurrentVersion
	raw, err := json.Marshal(&out)
	if err != nil {
		c.logger.Error("encoding data", zap.Error(err))
		return
	}
	c.persister.Save(ctx, c.key, raw)
}
