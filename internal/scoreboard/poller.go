package scoreboard

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"hearth/internal/assistant"
	"hearth/internal/model"
)

// Reading is the poller's latest view of the schedule.
type Reading struct {
	Live      bool                 `json:"live"`
	Game      model.HockeyGame     `json:"game,omitzero"`
	Score     *assistant.LiveScore `json:"score,omitempty"`
	CheckedAt time.Time            `json:"checkedAt"`
}

type Options struct {
	Interval     time.Duration
	GameDuration time.Duration
	Now          func() time.Time
}

// Poller asks for the live score every Interval while a game is on.
type Poller struct {
	svc      assistant.Service
	schedule func() []model.HockeyGame
	opts     Options
	logger   *zap.Logger

	mu      sync.Mutex
	reading Reading
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewPoller reads the schedule through schedule on every tick, so edits
// to the schedule are picked up without a restart.
func NewPoller(svc assistant.Service, schedule func() []model.HockeyGame, opts Options, logger *zap.Logger) *Poller {
	if opts.Interval <= 0 {
		opts.Interval = time.Minute
	}
	if opts.GameDuration <= 0 {
		opts.GameDuration = DefaultGameDuration
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Poller{svc: svc, schedule: schedule, opts: opts, logger: logger.Named("scoreboard")}
}

// Poll runs one check and records its result unless ctx is already done.
func (p *Poller) Poll(ctx context.Context) Reading {
	now := p.opts.Now()
	reading := Reading{CheckedAt: now}

	game, live := LiveGame(p.schedule(), now, p.opts.GameDuration)
	if live {
		reading.Live = true
		reading.Game = game
		if score, ok := p.svc.LiveScore(ctx, game.Opponent); ok {
			reading.Score = &score
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if ctx.Err() != nil {
		return reading
	}
	p.reading = reading
	return reading
}

// Start polls now and then on every tick until ctx ends or Stop is called.
// Starting a running poller restarts it.
func (p *Poller) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	p.mu.Lock()
	prevCancel, prevDone := p.cancel, p.done
	p.cancel, p.done = cancel, done
	if prevCancel != nil {
		prevCancel()
	}
	p.mu.Unlock()
	if prevDone != nil {
		<-prevDone
	}

	go func() {
		defer close(done)
		ticker := time.NewTicker(p.opts.Interval)
		defer ticker.Stop()

		p.Poll(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.Poll(ctx)
			}
		}
	}()
	p.logger.Debug("poller started", zap.Duration("interval", p.opts.Interval))
}

// Stop tears down the ticker and waits for an in-flight poll to return.
// Its result is discarded.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	if cancel != nil {
		cancel()
	}
	p.mu.Unlock()

	if done == nil {
		return
	}
	<-done
	p.logger.Debug("poller stopped")
}

// Running reports whether Start was called without a matching Stop.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

func (p *Poller) Reading() Reading {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reading
}
