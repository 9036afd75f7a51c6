// Package web serves the dashboard over HTTP as a JSON API.
package web

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"hearth/internal/album"
	"hearth/internal/assistant"
	"hearth/internal/companion"
	"hearth/internal/metrics"
	"hearth/internal/model"
	"hearth/internal/scoreboard"
	"hearth/internal/state"
)

const shutdownTimeout = 5 * time.Second

type Options struct {
	Household    string
	Version      string
	PollInterval time.Duration
	GameDuration time.Duration
	Logger       *zap.Logger
}

type Server struct {
	state     *state.Container
	assistant assistant.Service
	album     *album.Album
	helper    *companion.Thread
	scores    *scoreboard.Poller
	household string
	logger    *zap.Logger
	app       *fiber.App

	pollMu sync.Mutex
}

func New(container *state.Container, svc assistant.Service, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("web")

	s := &Server{
		state:     container,
		assistant: svc,
		album:     album.New(svc, container, logger),
		helper:    companion.NewThread(svc, logger),
		scores: scoreboard.NewPoller(svc, func() []model.HockeyGame {
			return container.Data().HockeySchedule
		}, scoreboard.Options{
			Interval:     opts.PollInterval,
			GameDuration: opts.GameDuration,
		}, logger),
		household: opts.Household,
		logger:    logger,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "hearth " + opts.Version,
		ErrorHandler:          errorHandler,
		BodyLimit:             album.MaxImageBytes + 1<<20,
		DisableStartupMessage: true,
		Immutable:             true,
	})
	s.app.Use(recover.New())
	s.app.Use(fiberlogger.New(fiberlogger.Config{
		Output: zap.NewStdLog(logger).Writer(),
	}))
	s.app.Use(compress.New())

	registry := prometheus.NewRegistry()
	registry.MustRegister(metrics.Collectors()...)
	prom := fiberprometheus.NewWithRegistry(registry, "hearth", "http", "", nil)
	prom.RegisterAt(s.app, "/metrics")
	s.app.Use(prom.Middleware)

	s.routes()
	return s
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Serve listens on addr until ctx ends, then shuts the listener down. The
// scoreboard is polled while the dashboard is the active screen.
func (s *Server) Serve(ctx context.Context, addr string) error {
	stop := s.watchScores(ctx)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", addr))
		errc <- s.app.Listen(addr)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		if err := s.app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			return err
		}
		if err := <-errc; err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}
}

// watchScores keeps the poller running exactly while the dashboard is
// showing. The returned func stops the poller for good.
func (s *Server) watchScores(ctx context.Context) func() {
	ctx, cancel := context.WithCancel(ctx)
	unwatch := s.state.OnScreenChange(func(model.Screen) {
		s.syncScores(ctx)
	})
	s.syncScores(ctx)
	return func() {
		unwatch()
		cancel()
		s.syncScores(ctx)
	}
}

func (s *Server) syncScores(ctx context.Context) {
	s.pollMu.Lock()
	defer s.pollMu.Unlock()
	if ctx.Err() == nil && s.state.Session().Screen == model.ScreenDashboard {
		if !s.scores.Running() {
			s.scores.Start(ctx)
		}
		return
	}
	s.scores.Stop()
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
	})
}
