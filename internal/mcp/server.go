package mcp

import (
	"context"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"hearth/internal/album"
	"hearth/internal/assistant"
	"hearth/internal/companion"
	"hearth/internal/model"
	"hearth/internal/scoreboard"
	"hearth/internal/state"
)

type Options struct {
	Household    string
	Version      string
	GameDuration time.Duration
	Logger       *zap.Logger
}

type Server struct {
	app       *state.Container
	assistant assistant.Service
	album     *album.Album
	helper    *companion.Thread
	scores    *scoreboard.Poller
	household string
	mcp       *sdk.Server
}

func NewServer(app *state.Container, svc assistant.Service, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("mcp")

	s := &Server{
		app:       app,
		assistant: svc,
		album:     album.New(svc, app, logger),
		helper:    companion.NewThread(svc, logger),
		scores: scoreboard.NewPoller(svc, func() []model.HockeyGame {
			return app.Data().HockeySchedule
		}, scoreboard.Options{GameDuration: opts.GameDuration}, logger),
		household: opts.Household,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "hearth",
			Version: opts.Version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}
