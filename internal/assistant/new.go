package assistant

import (
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.uber.org/zap"

	"hearth/internal/config"
)

// New builds the service described by cfg. Without an API key it returns
// Static.
func New(cfg *config.Config, logger *zap.Logger, extra ...option.RequestOption) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	key := cfg.Assistant.APIKey()
	if key == "" {
		logger.Warn("no assistant API key, generative features return fallbacks",
			zap.String("env", cfg.Assistant.APIKeyEnv))
		return Static{}
	}

	opts := []option.RequestOption{
		option.WithAPIKey(key),
		option.WithRequestTimeout(cfg.Assistant.Timeout),
	}
	if base := strings.TrimSpace(cfg.Assistant.BaseURL); base != "" {
		opts = append(opts, option.WithBaseURL(base))
	}
	opts = append(opts, extra...)

	return NewAnthropic(anthropic.NewClient(opts...), Options{
		Model:     cfg.Assistant.Model,
		MaxTokens: cfg.Assistant.MaxTokens,
		Household: cfg.Household,
		Team:      cfg.Scoreboard.Team,
	}, logger)
}
