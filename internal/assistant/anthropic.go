package assistant

import (
	"context"
	"encoding/base64"
	"fmt"
	"iter"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"go.uber.org/zap"

	"hearth/internal/metrics"
)

const webSearchCitation = "web_search_result_location"

type Options struct {
	Model     string
	MaxTokens int64
	// Household names the digest's narrator.
	Household string
	// Team is the followed hockey team.
	Team string
	// SearchMaxUses caps web searches per grounded call.
	SearchMaxUses int64
}

var _ Service = (*Anthropic)(nil)

// Anthropic implements Service on the Messages API.
type Anthropic struct {
	client anthropic.Client
	opts   Options
	logger *zap.Logger
}

func NewAnthropic(client anthropic.Client, opts Options, logger *zap.Logger) *Anthropic {
	if opts.Model == "" {
		opts.Model = string(anthropic.ModelClaudeSonnet4_5)
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 1024
	}
	if opts.SearchMaxUses <= 0 {
		opts.SearchMaxUses = 3
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Anthropic{client: client, opts: opts, logger: logger.Named("assistant")}
}

func (a *Anthropic) GroundedAnswer(ctx context.Context, query string) GroundedAnswer {
	const op = "grounded_answer"
	msg, err := a.send(ctx, op, a.params(groundedPrompt(query), true))
	if err != nil {
		a.logFallback(op, err)
		return GroundedAnswer{Answer: FallbackGroundedAnswer, Sources: []Source{}}
	}

	var answer strings.Builder
	sources := []Source{}
	seen := map[string]bool{}
	for _, block := range msg.Content {
		text, ok := block.AsAny().(anthropic.TextBlock)
		if !ok {
			continue
		}
		answer.WriteString(text.Text)
		for _, c := range text.Citations {
			if c.Type != webSearchCitation || c.URL == "" || c.Title == "" || seen[c.URL] {
				continue
			}
			seen[c.URL] = true
			sources = append(sources, Source{Title: c.Title, URI: c.URL})
		}
	}
	return GroundedAnswer{Answer: strings.TrimSpace(answer.String()), Sources: sources}
}

func (a *Anthropic) WeeklyDigest(ctx context.Context, dc DigestContext) string {
	const op = "weekly_digest"
	text, err := a.text(ctx, op, a.params(DigestPrompt(a.opts.Household, dc), false))
	if err != nil {
		a.logFallback(op, err)
		return FallbackDigest
	}
	return text
}

func (a *Anthropic) MealPlan(ctx context.Context, preference string) []MealPlanDay {
	const op = "meal_plan"
	text, err := a.text(ctx, op, a.params(mealPlanPrompt(preference), false))
	if err != nil {
		a.logFallback(op, err)
		return []MealPlanDay{}
	}
	plan, ok := ParseMealPlan(text)
	if !ok {
		a.logFallback(op, fmt.Errorf("unparseable meal plan: %.200q", text))
	}
	return plan
}

func (a *Anthropic) MemoryStory(ctx context.Context, image []byte, mimeType, note string) string {
	const op = "memory_story"
	params := a.params("", false)
	params.Messages = []anthropic.MessageParam{
		anthropic.NewUserMessage(
			anthropic.NewImageBlockBase64(mimeType, base64.StdEncoding.EncodeToString(image)),
			anthropic.NewTextBlock(memoryStoryPrompt(note)),
		),
	}
	text, err := a.text(ctx, op, params)
	if err != nil {
		a.logFallback(op, err)
		return FallbackMemoryStory
	}
	return text
}

func (a *Anthropic) Converse(ctx context.Context, history []Turn, text string) iter.Seq2[string, error] {
	const op = "converse"
	return func(yield func(string, error) bool) {
		metrics.AssistantCalls.WithLabelValues(op).Inc()

		params := a.params("", false)
		params.System = []anthropic.TextBlockParam{{Text: helperSystem}}
		params.Messages = conversation(history, text)

		stream := a.client.Messages.NewStreaming(ctx, params)
		defer stream.Close()

		for stream.Next() {
			ev, ok := stream.Current().AsAny().(anthropic.ContentBlockDeltaEvent)
			if !ok {
				continue
			}
			delta, ok := ev.Delta.AsAny().(anthropic.TextDelta)
			if !ok || delta.Text == "" {
				continue
			}
			if !yield(delta.Text, nil) {
				return
			}
		}
		if err := stream.Err(); err != nil {
			a.logFallback(op, err)
			yield("", fmt.Errorf("streaming reply: %w", err))
		}
	}
}

func (a *Anthropic) LiveScore(ctx context.Context, opponent string) (LiveScore, bool) {
	const op = "live_score"
	text, err := a.text(ctx, op, a.params(liveScorePrompt(a.opts.Team, opponent), true))
	if err != nil {
		a.logFallback(op, err)
		return LiveScore{}, false
	}
	score, ok := ParseLiveScore(lastLine(text))
	if !ok {
		a.logger.Warn("could not parse live score", zap.String("text", text))
		return LiveScore{}, false
	}
	return score, true
}

func (a *Anthropic) params(prompt string, search bool) anthropic.MessageNewParams {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(a.opts.Model),
		MaxTokens: a.opts.MaxTokens,
	}
	if prompt != "" {
		params.Messages = []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		}
	}
	if search {
		params.Tools = []anthropic.ToolUnionParam{{
			OfWebSearchTool20250305: &anthropic.WebSearchTool20250305Param{
				MaxUses: anthropic.Int(a.opts.SearchMaxUses),
			},
		}}
	}
	return params
}

func (a *Anthropic) send(ctx context.Context, op string, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	metrics.AssistantCalls.WithLabelValues(op).Inc()
	msg, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", params.Model, err)
	}
	return msg, nil
}

// text returns the concatenated text blocks of the reply. An empty reply is
// an error.
func (a *Anthropic) text(ctx context.Context, op string, params anthropic.MessageNewParams) (string, error) {
	msg, err := a.send(ctx, op, params)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, block := range msg.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			b.WriteString(text.Text)
		}
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", fmt.Errorf("empty reply")
	}
	return out, nil
}

func (a *Anthropic) logFallback(op string, err error) {
	metrics.AssistantFallbacks.WithLabelValues(op).Inc()
	a.logger.Warn("assistant call failed, using fallback",
		zap.String("operation", op),
		zap.Error(err),
	)
}

func conversation(history []Turn, text string) []anthropic.MessageParam {
	msgs := make([]anthropic.MessageParam, 0, len(history)+1)
	for _, t := range history {
		if strings.TrimSpace(t.Text) == "" {
			continue
		}
		block := anthropic.NewTextBlock(t.Text)
		if t.Role == RoleAssistant {
			// The API requires a user turn first.
			if len(msgs) == 0 {
				continue
			}
			msgs = append(msgs, anthropic.NewAssistantMessage(block))
			continue
		}
		msgs = append(msgs, anthropic.NewUserMessage(block))
	}
	return append(msgs, anthropic.NewUserMessage(anthropic.NewTextBlock(text)))
}

func lastLine(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		return strings.TrimSpace(text[i+1:])
	}
	return text
}
