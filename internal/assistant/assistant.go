// Package assistant is the household's generative helper. Every operation
// has a fixed fallback value, so callers never handle errors from it; the
// one exception is the streaming conversation, which reports failure through
// its iterator.
package assistant

import (
	"context"
	"errors"
	"iter"
)

const (
	FallbackGroundedAnswer = "Sorry, I encountered an error while trying to get suggestions. Please try again later."
	FallbackDigest         = "Sorry, I couldn't generate the update right now. Please try again later."
	FallbackMemoryStory    = "There was a problem creating the story for this memory. Please try again."
	FallbackConversation   = "Sorry, I encountered an error. Please try again."
)

// ErrUnavailable is yielded by Converse when no model is configured.
var ErrUnavailable = errors.New("assistant: unavailable")

type Service interface {
	// GroundedAnswer answers query with web sources. On failure the answer
	// is FallbackGroundedAnswer and there are no sources.
	GroundedAnswer(ctx context.Context, query string) GroundedAnswer
	// WeeklyDigest writes a plain-text family newsletter, or FallbackDigest.
	WeeklyDigest(ctx context.Context, dc DigestContext) string
	// MealPlan returns a short meal plan, or an empty list.
	MealPlan(ctx context.Context, preference string) []MealPlanDay
	// MemoryStory writes a short story for a photo, or FallbackMemoryStory.
	MemoryStory(ctx context.Context, image []byte, mimeType, note string) string
	// Converse streams the reply to text, given the earlier turns.
	Converse(ctx context.Context, history []Turn, text string) iter.Seq2[string, error]
	// LiveScore reports the score of a game in progress, if one can be found.
	LiveScore(ctx context.Context, opponent string) (LiveScore, bool)
}

type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

type GroundedAnswer struct {
	Answer  string   `json:"answer"`
	Sources []Source `json:"sources"`
}

type Meals struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}

type MealPlanDay struct {
	Day   string `json:"day"`
	Meals Meals  `json:"meals"`
}

// LiveScore is TeamScore for the followed team, OpponentScore for the other.
type LiveScore struct {
	TeamScore     string `json:"teamScore"`
	OpponentScore string `json:"opponentScore"`
	Period        string `json:"period"`
	TimeRemaining string `json:"timeRemaining"`
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message of a helper conversation.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}
