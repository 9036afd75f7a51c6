package assistant

import (
	"context"
	"iter"
)

var _ Service = Static{}

// Static returns every fallback without making a call. It stands in when no
// API key is configured.
type Static struct{}

func (Static) GroundedAnswer(context.Context, string) GroundedAnswer {
	return GroundedAnswer{Answer: FallbackGroundedAnswer, Sources: []Source{}}
}

func (Static) WeeklyDigest(context.Context, DigestContext) string {
	return FallbackDigest
}

func (Static) MealPlan(context.Context, string) []MealPlanDay {
	return []MealPlanDay{}
}

func (Static) MemoryStory(context.Context, []byte, string, string) string {
	return FallbackMemoryStory
}

func (Static) Converse(context.Context, []Turn, string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		yield("", ErrUnavailable)
	}
}

func (Static) LiveScore(context.Context, string) (LiveScore, bool) {
	return LiveScore{}, false
}
