package assistant

import (
	"strings"

	"github.com/tidwall/gjson"
)

// ParseMealPlan reads a JSON array of meal-plan days. Anything else,
// including an array with an incomplete day, yields an empty plan.
func ParseMealPlan(text string) ([]MealPlanDay, bool) {
	text = stripFence(strings.TrimSpace(text))
	if !strings.HasPrefix(text, "[") || !strings.HasSuffix(text, "]") || !gjson.Valid(text) {
		return []MealPlanDay{}, false
	}

	days := gjson.Parse(text).Array()
	plan := make([]MealPlanDay, 0, len(days))
	for _, d := range days {
		day, meals := d.Get("day"), d.Get("meals")
		if day.Type != gjson.String || !meals.IsObject() {
			return []MealPlanDay{}, false
		}
		breakfast, lunch, dinner := meals.Get("breakfast"), meals.Get("lunch"), meals.Get("dinner")
		if !breakfast.Exists() || !lunch.Exists() || !dinner.Exists() {
			return []MealPlanDay{}, false
		}
		plan = append(plan, MealPlanDay{
			Day: day.String(),
			Meals: Meals{
				Breakfast: breakfast.String(),
				Lunch:     lunch.String(),
				Dinner:    dinner.String(),
			},
		})
	}
	return plan, true
}

// ParseLiveScore reads TEAM,OPPONENT,PERIOD,TIME.
func ParseLiveScore(text string) (LiveScore, bool) {
	parts := strings.Split(strings.TrimSpace(text), ",")
	if len(parts) != 4 {
		return LiveScore{}, false
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return LiveScore{
		TeamScore:     parts[0],
		OpponentScore: parts[1],
		Period:        parts[2],
		TimeRemaining: parts[3],
	}, true
}

// stripFence removes a surrounding ``` or ```json code fence.
func stripFence(text string) string {
	rest, ok := strings.CutPrefix(text, "```")
	if !ok {
		return text
	}
	rest = strings.TrimPrefix(rest, "json")
	rest, _ = strings.CutSuffix(strings.TrimSpace(rest), "```")
	return strings.TrimSpace(rest)
}
