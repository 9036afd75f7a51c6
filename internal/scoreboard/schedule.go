// Package scoreboard follows the family's hockey schedule: the countdown
// to the next game and the live score of a game in progress.
package scoreboard

import (
	"slices"
	"time"

	"hearth/internal/model"
)

// DefaultGameDuration is how long after puck drop a game counts as live.
const DefaultGameDuration = 3 * time.Hour

// LiveGame returns the first game under way at now. Games with an
// unparseable date are ignored.
func LiveGame(games []model.HockeyGame, now time.Time, duration time.Duration) (model.HockeyGame, bool) {
	for _, g := range games {
		start, err := time.Parse(time.RFC3339, g.Date)
		if err != nil {
			continue
		}
		if !now.Before(start) && !now.After(start.Add(duration)) {
			return g, true
		}
	}
	return model.HockeyGame{}, false
}

// Upcoming returns the games starting after now, soonest first.
func Upcoming(games []model.HockeyGame, now time.Time) []model.HockeyGame {
	type dated struct {
		game  model.HockeyGame
		start time.Time
	}
	var future []dated
	for _, g := range games {
		start, err := time.Parse(time.RFC3339, g.Date)
		if err != nil || !start.After(now) {
			continue
		}
		future = append(future, dated{g, start})
	}
	slices.SortStableFunc(future, func(a, b dated) int { return a.start.Compare(b.start) })

	out := make([]model.HockeyGame, 0, len(future))
	for _, d := range future {
		out = append(out, d.game)
	}
	return out
}

type Countdown struct {
	Game    model.HockeyGame `json:"game"`
	Days    int              `json:"days"`
	Hours   int              `json:"hours"`
	Minutes int              `json:"minutes"`
	Seconds int              `json:"seconds"`
}

// NextCountdown reports the time left until the next game, if any.
func NextCountdown(games []model.HockeyGame, now time.Time) (Countdown, bool) {
	upcoming := Upcoming(games, now)
	if len(upcoming) == 0 {
		return Countdown{}, false
	}
	next := upcoming[0]
	start, _ := time.Parse(time.RFC3339, next.Date)
	left := start.Sub(now)
	return Countdown{
		Game:    next,
		Days:    int(left / (24 * time.Hour)),
		Hours:   int(left % (24 * time.Hour) / time.Hour),
		Minutes: int(left % time.Hour / time.Minute),
		Seconds: int(left % time.Minute / time.Second),
	}, true
}
