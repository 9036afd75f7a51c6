package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hearth/internal/assistant"
	"hearth/internal/companion"
	"hearth/internal/model"
	"hearth/internal/scoreboard"
)

func assistantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assistant",
		Short: "Ask the generative assistant",
	}
	cmd.AddCommand(assistantDigestCmd())
	cmd.AddCommand(assistantMealsCmd())
	cmd.AddCommand(assistantAskCmd())
	cmd.AddCommand(assistantScoreCmd())
	cmd.AddCommand(assistantHelperCmd())
	return cmd
}

func assistantDigestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "digest",
		Short: "Write the weekly family update",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer a.Close(ctx)

			digest := a.assistant.WeeklyDigest(ctx, assistant.NewDigestContext(a.state.Data()))
			fmt.Fprintln(os.Stdout, digest)
			return nil
		},
	}
}

func assistantMealsCmd() *cobra.Command {
	var preference string
	cmd := &cobra.Command{
		Use:   "meals",
		Short: "Suggest a three-day meal plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer a.Close(ctx)

			days := a.assistant.MealPlan(ctx, preference)
			if len(days) == 0 {
				fmt.Fprintln(os.Stdout, "No meal plan available.")
				return nil
			}
			for _, day := range days {
				fmt.Fprintf(os.Stdout, "%s\n  Breakfast: %s\n  Lunch:     %s\n  Dinner:    %s\n",
					day.Day, day.Meals.Breakfast, day.Meals.Lunch, day.Meals.Dinner)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&preference, "preference", "", "Dietary preference or theme")
	return cmd
}

func assistantAskCmd() *cobra.Command {
	var topic string
	var list bool
	cmd := &cobra.Command{
		Use:   "ask [QUESTION...]",
		Short: "Answer a question with web sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				printTopics(os.Stdout)
				return nil
			}
			query, ok := assistant.ResolveQuery(strings.Join(args, " "), topic)
			if !ok {
				return fmt.Errorf("give a question or a known --topic (see --topics)")
			}

			ctx := context.Background()
			a, err := openApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer a.Close(ctx)

			answer := a.assistant.GroundedAnswer(ctx, query)
			fmt.Fprintln(os.Stdout, answer.Answer)
			if len(answer.Sources) > 0 {
				fmt.Fprintln(os.Stdout, "\nSources:")
				for _, src := range answer.Sources {
					fmt.Fprintf(os.Stdout, "  - %s <%s>\n", src.Title, src.URI)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&topic, "topic", "", "Preset topic asked when no question is given")
	cmd.Flags().BoolVar(&list, "topics", false, "List the preset topics")
	return cmd
}

func printTopics(out io.Writer) {
	for _, t := range assistant.Topics() {
		fmt.Fprintf(out, "  %-14s %s\n", t.Slug, t.Title)
	}
}

func assistantScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Show the next game or the score of the one in progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer a.Close(ctx)

			poller := scoreboard.NewPoller(a.assistant, func() []model.HockeyGame {
				return a.state.Data().HockeySchedule
			}, scoreboard.Options{GameDuration: a.cfg.Scoreboard.GameDuration}, a.logger)
			reading := poller.Poll(ctx)

			team := a.cfg.Scoreboard.Team
			switch {
			case reading.Live && reading.Score != nil:
				s := reading.Score
				fmt.Fprintf(os.Stdout, "LIVE %s %s - %s %s (%s, %s)\n",
					team, s.TeamScore, s.OpponentScore, reading.Game.Opponent, s.Period, s.TimeRemaining)
			case reading.Live:
				fmt.Fprintf(os.Stdout, "LIVE %s vs %s, score unavailable\n", team, reading.Game.Opponent)
			}

			countdown, ok := scoreboard.NextCountdown(a.state.Data().HockeySchedule, reading.CheckedAt)
			if !ok {
				fmt.Fprintln(os.Stdout, "No upcoming games.")
				return nil
			}
			fmt.Fprintf(os.Stdout, "Next: vs %s (%s) in %dd %dh %dm %ds\n",
				countdown.Game.Opponent, countdown.Game.Location,
				countdown.Days, countdown.Hours, countdown.Minutes, countdown.Seconds)
			return nil
		},
	}
}

func assistantHelperCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "helper MESSAGE...",
		Short: "Talk to the in-app helper",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer a.Close(ctx)

			thread := companion.NewThread(a.assistant, a.logger)
			streamed := false
			reply, err := thread.Ask(ctx, strings.Join(args, " "), nil, func(chunk string) {
				streamed = true
				fmt.Fprint(os.Stdout, chunk)
			})
			if err != nil {
				return err
			}
			if !streamed {
				fmt.Fprint(os.Stdout, reply)
			}
			fmt.Fprintln(os.Stdout)
			return nil
		},
	}
}
