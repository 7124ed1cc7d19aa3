package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/pbarbosa/vida/internal/cli/formatter"
	"github.com/pbarbosa/vida/internal/domain"
)

func newHabitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage habits and daily progress",
	}
	cmd.AddCommand(
		newHabitAddCmd(app),
		newHabitListCmd(app),
		newHabitLogCmd(app),
		newHabitRemoveCmd(app),
		newHabitChallengeCmd(app),
	)
	return cmd
}

func newHabitAddCmd(app *App) *cobra.Command {
	var goal float64
	var unit string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			habit := &domain.Habit{Name: args[0]}
			if goal > 0 {
				habit.Kind = domain.HabitQuantitative
				habit.DailyGoal = goal
				habit.ProgressUnit = unit
			}
			if err := app.Habits.Create(context.Background(), habit); err != nil {
				return err
			}
			fmt.Printf("Created habit %s\n", formatter.Bold(habit.Name))
			return nil
		},
	}

	cmd.Flags().Float64Var(&goal, "goal", 0, "Daily amount to hit (omit for done/not-done habits)")
	cmd.Flags().StringVar(&unit, "unit", "", "Unit for the daily amount (pages, minutes, ...)")
	return cmd
}

func newHabitListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List habits with today's progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			habits, err := app.Habits.List(ctx)
			if err != nil {
				return err
			}
			if len(habits) == 0 {
				fmt.Println(formatter.Dim("No habits."))
				return nil
			}
			logs, err := app.Habits.LogsForDate(ctx, time.Now())
			if err != nil {
				return err
			}
			progress := map[string]float64{}
			for _, l := range logs {
				progress[l.HabitID] = l.Progress
			}

			for _, h := range habits {
				var status string
				if h.Kind == domain.HabitQuantitative {
					status = fmt.Sprintf("%.0f/%.0f %s", progress[h.ID], h.DailyGoal, h.ProgressUnit)
					if progress[h.ID] >= h.DailyGoal {
						status = formatter.StyleGreen.Render(status)
					}
				} else if progress[h.ID] > 0 {
					status = formatter.StyleGreen.Render("done")
				} else {
					status = formatter.Dim("pending")
				}
				fmt.Printf("%s  %s %s\n", formatter.Dim(shortID(h.ID)), h.Name, status)
			}
			return nil
		},
	}
}

func newHabitLogCmd(app *App) *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "log <id> [amount]",
		Short: "Record progress for a habit (defaults to done)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveHabitID(ctx, app, args[0])
			if err != nil {
				return err
			}
			amount := 1.0
			if len(args) == 2 {
				amount, err = strconv.ParseFloat(args[1], 64)
				if err != nil {
					return fmt.Errorf("invalid amount %q: %w", args[1], err)
				}
			}
			date, err := parseDateFlag(dateStr)
			if err != nil {
				return err
			}
			return app.Habits.LogProgress(ctx, id, date, amount)
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Log for another day (YYYY-MM-DD)")
	return cmd
}

func newHabitRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a habit and its logs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveHabitID(ctx, app, args[0])
			if err != nil {
				return err
			}
			return app.Habits.Delete(ctx, id)
		},
	}
}

func newHabitChallengeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "challenge",
		Short: "Get this week's habit challenge",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Challenge == nil {
				return fmt.Errorf("challenges need the model enabled (set VIDA_LLM_ENABLED=true)")
			}
			ctx := context.Background()
			habits, err := app.Habits.List(ctx)
			if err != nil {
				return err
			}
			weekStart := startOfWeek(time.Now())
			completion, err := app.Habits.WeeklyCompletion(ctx, weekStart.AddDate(0, 0, -7))
			if err != nil {
				return err
			}

			challenge, err := app.Challenge.Weekly(ctx, habits, completion)
			if err != nil {
				return fmt.Errorf("building challenge: %w", err)
			}
			fmt.Printf("%s %s %s\n",
				formatter.StyleYellow.Render("★"),
				challenge.Title,
				formatter.Dim(fmt.Sprintf("(target %d%%)", challenge.TargetPct)))
			return nil
		},
	}
}

// startOfWeek returns the Monday of t's week.
func startOfWeek(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

func resolveHabitID(ctx context.Context, app *App, input string) (string, error) {
	habits, err := app.Habits.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(habits))
	for i, h := range habits {
		ids[i] = h.ID
	}
	return resolveID(ids, input, "habit")
}
