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

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage long-running goals",
	}
	cmd.AddCommand(
		newGoalAddCmd(app),
		newGoalListCmd(app),
		newGoalProgressCmd(app),
		newGoalRemoveCmd(app),
	)
	return cmd
}

func newGoalAddCmd(app *App) *cobra.Command {
	var target float64
	var unit, deadline string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if target <= 0 {
				return fmt.Errorf("--target must be positive")
			}
			goal := &domain.Goal{
				Name:         args[0],
				TargetValue:  target,
				ProgressUnit: unit,
			}
			if deadline != "" {
				d, err := time.ParseInLocation(domain.DateLayout, deadline, time.Local)
				if err != nil {
					return fmt.Errorf("invalid deadline %q: %w", deadline, err)
				}
				goal.Deadline = &d
			}
			if err := app.Goals.Create(context.Background(), goal); err != nil {
				return err
			}
			fmt.Printf("Created goal %s\n", formatter.Bold(goal.Name))
			return nil
		},
	}

	cmd.Flags().Float64Var(&target, "target", 0, "Amount that completes the goal")
	cmd.Flags().StringVar(&unit, "unit", "", "Unit of progress (euros, km, chapters, ...)")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	return cmd
}

func newGoalListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals with progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			goals, err := app.Goals.List(context.Background())
			if err != nil {
				return err
			}
			if len(goals) == 0 {
				fmt.Println(formatter.Dim("No goals."))
				return nil
			}
			for _, g := range goals {
				pct := 0.0
				if g.TargetValue > 0 {
					pct = g.CurrentProgress / g.TargetValue * 100
				}
				status := fmt.Sprintf("%.0f/%.0f %s (%.0f%%)", g.CurrentProgress, g.TargetValue, g.ProgressUnit, pct)
				if g.CurrentProgress >= g.TargetValue {
					status = formatter.StyleGreen.Render(status)
				}
				line := fmt.Sprintf("%s  %s %s", formatter.Dim(shortID(g.ID)), g.Name, status)
				if g.Deadline != nil {
					line += formatter.Dim(" by " + domain.DateString(*g.Deadline))
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func newGoalProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress <id> <delta>",
		Short: "Add progress to a goal (negative to undo)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}
			delta, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid delta %q: %w", args[1], err)
			}
			return app.Goals.UpdateProgress(ctx, id, delta)
		},
	}
}

func newGoalRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}
			return app.Goals.Delete(ctx, id)
		},
	}
}

func resolveGoalID(ctx context.Context, app *App, input string) (string, error) {
	goals, err := app.Goals.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(goals))
	for i, g := range goals {
		ids[i] = g.ID
	}
	return resolveID(ids, input, "goal")
}
