package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pbarbosa/vida/internal/cli/formatter"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and edit your profile",
	}
	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileSetCmd(app),
	)
	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profile.Get(context.Background())
			if err != nil {
				return err
			}
			name := p.Name
			if name == "" {
				name = formatter.Dim("(not set)")
			}
			fmt.Println("Name:    " + name)
			fmt.Println("Plan:    " + string(p.Plan))
			fmt.Printf("Day:     %s - %s\n", p.Routine.StartTime, p.Routine.EndTime)
			if len(p.Routine.Priorities) > 0 {
				fmt.Println("Focus:   " + strings.Join(p.Routine.Priorities, ", "))
			}
			return nil
		},
	}
}

func newProfileSetCmd(app *App) *cobra.Command {
	var name, start, end, priorities string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Profile.Get(ctx)
			if err != nil {
				return err
			}

			if name != "" {
				p.Name = name
			}
			if start != "" {
				if _, err := time.Parse("15:04", start); err != nil {
					return fmt.Errorf("invalid start time %q: %w", start, err)
				}
				p.Routine.StartTime = start
			}
			if end != "" {
				if _, err := time.Parse("15:04", end); err != nil {
					return fmt.Errorf("invalid end time %q: %w", end, err)
				}
				p.Routine.EndTime = end
			}
			if priorities != "" {
				parts := strings.Split(priorities, ",")
				for i := range parts {
					parts[i] = strings.TrimSpace(parts[i])
				}
				p.Routine.Priorities = parts
			}

			return app.Profile.Save(ctx, p)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&start, "day-start", "", "Preferred day start (HH:MM)")
	cmd.Flags().StringVar(&end, "day-end", "", "Preferred day end (HH:MM)")
	cmd.Flags().StringVar(&priorities, "priorities", "", "Comma-separated focus areas")
	return cmd
}
