package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pbarbosa/vida/internal/cli/formatter"
	"github.com/pbarbosa/vida/internal/domain"
)

func newRoutineCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "routine",
		Short: "Draft a daily routine from your preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Routine == nil {
				return fmt.Errorf("routines need the model backend; set VIDA_LLM_ENABLED=true")
			}
			ctx := context.Background()

			profile, err := app.Profile.Get(ctx)
			if err != nil {
				return err
			}
			mood := domain.Mood("")
			if log, err := app.Mood.ForDate(ctx, time.Now()); err == nil && log != nil {
				mood = log.Mood
			}

			items, err := app.Routine.Draft(ctx, profile.Routine, mood)
			if err != nil {
				return err
			}
			fmt.Print(formatter.Routine(items))
			return nil
		},
	}
}
