package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pbarbosa/vida/internal/cli/formatter"
	"github.com/pbarbosa/vida/internal/domain"
)

func newQuoteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "quote",
		Short: "Print a motivational quote",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			mood := domain.Mood("")
			if log, err := app.Mood.ForDate(ctx, time.Now()); err == nil && log != nil {
				mood = log.Mood
			}
			q := app.Quote.Daily(ctx, mood)
			fmt.Printf("%q\n", q.Text)
			fmt.Println(formatter.Dim("— " + q.Author))
			return nil
		},
	}
}
