package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pbarbosa/vida/internal/cli/formatter"
	"github.com/pbarbosa/vida/internal/domain"
)

func newImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import external calendars",
	}
	cmd.AddCommand(newImportICSCmd(app))
	return cmd
}

func newImportICSCmd(app *App) *cobra.Command {
	var fromFlag, toFlag string

	cmd := &cobra.Command{
		Use:   "ics <path>",
		Short: "Import appointments from an .ics file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
			to := from.AddDate(0, 0, 90)

			var err error
			if fromFlag != "" {
				from, err = time.ParseInLocation(domain.DateLayout, fromFlag, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --from %q: %w", fromFlag, err)
				}
			}
			if toFlag != "" {
				to, err = time.ParseInLocation(domain.DateLayout, toFlag, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --to %q: %w", toFlag, err)
				}
				// Include the whole final day.
				to = to.AddDate(0, 0, 1).Add(-time.Second)
			}
			if to.Before(from) {
				return fmt.Errorf("--to is before --from")
			}

			result, err := app.Import.ImportICS(context.Background(), args[0], from, to)
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d appointments", result.Imported)
			if result.Skipped > 0 {
				fmt.Print(formatter.Dim(fmt.Sprintf(" (%d already present)", result.Skipped)))
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", "", "Window start (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&toFlag, "to", "", "Window end (YYYY-MM-DD, default +90 days)")
	return cmd
}
