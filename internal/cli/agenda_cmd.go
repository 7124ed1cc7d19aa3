package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pbarbosa/vida/internal/cli/formatter"
	"github.com/pbarbosa/vida/internal/contract"
	"github.com/pbarbosa/vida/internal/domain"
)

func parseDateFlag(s string) (time.Time, error) {
	if s == "" || s == "today" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	}
	d, err := time.ParseInLocation(domain.DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return d, nil
}

func newAgendaCmd(app *App) *cobra.Command {
	var dateStr string
	var noAI, refresh, interactive bool

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Show the day's timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateFlag(dateStr)
			if err != nil {
				return err
			}

			if interactive && app.IsInteractive != nil && app.IsInteractive() {
				model := newDayModel(app, date)
				_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
				return err
			}

			req := contract.NewDayRequest(date)
			req.OriginHour = app.OriginHour
			req.IncludeAI = !noAI
			req.RefreshAI = refresh

			resp, err := app.Agenda.Day(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Println(formatter.DayHeader(domain.DateString(date), date.Weekday().String()))
			fmt.Println(formatter.Timeline(resp.Layout, req.OriginHour))
			if resp.AIWarning != "" {
				fmt.Println(formatter.Dim(resp.AIWarning))
			}
			if hl := formatter.Highlights(resp.Highlights); hl != "" {
				fmt.Println()
				fmt.Print(hl)
			}
			if resp.Suggestion != "" {
				fmt.Println()
				fmt.Println(formatter.Bold("Tip: ") + resp.Suggestion)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Day to show (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&noAI, "no-ai", false, "Skip model suggestions")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Regenerate suggestions even when cached")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Open the navigable day view")

	cmd.AddCommand(newAgendaWatchCmd(app))
	return cmd
}

func newAgendaWatchCmd(app *App) *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Open the navigable day view",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateFlag(dateStr)
			if err != nil {
				return err
			}
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("watch needs an interactive terminal")
			}
			_, err = tea.NewProgram(newDayModel(app, date), tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Day to open (YYYY-MM-DD, default today)")
	return cmd
}
