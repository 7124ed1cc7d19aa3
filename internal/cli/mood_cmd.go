package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pbarbosa/vida/internal/cli/formatter"
	"github.com/pbarbosa/vida/internal/domain"
	"github.com/pbarbosa/vida/internal/intelligence"
)

var moodIcons = map[domain.Mood]string{
	domain.MoodHappy:    "😊",
	domain.MoodNeutral:  "😐",
	domain.MoodSad:      "😢",
	domain.MoodTired:    "😴",
	domain.MoodStressed: "😫",
}

func newMoodCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mood",
		Short: "Daily mood check-ins",
	}
	cmd.AddCommand(
		newMoodCheckinCmd(app),
		newMoodLogCmd(app),
		newMoodInsightCmd(app),
	)
	return cmd
}

func newMoodCheckinCmd(app *App) *cobra.Command {
	var notes, dateFlag string

	cmd := &cobra.Command{
		Use:   "checkin <happy|neutral|sad|tired|stressed>",
		Short: "Record today's mood",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mood := domain.Mood(args[0])
			if _, ok := moodIcons[mood]; !ok {
				return fmt.Errorf("unknown mood %q", args[0])
			}
			date, err := parseDateFlag(dateFlag)
			if err != nil {
				return err
			}
			if err := app.Mood.CheckIn(context.Background(), date, mood, notes); err != nil {
				return err
			}
			fmt.Printf("Logged %s %s\n", moodIcons[mood], mood)
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Optional note")
	cmd.Flags().StringVar(&dateFlag, "date", "", "Date to log for (YYYY-MM-DD, default today)")
	return cmd
}

func newMoodLogCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show recent check-ins",
		RunE: func(cmd *cobra.Command, args []string) error {
			logs, err := app.Mood.Recent(context.Background(), days, time.Now())
			if err != nil {
				return err
			}
			if len(logs) == 0 {
				fmt.Println(formatter.Dim("No mood logs yet."))
				return nil
			}
			for _, l := range logs {
				line := fmt.Sprintf("%s  %s %s", formatter.Dim(l.Date), moodIcons[l.Mood], l.Mood)
				if l.Notes != "" {
					line += formatter.Dim(" — " + l.Notes)
				}
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 14, "Window size in days")
	return cmd
}

func newMoodInsightCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "insight",
		Short: "Summarize recent mood trends",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Insight == nil {
				return fmt.Errorf("insights need the model backend; set VIDA_LLM_ENABLED=true")
			}
			ctx := context.Background()
			logs, err := app.Mood.Recent(ctx, 14, time.Now())
			if err != nil {
				return err
			}
			insight, err := app.Insight.MoodInsight(ctx, logs)
			if errors.Is(err, intelligence.ErrNotEnoughMoodData) {
				fmt.Println(formatter.Dim("Not enough check-ins yet. Log a few days first."))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Println(insight.Summary)
			if insight.Suggestion != "" {
				fmt.Println(formatter.Dim("Tip: " + insight.Suggestion))
			}
			return nil
		},
	}
}
