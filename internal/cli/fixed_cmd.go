package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pbarbosa/vida/internal/cli/formatter"
	"github.com/pbarbosa/vida/internal/domain"
)

func newFixedCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixed",
		Short: "Manage weekly recurring commitments",
	}
	cmd.AddCommand(
		newFixedAddCmd(app),
		newFixedListCmd(app),
		newFixedExceptCmd(app),
		newFixedRemoveCmd(app),
	)
	return cmd
}

func newFixedAddCmd(app *App) *cobra.Command {
	var days, start, end, location string

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Create a recurring rule (interactive wizard when no flags given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			rule := &domain.RecurrenceRule{Location: location}
			if len(args) == 1 {
				rule.Title = args[0]
			}

			flagDriven := days != "" || start != "" || end != ""
			if !flagDriven {
				if !app.IsInteractive() {
					return fmt.Errorf("missing --days/--start/--end and stdin is not a terminal")
				}
				if err := runFixedWizard(rule); err != nil {
					return err
				}
			} else {
				weekdays, err := parseWeekdays(days)
				if err != nil {
					return err
				}
				rule.DaysOfWeek = weekdays
				rule.StartTimeOfDay = start
				rule.EndTimeOfDay = end
			}

			if err := validateClockRange(rule.StartTimeOfDay, rule.EndTimeOfDay); err != nil {
				return err
			}
			if rule.Title == "" {
				return fmt.Errorf("title is required")
			}
			if len(rule.DaysOfWeek) == 0 {
				return fmt.Errorf("at least one weekday is required")
			}

			if err := app.Rules.Create(ctx, rule); err != nil {
				return err
			}
			fmt.Printf("Created rule %s\n", formatter.Bold(rule.Title))
			return nil
		},
	}

	cmd.Flags().StringVar(&days, "days", "", "Comma-separated weekdays (mon,tue,...)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	cmd.Flags().StringVar(&location, "location", "", "Location")
	return cmd
}

func newFixedListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recurring rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := app.Rules.List(context.Background())
			if err != nil {
				return err
			}
			if len(rules) == 0 {
				fmt.Println(formatter.Dim("No recurring rules."))
				return nil
			}
			for _, r := range rules {
				line := fmt.Sprintf("%s  %s %s %s-%s",
					formatter.Dim(shortID(r.ID)),
					r.Title,
					weekdaysString(r.DaysOfWeek),
					r.StartTimeOfDay, r.EndTimeOfDay)
				if r.Location != "" {
					line += formatter.Dim(" @ " + r.Location)
				}
				if n := len(r.ExceptionDates); n > 0 {
					line += formatter.Dim(fmt.Sprintf(" (%d exceptions)", n))
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func newFixedExceptCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "except <id> <date>",
		Short: "Skip a rule on one date (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveRuleID(ctx, app, args[0])
			if err != nil {
				return err
			}
			date, err := time.ParseInLocation(domain.DateLayout, args[1], time.Local)
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", args[1], err)
			}
			return app.Rules.AddException(ctx, id, date)
		},
	}
}

func newFixedRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a recurring rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveRuleID(ctx, app, args[0])
			if err != nil {
				return err
			}
			return app.Rules.Delete(ctx, id)
		},
	}
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "mon": time.Monday, "tue": time.Tuesday,
	"wed": time.Wednesday, "thu": time.Thursday, "fri": time.Friday,
	"sat": time.Saturday,
}

func parseWeekdays(csv string) ([]time.Weekday, error) {
	if csv == "" {
		return nil, fmt.Errorf("--days is required")
	}
	seen := map[time.Weekday]bool{}
	var out []time.Weekday
	for _, part := range strings.Split(csv, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if len(name) > 3 {
			name = name[:3]
		}
		d, ok := weekdayNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", part)
		}
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func weekdaysString(days []time.Weekday) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = d.String()[:3]
	}
	return strings.Join(parts, ",")
}

func validateClockRange(start, end string) error {
	s, err := time.Parse("15:04", start)
	if err != nil {
		return fmt.Errorf("invalid start time %q: %w", start, err)
	}
	e, err := time.Parse("15:04", end)
	if err != nil {
		return fmt.Errorf("invalid end time %q: %w", end, err)
	}
	if !e.After(s) {
		return fmt.Errorf("end time %s must be after start time %s", end, start)
	}
	return nil
}

func resolveRuleID(ctx context.Context, app *App, input string) (string, error) {
	rules, err := app.Rules.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(rules))
	for i, r := range rules {
		ids[i] = r.ID
	}
	return resolveID(ids, input, "rule")
}
