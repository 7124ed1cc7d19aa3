package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/pbarbosa/vida/internal/domain"
)

// runFixedWizard fills the rule in place through an interactive form.
func runFixedWizard(rule *domain.RecurrenceRule) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Work, Gym, Portuguese class...").
				Value(&rule.Title).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewMultiSelect[time.Weekday]().
				Title("Days of week").
				Options(
					huh.NewOption("Monday", time.Monday),
					huh.NewOption("Tuesday", time.Tuesday),
					huh.NewOption("Wednesday", time.Wednesday),
					huh.NewOption("Thursday", time.Thursday),
					huh.NewOption("Friday", time.Friday),
					huh.NewOption("Saturday", time.Saturday),
					huh.NewOption("Sunday", time.Sunday),
				).
				Value(&rule.DaysOfWeek).
				Validate(func(days []time.Weekday) error {
					if len(days) == 0 {
						return fmt.Errorf("pick at least one day")
					}
					return nil
				}),
		),
		huh.NewGroup(
			clockInput("Start time", "09:00", &rule.StartTimeOfDay),
			clockInput("End time", "17:00", &rule.EndTimeOfDay),
			huh.NewInput().
				Title("Location (optional)").
				Value(&rule.Location),
		),
	)
	return form.Run()
}

func clockInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(func(s string) error {
			if _, err := time.Parse("15:04", s); err != nil {
				return fmt.Errorf("use HH:MM")
			}
			return nil
		})
}
