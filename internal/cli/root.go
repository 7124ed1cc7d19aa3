package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pbarbosa/vida/internal/intelligence"
	"github.com/pbarbosa/vida/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Tasks        service.TaskService
	Habits       service.HabitService
	Goals        service.GoalService
	Appointments service.AppointmentService
	Rules        service.RuleService
	Finance      service.FinanceService
	Mood         service.MoodService
	Profile      service.ProfileService
	Agenda       service.AgendaService
	Import       service.ImportService

	// Model-backed services. Routine, Insight, and Challenge are nil when
	// the LLM is disabled; Quote is always set and falls back to built-in
	// quotes.
	Routine   intelligence.RoutineService
	Quote     intelligence.QuoteService
	Insight   intelligence.InsightService
	Challenge intelligence.ChallengeService

	// OriginHour anchors the agenda timeline.
	OriginHour int

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "vida" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "vida",
		Short:         "Personal agenda, habits, goals, and finances",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Accept underscores in flag names (--no_ai works like --no-ai).
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	root.AddCommand(
		newAgendaCmd(app),
		newTaskCmd(app),
		newHabitCmd(app),
		newGoalCmd(app),
		newFixedCmd(app),
		newMoodCmd(app),
		newFinanceCmd(app),
		newRoutineCmd(app),
		newQuoteCmd(app),
		newImportCmd(app),
		newProfileCmd(app),
	)

	return root
}
