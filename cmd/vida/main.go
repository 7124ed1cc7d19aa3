package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/pbarbosa/vida/internal/cli"
	"github.com/pbarbosa/vida/internal/config"
	"github.com/pbarbosa/vida/internal/db"
	"github.com/pbarbosa/vida/internal/intelligence"
	"github.com/pbarbosa/vida/internal/llm"
	"github.com/pbarbosa/vida/internal/service"
	"github.com/pbarbosa/vida/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Env var wins over the config file for the database location.
	dbPath := os.Getenv("VIDA_DB")
	if dbPath == "" {
		dbPath = cfg.DatabasePath
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	kv := store.NewSQLiteKV(database)

	app := &cli.App{
		Tasks:        service.NewTaskService(kv),
		Habits:       service.NewHabitService(kv),
		Goals:        service.NewGoalService(kv),
		Appointments: service.NewAppointmentService(kv),
		Rules:        service.NewRuleService(kv),
		Finance:      service.NewFinanceService(kv),
		Mood:         service.NewMoodService(kv),
		Profile:      service.NewProfileService(kv),
		Import:       service.NewImportService(kv),
		OriginHour:   cfg.OriginHour,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// File config seeds the LLM setup; VIDA_LLM_* env vars override it.
	llmCfg := llm.DefaultConfig()
	llmCfg.Enabled = cfg.LLM.Enabled
	if cfg.LLM.Endpoint != "" {
		llmCfg.Endpoint = cfg.LLM.Endpoint
	}
	if cfg.LLM.Model != "" {
		llmCfg.Model = cfg.LLM.Model
	}
	llmCfg = llm.ApplyEnv(llmCfg)

	var suggester intelligence.AgendaService
	var cache *intelligence.SuggestionCache
	var llmClient llm.Client
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient = llm.NewOllamaClient(llmCfg, observer)

		cache = intelligence.NewSuggestionCache()
		suggester = intelligence.NewAgendaService(llmClient, cache)
		app.Routine = intelligence.NewRoutineService(llmClient)
		app.Insight = intelligence.NewInsightService(llmClient)
		app.Challenge = intelligence.NewChallengeService(llmClient)
	}

	// Quote works without a model: it falls back to built-in quotes.
	app.Quote = intelligence.NewQuoteService(llmClient)
	app.Agenda = service.NewAgendaService(kv, suggester, cache)

	return cli.NewRootCmd(app).Execute()
}
