package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of suggestion task being performed.
type TaskType string

const (
	TaskAgenda    TaskType = "agenda"
	TaskRoutine   TaskType = "routine"
	TaskQuote     TaskType = "quote"
	TaskInsight   TaskType = "insight"
	TaskChallenge TaskType = "challenge"
)

// TaskConfig holds per-task model parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the LLM subsystem.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults. Suggestions are
// disabled by default; the agenda renders deterministically without them.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  10000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskAgenda:    {Temperature: 0.4, MaxTokens: 2048, TimeoutMs: 15000},
			TaskRoutine:   {Temperature: 0.4, MaxTokens: 4096, TimeoutMs: 30000},
			TaskQuote:     {Temperature: 0.8, MaxTokens: 256, TimeoutMs: 6000},
			TaskInsight:   {Temperature: 0.5, MaxTokens: 1024, TimeoutMs: 10000},
			TaskChallenge: {Temperature: 0.5, MaxTokens: 512, TimeoutMs: 10000},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables, falling
// back to defaults for any unset values.
func LoadConfig() Config {
	return ApplyEnv(DefaultConfig())
}

// ApplyEnv overlays VIDA_LLM_* environment variables onto cfg. Environment
// values win over whatever the caller seeded (defaults or file config).
func ApplyEnv(cfg Config) Config {
	if v := os.Getenv("VIDA_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("VIDA_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("VIDA_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("VIDA_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("VIDA_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("VIDA_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskAgenda, "VIDA_LLM_AGENDA_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskRoutine, "VIDA_LLM_ROUTINE_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskQuote, "VIDA_LLM_QUOTE_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskInsight, "VIDA_LLM_INSIGHT_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskChallenge, "VIDA_LLM_CHALLENGE_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type. Uses
// the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
