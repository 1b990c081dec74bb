package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of LLM task being performed. One task
// exists per insight kind; timeouts and sampling differ per task.
type TaskType string

const (
	TaskDaily    TaskType = "daily"
	TaskWeekly   TaskType = "weekly"
	TaskMonthly  TaskType = "monthly"
	TaskActivity TaskType = "activity"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig with sensible defaults.
// LLM is disabled by default.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  10000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskDaily:    {Temperature: 0.6, MaxTokens: 256, TimeoutMs: 8000},
			TaskWeekly:   {Temperature: 0.6, MaxTokens: 384, TimeoutMs: 10000},
			TaskMonthly:  {Temperature: 0.6, MaxTokens: 512, TimeoutMs: 15000},
			TaskActivity: {Temperature: 0.6, MaxTokens: 256, TimeoutMs: 8000},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	if v := os.Getenv("RECAP_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("RECAP_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("RECAP_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("RECAP_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("RECAP_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("RECAP_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskDaily, "RECAP_LLM_DAILY_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskWeekly, "RECAP_LLM_WEEKLY_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskMonthly, "RECAP_LLM_MONTHLY_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskActivity, "RECAP_LLM_ACTIVITY_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *LLMConfig, task TaskType, envName string) {
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
