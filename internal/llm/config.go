package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskSuggest  TaskType = "suggest"
	TaskFollowup TaskType = "followup"
	TaskPlan     TaskType = "plan"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the LLM subsystem.
type Config struct {
	APIKey     string
	Endpoint   string
	Model      string
	LogCalls   bool
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// Enabled reports whether the client can make calls at all. Without an API
// key the whole suggestion/plan feature set degrades to deterministic
// behavior; the interview itself keeps working.
func (c Config) Enabled() bool {
	return c.APIKey != ""
}

// DefaultConfig returns a Config with sensible defaults. No API key is set,
// so the client starts disabled.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "https://api.openai.com/v1",
		Model:      "gpt-4o-mini",
		TimeoutMs:  15000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskSuggest:  {Temperature: 0.2, MaxTokens: 512, TimeoutMs: 8000},
			TaskFollowup: {Temperature: 0.4, MaxTokens: 512, TimeoutMs: 8000},
			TaskPlan:     {Temperature: 0.3, MaxTokens: 2048, TimeoutMs: 45000},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables, falling back
// to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("MENTOR_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("MENTOR_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("MENTOR_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("MENTOR_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("MENTOR_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskSuggest, "MENTOR_LLM_SUGGEST_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskFollowup, "MENTOR_LLM_FOLLOWUP_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskPlan, "MENTOR_LLM_PLAN_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
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
