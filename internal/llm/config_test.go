package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_Disabled(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 10000, cfg.TaskTimeout(TaskWeekly))
}

func TestLoadConfig_TaskTimeoutOverrides(t *testing.T) {
	t.Setenv("RECAP_LLM_TIMEOUT_MS", "9000")
	t.Setenv("RECAP_LLM_DAILY_TIMEOUT_MS", "12000")
	t.Setenv("RECAP_LLM_MONTHLY_TIMEOUT_MS", "20000")

	cfg := LoadConfig()

	assert.Equal(t, 9000, cfg.TimeoutMs)
	assert.Equal(t, 12000, cfg.TaskTimeout(TaskDaily))
	assert.Equal(t, 20000, cfg.TaskTimeout(TaskMonthly))
	assert.Equal(t, 10000, cfg.TaskTimeout(TaskWeekly))
}

func TestLoadConfig_InvalidTaskTimeoutOverrideIgnored(t *testing.T) {
	t.Setenv("RECAP_LLM_DAILY_TIMEOUT_MS", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, 8000, cfg.TaskTimeout(TaskDaily))
}

func TestLoadConfig_EnabledAndModel(t *testing.T) {
	t.Setenv("RECAP_LLM_ENABLED", "true")
	t.Setenv("RECAP_LLM_MODEL", "qwen2.5")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "qwen2.5", cfg.Model)
}
