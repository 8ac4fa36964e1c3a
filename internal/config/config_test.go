package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vexillo/internal/country"
)

// isolate runs the test in an empty directory with no config or API key
// variables visible.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	for _, k := range []string{
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
		"VEXILLO_LANGUAGE", "VEXILLO_LLM_PROVIDER", "VEXILLO_GAME_MAX_LEVEL",
		"VEXILLO_LLM_GEMINI_API_KEY", "VEXILLO_ENV",
	} {
		t.Setenv(k, "")
	}
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, country.LangKhmer, cfg.Lang())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Game.MaxLevel)
	assert.Equal(t, 5, cfg.Game.QuestionsPerLevel)
	assert.Equal(t, 10, cfg.Game.PointsPerLevel)
	assert.Equal(t, 4*time.Second, cfg.Game.CorrectDelay)
	assert.Equal(t, 2500*time.Millisecond, cfg.Game.WrongDelay)

	sc := cfg.Session()
	assert.Equal(t, 5, sc.QuestionsPerLevel)
	assert.Equal(t, time.Second, sc.TickInterval)

	assert.Equal(t, "none", cfg.LLMConfig().Provider)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
language: en
env: production
game:
  max_level: 3
  correct_delay: 5s
llm:
  provider: openai
  openai:
    api_key: sk-file
    model: gpt-4.1-mini
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, country.LangEnglish, cfg.Lang())
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 3, cfg.Game.MaxLevel)
	assert.Equal(t, 5*time.Second, cfg.Game.CorrectDelay)

	lc := cfg.LLMConfig()
	assert.Equal(t, "openai", lc.Provider)
	assert.Equal(t, "sk-file", lc.OpenAI.APIKey)
	assert.Equal(t, "gpt-4.1-mini", lc.OpenAI.Model)
	assert.NoError(t, lc.Validate())
}

func TestLoad_DefaultLocation(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("language: english\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, country.LangEnglish, cfg.Lang())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game:\n  max_level: 3\n"), 0o600))
	t.Setenv("VEXILLO_GAME_MAX_LEVEL", "7")
	t.Setenv("VEXILLO_LLM_PROVIDER", "gemini")
	t.Setenv("VEXILLO_LLM_GEMINI_API_KEY", "g-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Game.MaxLevel)

	lc := cfg.LLMConfig()
	assert.Equal(t, "gemini", lc.Provider)
	assert.Equal(t, "g-env", lc.Gemini.APIKey)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	os.Unsetenv("VEXILLO_LANGUAGE")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("VEXILLO_LANGUAGE=en\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("VEXILLO_LANGUAGE") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, country.LangEnglish, cfg.Lang())
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_DiscoversAPIKey(t *testing.T) {
	isolate(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")

	cfg, err := Load("")
	require.NoError(t, err)

	lc := cfg.LLMConfig()
	assert.Equal(t, "anthropic", lc.Provider)
	assert.Equal(t, "sk-ant", lc.Anthropic.APIKey)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad language", func(c *Config) { c.Language = "fr" }},
		{"zero max level", func(c *Config) { c.Game.MaxLevel = 0 }},
		{"zero quota", func(c *Config) { c.Game.QuestionsPerLevel = 0 }},
		{"negative points", func(c *Config) { c.Game.PointsPerLevel = -1 }},
		{"zero wrong delay", func(c *Config) { c.Game.WrongDelay = 0 }},
		{"correct shorter than wrong", func(c *Config) { c.Game.CorrectDelay = time.Second }},
	}

	require.NotPanics(t, func() { Default() })
	require.NoError(t, Default().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLang_InvalidFallsBackToKhmer(t *testing.T) {
	cfg := Default()
	assert.Equal(t, country.LangKhmer, cfg.Lang())
	cfg.Language = "fr"
	assert.Equal(t, country.LangKhmer, cfg.Lang())
}
