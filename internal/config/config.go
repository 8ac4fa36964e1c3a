package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/vexillo/internal/country"
	"github.com/abhisek/vexillo/internal/game"
	"github.com/abhisek/vexillo/internal/llm"
	"github.com/abhisek/vexillo/internal/session"
)

// EnvPrefix namespaces every environment variable, e.g. VEXILLO_LANGUAGE
// or VEXILLO_LLM_GEMINI_API_KEY.
const EnvPrefix = "VEXILLO"

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env      string `mapstructure:"env"`       // local, dev or production
	Language string `mapstructure:"language"`  // starting display language
	DataFile string `mapstructure:"data_file"` // optional override for the embedded country table
	DB       string `mapstructure:"db"`        // diagnostics database path; empty means the default path
	Log      Log    `mapstructure:"log"`
	LLM      LLM    `mapstructure:"llm"`
	Game     Game   `mapstructure:"game"`
}

// Log configures the structured log file.
type Log struct {
	File  string `mapstructure:"file"`  // empty means the default state directory
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// LLM configures the fact provider.
type LLM struct {
	Provider   string        `mapstructure:"provider"` // empty means check well-known API key variables
	Timeout    time.Duration `mapstructure:"timeout"`
	Retry      Retry         `mapstructure:"retry"`
	Gemini     Provider      `mapstructure:"gemini"`
	OpenAI     Provider      `mapstructure:"openai"`
	Anthropic  Provider      `mapstructure:"anthropic"`
	OpenRouter Provider      `mapstructure:"openrouter"`
}

// Retry configures transient-failure retries.
type Retry struct {
	MaxAttempts int           `mapstructure:"max_attempts"`
	InitialWait time.Duration `mapstructure:"initial_wait"`
}

// Provider holds the credentials of one LLM provider.
type Provider struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// Game holds pacing and progression rules.
type Game struct {
	QuestionsPerLevel int           `mapstructure:"questions_per_level"`
	MaxLevel          int           `mapstructure:"max_level"`
	PointsPerLevel    int           `mapstructure:"points_per_level"`
	CorrectDelay      time.Duration `mapstructure:"correct_delay"`
	WrongDelay        time.Duration `mapstructure:"wrong_delay"`
}

// Load reads configuration in order of increasing priority: defaults, a
// config.yaml file, a .env file in the working directory and the process
// environment. An explicit path must exist; the default locations are
// optional.
func Load(path string) (*Config, error) {
	// .env never overrides variables that are already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error loading config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var fileLookupErr viper.ConfigFileNotFoundError
			if !errors.As(err, &fileLookupErr) {
				return nil, fmt.Errorf("error loading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when nothing is set. The defaults
// are static, so a decode failure is a programming error and panics.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("config: decode defaults: %v", err))
	}
	return &cfg
}

func setDefaults(v *viper.Viper) {
	sess := session.DefaultConfig()
	llmCfg := llm.DefaultConfig()

	v.SetDefault("env", "local")
	v.SetDefault("language", string(country.LangKhmer))
	v.SetDefault("data_file", "")
	v.SetDefault("db", "")

	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.timeout", llmCfg.Timeout)
	v.SetDefault("llm.retry.max_attempts", llmCfg.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", llmCfg.Retry.InitialWait)
	v.SetDefault("llm.gemini.api_key", "")
	v.SetDefault("llm.gemini.model", llmCfg.Gemini.Model)
	v.SetDefault("llm.openai.api_key", "")
	v.SetDefault("llm.openai.model", llmCfg.OpenAI.Model)
	v.SetDefault("llm.anthropic.api_key", "")
	v.SetDefault("llm.anthropic.model", llmCfg.Anthropic.Model)
	v.SetDefault("llm.openrouter.api_key", "")
	v.SetDefault("llm.openrouter.model", llmCfg.OpenRouter.Model)

	v.SetDefault("game.questions_per_level", sess.QuestionsPerLevel)
	v.SetDefault("game.max_level", game.DefaultMaxLevel)
	v.SetDefault("game.points_per_level", sess.PointsPerLevel)
	v.SetDefault("game.correct_delay", sess.CorrectDelay)
	v.SetDefault("game.wrong_delay", sess.WrongDelay)
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	if _, err := country.ParseLang(c.Language); err != nil {
		return fmt.Errorf("%w: language: %v", ErrInvalidConfig, err)
	}
	if c.Game.MaxLevel < 1 {
		return fmt.Errorf("%w: game.max_level must be at least 1, got %d", ErrInvalidConfig, c.Game.MaxLevel)
	}
	if c.Game.QuestionsPerLevel < 1 {
		return fmt.Errorf("%w: game.questions_per_level must be at least 1, got %d", ErrInvalidConfig, c.Game.QuestionsPerLevel)
	}
	if c.Game.PointsPerLevel < 0 {
		return fmt.Errorf("%w: game.points_per_level must not be negative", ErrInvalidConfig)
	}
	if c.Game.WrongDelay <= 0 {
		return fmt.Errorf("%w: game.wrong_delay must be positive", ErrInvalidConfig)
	}
	if c.Game.CorrectDelay < c.Game.WrongDelay {
		return fmt.Errorf("%w: game.correct_delay (%s) must not be shorter than game.wrong_delay (%s)",
			ErrInvalidConfig, c.Game.CorrectDelay, c.Game.WrongDelay)
	}
	return nil
}

// Lang returns the configured starting language.
func (c *Config) Lang() country.Lang {
	lang, err := country.ParseLang(c.Language)
	if err != nil {
		return country.LangKhmer
	}
	return lang
}

// Session returns the quiz pacing derived from the game section.
func (c *Config) Session() session.Config {
	sc := session.DefaultConfig()
	sc.QuestionsPerLevel = c.Game.QuestionsPerLevel
	sc.PointsPerLevel = c.Game.PointsPerLevel
	sc.CorrectDelay = c.Game.CorrectDelay
	sc.WrongDelay = c.Game.WrongDelay
	return sc
}

// LLMConfig maps the llm section onto provider configuration. With no
// provider set, well-known API key variables are checked; when none is
// found the provider is "none" and facts are served offline.
func (c *Config) LLMConfig() llm.Config {
	out := llm.DefaultConfig()
	out.Provider = c.LLM.Provider
	if c.LLM.Timeout > 0 {
		out.Timeout = c.LLM.Timeout
	}
	if c.LLM.Retry.MaxAttempts > 0 {
		out.Retry.MaxAttempts = c.LLM.Retry.MaxAttempts
	}
	if c.LLM.Retry.InitialWait > 0 {
		out.Retry.InitialWait = c.LLM.Retry.InitialWait
	}

	out.Gemini.APIKey = c.LLM.Gemini.APIKey
	out.OpenAI.APIKey = c.LLM.OpenAI.APIKey
	out.Anthropic.APIKey = c.LLM.Anthropic.APIKey
	out.OpenRouter.APIKey = c.LLM.OpenRouter.APIKey
	setModel(&out.Gemini.Model, c.LLM.Gemini.Model)
	setModel(&out.OpenAI.Model, c.LLM.OpenAI.Model)
	setModel(&out.Anthropic.Model, c.LLM.Anthropic.Model)
	setModel(&out.OpenRouter.Model, c.LLM.OpenRouter.Model)

	if out.Provider != "" {
		return out
	}

	discovered, ok := llm.DiscoverConfig()
	if !ok {
		out.Provider = "none"
		return out
	}
	out.Provider = discovered.Provider
	switch discovered.Provider {
	case "gemini":
		out.Gemini.APIKey = discovered.Gemini.APIKey
	case "openai":
		out.OpenAI.APIKey = discovered.OpenAI.APIKey
	case "anthropic":
		out.Anthropic.APIKey = discovered.Anthropic.APIKey
	case "openrouter":
		out.OpenRouter.APIKey = discovered.OpenRouter.APIKey
	}
	return out
}

func setModel(dst *string, model string) {
	if model != "" {
		*dst = model
	}
}

// configDir returns $XDG_CONFIG_HOME/vexillo or ~/.config/vexillo.
func configDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "vexillo"), nil
}
