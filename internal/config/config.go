package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	ChatProviderOpenRouter = "openrouter"
	ChatProviderGemini     = "gemini"
	ChatProviderNone       = "none"

	minSecretKeyLength = 32
)

var insecureSecretPlaceholders = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

type Config struct {
	Server    ServerConfig   `yaml:"server"`
	Database  DatabaseConfig `yaml:"database"`
	Chat      ChatConfig     `yaml:"chat"`
	Reminders ReminderConfig `yaml:"reminders"`
	Logging   LoggingConfig  `yaml:"logging"`
	Location  *time.Location `yaml:"-"`
}

type ServerConfig struct {
	Port         string `yaml:"port"`
	SecretKey    string `yaml:"secret_key"`
	CookieSecure bool   `yaml:"cookie_secure"`
	Timezone     string `yaml:"timezone"`
	SessionTTL   string `yaml:"session_ttl"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type ChatConfig struct {
	Provider        string  `yaml:"provider"`
	DailyLimit      int     `yaml:"daily_limit"`
	Timeout         string  `yaml:"timeout"`
	Temperature     float64 `yaml:"temperature"`
	MaxTokens       int     `yaml:"max_tokens"`
	SiteURL         string  `yaml:"site_url"`
	SiteName        string  `yaml:"site_name"`
	OpenRouterKey   string  `yaml:"openrouter_api_key"`
	OpenRouterURL   string  `yaml:"openrouter_api_url"`
	OpenRouterModel string  `yaml:"openrouter_model"`
	GeminiKey       string  `yaml:"gemini_api_key"`
	GeminiModel     string  `yaml:"gemini_model"`
}

type ReminderConfig struct {
	TelegramBotToken string `yaml:"telegram_bot_token"`
	TelegramChatID   string `yaml:"telegram_chat_id"`
	SESFromEmail     string `yaml:"ses_from_email"`
	SESToEmail       string `yaml:"ses_to_email"`
	AWSRegion        string `yaml:"aws_region"`
	LogOnly          bool   `yaml:"log_only"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:       "8080",
			Timezone:   "UTC",
			SessionTTL: "8760h",
		},
		Database: DatabaseConfig{
			Path: filepath.Join("data", "remedywhisper.db"),
		},
		Chat: ChatConfig{
			DailyLimit:      50,
			Timeout:         "60s",
			Temperature:     0.7,
			MaxTokens:       1000,
			SiteName:        "Remedy Whisper",
			OpenRouterModel: "google/gemini-pro",
		},
		Reminders: ReminderConfig{
			AWSRegion: "us-east-1",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration from defaults, the optional YAML file named
// by CONFIG_FILE and then environment variables, in that order of precedence.
func Load() (Config, error) {
	cfg := Default()

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	cfg.applyEnv()

	if err := cfg.finalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOffline is Load without the secret and port checks, for CLI commands
// that never serve HTTP.
func LoadOffline() (Config, error) {
	cfg := Default()
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	cfg.applyEnv()
	cfg.Location = loadLocation(cfg.Server.Timezone)
	return cfg, nil
}

func (cfg *Config) mergeFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (cfg *Config) applyEnv() {
	cfg.Server.Port = getEnv("PORT", cfg.Server.Port)
	cfg.Server.SecretKey = getEnv("SECRET_KEY", cfg.Server.SecretKey)
	cfg.Server.CookieSecure = getEnvBool("COOKIE_SECURE", cfg.Server.CookieSecure)
	cfg.Server.Timezone = getEnv("TZ", cfg.Server.Timezone)
	cfg.Database.Path = getEnv("DB_PATH", cfg.Database.Path)

	cfg.Chat.Provider = getEnv("CHAT_PROVIDER", cfg.Chat.Provider)
	cfg.Chat.DailyLimit = getEnvInt("CHAT_DAILY_LIMIT", cfg.Chat.DailyLimit)
	cfg.Chat.OpenRouterKey = getEnv("OPENROUTER_API_KEY", cfg.Chat.OpenRouterKey)
	cfg.Chat.OpenRouterURL = getEnv("OPENROUTER_API_URL", cfg.Chat.OpenRouterURL)
	cfg.Chat.OpenRouterModel = getEnv("OPENROUTER_MODEL", cfg.Chat.OpenRouterModel)
	cfg.Chat.GeminiKey = getEnv("GEMINI_API_KEY", cfg.Chat.GeminiKey)
	cfg.Chat.GeminiModel = getEnv("GEMINI_MODEL", cfg.Chat.GeminiModel)

	cfg.Reminders.TelegramBotToken = getEnv("TELEGRAM_BOT_TOKEN", cfg.Reminders.TelegramBotToken)
	cfg.Reminders.TelegramChatID = getEnv("TELEGRAM_CHAT_ID", cfg.Reminders.TelegramChatID)
	cfg.Reminders.SESFromEmail = getEnv("SES_FROM_EMAIL", cfg.Reminders.SESFromEmail)
	cfg.Reminders.SESToEmail = getEnv("SES_TO_EMAIL", cfg.Reminders.SESToEmail)
	cfg.Reminders.AWSRegion = getEnv("AWS_REGION", cfg.Reminders.AWSRegion)
	cfg.Reminders.LogOnly = getEnvBool("REMINDER_LOG_ONLY", cfg.Reminders.LogOnly)

	cfg.Logging.Level = getEnv("LOG_LEVEL", cfg.Logging.Level)
}

func (cfg *Config) finalize() error {
	secret, err := resolveSecretKey(cfg.Server.SecretKey)
	if err != nil {
		return err
	}
	cfg.Server.SecretKey = secret

	port, err := resolvePort(cfg.Server.Port)
	if err != nil {
		return err
	}
	cfg.Server.Port = port

	if _, err := cfg.SessionTTL(); err != nil {
		return err
	}
	if _, err := cfg.ChatTimeout(); err != nil {
		return err
	}
	if _, err := cfg.ResolvedChatProvider(); err != nil {
		return err
	}

	cfg.Location = loadLocation(cfg.Server.Timezone)
	return nil
}

// ResolvedChatProvider picks the configured provider. With no explicit choice
// the first provider that has an API key wins.
func (cfg Config) ResolvedChatProvider() (string, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Chat.Provider))
	switch provider {
	case "":
		switch {
		case cfg.Chat.OpenRouterKey != "":
			return ChatProviderOpenRouter, nil
		case cfg.Chat.GeminiKey != "":
			return ChatProviderGemini, nil
		default:
			return ChatProviderNone, nil
		}
	case ChatProviderOpenRouter, ChatProviderGemini, ChatProviderNone:
		return provider, nil
	default:
		return "", fmt.Errorf("unknown CHAT_PROVIDER %q", cfg.Chat.Provider)
	}
}

func (cfg Config) SessionTTL() (time.Duration, error) {
	return parsePositiveDuration("session_ttl", cfg.Server.SessionTTL)
}

func (cfg Config) ChatTimeout() (time.Duration, error) {
	return parsePositiveDuration("chat timeout", cfg.Chat.Timeout)
}

func resolveSecretKey(raw string) (string, error) {
	secret := strings.TrimSpace(raw)
	if secret == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	if _, insecure := insecureSecretPlaceholders[strings.ToLower(secret)]; insecure {
		return "", errors.New("SECRET_KEY uses an insecure placeholder value")
	}
	if len(secret) < minSecretKeyLength {
		return "", fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	}
	return secret, nil
}

func resolvePort(raw string) (string, error) {
	port := strings.TrimSpace(raw)
	if port == "" {
		return "8080", nil
	}
	value, err := strconv.Atoi(port)
	if err != nil || value < 1 || value > 65535 {
		return "", fmt.Errorf("invalid PORT %q", raw)
	}
	return port, nil
}

func parsePositiveDuration(name string, raw string) (time.Duration, error) {
	value, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%s must be positive", name)
	}
	return value, nil
}

func loadLocation(name string) *time.Location {
	location, err := time.LoadLocation(strings.TrimSpace(name))
	if err != nil {
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return value
}
