package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Tracker
	Storage  StorageConfig
	Calendar CalendarConfig
	Wizard   WizardConfig

	// Integrations
	Suggest        SuggestConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type StorageConfig struct {
	Driver string
	DSN    string
}

// CalendarConfig sets the location whose calendar dates the tracker counts in.
type CalendarConfig struct {
	Timezone string
}

type WizardConfig struct {
	TTL      time.Duration
	MaxFlows int
}

type SuggestConfig struct {
	Enabled bool
	APIKey  string
	Model   string
	Timeout time.Duration
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	SessionStart    string
}

// Enabled reports whether calendar export can be wired.
func (c GoogleCalendarConfig) Enabled() bool {
	return c.CredentialsPath != ""
}

var ErrUnsupportedDriver = errors.New("storage.driver must be sqlite")

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/pacekeeper/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/pacekeeper/")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return fromViper(v)
}

// fromViper reads cfg out of v after applying defaults and env overrides.
func fromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Tracker
	cfg.Storage.Driver = v.GetString("storage.driver")
	cfg.Storage.DSN = v.GetString("storage.dsn")
	cfg.Calendar.Timezone = v.GetString("calendar.timezone")
	cfg.Wizard.TTL = v.GetDuration("wizard.ttl")
	cfg.Wizard.MaxFlows = v.GetInt("wizard.max_flows")

	// Suggestions
	cfg.Suggest.Enabled = v.GetBool("suggest.enabled")
	cfg.Suggest.APIKey = v.GetString("suggest.api_key")
	if key := v.GetString("gemini_api_key"); key != "" && cfg.Suggest.APIKey == "" {
		cfg.Suggest.APIKey = key
	}
	cfg.Suggest.Model = v.GetString("suggest.model")
	cfg.Suggest.Timeout = v.GetDuration("suggest.timeout")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	if creds := v.GetString("google_calendar_credentials"); creds != "" {
		cfg.GoogleCalendar.CredentialsPath = creds
	}
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.SessionStart = v.GetString("google_calendar.session_start")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Storage.Driver != "sqlite" {
		return ErrUnsupportedDriver
	}
	if cfg.Storage.DSN == "" {
		return errors.New("storage.dsn is required")
	}
	if cfg.Suggest.Enabled && cfg.Suggest.APIKey == "" {
		return errors.New("suggest.api_key is required when suggest.enabled is true")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 120)

	v.SetDefault("storage.driver", "sqlite")
	v.SetDefault("storage.dsn", "pacekeeper.db")
	v.SetDefault("calendar.timezone", "Local")
	v.SetDefault("wizard.ttl", "30m")
	v.SetDefault("wizard.max_flows", 128)

	v.SetDefault("suggest.enabled", false)
	v.SetDefault("suggest.model", "gemini-2.5-flash")
	v.SetDefault("suggest.timeout", "10s")

	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("google_calendar.calendar_id", "primary")
	v.SetDefault("google_calendar.session_start", "07:00")
}
