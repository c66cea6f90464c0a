package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func load(t *testing.T, yaml string) (*Config, error) {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(strings.NewReader(yaml)); err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	return fromViper(v)
}

func TestDefaults(t *testing.T) {
	cfg, err := load(t, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("port = %d", cfg.HTTPServer.Port)
	}
	if cfg.Storage.Driver != "sqlite" || cfg.Storage.DSN != "pacekeeper.db" {
		t.Errorf("storage = %+v", cfg.Storage)
	}
	if cfg.Wizard.TTL != 30*time.Minute || cfg.Wizard.MaxFlows != 128 {
		t.Errorf("wizard = %+v", cfg.Wizard)
	}
	if cfg.Suggest.Enabled {
		t.Error("suggestions should be off by default")
	}
	if cfg.GoogleCalendar.Enabled() {
		t.Error("calendar should be off without credentials")
	}
	if cfg.GoogleCalendar.SessionStart != "07:00" {
		t.Errorf("session start = %q", cfg.GoogleCalendar.SessionStart)
	}
}

func TestOverrides(t *testing.T) {
	cfg, err := load(t, `
calendar:
  timezone: America/Bogota
wizard:
  ttl: 5m
suggest:
  enabled: true
  api_key: k
  timeout: 3s
google_calendar:
  credentials_path: creds.json
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Calendar.Timezone != "America/Bogota" {
		t.Errorf("timezone = %q", cfg.Calendar.Timezone)
	}
	if cfg.Wizard.TTL != 5*time.Minute {
		t.Errorf("ttl = %v", cfg.Wizard.TTL)
	}
	if !cfg.Suggest.Enabled || cfg.Suggest.Timeout != 3*time.Second {
		t.Errorf("suggest = %+v", cfg.Suggest)
	}
	if !cfg.GoogleCalendar.Enabled() {
		t.Error("calendar should be enabled with credentials")
	}
}

func TestValidate(t *testing.T) {
	if _, err := load(t, "storage:\n  driver: postgres\n"); !errors.Is(err, ErrUnsupportedDriver) {
		t.Errorf("err = %v, want ErrUnsupportedDriver", err)
	}
	if _, err := load(t, "suggest:\n  enabled: true\n"); err == nil {
		t.Error("expected error for suggestions without api key")
	}
}
