package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pacekeeper/pkg/gcalendar"
)

const installedCreds = `{"installed":{"client_id":"cid.apps.googleusercontent.com","client_secret":"secret",
"auth_uri":"https://accounts.google.com/o/oauth2/auth","token_uri":"https://oauth2.googleapis.com/token",
"redirect_uris":["urn:ietf:wg:oauth:2.0:oob"]}}`

func TestInstalledAppConfig(t *testing.T) {
	cfg, err := gcalendar.InstalledAppConfig([]byte(installedCreds))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	url := gcalendar.AuthCodeURL(cfg)
	for _, want := range []string{"client_id=cid.apps.googleusercontent.com", "access_type=offline", "calendar.events"} {
		if !strings.Contains(url, want) {
			t.Errorf("auth url %q missing %q", url, want)
		}
	}

	if _, err := gcalendar.InstalledAppConfig([]byte(`{"type":"service_account"}`)); err == nil {
		t.Error("expected error for non desktop credentials")
	}
}

func TestExchangeAndSave(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil || r.Form.Get("code") != "the-code" {
			http.Error(w, "bad code", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at","token_type":"Bearer","refresh_token":"rt","expires_in":3600}`))
	}))
	defer srv.Close()

	cfg, err := gcalendar.InstalledAppConfig([]byte(installedCreds))
	if err != nil {
		t.Fatal(err)
	}
	cfg.Endpoint.TokenURL = srv.URL

	path := filepath.Join(t.TempDir(), "token.json")
	tok, err := gcalendar.ExchangeAndSave(context.Background(), cfg, "the-code", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.RefreshToken != "rt" {
		t.Errorf("refresh token = %q", tok.RefreshToken)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("mode = %v, want 0600", info.Mode().Perm())
	}
	data, _ := os.ReadFile(path)
	var saved map[string]any
	if err := json.Unmarshal(data, &saved); err != nil || saved["access_token"] != "at" {
		t.Errorf("saved token = %s", data)
	}
}
