package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// authState is echoed back by Google; the desktop flow pastes the code by hand so it is not checked.
const authState = "pacekeeper"

// InstalledAppConfig reads OAuth desktop-app credentials for the events scope.
func InstalledAppConfig(credentialsJSON []byte) (*oauth2.Config, error) {
	cfg, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("credentials are not an OAuth desktop app file: %w", err)
	}
	return cfg, nil
}

// AuthCodeURL is the consent page the user opens to get an authorization code.
// Offline access makes Google return a refresh token.
func AuthCodeURL(cfg *oauth2.Config) string {
	return cfg.AuthCodeURL(authState, oauth2.AccessTypeOffline)
}

// ExchangeAndSave trades code for a token and writes it to tokenPath.
func ExchangeAndSave(ctx context.Context, cfg *oauth2.Config, code, tokenPath string) (*oauth2.Token, error) {
	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	if err := SaveToken(tokenPath, tok); err != nil {
		return nil, err
	}
	return tok, nil
}

// SaveToken writes tok as JSON, readable by the owner only.
func SaveToken(path string, tok *oauth2.Token) error {
	if path == "" {
		path = DefaultTokenPath
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
