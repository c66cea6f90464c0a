package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pacekeeper/config"
	"pacekeeper/pkg/gcalendar"
)

func newCalendarAuthCmd() *cobra.Command {
	var credentialsPath, tokenPath string

	cmd := &cobra.Command{
		Use:   "calendar-auth",
		Short: "Authorize Google Calendar export and save the token",
		Long: `Authorize Google Calendar export with OAuth desktop-app credentials.

Open the printed URL, sign in, then paste the authorization code back here.
The token is saved to google_calendar.token_path (default token.json).
Service account credentials need no token and skip this step.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if credentialsPath == "" || tokenPath == "" {
				cfg, err := config.Load()
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if credentialsPath == "" {
					credentialsPath = cfg.GoogleCalendar.CredentialsPath
				}
				if tokenPath == "" {
					tokenPath = cfg.GoogleCalendar.TokenPath
				}
			}
			if credentialsPath == "" {
				return errors.New("no credentials: pass --credentials or set google_calendar.credentials_path")
			}

			data, err := os.ReadFile(credentialsPath)
			if err != nil {
				return fmt.Errorf("read credentials: %w", err)
			}
			oauthCfg, err := gcalendar.InstalledAppConfig(data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "1. Open this URL and sign in with your Google account:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, gcalendar.AuthCodeURL(oauthCfg))
			fmt.Fprintln(out)
			fmt.Fprint(out, "2. Paste the authorization code: ")

			line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			code := strings.TrimSpace(line)
			if code == "" {
				return errors.New("no authorization code read")
			}

			if _, err := gcalendar.ExchangeAndSave(cmd.Context(), oauthCfg, code, tokenPath); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nToken saved to %s. Restart the API to enable calendar export.\n", tokenPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&credentialsPath, "credentials", "", "OAuth desktop-app credentials JSON")
	cmd.Flags().StringVar(&tokenPath, "token", "", "Where to write the token (default: google_calendar.token_path)")
	return cmd
}
