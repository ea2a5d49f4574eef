package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rohits-web03/resumehub/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// NewGoogleOAuthConfig returns nil when Google sign-in is not configured.
func NewGoogleOAuthConfig(cfg config.GoogleConfig) *oauth2.Config {
	if !cfg.Enabled() {
		return nil
	}
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// FetchGoogleAccount exchanges the authorization code and reads the userinfo
// endpoint with the resulting token.
func FetchGoogleAccount(ctx context.Context, oc *oauth2.Config, code string) (GoogleAccount, error) {
	token, err := oc.Exchange(ctx, code)
	if err != nil {
		return GoogleAccount{}, fmt.Errorf("code exchange failed: %w", err)
	}

	resp, err := oc.Client(ctx, token).Get(googleUserInfoURL)
	if err != nil {
		return GoogleAccount{}, fmt.Errorf("failed to get user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return GoogleAccount{}, fmt.Errorf("user info returned %s", resp.Status)
	}

	var acct GoogleAccount
	if err := json.NewDecoder(resp.Body).Decode(&acct); err != nil {
		return GoogleAccount{}, fmt.Errorf("failed to parse user info: %w", err)
	}
	return acct, nil
}
