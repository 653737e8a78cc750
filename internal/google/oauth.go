package google

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/bytorbix/agendo/internal/logging"
)

const appName = "agendo"

// accountNamePattern restricts account names to filesystem-safe identifiers
var accountNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// validateAccountName checks that an account name is safe to use in a file path
func validateAccountName(account string) error {
	if account == "" {
		return fmt.Errorf("account name cannot be empty")
	}
	if !accountNamePattern.MatchString(account) {
		return fmt.Errorf("invalid account name %q: only letters, digits, hyphens and underscores are allowed", account)
	}
	return nil
}

// getTokenFilePath returns the path of the cached token for an account
func getTokenFilePath(account string) string {
	return filepath.Join(userCacheDir(), appName, fmt.Sprintf("google-%s.token", account))
}

// GetOAuthConfig returns the OAuth2 configuration for Google Calendar access.
// Client credentials come from the environment so the binary itself carries
// no secrets.
func GetOAuthConfig() *oauth2.Config {
	const oob = "urn:ietf:wg:oauth:2.0:oob"
	return &oauth2.Config{
		ClientID:     os.Getenv("AGENDO_GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("AGENDO_GOOGLE_CLIENT_SECRET"),
		Endpoint:     google.Endpoint,
		RedirectURL:  oob,
		Scopes:       DefaultOAuthScopes,
	}
}

// HasTokenForAccount checks if a cached OAuth token exists for the account
func HasTokenForAccount(account string) bool {
	if err := validateAccountName(account); err != nil {
		return false
	}
	_, err := os.ReadFile(getTokenFilePath(account))
	return err == nil
}

// GetAuthURLForAccount returns the OAuth URL for user authorization of an account
func GetAuthURLForAccount(account string) string {
	conf := GetOAuthConfig()
	return conf.AuthCodeURL("state-" + account)
}

// SaveTokenForAccount exchanges an authorization code for tokens and caches
// them for the account. Returns the authenticated user's email when the
// token response carries an ID token, "" otherwise.
func SaveTokenForAccount(ctx context.Context, account, authCode string) (string, error) {
	if err := validateAccountName(account); err != nil {
		return "", err
	}

	conf := GetOAuthConfig()
	t, err := conf.Exchange(ctx, authCode)
	if err != nil {
		return "", fmt.Errorf("failed to exchange auth code: %w", err)
	}

	tokenFile := getTokenFilePath(account)
	if err := os.MkdirAll(filepath.Dir(tokenFile), 0700); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	tokenData := t.AccessToken + " " + t.RefreshToken
	if err := os.WriteFile(tokenFile, []byte(tokenData), 0600); err != nil {
		return "", fmt.Errorf("failed to write token file: %w", err)
	}

	return EmailFromIDToken(t), nil
}

// GetTokenSourceForAccount returns an OAuth2 token source backed by the
// cached token of the account. Returns an error if no valid token exists.
func GetTokenSourceForAccount(ctx context.Context, account string) (oauth2.TokenSource, error) {
	if err := validateAccountName(account); err != nil {
		return nil, err
	}

	conf := GetOAuthConfig()

	slurp, err := os.ReadFile(getTokenFilePath(account))
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found for account %s", account)
	}

	f := strings.Fields(strings.TrimSpace(string(slurp)))
	if len(f) != 2 {
		return nil, fmt.Errorf("invalid token format for account %s", account)
	}

	// Expiry in the past forces a refresh on first use.
	ts := conf.TokenSource(ctx, &oauth2.Token{
		AccessToken:  f[0],
		TokenType:    "Bearer",
		RefreshToken: f[1],
		Expiry:       time.Unix(1, 0),
	})

	if _, err := ts.Token(); err != nil {
		slog.Warn("cached token invalid", logging.Account(account), logging.Err(err))
		return nil, fmt.Errorf("cached token is invalid for account %s: %w", account, err)
	}

	return ts, nil
}

// NewHTTPClient returns an HTTP client that authenticates requests with the
// token source. The client is configured to use HTTP/1.1 to avoid HTTP/2
// protocol errors with the Google APIs.
func NewHTTPClient(ctx context.Context, ts oauth2.TokenSource) *http.Client {
	client := oauth2.NewClient(ctx, ts)

	// Force HTTP/1.1 by disabling HTTP/2
	transport := client.Transport.(*oauth2.Transport)
	transport.Base = &http.Transport{
		ForceAttemptHTTP2: false,
	}

	return client
}

// GetAuthenticationErrorMessage builds the guidance shown to an agent when a
// tool is called without a cached token for the account.
func GetAuthenticationErrorMessage(account string) string {
	return fmt.Sprintf(`Google OAuth token not found for account %q. To authorize access:

1. Visit this URL in your browser:
   %s

2. Sign in with your Google account
3. Grant access to Google Calendar
4. Copy the authorization code

5. Provide the authorization code to your AI agent
   The agent will use the google_save_auth_code tool with account=%q to complete authentication.

Note: You only need to authorize once. The tokens will be refreshed automatically.`, account, GetAuthURLForAccount(account), account)
}

func userCacheDir() string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir(), "Library", "Caches")
	case "windows":
		for _, ev := range []string{"TEMP", "TMP"} {
			if v := os.Getenv(ev); v != "" {
				return v
			}
		}
		panic("No Windows TEMP or TMP environment variables found")
	}
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return xdg
	}
	return filepath.Join(homeDir(), ".cache")
}

func homeDir() string {
	if runtime.GOOS == "windows" {
		return os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH")
	}
	return os.Getenv("HOME")
}
