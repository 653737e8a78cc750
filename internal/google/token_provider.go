package google

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
)

// TokenProvider supplies OAuth tokens per account. The Calendar client takes
// this interface so token storage can vary by transport: stdio reads the
// per-account files on disk, tests inject static tokens.
type TokenProvider interface {
	// GetTokenForAccount retrieves an OAuth token for the account.
	GetTokenForAccount(ctx context.Context, account string) (*oauth2.Token, error)

	// HasTokenForAccount reports whether a token exists for the account.
	HasTokenForAccount(account string) bool
}

// FileTokenProvider reads tokens from the google-<account>.token files in the
// user cache directory.
type FileTokenProvider struct{}

// NewFileTokenProvider creates a file-based token provider.
func NewFileTokenProvider() *FileTokenProvider {
	return &FileTokenProvider{}
}

// GetTokenForAccount loads the cached token for the account, refreshing it if
// needed.
func (p *FileTokenProvider) GetTokenForAccount(ctx context.Context, account string) (*oauth2.Token, error) {
	ts, err := GetTokenSourceForAccount(ctx, account)
	if err != nil {
		return nil, err
	}

	token, err := ts.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to get token from file: %w", err)
	}

	return token, nil
}

// HasTokenForAccount reports whether a token file exists for the account.
func (p *FileTokenProvider) HasTokenForAccount(account string) bool {
	return HasTokenForAccount(account)
}
