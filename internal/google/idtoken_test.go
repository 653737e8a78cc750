package google

import (
	"encoding/base64"
	"testing"

	"golang.org/x/oauth2"
)

func tokenWithIDToken(idToken string) *oauth2.Token {
	t := &oauth2.Token{AccessToken: "access"}
	return t.WithExtra(map[string]interface{}{"id_token": idToken})
}

func encodeJWTSegment(payload string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(payload))
}

func TestEmailFromIDToken(t *testing.T) {
	header := encodeJWTSegment(`{"alg":"RS256"}`)
	payload := encodeJWTSegment(`{"email":"jane@example.com","email_verified":true}`)
	token := tokenWithIDToken(header + "." + payload + ".sig")

	if email := EmailFromIDToken(token); email != "jane@example.com" {
		t.Errorf("EmailFromIDToken = %q, want %q", email, "jane@example.com")
	}
}

func TestEmailFromIDToken_Missing(t *testing.T) {
	tests := []struct {
		name  string
		token *oauth2.Token
	}{
		{"no id_token extra", &oauth2.Token{AccessToken: "access"}},
		{"empty id_token", tokenWithIDToken("")},
		{"not a JWT", tokenWithIDToken("just-a-string")},
		{"bad base64 payload", tokenWithIDToken("a.!!!.c")},
		{"payload without email", tokenWithIDToken(
			encodeJWTSegment(`{"alg":"none"}`) + "." + encodeJWTSegment(`{"sub":"123"}`) + ".sig")},
		{"payload not JSON", tokenWithIDToken(
			encodeJWTSegment(`{"alg":"none"}`) + "." + encodeJWTSegment(`not json`) + ".sig")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if email := EmailFromIDToken(tt.token); email != "" {
				t.Errorf("EmailFromIDToken = %q, want empty", email)
			}
		})
	}
}
