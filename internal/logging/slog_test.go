package logging

import (
	"errors"
	"testing"
)

func TestOperationAttr(t *testing.T) {
	attr := Operation("schedule.find_free_time")
	if attr.Key != KeyOperation {
		t.Errorf("Operation key = %q, want %q", attr.Key, KeyOperation)
	}
	if attr.Value.String() != "schedule.find_free_time" {
		t.Errorf("Operation value = %q, want %q", attr.Value.String(), "schedule.find_free_time")
	}
}

func TestAccountAttr(t *testing.T) {
	attr := Account("work")
	if attr.Key != KeyAccount {
		t.Errorf("Account key = %q, want %q", attr.Key, KeyAccount)
	}
	if attr.Value.String() != "work" {
		t.Errorf("Account value = %q, want %q", attr.Value.String(), "work")
	}
}

func TestStatusAttr(t *testing.T) {
	attr := Status("success")
	if attr.Key != KeyStatus {
		t.Errorf("Status key = %q, want %q", attr.Key, KeyStatus)
	}
	if attr.Value.String() != "success" {
		t.Errorf("Status value = %q, want %q", attr.Value.String(), "success")
	}
}

func TestErr(t *testing.T) {
	err := errors.New("calendar fetch failed")
	attr := Err(err)
	if attr.Key != KeyError {
		t.Errorf("Err key = %q, want %q", attr.Key, KeyError)
	}
	if attr.Value.String() != "calendar fetch failed" {
		t.Errorf("Err value = %q, want %q", attr.Value.String(), "calendar fetch failed")
	}

	// nil yields an empty group that slog omits
	attr = Err(nil)
	if attr.Key != "" {
		t.Errorf("Err(nil) key = %q, want empty string (empty group)", attr.Key)
	}
}

func TestAnonymizeEmail(t *testing.T) {
	tests := []struct {
		email    string
		wantLen  int // "user:" + 16 hex chars, or 0 for empty
		hasValue bool
	}{
		{"jane@example.com", 21, true},
		{"user@gmail.com", 21, true},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			result := AnonymizeEmail(tt.email)
			if tt.hasValue {
				if len(result) != tt.wantLen {
					t.Errorf("AnonymizeEmail(%q) length = %d, want %d", tt.email, len(result), tt.wantLen)
				}
				if result[:5] != "user:" {
					t.Errorf("AnonymizeEmail(%q) should start with 'user:', got %q", tt.email, result)
				}
			} else if result != "" {
				t.Errorf("AnonymizeEmail(%q) = %q, want empty string", tt.email, result)
			}
		})
	}

	// Deterministic, and distinct per address
	if AnonymizeEmail("test@example.com") != AnonymizeEmail("test@example.com") {
		t.Error("AnonymizeEmail should return deterministic results")
	}
	if AnonymizeEmail("test@example.com") == AnonymizeEmail("other@example.com") {
		t.Error("Different emails should produce different hashes")
	}
}

func TestUserHash(t *testing.T) {
	attr := UserHash("jane@example.com")
	if attr.Key != KeyUserHash {
		t.Errorf("UserHash key = %q, want %q", attr.Key, KeyUserHash)
	}
	if len(attr.Value.String()) != 21 {
		t.Errorf("UserHash value length = %d, want 21", len(attr.Value.String()))
	}
}

func TestSanitizeToken(t *testing.T) {
	tests := []struct {
		token    string
		expected string
	}{
		{"", "<empty>"},
		{"abc123", "[token:6 chars]"},
		{"4/0AVHEtk5xGq-example-auth-code", "[token:31 chars]"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := SanitizeToken(tt.token)
			if result != tt.expected {
				t.Errorf("SanitizeToken(%q) = %q, want %q", tt.token, result, tt.expected)
			}
		})
	}
}
