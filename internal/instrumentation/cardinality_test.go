package instrumentation

import "testing"

func TestExtractUserDomain(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"plain address", "jane@example.com", "example.com"},
		{"gmail account", "scheduler@gmail.com", "gmail.com"},
		{"subdomain", "ops@cal.example.com", "cal.example.com"},
		{"no at sign", "not-an-email", "unknown"},
		{"empty", "", "unknown"},
		{"bare at sign", "@", "unknown"},
		{"missing domain", "user@", "unknown"},
		{"missing local part", "@example.com", "example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractUserDomain(tt.email); got != tt.want {
				t.Errorf("ExtractUserDomain(%q) = %q, want %q", tt.email, got, tt.want)
			}
		})
	}
}

func TestOperationConstants(t *testing.T) {
	operations := map[string]string{
		OperationList:   "list",
		OperationGet:    "get",
		OperationCreate: "create",
		OperationUpdate: "update",
		OperationDelete: "delete",
		OperationSearch: "search",
		OperationScan:   "scan",
	}

	for constant, want := range operations {
		if constant != want {
			t.Errorf("operation constant = %q, want %q", constant, want)
		}
	}
}
