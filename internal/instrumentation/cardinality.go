package instrumentation

import "strings"

// Label-cardinality helpers.
//
// Per-user labels on metrics would create one time series per email
// address, which grows without bound on a multi-account server. When a
// user dimension is needed, record the email's domain instead of the
// address itself.

// ExtractUserDomain returns the domain part of an email address, or
// "unknown" when the input does not look like an address.
//
//	ExtractUserDomain("jane@example.com") // "example.com"
//	ExtractUserDomain("not-an-email")     // "unknown"
func ExtractUserDomain(email string) string {
	if email == "" {
		return "unknown"
	}

	parts := strings.Split(email, "@")
	if len(parts) == 2 && parts[1] != "" {
		return parts[1]
	}

	return "unknown"
}

// Operation labels for Google API and scheduling metrics.
// Status, OAuth, and Service constants are defined in config.go.
const (
	OperationList   = "list"
	OperationGet    = "get"
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
	OperationSearch = "search"
	OperationScan   = "scan"
)
