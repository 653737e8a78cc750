package server

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/bytorbix/agendo/internal/calendar"
	"github.com/bytorbix/agendo/internal/google"
	"github.com/bytorbix/agendo/internal/instrumentation"
	"github.com/bytorbix/agendo/internal/logging"
)

// ServerContext holds the context for the MCP server
type ServerContext struct {
	ctx             context.Context
	cancel          context.CancelFunc
	calendarClients map[string]*calendar.Client // Maps account name to Calendar client
	accountEmails   map[string]string           // Maps account name to authenticated email
	tokenProvider   google.TokenProvider
	metrics         *instrumentation.Metrics
	auditLogger     *instrumentation.AuditLogger
	readOnly        bool
	mu              sync.RWMutex
	shutdown        bool
}

// NewServerContext creates a new server context
func NewServerContext(ctx context.Context) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	sc := &ServerContext{
		ctx:             shutdownCtx,
		cancel:          cancel,
		calendarClients: make(map[string]*calendar.Client),
		accountEmails:   make(map[string]string),
		tokenProvider:   google.NewFileTokenProvider(),
	}

	// Try to create default Calendar client, but don't fail if token is missing
	// Clients will be lazily initialized when first needed
	if calendar.HasToken() {
		client, err := calendar.NewClient(shutdownCtx)
		if err != nil {
			// Log but don't fail - will be re-attempted on first use
			slog.Warn("failed to create Calendar client for default account", logging.Err(err))
		} else {
			sc.calendarClients["default"] = client
		}
	}

	return sc, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// SetTokenProvider sets the token provider used when creating clients
func (sc *ServerContext) SetTokenProvider(provider google.TokenProvider) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.tokenProvider = provider
}

// TokenProvider returns the configured token provider
func (sc *ServerContext) TokenProvider() google.TokenProvider {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.tokenProvider
}

// SetMetrics wires the metrics recorder into the server context so tool
// handlers can record invocations
func (sc *ServerContext) SetMetrics(metrics *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = metrics
}

// SetAuditLogger wires the audit logger into the server context
func (sc *ServerContext) SetAuditLogger(auditLogger *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.auditLogger = auditLogger
}

// Metrics returns the metrics recorder, or nil if instrumentation is not configured
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// AuditLogger returns the audit logger, or nil if instrumentation is not configured
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.auditLogger
}

// SetReadOnly marks the server as read-only; mutating tools are not registered
func (sc *ServerContext) SetReadOnly(readOnly bool) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.readOnly = readOnly
}

// ReadOnly returns whether the server runs in read-only mode
func (sc *ServerContext) ReadOnly() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.readOnly
}

// CalendarClientForAccount returns the Calendar client for a specific account
// Creates and caches the client if it doesn't exist yet
// Returns nil if the account has no token
func (sc *ServerContext) CalendarClientForAccount(account string) *calendar.Client {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	// Check if client already exists
	if client, ok := sc.calendarClients[account]; ok {
		return client
	}

	// Try to create client if token exists
	if !calendar.HasTokenForAccountWithProvider(account, sc.tokenProvider) {
		return nil
	}

	client, err := calendar.NewClientForAccountWithProvider(sc.ctx, account, sc.tokenProvider)
	if err != nil {
		slog.Warn("failed to create Calendar client", logging.Account(account), logging.Err(err))
		return nil
	}

	sc.calendarClients[account] = client
	return client
}

// CalendarClient returns the Calendar client for the default account
func (sc *ServerContext) CalendarClient() *calendar.Client {
	return sc.CalendarClientForAccount("default")
}

// SetCalendarClientForAccount sets the Calendar client for a specific account
func (sc *ServerContext) SetCalendarClientForAccount(account string, client *calendar.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.calendarClients[account] = client
}

// SetCalendarClient sets the Calendar client for the default account
func (sc *ServerContext) SetCalendarClient(client *calendar.Client) {
	sc.SetCalendarClientForAccount("default", client)
}

// SetAccountEmail records the authenticated email for an account, learned
// from the ID token during authorization.
func (sc *ServerContext) SetAccountEmail(account, email string) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.accountEmails[account] = email
}

// AccountEmail returns the authenticated email for an account, or "" when
// the account authorized without an ID token or in an earlier session.
func (sc *ServerContext) AccountEmail(account string) string {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.accountEmails[account]
}

// ConnectedAccounts returns the sorted names of accounts with an initialized
// Calendar client.
func (sc *ServerContext) ConnectedAccounts() []string {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	accounts := make([]string, 0, len(sc.calendarClients))
	for account := range sc.calendarClients {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)
	return accounts
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
