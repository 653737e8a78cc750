// Package logging defines the slog attribute vocabulary shared across
// the codebase, plus sanitizers for values that must never appear in
// logs verbatim.
//
// Attribute helpers keep key names consistent so log lines stay
// queryable:
//
//	slog.Info("calendar fetch finished",
//	    logging.Operation("availability.fetch"),
//	    logging.Account(account),
//	    logging.Status("success"))
//
// Sensitive values go through a sanitizer first:
//
//	slog.Info("user operation", logging.UserHash(email))
//	slog.Debug("exchanging code", "code", logging.SanitizeToken(authCode))
//
// Emails are hashed so entries for the same user remain correlatable
// without exposing the address; tokens are reduced to their length.
package logging
