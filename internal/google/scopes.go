package google

// DefaultOAuthScopes are the Google OAuth scopes required for full
// functionality. Calendar access covers event and calendar management as
// well as freebusy queries; the OpenID Connect scopes are needed to resolve
// the authenticated user.
var DefaultOAuthScopes = []string{
	"openid",
	"https://www.googleapis.com/auth/userinfo.email",

	// Google Calendar (events, calendar list, freebusy)
	"https://www.googleapis.com/auth/calendar",
}
