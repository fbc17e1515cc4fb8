// Package identity wraps the external social-login provider (the Facebook
// Graph API) behind a small capability interface.
//
// Provider mirrors the operations the session manager needs from the
// provider SDK: an interactive Login, Logout, LoginStatus, the cached
// AuthResponse and a generic API call. ProfileClient is the narrow Graph
// client used by the simulated backend to resolve an access token to a
// profile.
package identity
