// Package session owns the client's notion of who is logged in.
//
// Manager coordinates the two-step login (identity provider, then the
// accounts API), publishes the current account to subscribers and keeps
// the API session fresh with a single refresh timer that re-authenticates
// one minute before the session token expires.
package session
