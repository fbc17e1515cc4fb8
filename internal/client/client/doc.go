// Package client contains the typed HTTP client for the accounts API.
//
// # Overview
//
// Client is the transport-agnostic API contract used by the session
// manager and the CLI: Authenticate, GetAll, GetByID, Update and Delete.
// HTTPClient implements it over net/http and attaches the current session
// token as a bearer Authorization header. Pointing its transport at
// fakebackend.Interceptor serves the whole API in process.
//
// # Error Handling
//
// Non-2xx responses are returned as *APIError. errors.Is(err,
// ErrUnauthorized) holds for 401s, and transport failures wrap
// ErrUnavailable. A missing account is not an error: GetByID and Update
// return (nil, nil).
package client
