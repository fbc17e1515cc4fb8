package common

// AuthorizationHeaderName is the HTTP header carrying the session token on
// outbound API requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the session token in the Authorization header.
const BearerPrefix = "Bearer "

// FakeTokenPrefix starts every session token issued by the simulated backend.
const FakeTokenPrefix = "fake-jwt-token"
