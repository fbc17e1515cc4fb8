package identity

import (
	"context"
	"net/url"
)

// DefaultGraphURL is the Graph API version the client targets.
const DefaultGraphURL = "https://graph.facebook.com/v8.0"

// AuthResponse is what the provider hands back after a successful login.
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	UserID      string `json:"userID"`
}

// Provider is the external identity provider capability.
//
// Login blocks until the user completes or abandons the provider flow. An
// abandoned flow yields (nil, nil). LoginStatus reports the provider's
// current session, or nil when there is none. AuthResponse returns the
// last known response without any I/O.
type Provider interface {
	Login(ctx context.Context) (*AuthResponse, error)
	Logout(ctx context.Context) error
	LoginStatus(ctx context.Context) (*AuthResponse, error)
	AuthResponse() *AuthResponse
	API(ctx context.Context, path, method string, params url.Values) ([]byte, error)
}

// GraphError is an error reported by the Graph API itself, as opposed to a
// transport failure.
type GraphError struct {
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
	Code    int    `json:"code,omitempty"`
}

func (e *GraphError) Error() string {
	return e.Message
}
