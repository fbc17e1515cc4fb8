// Package models defines the data records shared by the simulated backend
// and the client.
package models

// Account is a single account record.
type Account struct {
	// ID is assigned by the account store and is unique within it.
	ID int `json:"id"`

	// ExternalID is the identity provider subject id. It is the
	// find-or-create key used on authentication.
	ExternalID string `json:"externalId"`

	Name      string `json:"name"`
	ExtraInfo string `json:"extraInfo"`

	// Token is only present on authentication responses and in the
	// client's current session. It is never persisted by the store.
	Token string `json:"token,omitempty"`
}

// AccountParams is a partial account used for updates. Nil fields are left
// untouched when merged.
type AccountParams struct {
	ExternalID *string `json:"externalId,omitempty"`
	Name       *string `json:"name,omitempty"`
	ExtraInfo  *string `json:"extraInfo,omitempty"`
}

// Merge returns a copy of a with every non-nil field of p applied.
func (a Account) Merge(p AccountParams) Account {
	if p.ExternalID != nil {
		a.ExternalID = *p.ExternalID
	}
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.ExtraInfo != nil {
		a.ExtraInfo = *p.ExtraInfo
	}
	return a
}

// WithToken returns a copy of a carrying the given session token.
func (a Account) WithToken(token string) Account {
	a.Token = token
	return a
}
