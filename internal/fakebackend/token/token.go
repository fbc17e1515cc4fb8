// Package token issues and decodes the simulated backend's session tokens.
//
// A token is "fake-jwt-token." followed by the standard base64 encoding of
// a JSON payload {"exp": <unix seconds>, "id": <account id>}. Tokens are
// not signed and carry no verifiable claims.
package token

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// TTL is the lifetime of an issued token.
const TTL = 15 * time.Minute

// Payload is the decoded token body.
type Payload struct {
	Exp *jwt.NumericDate `json:"exp"`
	ID  int              `json:"id"`
}

// Issue returns a token for accountID expiring TTL after now.
func Issue(accountID int, now time.Time) (string, error) {
	p := Payload{
		Exp: jwt.NewNumericDate(now.Add(TTL)),
		ID:  accountID,
	}
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return common.FakeTokenPrefix + "." + base64.StdEncoding.EncodeToString(data), nil
}

// Decode parses a token produced by Issue. Any other input results in an
// error wrapping common.ErrInvalidToken.
func Decode(tok string) (*Payload, error) {
	body, ok := strings.CutPrefix(tok, common.FakeTokenPrefix+".")
	if !ok {
		return nil, fmt.Errorf("%w: missing prefix", common.ErrInvalidToken)
	}

	data, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if p.Exp == nil {
		return nil, fmt.Errorf("%w: no expiry", common.ErrInvalidToken)
	}
	return &p, nil
}

// Expiry is a shortcut for Decode(tok).Exp.Time.
func Expiry(tok string) (time.Time, error) {
	p, err := Decode(tok)
	if err != nil {
		return time.Time{}, err
	}
	return p.Exp.Time, nil
}
