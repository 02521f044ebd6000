// Package auth implements the credential gate at the request boundary: one
// configured username/password pair, checked per request, producing a
// deployment-scoped grant on success.
package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"
)

// ErrUnauthorized is the single denial outcome. The gate is binary; there is
// no partial or degraded-trust result.
var ErrUnauthorized = errors.New("unauthorized")

// Credentials is the configured username/password pair the gate compares
// decoded header values against, case-sensitively.
type Credentials struct {
	Username string
	Password string
}

// Scope identifies the deployment the request was routed through. A grant
// echoes it back with method and path wildcarded, so the caller may reuse
// the grant for any endpoint of the same deployment.
type Scope struct {
	Region  string
	Account string
	API     string
	Stage   string
}

// ResourcePattern renders the scope as a capability pattern: any method, any
// path, same deployment.
func (s Scope) ResourcePattern() string {
	return s.Region + ":" + s.Account + ":" + s.API + "/" + s.Stage + "/*/*"
}

// Grant is the request-scoped authorization produced by a successful
// decision. PrincipalID is the authenticated username.
type Grant struct {
	PrincipalID string
	Resource    string
}

// Authorize decides allow/deny for one request. It denies when the header is
// absent, is not a two-part "scheme credentials" value, does not base64
// decode, does not decode to exactly a username:password pair, or the pair
// does not equal the configured credentials. Comparison is constant-time on
// the decoded values, never on the encoded header.
func Authorize(header string, scope Scope, want Credentials) (Grant, error) {
	username, password, err := decodeBasicHeader(header)
	if err != nil {
		return Grant{}, err
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(want.Username)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(want.Password)) == 1
	if !usernameOK || !passwordOK {
		return Grant{}, ErrUnauthorized
	}

	return Grant{PrincipalID: username, Resource: scope.ResourcePattern()}, nil
}

func decodeBasicHeader(header string) (string, string, error) {
	parts := strings.Fields(header)
	if len(parts) != 2 {
		return "", "", ErrUnauthorized
	}

	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", "", ErrUnauthorized
	}

	pair := strings.Split(string(decoded), ":")
	if len(pair) != 2 {
		return "", "", ErrUnauthorized
	}
	return pair[0], pair[1], nil
}
