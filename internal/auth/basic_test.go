package auth

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	testScope = Scope{Region: "eu-west-1", Account: "314159", API: "jarvis", Stage: "prod"}
	testCreds = Credentials{Username: "edith", Password: "s3cret"}
)

func basicHeader(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

func TestAuthorizeAllowsExactMatch(t *testing.T) {
	grant, err := Authorize(basicHeader("edith", "s3cret"), testScope, testCreds)
	require.NoError(t, err)
	require.Equal(t, "edith", grant.PrincipalID)
	require.Equal(t, "eu-west-1:314159:jarvis/prod/*/*", grant.Resource)
}

func TestAuthorizeDeniesAbsentHeader(t *testing.T) {
	_, err := Authorize("", testScope, testCreds)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthorizeDeniesMalformedHeader(t *testing.T) {
	for _, header := range []string{
		"Basic",
		"Basic a b c",
		"Bearer not-base64!!!",
		"Basic %%%%",
	} {
		_, err := Authorize(header, testScope, testCreds)
		require.ErrorIs(t, err, ErrUnauthorized, "header %q", header)
	}
}

func TestAuthorizeDeniesNonPairCredentials(t *testing.T) {
	// Decodes fine but is not exactly username:password.
	noColon := "Basic " + base64.StdEncoding.EncodeToString([]byte("edith"))
	twoColons := "Basic " + base64.StdEncoding.EncodeToString([]byte("edith:s3:cret"))

	for _, header := range []string{noColon, twoColons} {
		_, err := Authorize(header, testScope, testCreds)
		require.ErrorIs(t, err, ErrUnauthorized, "header %q", header)
	}
}

func TestAuthorizeDeniesWrongCredentials(t *testing.T) {
	for _, header := range []string{
		basicHeader("edith", "wrong"),
		basicHeader("mallory", "s3cret"),
		basicHeader("Edith", "s3cret"), // case-sensitive
		basicHeader("edith", "S3CRET"),
	} {
		_, err := Authorize(header, testScope, testCreds)
		require.ErrorIs(t, err, ErrUnauthorized, "header %q", header)
	}
}

func TestAuthorizeIgnoresSchemeName(t *testing.T) {
	// The decision rests on the decoded credentials, not the scheme token.
	header := "Token " + base64.StdEncoding.EncodeToString([]byte("edith:s3cret"))
	grant, err := Authorize(header, testScope, testCreds)
	require.NoError(t, err)
	require.Equal(t, "edith", grant.PrincipalID)
}
