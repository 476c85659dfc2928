package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTer(ttl time.Duration) *JWTer {
	return &JWTer{Secret: []byte("test-secret"), Issuer: "library-api", TTL: ttl}
}

func Test_Issue_Parse_Roundtrip(t *testing.T) {
	j := newJWTer(time.Hour)
	tok, err := j.Issue("alice", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
}

func Test_Parse_Expired(t *testing.T) {
	j := newJWTer(-time.Minute) // exp 已过
	tok, err := j.Issue("alice", "member")
	require.NoError(t, err)

	_, err = j.Parse(tok)
	assert.Error(t, err)
}

func Test_Parse_WrongSecret(t *testing.T) {
	j := newJWTer(time.Hour)
	tok, err := j.Issue("alice", "member")
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("other-secret"), Issuer: "library-api", TTL: time.Hour}
	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func Test_Parse_WrongIssuer(t *testing.T) {
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "someone-else", TTL: time.Hour}
	tok, err := j.Issue("alice", "member")
	require.NoError(t, err)

	_, err = newJWTer(time.Hour).Parse(tok)
	assert.Error(t, err)
}

func Test_Parse_Garbage(t *testing.T) {
	_, err := newJWTer(time.Hour).Parse("not.a.jwt")
	assert.Error(t, err)
}
