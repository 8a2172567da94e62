package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacation-api/internal/core/apperror"
	"vacation-api/internal/core/auth"
)

var secret = []byte("super-secret")

func fixedNow() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) }

func newCodec(t *testing.T, s []byte) *auth.Codec {
	t.Helper()
	c, err := auth.NewCodec(auth.Options{Secret: s, TTL: time.Hour, Now: fixedNow})
	require.NoError(t, err)
	return c
}

func signRaw(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return tok
}

func TestCodec_RoundTrip(t *testing.T) {
	c := newCodec(t, secret)
	in := auth.Principal{ID: 42, Name: "Employee User", Email: "employee@example.com", Role: auth.RoleEmployee}

	tok, err := c.Encode(in, 90*time.Second)
	require.NoError(t, err)

	got, err := c.Decode(tok)
	require.NoError(t, err)
	assert.Equal(t, in.ID, got.ID)
	assert.Equal(t, in.Name, got.Name)
	assert.Equal(t, in.Email, got.Email)
	assert.Equal(t, in.Role, got.Role)
	assert.Equal(t, fixedNow().Unix(), got.IssuedAt.Unix())
	assert.Equal(t, got.IssuedAt.Add(90*time.Second).Unix(), got.ExpiresAt.Unix())
}

func TestCodec_IssueUsesDefaultTTL(t *testing.T) {
	c := newCodec(t, secret)
	tok, err := c.Issue(auth.Principal{ID: 1, Name: "M", Email: "m@example.com", Role: auth.RoleManager})
	require.NoError(t, err)

	got, err := c.Decode(tok)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, got.ExpiresAt.Sub(got.IssuedAt))
}

func TestCodec_DecodeFailures(t *testing.T) {
	c := newCodec(t, secret)
	valid := jwt.MapClaims{
		"sub": 7, "name": "N", "email": "n@example.com", "role": "manager",
		"iat": fixedNow().Unix(), "exp": fixedNow().Add(time.Hour).Unix(),
	}
	without := func(key string) jwt.MapClaims {
		out := jwt.MapClaims{}
		for k, v := range valid {
			if k != key {
				out[k] = v
			}
		}
		return out
	}

	other := newCodec(t, []byte("another-secret"))
	foreign, err := other.Issue(auth.Principal{ID: 7, Name: "N", Email: "n@example.com", Role: auth.RoleManager})
	require.NoError(t, err)

	expired, err := c.Encode(auth.Principal{ID: 7, Name: "N", Email: "n@example.com", Role: auth.RoleManager}, -time.Second)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, valid).SignedString(secret)
	require.NoError(t, err)

	unknownRole := jwt.MapClaims{}
	for k, v := range valid {
		unknownRole[k] = v
	}
	unknownRole["role"] = "admin"

	cases := map[string]string{
		"different secret": foreign,
		"expired":          expired,
		"malformed":        "not.a.jwt",
		"empty":            "",
		"algorithm":        hs512,
		"missing sub":      signRaw(t, without("sub")),
		"missing name":     signRaw(t, without("name")),
		"missing email":    signRaw(t, without("email")),
		"missing role":     signRaw(t, without("role")),
		"missing exp":      signRaw(t, without("exp")),
		"unknown role":     signRaw(t, unknownRole),
		"string sub":       signRaw(t, jwt.MapClaims{"sub": "7", "name": "N", "email": "e", "role": "manager", "exp": fixedNow().Add(time.Hour).Unix()}),
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			p, err := c.Decode(tok)
			require.Error(t, err)
			assert.Equal(t, apperror.KindUnauthenticated, apperror.KindOf(err))
			assert.Equal(t, auth.Principal{}, p)
		})
	}
}

func TestNewCodec_Validation(t *testing.T) {
	_, err := auth.NewCodec(auth.Options{})
	assert.Error(t, err)

	_, err = auth.NewCodec(auth.Options{Secret: secret, Algorithm: "RS256"})
	assert.Error(t, err)

	c, err := auth.NewCodec(auth.Options{Secret: secret, Algorithm: "HS384"})
	require.NoError(t, err)
	assert.Equal(t, time.Hour, c.TTL())
}

func TestCodec_EncodeRejectsUnknownRole(t *testing.T) {
	c := newCodec(t, secret)
	_, err := c.Encode(auth.Principal{ID: 1, Role: "admin"}, time.Minute)
	assert.Error(t, err)
}
