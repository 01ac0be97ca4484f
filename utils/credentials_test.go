package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheck(t *testing.T) {
	// GIVEN
	pw := "S3cr3t!!"

	// WHEN
	hash, err := HashPassword(pw)
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	// THEN
	assert.NotEqual(t, pw, hash)
	assert.True(t, CheckPassword(hash, pw))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestIssueAndParseToken(t *testing.T) {
	tok, err := IssueToken(42, "a@b.c", "sec", time.Minute)
	require.NoError(t, err)

	id, err := ParseToken(tok, "sec")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestParseToken_Rejects(t *testing.T) {
	expired, err := IssueToken(1, "a@b.c", "sec", -time.Minute)
	require.NoError(t, err)

	noSub := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	noSubSigned, err := noSub.SignedString([]byte("sec"))
	require.NoError(t, err)

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "1"})
	noExpSigned, err := noExp.SignedString([]byte("sec"))
	require.NoError(t, err)

	good, err := IssueToken(1, "a@b.c", "sec", time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name   string
		raw    string
		secret string
	}{
		{"garbage", "not-a-jwt", "sec"},
		{"expired", expired, "sec"},
		{"wrong secret", good, "other"},
		{"missing subject", noSubSigned, "sec"},
		{"missing exp", noExpSigned, "sec"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseToken(tc.raw, tc.secret)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
