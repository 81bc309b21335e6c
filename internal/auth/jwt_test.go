package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	t.Parallel()

	tokens := NewTokenManager("super-secret", time.Hour)

	tok, err := tokens.Generate(42)
	require.NoError(t, err)

	userID, err := tokens.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, uint(42), userID)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	tokens := NewTokenManager("super-secret", -time.Second)

	tok, err := tokens.Generate(1)
	require.NoError(t, err)

	_, err = tokens.Verify(tok)
	require.Error(t, err)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenManager("right-secret", time.Hour).Generate(7)
	require.NoError(t, err)

	_, err = NewTokenManager("wrong-secret", time.Hour).Verify(tok)
	require.Error(t, err)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewTokenManager("k", time.Hour).Verify("not.a.jwt")
	require.Error(t, err)
}
