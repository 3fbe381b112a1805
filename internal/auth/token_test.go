package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-token-codec-tests"

func TestTokenCodecRoundTrip(t *testing.T) {
	codec := NewTokenCodec(testSecret, time.Hour)

	token, err := codec.Issue("42")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
}

func TestTokenCodecMalformed(t *testing.T) {
	codec := NewTokenCodec(testSecret, time.Hour)

	for _, tok := range []string{"garbage", "a.b", "....", "header.payload"} {
		_, err := codec.Decode(tok)
		assert.ErrorIs(t, err, ErrTokenMalformed, "token %q", tok)
	}
}

func TestTokenCodecTamperedSignature(t *testing.T) {
	codec := NewTokenCodec(testSecret, time.Hour)

	token, err := codec.Issue("42")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

	_, err = codec.Decode(tampered)
	assert.ErrorIs(t, err, ErrTokenSignatureInvalid)
}

func TestTokenCodecWrongKey(t *testing.T) {
	issuer := NewTokenCodec("one-signing-key-used-by-the-issuer", time.Hour)
	verifier := NewTokenCodec("another-key-used-by-the-verifier!!", time.Hour)

	token, err := issuer.Issue("42")
	require.NoError(t, err)

	_, err = verifier.Decode(token)
	assert.ErrorIs(t, err, ErrTokenSignatureInvalid)
}

func TestTokenCodecExpired(t *testing.T) {
	codec := NewTokenCodec(testSecret, -time.Minute)

	token, err := codec.Issue("42")
	require.NoError(t, err)

	_, err = codec.Decode(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenCodecIssueWithoutSecret(t *testing.T) {
	codec := NewTokenCodec("", time.Hour)

	_, err := codec.Issue("42")
	assert.Error(t, err)
}
