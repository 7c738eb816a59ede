package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignVerify_RoundTrip(t *testing.T) {
	sig := Sign(KindEmbed, "cat/q1", "secret")
	assert.True(t, Verify(KindEmbed, "cat/q1", sig, "secret"))
}

func TestVerify_WrongSecretFails(t *testing.T) {
	sig := Sign(KindEmbed, "cat/q1", "secret")
	assert.False(t, Verify(KindEmbed, "cat/q1", sig, "other-secret"))
}

func TestVerify_WrongIdentifierFails(t *testing.T) {
	sig := Sign(KindEmbed, "cat/q1", "secret")
	assert.False(t, Verify(KindEmbed, "cat/q2", sig, "secret"))
}

func TestVerify_KindsAreNotInterchangeable(t *testing.T) {
	// Same identifier and secret, different purpose: must not verify.
	embed := Sign(KindEmbed, "cat/q1", "secret")
	iframe := Sign(KindIframe, "cat/q1", "secret")

	assert.NotEqual(t, embed, iframe)
	assert.False(t, Verify(KindIframe, "cat/q1", embed, "secret"))
	assert.False(t, Verify(KindEmbed, "cat/q1", iframe, "secret"))
}

func TestSign_DeterministicHexOutput(t *testing.T) {
	a := Sign(KindEmbed, "id", "s")
	b := Sign(KindEmbed, "id", "s")

	assert.Equal(t, a, b)
	assert.Len(t, a, 64) // hex of a 32-byte digest
}

func TestVerify_EmptyClaimedFails(t *testing.T) {
	assert.False(t, Verify(KindEmbed, "id", "", "s"))
}
