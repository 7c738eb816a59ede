// Package token mints and verifies the keyed signature tokens that
// authorize an identifier for embedding. A token is the HMAC-SHA256 of the
// identifier under a shared secret, mixed with a context label so a token
// minted for one purpose never verifies as another.
package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Kind is the context label mixed into a token's hash.
type Kind string

const (
	// KindEmbed authorizes an identifier to appear in an embed marker.
	KindEmbed Kind = "embedtoken"

	// KindIframe authorizes the question-display endpoint to serve an
	// identifier inside an iframe.
	KindIframe Kind = "iframetoken"
)

// Sign returns the hex-encoded token authorizing id for the given purpose
// under secret.
func Sign(kind Kind, id, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(kind))
	mac.Write([]byte(id))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether claimed authorizes id for the given purpose under
// secret. The comparison is constant-time.
func Verify(kind Kind, id, claimed, secret string) bool {
	return hmac.Equal([]byte(Sign(kind, id, secret)), []byte(claimed))
}
