// Package token implements the HMAC signed-URL scheme gating access to HLS
// media. A signature covers the lower-cased request path concatenated with
// the decimal expiry timestamp, keyed by a secret shared with the edge that
// mints the URLs.
package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// Signer computes signatures over a request path and expiry timestamp.
// It is immutable after construction and safe for concurrent use.
type Signer struct {
	key []byte
}

// NewSigner creates a Signer holding the shared secret.
func NewSigner(key []byte) *Signer {
	return &Signer{key: key}
}

// Compute returns the raw HMAC-SHA256 digest for path and exp. The message
// is the lower-cased path with the decimal expiry appended, no separator.
// The path is not percent-decoded or otherwise normalized.
func (s *Signer) Compute(path string, exp int64) []byte {
	message := strings.ToLower(path) + strconv.FormatInt(exp, 10)
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(message))
	return mac.Sum(nil)
}

// Encode renders a digest in the wire format carried by the sig query
// parameter: base64url with the padding stripped.
func Encode(digest []byte) string {
	return base64.RawURLEncoding.EncodeToString(digest)
}

// Sign returns the encoded signature for path and exp.
func (s *Signer) Sign(path string, exp int64) string {
	return Encode(s.Compute(path, exp))
}

// SignedURL returns path with the exp and sig query parameters appended.
func (s *Signer) SignedURL(path string, exp int64) string {
	return fmt.Sprintf("%s?exp=%d&sig=%s", path, exp, s.Sign(path, exp))
}

// Equal reports whether provided matches expected. Comparison cost depends
// only on the length of expected: a provided value of a different length is
// still compared full-width against a zero buffer, so neither the position
// of the first differing byte nor a length mismatch shortens the check.
func Equal(expected, provided string) bool {
	if len(expected) == len(provided) {
		return subtle.ConstantTimeCompare([]byte(expected), []byte(provided)) == 1
	}
	subtle.ConstantTimeCompare([]byte(expected), make([]byte, len(expected)))
	return false
}
