package auth

import (
	"crypto/subtle"
	"errors"

	"github.com/amirasaad/teller/pkg/utils"
)

// ErrInvalidPINHash is returned when a configured PIN hash is not a bcrypt hash.
var ErrInvalidPINHash = errors.New("invalid PIN hash")

// Verifier decides whether an entered PIN matches the configured secret.
// Implementations must succeed only on an exact match.
type Verifier interface {
	Verify(pin string) bool
}

// PlainVerifier compares against a PIN held in memory.
type PlainVerifier struct {
	secret []byte
}

// NewPlainVerifier returns a verifier for the given secret PIN.
func NewPlainVerifier(secret string) *PlainVerifier {
	return &PlainVerifier{secret: []byte(secret)}
}

// Verify reports whether pin equals the secret, in constant time.
func (v *PlainVerifier) Verify(pin string) bool {
	return subtle.ConstantTimeCompare([]byte(pin), v.secret) == 1
}

// HashVerifier compares against a bcrypt hash of the PIN.
type HashVerifier struct {
	hash string
}

// NewHashVerifier returns a verifier for a bcrypt hash.
func NewHashVerifier(hash string) (*HashVerifier, error) {
	if !utils.IsPINHash(hash) {
		return nil, ErrInvalidPINHash
	}
	return &HashVerifier{hash: hash}, nil
}

// Verify reports whether pin is the value that was hashed. bcrypt reads at
// most utils.MaxPINBytes of the key, so longer entries are rejected up front.
func (v *HashVerifier) Verify(pin string) bool {
	if len(pin) > utils.MaxPINBytes {
		return false
	}
	return utils.CheckPINHash(pin, v.hash)
}
