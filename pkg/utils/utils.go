package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPINCost is the bcrypt cost used for stored PIN hashes.
const DefaultPINCost = bcrypt.DefaultCost

// MaxPINBytes is the longest PIN bcrypt can hash. bcrypt ignores key bytes
// past this length, so longer entries can never be an exact match.
const MaxPINBytes = 72

// ErrPINTooLong is returned when a PIN exceeds MaxPINBytes.
var ErrPINTooLong = errors.New("PIN is longer than 72 bytes")

// HashPIN hashes a plain PIN using bcrypt with the given cost.
func HashPIN(pin string, cost int) (string, error) {
	if len(pin) > MaxPINBytes {
		return "", ErrPINTooLong
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(pin), cost)
	return string(bytes), err
}

// CheckPINHash compares a plain PIN with a bcrypt hash. PINs longer than
// MaxPINBytes never match.
func CheckPINHash(pin, hash string) bool {
	if len(pin) > MaxPINBytes {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) == nil
}

// IsPINHash reports whether s is a well-formed bcrypt hash.
func IsPINHash(s string) bool {
	_, err := bcrypt.Cost([]byte(s))
	return err == nil
}
