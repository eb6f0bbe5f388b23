package crypto

import (
	"crypto/rand"
	"fmt"

	"github.com/Luckyisrael/CircleDeveloperControlledWalletSDK/internal/util"
)

// EntitySecretLength is the raw length of an entity secret in bytes.
const EntitySecretLength = 32

// EntitySecretHexLength is the length of the canonical hex representation.
const EntitySecretHexLength = EntitySecretLength * 2

// EntitySecret is the 32-byte shared secret authorizing privileged operations
// on behalf of the caller's account entity.  Its canonical representation is a
// 64-character lowercase hex string.
//
// Generate it once with [GenerateEntitySecret], register it with the platform,
// and store the hex form somewhere safe.  The SDK never persists it.
type EntitySecret [EntitySecretLength]byte

// GenerateEntitySecret produces a new entity secret from the operating
// system's cryptographically secure random source.  This is done once, ever,
// per account entity.
func GenerateEntitySecret() (*EntitySecret, error) {
	secret := &EntitySecret{}
	if _, err := rand.Read(secret[:]); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return secret, nil
}

// IsValidEntitySecret tells whether the string is a well-formed entity secret:
// exactly 64 hex digits, case-insensitive.
func IsValidEntitySecret(secret string) bool {
	if len(secret) != EntitySecretHexLength {
		return false
	}
	for _, c := range secret {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// FromHex sets the entity secret from its canonical hex representation
func (secret *EntitySecret) FromHex(hexStr string) error {
	if !IsValidEntitySecret(hexStr) {
		return ErrInvalidEntitySecret
	}
	bytes, err := util.ParseHex(hexStr)
	if err != nil {
		return ErrInvalidEntitySecret
	}
	return secret.FromBytes(bytes)
}

// FromBytes sets the entity secret from raw bytes
func (secret *EntitySecret) FromBytes(bytes []byte) error {
	if len(bytes) != EntitySecretLength {
		return ErrInvalidEntitySecretLength
	}
	copy(secret[:], bytes)
	return nil
}

// Bytes returns the raw bytes of the entity secret
func (secret *EntitySecret) Bytes() []byte {
	return secret[:]
}

// ToHex returns the canonical lowercase hex representation
func (secret *EntitySecret) ToHex() string {
	return util.BytesToHex(secret[:])
}
