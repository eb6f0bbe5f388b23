package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
)

// ParseEntityPublicKey imports the platform's PEM-encoded RSA public key.
// Both PKIX ("PUBLIC KEY") and PKCS #1 ("RSA PUBLIC KEY") encodings are
// accepted.  Any other key type fails with [ErrInvalidPublicKey].
func ParseEntityPublicKey(pemStr string) (*rsa.PublicKey, error) {
	if pemStr == "" {
		return nil, ErrMissingPublicKey
	}
	block, _ := pem.Decode([]byte(pemStr))
	if block == nil {
		return nil, fmt.Errorf("%w: not PEM encoded", ErrInvalidPublicKey)
	}
	if key, err := x509.ParsePKCS1PublicKey(block.Bytes); err == nil {
		return key, nil
	}
	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPublicKey, err)
	}
	key, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA key", ErrInvalidPublicKey)
	}
	return key, nil
}

// ExpectedCiphertextLength returns the Base64 length of a ciphertext produced
// under the given key.  RSA output is always exactly the modulus size, so the
// length follows from the key alone: 344 characters for a 2048-bit key, 684
// for a 4096-bit key.
func ExpectedCiphertextLength(publicKey *rsa.PublicKey) int {
	return base64.StdEncoding.EncodedLen(publicKey.Size())
}

// EncryptEntitySecret encrypts the entity secret under the platform's public
// key with RSA-OAEP, SHA-256 as both the message digest and the MGF1 digest,
// and returns the ciphertext as standard Base64.
//
// OAEP padding is randomized, so every call returns a different ciphertext
// for the same secret.  That is the point: the platform rejects replayed
// ciphertexts, so a fresh one must be produced for every privileged call.
func EncryptEntitySecret(secret *EntitySecret, publicKey *rsa.PublicKey) (string, error) {
	if publicKey == nil {
		return "", ErrMissingPublicKey
	}
	encrypted, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, publicKey, secret.Bytes(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrEncryptFailed, err)
	}
	ciphertext := base64.StdEncoding.EncodeToString(encrypted)
	if expected := ExpectedCiphertextLength(publicKey); len(ciphertext) != expected {
		return "", fmt.Errorf("%w: got %d, want %d", ErrCiphertextLength, len(ciphertext), expected)
	}
	return ciphertext, nil
}
