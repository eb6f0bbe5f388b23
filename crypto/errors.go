package crypto

import "errors"

// Entity secret errors indicate a malformed secret supplied by the caller.
var (
	// ErrInvalidEntitySecret indicates the secret is not a 64-character hex string.
	ErrInvalidEntitySecret = errors.New("entity secret must be a 64-character hex string")

	// ErrInvalidEntitySecretLength indicates the raw secret is not exactly 32 bytes.
	ErrInvalidEntitySecretLength = errors.New("entity secret must be exactly 32 bytes")
)

// Public key errors indicate the platform's RSA key could not be used.
var (
	// ErrMissingPublicKey indicates the platform returned no public key.
	ErrMissingPublicKey = errors.New("entity public key is missing")

	// ErrInvalidPublicKey indicates the PEM block could not be parsed as an RSA public key.
	ErrInvalidPublicKey = errors.New("invalid or unsupported entity public key")
)

// Encryption errors indicate a failure producing the entity secret ciphertext.
var (
	// ErrEncryptFailed indicates the RSA-OAEP encryption itself failed.
	ErrEncryptFailed = errors.New("failed to encrypt entity secret")

	// ErrCiphertextLength indicates the encoded ciphertext does not match the
	// length implied by the key's modulus size.
	ErrCiphertextLength = errors.New("entity secret ciphertext has unexpected length")
)
