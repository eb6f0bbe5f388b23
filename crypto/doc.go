// Package crypto handles the entity secret protecting privileged calls to the
// Circle platform.  It covers generation of the secret, format validation, and
// the one-time envelope encryption performed before every privileged request.
//
// The entity secret is generated exactly once per account entity with
// [GenerateEntitySecret], registered with the platform, and kept by the
// caller.  It is never sent in plaintext after registration; instead it is
// re-encrypted under the platform's RSA public key with
// [EncryptEntitySecret] for every call that requires it.  OAEP padding makes
// each ciphertext unique, so a ciphertext must never be reused across calls.
package crypto
