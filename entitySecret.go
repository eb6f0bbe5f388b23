package circle

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/Luckyisrael/CircleDeveloperControlledWalletSDK/api"
	"github.com/Luckyisrael/CircleDeveloperControlledWalletSDK/crypto"
)

const recoveryNote = "This is the only copy of your entity secret. The platform cannot recover it if lost."

// RecoveryRecord is the local-only artifact optionally written when an entity
// secret is registered.  It is written once, owned by the caller's
// filesystem, and never read back by the SDK.
type RecoveryRecord struct {
	EntitySecret     string `json:"EntitySecret"`
	IdempotencyKey   string `json:"IdempotencyKey"`
	RegistrationDate string `json:"RegistrationDate"`
	Note             string `json:"Note"`
}

// RecoveryFileError reports a failed recovery file write after a successful
// registration.  The remote registration is NOT rolled back: Result carries
// the successful response so the caller can keep it and rewrite the file.
type RecoveryFileError struct {
	Path   string
	Result *api.RegistrationResponse
	Err    error
}

func (err *RecoveryFileError) Error() string {
	return fmt.Sprintf("registration succeeded, but writing recovery file %s failed: %s", err.Path, err.Err)
}

func (err *RecoveryFileError) Unwrap() error {
	return err.Err
}

type registerEntitySecretRequest struct {
	EntitySecret   string `json:"entitySecret" validate:"required,len=64,hexadecimal"`
	IdempotencyKey string `json:"idempotencyKey" validate:"required,uuid4"`
}

// PublicKey fetches the entity's current RSA public key in PEM form.  The key
// is treated as ephemeral configuration: it is fetched fresh before every
// encryption so key rotation on the platform side takes effect immediately.
func (rc *restClient) PublicKey(ctx context.Context) (string, error) {
	response := &api.PublicKeyResponse{}
	if err := rc.get(ctx, "config/entity/publicKey", nil, response); err != nil {
		return "", err
	}
	if response.PublicKey == "" {
		return "", crypto.ErrMissingPublicKey
	}
	return response.PublicKey, nil
}

// EntitySecretCiphertext fetches the entity public key and encrypts the
// configured entity secret under it.  Every call produces a new ciphertext;
// a ciphertext must never be reused across requests.
func (rc *restClient) EntitySecretCiphertext(ctx context.Context) (string, error) {
	if rc.entitySecret == nil {
		return "", ErrNoEntitySecret
	}
	pemStr, err := rc.PublicKey(ctx)
	if err != nil {
		return "", err
	}
	publicKey, err := crypto.ParseEntityPublicKey(pemStr)
	if err != nil {
		return "", err
	}
	return crypto.EncryptEntitySecret(rc.entitySecret, publicKey)
}

// RegisterEntitySecret performs the one-time registration of a newly
// generated entity secret.  Registration is the single case where the secret
// travels in plaintext, over TLS, as the bootstrap with the platform.
//
// A fresh idempotency key is generated per invocation, so the whole operation
// can be retried externally without double-registering.  Exactly one network
// call is made; there is no internal retry.
//
// If recoveryFile is non-empty, a [RecoveryRecord] is written there after a
// successful registration.  A failed write returns the successful response
// together with a [*RecoveryFileError].
func (rc *restClient) RegisterEntitySecret(ctx context.Context, entitySecret string, recoveryFile string) (*api.RegistrationResponse, error) {
	if !crypto.IsValidEntitySecret(entitySecret) {
		return nil, crypto.ErrInvalidEntitySecret
	}
	if recoveryFile != "" && !isValidRecoveryPath(recoveryFile) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRecoveryPath, filepath.Dir(recoveryFile))
	}

	request := &registerEntitySecretRequest{
		EntitySecret:   entitySecret,
		IdempotencyKey: uuid.NewString(),
	}
	response := &api.RegistrationResponse{}
	if err := rc.post(ctx, "developer/register", request, response); err != nil {
		return nil, err
	}

	if recoveryFile != "" {
		record := &RecoveryRecord{
			EntitySecret:     entitySecret,
			IdempotencyKey:   request.IdempotencyKey,
			RegistrationDate: time.Now().UTC().Format(time.RFC3339),
			Note:             recoveryNote,
		}
		if err := writeRecoveryRecord(recoveryFile, record); err != nil {
			return response, &RecoveryFileError{Path: recoveryFile, Result: response, Err: err}
		}
	}
	return response, nil
}

// isValidRecoveryPath reports whether the path's parent directory exists.
// Checked before the registration call so a doomed write cannot follow a
// successful registration.
func isValidRecoveryPath(path string) bool {
	info, err := os.Stat(filepath.Dir(path))
	return err == nil && info.IsDir()
}

func writeRecoveryRecord(path string, record *RecoveryRecord) error {
	encoded, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, encoded, 0o600)
}
