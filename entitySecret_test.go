package circle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luckyisrael/CircleDeveloperControlledWalletSDK/crypto"
)

func TestClient_PublicKey(t *testing.T) {
	mp := newMockPlatform(t)
	client := mp.newClient(t)

	pemStr, err := client.PublicKey(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, mp.publicKeyPEM(t), pemStr)

	_, err = crypto.ParseEntityPublicKey(pemStr)
	assert.NoError(t, err)
}

func TestClient_PublicKeyErrors(t *testing.T) {
	mp := newMockPlatform(t)

	// Empty key in an otherwise well-formed response is fatal
	mp.mux.HandleFunc("GET /empty/config/entity/publicKey", func(w http.ResponseWriter, r *http.Request) {
		mp.writeData(w, map[string]string{"publicKey": ""})
	})
	client, err := NewClient(EnvironmentConfig{Name: "mock", BaseURL: mp.server.URL + "/empty"}, testApiKey)
	require.NoError(t, err)
	_, err = client.PublicKey(context.Background())
	assert.ErrorIs(t, err, crypto.ErrMissingPublicKey)

	// Non-2xx surfaces as an HttpError with the envelope contents
	mp.mux.HandleFunc("GET /down/config/entity/publicKey", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]any{"code": 500999, "message": "platform maintenance"})
	})
	client, err = NewClient(EnvironmentConfig{Name: "mock", BaseURL: mp.server.URL + "/down"}, testApiKey)
	require.NoError(t, err)
	_, err = client.PublicKey(context.Background())
	var httpErr *HttpError
	assert.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
	assert.Equal(t, 500999, httpErr.Code)
	assert.Equal(t, "platform maintenance", httpErr.Message)
}

func TestClient_EntitySecretCiphertext(t *testing.T) {
	mp := newMockPlatform(t)
	client := mp.newClient(t, EntitySecret(testSecretHex))

	first, err := client.EntitySecretCiphertext(context.Background())
	assert.NoError(t, err)
	second, err := client.EntitySecretCiphertext(context.Background())
	assert.NoError(t, err)

	// 2048-bit mock key: 344 Base64 characters
	assert.Len(t, first, 344)

	// Fresh ciphertext per call, both decrypting to the same secret
	assert.NotEqual(t, first, second)
	secret := &crypto.EntitySecret{}
	require.NoError(t, secret.FromHex(testSecretHex))
	assert.Equal(t, secret.Bytes(), mp.decryptCiphertext(t, first))
	assert.Equal(t, secret.Bytes(), mp.decryptCiphertext(t, second))

	// The key is re-fetched every time, never cached
	assert.Equal(t, 2, mp.publicKeyCalls)
}

func TestClient_EntitySecretCiphertext_NoSecret(t *testing.T) {
	mp := newMockPlatform(t)
	client := mp.newClient(t)

	_, err := client.EntitySecretCiphertext(context.Background())
	assert.ErrorIs(t, err, ErrNoEntitySecret)
	assert.Empty(t, mp.requests)
}

func TestClient_EntitySecretCiphertext_BadKey(t *testing.T) {
	mp := newMockPlatform(t)
	mp.mux.HandleFunc("GET /bad/config/entity/publicKey", func(w http.ResponseWriter, r *http.Request) {
		mp.writeData(w, map[string]string{"publicKey": "not a pem block"})
	})
	client, err := NewClient(EnvironmentConfig{Name: "mock", BaseURL: mp.server.URL + "/bad"},
		testApiKey, EntitySecret(testSecretHex))
	require.NoError(t, err)

	_, err = client.EntitySecretCiphertext(context.Background())
	assert.ErrorIs(t, err, crypto.ErrInvalidPublicKey)
}

func TestClient_RegisterEntitySecret(t *testing.T) {
	mp := newMockPlatform(t)

	var gotBody registerEntitySecretRequest
	mp.mux.HandleFunc("POST /developer/register", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		mp.writeData(w, map[string]string{"status": "SUCCESS"})
	})
	client := mp.newClient(t)

	recoveryFile := filepath.Join(t.TempDir(), "recovery.json")
	result, err := client.RegisterEntitySecret(context.Background(), testSecretHex, recoveryFile)
	assert.NoError(t, err)
	assert.Equal(t, "SUCCESS", result.Status)

	// The registration body carried the plaintext secret and a fresh UUID
	assert.Equal(t, testSecretHex, gotBody.EntitySecret)
	_, err = uuid.Parse(gotBody.IdempotencyKey)
	assert.NoError(t, err)

	// The recovery record is on disk, matching what was registered
	raw, err := os.ReadFile(recoveryFile)
	require.NoError(t, err)
	record := &RecoveryRecord{}
	require.NoError(t, json.Unmarshal(raw, record))
	assert.Equal(t, testSecretHex, record.EntitySecret)
	assert.Equal(t, gotBody.IdempotencyKey, record.IdempotencyKey)
	_, err = time.Parse(time.RFC3339, record.RegistrationDate)
	assert.NoError(t, err)
	assert.NotEmpty(t, record.Note)
}

func TestClient_RegisterEntitySecret_ArgumentErrors(t *testing.T) {
	mp := newMockPlatform(t)
	client := mp.newClient(t)

	// A malformed secret fails before any network call
	_, err := client.RegisterEntitySecret(context.Background(), "1234567890", "")
	assert.ErrorIs(t, err, crypto.ErrInvalidEntitySecret)
	assert.Empty(t, mp.requests)

	// So does a recovery path in a directory that does not exist
	_, err = client.RegisterEntitySecret(context.Background(), testSecretHex,
		filepath.Join(t.TempDir(), "missing", "recovery.json"))
	assert.ErrorIs(t, err, ErrInvalidRecoveryPath)
	assert.Empty(t, mp.requests)
}

func TestClient_RegisterEntitySecret_HttpError(t *testing.T) {
	mp := newMockPlatform(t)
	mp.mux.HandleFunc("POST /developer/register", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]any{"code": 155103, "message": "Entity secret is already registered"})
	})
	client := mp.newClient(t)

	_, err := client.RegisterEntitySecret(context.Background(), testSecretHex, "")
	var httpErr *HttpError
	assert.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusConflict, httpErr.StatusCode)
	assert.Equal(t, 155103, httpErr.Code)
	assert.Equal(t, "Entity secret is already registered", httpErr.Message)
}

func TestClient_RegisterEntitySecret_RecoveryWriteFailure(t *testing.T) {
	mp := newMockPlatform(t)
	mp.mux.HandleFunc("POST /developer/register", func(w http.ResponseWriter, r *http.Request) {
		mp.writeData(w, map[string]string{"status": "SUCCESS"})
	})
	client := mp.newClient(t)

	// The parent directory exists, but the target is itself a directory, so
	// the write fails after a successful registration.
	recoveryFile := filepath.Join(t.TempDir(), "recovery.json")
	require.NoError(t, os.Mkdir(recoveryFile, 0o755))

	result, err := client.RegisterEntitySecret(context.Background(), testSecretHex, recoveryFile)

	var recoveryErr *RecoveryFileError
	assert.ErrorAs(t, err, &recoveryErr)
	assert.Equal(t, recoveryFile, recoveryErr.Path)

	// The registration itself succeeded and its result stays accessible
	require.NotNil(t, result)
	assert.Equal(t, "SUCCESS", result.Status)
	assert.Equal(t, result, recoveryErr.Result)
}

func Test_ErrorMessageSynthesis(t *testing.T) {
	mp := newMockPlatform(t)
	mp.mux.HandleFunc("GET /teapot/config/entity/publicKey", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("<html>not json</html>"))
	})
	client, err := NewClient(EnvironmentConfig{Name: "mock", BaseURL: mp.server.URL + "/teapot"}, testApiKey)
	require.NoError(t, err)

	_, err = client.PublicKey(context.Background())
	var httpErr *HttpError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusTeapot, httpErr.StatusCode)
	assert.Equal(t, "Unknown error", httpErr.Message)
	assert.Equal(t, []byte("<html>not json</html>"), httpErr.Body)
}
