package circle

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luckyisrael/CircleDeveloperControlledWalletSDK/api"
	"github.com/Luckyisrael/CircleDeveloperControlledWalletSDK/crypto"
)

const testTransactionID = "4847955d-5f5a-5f5a-8a1b-0d14426397cb"
const testEVMAddress = "0xca9142d0b9804ef5e239d3bc1c7aa0d1c74e7350"

func TestClient_CreateTransferTransaction(t *testing.T) {
	mp := newMockPlatform(t)

	var gotBody createTransferRequestBody
	mp.mux.HandleFunc("POST /developer/transactions/transfer", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		mp.writeData(w, map[string]string{"id": testTransactionID, "state": "INITIATED"})
	})
	client := mp.newClient(t, EntitySecret(testSecretHex))

	submitted, err := client.CreateTransferTransaction(context.Background(), CreateTransferRequest{
		WalletID:           testWalletID,
		DestinationAddress: testEVMAddress,
		Amounts:            []string{"0.25"},
		TokenID:            "36b6931a-873a-56a8-8a27-b706b17104ee",
		FeeLevel:           FeeLevelMedium,
	})
	assert.NoError(t, err)
	assert.Equal(t, testTransactionID, submitted.ID)
	assert.Equal(t, "INITIATED", submitted.State)

	// The body carried a fresh ciphertext and a generated idempotency key
	secret := &crypto.EntitySecret{}
	require.NoError(t, secret.FromHex(testSecretHex))
	assert.Equal(t, secret.Bytes(), mp.decryptCiphertext(t, gotBody.EntitySecretCiphertext))
	_, err = uuid.Parse(gotBody.IdempotencyKey)
	assert.NoError(t, err)
	assert.Equal(t, []string{"0.25"}, gotBody.Amounts)

	// A caller-supplied idempotency key is passed through untouched
	key := uuid.NewString()
	_, err = client.CreateTransferTransaction(context.Background(), CreateTransferRequest{
		WalletID:           testWalletID,
		DestinationAddress: testEVMAddress,
		Amounts:            []string{"0.25"},
		TokenID:            "36b6931a-873a-56a8-8a27-b706b17104ee",
		IdempotencyKey:     key,
	})
	assert.NoError(t, err)
	assert.Equal(t, key, gotBody.IdempotencyKey)
}

func TestClient_CreateTransferTransaction_ArgumentErrors(t *testing.T) {
	mp := newMockPlatform(t)
	client := mp.newClient(t, EntitySecret(testSecretHex))

	// Token named both by id and by chain location
	_, err := client.CreateTransferTransaction(context.Background(), CreateTransferRequest{
		WalletID:           testWalletID,
		DestinationAddress: testEVMAddress,
		TokenID:            "36b6931a-873a-56a8-8a27-b706b17104ee",
		Blockchain:         BlockchainPolygonAmoy,
	})
	assert.ErrorIs(t, err, ErrAmbiguousToken)
	assert.Empty(t, mp.requests)

	// Token not named at all
	_, err = client.CreateTransferTransaction(context.Background(), CreateTransferRequest{
		WalletID:           testWalletID,
		DestinationAddress: testEVMAddress,
	})
	assert.ErrorIs(t, err, ErrMissingToken)
	assert.Empty(t, mp.requests)

	// Destination does not fit the named blockchain
	_, err = client.CreateTransferTransaction(context.Background(), CreateTransferRequest{
		WalletID:           testWalletID,
		DestinationAddress: "not-an-address",
		Blockchain:         BlockchainPolygonAmoy,
	})
	assert.ErrorIs(t, err, ErrInvalidDestinationAddress)
	assert.Empty(t, mp.requests)

	// Missing source wallet
	_, err = client.CreateTransferTransaction(context.Background(), CreateTransferRequest{
		DestinationAddress: testEVMAddress,
		TokenID:            "36b6931a-873a-56a8-8a27-b706b17104ee",
	})
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Empty(t, mp.requests)
}

func TestClient_Transactions(t *testing.T) {
	mp := newMockPlatform(t)

	mp.mux.HandleFunc("GET /transactions", func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, BlockchainPolygonAmoy, query.Get("blockchain"))
		assert.Equal(t, "COMPLETE", query.Get("state"))
		assert.Equal(t, testWalletID+",other-wallet", query.Get("walletIds"))
		mp.writeData(w, map[string]any{"transactions": []map[string]any{
			{"id": testTransactionID, "state": "COMPLETE", "operation": "TRANSFER"},
		}})
	})
	client := mp.newClient(t)

	transactions, err := client.Transactions(context.Background(), &ListTransactionsOptions{
		Blockchain: BlockchainPolygonAmoy,
		State:      api.TransactionStateComplete,
		WalletIDs:  []string{testWalletID, "other-wallet"},
	})
	assert.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, api.TransactionStateComplete, transactions[0].State)
}

func TestClient_Transaction(t *testing.T) {
	mp := newMockPlatform(t)

	mp.mux.HandleFunc("GET /transactions/{id}", func(w http.ResponseWriter, r *http.Request) {
		mp.writeData(w, map[string]any{"transaction": map[string]any{
			"id":     r.PathValue("id"),
			"state":  "CONFIRMED",
			"txHash": "0xabc123",
		}})
	})
	client := mp.newClient(t)

	transaction, err := client.Transaction(context.Background(), testTransactionID)
	assert.NoError(t, err)
	assert.Equal(t, testTransactionID, transaction.ID)
	assert.Equal(t, "0xabc123", transaction.TxHash)

	mp.requests = nil
	_, err = client.Transaction(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Empty(t, mp.requests)
}

func TestClient_Transaction_NotFound(t *testing.T) {
	mp := newMockPlatform(t)
	mp.mux.HandleFunc("GET /transactions/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"code": 156004, "message": "Resource not found"})
	})
	client := mp.newClient(t)

	_, err := client.Transaction(context.Background(), testTransactionID)
	var httpErr *HttpError
	assert.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Equal(t, 156004, httpErr.Code)
}

func TestClient_EstimateTransferFee(t *testing.T) {
	mp := newMockPlatform(t)

	mp.mux.HandleFunc("POST /transactions/transfer/estimateFee", func(w http.ResponseWriter, r *http.Request) {
		var body EstimateTransferFeeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, testEVMAddress, body.DestinationAddress)
		mp.writeData(w, map[string]any{
			"low":    map[string]string{"gasLimit": "21000", "maxFee": "2.0"},
			"medium": map[string]string{"gasLimit": "21000", "maxFee": "3.5"},
			"high":   map[string]string{"gasLimit": "21000", "maxFee": "5.0"},
		})
	})
	client := mp.newClient(t)

	estimate, err := client.EstimateTransferFee(context.Background(), EstimateTransferFeeRequest{
		DestinationAddress: testEVMAddress,
		Amounts:            []string{"0.25"},
		Blockchain:         BlockchainPolygonAmoy,
		WalletID:           testWalletID,
	})
	assert.NoError(t, err)
	assert.Equal(t, "3.5", estimate.Medium.MaxFee)
	assert.Equal(t, "5.0", estimate.High.MaxFee)

	// No ciphertext is involved, so the public key is never fetched
	assert.Equal(t, 0, mp.publicKeyCalls)

	// The token selection rule applies here too
	_, err = client.EstimateTransferFee(context.Background(), EstimateTransferFeeRequest{
		DestinationAddress: testEVMAddress,
	})
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestClient_TransactionControl(t *testing.T) {
	mp := newMockPlatform(t)

	var gotBody transactionControlRequest
	var gotPath string
	handler := func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		mp.writeData(w, map[string]string{"id": r.PathValue("id"), "state": "SENT"})
	}
	mp.mux.HandleFunc("POST /developer/transactions/{id}/accelerate", handler)
	mp.mux.HandleFunc("POST /developer/transactions/{id}/cancel", handler)
	client := mp.newClient(t, EntitySecret(testSecretHex))

	submitted, err := client.AccelerateTransaction(context.Background(), testTransactionID)
	assert.NoError(t, err)
	assert.Equal(t, testTransactionID, submitted.ID)
	assert.Equal(t, "/developer/transactions/"+testTransactionID+"/accelerate", gotPath)
	assert.NotEmpty(t, gotBody.EntitySecretCiphertext)

	firstCiphertext := gotBody.EntitySecretCiphertext
	_, err = client.CancelTransaction(context.Background(), testTransactionID)
	assert.NoError(t, err)
	assert.Equal(t, "/developer/transactions/"+testTransactionID+"/cancel", gotPath)

	// Each control call is authorized by its own fresh ciphertext
	assert.NotEqual(t, firstCiphertext, gotBody.EntitySecretCiphertext)

	mp.requests = nil
	_, err = client.AccelerateTransaction(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Empty(t, mp.requests)
}

func TestClient_ValidateAddress(t *testing.T) {
	mp := newMockPlatform(t)

	mp.mux.HandleFunc("POST /transactions/validateAddress", func(w http.ResponseWriter, r *http.Request) {
		var body validateAddressRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		mp.writeData(w, map[string]bool{"isValid": body.Address == testEVMAddress})
	})
	client := mp.newClient(t)

	valid, err := client.ValidateAddress(context.Background(), BlockchainPolygonAmoy, testEVMAddress)
	assert.NoError(t, err)
	assert.True(t, valid)

	valid, err = client.ValidateAddress(context.Background(), BlockchainPolygonAmoy, "0xdead")
	assert.NoError(t, err)
	assert.False(t, valid)
}
