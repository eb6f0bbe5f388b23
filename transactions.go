package circle

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Luckyisrael/CircleDeveloperControlledWalletSDK/api"
)

// Fee levels.
const (
	FeeLevelLow    = "LOW"
	FeeLevelMedium = "MEDIUM"
	FeeLevelHigh   = "HIGH"
)

// CreateTransferRequest are the parameters for [Client.CreateTransferTransaction].
//
// The token to move is named either by TokenID, or by Blockchain plus an
// optional TokenAddress (empty TokenAddress means the chain's native token).
// Naming it both ways is an argument error.
type CreateTransferRequest struct {
	// WalletID is the source wallet.
	WalletID string `json:"walletId" validate:"required"`
	// DestinationAddress is the receiving on-chain address.
	DestinationAddress string `json:"destinationAddress" validate:"required"`
	// Amounts are decimal token amounts; a single element for fungible transfers.
	Amounts []string `json:"amounts,omitempty"`
	// NFTTokenIDs transfer specific NFTs instead of fungible amounts.
	NFTTokenIDs []string `json:"nftTokenIds,omitempty"`
	TokenID     string   `json:"tokenId,omitempty"`
	Blockchain  string   `json:"blockchain,omitempty"`
	// TokenAddress is the token contract; empty means the native token.
	TokenAddress string `json:"tokenAddress,omitempty"`
	// FeeLevel is LOW, MEDIUM or HIGH.  Leave empty when setting gas fields directly.
	FeeLevel    string `json:"feeLevel,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	GasLimit    string `json:"gasLimit,omitempty"`
	GasPrice    string `json:"gasPrice,omitempty"`
	MaxFee      string `json:"maxFee,omitempty"`
	PriorityFee string `json:"priorityFee,omitempty"`
	RefID       string `json:"refId,omitempty"`
	// IdempotencyKey is generated per call when left empty.  Supply one to
	// make an external retry of this request a no-op on the platform.
	IdempotencyKey string `json:"idempotencyKey" validate:"required,uuid4"`
}

type createTransferRequestBody struct {
	CreateTransferRequest
	EntitySecretCiphertext string `json:"entitySecretCiphertext" validate:"required"`
}

// EstimateTransferFeeRequest are the parameters for [Client.EstimateTransferFee].
type EstimateTransferFeeRequest struct {
	DestinationAddress string   `json:"destinationAddress" validate:"required"`
	Amounts            []string `json:"amounts,omitempty"`
	NFTTokenIDs        []string `json:"nftTokenIds,omitempty"`
	TokenID            string   `json:"tokenId,omitempty"`
	Blockchain         string   `json:"blockchain,omitempty"`
	TokenAddress       string   `json:"tokenAddress,omitempty"`
	WalletID           string   `json:"walletId,omitempty"`
	SourceAddress      string   `json:"sourceAddress,omitempty"`
}

type transactionControlRequest struct {
	EntitySecretCiphertext string `json:"entitySecretCiphertext" validate:"required"`
	IdempotencyKey         string `json:"idempotencyKey" validate:"required,uuid4"`
}

type validateAddressRequest struct {
	Blockchain string `json:"blockchain" validate:"required"`
	Address    string `json:"address" validate:"required"`
}

// ListTransactionsOptions are the optional filters for [Client.Transactions].
type ListTransactionsOptions struct {
	Blockchain         string
	CustodyType        string
	DestinationAddress string
	IncludeAll         bool
	Operation          string // Operation filters by TRANSFER, CONTRACT_EXECUTION or CONTRACT_DEPLOYMENT
	State              string // State filters by transaction state, e.g. COMPLETE
	TxHash             string
	TxType             string // TxType filters by INBOUND or OUTBOUND
	WalletIDs          []string
	From               time.Time
	To                 time.Time
	PageBefore         string
	PageAfter          string
	PageSize           int
}

func (options *ListTransactionsOptions) query() url.Values {
	query := url.Values{}
	if options == nil {
		return query
	}
	if options.Blockchain != "" {
		query.Set("blockchain", options.Blockchain)
	}
	if options.CustodyType != "" {
		query.Set("custodyType", options.CustodyType)
	}
	if options.DestinationAddress != "" {
		query.Set("destinationAddress", options.DestinationAddress)
	}
	if options.IncludeAll {
		query.Set("includeAll", "true")
	}
	if options.Operation != "" {
		query.Set("operation", options.Operation)
	}
	if options.State != "" {
		query.Set("state", options.State)
	}
	if options.TxHash != "" {
		query.Set("txHash", options.TxHash)
	}
	if options.TxType != "" {
		query.Set("txType", options.TxType)
	}
	if len(options.WalletIDs) > 0 {
		query.Set("walletIds", strings.Join(options.WalletIDs, ","))
	}
	dateQuery(query, options.From, options.To)
	pageQuery(query, options.PageBefore, options.PageAfter, options.PageSize)
	return query
}

// tokenSelection rejects transfers that name the token both by id and by
// chain location, or not at all, before any network work happens.
func tokenSelection(tokenID string, blockchain string, tokenAddress string) error {
	if tokenID != "" && (blockchain != "" || tokenAddress != "") {
		return ErrAmbiguousToken
	}
	if tokenID == "" && blockchain == "" {
		return ErrMissingToken
	}
	return nil
}

// Transactions lists transactions across the entity's wallets.
func (rc *restClient) Transactions(ctx context.Context, options *ListTransactionsOptions) ([]api.Transaction, error) {
	response := &api.TransactionsResponse{}
	if err := rc.get(ctx, "transactions", options.query(), response); err != nil {
		return nil, err
	}
	return response.Transactions, nil
}

// Transaction retrieves a single transaction by id.
func (rc *restClient) Transaction(ctx context.Context, transactionID string) (*api.Transaction, error) {
	if transactionID == "" {
		return nil, fmt.Errorf("%w: transactionID is required", ErrInvalidRequest)
	}
	response := &api.TransactionResponse{}
	if err := rc.get(ctx, "transactions/"+transactionID, nil, response); err != nil {
		return nil, err
	}
	return &response.Transaction, nil
}

// CreateTransferTransaction submits an outbound transfer from a
// developer-controlled wallet.  Construction and signing of the on-chain
// transaction happen on the platform; the call is authorized by a fresh
// entity secret ciphertext produced for this one request.
func (rc *restClient) CreateTransferTransaction(ctx context.Context, request CreateTransferRequest) (*api.SubmitTransactionResponse, error) {
	if err := tokenSelection(request.TokenID, request.Blockchain, request.TokenAddress); err != nil {
		return nil, err
	}
	if request.Blockchain != "" && !IsValidDestinationAddress(request.Blockchain, request.DestinationAddress) {
		return nil, fmt.Errorf("%w: %s on %s", ErrInvalidDestinationAddress, request.DestinationAddress, request.Blockchain)
	}
	if request.IdempotencyKey == "" {
		request.IdempotencyKey = uuid.NewString()
	}
	if err := validate.Struct(&request); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, err)
	}
	ciphertext, err := rc.EntitySecretCiphertext(ctx)
	if err != nil {
		return nil, err
	}
	body := &createTransferRequestBody{
		CreateTransferRequest:  request,
		EntitySecretCiphertext: ciphertext,
	}
	response := &api.SubmitTransactionResponse{}
	if err := rc.post(ctx, "developer/transactions/transfer", body, response); err != nil {
		return nil, err
	}
	return response, nil
}

// EstimateTransferFee returns per-level fee estimates for a prospective
// transfer without submitting anything.
func (rc *restClient) EstimateTransferFee(ctx context.Context, request EstimateTransferFeeRequest) (*api.EstimateFeeResponse, error) {
	if err := tokenSelection(request.TokenID, request.Blockchain, request.TokenAddress); err != nil {
		return nil, err
	}
	response := &api.EstimateFeeResponse{}
	if err := rc.post(ctx, "transactions/transfer/estimateFee", &request, response); err != nil {
		return nil, err
	}
	return response, nil
}

// AccelerateTransaction resubmits a stuck transaction with a higher fee.
func (rc *restClient) AccelerateTransaction(ctx context.Context, transactionID string) (*api.SubmitTransactionResponse, error) {
	return rc.controlTransaction(ctx, transactionID, "accelerate")
}

// CancelTransaction requests cancellation of a not-yet-final transaction.
// Cancellation is best effort; watch the transaction state for the outcome.
func (rc *restClient) CancelTransaction(ctx context.Context, transactionID string) (*api.SubmitTransactionResponse, error) {
	return rc.controlTransaction(ctx, transactionID, "cancel")
}

func (rc *restClient) controlTransaction(ctx context.Context, transactionID string, action string) (*api.SubmitTransactionResponse, error) {
	if transactionID == "" {
		return nil, fmt.Errorf("%w: transactionID is required", ErrInvalidRequest)
	}
	ciphertext, err := rc.EntitySecretCiphertext(ctx)
	if err != nil {
		return nil, err
	}
	request := &transactionControlRequest{
		EntitySecretCiphertext: ciphertext,
		IdempotencyKey:         uuid.NewString(),
	}
	response := &api.SubmitTransactionResponse{}
	if err := rc.post(ctx, "developer/transactions/"+transactionID+"/"+action, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

// ValidateAddress asks the platform whether an address is valid for a blockchain.
func (rc *restClient) ValidateAddress(ctx context.Context, blockchain string, address string) (bool, error) {
	request := &validateAddressRequest{Blockchain: blockchain, Address: address}
	response := &api.ValidateAddressResponse{}
	if err := rc.post(ctx, "transactions/validateAddress", request, response); err != nil {
		return false, err
	}
	return response.IsValid, nil
}
