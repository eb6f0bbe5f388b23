package circle

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Luckyisrael/CircleDeveloperControlledWalletSDK/api"
	"github.com/Luckyisrael/CircleDeveloperControlledWalletSDK/crypto"
)

// EnvironmentConfig is a configuration for the Client and which platform
// environment to use.  Use one of the preconfigured [ProductionConfig] or
// [SandboxConfig] unless you are pointing at a mock of the platform.
type EnvironmentConfig struct {
	Name    string
	BaseURL string
}

// ProductionConfig is for use against the live platform.  These are real assets.
var ProductionConfig = EnvironmentConfig{
	Name:    "production",
	BaseURL: "https://api.circle.com/v1/w3s",
}

// SandboxConfig is for use with the sandbox environment.  Sandbox entities and
// wallets are isolated from production.
var SandboxConfig = EnvironmentConfig{
	Name:    "sandbox",
	BaseURL: "https://api-sandbox.circle.com/v1/w3s",
}

// NamedEnvironments Map from environment name to EnvironmentConfig
var NamedEnvironments map[string]EnvironmentConfig

func init() {
	NamedEnvironments = make(map[string]EnvironmentConfig, 2)
	setNE := func(ec EnvironmentConfig) {
		NamedEnvironments[ec.Name] = ec
	}
	setNE(ProductionConfig)
	setNE(SandboxConfig)
}

// EntitySecret is a [NewClient] option carrying the entity secret in its
// canonical 64-character hex form.  A client without one can still perform
// read operations, but every privileged call will fail with [ErrNoEntitySecret].
type EntitySecret string

// RequestTimeout is a [NewClient] option overriding the default 60 second
// HTTP timeout.  It can also be changed later with [Client.SetTimeout].
type RequestTimeout time.Duration

// CircleClient is an interface for all functionality on the Client.
// It is a combination of [CircleEntityClient], [CircleWalletClient],
// [CircleTransactionClient] and [CircleTokenClient] for the purposes of
// mocking and convenience.
type CircleClient interface {
	CircleEntityClient
	CircleWalletClient
	CircleTransactionClient
	CircleTokenClient
}

// CircleEntityClient is an interface for all functionality related to the
// entity secret lifecycle.  Its main implementation is [Client].
type CircleEntityClient interface {
	// SetTimeout adjusts the HTTP client timeout
	//
	//	client.SetTimeout(5 * time.Second)
	SetTimeout(timeout time.Duration)

	// SetHeader sets the header for all future requests
	//
	//	client.SetHeader("X-Request-Id", "0192b7e9-...")
	SetHeader(key string, value string)

	// RemoveHeader removes the header from being automatically set all future requests.
	//
	//	client.RemoveHeader("X-Request-Id")
	RemoveHeader(key string)

	// PublicKey retrieves the entity's current RSA public key in PEM form
	PublicKey(ctx context.Context) (pemStr string, err error)

	// EntitySecretCiphertext produces a fresh one-time ciphertext of the
	// configured entity secret.  Never reuse the result across calls.
	EntitySecretCiphertext(ctx context.Context) (ciphertext string, err error)

	// RegisterEntitySecret registers a newly generated entity secret with the
	// platform, once, ever, per account entity.  Pass a recoveryFile path to
	// also write a local recovery record, or "" to skip it.
	RegisterEntitySecret(ctx context.Context, entitySecret string, recoveryFile string) (result *api.RegistrationResponse, err error)
}

// CircleWalletClient is an interface for all functionality on the Client that
// is wallet or wallet-set related.  Its main implementation is [Client].
type CircleWalletClient interface {
	// CreateWalletSet creates a developer-controlled wallet set
	CreateWalletSet(ctx context.Context, name string) (walletSet *api.WalletSet, err error)

	// WalletSets lists the entity's wallet sets; options may be nil
	WalletSets(ctx context.Context, options *ListWalletSetsOptions) (walletSets []api.WalletSet, err error)

	// WalletSet retrieves a single wallet set by id
	WalletSet(ctx context.Context, walletSetID string) (walletSet *api.WalletSet, err error)

	// UpdateWalletSet renames a wallet set
	UpdateWalletSet(ctx context.Context, walletSetID string, name string) (walletSet *api.WalletSet, err error)

	// CreateWallets provisions wallets on the requested blockchains
	//
	//	wallets, err := client.CreateWallets(ctx, circle.CreateWalletsRequest{
	//		WalletSetID: walletSet.ID,
	//		Blockchains: []string{circle.BlockchainPolygonAmoy},
	//		AccountType: circle.AccountTypeEOA,
	//		Count:       2,
	//	})
	CreateWallets(ctx context.Context, request CreateWalletsRequest) (wallets []api.Wallet, err error)

	// Wallets lists the entity's wallets; options may be nil
	Wallets(ctx context.Context, options *ListWalletsOptions) (wallets []api.Wallet, err error)

	// Wallet retrieves a single wallet by id
	Wallet(ctx context.Context, walletID string) (wallet *api.Wallet, err error)

	// UpdateWallet changes a wallet's name and reference id
	UpdateWallet(ctx context.Context, walletID string, name string, refID string) (wallet *api.Wallet, err error)

	// WalletBalances retrieves the token balances of a wallet; options may be nil
	WalletBalances(ctx context.Context, walletID string, options *ListBalancesOptions) (balances []api.Balance, err error)

	// WalletNFTs retrieves the NFTs held by a wallet; options may be nil
	WalletNFTs(ctx context.Context, walletID string, options *ListBalancesOptions) (nfts []api.NFT, err error)
}

// CircleTransactionClient is an interface for all functionality on the Client
// that is transaction related.  Its main implementation is [Client].
type CircleTransactionClient interface {
	// Transactions lists transactions across the entity's wallets; options may be nil
	Transactions(ctx context.Context, options *ListTransactionsOptions) (transactions []api.Transaction, err error)

	// Transaction gets info on a transaction.  The transaction may still be pending.
	//
	//	data, err := client.Transaction(ctx, "1af639ce-...")
	//	if err != nil {
	//		var httpErr *circle.HttpError
	//		if errors.As(err, &httpErr) && httpErr.StatusCode == 404 {
	//			// unknown to the platform
	//		}
	//	}
	Transaction(ctx context.Context, transactionID string) (transaction *api.Transaction, err error)

	// CreateTransferTransaction submits an outbound transfer.  Signing happens
	// on the platform, authorized by a fresh entity secret ciphertext.
	//
	//	response, err := client.CreateTransferTransaction(ctx, circle.CreateTransferRequest{
	//		WalletID:           wallet.ID,
	//		DestinationAddress: "0x6e5eAf34c73D1CD0be4e24f923b97CF38e10d1f3",
	//		Blockchain:         circle.BlockchainPolygonAmoy,
	//		Amounts:            []string{"0.01"},
	//		FeeLevel:           circle.FeeLevelMedium,
	//	})
	CreateTransferTransaction(ctx context.Context, request CreateTransferRequest) (response *api.SubmitTransactionResponse, err error)

	// EstimateTransferFee returns per-level fee estimates for a prospective transfer
	EstimateTransferFee(ctx context.Context, request EstimateTransferFeeRequest) (estimate *api.EstimateFeeResponse, err error)

	// AccelerateTransaction resubmits a stuck transaction with a higher fee
	AccelerateTransaction(ctx context.Context, transactionID string) (response *api.SubmitTransactionResponse, err error)

	// CancelTransaction requests best-effort cancellation of a transaction
	CancelTransaction(ctx context.Context, transactionID string) (response *api.SubmitTransactionResponse, err error)

	// ValidateAddress asks the platform whether an address is valid for a blockchain
	ValidateAddress(ctx context.Context, blockchain string, address string) (isValid bool, err error)
}

// CircleTokenClient is an interface for all functionality on the Client that
// is token related.  Its main implementation is [Client].
type CircleTokenClient interface {
	// Token retrieves a single token profile by id
	Token(ctx context.Context, tokenID string) (token *api.Token, err error)
}

// Client is a facade over the REST client, as the user doesn't actually care
// how the requests are transported underneath.
//
// To create a new client, please use [NewClient].  An example below for Sandbox:
//
//	client, err := circle.NewClient(circle.SandboxConfig, apiKey, circle.EntitySecret(secretHex))
//
// Implements CircleClient
type Client struct {
	restClient *restClient
}

// NewClient Creates a new client for a specific environment, authenticated by
// the given API key.  Options may carry a custom *http.Client and an
// [EntitySecret] enabling privileged operations.
func NewClient(config EnvironmentConfig, apiKey string, options ...any) (client *Client, err error) {
	var httpClient *http.Client = nil
	var entitySecret *crypto.EntitySecret = nil
	var timeout time.Duration
	for i, arg := range options {
		switch value := arg.(type) {
		case *http.Client:
			if httpClient != nil {
				err = fmt.Errorf("NewClient only accepts one http.Client")
				return
			}
			httpClient = value
		case EntitySecret:
			if entitySecret != nil {
				err = fmt.Errorf("NewClient only accepts one EntitySecret")
				return
			}
			entitySecret = &crypto.EntitySecret{}
			if err = entitySecret.FromHex(string(value)); err != nil {
				return
			}
		case RequestTimeout:
			timeout = time.Duration(value)
		default:
			err = fmt.Errorf("NewClient arg %d bad type %T", i+1, arg)
			return
		}
	}
	restClient, err := newRestClient(config.BaseURL, apiKey, httpClient)
	if err != nil {
		return nil, err
	}
	restClient.entitySecret = entitySecret
	if timeout > 0 {
		restClient.SetTimeout(timeout)
	}
	client = &Client{restClient}
	return
}

// SetTimeout adjusts the HTTP client timeout
//
//	client.SetTimeout(5 * time.Second)
func (client *Client) SetTimeout(timeout time.Duration) {
	client.restClient.SetTimeout(timeout)
}

// SetHeader sets the header for all future requests
//
//	client.SetHeader("X-Request-Id", "0192b7e9-...")
func (client *Client) SetHeader(key string, value string) {
	client.restClient.SetHeader(key, value)
}

// RemoveHeader removes the header from being automatically set all future requests.
//
//	client.RemoveHeader("X-Request-Id")
func (client *Client) RemoveHeader(key string) {
	client.restClient.RemoveHeader(key)
}

// PublicKey retrieves the entity's current RSA public key in PEM form
func (client *Client) PublicKey(ctx context.Context) (pemStr string, err error) {
	return client.restClient.PublicKey(ctx)
}

// EntitySecretCiphertext produces a fresh one-time ciphertext of the
// configured entity secret.  The public key is re-fetched and the secret
// re-encrypted on every call, so two results are never equal.
func (client *Client) EntitySecretCiphertext(ctx context.Context) (ciphertext string, err error) {
	return client.restClient.EntitySecretCiphertext(ctx)
}

// RegisterEntitySecret registers a newly generated entity secret with the
// platform.  See [CircleEntityClient.RegisterEntitySecret].
//
//	secret, _ := crypto.GenerateEntitySecret()
//	result, err := client.RegisterEntitySecret(ctx, secret.ToHex(), "recovery.json")
func (client *Client) RegisterEntitySecret(ctx context.Context, entitySecret string, recoveryFile string) (result *api.RegistrationResponse, err error) {
	return client.restClient.RegisterEntitySecret(ctx, entitySecret, recoveryFile)
}

// CreateWalletSet creates a developer-controlled wallet set
func (client *Client) CreateWalletSet(ctx context.Context, name string) (walletSet *api.WalletSet, err error) {
	return client.restClient.CreateWalletSet(ctx, name)
}

// WalletSets lists the entity's wallet sets; options may be nil
func (client *Client) WalletSets(ctx context.Context, options *ListWalletSetsOptions) (walletSets []api.WalletSet, err error) {
	return client.restClient.WalletSets(ctx, options)
}

// WalletSet retrieves a single wallet set by id
func (client *Client) WalletSet(ctx context.Context, walletSetID string) (walletSet *api.WalletSet, err error) {
	return client.restClient.WalletSet(ctx, walletSetID)
}

// UpdateWalletSet renames a wallet set
func (client *Client) UpdateWalletSet(ctx context.Context, walletSetID string, name string) (walletSet *api.WalletSet, err error) {
	return client.restClient.UpdateWalletSet(ctx, walletSetID, name)
}

// CreateWallets provisions wallets on the requested blockchains
//
//	wallets, err := client.CreateWallets(ctx, circle.CreateWalletsRequest{
//		WalletSetID: walletSet.ID,
//		Blockchains: []string{circle.BlockchainPolygonAmoy},
//		Count:       2,
//	})
func (client *Client) CreateWallets(ctx context.Context, request CreateWalletsRequest) (wallets []api.Wallet, err error) {
	return client.restClient.CreateWallets(ctx, request)
}

// Wallets lists the entity's wallets; options may be nil
func (client *Client) Wallets(ctx context.Context, options *ListWalletsOptions) (wallets []api.Wallet, err error) {
	return client.restClient.Wallets(ctx, options)
}

// Wallet retrieves a single wallet by id
func (client *Client) Wallet(ctx context.Context, walletID string) (wallet *api.Wallet, err error) {
	return client.restClient.Wallet(ctx, walletID)
}

// UpdateWallet changes a wallet's name and reference id
func (client *Client) UpdateWallet(ctx context.Context, walletID string, name string, refID string) (wallet *api.Wallet, err error) {
	return client.restClient.UpdateWallet(ctx, walletID, name, refID)
}

// WalletBalances retrieves the token balances of a wallet; options may be nil
func (client *Client) WalletBalances(ctx context.Context, walletID string, options *ListBalancesOptions) (balances []api.Balance, err error) {
	return client.restClient.WalletBalances(ctx, walletID, options)
}

// WalletNFTs retrieves the NFTs held by a wallet; options may be nil
func (client *Client) WalletNFTs(ctx context.Context, walletID string, options *ListBalancesOptions) (nfts []api.NFT, err error) {
	return client.restClient.WalletNFTs(ctx, walletID, options)
}

// Transactions lists transactions across the entity's wallets; options may be nil
func (client *Client) Transactions(ctx context.Context, options *ListTransactionsOptions) (transactions []api.Transaction, err error) {
	return client.restClient.Transactions(ctx, options)
}

// Transaction gets info on a transaction.  The transaction may still be pending.
func (client *Client) Transaction(ctx context.Context, transactionID string) (transaction *api.Transaction, err error) {
	return client.restClient.Transaction(ctx, transactionID)
}

// CreateTransferTransaction submits an outbound transfer from a
// developer-controlled wallet.  See [CircleTransactionClient.CreateTransferTransaction].
func (client *Client) CreateTransferTransaction(ctx context.Context, request CreateTransferRequest) (response *api.SubmitTransactionResponse, err error) {
	return client.restClient.CreateTransferTransaction(ctx, request)
}

// EstimateTransferFee returns per-level fee estimates for a prospective transfer
func (client *Client) EstimateTransferFee(ctx context.Context, request EstimateTransferFeeRequest) (estimate *api.EstimateFeeResponse, err error) {
	return client.restClient.EstimateTransferFee(ctx, request)
}

// AccelerateTransaction resubmits a stuck transaction with a higher fee
func (client *Client) AccelerateTransaction(ctx context.Context, transactionID string) (response *api.SubmitTransactionResponse, err error) {
	return client.restClient.AccelerateTransaction(ctx, transactionID)
}

// CancelTransaction requests best-effort cancellation of a transaction
func (client *Client) CancelTransaction(ctx context.Context, transactionID string) (response *api.SubmitTransactionResponse, err error) {
	return client.restClient.CancelTransaction(ctx, transactionID)
}

// ValidateAddress asks the platform whether an address is valid for a blockchain
func (client *Client) ValidateAddress(ctx context.Context, blockchain string, address string) (isValid bool, err error) {
	return client.restClient.ValidateAddress(ctx, blockchain, address)
}

// Token retrieves a single token profile by id
func (client *Client) Token(ctx context.Context, tokenID string) (token *api.Token, err error) {
	return client.restClient.Token(ctx, tokenID)
}
