package circle

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/Luckyisrael/CircleDeveloperControlledWalletSDK/api"
)

// Account types.
const (
	AccountTypeEOA = "EOA"
	AccountTypeSCA = "SCA"
)

// CreateWalletsRequest are the parameters for [Client.CreateWallets].
type CreateWalletsRequest struct {
	// WalletSetID is the wallet set the new wallets belong to.
	WalletSetID string `json:"walletSetId" validate:"required,uuid"`
	// Blockchains lists the chains to create a wallet on.
	Blockchains []string `json:"blockchains" validate:"required,min=1"`
	// AccountType is EOA or SCA.  Defaults to EOA on the platform side.
	AccountType string `json:"accountType,omitempty" validate:"omitempty,oneof=EOA SCA"`
	// Count is the number of wallets per blockchain, 1 if zero.
	Count int `json:"count,omitempty" validate:"omitempty,min=1,max=20"`
	// Metadata optionally names each created wallet, index-aligned with Count.
	Metadata []api.WalletMetadata `json:"metadata,omitempty"`
}

type createWalletsRequestBody struct {
	CreateWalletsRequest
	EntitySecretCiphertext string `json:"entitySecretCiphertext" validate:"required"`
	IdempotencyKey         string `json:"idempotencyKey" validate:"required,uuid4"`
}

type updateWalletRequest struct {
	Name  string `json:"name,omitempty"`
	RefID string `json:"refId,omitempty"`
}

// ListWalletsOptions are the optional filters for [Client.Wallets].
type ListWalletsOptions struct {
	Address     string // Address filters by the wallet's on-chain address
	Blockchain  string // Blockchain filters by chain identifier, e.g. MATIC-AMOY
	WalletSetID string
	RefID       string
	From        time.Time
	To          time.Time
	PageBefore  string
	PageAfter   string
	PageSize    int
}

func (options *ListWalletsOptions) query() url.Values {
	query := url.Values{}
	if options == nil {
		return query
	}
	if options.Address != "" {
		query.Set("address", options.Address)
	}
	if options.Blockchain != "" {
		query.Set("blockchain", options.Blockchain)
	}
	if options.WalletSetID != "" {
		query.Set("walletSetId", options.WalletSetID)
	}
	if options.RefID != "" {
		query.Set("refId", options.RefID)
	}
	dateQuery(query, options.From, options.To)
	pageQuery(query, options.PageBefore, options.PageAfter, options.PageSize)
	return query
}

// ListBalancesOptions are the optional filters for [Client.WalletBalances]
// and [Client.WalletNFTs].
type ListBalancesOptions struct {
	IncludeAll   bool   // IncludeAll includes tokens without a verified metadata profile
	Name         string // Name filters by token name
	TokenAddress string // TokenAddress filters by token contract address
	Standard     string // Standard filters by token standard, e.g. ERC20
	PageBefore   string
	PageAfter    string
	PageSize     int
}

func (options *ListBalancesOptions) query() url.Values {
	query := url.Values{}
	if options == nil {
		return query
	}
	if options.IncludeAll {
		query.Set("includeAll", "true")
	}
	if options.Name != "" {
		query.Set("name", options.Name)
	}
	if options.TokenAddress != "" {
		query.Set("tokenAddress", options.TokenAddress)
	}
	if options.Standard != "" {
		query.Set("standard", options.Standard)
	}
	pageQuery(query, options.PageBefore, options.PageAfter, options.PageSize)
	return query
}

// CreateWallets provisions wallets on the requested blockchains inside a
// wallet set.  A fresh entity secret ciphertext is produced for this call.
func (rc *restClient) CreateWallets(ctx context.Context, request CreateWalletsRequest) ([]api.Wallet, error) {
	if err := validate.Struct(&request); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, err)
	}
	ciphertext, err := rc.EntitySecretCiphertext(ctx)
	if err != nil {
		return nil, err
	}
	body := &createWalletsRequestBody{
		CreateWalletsRequest:   request,
		EntitySecretCiphertext: ciphertext,
		IdempotencyKey:         uuid.NewString(),
	}
	response := &api.WalletsResponse{}
	if err := rc.post(ctx, "developer/wallets", body, response); err != nil {
		return nil, err
	}
	return response.Wallets, nil
}

// Wallets lists the entity's wallets.
func (rc *restClient) Wallets(ctx context.Context, options *ListWalletsOptions) ([]api.Wallet, error) {
	response := &api.WalletsResponse{}
	if err := rc.get(ctx, "wallets", options.query(), response); err != nil {
		return nil, err
	}
	return response.Wallets, nil
}

// Wallet retrieves a single wallet by id.
func (rc *restClient) Wallet(ctx context.Context, walletID string) (*api.Wallet, error) {
	if walletID == "" {
		return nil, fmt.Errorf("%w: walletID is required", ErrInvalidRequest)
	}
	response := &api.WalletResponse{}
	if err := rc.get(ctx, "wallets/"+walletID, nil, response); err != nil {
		return nil, err
	}
	return &response.Wallet, nil
}

// UpdateWallet changes a wallet's name and reference id.
func (rc *restClient) UpdateWallet(ctx context.Context, walletID string, name string, refID string) (*api.Wallet, error) {
	if walletID == "" {
		return nil, fmt.Errorf("%w: walletID is required", ErrInvalidRequest)
	}
	request := &updateWalletRequest{Name: name, RefID: refID}
	response := &api.WalletResponse{}
	if err := rc.put(ctx, "wallets/"+walletID, request, response); err != nil {
		return nil, err
	}
	return &response.Wallet, nil
}

// WalletBalances retrieves the token balances of a wallet.
func (rc *restClient) WalletBalances(ctx context.Context, walletID string, options *ListBalancesOptions) ([]api.Balance, error) {
	if walletID == "" {
		return nil, fmt.Errorf("%w: walletID is required", ErrInvalidRequest)
	}
	response := &api.BalancesResponse{}
	if err := rc.get(ctx, "wallets/"+walletID+"/balances", options.query(), response); err != nil {
		return nil, err
	}
	return response.TokenBalances, nil
}

// WalletNFTs retrieves the NFTs held by a wallet.
func (rc *restClient) WalletNFTs(ctx context.Context, walletID string, options *ListBalancesOptions) ([]api.NFT, error) {
	if walletID == "" {
		return nil, fmt.Errorf("%w: walletID is required", ErrInvalidRequest)
	}
	response := &api.NFTsResponse{}
	if err := rc.get(ctx, "wallets/"+walletID+"/nfts", options.query(), response); err != nil {
		return nil, err
	}
	return response.NFTs, nil
}
