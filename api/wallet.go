package api

import "time"

// Wallet is a blockchain account held by the platform on the entity's behalf
//
// Example:
//
//	{
//		"id": "01899cf2-d415-7052-a207-f9862157e546",
//		"state": "LIVE",
//		"walletSetId": "0189bc61-7fe4-70f3-8a1b-0d14426397cb",
//		"custodyType": "DEVELOPER",
//		"address": "0x7b3f1f4b2e7d8a9c0e5f6a1b2c3d4e5f6a7b8c9d",
//		"blockchain": "MATIC-AMOY",
//		"accountType": "EOA",
//		"updateDate": "2023-08-03T17:10:52Z",
//		"createDate": "2023-08-03T17:10:52Z"
//	}
type Wallet struct {
	ID          string    `json:"id"`
	State       string    `json:"state"` // LIVE or FROZEN
	WalletSetID string    `json:"walletSetId"`
	CustodyType string    `json:"custodyType"`
	RefID       string    `json:"refId,omitempty"`
	Name        string    `json:"name,omitempty"`
	Address     string    `json:"address"`
	Blockchain  string    `json:"blockchain"`
	AccountType string    `json:"accountType"` // EOA or SCA
	ScaCore     string    `json:"scaCore,omitempty"`
	UpdateDate  time.Time `json:"updateDate"`
	CreateDate  time.Time `json:"createDate"`
}

// WalletMetadata is the optional per-wallet name and reference supplied at creation
type WalletMetadata struct {
	Name  string `json:"name,omitempty"`
	RefID string `json:"refId,omitempty"`
}

// Balance is the amount of a single token held by a wallet
//
// Example:
//
//	{
//		"token": {
//			"id": "36b6931a-873a-56a8-8a27-b706b17104ee",
//			"blockchain": "MATIC-AMOY",
//			"symbol": "USDC",
//			"decimals": 6,
//			"isNative": false
//		},
//		"amount": "10.5",
//		"updateDate": "2023-08-03T17:33:04Z"
//	}
type Balance struct {
	Token      Token     `json:"token"`
	Amount     string    `json:"amount"`
	UpdateDate time.Time `json:"updateDate"`
}

// NFT is a single non-fungible token held by a wallet
type NFT struct {
	Token      Token     `json:"token"`
	Amount     string    `json:"amount"`
	NFTTokenID string    `json:"nftTokenId"`
	Metadata   string    `json:"metadata,omitempty"`
	UpdateDate time.Time `json:"updateDate"`
}

// WalletResponse is the payload carrying a single wallet
type WalletResponse struct {
	Wallet Wallet `json:"wallet"`
}

// WalletsResponse is the payload carrying a page of wallets
type WalletsResponse struct {
	Wallets []Wallet `json:"wallets"`
}

// BalancesResponse is the payload carrying a wallet's token balances
type BalancesResponse struct {
	TokenBalances []Balance `json:"tokenBalances"`
}

// NFTsResponse is the payload carrying a wallet's NFT holdings
type NFTsResponse struct {
	NFTs []NFT `json:"nfts"`
}
