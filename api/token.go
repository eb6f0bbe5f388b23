package api

import "time"

// Token describes an on-chain asset known to the platform, native or issued
//
// Example:
//
//	{
//		"id": "36b6931a-873a-56a8-8a27-b706b17104ee",
//		"name": "USDC",
//		"standard": "ERC20",
//		"blockchain": "MATIC-AMOY",
//		"decimals": 6,
//		"isNative": false,
//		"symbol": "USDC",
//		"tokenAddress": "0x41e94eb019c0762f9bfcf9fb1e58725bfb0e7582",
//		"updateDate": "2023-06-29T02:37:14Z",
//		"createDate": "2023-06-29T02:37:14Z"
//	}
type Token struct {
	ID           string    `json:"id"`
	Name         string    `json:"name,omitempty"`
	Standard     string    `json:"standard,omitempty"` // e.g. ERC20, ERC721
	Blockchain   string    `json:"blockchain"`
	Decimals     int       `json:"decimals"`
	IsNative     bool      `json:"isNative"`
	Symbol       string    `json:"symbol,omitempty"`
	TokenAddress string    `json:"tokenAddress,omitempty"` // empty for native tokens
	UpdateDate   time.Time `json:"updateDate"`
	CreateDate   time.Time `json:"createDate"`
}

// TokenResponse is the payload carrying a single token
type TokenResponse struct {
	Token Token `json:"token"`
}
