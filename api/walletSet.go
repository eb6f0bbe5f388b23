package api

import "time"

// WalletSet is a named collection of wallets sharing one custody arrangement
//
// Example:
//
//	{
//		"id": "0189bc61-7fe4-70f3-8a1b-0d14426397cb",
//		"custodyType": "DEVELOPER",
//		"name": "treasury",
//		"updateDate": "2023-08-03T17:10:51Z",
//		"createDate": "2023-08-03T17:10:51Z"
//	}
type WalletSet struct {
	ID          string    `json:"id"`
	CustodyType string    `json:"custodyType"`
	Name        string    `json:"name,omitempty"`
	UpdateDate  time.Time `json:"updateDate"`
	CreateDate  time.Time `json:"createDate"`
}

// WalletSetResponse is the payload carrying a single wallet set
type WalletSetResponse struct {
	WalletSet WalletSet `json:"walletSet"`
}

// WalletSetsResponse is the payload carrying a page of wallet sets
type WalletSetsResponse struct {
	WalletSets []WalletSet `json:"walletSets"`
}
