package api

import "time"

// Transaction states reported by the platform.
const (
	TransactionStateInitiated   = "INITIATED"
	TransactionStateQueued      = "QUEUED"
	TransactionStateSent        = "SENT"
	TransactionStateConfirmed   = "CONFIRMED"
	TransactionStateComplete    = "COMPLETE"
	TransactionStateFailed      = "FAILED"
	TransactionStateCancelled   = "CANCELLED"
	TransactionStateDenied      = "DENIED"
	TransactionStateAccelerated = "ACCELERATED"
)

// Transaction operations.
const (
	TransactionOperationTransfer           = "TRANSFER"
	TransactionOperationContractExecution  = "CONTRACT_EXECUTION"
	TransactionOperationContractDeployment = "CONTRACT_DEPLOYMENT"
)

// Transaction is one on-chain operation initiated through, or observed by, the platform
//
// Example:
//
//	{
//		"id": "1af639ce-c8b2-54a6-af49-7aebc95aaac1",
//		"blockchain": "MATIC-AMOY",
//		"walletId": "01899cf2-d415-7052-a207-f9862157e546",
//		"sourceAddress": "0x7b3f1f4b2e7d8a9c0e5f6a1b2c3d4e5f6a7b8c9d",
//		"destinationAddress": "0x6e5eAf34c73D1CD0be4e24f923b97CF38e10d1f3",
//		"transactionType": "OUTBOUND",
//		"custodyType": "DEVELOPER",
//		"state": "COMPLETE",
//		"amounts": ["0.01"],
//		"txHash": "0x535ff240984f54e755d67cdc9c79c88768fe5997955f09b3a20c2cb1bef11b33",
//		"operation": "TRANSFER",
//		"updateDate": "2023-07-28T16:04:51Z",
//		"createDate": "2023-07-28T16:03:14Z"
//	}
type Transaction struct {
	ID                 string     `json:"id"`
	AbortReason        string     `json:"abortReason,omitempty"`
	Amounts            []string   `json:"amounts,omitempty"`
	AmountInUSD        string     `json:"amountInUSD,omitempty"`
	BlockHash          string     `json:"blockHash,omitempty"`
	BlockHeight        int64      `json:"blockHeight,omitempty"`
	Blockchain         string     `json:"blockchain"`
	CustodyType        string     `json:"custodyType"`
	DestinationAddress string     `json:"destinationAddress,omitempty"`
	ErrorReason        string     `json:"errorReason,omitempty"`
	EstimatedFee       *Fee       `json:"estimatedFee,omitempty"`
	FeeLevel           string     `json:"feeLevel,omitempty"`
	FirstConfirmDate   *time.Time `json:"firstConfirmDate,omitempty"`
	NetworkFee         string     `json:"networkFee,omitempty"`
	NetworkFeeInUSD    string     `json:"networkFeeInUSD,omitempty"`
	NFTTokenIDs        []string   `json:"nftTokenIds,omitempty"`
	Operation          string     `json:"operation"`
	RefID              string     `json:"refId,omitempty"`
	SourceAddress      string     `json:"sourceAddress,omitempty"`
	State              string     `json:"state"`
	TokenID            string     `json:"tokenId,omitempty"`
	TransactionType    string     `json:"transactionType"` // INBOUND or OUTBOUND
	TxHash             string     `json:"txHash,omitempty"`
	WalletID           string     `json:"walletId"`
	UpdateDate         time.Time  `json:"updateDate"`
	CreateDate         time.Time  `json:"createDate"`
}

// Fee is a single network fee configuration or estimate.  All amounts are
// decimal strings denominated in the chain's native token, gas values in
// whole units.
type Fee struct {
	Type        string `json:"type,omitempty"` // level or unit
	GasLimit    string `json:"gasLimit,omitempty"`
	GasPrice    string `json:"gasPrice,omitempty"` // non-EIP-1559 chains only
	MaxFee      string `json:"maxFee,omitempty"`
	PriorityFee string `json:"priorityFee,omitempty"`
	BaseFee     string `json:"baseFee,omitempty"`
	NetworkFee  string `json:"networkFee,omitempty"`
}

// TransactionResponse is the payload carrying a single transaction
type TransactionResponse struct {
	Transaction Transaction `json:"transaction"`
}

// TransactionsResponse is the payload carrying a page of transactions
type TransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
}

// SubmitTransactionResponse is the payload returned when a transfer,
// accelerate, or cancel request is accepted
//
// Example:
//
//	{
//		"id": "1af639ce-c8b2-54a6-af49-7aebc95aaac1",
//		"state": "INITIATED"
//	}
type SubmitTransactionResponse struct {
	ID    string `json:"id"`
	State string `json:"state"`
}

// EstimateFeeResponse is the payload carrying fee estimates per level
type EstimateFeeResponse struct {
	High   Fee `json:"high"`
	Medium Fee `json:"medium"`
	Low    Fee `json:"low"`
}

// ValidateAddressResponse is the payload of the address validation endpoint
type ValidateAddressResponse struct {
	IsValid bool `json:"isValid"`
}
