package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Transaction(t *testing.T) {
	testJson := `{
		"id": "1af639ce-c8b2-54a6-af49-7aebc95aaac1",
		"blockchain": "MATIC-AMOY",
		"walletId": "01899cf2-d415-7052-a207-f9862157e546",
		"transactionType": "OUTBOUND",
		"custodyType": "DEVELOPER",
		"state": "COMPLETE",
		"amounts": ["0.01"],
		"operation": "TRANSFER",
		"txHash": "0x535ff240984f54e755d67cdc9c79c88768fe5997955f09b3a20c2cb1bef11b33",
		"updateDate": "2023-07-28T16:04:51Z",
		"createDate": "2023-07-28T16:03:14Z"
	}`
	data := &Transaction{}
	err := json.Unmarshal([]byte(testJson), &data)
	assert.NoError(t, err)
	assert.Equal(t, TransactionStateComplete, data.State)
	assert.Equal(t, TransactionOperationTransfer, data.Operation)
	assert.Equal(t, []string{"0.01"}, data.Amounts)
	assert.Nil(t, data.FirstConfirmDate)
}

func Test_ErrorResponse(t *testing.T) {
	testJson := `{
		"code": 155104,
		"message": "Invalid entity secret ciphertext"
	}`
	data := &ErrorResponse{}
	err := json.Unmarshal([]byte(testJson), &data)
	assert.NoError(t, err)
	assert.Equal(t, 155104, data.Code)
	assert.Equal(t, "Invalid entity secret ciphertext", data.Message)
}
