package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Wallet(t *testing.T) {
	testJson := `{
		"id": "01899cf2-d415-7052-a207-f9862157e546",
		"state": "LIVE",
		"walletSetId": "0189bc61-7fe4-70f3-8a1b-0d14426397cb",
		"custodyType": "DEVELOPER",
		"address": "0x7b3f1f4b2e7d8a9c0e5f6a1b2c3d4e5f6a7b8c9d",
		"blockchain": "MATIC-AMOY",
		"accountType": "EOA",
		"updateDate": "2023-08-03T17:10:52Z",
		"createDate": "2023-08-03T17:10:52Z"
	}`
	data := &Wallet{}
	err := json.Unmarshal([]byte(testJson), &data)
	assert.NoError(t, err)
	assert.Equal(t, "LIVE", data.State)
	assert.Equal(t, "MATIC-AMOY", data.Blockchain)
	assert.Equal(t, "EOA", data.AccountType)
}

func Test_BalancesResponse(t *testing.T) {
	testJson := `{
		"tokenBalances": [{
			"token": {
				"id": "36b6931a-873a-56a8-8a27-b706b17104ee",
				"blockchain": "MATIC-AMOY",
				"symbol": "USDC",
				"decimals": 6,
				"isNative": false
			},
			"amount": "10.5",
			"updateDate": "2023-08-03T17:33:04Z"
		}]
	}`
	data := &BalancesResponse{}
	err := json.Unmarshal([]byte(testJson), &data)
	assert.NoError(t, err)
	assert.Len(t, data.TokenBalances, 1)
	assert.Equal(t, "10.5", data.TokenBalances[0].Amount)
	assert.Equal(t, 6, data.TokenBalances[0].Token.Decimals)
}
