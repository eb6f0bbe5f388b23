package circle

import (
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"

	"github.com/Luckyisrael/CircleDeveloperControlledWalletSDK/internal/util"
)

// Blockchains supported by the platform.
const (
	BlockchainEthereum        = "ETH"
	BlockchainEthereumSepolia = "ETH-SEPOLIA"
	BlockchainPolygon         = "MATIC"
	BlockchainPolygonAmoy     = "MATIC-AMOY"
	BlockchainAvalanche       = "AVAX"
	BlockchainAvalancheFuji   = "AVAX-FUJI"
	BlockchainArbitrum        = "ARB"
	BlockchainArbitrumSepolia = "ARB-SEPOLIA"
	BlockchainSolana          = "SOL"
	BlockchainSolanaDevnet    = "SOL-DEVNET"
	BlockchainNear            = "NEAR"
	BlockchainNearTestnet     = "NEAR-TESTNET"
)

var evmBlockchains = map[string]bool{
	BlockchainEthereum:        true,
	BlockchainEthereumSepolia: true,
	BlockchainPolygon:         true,
	BlockchainPolygonAmoy:     true,
	BlockchainAvalanche:       true,
	BlockchainAvalancheFuji:   true,
	BlockchainArbitrum:        true,
	BlockchainArbitrumSepolia: true,
}

var base58Blockchains = map[string]bool{
	BlockchainSolana:       true,
	BlockchainSolanaDevnet: true,
}

// IsValidDestinationAddress is a client-side shape check on a destination
// address for the given blockchain: 20-byte 0x-hex for EVM chains, 32-byte
// base58 for Solana.  Chains with free-form account names (e.g. NEAR named
// accounts) only require a non-empty address.  The platform's
// ValidateAddress endpoint remains authoritative.
func IsValidDestinationAddress(blockchain string, address string) bool {
	switch {
	case evmBlockchains[blockchain]:
		if len(address) != 42 || !strings.HasPrefix(address, "0x") {
			return false
		}
		_, err := util.ParseHex(address)
		return err == nil
	case base58Blockchains[blockchain]:
		return len(base58.Decode(address)) == 32
	default:
		return address != ""
	}
}
