package util

import (
	"encoding/hex"
	"strings"
)

// ParseHex parses a hex string into bytes.  It accepts an optional 0x prefix
// and both upper and lower case digits.
func ParseHex(hexStr string) ([]byte, error) {
	hexStr = strings.TrimPrefix(hexStr, "0x")
	return hex.DecodeString(hexStr)
}

// BytesToHex converts bytes to the canonical lowercase hex string without a 0x prefix.
func BytesToHex(bytes []byte) string {
	return hex.EncodeToString(bytes)
}
