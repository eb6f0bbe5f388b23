package circle

import "errors"

// Argument errors are raised synchronously, before any network or
// cryptographic work, and are never retried.
var (
	// ErrMissingAPIKey indicates the client was constructed without an API key.
	ErrMissingAPIKey = errors.New("an API key is required")

	// ErrNoEntitySecret indicates a privileged call was attempted on a client
	// that was not given an entity secret.
	ErrNoEntitySecret = errors.New("client has no entity secret configured")

	// ErrInvalidRequest indicates a request struct failed field validation.
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrInvalidRecoveryPath indicates the recovery file's parent directory does not exist.
	ErrInvalidRecoveryPath = errors.New("recovery file directory does not exist")

	// ErrInvalidDestinationAddress indicates the destination address is malformed
	// for the target blockchain.
	ErrInvalidDestinationAddress = errors.New("destination address is malformed for the target blockchain")

	// ErrAmbiguousToken indicates a transfer named the token both by id and by
	// blockchain address.
	ErrAmbiguousToken = errors.New("specify either tokenId or blockchain with an optional tokenAddress, not both")

	// ErrMissingToken indicates a transfer did not identify the token to move.
	ErrMissingToken = errors.New("a tokenId or blockchain is required")
)
