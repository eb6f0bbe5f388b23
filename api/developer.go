package api

// PublicKeyResponse is the response to fetching the entity's RSA public key
//
// Example:
//
//	{
//		"publicKey": "-----BEGIN PUBLIC KEY-----\nMIIBIjANBg...\n-----END PUBLIC KEY-----"
//	}
type PublicKeyResponse struct {
	PublicKey string `json:"publicKey"` // PublicKey is the PEM-encoded RSA public key
}

// RegistrationResponse is the response to registering a new entity secret
//
// Example:
//
//	{
//		"status": "SUCCESS"
//	}
type RegistrationResponse struct {
	Status string `json:"status"`
}
