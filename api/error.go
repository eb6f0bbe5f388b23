package api

// ErrorResponse is the platform's error envelope on any non-2xx response
//
// Example:
//
//	{
//		"code": 155104,
//		"message": "Invalid entity secret ciphertext"
//	}
type ErrorResponse struct {
	Code    int    `json:"code"`    // Code is the platform-specific error code
	Message string `json:"message"` // Message is the human-readable description
}
