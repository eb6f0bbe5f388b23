package circle

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Luckyisrael/CircleDeveloperControlledWalletSDK/api"
)

// HttpError is returned for any non-2xx response from the platform.  It
// carries the HTTP status, the platform's error envelope when one could be
// parsed, and the raw body for diagnosis.
//
//	_, err := client.Wallet(ctx, walletID)
//	if err != nil {
//		var httpErr *circle.HttpError
//		if errors.As(err, &httpErr) && httpErr.StatusCode == 404 {
//			// wallet does not exist
//		}
//	}
type HttpError struct {
	StatusCode int    // StatusCode is the HTTP status code
	Status     string // Status is the HTTP status line
	Code       int    // Code is the platform error code, 0 if none was parseable
	Message    string // Message is the platform error message, or "Unknown error"
	RequestID  string // RequestID is the X-Request-Id header of the response, if any
	Body       []byte // Body is the raw response body
}

func (err *HttpError) Error() string {
	if err.Code != 0 {
		return fmt.Sprintf("%s (code %d): %s", err.Status, err.Code, err.Message)
	}
	return fmt.Sprintf("%s: %s", err.Status, err.Message)
}

func newHttpError(response *http.Response, body []byte) *HttpError {
	httpErr := &HttpError{
		StatusCode: response.StatusCode,
		Status:     response.Status,
		Message:    "Unknown error",
		RequestID:  response.Header.Get("X-Request-Id"),
		Body:       body,
	}
	envelope := api.ErrorResponse{}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		httpErr.Code = envelope.Code
		httpErr.Message = envelope.Message
	}
	return httpErr
}
