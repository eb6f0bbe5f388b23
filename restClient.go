package circle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Luckyisrael/CircleDeveloperControlledWalletSDK/crypto"
)

const clientUserAgent = "circle-dcw-go-sdk/1.0"

// Request structs are checked against their validate tags before any bytes
// go on the wire, so malformed input never reaches the platform.
var validate = validator.New()

// restClient does the actual HTTP work behind [Client].  It holds no state
// between requests beyond configuration; concurrent use is safe.
type restClient struct {
	baseUrl      *url.URL
	client       *http.Client
	apiKey       string
	entitySecret *crypto.EntitySecret
	headers      map[string]string
}

func newRestClient(baseUrl string, apiKey string, client *http.Client) (*restClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	parsed, err := url.Parse(baseUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL %s: %w", baseUrl, err)
	}
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	return &restClient{
		baseUrl: parsed,
		client:  client,
		apiKey:  apiKey,
		headers: make(map[string]string),
	}, nil
}

// SetTimeout adjusts the HTTP client timeout
func (rc *restClient) SetTimeout(timeout time.Duration) {
	rc.client.Timeout = timeout
}

// SetHeader sets the header for all future requests
func (rc *restClient) SetHeader(key string, value string) {
	rc.headers[key] = value
}

// RemoveHeader removes the header from being automatically set all future requests.
func (rc *restClient) RemoveHeader(key string) {
	delete(rc.headers, key)
}

func (rc *restClient) get(ctx context.Context, path string, query url.Values, out any) error {
	return rc.do(ctx, http.MethodGet, path, query, nil, out)
}

func (rc *restClient) post(ctx context.Context, path string, body any, out any) error {
	return rc.do(ctx, http.MethodPost, path, nil, body, out)
}

func (rc *restClient) put(ctx context.Context, path string, body any, out any) error {
	return rc.do(ctx, http.MethodPut, path, nil, body, out)
}

// do runs one request/response cycle: validate and encode the body, send,
// surface non-2xx as [HttpError], and unwrap the { "data": ... } envelope
// into out.  There is no retry here; retry policy belongs to the caller.
func (rc *restClient) do(ctx context.Context, method string, path string, query url.Values, body any, out any) error {
	endpoint := rc.baseUrl.JoinPath(path)
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		if err := validate.Struct(body); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidRequest, err)
		}
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return err
	}
	request.Header.Set("Authorization", "Bearer "+rc.apiKey)
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", clientUserAgent)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	for key, value := range rc.headers {
		request.Header.Set(key, value)
	}

	response, err := rc.client.Do(request)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", path, err)
	}
	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return newHttpError(response, raw)
	}
	if out == nil {
		return nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("malformed response from %s: %w", path, err)
	}
	if envelope.Data == nil {
		return fmt.Errorf("malformed response from %s: missing data envelope", path)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("malformed response from %s: %w", path, err)
	}
	return nil
}

func pageQuery(query url.Values, pageBefore string, pageAfter string, pageSize int) {
	if pageBefore != "" {
		query.Set("pageBefore", pageBefore)
	}
	if pageAfter != "" {
		query.Set("pageAfter", pageAfter)
	}
	if pageSize > 0 {
		query.Set("pageSize", strconv.Itoa(pageSize))
	}
}

func dateQuery(query url.Values, from time.Time, to time.Time) {
	if !from.IsZero() {
		query.Set("from", from.UTC().Format(time.RFC3339))
	}
	if !to.IsZero() {
		query.Set("to", to.UTC().Format(time.RFC3339))
	}
}
