package circle

import (
	"context"
	"fmt"

	"github.com/Luckyisrael/CircleDeveloperControlledWalletSDK/api"
)

// Token retrieves a single token profile by id.
func (rc *restClient) Token(ctx context.Context, tokenID string) (*api.Token, error) {
	if tokenID == "" {
		return nil, fmt.Errorf("%w: tokenID is required", ErrInvalidRequest)
	}
	response := &api.TokenResponse{}
	if err := rc.get(ctx, "tokens/"+tokenID, nil, response); err != nil {
		return nil, err
	}
	return &response.Token, nil
}
