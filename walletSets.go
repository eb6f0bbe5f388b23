package circle

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/Luckyisrael/CircleDeveloperControlledWalletSDK/api"
)

type createWalletSetRequest struct {
	Name                   string `json:"name,omitempty"`
	EntitySecretCiphertext string `json:"entitySecretCiphertext" validate:"required"`
	IdempotencyKey         string `json:"idempotencyKey" validate:"required,uuid4"`
}

type updateWalletSetRequest struct {
	Name                   string `json:"name" validate:"required"`
	EntitySecretCiphertext string `json:"entitySecretCiphertext" validate:"required"`
}

// ListWalletSetsOptions are the optional filters for [Client.WalletSets].
// The zero value lists everything with the platform's default page size.
type ListWalletSetsOptions struct {
	From       time.Time // From restricts results to wallet sets created at or after this time
	To         time.Time // To restricts results to wallet sets created at or before this time
	PageBefore string
	PageAfter  string
	PageSize   int
}

func (options *ListWalletSetsOptions) query() url.Values {
	query := url.Values{}
	if options == nil {
		return query
	}
	dateQuery(query, options.From, options.To)
	pageQuery(query, options.PageBefore, options.PageAfter, options.PageSize)
	return query
}

// CreateWalletSet creates a developer-controlled wallet set.  A fresh entity
// secret ciphertext is produced for this one call.
func (rc *restClient) CreateWalletSet(ctx context.Context, name string) (*api.WalletSet, error) {
	ciphertext, err := rc.EntitySecretCiphertext(ctx)
	if err != nil {
		return nil, err
	}
	request := &createWalletSetRequest{
		Name:                   name,
		EntitySecretCiphertext: ciphertext,
		IdempotencyKey:         uuid.NewString(),
	}
	response := &api.WalletSetResponse{}
	if err := rc.post(ctx, "developer/walletSets", request, response); err != nil {
		return nil, err
	}
	return &response.WalletSet, nil
}

// WalletSets lists the entity's wallet sets.
func (rc *restClient) WalletSets(ctx context.Context, options *ListWalletSetsOptions) ([]api.WalletSet, error) {
	response := &api.WalletSetsResponse{}
	if err := rc.get(ctx, "walletSets", options.query(), response); err != nil {
		return nil, err
	}
	return response.WalletSets, nil
}

// WalletSet retrieves a single wallet set by id.
func (rc *restClient) WalletSet(ctx context.Context, walletSetID string) (*api.WalletSet, error) {
	if walletSetID == "" {
		return nil, fmt.Errorf("%w: walletSetID is required", ErrInvalidRequest)
	}
	response := &api.WalletSetResponse{}
	if err := rc.get(ctx, "walletSets/"+walletSetID, nil, response); err != nil {
		return nil, err
	}
	return &response.WalletSet, nil
}

// UpdateWalletSet renames a wallet set.
func (rc *restClient) UpdateWalletSet(ctx context.Context, walletSetID string, name string) (*api.WalletSet, error) {
	if walletSetID == "" {
		return nil, fmt.Errorf("%w: walletSetID is required", ErrInvalidRequest)
	}
	ciphertext, err := rc.EntitySecretCiphertext(ctx)
	if err != nil {
		return nil, err
	}
	request := &updateWalletSetRequest{Name: name, EntitySecretCiphertext: ciphertext}
	response := &api.WalletSetResponse{}
	if err := rc.put(ctx, "developer/walletSets/"+walletSetID, request, response); err != nil {
		return nil, err
	}
	return &response.WalletSet, nil
}
