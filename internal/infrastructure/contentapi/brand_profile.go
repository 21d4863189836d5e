package contentapi

import (
	"context"
	"net/http"

	"github.com/riskibarqy/content-brain/internal/domain/brandprofile"
)

type BrandProfileRepository struct {
	client *Client
}

func NewBrandProfileRepository(client *Client) *BrandProfileRepository {
	return &BrandProfileRepository{client: client}
}

type profilesResponse struct {
	Profiles []brandProfileDTO `json:"profiles"`
}

type profileResponse struct {
	Profile brandProfileDTO `json:"profile"`
}

func (r *BrandProfileRepository) ListMine(ctx context.Context) ([]brandprofile.BrandProfile, error) {
	var resp profilesResponse
	if err := r.client.do(ctx, http.MethodGet, "/brand-profile/my", nil, &resp); err != nil {
		return nil, err
	}
	out := make([]brandprofile.BrandProfile, 0, len(resp.Profiles))
	for _, item := range resp.Profiles {
		out = append(out, item.toDomain())
	}
	return out, nil
}

func (r *BrandProfileRepository) GetByID(ctx context.Context, profileID string) (brandprofile.BrandProfile, error) {
	var resp profileResponse
	if err := r.client.do(ctx, http.MethodGet, "/brand-profile/"+escape(profileID), nil, &resp); err != nil {
		return brandprofile.BrandProfile{}, err
	}
	return resp.Profile.toDomain(), nil
}

func (r *BrandProfileRepository) Create(ctx context.Context, draft brandprofile.Draft) (brandprofile.BrandProfile, error) {
	var resp profileResponse
	if err := r.client.do(ctx, http.MethodPost, "/brand-profile", draftToDTO(draft), &resp); err != nil {
		return brandprofile.BrandProfile{}, err
	}
	return resp.Profile.toDomain(), nil
}

func (r *BrandProfileRepository) Update(ctx context.Context, profileID string, draft brandprofile.Draft) (brandprofile.BrandProfile, error) {
	var resp profileResponse
	if err := r.client.do(ctx, http.MethodPut, "/brand-profile/"+escape(profileID), draftToDTO(draft), &resp); err != nil {
		return brandprofile.BrandProfile{}, err
	}
	saved := resp.Profile.toDomain()
	if saved.ID == "" {
		saved.ID = profileID
	}
	return saved, nil
}

func (r *BrandProfileRepository) Delete(ctx context.Context, profileID string) error {
	return r.client.do(ctx, http.MethodDelete, "/brand-profile/"+escape(profileID), nil, &messageResponse{})
}
