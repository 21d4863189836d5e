package contentapi

import (
	"context"
	"net/http"

	"github.com/riskibarqy/content-brain/internal/domain/pillar"
	"github.com/riskibarqy/content-brain/internal/usecase"
)

type PillarRepository struct {
	client *Client
}

func NewPillarRepository(client *Client) *PillarRepository {
	return &PillarRepository{client: client}
}

type createPillarRequest struct {
	PillarName     string `json:"pillar_name"`
	BrandProfileID int64  `json:"brand_profile_id"`
}

type pillarsResponse struct {
	Pillars []pillarDTO `json:"pillars"`
}

type pillarResponse struct {
	Pillar pillarDTO `json:"pillar"`
}

func (r *PillarRepository) ListByProfile(ctx context.Context, profileID string) ([]pillar.Pillar, error) {
	var resp pillarsResponse
	if err := r.client.do(ctx, http.MethodGet, "/content-pillar/profile/"+escape(profileID), nil, &resp); err != nil {
		return nil, err
	}
	out := make([]pillar.Pillar, 0, len(resp.Pillars))
	for _, item := range resp.Pillars {
		out = append(out, item.toDomain())
	}
	return out, nil
}

func (r *PillarRepository) Create(ctx context.Context, profileID, name string) (pillar.Pillar, error) {
	numeric, err := numericID(profileID)
	if err != nil {
		return pillar.Pillar{}, &usecase.RequestError{Status: http.StatusBadRequest, Err: err}
	}

	var resp pillarResponse
	if err := r.client.do(ctx, http.MethodPost, "/content-pillar", createPillarRequest{PillarName: name, BrandProfileID: numeric}, &resp); err != nil {
		return pillar.Pillar{}, err
	}
	created := resp.Pillar.toDomain()
	if created.BrandProfileID == "" {
		created.BrandProfileID = profileID
	}
	return created, nil
}

func (r *PillarRepository) Delete(ctx context.Context, pillarID string) error {
	return r.client.do(ctx, http.MethodDelete, "/content-pillar/"+escape(pillarID), nil, &messageResponse{})
}
