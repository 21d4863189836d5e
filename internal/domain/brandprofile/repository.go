package brandprofile

import "context"

// Repository describes brand profile persistence needs from use cases.
type Repository interface {
	ListMine(ctx context.Context) ([]BrandProfile, error)
	GetByID(ctx context.Context, profileID string) (BrandProfile, error)
	Create(ctx context.Context, draft Draft) (BrandProfile, error)
	Update(ctx context.Context, profileID string, draft Draft) (BrandProfile, error)
	Delete(ctx context.Context, profileID string) error
}
