package pillar

import (
	"context"
	"fmt"
	"strings"
)

// Pillar is a recurring topical theme attached to a brand profile.
type Pillar struct {
	ID             string
	Name           string
	BrandProfileID string
}

func (p Pillar) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("pillar name is required")
	}
	if p.BrandProfileID == "" {
		return fmt.Errorf("brand profile id is required")
	}
	return nil
}

type Repository interface {
	ListByProfile(ctx context.Context, profileID string) ([]Pillar, error)
	Create(ctx context.Context, profileID, name string) (Pillar, error)
	Delete(ctx context.Context, pillarID string) error
}
