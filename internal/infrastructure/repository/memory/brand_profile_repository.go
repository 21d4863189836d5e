package memory

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/riskibarqy/content-brain/internal/domain/brandprofile"
	"github.com/riskibarqy/content-brain/internal/usecase"
)

// BrandProfileRepository is the offline brand profile store.
type BrandProfileRepository struct {
	mu     sync.RWMutex
	items  map[string]brandprofile.BrandProfile
	order  []string
	nextID int
	userID string
	now    func() time.Time
}

func NewBrandProfileRepository(seed []brandprofile.BrandProfile) *BrandProfileRepository {
	r := &BrandProfileRepository{
		items:  make(map[string]brandprofile.BrandProfile, len(seed)),
		nextID: 1,
		userID: SeedUserID,
		now:    time.Now,
	}
	for _, p := range seed {
		r.items[p.ID] = cloneProfile(p)
		r.order = append(r.order, p.ID)
		if n, err := strconv.Atoi(p.ID); err == nil && n >= r.nextID {
			r.nextID = n + 1
		}
	}
	return r
}

func (r *BrandProfileRepository) ListMine(_ context.Context) ([]brandprofile.BrandProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]brandprofile.BrandProfile, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneProfile(r.items[id]))
	}
	return out, nil
}

func (r *BrandProfileRepository) GetByID(_ context.Context, profileID string) (brandprofile.BrandProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[profileID]
	if !ok {
		return brandprofile.BrandProfile{}, fmt.Errorf("%w: brand profile %s", usecase.ErrNotFound, profileID)
	}
	return cloneProfile(p), nil
}

func (r *BrandProfileRepository) Create(_ context.Context, draft brandprofile.Draft) (brandprofile.BrandProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	p := brandprofile.BrandProfile{
		ID:        strconv.Itoa(r.nextID),
		UserID:    r.userID,
		Draft:     draft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.nextID++
	r.items[p.ID] = cloneProfile(p)
	r.order = append(r.order, p.ID)
	return cloneProfile(p), nil
}

func (r *BrandProfileRepository) Update(_ context.Context, profileID string, draft brandprofile.Draft) (brandprofile.BrandProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[profileID]
	if !ok {
		return brandprofile.BrandProfile{}, fmt.Errorf("%w: brand profile %s", usecase.ErrNotFound, profileID)
	}
	p.Draft = draft
	p.UpdatedAt = r.now().UTC()
	r.items[profileID] = cloneProfile(p)
	return cloneProfile(p), nil
}

func (r *BrandProfileRepository) Delete(_ context.Context, profileID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[profileID]; !ok {
		return fmt.Errorf("%w: brand profile %s", usecase.ErrNotFound, profileID)
	}
	delete(r.items, profileID)
	r.order = slices.DeleteFunc(r.order, func(id string) bool { return id == profileID })
	return nil
}

func cloneProfile(p brandprofile.BrandProfile) brandprofile.BrandProfile {
	copied := p
	copied.Roles = slices.Clone(p.Roles)
	copied.Goals = slices.Clone(p.Goals)
	copied.ContentPillars = slices.Clone(p.ContentPillars)
	copied.AdmiredCreators = slices.Clone(p.AdmiredCreators)
	copied.Beliefs = slices.Clone(p.Beliefs)
	copied.DontSoundLike = slices.Clone(p.DontSoundLike)
	copied.OffLimitTopics = slices.Clone(p.OffLimitTopics)
	copied.PastPosts = slices.Clone(p.PastPosts)
	return copied
}
