package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/content-brain/internal/domain/post"
	"github.com/riskibarqy/content-brain/internal/usecase"
)

// PostRepository is the offline calendar store. Generating a calendar
// replaces the profile's posts with the mock 30 day plan.
type PostRepository struct {
	mu        sync.RWMutex
	byProfile map[string][]post.Post
	now       func() time.Time
}

func NewPostRepository(seed []post.Post) *PostRepository {
	r := &PostRepository{
		byProfile: make(map[string][]post.Post),
		now:       time.Now,
	}
	for _, p := range seed {
		r.byProfile[p.BrandProfileID] = append(r.byProfile[p.BrandProfileID], clonePost(p))
	}
	return r
}

func (r *PostRepository) ListByProfile(_ context.Context, profileID string) ([]post.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return clonePosts(r.byProfile[profileID]), nil
}

func (r *PostRepository) Update(_ context.Context, postID string, update post.Update) (post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profileID, idx, ok := r.find(postID)
	if !ok {
		return post.Post{}, fmt.Errorf("%w: post %s", usecase.ErrNotFound, postID)
	}
	updated := r.byProfile[profileID][idx].Apply(update)
	updated.UpdatedAt = r.now().UTC()
	r.byProfile[profileID][idx] = updated
	return clonePost(updated), nil
}

func (r *PostRepository) Delete(_ context.Context, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	profileID, idx, ok := r.find(postID)
	if !ok {
		return fmt.Errorf("%w: post %s", usecase.ErrNotFound, postID)
	}
	r.byProfile[profileID] = slices.Delete(r.byProfile[profileID], idx, idx+1)
	return nil
}

// Regenerate swaps in the next mock hook and, when given, a new pillar.
func (r *PostRepository) Regenerate(_ context.Context, postID, pillar string) (post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profileID, idx, ok := r.find(postID)
	if !ok {
		return post.Post{}, fmt.Errorf("%w: post %s", usecase.ErrNotFound, postID)
	}
	current := r.byProfile[profileID][idx]
	next := 0
	if i := slices.Index(seedHooks, current.Hook); i >= 0 {
		next = (i + 1) % len(seedHooks)
	}
	current.Hook = seedHooks[next]
	if strings.TrimSpace(pillar) != "" {
		current.Pillar = strings.TrimSpace(pillar)
	}
	current.Status = post.StatusDraft
	current.UpdatedAt = r.now().UTC()
	r.byProfile[profileID][idx] = current
	return clonePost(current), nil
}

// GenerateCalendar keeps an existing calendar unless regenerate is set.
func (r *PostRepository) GenerateCalendar(_ context.Context, profileID string, regenerate bool) ([]post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing := r.byProfile[profileID]; len(existing) > 0 && !regenerate {
		return clonePosts(existing), nil
	}
	posts := SeedPosts(profileID, r.now())
	if profileID != SeedProfileID {
		for i := range posts {
			posts[i].ID = profileID + "-" + posts[i].ID
		}
	}
	r.byProfile[profileID] = posts
	return clonePosts(posts), nil
}

func (r *PostRepository) find(postID string) (string, int, bool) {
	for profileID, posts := range r.byProfile {
		for i, p := range posts {
			if p.ID == postID {
				return profileID, i, true
			}
		}
	}
	return "", 0, false
}

func clonePost(p post.Post) post.Post {
	copied := p
	copied.Hashtags = slices.Clone(p.Hashtags)
	return copied
}

func clonePosts(in []post.Post) []post.Post {
	out := make([]post.Post, 0, len(in))
	for _, p := range in {
		out = append(out, clonePost(p))
	}
	return out
}
