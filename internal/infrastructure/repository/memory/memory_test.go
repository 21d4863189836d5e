package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/content-brain/internal/domain/brandprofile"
	"github.com/riskibarqy/content-brain/internal/domain/post"
	"github.com/riskibarqy/content-brain/internal/usecase"
)

var seedStart = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestSeedPosts(t *testing.T) {
	t.Parallel()

	posts := SeedPosts(SeedProfileID, seedStart)
	if len(posts) != SeedPostCount {
		t.Fatalf("expected %d posts, got %d", SeedPostCount, len(posts))
	}
	if got := post.CountByStatus(posts, post.StatusApproved); got != 5 {
		t.Fatalf("expected 5 approved posts, got %d", got)
	}
	if posts[0].Date != "2026-03-01" || posts[29].Date != "2026-03-30" {
		t.Fatalf("unexpected dates: %s .. %s", posts[0].Date, posts[29].Date)
	}
	if posts[4].Pillar != "Founder journey" || posts[5].Hook != "I almost quit yesterday." {
		t.Fatalf("unexpected rotation: pillar=%s hook=%s", posts[4].Pillar, posts[5].Hook)
	}
}

func TestBrandProfileRepository_CRUD(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewBrandProfileRepository(SeedProfiles(seedStart))

	created, err := repo.Create(ctx, brandprofile.Draft{Name: "Jane's Brand Profile", Goals: []string{"Build audience"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "2" || created.UserID != SeedUserID {
		t.Fatalf("unexpected created profile: %+v", created)
	}

	created.Goals[0] = "mutated"
	stored, err := repo.GetByID(ctx, "2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Goals[0] != "Build audience" {
		t.Fatalf("expected stored copy isolated from caller, got %v", stored.Goals)
	}

	if _, err := repo.Update(ctx, "2", brandprofile.Draft{Name: "Renamed"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := repo.Delete(ctx, "1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	list, err := repo.ListMine(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Renamed" {
		t.Fatalf("unexpected list: %+v", list)
	}

	if _, err := repo.GetByID(ctx, "1"); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPostRepository_GenerateKeepsExistingUnlessRegenerate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewPostRepository(SeedPosts(SeedProfileID, seedStart))

	body := "edited"
	if _, err := repo.Update(ctx, "3", post.Update{PostBody: &body}); err != nil {
		t.Fatalf("update: %v", err)
	}

	kept, err := repo.GenerateCalendar(ctx, SeedProfileID, false)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if kept[2].PostBody != "edited" {
		t.Fatalf("expected existing calendar kept")
	}

	fresh, err := repo.GenerateCalendar(ctx, SeedProfileID, true)
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if fresh[2].PostBody == "edited" {
		t.Fatalf("expected calendar replaced")
	}

	other, err := repo.GenerateCalendar(ctx, "7", false)
	if err != nil {
		t.Fatalf("generate other: %v", err)
	}
	if other[0].ID != "7-1" || other[0].BrandProfileID != "7" {
		t.Fatalf("unexpected post for other profile: %+v", other[0])
	}
}

func TestPostRepository_RegenerateAndDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewPostRepository(SeedPosts(SeedProfileID, seedStart))

	regenerated, err := repo.Regenerate(ctx, "1", "Industry takes")
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if regenerated.Hook != "Nobody tells you this about fundraising." || regenerated.Pillar != "Industry takes" {
		t.Fatalf("unexpected regenerated post: %+v", regenerated)
	}
	if regenerated.Status != post.StatusDraft {
		t.Fatalf("expected regenerated post back in draft, got %s", regenerated.Status)
	}

	if err := repo.Delete(ctx, "1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	posts, err := repo.ListByProfile(ctx, SeedProfileID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(posts) != SeedPostCount-1 {
		t.Fatalf("expected %d posts, got %d", SeedPostCount-1, len(posts))
	}
	if err := repo.Delete(ctx, "1"); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}
