package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/iter"

	"github.com/riskibarqy/content-brain/internal/domain/brandprofile"
	"github.com/riskibarqy/content-brain/internal/domain/post"
	"github.com/riskibarqy/content-brain/internal/platform/cache"
	"github.com/riskibarqy/content-brain/internal/platform/logging"
)

// MockFallback holds the local data served when the API is unreachable.
// A nil *MockFallback disables the fallback.
type MockFallback struct {
	Profiles brandprofile.Repository
	Posts    post.Repository
}

// ProfileCard is one dashboard entry.
type ProfileCard struct {
	Profile     brandprofile.BrandProfile
	HasCalendar bool
	PostCount   int
}

type Dashboard struct {
	Cards   []ProfileCard
	Offline bool
}

type GenerateResult struct {
	Posts    []post.Post
	Redirect string
	Offline  bool
}

type DashboardService struct {
	profiles brandprofile.Repository
	posts    post.Repository
	fallback *MockFallback
	notifier Notifier
	store    *cache.Store
	logger   *logging.Logger
}

func NewDashboardService(
	profiles brandprofile.Repository,
	posts post.Repository,
	fallback *MockFallback,
	notifier Notifier,
	store *cache.Store,
	logger *logging.Logger,
) *DashboardService {
	if store == nil {
		store = cache.NewDisabled()
	}
	return &DashboardService{
		profiles: profiles,
		posts:    posts,
		fallback: fallback,
		notifier: notifierOrNop(notifier),
		store:    store,
		logger:   logging.OrDefault(logger).With("component", "dashboard"),
	}
}

// ListProfiles loads the user's profiles and, concurrently, whether each already
// has a generated calendar. An unreachable API falls back to mock profiles silently.
func (s *DashboardService) ListProfiles(ctx context.Context) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.ListProfiles")
	defer span.End()

	profiles, err := cache.Load(ctx, s.store, profileListKey(), s.profiles.ListMine)
	offline := false
	if err != nil {
		if !IsUnreachable(err) || s.fallback == nil {
			recordSpanError(span, err)
			return Dashboard{}, fmt.Errorf("list brand profiles: %w", err)
		}
		s.logger.WarnContext(ctx, "profile listing unreachable, using mock data", "error", err)
		profiles, err = s.fallback.Profiles.ListMine(ctx)
		if err != nil {
			return Dashboard{}, fmt.Errorf("list mock brand profiles: %w", err)
		}
		offline = true
	}

	postsRepo := s.posts
	if offline {
		postsRepo = s.fallback.Posts
	}

	cards := iter.Map(profiles, func(p *brandprofile.BrandProfile) ProfileCard {
		card := ProfileCard{Profile: *p}
		posts, err := s.calendarPosts(ctx, postsRepo, p.ID, offline)
		if err != nil {
			s.logger.DebugContext(ctx, "calendar check failed", "brand_profile_id", p.ID, "error", err)
			return card
		}
		card.PostCount = len(posts)
		card.HasCalendar = len(posts) > 0
		return card
	})

	return Dashboard{Cards: cards, Offline: offline}, nil
}

func (s *DashboardService) calendarPosts(ctx context.Context, repo post.Repository, profileID string, offline bool) ([]post.Post, error) {
	if offline {
		return repo.ListByProfile(ctx, profileID)
	}
	return cache.Load(ctx, s.store, postListKey(profileID), func(ctx context.Context) ([]post.Post, error) {
		return repo.ListByProfile(ctx, profileID)
	})
}

// GenerateCalendar asks the backend for a fresh calendar. When the API is
// unreachable and the fallback is on, the mock calendar is used and the
// caller is still sent to the calendar view.
func (s *DashboardService) GenerateCalendar(ctx context.Context, profileID string, regenerate bool) (GenerateResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.GenerateCalendar")
	defer span.End()

	if profileID == "" {
		return GenerateResult{}, fmt.Errorf("%w: profile id is required", ErrInvalidInput)
	}

	posts, err := s.posts.GenerateCalendar(ctx, profileID, regenerate)
	if err != nil {
		recordSpanError(span, err)
		if !IsUnreachable(err) || s.fallback == nil {
			s.notifier.Notify(ctx, failureToast("Error", MessageOr(err, "Failed to generate calendar")))
			return GenerateResult{}, fmt.Errorf("generate calendar: %w", err)
		}

		s.logger.WarnContext(ctx, "calendar generation unreachable, using mock data", "brand_profile_id", profileID, "error", err)
		posts, err = s.fallback.Posts.GenerateCalendar(ctx, profileID, regenerate)
		if err != nil {
			return GenerateResult{}, fmt.Errorf("generate mock calendar: %w", err)
		}
		s.notifier.Notify(ctx, toast("Calendar Generated!", "Your 30-day content calendar is ready."))
		return GenerateResult{Posts: posts, Redirect: CalendarRoute(profileID), Offline: true}, nil
	}

	s.store.Invalidate(ctx, postListKey(profileID))
	s.logger.InfoContext(ctx, "calendar generated", "brand_profile_id", profileID, "posts", len(posts), "regenerate", regenerate)
	s.notifier.Notify(ctx, toast("Calendar Generated!", "Your 30-day content calendar is ready."))
	return GenerateResult{Posts: posts, Redirect: CalendarRoute(profileID)}, nil
}

func (s *DashboardService) DeleteProfile(ctx context.Context, profileID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.DeleteProfile")
	defer span.End()

	if err := deleteProfile(ctx, s.profiles, s.store, profileID); err != nil {
		recordSpanError(span, err)
		s.notifier.Notify(ctx, failureToast("Error", MessageOr(err, "Failed to delete profile")))
		return err
	}

	s.notifier.Notify(ctx, toast("Profile Deleted", "The brand profile has been removed."))
	return nil
}

// deleteProfile removes a profile and every cached query derived from it.
func deleteProfile(ctx context.Context, profiles brandprofile.Repository, store *cache.Store, profileID string) error {
	if profileID == "" {
		return fmt.Errorf("%w: profile id is required", ErrInvalidInput)
	}
	if err := profiles.Delete(ctx, profileID); err != nil {
		return fmt.Errorf("delete brand profile: %w", err)
	}
	store.Invalidate(ctx, profileListKey(), profileDetailKey(profileID), postListKey(profileID), pillarListKey(profileID))
	return nil
}
