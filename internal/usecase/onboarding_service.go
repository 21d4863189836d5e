package usecase

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/content-brain/internal/domain/brandprofile"
	"github.com/riskibarqy/content-brain/internal/domain/onboarding"
	"github.com/riskibarqy/content-brain/internal/platform/cache"
	"github.com/riskibarqy/content-brain/internal/platform/id"
	"github.com/riskibarqy/content-brain/internal/platform/logging"
)

type OnboardingService struct {
	profiles brandprofile.Repository
	ids      id.Generator
	notifier Notifier
	store    *cache.Store
	logger   *logging.Logger
}

func NewOnboardingService(profiles brandprofile.Repository, ids id.Generator, notifier Notifier, store *cache.Store, logger *logging.Logger) *OnboardingService {
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	return &OnboardingService{
		profiles: profiles,
		ids:      ids,
		notifier: notifierOrNop(notifier),
		store:    store,
		logger:   logging.OrDefault(logger).With("component", "onboarding"),
	}
}

// Start opens a wizard on step 1 with the default answers.
func (s *OnboardingService) Start() *Wizard {
	return &Wizard{svc: s, state: onboarding.NewState()}
}

// Wizard owns the single onboarding state value of one flow.
type Wizard struct {
	svc *OnboardingService

	mu         sync.Mutex
	state      onboarding.State
	submitting bool
}

type SubmitResult struct {
	Profile  *brandprofile.BrandProfile
	Redirect string
}

// State returns a copy that callers may read freely.
func (w *Wizard) State() onboarding.State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.Clone()
}

// Update applies a step's partial update. The cursor is not part of any
// step's fields and is restored afterwards. A failing fn leaves the state untouched.
func (w *Wizard) Update(fn func(*onboarding.State) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	next := w.state.Clone()
	if err := fn(&next); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	next.Step = w.state.Step
	w.state = next
	return nil
}

func (w *Wizard) CanAdvance() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.CanAdvance()
}

func (w *Wizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.state.Next(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

func (w *Wizard) Back() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.Back()
}

func (w *Wizard) JumpTo(step int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.state.JumpTo(step); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

// Preview is the payload Submit would send, without sending it.
func (w *Wizard) Preview() (brandprofile.Draft, error) {
	state := w.State()
	return onboarding.BuildDraft(state, w.svc.ids)
}

// Submit creates the brand profile from the review step. Redirect is set to
// the dashboard whether or not the create call succeeded.
func (w *Wizard) Submit(ctx context.Context) (SubmitResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.Wizard.Submit")
	defer span.End()

	w.mu.Lock()
	if w.submitting {
		w.mu.Unlock()
		return SubmitResult{}, ErrBusy
	}
	if w.state.Step != onboarding.StepReview {
		step := w.state.Step
		w.mu.Unlock()
		return SubmitResult{}, fmt.Errorf("%w: submit is only available on the review step, current step %d", ErrInvalidInput, step)
	}
	w.submitting = true
	state := w.state.Clone()
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.submitting = false
		w.mu.Unlock()
	}()

	result := SubmitResult{Redirect: RouteDashboard}
	profile, err := w.svc.create(ctx, state)
	if err != nil {
		recordSpanError(span, err)
		w.svc.logger.WarnContext(ctx, "create brand profile failed", "error", err)
		w.svc.notifier.Notify(ctx, failureToast("Profile not saved", MessageOr(err, "Failed to create profile")))
		return result, err
	}

	span.SetAttributes(attribute.String("brand_profile.id", profile.ID))
	result.Profile = &profile
	w.svc.notifier.Notify(ctx, toast("Profile Created!", "Your content brain is ready. Let's generate your calendar!"))
	return result, nil
}

func (s *OnboardingService) create(ctx context.Context, state onboarding.State) (brandprofile.BrandProfile, error) {
	draft, err := onboarding.BuildDraft(state, s.ids)
	if err != nil {
		return brandprofile.BrandProfile{}, fmt.Errorf("build profile payload: %w", err)
	}
	if err := brandprofile.ValidateDraft(draft); err != nil {
		return brandprofile.BrandProfile{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	profile, err := s.profiles.Create(ctx, draft)
	if err != nil {
		return brandprofile.BrandProfile{}, fmt.Errorf("create brand profile: %w", err)
	}
	if s.store != nil {
		s.store.Invalidate(ctx, profileListKey())
	}

	s.logger.InfoContext(ctx, "brand profile created", "brand_profile_id", profile.ID, "pillars", len(draft.ContentPillars))
	return profile, nil
}
