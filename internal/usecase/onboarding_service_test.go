package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/content-brain/internal/domain/brandprofile"
	"github.com/riskibarqy/content-brain/internal/domain/onboarding"
	brandprofilemock "github.com/riskibarqy/content-brain/internal/mocks/domain/brandprofile"
	"github.com/riskibarqy/content-brain/internal/platform/cache"
	"github.com/riskibarqy/content-brain/internal/platform/id"
)

func completeWizard(t *testing.T, w *Wizard) {
	t.Helper()

	steps := []func(*onboarding.State) error{
		func(s *onboarding.State) error { s.Name = "Jane"; return nil },
		func(s *onboarding.State) error {
			s.ToggleRole("SaaS Founder")
			return s.SetRoleDetail("SaaS Founder", onboarding.RoleDetail{CompanyName: "Acme", Importance: brandprofile.ImportanceHigh})
		},
		func(s *onboarding.State) error { s.ToggleGoal("Build audience"); return nil },
		func(s *onboarding.State) error { return s.SetFrequency(8) },
		func(s *onboarding.State) error {
			s.TogglePillar("Founder journey")
			s.TogglePillar("Industry takes")
			return s.AddCustomPillar("  Hiring  ")
		},
		func(s *onboarding.State) error { return s.SetBelief(0, "Ship weekly") },
		func(s *onboarding.State) error { s.DontSoundLike = "Corporate, ,Salesy"; return nil },
	}
	for i, fn := range steps {
		if err := w.Update(fn); err != nil {
			t.Fatalf("update step %d: %v", i+1, err)
		}
		if err := w.Next(); err != nil {
			t.Fatalf("advance from step %d: %v", i+1, err)
		}
	}
	if got := w.State().Step; got != onboarding.StepReview {
		t.Fatalf("expected review step, got %d", got)
	}
}

func TestWizard_NextBlockedUntilStepComplete(t *testing.T) {
	t.Parallel()

	svc := NewOnboardingService(brandprofilemock.NewRepository(t), &id.Sequence{Prefix: "role"}, nil, nil, nil)
	w := svc.Start()

	if err := w.Next(); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected blocked step, got %v", err)
	}
	if err := w.Update(func(s *onboarding.State) error { s.Name = "J"; return nil }); err != nil {
		t.Fatalf("update: %v", err)
	}
	if w.CanAdvance() {
		t.Fatalf("one character name must not advance")
	}
	if err := w.Update(func(s *onboarding.State) error { s.Name = "Jo"; s.Step = 6; return nil }); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := w.State().Step; got != onboarding.StepPersonalInfo {
		t.Fatalf("update must not move the cursor, got step %d", got)
	}
	if err := w.Next(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if !w.Back() || w.State().Step != onboarding.StepPersonalInfo {
		t.Fatalf("expected back to step 1")
	}
	if w.Back() {
		t.Fatalf("back on step 1 must be a no-op")
	}
}

func TestWizard_UpdateFailureLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	svc := NewOnboardingService(brandprofilemock.NewRepository(t), nil, nil, nil, nil)
	w := svc.Start()

	err := w.Update(func(s *onboarding.State) error {
		s.Name = "changed"
		return s.SetFrequency(7)
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if w.State().Name != "" {
		t.Fatalf("failed update leaked into state")
	}
}

func TestWizard_SubmitCreatesProfile(t *testing.T) {
	t.Parallel()

	profiles := brandprofilemock.NewRepository(t)
	profiles.
		On("Create", mock.Anything, mock.MatchedBy(func(d brandprofile.Draft) bool {
			return d.Name == "Jane's Brand Profile" &&
				d.PrimaryRole == "SaaS Founder" &&
				len(d.Roles) == 1 && d.Roles[0].ID == "role-1" && d.Roles[0].Importance == brandprofile.ImportanceHigh &&
				len(d.ContentPillars) == 3 && d.ContentPillars[2] == "Hiring" &&
				len(d.Beliefs) == 1 &&
				len(d.DontSoundLike) == 2
		})).
		Return(brandprofile.BrandProfile{ID: "42"}, nil).
		Once()

	store := cache.NewStore(0)
	store.Set(context.Background(), profileListKey(), []brandprofile.BrandProfile{})
	notifier := &recordingNotifier{}
	svc := NewOnboardingService(profiles, &id.Sequence{Prefix: "role"}, notifier, store, nil)
	w := svc.Start()
	completeWizard(t, w)

	result, err := w.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Profile == nil || result.Profile.ID != "42" || result.Redirect != RouteDashboard {
		t.Fatalf("unexpected result: %+v", result)
	}
	if _, ok := store.Get(context.Background(), profileListKey()); ok {
		t.Fatalf("expected profile list to be invalidated")
	}
	if got := notifier.last(); got.Title != "Profile Created!" {
		t.Fatalf("unexpected notification: %+v", got)
	}
}

func TestWizard_SubmitFailureStillRedirects(t *testing.T) {
	t.Parallel()

	profiles := brandprofilemock.NewRepository(t)
	profiles.On("Create", mock.Anything, mock.Anything).Return(brandprofile.BrandProfile{}, &RequestError{Status: 500}).Once()

	notifier := &recordingNotifier{}
	svc := NewOnboardingService(profiles, &id.Sequence{Prefix: "role"}, notifier, nil, nil)
	w := svc.Start()
	completeWizard(t, w)

	result, err := w.Submit(context.Background())
	if err == nil {
		t.Fatalf("expected submit error")
	}
	if result.Redirect != RouteDashboard || result.Profile != nil {
		t.Fatalf("unexpected result: %+v", result)
	}
	if got := notifier.last(); got.Variant != VariantDestructive {
		t.Fatalf("expected destructive notification, got %+v", got)
	}
}

func TestWizard_SubmitOnlyFromReview(t *testing.T) {
	t.Parallel()

	svc := NewOnboardingService(brandprofilemock.NewRepository(t), nil, nil, nil, nil)
	if _, err := svc.Start().Submit(context.Background()); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
