package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/content-brain/internal/domain/brandprofile"
	"github.com/riskibarqy/content-brain/internal/platform/cache"
	"github.com/riskibarqy/content-brain/internal/platform/logging"
)

const (
	editorDefaultFrequency = 8
	editorDefaultTone      = 5
)

type ProfileEditorService struct {
	profiles brandprofile.Repository
	notifier Notifier
	store    *cache.Store
	validate *validator.Validate
	logger   *logging.Logger
}

func NewProfileEditorService(profiles brandprofile.Repository, notifier Notifier, store *cache.Store, logger *logging.Logger) *ProfileEditorService {
	if store == nil {
		store = cache.NewDisabled()
	}
	return &ProfileEditorService{
		profiles: profiles,
		notifier: notifierOrNop(notifier),
		store:    store,
		validate: newValidator(),
		logger:   logging.OrDefault(logger).With("component", "profile_editor"),
	}
}

func (s *ProfileEditorService) Get(ctx context.Context, profileID string) (brandprofile.BrandProfile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProfileEditorService.Get")
	defer span.End()

	if profileID == "" {
		return brandprofile.BrandProfile{}, fmt.Errorf("%w: profile id is required", ErrInvalidInput)
	}
	profile, err := cache.Load(ctx, s.store, profileDetailKey(profileID), func(ctx context.Context) (brandprofile.BrandProfile, error) {
		return s.profiles.GetByID(ctx, profileID)
	})
	if err != nil {
		recordSpanError(span, err)
		return brandprofile.BrandProfile{}, fmt.Errorf("get brand profile: %w", err)
	}
	return profile, nil
}

// Open loads a profile into an edit buffer.
func (s *ProfileEditorService) Open(ctx context.Context, profileID string) (*ProfileEdit, error) {
	profile, err := s.Get(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return &ProfileEdit{svc: s, original: profile, form: formFromProfile(profile)}, nil
}

// ProfileForm is the edit buffer of the profile editor.
type ProfileForm struct {
	Name             string `validate:"required" label:"Profile name"`
	AdditionalInfo   string
	Goals            []string
	Pillars          []string
	PostingFrequency int
	ToneProfile      brandprofile.ToneProfile
	AdmiredCreators  []string
	Beliefs          []string
	DontSoundLike    string
	OffLimitTopics   string
}

func formFromProfile(p brandprofile.BrandProfile) ProfileForm {
	form := ProfileForm{
		Name:             p.Name,
		AdditionalInfo:   p.AdditionalInfo,
		Goals:            slices.Clone(p.Goals),
		Pillars:          slices.Clone(p.ContentPillars),
		PostingFrequency: p.PostingFrequency,
		ToneProfile:      p.ToneProfile,
		AdmiredCreators:  slices.Clone(p.AdmiredCreators),
		Beliefs:          slices.Clone(p.Beliefs),
		DontSoundLike:    brandprofile.JoinList(p.DontSoundLike),
		OffLimitTopics:   brandprofile.JoinList(p.OffLimitTopics),
	}
	if form.PostingFrequency == 0 {
		form.PostingFrequency = editorDefaultFrequency
	}
	if form.ToneProfile == (brandprofile.ToneProfile{}) {
		form.ToneProfile = brandprofile.ToneProfile{
			CasualToFormal:       editorDefaultTone,
			RawToPolished:        editorDefaultTone,
			PunchyToStorytelling: editorDefaultTone,
			BoldToSafe:           editorDefaultTone,
		}
	}
	if len(form.Beliefs) == 0 {
		form.Beliefs = make([]string, 3)
	}
	return form
}

func (f ProfileForm) clone() ProfileForm {
	out := f
	out.Goals = slices.Clone(f.Goals)
	out.Pillars = slices.Clone(f.Pillars)
	out.AdmiredCreators = slices.Clone(f.AdmiredCreators)
	out.Beliefs = slices.Clone(f.Beliefs)
	return out
}

// ProfileEdit is one open profile editor.
type ProfileEdit struct {
	svc      *ProfileEditorService
	original brandprofile.BrandProfile

	mu   sync.Mutex
	form ProfileForm
}

func (e *ProfileEdit) ProfileID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.original.ID
}

func (e *ProfileEdit) Form() ProfileForm {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.form.clone()
}

// Update edits free-text fields of the buffer.
func (e *ProfileEdit) Update(fn func(*ProfileForm)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.form)
}

func (e *ProfileEdit) ToggleGoal(goal string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.form.Goals = toggle(e.form.Goals, goal)
}

// TogglePillar is refused with a notification once five pillars are selected.
func (e *ProfileEdit) TogglePillar(ctx context.Context, name string) bool {
	e.mu.Lock()
	if i := slices.Index(e.form.Pillars, name); i >= 0 {
		e.form.Pillars = slices.Delete(e.form.Pillars, i, i+1)
		e.mu.Unlock()
		return true
	}
	if len(e.form.Pillars) >= brandprofile.MaxPillars {
		e.mu.Unlock()
		e.svc.notifier.Notify(ctx, failureToast("Maximum 5 pillars", ""))
		return false
	}
	e.form.Pillars = append(e.form.Pillars, name)
	e.mu.Unlock()
	return true
}

func (e *ProfileEdit) AddCustomPillar(raw string) bool {
	name := strings.TrimSpace(raw)
	e.mu.Lock()
	defer e.mu.Unlock()
	if name == "" || len(e.form.Pillars) >= brandprofile.MaxPillars || slices.Contains(e.form.Pillars, name) {
		return false
	}
	e.form.Pillars = append(e.form.Pillars, name)
	return true
}

func (e *ProfileEdit) AddCreator(raw string) bool {
	name := strings.TrimSpace(raw)
	e.mu.Lock()
	defer e.mu.Unlock()
	if name == "" || len(e.form.AdmiredCreators) >= brandprofile.MaxAdmiredCreators {
		return false
	}
	e.form.AdmiredCreators = append(e.form.AdmiredCreators, name)
	return true
}

func (e *ProfileEdit) RemoveCreator(index int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if index < 0 || index >= len(e.form.AdmiredCreators) {
		return false
	}
	e.form.AdmiredCreators = slices.Delete(e.form.AdmiredCreators, index, index+1)
	return true
}

func (e *ProfileEdit) SetBelief(index int, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if index < 0 || index >= len(e.form.Beliefs) {
		return fmt.Errorf("%w: belief %d", ErrInvalidInput, index)
	}
	e.form.Beliefs[index] = value
	return nil
}

func (e *ProfileEdit) SetTone(axis brandprofile.ToneAxis, value int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	tone, ok := e.form.ToneProfile.With(axis, value)
	if !ok {
		return fmt.Errorf("%w: unknown tone axis %q", ErrInvalidInput, axis)
	}
	e.form.ToneProfile = tone
	return nil
}

func (e *ProfileEdit) SetFrequency(value int) error {
	if !brandprofile.IsFrequencyOption(value) {
		return fmt.Errorf("%w: %w: %d", ErrInvalidInput, brandprofile.ErrInvalidFrequency, value)
	}
	e.mu.Lock()
	e.form.PostingFrequency = value
	e.mu.Unlock()
	return nil
}

// Save validates the form and replaces the profile. The returned path is
// where the caller goes next on success.
func (e *ProfileEdit) Save(ctx context.Context) (brandprofile.BrandProfile, string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProfileEdit.Save")
	defer span.End()

	e.mu.Lock()
	form := e.form.clone()
	id, draft := e.original.ID, e.original.Draft
	e.mu.Unlock()

	if err := validateForm(ctx, e.svc.validate, form); err != nil {
		e.svc.notifier.Notify(ctx, failureToast("Error", MessageOr(err, "Failed to update profile")))
		return brandprofile.BrandProfile{}, "", err
	}

	draft.Name = strings.TrimSpace(form.Name)
	draft.AdditionalInfo = form.AdditionalInfo
	draft.Goals = form.Goals
	draft.ContentPillars = form.Pillars
	draft.PostingFrequency = form.PostingFrequency
	draft.ToneProfile = form.ToneProfile
	draft.AdmiredCreators = form.AdmiredCreators
	draft.Beliefs = brandprofile.CompactList(form.Beliefs)
	draft.DontSoundLike = brandprofile.SplitList(form.DontSoundLike)
	draft.OffLimitTopics = brandprofile.SplitList(form.OffLimitTopics)
	if err := brandprofile.ValidateDraft(draft); err != nil {
		e.svc.notifier.Notify(ctx, failureToast("Error", ruleMessage(err)))
		return brandprofile.BrandProfile{}, "", fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	saved, err := e.svc.profiles.Update(ctx, id, draft)
	if err != nil {
		recordSpanError(span, err)
		e.svc.logger.WarnContext(ctx, "update brand profile failed", "brand_profile_id", id, "error", err)
		e.svc.notifier.Notify(ctx, failureToast("Error", MessageOr(err, "Failed to update profile")))
		return brandprofile.BrandProfile{}, "", fmt.Errorf("update brand profile: %w", err)
	}

	e.svc.store.Invalidate(ctx, profileListKey(), profileDetailKey(id))
	e.mu.Lock()
	e.original = saved
	e.mu.Unlock()

	e.svc.notifier.Notify(ctx, toast("Profile updated!", "Your changes have been saved."))
	return saved, RouteDashboard, nil
}

func (e *ProfileEdit) Delete(ctx context.Context) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProfileEdit.Delete")
	defer span.End()

	if err := deleteProfile(ctx, e.svc.profiles, e.svc.store, e.ProfileID()); err != nil {
		recordSpanError(span, err)
		e.svc.notifier.Notify(ctx, failureToast("Error", MessageOr(err, "Failed to delete profile")))
		return "", err
	}
	e.svc.notifier.Notify(ctx, toast("Profile deleted", "Your brand profile has been deleted."))
	return RouteDashboard, nil
}

func ruleMessage(err error) string {
	switch {
	case errors.Is(err, brandprofile.ErrPillarCount):
		return fmt.Sprintf("Select between 1 and %d content pillars", brandprofile.MaxPillars)
	case errors.Is(err, brandprofile.ErrDuplicatePillar):
		return "Content pillars must be unique"
	case errors.Is(err, brandprofile.ErrPrimaryRoleMismatch):
		return "Primary role must be one of your roles"
	default:
		return "Failed to update profile"
	}
}

func toggle(values []string, v string) []string {
	if i := slices.Index(values, v); i >= 0 {
		return slices.Delete(values, i, i+1)
	}
	return append(values, v)
}
