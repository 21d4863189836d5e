package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/content-brain/internal/domain/pillar"
	"github.com/riskibarqy/content-brain/internal/platform/cache"
	"github.com/riskibarqy/content-brain/internal/platform/logging"
)

type PillarService struct {
	pillars  pillar.Repository
	notifier Notifier
	store    *cache.Store
	logger   *logging.Logger
}

func NewPillarService(pillars pillar.Repository, notifier Notifier, store *cache.Store, logger *logging.Logger) *PillarService {
	if store == nil {
		store = cache.NewDisabled()
	}
	return &PillarService{
		pillars:  pillars,
		notifier: notifierOrNop(notifier),
		store:    store,
		logger:   logging.OrDefault(logger).With("component", "pillars"),
	}
}

func (s *PillarService) List(ctx context.Context, profileID string) ([]pillar.Pillar, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PillarService.List")
	defer span.End()

	if strings.TrimSpace(profileID) == "" {
		return nil, fmt.Errorf("%w: profile id is required", ErrInvalidInput)
	}
	items, err := cache.Load(ctx, s.store, pillarListKey(profileID), func(ctx context.Context) ([]pillar.Pillar, error) {
		return s.pillars.ListByProfile(ctx, profileID)
	})
	if err != nil {
		recordSpanError(span, err)
		return nil, fmt.Errorf("list pillars: %w", err)
	}
	return items, nil
}

func (s *PillarService) Create(ctx context.Context, profileID, name string) (pillar.Pillar, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PillarService.Create")
	defer span.End()

	candidate := pillar.Pillar{Name: strings.TrimSpace(name), BrandProfileID: profileID}
	if err := candidate.Validate(); err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidInput, err)
		s.notifier.Notify(ctx, failureToast("Error", "Failed to create pillar"))
		return pillar.Pillar{}, err
	}

	created, err := s.pillars.Create(ctx, profileID, candidate.Name)
	if err != nil {
		recordSpanError(span, err)
		s.logger.WarnContext(ctx, "create pillar failed", "brand_profile_id", profileID, "error", err)
		s.notifier.Notify(ctx, failureToast("Error", MessageOr(err, "Failed to create pillar")))
		return pillar.Pillar{}, fmt.Errorf("create pillar: %w", err)
	}

	invalidateFor := created.BrandProfileID
	if invalidateFor == "" {
		invalidateFor = profileID
	}
	s.store.Invalidate(ctx, pillarListKey(invalidateFor))
	s.notifier.Notify(ctx, toast("Pillar added!", "Content pillar has been added."))
	return created, nil
}

func (s *PillarService) Delete(ctx context.Context, profileID, pillarID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PillarService.Delete")
	defer span.End()

	if strings.TrimSpace(pillarID) == "" {
		return fmt.Errorf("%w: pillar id is required", ErrInvalidInput)
	}
	if err := s.pillars.Delete(ctx, pillarID); err != nil {
		recordSpanError(span, err)
		s.logger.WarnContext(ctx, "delete pillar failed", "pillar_id", pillarID, "error", err)
		s.notifier.Notify(ctx, failureToast("Error", MessageOr(err, "Failed to delete pillar")))
		return fmt.Errorf("delete pillar: %w", err)
	}

	s.store.Invalidate(ctx, pillarListKey(profileID))
	s.notifier.Notify(ctx, toast("Pillar deleted", "Content pillar has been removed."))
	return nil
}
