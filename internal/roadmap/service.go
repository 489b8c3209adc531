package roadmap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/fitness-roadmap/internal/logging"
	"github.com/jonathan/fitness-roadmap/internal/types"
)

// maxOverrideAttempts bounds guarded override writes that race a frequency change.
const maxOverrideAttempts = 2

// ProfileStore reads member profiles and writes the two fields the engine owns.
// Update methods report false when no row was changed.
type ProfileStore interface {
	// GetProfile returns nil, nil when the member does not exist.
	GetProfile(ctx context.Context, memberID uuid.UUID) (*types.Profile, error)
	// UpdateWeeklyStructureOverride stores structure only while the profile
	// still trains expectedDays per week.
	UpdateWeeklyStructureOverride(ctx context.Context, memberID uuid.UUID, structure types.WeeklyStructure, expectedDays int) (bool, error)
	ClearWeeklyStructureOverride(ctx context.Context, memberID uuid.UUID) (bool, error)
	UpdatePersonalizationEnabled(ctx context.Context, memberID uuid.UUID, enabled bool) (bool, error)
	ListMemberIDs(ctx context.Context) ([]uuid.UUID, error)
}

// CatalogSource provides a consistent snapshot of the workout catalog.
type CatalogSource interface {
	ListCatalog(ctx context.Context) (*types.Catalog, error)
}

// Service runs roadmap operations against a profile store and catalog source.
type Service struct {
	profiles ProfileStore
	catalog  CatalogSource
	logger   *slog.Logger
	opts     Options
}

// NewService creates a Service. A nil logger discards output.
func NewService(profiles ProfileStore, catalog CatalogSource, logger *slog.Logger, opts Options) *Service {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{
		profiles: profiles,
		catalog:  catalog,
		logger:   logger,
		opts:     opts,
	}
}

// Generate loads the member's profile and builds their roadmap.
func (s *Service) Generate(ctx context.Context, memberID uuid.UUID) (*types.Roadmap, error) {
	ctx = logging.WithMember(ctx, memberID)

	profile, err := s.loadProfile(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return s.generate(ctx, profile)
}

// Preview builds a roadmap for a profile that is not stored.
func (s *Service) Preview(ctx context.Context, profile *types.Profile) (*types.Roadmap, error) {
	if profile == nil {
		return nil, ErrNilProfile
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	if profile.HasOverride() {
		canonical, err := ValidateOverride(profile.TrainingDaysPerWeek, profile.WeeklyStructureOverride)
		if err != nil {
			return nil, err
		}
		copied := *profile
		copied.WeeklyStructureOverride = canonical
		profile = &copied
	}
	return s.generate(logging.WithMember(ctx, profile.MemberID), profile)
}

func (s *Service) generate(ctx context.Context, profile *types.Profile) (*types.Roadmap, error) {
	catalog, err := s.catalog.ListCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	roadmap, err := GenerateWithOptions(profile, catalog, s.opts)
	if err != nil {
		s.logger.ErrorContext(ctx, "roadmap generation failed", slog.Any("error", err))
		return nil, &MemberError{MemberID: profile.MemberID, Op: "generate roadmap", Cause: err}
	}

	s.logger.InfoContext(ctx, "generated roadmap",
		slog.Bool("personalization_enabled", roadmap.PersonalizationEnabled),
		slog.String("weekly_structure", roadmap.WeeklyStructure.String()),
		slog.Bool("override_applied", roadmap.OverrideApplied),
		slog.Bool("metrics_available", roadmap.MetricsAvailable()),
		slog.Int("recommended", len(roadmap.RecommendedWorkouts)),
		slog.Bool("goal_relaxed", roadmap.GoalRelaxed),
	)
	return roadmap, nil
}

// GenerateMany builds roadmaps for several members in parallel, at most
// concurrency at a time. Results are returned in the order of memberIDs.
// The first failure cancels the remaining work.
func (s *Service) GenerateMany(ctx context.Context, memberIDs []uuid.UUID, concurrency int) ([]*types.Roadmap, error) {
	catalog, err := s.catalog.ListCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	// All members share one catalog snapshot.
	snapshot := &staticCatalog{catalog: catalog}
	batch := &Service{profiles: s.profiles, catalog: snapshot, logger: s.logger, opts: s.opts}

	results := make([]*types.Roadmap, len(memberIDs))
	g, gctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, id := range memberIDs {
		g.Go(func() error {
			roadmap, err := batch.Generate(gctx, id)
			if err != nil {
				return err
			}
			results[i] = roadmap
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// SetWeeklyStructureOverride validates structure against the member's training
// days and stores it.
func (s *Service) SetWeeklyStructureOverride(ctx context.Context, memberID uuid.UUID, structure types.WeeklyStructure) (types.WeeklyStructure, error) {
	ctx = logging.WithMember(ctx, memberID)

	profile, err := s.loadProfile(ctx, memberID)
	if err != nil {
		return nil, err
	}

	canonical, err := ValidateOverride(profile.TrainingDaysPerWeek, structure)
	if err != nil {
		s.logger.WarnContext(ctx, "rejected weekly structure override", slog.Any("error", err))
		return nil, err
	}

	expected := profile.TrainingDaysPerWeek
	for attempt := 1; ; attempt++ {
		updated, err := s.profiles.UpdateWeeklyStructureOverride(ctx, memberID, canonical, expected)
		if err != nil {
			return nil, &MemberError{MemberID: memberID, Op: "store weekly structure override", Cause: err}
		}
		if updated {
			break
		}

		// The profile changed or disappeared between the read and the write.
		current, err := s.loadProfile(ctx, memberID)
		if err != nil {
			return nil, err
		}
		if current.TrainingDaysPerWeek != len(canonical) {
			return nil, &StructureLengthMismatchError{Expected: current.TrainingDaysPerWeek, Actual: len(canonical)}
		}
		if attempt == maxOverrideAttempts {
			return nil, &MemberError{MemberID: memberID, Op: "store weekly structure override", Cause: ErrConcurrentUpdate}
		}
		s.logger.DebugContext(ctx, "retrying weekly structure override", slog.Int("attempt", attempt+1))
		expected = current.TrainingDaysPerWeek
	}

	s.logger.InfoContext(ctx, "set weekly structure override", slog.String("weekly_structure", canonical.String()))
	return canonical, nil
}

// ClearOverride removes the member's override.
func (s *Service) ClearOverride(ctx context.Context, memberID uuid.UUID) error {
	ctx = logging.WithMember(ctx, memberID)

	updated, err := s.profiles.ClearWeeklyStructureOverride(ctx, memberID)
	if err != nil {
		return &MemberError{MemberID: memberID, Op: "clear weekly structure override", Cause: err}
	}
	if !updated {
		return &MemberError{MemberID: memberID, Op: "clear weekly structure override", Cause: ErrMemberNotFound}
	}

	s.logger.InfoContext(ctx, "cleared weekly structure override")
	return nil
}

// SetPersonalizationEnabled sets the member's personalization flag.
func (s *Service) SetPersonalizationEnabled(ctx context.Context, memberID uuid.UUID, enabled bool) error {
	ctx = logging.WithMember(ctx, memberID)

	updated, err := s.profiles.UpdatePersonalizationEnabled(ctx, memberID, enabled)
	if err != nil {
		return &MemberError{MemberID: memberID, Op: "update personalization", Cause: err}
	}
	if !updated {
		return &MemberError{MemberID: memberID, Op: "update personalization", Cause: ErrMemberNotFound}
	}

	s.logger.InfoContext(ctx, "updated personalization", slog.Bool("enabled", enabled))
	return nil
}

// MemberIDs lists every stored member.
func (s *Service) MemberIDs(ctx context.Context) ([]uuid.UUID, error) {
	ids, err := s.profiles.ListMemberIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return ids, nil
}

// Catalog returns the current catalog snapshot.
func (s *Service) Catalog(ctx context.Context) (*types.Catalog, error) {
	catalog, err := s.catalog.ListCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return catalog, nil
}

func (s *Service) loadProfile(ctx context.Context, memberID uuid.UUID) (*types.Profile, error) {
	profile, err := s.profiles.GetProfile(ctx, memberID)
	if err != nil {
		return nil, &MemberError{MemberID: memberID, Op: "load profile", Cause: err}
	}
	if profile == nil {
		return nil, &MemberError{MemberID: memberID, Op: "load profile", Cause: ErrMemberNotFound}
	}
	return profile, nil
}

type staticCatalog struct {
	catalog *types.Catalog
}

func (c *staticCatalog) ListCatalog(context.Context) (*types.Catalog, error) {
	return c.catalog, nil
}

// IsNotFound reports whether err means the member does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrMemberNotFound)
}
