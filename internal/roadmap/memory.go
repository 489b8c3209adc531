package roadmap

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/fitness-roadmap/internal/types"
)

// MemoryStore is an in-process ProfileStore. It is safe for concurrent use.
type MemoryStore struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*types.Profile
	order    []uuid.UUID
}

// NewMemoryStore returns a MemoryStore holding copies of profiles.
func NewMemoryStore(profiles ...*types.Profile) *MemoryStore {
	s := &MemoryStore{profiles: make(map[uuid.UUID]*types.Profile, len(profiles))}
	for _, p := range profiles {
		s.Put(p)
	}
	return s
}

// Put inserts or replaces a profile.
func (s *MemoryStore) Put(profile *types.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[profile.MemberID]; !ok {
		s.order = append(s.order, profile.MemberID)
	}
	s.profiles[profile.MemberID] = cloneProfile(profile)
}

func (s *MemoryStore) GetProfile(_ context.Context, memberID uuid.UUID) (*types.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[memberID]
	if !ok {
		return nil, nil
	}
	return cloneProfile(p), nil
}

func (s *MemoryStore) UpdateWeeklyStructureOverride(_ context.Context, memberID uuid.UUID, structure types.WeeklyStructure, expectedDays int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[memberID]
	if !ok || p.TrainingDaysPerWeek != expectedDays {
		return false, nil
	}
	p.WeeklyStructureOverride = structure.Clone()
	return true, nil
}

func (s *MemoryStore) ClearWeeklyStructureOverride(_ context.Context, memberID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[memberID]
	if !ok {
		return false, nil
	}
	p.WeeklyStructureOverride = nil
	return true, nil
}

func (s *MemoryStore) UpdatePersonalizationEnabled(_ context.Context, memberID uuid.UUID, enabled bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[memberID]
	if !ok {
		return false, nil
	}
	p.PersonalizationEnabled = enabled
	return true, nil
}

func (s *MemoryStore) ListMemberIDs(context.Context) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]uuid.UUID(nil), s.order...), nil
}

func cloneProfile(p *types.Profile) *types.Profile {
	out := *p
	if p.HeightCM != nil {
		h := *p.HeightCM
		out.HeightCM = &h
	}
	if p.WeightKG != nil {
		w := *p.WeightKG
		out.WeightKG = &w
	}
	out.WeeklyStructureOverride = p.WeeklyStructureOverride.Clone()
	return &out
}
