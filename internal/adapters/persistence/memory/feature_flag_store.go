package memory

import (
	"context"
	"time"

	"agrihero-admin/internal/adapters/persistence/models"
	"agrihero-admin/internal/adapters/persistence/repositories"
	"agrihero-admin/internal/core/domain"
)

func cloneFlag(f *models.FeatureFlag) *models.FeatureFlag {
	c := *f
	c.Regions = append(models.StringList{}, f.Regions...)
	return &c
}

// GetFeatureFlag gets a feature flag by ID
func (s *Storage) GetFeatureFlag(ctx context.Context, id uint) (*models.FeatureFlag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	flag, ok := s.flags[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneFlag(flag), nil
}

// GetFeatureFlagByName gets a feature flag by its unique name
func (s *Storage) GetFeatureFlagByName(ctx context.Context, name string) (*models.FeatureFlag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.flagIDs {
		if s.flags[id].Name == name {
			return cloneFlag(s.flags[id]), nil
		}
	}
	return nil, domain.ErrNotFound
}

// CreateFeatureFlag creates a new flag, stamping LastUpdated. Names are unique.
func (s *Storage) CreateFeatureFlag(ctx context.Context, flag *models.FeatureFlag) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.flagIDs {
		if s.flags[id].Name == flag.Name {
			return domain.ErrDuplicateEntry
		}
	}

	s.flagCounter++
	flag.ID = s.flagCounter
	flag.LastUpdated = time.Now()
	if flag.Regions == nil {
		flag.Regions = models.StringList{}
	}

	s.flags[flag.ID] = cloneFlag(flag)
	s.flagIDs = append(s.flagIDs, flag.ID)
	return nil
}

// UpdateFeatureFlag merges the patch onto the stored record and re-stamps
// LastUpdated
func (s *Storage) UpdateFeatureFlag(ctx context.Context, id uint, patch *repositories.FeatureFlagPatch) (*models.FeatureFlag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flag, ok := s.flags[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	if patch.Name != nil {
		for _, other := range s.flagIDs {
			if other != id && s.flags[other].Name == *patch.Name {
				return nil, domain.ErrDuplicateEntry
			}
		}
		flag.Name = *patch.Name
	}
	if patch.Description != nil {
		flag.Description = *patch.Description
	}
	if patch.Enabled != nil {
		flag.Enabled = *patch.Enabled
	}
	if patch.Scope != nil {
		flag.Scope = *patch.Scope
	}
	if patch.Regions != nil {
		flag.Regions = append(models.StringList{}, *patch.Regions...)
	}
	if patch.UpdatedBy != nil {
		flag.UpdatedBy = *patch.UpdatedBy
	}
	flag.LastUpdated = time.Now()
	return cloneFlag(flag), nil
}

// DeleteFeatureFlag removes a flag, reporting whether a record existed
func (s *Storage) DeleteFeatureFlag(ctx context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.flags[id]; !ok {
		return false, nil
	}
	delete(s.flags, id)
	s.flagIDs = removeID(s.flagIDs, id)
	return true, nil
}

// ListFeatureFlags lists flags matching the filter, in insertion order.
// Regions match on set overlap.
func (s *Storage) ListFeatureFlags(ctx context.Context, filter repositories.FeatureFlagFilter) ([]*models.FeatureFlag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.FeatureFlag, 0, len(s.flagIDs))
	for _, id := range s.flagIDs {
		f := s.flags[id]
		if filter.Scope != "" && f.Scope != filter.Scope {
			continue
		}
		if filter.Enabled != nil && f.Enabled != *filter.Enabled {
			continue
		}
		if len(filter.Regions) > 0 && !f.Regions.Overlaps(filter.Regions) {
			continue
		}
		result = append(result, cloneFlag(f))
	}
	return result, nil
}
