package repositories

import (
	"context"

	"agrihero-admin/internal/adapters/persistence/models"
	"agrihero-admin/internal/core/domain"
)

// GetFeatureFlag gets a feature flag by ID
func (s *storage) GetFeatureFlag(ctx context.Context, id uint) (*models.FeatureFlag, error) {
	var flag models.FeatureFlag
	if err := s.db.WithContext(ctx).First(&flag, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &flag, nil
}

// GetFeatureFlagByName gets a feature flag by its unique name
func (s *storage) GetFeatureFlagByName(ctx context.Context, name string) (*models.FeatureFlag, error) {
	var flag models.FeatureFlag
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&flag).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &flag, nil
}

// CreateFeatureFlag creates a new feature flag. Names are unique.
func (s *storage) CreateFeatureFlag(ctx context.Context, flag *models.FeatureFlag) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.FeatureFlag{}).
		Where("name = ?", flag.Name).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrDuplicateEntry
	}
	if flag.Regions == nil {
		flag.Regions = models.StringList{}
	}
	return translateErr(s.db.WithContext(ctx).Create(flag).Error)
}

// UpdateFeatureFlag applies a partial update and re-stamps LastUpdated
func (s *storage) UpdateFeatureFlag(ctx context.Context, id uint, patch *FeatureFlagPatch) (*models.FeatureFlag, error) {
	flag, err := s.GetFeatureFlag(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.FeatureFlag{}).
			Where("name = ? AND id <> ?", *patch.Name, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, domain.ErrDuplicateEntry
		}
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Enabled != nil {
		updates["enabled"] = *patch.Enabled
	}
	if patch.Scope != nil {
		updates["scope"] = *patch.Scope
	}
	if patch.Regions != nil {
		updates["regions"] = models.StringList(*patch.Regions)
	}
	if patch.UpdatedBy != nil {
		updates["updated_by"] = *patch.UpdatedBy
	}

	// Updates re-stamps last_updated through autoUpdateTime even for a
	// no-op patch, matching the always-stamp contract of the update op.
	if err := s.db.WithContext(ctx).Model(flag).Updates(updates).Error; err != nil {
		return nil, translateErr(err)
	}
	return flag, nil
}

// DeleteFeatureFlag removes a feature flag, reporting whether a record existed
func (s *storage) DeleteFeatureFlag(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.FeatureFlag{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListFeatureFlags lists feature flags matching the filter, in insertion
// order. Region-list overlap is evaluated in Go since regions live in a
// JSON column.
func (s *storage) ListFeatureFlags(ctx context.Context, filter FeatureFlagFilter) ([]*models.FeatureFlag, error) {
	q := s.db.WithContext(ctx).Model(&models.FeatureFlag{})
	if filter.Scope != "" {
		q = q.Where("scope = ?", filter.Scope)
	}
	if filter.Enabled != nil {
		q = q.Where("enabled = ?", *filter.Enabled)
	}

	var flags []*models.FeatureFlag
	if err := q.Order("id ASC").Find(&flags).Error; err != nil {
		return nil, err
	}

	if len(filter.Regions) == 0 {
		return flags, nil
	}
	matched := make([]*models.FeatureFlag, 0, len(flags))
	for _, f := range flags {
		if f.Regions.Overlaps(filter.Regions) {
			matched = append(matched, f)
		}
	}
	return matched, nil
}
