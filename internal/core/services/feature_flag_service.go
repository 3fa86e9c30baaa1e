package services

import (
	"context"
	"errors"
	"log"

	"agrihero-admin/internal/adapters/persistence/models"
	"agrihero-admin/internal/adapters/persistence/repositories"
	"agrihero-admin/internal/core/domain"
)

// Feature flag service errors
var (
	ErrFlagNameTaken = errors.New("feature flag name already exists")
)

// FeatureFlagService handles feature flag business logic
type FeatureFlagService struct {
	store repositories.Storage
}

// NewFeatureFlagService creates a new feature flag service
func NewFeatureFlagService(store repositories.Storage) *FeatureFlagService {
	return &FeatureFlagService{store: store}
}

// CreateFeatureFlagInput represents create feature flag input
type CreateFeatureFlagInput struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description"`
	Enabled     *bool    `json:"enabled"`
	Scope       string   `json:"scope" validate:"omitempty,oneof=global region beta"`
	Regions     []string `json:"regions"`
}

// UpdateFeatureFlagInput represents partial feature flag update input
type UpdateFeatureFlagInput struct {
	Name        *string   `json:"name" validate:"omitempty,max=100"`
	Description *string   `json:"description"`
	Enabled     *bool     `json:"enabled"`
	Scope       *string   `json:"scope" validate:"omitempty,oneof=global region beta"`
	Regions     *[]string `json:"regions"`
}

// GetFeatureFlag gets a feature flag by ID
func (s *FeatureFlagService) GetFeatureFlag(ctx context.Context, id uint) (*models.FeatureFlag, error) {
	return s.store.GetFeatureFlag(ctx, id)
}

// ListFeatureFlags lists feature flags matching the filter
func (s *FeatureFlagService) ListFeatureFlags(ctx context.Context, filter repositories.FeatureFlagFilter) ([]*models.FeatureFlag, error) {
	return s.store.ListFeatureFlags(ctx, filter)
}

// CreateFeatureFlag creates a flag and records the audit entry atomically.
// Flag names are unique across the collection.
func (s *FeatureFlagService) CreateFeatureFlag(ctx context.Context, adminID uint, input *CreateFeatureFlagInput) (*models.FeatureFlag, error) {
	enabled := true
	if input.Enabled != nil {
		enabled = *input.Enabled
	}
	scope := input.Scope
	if scope == "" {
		scope = domain.FlagScopeGlobal
	}
	regions := models.StringList{}
	if input.Regions != nil {
		regions = models.StringList(input.Regions)
	}

	flag := &models.FeatureFlag{
		Name:        input.Name,
		Description: input.Description,
		Enabled:     enabled,
		Scope:       scope,
		Regions:     regions,
		UpdatedBy:   adminID,
	}

	err := s.store.Transaction(ctx, func(tx repositories.Storage) error {
		if err := tx.CreateFeatureFlag(ctx, flag); err != nil {
			return err
		}
		return tx.CreateAuditLog(ctx, &models.AuditLog{
			AdminID: &adminID,
			Action:  domain.ActionFeatureFlagCreation,
			Metadata: models.JSONMap{
				"flagId":   flag.ID,
				"flagName": flag.Name,
			},
		})
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, ErrFlagNameTaken
		}
		return nil, err
	}

	log.Printf("✅ Feature flag created: %s", flag.Name)
	return flag, nil
}

// UpdateFeatureFlag applies a partial update, stamps lastUpdated/updatedBy
// and records the audit entry atomically.
func (s *FeatureFlagService) UpdateFeatureFlag(ctx context.Context, adminID, id uint, input *UpdateFeatureFlagInput) (*models.FeatureFlag, error) {
	flag, err := s.store.GetFeatureFlag(ctx, id)
	if err != nil {
		return nil, err
	}

	newEnabled := flag.Enabled
	if input.Enabled != nil {
		newEnabled = *input.Enabled
	}

	patch := &repositories.FeatureFlagPatch{
		Name:        input.Name,
		Description: input.Description,
		Enabled:     input.Enabled,
		Scope:       input.Scope,
		Regions:     input.Regions,
		UpdatedBy:   &adminID,
	}

	var updated *models.FeatureFlag
	err = s.store.Transaction(ctx, func(tx repositories.Storage) error {
		var txErr error
		updated, txErr = tx.UpdateFeatureFlag(ctx, id, patch)
		if txErr != nil {
			return txErr
		}
		return tx.CreateAuditLog(ctx, &models.AuditLog{
			AdminID: &adminID,
			Action:  domain.ActionFeatureFlagUpdate,
			Metadata: models.JSONMap{
				"flagId":     id,
				"flagName":   flag.Name,
				"oldEnabled": flag.Enabled,
				"newEnabled": newEnabled,
			},
		})
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, ErrFlagNameTaken
		}
		return nil, err
	}

	return updated, nil
}
