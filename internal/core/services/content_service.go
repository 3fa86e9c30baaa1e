package services

import (
	"context"
	"errors"

	"agrihero-admin/internal/adapters/persistence/models"
	"agrihero-admin/internal/adapters/persistence/repositories"
	"agrihero-admin/internal/core/domain"
)

// Content service errors
var (
	ErrInvalidModerationStatus = errors.New("moderation status must be approved or rejected")
)

// ContentService handles content moderation business logic
type ContentService struct {
	store repositories.Storage
}

// NewContentService creates a new content service
func NewContentService(store repositories.Storage) *ContentService {
	return &ContentService{store: store}
}

// ModerateContentInput represents a moderation decision
type ModerateContentInput struct {
	Status string `json:"status" validate:"required"`
	Reason string `json:"reason"`
}

// GetContent gets a content item by ID
func (s *ContentService) GetContent(ctx context.Context, id uint) (*models.Content, error) {
	return s.store.GetContent(ctx, id)
}

// ListContents lists content items matching the filter
func (s *ContentService) ListContents(ctx context.Context, filter repositories.ContentFilter) ([]*models.Content, error) {
	return s.store.ListContents(ctx, filter)
}

// ModerateContent applies a moderation decision to a content item and records
// the audit entry atomically. Status transitions happen only through here.
func (s *ContentService) ModerateContent(ctx context.Context, adminID, id uint, input *ModerateContentInput) (*models.Content, error) {
	if input.Status != domain.ContentStatusApproved && input.Status != domain.ContentStatusRejected {
		return nil, ErrInvalidModerationStatus
	}

	content, err := s.store.GetContent(ctx, id)
	if err != nil {
		return nil, err
	}
	oldStatus := content.Status

	var updated *models.Content
	err = s.store.Transaction(ctx, func(tx repositories.Storage) error {
		var txErr error
		updated, txErr = tx.UpdateContent(ctx, id, &repositories.ContentPatch{
			Status: &input.Status,
		})
		if txErr != nil {
			return txErr
		}
		return tx.CreateAuditLog(ctx, &models.AuditLog{
			AdminID: &adminID,
			Action:  domain.ActionContentModeration,
			Metadata: models.JSONMap{
				"contentId": id,
				"oldStatus": oldStatus,
				"newStatus": input.Status,
				"reason":    input.Reason,
			},
		})
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
