package repositories

import (
	"context"

	"agrihero-admin/internal/adapters/persistence/models"
)

// GetContent gets a content item by ID
func (s *storage) GetContent(ctx context.Context, id uint) (*models.Content, error) {
	var content models.Content
	if err := s.db.WithContext(ctx).First(&content, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &content, nil
}

// CreateContent creates a new content item
func (s *storage) CreateContent(ctx context.Context, content *models.Content) error {
	return translateErr(s.db.WithContext(ctx).Create(content).Error)
}

// UpdateContent applies a partial update to a content item
func (s *storage) UpdateContent(ctx context.Context, id uint, patch *ContentPatch) (*models.Content, error) {
	content, err := s.GetContent(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Type != nil {
		updates["type"] = *patch.Type
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.Reported != nil {
		updates["reported"] = *patch.Reported
	}
	if patch.ReportReason != nil {
		updates["report_reason"] = *patch.ReportReason
	}
	if patch.Region != nil {
		updates["region"] = *patch.Region
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(content).Updates(updates).Error; err != nil {
			return nil, translateErr(err)
		}
	}
	return content, nil
}

// DeleteContent removes a content item, reporting whether a record existed
func (s *storage) DeleteContent(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Content{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListContents lists content matching the filter, in insertion order
func (s *storage) ListContents(ctx context.Context, filter ContentFilter) ([]*models.Content, error) {
	q := s.db.WithContext(ctx).Model(&models.Content{})
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Reported != nil {
		q = q.Where("reported = ?", *filter.Reported)
	}
	if filter.Region != "" {
		q = q.Where("region = ?", filter.Region)
	}

	var contents []*models.Content
	if err := q.Order("id ASC").Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}
