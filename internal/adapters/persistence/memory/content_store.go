package memory

import (
	"context"
	"time"

	"agrihero-admin/internal/adapters/persistence/models"
	"agrihero-admin/internal/adapters/persistence/repositories"
	"agrihero-admin/internal/core/domain"
)

func cloneContent(c *models.Content) *models.Content {
	cp := *c
	return &cp
}

// GetContent gets a content item by ID
func (s *Storage) GetContent(ctx context.Context, id uint) (*models.Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content, ok := s.contents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneContent(content), nil
}

// CreateContent creates a new content item, stamping CreatedAt
func (s *Storage) CreateContent(ctx context.Context, content *models.Content) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.contentCounter++
	content.ID = s.contentCounter
	content.CreatedAt = time.Now()

	s.contents[content.ID] = cloneContent(content)
	s.contentIDs = append(s.contentIDs, content.ID)
	return nil
}

// UpdateContent performs a shallow merge of the patch onto the stored record
func (s *Storage) UpdateContent(ctx context.Context, id uint, patch *repositories.ContentPatch) (*models.Content, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, ok := s.contents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	if patch.Title != nil {
		content.Title = *patch.Title
	}
	if patch.Description != nil {
		content.Description = *patch.Description
	}
	if patch.Type != nil {
		content.Type = *patch.Type
	}
	if patch.Status != nil {
		content.Status = *patch.Status
	}
	if patch.Reported != nil {
		content.Reported = *patch.Reported
	}
	if patch.ReportReason != nil {
		content.ReportReason = *patch.ReportReason
	}
	if patch.Region != nil {
		content.Region = *patch.Region
	}
	return cloneContent(content), nil
}

// DeleteContent removes a content item, reporting whether a record existed
func (s *Storage) DeleteContent(ctx context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.contents[id]; !ok {
		return false, nil
	}
	delete(s.contents, id)
	s.contentIDs = removeID(s.contentIDs, id)
	return true, nil
}

// ListContents lists content matching the filter, in insertion order
func (s *Storage) ListContents(ctx context.Context, filter repositories.ContentFilter) ([]*models.Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.Content, 0, len(s.contentIDs))
	for _, id := range s.contentIDs {
		c := s.contents[id]
		if filter.Type != "" && c.Type != filter.Type {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.Reported != nil && c.Reported != *filter.Reported {
			continue
		}
		if filter.Region != "" && c.Region != filter.Region {
			continue
		}
		result = append(result, cloneContent(c))
	}
	return result, nil
}
