package memory

import (
	"context"
	"time"

	"agrihero-admin/internal/adapters/persistence/models"
	"agrihero-admin/internal/adapters/persistence/repositories"
	"agrihero-admin/internal/core/domain"
)

func cloneMarket(m *models.ProduceMarket) *models.ProduceMarket {
	c := *m
	return &c
}

// GetProduceMarket gets a produce market entry by ID
func (s *Storage) GetProduceMarket(ctx context.Context, id uint) (*models.ProduceMarket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.markets[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneMarket(entry), nil
}

// CreateProduceMarket creates a new entry, stamping CreatedAt and UpdatedAt
func (s *Storage) CreateProduceMarket(ctx context.Context, entry *models.ProduceMarket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.marketCounter++
	entry.ID = s.marketCounter
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	s.markets[entry.ID] = cloneMarket(entry)
	s.marketIDs = append(s.marketIDs, entry.ID)
	return nil
}

// UpdateProduceMarket merges the patch onto the stored record and re-stamps
// UpdatedAt
func (s *Storage) UpdateProduceMarket(ctx context.Context, id uint, patch *repositories.ProduceMarketPatch) (*models.ProduceMarket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.markets[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	if patch.ProduceName != nil {
		entry.ProduceName = *patch.ProduceName
	}
	if patch.Category != nil {
		entry.Category = *patch.Category
	}
	if patch.Price != nil {
		entry.Price = *patch.Price
	}
	if patch.PreviousPrice != nil {
		entry.PreviousPrice = *patch.PreviousPrice
	}
	if patch.Change != nil {
		entry.Change = *patch.Change
	}
	if patch.PercentChange != nil {
		entry.PercentChange = *patch.PercentChange
	}
	if patch.Region != nil {
		entry.Region = *patch.Region
	}
	if patch.Date != nil {
		entry.Date = *patch.Date
	}
	if patch.Source != nil {
		entry.Source = *patch.Source
	}
	if patch.Status != nil {
		entry.Status = *patch.Status
	}
	entry.UpdatedAt = time.Now()
	return cloneMarket(entry), nil
}

// DeleteProduceMarket removes an entry, reporting whether a record existed
func (s *Storage) DeleteProduceMarket(ctx context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.markets[id]; !ok {
		return false, nil
	}
	delete(s.markets, id)
	s.marketIDs = removeID(s.marketIDs, id)
	return true, nil
}

// ListProduceMarkets lists entries matching the filter, in insertion order
func (s *Storage) ListProduceMarkets(ctx context.Context, filter repositories.ProduceMarketFilter) ([]*models.ProduceMarket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.ProduceMarket, 0, len(s.marketIDs))
	for _, id := range s.marketIDs {
		m := s.markets[id]
		if filter.Category != "" && m.Category != filter.Category {
			continue
		}
		if filter.Region != "" && m.Region != filter.Region {
			continue
		}
		if filter.Status != "" && m.Status != filter.Status {
			continue
		}
		result = append(result, cloneMarket(m))
	}
	return result, nil
}
