package repositories

import (
	"context"

	"agrihero-admin/internal/adapters/persistence/models"
)

// GetProduceMarket gets a produce market entry by ID
func (s *storage) GetProduceMarket(ctx context.Context, id uint) (*models.ProduceMarket, error) {
	var entry models.ProduceMarket
	if err := s.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &entry, nil
}

// CreateProduceMarket creates a new produce market entry
func (s *storage) CreateProduceMarket(ctx context.Context, entry *models.ProduceMarket) error {
	return translateErr(s.db.WithContext(ctx).Create(entry).Error)
}

// UpdateProduceMarket applies a partial update and re-stamps UpdatedAt
func (s *storage) UpdateProduceMarket(ctx context.Context, id uint, patch *ProduceMarketPatch) (*models.ProduceMarket, error) {
	entry, err := s.GetProduceMarket(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.ProduceName != nil {
		updates["produce_name"] = *patch.ProduceName
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.PreviousPrice != nil {
		updates["previous_price"] = *patch.PreviousPrice
	}
	if patch.Change != nil {
		updates["change"] = *patch.Change
	}
	if patch.PercentChange != nil {
		updates["percent_change"] = *patch.PercentChange
	}
	if patch.Region != nil {
		updates["region"] = *patch.Region
	}
	if patch.Date != nil {
		updates["date"] = *patch.Date
	}
	if patch.Source != nil {
		updates["source"] = *patch.Source
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}

	if err := s.db.WithContext(ctx).Model(entry).Updates(updates).Error; err != nil {
		return nil, translateErr(err)
	}
	return entry, nil
}

// DeleteProduceMarket removes an entry, reporting whether a record existed
func (s *storage) DeleteProduceMarket(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.ProduceMarket{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListProduceMarkets lists entries matching the filter, in insertion order
func (s *storage) ListProduceMarkets(ctx context.Context, filter ProduceMarketFilter) ([]*models.ProduceMarket, error) {
	q := s.db.WithContext(ctx).Model(&models.ProduceMarket{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Region != "" {
		q = q.Where("region = ?", filter.Region)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var entries []*models.ProduceMarket
	if err := q.Order("id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
