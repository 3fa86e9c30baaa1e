package services

import (
	"context"
	"errors"
	"strconv"

	"agrihero-admin/internal/adapters/persistence/models"
	"agrihero-admin/internal/adapters/persistence/repositories"
	"agrihero-admin/internal/core/domain"
)

// Market service errors
var (
	ErrInvalidPrice = errors.New("price must be a decimal number")
)

// MarketService handles produce market business logic
type MarketService struct {
	store repositories.Storage
}

// NewMarketService creates a new market service
func NewMarketService(store repositories.Storage) *MarketService {
	return &MarketService{store: store}
}

// CreateProduceMarketInput represents create produce market input
type CreateProduceMarketInput struct {
	ProduceName   string `json:"produceName" validate:"required,max=100"`
	Category      string `json:"category" validate:"required,max=50"`
	Price         string `json:"price" validate:"required"`
	PreviousPrice string `json:"previousPrice" validate:"required"`
	Region        string `json:"region" validate:"required,max=50"`
	Date          string `json:"date" validate:"required"`
	Source        string `json:"source" validate:"required,max=100"`
}

// UpdateProduceMarketInput represents partial produce market update input
type UpdateProduceMarketInput struct {
	ProduceName   *string `json:"produceName" validate:"omitempty,max=100"`
	Category      *string `json:"category" validate:"omitempty,max=50"`
	Price         *string `json:"price"`
	PreviousPrice *string `json:"previousPrice"`
	Region        *string `json:"region" validate:"omitempty,max=50"`
	Date          *string `json:"date"`
	Source        *string `json:"source" validate:"omitempty,max=100"`
}

// priceDelta derives change, percentChange and the rising/falling/stable
// status from a price pair.
func priceDelta(priceStr, previousStr string) (change, percentChange, status string, err error) {
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return "", "", "", ErrInvalidPrice
	}
	previous, err := strconv.ParseFloat(previousStr, 64)
	if err != nil {
		return "", "", "", ErrInvalidPrice
	}

	diff := price - previous
	pct := 0.0
	if previous != 0 {
		pct = diff / previous * 100
	}

	switch {
	case diff > 0:
		status = domain.MarketStatusRising
	case diff < 0:
		status = domain.MarketStatusFalling
	default:
		status = domain.MarketStatusStable
	}

	return strconv.FormatFloat(diff, 'f', 2, 64),
		strconv.FormatFloat(pct, 'f', 1, 64),
		status, nil
}

// GetProduceMarket gets a produce market entry by ID
func (s *MarketService) GetProduceMarket(ctx context.Context, id uint) (*models.ProduceMarket, error) {
	return s.store.GetProduceMarket(ctx, id)
}

// ListProduceMarkets lists produce market entries matching the filter
func (s *MarketService) ListProduceMarkets(ctx context.Context, filter repositories.ProduceMarketFilter) ([]*models.ProduceMarket, error) {
	return s.store.ListProduceMarkets(ctx, filter)
}

// CreateProduceMarket creates an entry with derived delta fields and records
// the audit entry atomically
func (s *MarketService) CreateProduceMarket(ctx context.Context, adminID uint, input *CreateProduceMarketInput) (*models.ProduceMarket, error) {
	change, percentChange, status, err := priceDelta(input.Price, input.PreviousPrice)
	if err != nil {
		return nil, err
	}

	entry := &models.ProduceMarket{
		ProduceName:   input.ProduceName,
		Category:      input.Category,
		Price:         input.Price,
		PreviousPrice: input.PreviousPrice,
		Change:        change,
		PercentChange: percentChange,
		Region:        input.Region,
		Date:          input.Date,
		Source:        input.Source,
		Status:        status,
	}

	err = s.store.Transaction(ctx, func(tx repositories.Storage) error {
		if err := tx.CreateProduceMarket(ctx, entry); err != nil {
			return err
		}
		return tx.CreateAuditLog(ctx, &models.AuditLog{
			AdminID: &adminID,
			Action:  domain.ActionProduceMarketCreate,
			Metadata: models.JSONMap{
				"marketId":    entry.ID,
				"produceName": entry.ProduceName,
			},
		})
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// UpdateProduceMarket applies a partial update, re-deriving delta fields when
// either price changes, and records the audit entry atomically
func (s *MarketService) UpdateProduceMarket(ctx context.Context, adminID, id uint, input *UpdateProduceMarketInput) (*models.ProduceMarket, error) {
	entry, err := s.store.GetProduceMarket(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := &repositories.ProduceMarketPatch{
		ProduceName:   input.ProduceName,
		Category:      input.Category,
		Price:         input.Price,
		PreviousPrice: input.PreviousPrice,
		Region:        input.Region,
		Date:          input.Date,
		Source:        input.Source,
	}

	updatedFields := []string{}
	if input.ProduceName != nil {
		updatedFields = append(updatedFields, "produceName")
	}
	if input.Category != nil {
		updatedFields = append(updatedFields, "category")
	}
	if input.Price != nil {
		updatedFields = append(updatedFields, "price")
	}
	if input.PreviousPrice != nil {
		updatedFields = append(updatedFields, "previousPrice")
	}
	if input.Region != nil {
		updatedFields = append(updatedFields, "region")
	}
	if input.Date != nil {
		updatedFields = append(updatedFields, "date")
	}
	if input.Source != nil {
		updatedFields = append(updatedFields, "source")
	}

	if input.Price != nil || input.PreviousPrice != nil {
		price := entry.Price
		if input.Price != nil {
			price = *input.Price
		}
		previous := entry.PreviousPrice
		if input.PreviousPrice != nil {
			previous = *input.PreviousPrice
		}
		change, percentChange, status, err := priceDelta(price, previous)
		if err != nil {
			return nil, err
		}
		patch.Change = &change
		patch.PercentChange = &percentChange
		patch.Status = &status
	}

	var updated *models.ProduceMarket
	err = s.store.Transaction(ctx, func(tx repositories.Storage) error {
		var txErr error
		updated, txErr = tx.UpdateProduceMarket(ctx, id, patch)
		if txErr != nil {
			return txErr
		}
		return tx.CreateAuditLog(ctx, &models.AuditLog{
			AdminID: &adminID,
			Action:  domain.ActionProduceMarketUpdate,
			Metadata: models.JSONMap{
				"marketId": id,
				"updates":  updatedFields,
			},
		})
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteProduceMarket removes an entry and records the audit entry atomically
func (s *MarketService) DeleteProduceMarket(ctx context.Context, adminID, id uint) error {
	entry, err := s.store.GetProduceMarket(ctx, id)
	if err != nil {
		return err
	}

	return s.store.Transaction(ctx, func(tx repositories.Storage) error {
		ok, txErr := tx.DeleteProduceMarket(ctx, id)
		if txErr != nil {
			return txErr
		}
		if !ok {
			return domain.ErrNotFound
		}
		return tx.CreateAuditLog(ctx, &models.AuditLog{
			AdminID: &adminID,
			Action:  domain.ActionProduceMarketDelete,
			Metadata: models.JSONMap{
				"marketId":    id,
				"produceName": entry.ProduceName,
				"region":      entry.Region,
			},
		})
	})
}
