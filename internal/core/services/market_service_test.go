package services

import (
	"context"
	"errors"
	"testing"

	"agrihero-admin/internal/adapters/persistence/memory"
	"agrihero-admin/internal/adapters/persistence/repositories"
	"agrihero-admin/internal/core/domain"
)

func TestPriceDelta(t *testing.T) {
	tests := []struct {
		name              string
		price, previous   string
		wantChange        string
		wantPercentChange string
		wantStatus        string
	}{
		{"rising", "32.50", "30.00", "2.50", "8.3", "rising"},
		{"falling", "27.00", "30.00", "-3.00", "-10.0", "falling"},
		{"stable", "30.00", "30.00", "0.00", "0.0", "stable"},
		{"zero previous", "5.00", "0", "5.00", "0.0", "rising"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change, percentChange, status, err := priceDelta(tt.price, tt.previous)
			if err != nil {
				t.Fatalf("priceDelta: %v", err)
			}
			if change != tt.wantChange || percentChange != tt.wantPercentChange || status != tt.wantStatus {
				t.Errorf("priceDelta(%s, %s) = (%s, %s, %s), want (%s, %s, %s)",
					tt.price, tt.previous, change, percentChange, status,
					tt.wantChange, tt.wantPercentChange, tt.wantStatus)
			}
		})
	}
}

func TestPriceDeltaRejectsNonNumeric(t *testing.T) {
	for _, pair := range [][2]string{{"abc", "30.00"}, {"30.00", ""}, {"$30", "28"}} {
		if _, _, _, err := priceDelta(pair[0], pair[1]); !errors.Is(err, ErrInvalidPrice) {
			t.Errorf("priceDelta(%q, %q) = %v, want ErrInvalidPrice", pair[0], pair[1], err)
		}
	}
}

func createMarketEntry(t *testing.T, svc *MarketService) uint {
	t.Helper()
	entry, err := svc.CreateProduceMarket(context.Background(), 1, &CreateProduceMarketInput{
		ProduceName:   "Maize",
		Category:      "Grains",
		Price:         "32.50",
		PreviousPrice: "30.00",
		Region:        "Kenya",
		Date:          "2026-08-01",
		Source:        "Nairobi Commodity Exchange",
	})
	if err != nil {
		t.Fatalf("CreateProduceMarket: %v", err)
	}
	return entry.ID
}

func TestCreateProduceMarketDerivesDeltas(t *testing.T) {
	store := memory.New()
	svc := NewMarketService(store)
	ctx := context.Background()

	id := createMarketEntry(t, svc)

	entry, err := svc.GetProduceMarket(ctx, id)
	if err != nil {
		t.Fatalf("GetProduceMarket: %v", err)
	}
	if entry.Change != "2.50" || entry.PercentChange != "8.3" || entry.Status != domain.MarketStatusRising {
		t.Errorf("derived deltas = (%s, %s, %s), want (2.50, 8.3, rising)",
			entry.Change, entry.PercentChange, entry.Status)
	}

	logs, _ := store.ListAuditLogs(ctx, repositories.AuditLogFilter{Action: domain.ActionProduceMarketCreate})
	if len(logs) != 1 || logs[0].Metadata["produceName"] != "Maize" {
		t.Errorf("audit trail = %+v", logs)
	}
}

func TestUpdateProduceMarketRederivesDeltas(t *testing.T) {
	store := memory.New()
	svc := NewMarketService(store)
	ctx := context.Background()

	id := createMarketEntry(t, svc)

	price := "28.00"
	updated, err := svc.UpdateProduceMarket(ctx, 1, id, &UpdateProduceMarketInput{Price: &price})
	if err != nil {
		t.Fatalf("UpdateProduceMarket: %v", err)
	}
	// New price against the existing previous price of 30.00
	if updated.Change != "-2.00" || updated.PercentChange != "-6.7" || updated.Status != domain.MarketStatusFalling {
		t.Errorf("re-derived deltas = (%s, %s, %s), want (-2.00, -6.7, falling)",
			updated.Change, updated.PercentChange, updated.Status)
	}

	// Non-price updates leave the deltas alone
	region := "Tanzania"
	updated, err = svc.UpdateProduceMarket(ctx, 1, id, &UpdateProduceMarketInput{Region: &region})
	if err != nil {
		t.Fatalf("UpdateProduceMarket: %v", err)
	}
	if updated.Change != "-2.00" || updated.Status != domain.MarketStatusFalling {
		t.Errorf("deltas changed on region update: (%s, %s)", updated.Change, updated.Status)
	}
}

func TestUpdateProduceMarketInvalidPrice(t *testing.T) {
	svc := NewMarketService(memory.New())
	id := createMarketEntry(t, svc)

	price := "thirty"
	_, err := svc.UpdateProduceMarket(context.Background(), 1, id, &UpdateProduceMarketInput{Price: &price})
	if !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("err = %v, want ErrInvalidPrice", err)
	}
}

func TestDeleteProduceMarket(t *testing.T) {
	store := memory.New()
	svc := NewMarketService(store)
	ctx := context.Background()

	id := createMarketEntry(t, svc)

	if err := svc.DeleteProduceMarket(ctx, 1, id); err != nil {
		t.Fatalf("DeleteProduceMarket: %v", err)
	}
	if _, err := svc.GetProduceMarket(ctx, id); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("entry survived delete: %v", err)
	}

	logs, _ := store.ListAuditLogs(ctx, repositories.AuditLogFilter{Action: domain.ActionProduceMarketDelete})
	if len(logs) != 1 {
		t.Fatalf("%d audit entries, want 1", len(logs))
	}
	meta := logs[0].Metadata
	if meta["produceName"] != "Maize" || meta["region"] != "Kenya" {
		t.Errorf("deletion metadata = %v", meta)
	}

	if err := svc.DeleteProduceMarket(ctx, 1, id); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
}
