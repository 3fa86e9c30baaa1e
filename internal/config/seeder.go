package config

import (
	"context"
	"errors"
	"log"

	"agrihero-admin/internal/adapters/persistence/models"
	"agrihero-admin/internal/adapters/persistence/repositories"
	"agrihero-admin/internal/core/domain"
	"agrihero-admin/internal/pkg/password"
)

// Seeder populates an empty store with the baseline back-office data:
// the super admin account, the platform feature flags, the standing
// compliance reports and the latest metric snapshots.
type Seeder struct {
	store repositories.Storage
}

// NewSeeder creates a new seeder instance
func NewSeeder(store repositories.Storage) *Seeder {
	return &Seeder{store: store}
}

// Run executes all seeders. Seeding is idempotent: it bails out when the
// super admin already exists.
func (s *Seeder) Run(ctx context.Context) error {
	_, err := s.store.GetUserByUsername(ctx, "superadmin")
	if err == nil {
		return nil // already seeded
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	log.Println("🌱 Seeding baseline data...")

	if err := s.seedAdminUser(ctx); err != nil {
		return err
	}
	if err := s.seedFeatureFlags(ctx); err != nil {
		return err
	}
	if err := s.seedComplianceReports(ctx); err != nil {
		return err
	}
	if err := s.seedSystemMetrics(ctx); err != nil {
		return err
	}
	if err := s.seedContents(ctx); err != nil {
		return err
	}
	if err := s.seedProduceMarket(ctx); err != nil {
		return err
	}

	log.Println("✅ Seeding completed")
	return nil
}

func (s *Seeder) seedAdminUser(ctx context.Context) error {
	hashed, err := password.Hash(getEnv("SEED_ADMIN_PASSWORD", "password"))
	if err != nil {
		return err
	}

	admin := &models.User{
		Username: "superadmin",
		Password: hashed,
		Email:    "admin@agrihero6.com",
		FullName: "Alex Johnson",
		Role:     string(domain.RoleSuperAdmin),
		Region:   "global",
		Status:   domain.UserStatusActive,
	}
	if err := s.store.CreateUser(ctx, admin); err != nil {
		return err
	}

	log.Printf("✅ Admin user created: %s", admin.Username)
	return nil
}

func (s *Seeder) seedFeatureFlags(ctx context.Context) error {
	flags := []*models.FeatureFlag{
		{
			Name:        "Marketplace Enabled",
			Description: "Allow users to buy and sell agricultural products",
			Enabled:     true,
			Scope:       domain.FlagScopeGlobal,
			Regions:     models.StringList{},
			UpdatedBy:   1,
		},
		{
			Name:        "IoT Device Sync",
			Description: "Sync data from farm IoT devices to the platform",
			Enabled:     true,
			Scope:       domain.FlagScopeGlobal,
			Regions:     models.StringList{},
			UpdatedBy:   1,
		},
		{
			Name:        "Agricultural Chat",
			Description: "In-app messaging between farmers and agronomists",
			Enabled:     false,
			Scope:       domain.FlagScopeRegion,
			Regions:     models.StringList{"Kenya"},
			UpdatedBy:   1,
		},
		{
			Name:        "Beta: Crop Prediction",
			Description: "AI-powered crop yield prediction tools",
			Enabled:     true,
			Scope:       domain.FlagScopeBeta,
			Regions:     models.StringList{},
			UpdatedBy:   1,
		},
	}

	for _, flag := range flags {
		if err := s.store.CreateFeatureFlag(ctx, flag); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedComplianceReports(ctx context.Context) error {
	reports := []*models.ComplianceReport{
		{
			Title:       "Crop Yield Report",
			Description: "Regional crop yield statistics for regulatory reporting",
			Type:        domain.ReportTypeCropYield,
			Frequency:   "weekly",
			Status:      domain.ReportStatusGenerated,
			Region:      "global",
		},
		{
			Title:       "Fertilizer Usage",
			Description: "Fertilizer application statistics across regions",
			Type:        domain.ReportTypeFertilizerUsage,
			Frequency:   "monthly",
			Status:      domain.ReportStatusGenerated,
			Region:      "global",
		},
		{
			Title:          "GDPR Compliance",
			Description:    "Data privacy compliance status and pending actions",
			Type:           domain.ReportTypeGDPR,
			Frequency:      "weekly",
			Status:         domain.ReportStatusPendingAction,
			PendingActions: 3,
			Region:         "Europe",
		},
	}

	for _, report := range reports {
		if err := s.store.CreateComplianceReport(ctx, report); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedSystemMetrics(ctx context.Context) error {
	metrics := []*models.SystemMetric{
		{Name: "Active Users", Value: "12493", Type: "users"},
		{Name: "Content Items", Value: "3721", Type: "content"},
		{Name: "Moderation Queue", Value: "28", Type: "moderation"},
		{Name: "System Health", Value: "97.3", Type: "health"},
	}

	for _, metric := range metrics {
		if err := s.store.CreateSystemMetric(ctx, metric); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedContents(ctx context.Context) error {
	contents := []*models.Content{
		{
			Title:       "Maize seed listing",
			Description: "Certified hybrid maize seed, 25kg bags",
			Type:        domain.ContentTypeMarketplace,
			Status:      domain.ContentStatusPending,
			OwnerID:     1,
			Region:      "Kenya",
		},
		{
			Title:        "Pesticide dosage guide",
			Description:  "Recommended dosages per crop and region",
			Type:         domain.ContentTypeGuide,
			Status:       domain.ContentStatusPending,
			OwnerID:      1,
			Reported:     true,
			ReportReason: "Unverified safety claims",
			Region:       "India",
		},
	}

	for _, content := range contents {
		if err := s.store.CreateContent(ctx, content); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedProduceMarket(ctx context.Context) error {
	entries := []*models.ProduceMarket{
		{
			ProduceName:   "Maize",
			Category:      "Grains",
			Price:         "32.50",
			PreviousPrice: "30.00",
			Change:        "2.50",
			PercentChange: "8.3",
			Region:        "Kenya",
			Date:          "2025-01-06",
			Source:        "Nairobi Exchange",
			Status:        domain.MarketStatusRising,
		},
		{
			ProduceName:   "Tomatoes",
			Category:      "Vegetables",
			Price:         "18.00",
			PreviousPrice: "21.00",
			Change:        "-3.00",
			PercentChange: "-14.3",
			Region:        "India",
			Date:          "2025-01-06",
			Source:        "Delhi Mandi Board",
			Status:        domain.MarketStatusFalling,
		},
	}

	for _, entry := range entries {
		if err := s.store.CreateProduceMarket(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}
