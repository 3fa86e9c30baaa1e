package repositories

import (
	"context"
	"time"

	"agrihero-admin/internal/adapters/persistence/models"
)

// Filter types select subsets of stored entities. A zero-valued field places
// no constraint; set fields must match exactly. FeatureFlagFilter.Regions
// matches when the flag's region list shares at least one element.

// UserFilter filters user listings
type UserFilter struct {
	Role   string
	Region string
	Status string
}

// ContentFilter filters content listings
type ContentFilter struct {
	Type     string
	Status   string
	Reported *bool
	Region   string
}

// FeatureFlagFilter filters feature flag listings
type FeatureFlagFilter struct {
	Scope   string
	Enabled *bool
	Regions []string
}

// AuditLogFilter filters audit log listings
type AuditLogFilter struct {
	Action  string
	AdminID *uint
}

// ComplianceReportFilter filters compliance report listings
type ComplianceReportFilter struct {
	Type   string
	Status string
	Region string
}

// SystemMetricFilter filters system metric listings
type SystemMetricFilter struct {
	Type string
}

// ProduceMarketFilter filters produce market listings
type ProduceMarketFilter struct {
	Category string
	Region   string
	Status   string
}

// Patch types describe partial updates. Nil fields are left untouched;
// the merge is shallow and last-write-wins.

// UserPatch is a partial user update
type UserPatch struct {
	Username *string
	Password *string
	Email    *string
	FullName *string
	Role     *string
	Region   *string
	Status   *string
}

// ContentPatch is a partial content update
type ContentPatch struct {
	Title        *string
	Description  *string
	Type         *string
	Status       *string
	Reported     *bool
	ReportReason *string
	Region       *string
}

// FeatureFlagPatch is a partial feature flag update
type FeatureFlagPatch struct {
	Name        *string
	Description *string
	Enabled     *bool
	Scope       *string
	Regions     *[]string
	UpdatedBy   *uint
}

// ComplianceReportPatch is a partial compliance report update
type ComplianceReportPatch struct {
	Title          *string
	Description    *string
	Type           *string
	Frequency      *string
	Status         *string
	PendingActions *int
	Region         *string
	LastGenerated  *time.Time
}

// ProduceMarketPatch is a partial produce market update
type ProduceMarketPatch struct {
	ProduceName   *string
	Category      *string
	Price         *string
	PreviousPrice *string
	Change        *string
	PercentChange *string
	Region        *string
	Date          *string
	Source        *string
	Status        *string
}

// Storage is the sole owner of all entity state. Create assigns the next
// identifier and stamps creation metadata; Update performs a shallow merge
// and re-stamps lastUpdated-style fields where the entity defines one;
// absence surfaces as domain.ErrNotFound and uniqueness violations as
// domain.ErrDuplicateEntry.
type Storage interface {
	// Users
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, id uint, patch *UserPatch) (*models.User, error)
	TouchUserLastActive(ctx context.Context, id uint) error
	DeleteUser(ctx context.Context, id uint) (bool, error)
	ListUsers(ctx context.Context, filter UserFilter) ([]*models.User, error)

	// Contents
	GetContent(ctx context.Context, id uint) (*models.Content, error)
	CreateContent(ctx context.Context, content *models.Content) error
	UpdateContent(ctx context.Context, id uint, patch *ContentPatch) (*models.Content, error)
	DeleteContent(ctx context.Context, id uint) (bool, error)
	ListContents(ctx context.Context, filter ContentFilter) ([]*models.Content, error)

	// Feature flags
	GetFeatureFlag(ctx context.Context, id uint) (*models.FeatureFlag, error)
	GetFeatureFlagByName(ctx context.Context, name string) (*models.FeatureFlag, error)
	CreateFeatureFlag(ctx context.Context, flag *models.FeatureFlag) error
	UpdateFeatureFlag(ctx context.Context, id uint, patch *FeatureFlagPatch) (*models.FeatureFlag, error)
	DeleteFeatureFlag(ctx context.Context, id uint) (bool, error)
	ListFeatureFlags(ctx context.Context, filter FeatureFlagFilter) ([]*models.FeatureFlag, error)

	// Audit logs (append-only)
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
	ListAuditLogs(ctx context.Context, filter AuditLogFilter) ([]*models.AuditLog, error)

	// Compliance reports
	GetComplianceReport(ctx context.Context, id uint) (*models.ComplianceReport, error)
	CreateComplianceReport(ctx context.Context, report *models.ComplianceReport) error
	UpdateComplianceReport(ctx context.Context, id uint, patch *ComplianceReportPatch) (*models.ComplianceReport, error)
	ListComplianceReports(ctx context.Context, filter ComplianceReportFilter) ([]*models.ComplianceReport, error)

	// System metrics (write-once)
	CreateSystemMetric(ctx context.Context, metric *models.SystemMetric) error
	ListSystemMetrics(ctx context.Context, filter SystemMetricFilter) ([]*models.SystemMetric, error)

	// Produce market
	GetProduceMarket(ctx context.Context, id uint) (*models.ProduceMarket, error)
	CreateProduceMarket(ctx context.Context, entry *models.ProduceMarket) error
	UpdateProduceMarket(ctx context.Context, id uint, patch *ProduceMarketPatch) (*models.ProduceMarket, error)
	DeleteProduceMarket(ctx context.Context, id uint) (bool, error)
	ListProduceMarkets(ctx context.Context, filter ProduceMarketFilter) ([]*models.ProduceMarket, error)

	// Refresh tokens
	CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error
	GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, id uint) error
	RevokeRefreshTokenByHash(ctx context.Context, tokenHash string) error
	RevokeAllRefreshTokens(ctx context.Context, userID uint) error
	DeleteExpiredRefreshTokens(ctx context.Context) (int64, error)

	// Transaction runs fn against a Storage bound to a single transaction.
	// Mutations and their audit entries commit or roll back together.
	Transaction(ctx context.Context, fn func(Storage) error) error
}
