package domain

// Role represents a user role in the platform
type Role string

const (
	RoleFarmer        Role = "farmer"
	RoleVendor        Role = "vendor"
	RoleAgronomist    Role = "agronomist"
	RoleSupportAgent  Role = "support_agent"
	RoleRegionalAdmin Role = "regional_admin"
	RoleSuperAdmin    Role = "super_admin"
)

// AdminRoles are the roles allowed to use the back-office API
var AdminRoles = []string{
	string(RoleSupportAgent),
	string(RoleRegionalAdmin),
	string(RoleSuperAdmin),
}

// ValidRoles lists every assignable role
var ValidRoles = []string{
	string(RoleFarmer),
	string(RoleVendor),
	string(RoleAgronomist),
	string(RoleSupportAgent),
	string(RoleRegionalAdmin),
	string(RoleSuperAdmin),
}

// IsValidRole reports whether r is an assignable role
func IsValidRole(r string) bool {
	for _, v := range ValidRoles {
		if r == v {
			return true
		}
	}
	return false
}

// User statuses
const (
	UserStatusActive    = "active"
	UserStatusPending   = "pending"
	UserStatusSuspended = "suspended"
)

// Content types
const (
	ContentTypeMarketplace = "marketplace"
	ContentTypeGuide       = "guide"
	ContentTypeChat        = "chat"
)

// Content statuses (transitions only via the moderation operation)
const (
	ContentStatusPending  = "pending"
	ContentStatusApproved = "approved"
	ContentStatusRejected = "rejected"
)

// Feature flag scopes
const (
	FlagScopeGlobal = "global"
	FlagScopeRegion = "region"
	FlagScopeBeta   = "beta"
)

// Compliance report types
const (
	ReportTypeCropYield       = "crop_yield"
	ReportTypeFertilizerUsage = "fertilizer_usage"
	ReportTypeGDPR            = "gdpr"
)

// Compliance report statuses
const (
	ReportStatusGenerated     = "generated"
	ReportStatusPendingAction = "pending_action"
)

// Produce market statuses
const (
	MarketStatusRising  = "rising"
	MarketStatusFalling = "falling"
	MarketStatusStable  = "stable"
)

// Audit actions (fixed vocabulary)
const (
	ActionUserCreation         = "user_creation"
	ActionUserUpdate           = "user_update"
	ActionUserDeletion         = "user_deletion"
	ActionContentModeration    = "content_moderation"
	ActionFeatureFlagCreation  = "feature_flag_creation"
	ActionFeatureFlagUpdate    = "feature_flag_update"
	ActionReportGeneration     = "compliance_report_generation"
	ActionProduceMarketCreate  = "produce_market_creation"
	ActionProduceMarketUpdate  = "produce_market_update"
	ActionProduceMarketDelete  = "produce_market_deletion"
)
