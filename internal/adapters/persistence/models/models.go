package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// StringList stores a list of region names as a JSON column
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
	return json.Unmarshal(b, l)
}

// Overlaps reports whether l and other share at least one element
func (l StringList) Overlaps(other []string) bool {
	for _, a := range l {
		for _, b := range other {
			if a == b {
				return true
			}
		}
	}
	return false
}

// JSONMap stores free-form audit metadata as a JSON column
type JSONMap map[string]interface{}

// Value implements driver.Valuer
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		m = JSONMap{}
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONMap{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into JSONMap", value)
	}
	return json.Unmarshal(b, m)
}

// User represents users table
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Username   string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Password   string    `gorm:"size:255;not null" json:"-"`
	Email      string    `gorm:"size:100;not null" json:"email"`
	FullName   string    `gorm:"size:100;not null" json:"fullName"`
	Role       string    `gorm:"size:20;not null;default:'farmer'" json:"role"`
	Region     string    `gorm:"size:50" json:"region"`
	Status     string    `gorm:"size:20;not null;default:'active'" json:"status"`
	LastActive time.Time `gorm:"autoCreateTime" json:"lastActive"`
}

func (User) TableName() string {
	return "users"
}

// Content represents contents table
type Content struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:200;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Type         string    `gorm:"size:20;not null" json:"type"`
	Status       string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	OwnerID      uint      `gorm:"not null;index" json:"ownerId"`
	Reported     bool      `gorm:"default:false" json:"reported"`
	ReportReason string    `gorm:"type:text" json:"reportReason"`
	Region       string    `gorm:"size:50" json:"region"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Content) TableName() string {
	return "contents"
}

// FeatureFlag represents feature_flags table
type FeatureFlag struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Enabled     bool       `gorm:"default:true" json:"enabled"`
	Scope       string     `gorm:"size:20;default:'global'" json:"scope"`
	Regions     StringList `gorm:"type:json" json:"regions"`
	LastUpdated time.Time  `gorm:"autoUpdateTime" json:"lastUpdated"`
	UpdatedBy   uint       `json:"updatedBy"`
}

func (FeatureFlag) TableName() string {
	return "feature_flags"
}

// AuditLog represents audit_logs table (append-only, never updated or deleted)
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AdminID   *uint     `gorm:"index" json:"adminId"`
	Action    string    `gorm:"size:50;not null;index" json:"action"`
	Metadata  JSONMap   `gorm:"type:json" json:"metadata"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// ComplianceReport represents compliance_reports table
type ComplianceReport struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Title          string    `gorm:"size:200;not null" json:"title"`
	Description    string    `gorm:"type:text" json:"description"`
	Type           string    `gorm:"size:30;not null" json:"type"`
	Frequency      string    `gorm:"size:20;not null" json:"frequency"`
	LastGenerated  time.Time `gorm:"autoCreateTime" json:"lastGenerated"`
	Status         string    `gorm:"size:30;not null;default:'generated'" json:"status"`
	PendingActions int       `gorm:"default:0" json:"pendingActions"`
	Region         string    `gorm:"size:50" json:"region"`
}

func (ComplianceReport) TableName() string {
	return "compliance_reports"
}

// SystemMetric represents system_metrics table (write-once snapshot rows)
type SystemMetric struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Value     string    `gorm:"size:50;not null" json:"value"`
	Type      string    `gorm:"size:20;not null;index" json:"type"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

func (SystemMetric) TableName() string {
	return "system_metrics"
}

// ProduceMarket represents produce_market table.
// Price deltas and status are computed by the caller before submission.
type ProduceMarket struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ProduceName   string    `gorm:"size:100;not null" json:"produceName"`
	Category      string    `gorm:"size:50;not null" json:"category"`
	Price         string    `gorm:"size:20;not null" json:"price"`
	PreviousPrice string    `gorm:"size:20;not null" json:"previousPrice"`
	Change        string    `gorm:"size:20;not null" json:"change"`
	PercentChange string    `gorm:"size:20;not null" json:"percentChange"`
	Region        string    `gorm:"size:50;not null" json:"region"`
	Date          string    `gorm:"size:20;not null" json:"date"`
	Source        string    `gorm:"size:100;not null" json:"source"`
	Status        string    `gorm:"size:20;not null" json:"status"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (ProduceMarket) TableName() string {
	return "produce_market"
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&Content{},
		&FeatureFlag{},
		&AuditLog{},
		&ComplianceReport{},
		&SystemMetric{},
		&ProduceMarket{},
	)
}
