// Package memory provides an in-memory Storage implementation used in
// development mode and in tests. Collections are mutex-guarded maps with
// insertion-order side lists; identifiers are monotonically increasing and
// never reused. Filtering is a full linear scan.
package memory

import (
	"context"
	"sync"

	"agrihero-admin/internal/adapters/persistence/models"
	"agrihero-admin/internal/adapters/persistence/repositories"
)

// Storage is the in-memory store
type Storage struct {
	mu sync.RWMutex

	users   map[uint]*models.User
	userIDs []uint

	contents   map[uint]*models.Content
	contentIDs []uint

	flags   map[uint]*models.FeatureFlag
	flagIDs []uint

	auditLogs   map[uint]*models.AuditLog
	auditLogIDs []uint

	reports   map[uint]*models.ComplianceReport
	reportIDs []uint

	metrics   map[uint]*models.SystemMetric
	metricIDs []uint

	markets   map[uint]*models.ProduceMarket
	marketIDs []uint

	tokens   map[uint]*models.RefreshToken
	tokenIDs []uint

	userCounter   uint
	contentCounter uint
	flagCounter   uint
	auditCounter  uint
	reportCounter uint
	metricCounter uint
	marketCounter uint
	tokenCounter  uint
}

// New creates an empty in-memory store
func New() *Storage {
	s := &Storage{}
	s.reset()
	return s
}

// Reset clears all collections and restarts identifier counters.
// Intended for test teardown.
func (s *Storage) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Storage) reset() {
	s.users = make(map[uint]*models.User)
	s.userIDs = nil
	s.contents = make(map[uint]*models.Content)
	s.contentIDs = nil
	s.flags = make(map[uint]*models.FeatureFlag)
	s.flagIDs = nil
	s.auditLogs = make(map[uint]*models.AuditLog)
	s.auditLogIDs = nil
	s.reports = make(map[uint]*models.ComplianceReport)
	s.reportIDs = nil
	s.metrics = make(map[uint]*models.SystemMetric)
	s.metricIDs = nil
	s.markets = make(map[uint]*models.ProduceMarket)
	s.marketIDs = nil
	s.tokens = make(map[uint]*models.RefreshToken)
	s.tokenIDs = nil

	s.userCounter = 0
	s.contentCounter = 0
	s.flagCounter = 0
	s.auditCounter = 0
	s.reportCounter = 0
	s.metricCounter = 0
	s.marketCounter = 0
	s.tokenCounter = 0
}

// Transaction runs fn against the store. The in-memory implementation has
// no rollback; the closure's operations apply as they execute. The
// relational implementation is the one that makes mutation plus audit
// atomic.
func (s *Storage) Transaction(ctx context.Context, fn func(repositories.Storage) error) error {
	return fn(s)
}

func removeID(ids []uint, id uint) []uint {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
