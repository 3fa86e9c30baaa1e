package services

import (
	"context"
	"log"

	"agrihero-admin/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// CleanupService prunes expired and revoked refresh tokens on a daily
// schedule so the sessions table doesn't grow unbounded.
type CleanupService struct {
	store repositories.Storage
	cron  *cron.Cron
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(store repositories.Storage) *CleanupService {
	return &CleanupService{
		store: store,
		cron:  cron.New(),
	}
}

// Start schedules the daily prune (03:00)
func (s *CleanupService) Start() {
	s.cron.AddFunc("0 3 * * *", func() {
		s.PruneExpiredTokens(context.Background())
	})
	s.cron.Start()
	log.Println("🕒 Token cleanup scheduled (daily 03:00)")
}

// Stop stops the scheduler
func (s *CleanupService) Stop() {
	s.cron.Stop()
}

// PruneExpiredTokens removes refresh tokens past expiry or revoked
func (s *CleanupService) PruneExpiredTokens(ctx context.Context) {
	count, err := s.store.DeleteExpiredRefreshTokens(ctx)
	if err != nil {
		log.Printf("❌ Token cleanup failed: %v", err)
		return
	}
	if count > 0 {
		log.Printf("✅ Token cleanup removed %d stale tokens", count)
	}
}
