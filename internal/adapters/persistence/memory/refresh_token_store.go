package memory

import (
	"context"
	"time"

	"agrihero-admin/internal/adapters/persistence/models"
	"agrihero-admin/internal/core/domain"
)

func cloneToken(t *models.RefreshToken) *models.RefreshToken {
	c := *t
	if t.RevokedAt != nil {
		revoked := *t.RevokedAt
		c.RevokedAt = &revoked
	}
	return &c
}

// CreateRefreshToken stores a new refresh token
func (s *Storage) CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokenCounter++
	token.ID = s.tokenCounter
	token.CreatedAt = time.Now()

	s.tokens[token.ID] = cloneToken(token)
	s.tokenIDs = append(s.tokenIDs, token.ID)
	return nil
}

// GetRefreshTokenByHash gets a refresh token by its hash
func (s *Storage) GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.tokenIDs {
		if s.tokens[id].TokenHash == tokenHash {
			return cloneToken(s.tokens[id]), nil
		}
	}
	return nil, domain.ErrNotFound
}

// RevokeRefreshToken revokes a refresh token by ID
func (s *Storage) RevokeRefreshToken(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok := s.tokens[id]
	if !ok {
		return domain.ErrNotFound
	}
	now := time.Now()
	token.RevokedAt = &now
	return nil
}

// RevokeRefreshTokenByHash revokes a refresh token by its hash
func (s *Storage) RevokeRefreshTokenByHash(ctx context.Context, tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for _, id := range s.tokenIDs {
		t := s.tokens[id]
		if t.TokenHash == tokenHash && t.RevokedAt == nil {
			t.RevokedAt = &now
		}
	}
	return nil
}

// RevokeAllRefreshTokens revokes every active token for a user
func (s *Storage) RevokeAllRefreshTokens(ctx context.Context, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for _, id := range s.tokenIDs {
		t := s.tokens[id]
		if t.UserID == userID && t.RevokedAt == nil {
			t.RevokedAt = &now
		}
	}
	return nil
}

// DeleteExpiredRefreshTokens prunes expired and revoked tokens
func (s *Storage) DeleteExpiredRefreshTokens(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var pruned int64
	now := time.Now()
	kept := s.tokenIDs[:0]
	for _, id := range s.tokenIDs {
		t := s.tokens[id]
		if t.ExpiresAt.Before(now) || t.RevokedAt != nil {
			delete(s.tokens, id)
			pruned++
			continue
		}
		kept = append(kept, id)
	}
	s.tokenIDs = kept
	return pruned, nil
}
