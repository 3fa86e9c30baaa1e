package repositories

import (
	"context"
	"time"

	"agrihero-admin/internal/adapters/persistence/models"
)

// CreateRefreshToken stores a new refresh token
func (s *storage) CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	return translateErr(s.db.WithContext(ctx).Create(token).Error)
}

// GetRefreshTokenByHash gets a refresh token by its hash
func (s *storage) GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	err := s.db.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&token).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &token, nil
}

// RevokeRefreshToken revokes a refresh token by ID
func (s *storage) RevokeRefreshToken(ctx context.Context, id uint) error {
	now := time.Now()
	return s.db.WithContext(ctx).Model(&models.RefreshToken{}).
		Where("id = ?", id).Update("revoked_at", &now).Error
}

// RevokeRefreshTokenByHash revokes a refresh token by its hash
func (s *storage) RevokeRefreshTokenByHash(ctx context.Context, tokenHash string) error {
	now := time.Now()
	return s.db.WithContext(ctx).Model(&models.RefreshToken{}).
		Where("token_hash = ? AND revoked_at IS NULL", tokenHash).
		Update("revoked_at", &now).Error
}

// RevokeAllRefreshTokens revokes every active token for a user
func (s *storage) RevokeAllRefreshTokens(ctx context.Context, userID uint) error {
	now := time.Now()
	return s.db.WithContext(ctx).Model(&models.RefreshToken{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", &now).Error
}

// DeleteExpiredRefreshTokens prunes expired and revoked tokens
func (s *storage) DeleteExpiredRefreshTokens(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("expires_at < ? OR revoked_at IS NOT NULL", time.Now()).
		Delete(&models.RefreshToken{})
	return res.RowsAffected, res.Error
}
