package repositories

import (
	"context"
	"time"

	"agrihero-admin/internal/adapters/persistence/models"
	"agrihero-admin/internal/core/domain"
)

// GetUser gets a user by ID
func (s *storage) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

// GetUserByUsername gets a user by username
func (s *storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

// CreateUser creates a new user. Usernames are unique across the collection.
func (s *storage) CreateUser(ctx context.Context, user *models.User) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", user.Username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrDuplicateEntry
	}
	return translateErr(s.db.WithContext(ctx).Create(user).Error)
}

// UpdateUser applies a partial update to a user
func (s *storage) UpdateUser(ctx context.Context, id uint, patch *UserPatch) (*models.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Username != nil {
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.User{}).
			Where("username = ? AND id <> ?", *patch.Username, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, domain.ErrDuplicateEntry
		}
		updates["username"] = *patch.Username
	}
	if patch.Password != nil {
		updates["password"] = *patch.Password
	}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	if patch.FullName != nil {
		updates["full_name"] = *patch.FullName
	}
	if patch.Role != nil {
		updates["role"] = *patch.Role
	}
	if patch.Region != nil {
		updates["region"] = *patch.Region
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(user).Updates(updates).Error; err != nil {
			return nil, translateErr(err)
		}
	}
	return user, nil
}

// TouchUserLastActive stamps the user's lastActive to now
func (s *storage) TouchUserLastActive(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).Update("last_active", time.Now())
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteUser removes a user, reporting whether a record existed
func (s *storage) DeleteUser(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.User{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListUsers lists users matching the filter, in insertion order
func (s *storage) ListUsers(ctx context.Context, filter UserFilter) ([]*models.User, error) {
	q := s.db.WithContext(ctx).Model(&models.User{})
	if filter.Role != "" {
		q = q.Where("role = ?", filter.Role)
	}
	if filter.Region != "" {
		q = q.Where("region = ?", filter.Region)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var users []*models.User
	if err := q.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
