package memory

import (
	"context"
	"time"

	"agrihero-admin/internal/adapters/persistence/models"
	"agrihero-admin/internal/adapters/persistence/repositories"
	"agrihero-admin/internal/core/domain"
)

func cloneUser(u *models.User) *models.User {
	c := *u
	return &c
}

// GetUser gets a user by ID
func (s *Storage) GetUser(ctx context.Context, id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneUser(user), nil
}

// GetUserByUsername gets a user by username
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.userIDs {
		if s.users[id].Username == username {
			return cloneUser(s.users[id]), nil
		}
	}
	return nil, domain.ErrNotFound
}

// CreateUser creates a new user, assigning the next identifier and
// stamping LastActive. Usernames are unique across the collection.
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.userIDs {
		if s.users[id].Username == user.Username {
			return domain.ErrDuplicateEntry
		}
	}

	s.userCounter++
	user.ID = s.userCounter
	user.LastActive = time.Now()

	s.users[user.ID] = cloneUser(user)
	s.userIDs = append(s.userIDs, user.ID)
	return nil
}

// UpdateUser performs a shallow merge of the patch onto the stored record
func (s *Storage) UpdateUser(ctx context.Context, id uint, patch *repositories.UserPatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	if patch.Username != nil {
		for _, other := range s.userIDs {
			if other != id && s.users[other].Username == *patch.Username {
				return nil, domain.ErrDuplicateEntry
			}
		}
		user.Username = *patch.Username
	}
	if patch.Password != nil {
		user.Password = *patch.Password
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.FullName != nil {
		user.FullName = *patch.FullName
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	if patch.Region != nil {
		user.Region = *patch.Region
	}
	if patch.Status != nil {
		user.Status = *patch.Status
	}
	return cloneUser(user), nil
}

// TouchUserLastActive stamps the user's lastActive to now
func (s *Storage) TouchUserLastActive(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	user.LastActive = time.Now()
	return nil
}

// DeleteUser removes a user, reporting whether a record existed
func (s *Storage) DeleteUser(ctx context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return false, nil
	}
	delete(s.users, id)
	s.userIDs = removeID(s.userIDs, id)
	return true, nil
}

// ListUsers lists users matching the filter, in insertion order
func (s *Storage) ListUsers(ctx context.Context, filter repositories.UserFilter) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.User, 0, len(s.userIDs))
	for _, id := range s.userIDs {
		u := s.users[id]
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if filter.Region != "" && u.Region != filter.Region {
			continue
		}
		if filter.Status != "" && u.Status != filter.Status {
			continue
		}
		result = append(result, cloneUser(u))
	}
	return result, nil
}
