package services

import (
	"context"
	"errors"
	"log"

	"agrihero-admin/internal/adapters/persistence/models"
	"agrihero-admin/internal/adapters/persistence/repositories"
	"agrihero-admin/internal/core/domain"
	"agrihero-admin/internal/pkg/password"
)

// User service errors
var (
	ErrUsernameTaken    = errors.New("username already exists")
	ErrInvalidRole      = errors.New("invalid role")
	ErrCannotDeleteSelf = errors.New("cannot delete your own account")
)

// UserService handles user management business logic
type UserService struct {
	store repositories.Storage
}

// NewUserService creates a new user service
func NewUserService(store repositories.Storage) *UserService {
	return &UserService{store: store}
}

// CreateUserInput represents create user input
type CreateUserInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName" validate:"required"`
	Role     string `json:"role" validate:"required"`
	Region   string `json:"region"`
	Status   string `json:"status" validate:"omitempty,oneof=active pending suspended"`
}

// UpdateUserInput represents partial user update input
type UpdateUserInput struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Email    *string `json:"email" validate:"omitempty,email"`
	FullName *string `json:"fullName"`
	Role     *string `json:"role"`
	Region   *string `json:"region"`
	Status   *string `json:"status" validate:"omitempty,oneof=active pending suspended"`
}

// CreateUser creates a user and records the audit entry atomically
func (s *UserService) CreateUser(ctx context.Context, adminID uint, input *CreateUserInput) (*models.User, error) {
	if !domain.IsValidRole(input.Role) {
		return nil, ErrInvalidRole
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.UserStatusActive
	}

	user := &models.User{
		Username: input.Username,
		Password: hashed,
		Email:    input.Email,
		FullName: input.FullName,
		Role:     input.Role,
		Region:   input.Region,
		Status:   status,
	}

	err = s.store.Transaction(ctx, func(tx repositories.Storage) error {
		if err := tx.CreateUser(ctx, user); err != nil {
			return err
		}
		return tx.CreateAuditLog(ctx, &models.AuditLog{
			AdminID: &adminID,
			Action:  domain.ActionUserCreation,
			Metadata: models.JSONMap{
				"userId":   user.ID,
				"userRole": user.Role,
			},
		})
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	log.Printf("✅ User created: %s (role: %s)", user.Username, user.Role)
	return user, nil
}

// GetUser gets a user by ID
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.store.GetUser(ctx, id)
}

// ListUsers lists users matching the filter
func (s *UserService) ListUsers(ctx context.Context, filter repositories.UserFilter) ([]*models.User, error) {
	return s.store.ListUsers(ctx, filter)
}

// UpdateUser applies a partial update and records the audit entry atomically
func (s *UserService) UpdateUser(ctx context.Context, adminID, id uint, input *UpdateUserInput) (*models.User, error) {
	if input.Role != nil && !domain.IsValidRole(*input.Role) {
		return nil, ErrInvalidRole
	}

	patch := &repositories.UserPatch{
		Username: input.Username,
		Email:    input.Email,
		FullName: input.FullName,
		Role:     input.Role,
		Region:   input.Region,
		Status:   input.Status,
	}
	if input.Password != nil {
		hashed, err := password.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		patch.Password = &hashed
	}

	updatedFields := []string{}
	if input.Username != nil {
		updatedFields = append(updatedFields, "username")
	}
	if input.Password != nil {
		updatedFields = append(updatedFields, "password")
	}
	if input.Email != nil {
		updatedFields = append(updatedFields, "email")
	}
	if input.FullName != nil {
		updatedFields = append(updatedFields, "fullName")
	}
	if input.Role != nil {
		updatedFields = append(updatedFields, "role")
	}
	if input.Region != nil {
		updatedFields = append(updatedFields, "region")
	}
	if input.Status != nil {
		updatedFields = append(updatedFields, "status")
	}

	var user *models.User
	err := s.store.Transaction(ctx, func(tx repositories.Storage) error {
		var txErr error
		user, txErr = tx.UpdateUser(ctx, id, patch)
		if txErr != nil {
			return txErr
		}
		return tx.CreateAuditLog(ctx, &models.AuditLog{
			AdminID: &adminID,
			Action:  domain.ActionUserUpdate,
			Metadata: models.JSONMap{
				"userId":  id,
				"updates": updatedFields,
			},
		})
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return user, nil
}

// DeleteUser removes a user and records the audit entry atomically
func (s *UserService) DeleteUser(ctx context.Context, adminID, id uint) error {
	if id == adminID {
		return ErrCannotDeleteSelf
	}

	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return err
	}

	err = s.store.Transaction(ctx, func(tx repositories.Storage) error {
		ok, txErr := tx.DeleteUser(ctx, id)
		if txErr != nil {
			return txErr
		}
		if !ok {
			return domain.ErrNotFound
		}
		return tx.CreateAuditLog(ctx, &models.AuditLog{
			AdminID: &adminID,
			Action:  domain.ActionUserDeletion,
			Metadata: models.JSONMap{
				"userId":    id,
				"userRole":  user.Role,
				"userEmail": user.Email,
			},
		})
	})
	if err != nil {
		return err
	}

	log.Printf("✅ User deleted: %s", user.Username)
	return nil
}
