package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/validation"
)

// UserService implements admin-facing user management.
type UserService struct {
	userRepo repository.UserRepository
}

// UpdateUserInput carries an admin user update. Username is required by the
// wire contract; Role is optional.
type UpdateUserInput struct {
	UserID   uint
	Username string
	Role     *string
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) UpdateUser(ctx context.Context, in UpdateUserInput) (*models.User, error) {
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	fields := map[string]any{"username": in.Username}
	if in.Role != nil {
		if err := validation.ValidateRole(*in.Role); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		fields["role"] = *in.Role
	}

	return s.userRepo.UpdateFields(ctx, in.UserID, fields)
}

// DeleteUser removes the account and its profile. Authored posts and
// comments survive with dangling author references.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	return s.userRepo.Delete(ctx, id)
}
