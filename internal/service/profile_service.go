package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/validation"
)

// ProfileService implements the caller-scoped profile operations. Profiles
// are only ever addressed through the authenticated subject, never by id.
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// UpdateProfileInput carries a partial profile update; nil pointers leave
// fields untouched.
type UpdateProfileInput struct {
	UserID    uint
	Bio       *string
	AvatarURL *string
}

// NewProfileService returns a new ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

func (s *ProfileService) GetMyProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

func (s *ProfileService) UpdateMyProfile(ctx context.Context, in UpdateProfileInput) (*models.Profile, error) {
	fields := map[string]any{}
	if in.Bio != nil {
		if err := validation.ValidateBio(*in.Bio); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		fields["bio"] = *in.Bio
	}
	if in.AvatarURL != nil {
		if err := validation.ValidateAvatarURL(*in.AvatarURL); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		fields["avatar_url"] = *in.AvatarURL
	}
	return s.profileRepo.UpdateFields(ctx, in.UserID, fields)
}
