package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rohits-web03/resumehub/internal/apperr"
	"github.com/rohits-web03/resumehub/internal/models"
	"github.com/rohits-web03/resumehub/internal/repositories"
)

type ProfileService struct {
	profiles repositories.ProfileRepository
	now      func() time.Time
}

func NewProfileService(profiles repositories.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles, now: time.Now}
}

// StoreProfile extracts the name and email from fileContent and upserts the
// profile keyed by their hash.
//
// The email lookup and the upsert are separate calls, so two concurrent
// stores of a new email under different names can both pass the lookup.
// The unique email index then rejects the loser with DUPLICATE_EMAIL.
func (s *ProfileService) StoreProfile(ctx context.Context, fileName, fileContent string) (string, error) {
	ids := ExtractIdentifiers(fileContent)
	if ids.Name == "" || ids.Email == "" {
		return "", apperr.ErrMissingIdentifiers
	}

	profileID := ProfileID(ids.Name, ids.Email)

	existing, err := s.profiles.FindProfileByEmail(ctx, ids.Email)
	switch {
	case err == nil:
		if existing.ID != profileID {
			return "", duplicateEmail(ids.Email, nil)
		}
	case !errors.Is(err, repositories.ErrNotFound):
		return "", apperr.Wrap(apperr.CodeInternal, "failed to look up profile", err)
	}

	now := s.now()
	profile := models.Profile{
		ID:          profileID,
		Name:        ids.Name,
		Email:       ids.Email,
		FileName:    fileName,
		FileContent: fileContent,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.profiles.UpsertProfile(ctx, profile); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return "", duplicateEmail(ids.Email, err)
		}
		return "", apperr.Wrap(apperr.CodeInternal, "failed to store profile", err)
	}
	return profileID, nil
}

func duplicateEmail(email string, cause error) error {
	msg := fmt.Sprintf("Email %s already exists under a different profile.", email)
	return apperr.Wrap(apperr.CodeDuplicateEmail, msg, cause)
}

func (s *ProfileService) EnsureIndexes(ctx context.Context) error {
	return s.profiles.EnsureProfileIndexes(ctx)
}

func (s *ProfileService) List(ctx context.Context) ([]models.Profile, error) {
	return s.profiles.ListProfiles(ctx)
}
