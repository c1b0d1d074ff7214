package guest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	guestRepo "hoteladmin/database/repository/guest"
	"hoteladmin/models"
	"hoteladmin/services/storage"

	"go.uber.org/zap"
)

type GuestService interface {
	List(ctx context.Context) ([]models.GuestProfile, error)
	Get(ctx context.Context, id string) (models.GuestProfile, error)
	Update(ctx context.Context, id string, draft models.GuestDraft, image *ImageUpload) error
	Delete(ctx context.Context, id string) error
}

// ImageUpload is a replacement profile picture.
type ImageUpload struct {
	Name string
	Data []byte
}

// ErrGuestNotFound is returned by Get for an unknown profile.
var ErrGuestNotFound = errors.New("guest profile not found")

type DefaultGuestService struct {
	repo   guestRepo.GuestRepository
	images storage.ImageStore
	logger *zap.Logger
}

func NewGuestService(repo guestRepo.GuestRepository, images storage.ImageStore, logger *zap.Logger) *DefaultGuestService {
	return &DefaultGuestService{repo: repo, images: images, logger: logger}
}

func (s *DefaultGuestService) List(ctx context.Context) ([]models.GuestProfile, error) {
	guests, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: failed to fetch guest profiles", zap.Error(err))
		return nil, fmt.Errorf("error fetching users: %w", err)
	}
	return guests, nil
}

func (s *DefaultGuestService) Get(ctx context.Context, id string) (models.GuestProfile, error) {
	guests, err := s.List(ctx)
	if err != nil {
		return models.GuestProfile{}, err
	}
	for _, g := range guests {
		if g.ID == id {
			return g, nil
		}
	}
	return models.GuestProfile{}, ErrGuestNotFound
}

// Update commits the draft as one partial update. A new image, if any, is
// stored first so a failed upload leaves the profile untouched.
func (s *DefaultGuestService) Update(ctx context.Context, id string, draft models.GuestDraft, image *ImageUpload) error {
	draft.Username = strings.TrimSpace(draft.Username)
	draft.Surname = strings.TrimSpace(draft.Surname)
	draft.Address = strings.TrimSpace(draft.Address)
	draft.ContactNumber = strings.TrimSpace(draft.ContactNumber)
	draft.Image = ""

	if image != nil && len(image.Data) > 0 {
		url, err := s.images.Save(ctx, image.Name, image.Data)
		if err != nil {
			s.logger.Warn("Update: failed to store profile image", zap.String("id", id), zap.Error(err))
			return fmt.Errorf("profile image: %w", err)
		}
		draft.Image = url
	}

	if err := s.repo.Update(ctx, id, draft); err != nil {
		s.logger.Error("Update: failed to update guest profile", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("error updating user: %w", err)
	}
	s.logger.Info("Guest profile updated", zap.String("id", id), zap.Bool("imageReplaced", draft.Image != ""))
	return nil
}

func (s *DefaultGuestService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Delete: failed to delete guest profile", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("error deleting user: %w", err)
	}
	s.logger.Info("Guest profile deleted", zap.String("id", id))
	return nil
}
