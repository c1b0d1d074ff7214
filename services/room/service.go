package room

import (
	"context"
	"fmt"

	roomRepo "hoteladmin/database/repository/room"
	"hoteladmin/models"
	"hoteladmin/services/storage"

	"go.uber.org/zap"
)

// Upload is an image file submitted with a room form.
type Upload struct {
	Name string
	Data []byte
}

type RoomService interface {
	List(ctx context.Context) ([]models.Room, error)
	Create(ctx context.Context, draft models.RoomDraft, uploads []Upload) (string, error)
	Update(ctx context.Context, id string, draft models.RoomDraft, uploads []Upload) error
	Delete(ctx context.Context, id string) error
}

type DefaultRoomService struct {
	repo      roomRepo.RoomRepository
	images    storage.ImageStore
	validator *RoomValidator
	logger    *zap.Logger
}

func NewRoomService(repo roomRepo.RoomRepository, images storage.ImageStore, logger *zap.Logger) *DefaultRoomService {
	return &DefaultRoomService{
		repo:      repo,
		images:    images,
		validator: NewRoomValidator(),
		logger:    logger,
	}
}

func (s *DefaultRoomService) List(ctx context.Context) ([]models.Room, error) {
	rooms, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: failed to fetch rooms", zap.Error(err))
		return nil, fmt.Errorf("error fetching rooms: %w", err)
	}
	return rooms, nil
}

func (s *DefaultRoomService) Create(ctx context.Context, draft models.RoomDraft, uploads []Upload) (string, error) {
	if err := s.prepare(ctx, &draft, uploads); err != nil {
		return "", err
	}
	id, err := s.repo.Create(ctx, draft)
	if err != nil {
		s.logger.Error("Create: failed to add room", zap.Error(err))
		return "", fmt.Errorf("error adding room: %w", err)
	}
	s.logger.Info("Room created", zap.String("id", id), zap.String("name", draft.Name))
	return id, nil
}

func (s *DefaultRoomService) Update(ctx context.Context, id string, draft models.RoomDraft, uploads []Upload) error {
	if err := s.prepare(ctx, &draft, uploads); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, id, draft); err != nil {
		s.logger.Error("Update: failed to update room", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("error updating room: %w", err)
	}
	s.logger.Info("Room updated", zap.String("id", id))
	return nil
}

func (s *DefaultRoomService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Delete: failed to delete room", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("error deleting room: %w", err)
	}
	s.logger.Info("Room deleted", zap.String("id", id))
	return nil
}

// prepare validates the draft, then stores the new images and appends their URLs.
// Nothing is uploaded for a draft that fails validation.
func (s *DefaultRoomService) prepare(ctx context.Context, draft *models.RoomDraft, uploads []Upload) error {
	normalize(draft)
	if err := s.validator.Validate(draft, len(uploads)); err != nil {
		s.logger.Debug("Room draft rejected", zap.Error(err))
		return err
	}
	for _, up := range uploads {
		url, err := s.images.Save(ctx, up.Name, up.Data)
		if err != nil {
			s.logger.Warn("Failed to store room image", zap.String("file", up.Name), zap.Error(err))
			return fmt.Errorf("image %q: %w", up.Name, err)
		}
		draft.Images = append(draft.Images, url)
	}
	return nil
}
