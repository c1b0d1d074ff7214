package roomRepo

import (
	"context"

	"hoteladmin/database/docstore"
	"hoteladmin/database/repository"
	"hoteladmin/models"
	"hoteladmin/utils"

	"go.uber.org/zap"
)

// RoomRepository gives typed access to the rooms collection.
type RoomRepository interface {
	GetAll(ctx context.Context) ([]models.Room, error)
	Create(ctx context.Context, draft models.RoomDraft) (string, error)
	Update(ctx context.Context, id string, draft models.RoomDraft) error
	Delete(ctx context.Context, id string) error
}

type docRoomRepo struct {
	store  docstore.Store
	logger *zap.Logger
}

func NewRoomRepo(store docstore.Store, logger *zap.Logger) RoomRepository {
	return &docRoomRepo{store: store, logger: logger}
}

func (r *docRoomRepo) GetAll(ctx context.Context) ([]models.Room, error) {
	docs, err := r.store.List(ctx, utils.RoomsCollection)
	if err != nil {
		return nil, err
	}
	rooms := make([]models.Room, 0, len(docs))
	for _, doc := range docs {
		var room models.Room
		if err := repository.Decode(doc.Fields, &room); err != nil {
			r.logger.Warn("Malformed room document", zap.String("id", doc.ID), zap.Error(err))
		}
		room.ID = doc.ID
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func (r *docRoomRepo) Create(ctx context.Context, draft models.RoomDraft) (string, error) {
	return r.store.Create(ctx, utils.RoomsCollection, draft.Fields())
}

func (r *docRoomRepo) Update(ctx context.Context, id string, draft models.RoomDraft) error {
	return r.store.Patch(ctx, utils.RoomsCollection, id, draft.Fields())
}

func (r *docRoomRepo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, utils.RoomsCollection, id)
}
