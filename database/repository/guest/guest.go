package guestRepo

import (
	"context"

	"hoteladmin/database/docstore"
	"hoteladmin/database/repository"
	"hoteladmin/models"
	"hoteladmin/utils"

	"go.uber.org/zap"
)

// GuestRepository gives typed access to the users collection.
type GuestRepository interface {
	GetAll(ctx context.Context) ([]models.GuestProfile, error)
	Update(ctx context.Context, id string, draft models.GuestDraft) error
	Delete(ctx context.Context, id string) error
}

type docGuestRepo struct {
	store  docstore.Store
	logger *zap.Logger
}

func NewGuestRepo(store docstore.Store, logger *zap.Logger) GuestRepository {
	return &docGuestRepo{store: store, logger: logger}
}

func (r *docGuestRepo) GetAll(ctx context.Context) ([]models.GuestProfile, error) {
	docs, err := r.store.List(ctx, utils.UsersCollection)
	if err != nil {
		return nil, err
	}
	guests := make([]models.GuestProfile, 0, len(docs))
	for _, doc := range docs {
		var g models.GuestProfile
		if err := repository.Decode(doc.Fields, &g); err != nil {
			r.logger.Warn("Malformed user document", zap.String("id", doc.ID), zap.Error(err))
		}
		g.ID = doc.ID
		guests = append(guests, g)
	}
	return guests, nil
}

func (r *docGuestRepo) Update(ctx context.Context, id string, draft models.GuestDraft) error {
	return r.store.Patch(ctx, utils.UsersCollection, id, draft.Fields())
}

func (r *docGuestRepo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, utils.UsersCollection, id)
}
