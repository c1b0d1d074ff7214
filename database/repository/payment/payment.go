package paymentRepo

import (
	"context"

	"hoteladmin/database/docstore"
	"hoteladmin/database/repository"
	"hoteladmin/models"
	"hoteladmin/utils"

	"go.uber.org/zap"
)

// PaymentRepository gives typed access to the payments collection.
type PaymentRepository interface {
	GetAll(ctx context.Context) ([]models.BookingRecord, error)
	Patch(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

type docPaymentRepo struct {
	store  docstore.Store
	logger *zap.Logger
}

// NewPaymentRepo returns a PaymentRepository backed by the document store.
func NewPaymentRepo(store docstore.Store, logger *zap.Logger) PaymentRepository {
	return &docPaymentRepo{store: store, logger: logger}
}

// GetAll lists every booking record. A document that only partly decodes is kept
// with the fields that could be read, so it can still be inspected or deleted.
func (r *docPaymentRepo) GetAll(ctx context.Context) ([]models.BookingRecord, error) {
	docs, err := r.store.List(ctx, utils.PaymentsCollection)
	if err != nil {
		return nil, err
	}
	records := make([]models.BookingRecord, 0, len(docs))
	for _, doc := range docs {
		var rec models.BookingRecord
		if err := repository.Decode(doc.Fields, &rec); err != nil {
			r.logger.Warn("Malformed payment document", zap.String("id", doc.ID), zap.Error(err))
		}
		rec.ID = doc.ID
		records = append(records, rec)
	}
	return records, nil
}

func (r *docPaymentRepo) Patch(ctx context.Context, id string, fields map[string]any) error {
	return r.store.Patch(ctx, utils.PaymentsCollection, id, fields)
}

func (r *docPaymentRepo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, utils.PaymentsCollection, id)
}
