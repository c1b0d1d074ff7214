package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	paymentRepo "hoteladmin/database/repository/payment"
	"hoteladmin/models"

	"go.uber.org/zap"
)

// Manager is the default BookingService. It keeps a mirror of the last
// successful read of the payments collection and replaces it wholesale after
// every successful mutation, or patches it in place when that read fails.
type Manager struct {
	repo            paymentRepo.PaymentRepository
	logger          *zap.Logger
	strictDateOrder bool

	mu      sync.RWMutex
	records []models.BookingRecord
}

type Option func(*Manager)

// WithStrictDateOrder rejects edits that would put check-out before check-in.
func WithStrictDateOrder(strict bool) Option {
	return func(m *Manager) {
		m.strictDateOrder = strict
	}
}

func NewManager(repo paymentRepo.PaymentRepository, logger *zap.Logger, opts ...Option) *Manager {
	m := &Manager{repo: repo, logger: logger}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// LoadAll re-reads every booking record. On failure the previous mirror is kept.
func (m *Manager) LoadAll(ctx context.Context) error {
	records, err := m.repo.GetAll(ctx)
	if err != nil {
		m.logger.Error("LoadAll: failed to fetch booking records", zap.Error(err))
		return err
	}

	m.mu.Lock()
	m.records = records
	m.mu.Unlock()

	m.logger.Debug("LoadAll: booking records refreshed", zap.Int("count", len(records)))
	return nil
}

func (m *Manager) ChangeCheckIn(ctx context.Context, id, date string) error {
	return m.UpdateRecord(ctx, id, Change{CheckInDate: &date})
}

func (m *Manager) ChangeCheckOut(ctx context.Context, id, date string) error {
	return m.UpdateRecord(ctx, id, Change{CheckOutDate: &date})
}

// SetStatus records an admin decision. Any record may move to either status
// any number of times.
func (m *Manager) SetStatus(ctx context.Context, id string, status models.RoomStatus) error {
	return m.UpdateRecord(ctx, id, Change{RoomStatus: &status})
}

// UpdateRecord validates the whole change before anything is written, then
// stores it as one partial update. Date edits carry the recomputed totalPrice.
func (m *Manager) UpdateRecord(ctx context.Context, id string, change Change) error {
	logger := m.logger.With(zap.String("id", id))

	fields, err := m.plan(id, change)
	if err != nil {
		logger.Warn("UpdateRecord: rejected change", zap.Error(err))
		return err
	}

	if err := m.repo.Patch(ctx, id, fields); err != nil {
		logger.Error("UpdateRecord: failed to update booking", zap.Error(err))
		return err
	}

	logger.Info("Booking updated", zap.Any("fields", fields))
	m.resync(ctx, id, fields)
	return nil
}

// plan turns a change into the fields to write. The date that is not being
// edited is taken from the mirror.
func (m *Manager) plan(id string, change Change) (map[string]any, error) {
	if change.empty() {
		return nil, ErrEmptyChange
	}

	fields := make(map[string]any, 4)
	if status := change.RoomStatus; status != nil {
		if !status.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *status)
		}
		fields[models.FieldRoomStatus] = string(*status)
	}
	if change.CheckInDate == nil && change.CheckOutDate == nil {
		return fields, nil
	}

	rec, ok := m.Record(id)
	if !ok {
		return nil, &LookupError{ID: id}
	}

	checkIn, checkOut := rec.CheckInDate, rec.CheckOutDate
	if date := change.CheckInDate; date != nil {
		if _, err := ParseDate(*date); err != nil {
			return nil, err
		}
		checkIn = *date
		fields[models.FieldCheckInDate] = *date
	}
	if date := change.CheckOutDate; date != nil {
		if _, err := ParseDate(*date); err != nil {
			return nil, err
		}
		checkOut = *date
		fields[models.FieldCheckOutDate] = *date
	}

	// A stored date that does not parse cannot price the stay. The edit is
	// still written so the record can be repaired one date at a time.
	if !validDate(checkIn) || !validDate(checkOut) {
		m.logger.Warn("plan: total price left unchanged, stored date unusable",
			zap.String("id", id), zap.String("checkIn", checkIn), zap.String("checkOut", checkOut))
		return fields, nil
	}

	if m.strictDateOrder {
		if err := checkOrder(checkIn, checkOut); err != nil {
			return nil, err
		}
	}

	total, err := TotalPrice(checkIn, checkOut, rec.Room.Price)
	if err != nil {
		return nil, err
	}
	fields[models.FieldTotalPrice] = total
	return fields, nil
}

func validDate(value string) bool {
	_, err := ParseDate(value)
	return err == nil
}

func checkOrder(checkIn, checkOut string) error {
	in, err := ParseDate(checkIn)
	if err != nil {
		return err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return err
	}
	if out.Before(in) {
		return fmt.Errorf("%w: %s < %s", ErrDateOrder, checkOut, checkIn)
	}
	return nil
}

func (m *Manager) DeleteRecord(ctx context.Context, id string) error {
	if err := m.repo.Delete(ctx, id); err != nil {
		m.logger.Error("DeleteRecord: failed to delete booking", zap.String("id", id), zap.Error(err))
		return err
	}

	m.logger.Info("Booking deleted", zap.String("id", id))
	m.resync(ctx, id, nil)
	return nil
}

// resync refreshes the mirror after a successful mutation. If the re-read
// fails, the written fields are applied to the mirror directly so the next
// edit prices against what the store now holds. Nil fields mean the record
// was deleted.
func (m *Manager) resync(ctx context.Context, id string, fields map[string]any) {
	if err := m.LoadAll(ctx); err == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	records := make([]models.BookingRecord, 0, len(m.records))
	for _, rec := range m.records {
		if rec.ID == id {
			if fields == nil {
				continue
			}
			rec = applyFields(rec, fields)
		}
		records = append(records, rec)
	}
	m.records = records
	m.logger.Warn("resync: store unavailable, mirror patched locally", zap.String("id", id))
}

func applyFields(rec models.BookingRecord, fields map[string]any) models.BookingRecord {
	if v, ok := fields[models.FieldCheckInDate].(string); ok {
		rec.CheckInDate = v
	}
	if v, ok := fields[models.FieldCheckOutDate].(string); ok {
		rec.CheckOutDate = v
	}
	if v, ok := fields[models.FieldTotalPrice].(float64); ok {
		rec.TotalPrice = v
	}
	if v, ok := fields[models.FieldRoomStatus].(string); ok {
		rec.RoomStatus = models.RoomStatus(v)
	}
	return rec
}

// Records returns a copy of the mirror in store order.
func (m *Manager) Records() []models.BookingRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.BookingRecord, len(m.records))
	copy(out, m.records)
	return out
}

func (m *Manager) Record(id string) (models.BookingRecord, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, rec := range m.records {
		if rec.ID == id {
			return rec, true
		}
	}
	return models.BookingRecord{}, false
}

// Run re-reads the collection every interval until ctx is cancelled, so edits
// made by other writers show up without a user action. A zero interval disables it.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("Booking reconciliation stopped")
			return
		case <-ticker.C:
			m.logger.Debug("Running booking reconciliation")
			_ = m.LoadAll(ctx)
		}
	}
}
