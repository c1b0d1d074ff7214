package booking

import (
	"context"
	"time"

	"hoteladmin/models"
)

// BookingService manages the booking records in the payments collection and
// the in-memory mirror the dashboard renders from.
type BookingService interface {
	LoadAll(ctx context.Context) error
	ChangeCheckIn(ctx context.Context, id, date string) error
	ChangeCheckOut(ctx context.Context, id, date string) error
	SetStatus(ctx context.Context, id string, status models.RoomStatus) error
	UpdateRecord(ctx context.Context, id string, change Change) error
	DeleteRecord(ctx context.Context, id string) error
	Records() []models.BookingRecord
	Record(id string) (models.BookingRecord, bool)
	Run(ctx context.Context, interval time.Duration)
}

// Change is a partial edit of one booking record. Nil fields are left as they are.
type Change struct {
	CheckInDate  *string
	CheckOutDate *string
	RoomStatus   *models.RoomStatus
}

func (c Change) empty() bool {
	return c.CheckInDate == nil && c.CheckOutDate == nil && c.RoomStatus == nil
}
