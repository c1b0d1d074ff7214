package handlers

import (
	"context"
	"time"

	"hoteladmin/models"
	"hoteladmin/services/booking"
	"hoteladmin/services/guest"
	"hoteladmin/services/identity"
	"hoteladmin/services/room"
)

// SessionGate is the part of the session gate used by the auth pages.
type SessionGate interface {
	SignIn(ctx context.Context, email, password string) (identity.Session, error)
	SignOut(ctx context.Context, token string) error
	SendPasswordReset(ctx context.Context, email string) error
	Resolve(ctx context.Context, token string) (models.Principal, error)
}

// CookieConfig describes the staff session cookie.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// HandlerBundle groups the dashboard's page and API handlers with the
// services they drive.
type HandlerBundle struct {
	Gate     SessionGate
	Bookings booking.BookingService
	Rooms    room.RoomService
	Guests   guest.GuestService
	Cookie   CookieConfig
}

func NewHandlerBundle(gate SessionGate, bookings booking.BookingService, rooms room.RoomService, guests guest.GuestService, cookie CookieConfig) *HandlerBundle {
	return &HandlerBundle{
		Gate:     gate,
		Bookings: bookings,
		Rooms:    rooms,
		Guests:   guests,
		Cookie:   cookie,
	}
}
