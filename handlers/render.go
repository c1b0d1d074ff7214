package handlers

import (
	"errors"
	"net/http"
	"strings"

	"hoteladmin/database/docstore"
	"hoteladmin/middleware"
	"hoteladmin/models"
	"hoteladmin/services/booking"
	"hoteladmin/services/guest"
	"hoteladmin/services/identity"
	"hoteladmin/services/room"
	"hoteladmin/services/storage"
	"hoteladmin/utils"

	"github.com/gin-gonic/gin"
)

// baseView is embedded by every page's view data.
type baseView struct {
	Title     string
	Principal *models.Principal
	Error     string
	Notice    string
}

func newBaseView(c *gin.Context, title string) baseView {
	view := baseView{
		Title:  title,
		Error:  strings.TrimSpace(c.Query(utils.FlashError)),
		Notice: strings.TrimSpace(c.Query(utils.FlashNotice)),
	}
	if p, ok := middleware.CurrentPrincipal(c); ok {
		view.Principal = &p
	}
	return view
}

func render(c *gin.Context, status int, page string, data any) {
	c.HTML(status, page, data)
}

// userMessage turns a service error into the text shown in a flash message.
func userMessage(err error) string {
	var lookupErr *booking.LookupError
	var validationErrs room.ValidationErrors
	var authErr *identity.AuthError
	switch {
	case errors.As(err, &lookupErr):
		return "That booking no longer exists, the list has been refreshed"
	case errors.As(err, &validationErrs):
		return validationErrs.Error()
	case errors.As(err, &authErr):
		return authErr.Message
	case errors.Is(err, booking.ErrInvalidDate),
		errors.Is(err, booking.ErrInvalidPrice),
		errors.Is(err, booking.ErrInvalidStatus),
		errors.Is(err, booking.ErrDateOrder),
		errors.Is(err, booking.ErrEmptyChange):
		return capitalize(rootCause(err))
	case errors.Is(err, storage.ErrNotImage), errors.Is(err, storage.ErrEmptyImage):
		return capitalize(err.Error())
	case errors.Is(err, docstore.ErrNotFound), errors.Is(err, guest.ErrGuestNotFound):
		return "The record was not found, it may have been deleted"
	}
	return "Something went wrong talking to the database, please try again"
}

// statusFor maps a service error onto an HTTP status for the JSON API.
func statusFor(err error) int {
	var lookupErr *booking.LookupError
	switch {
	case errors.As(err, &lookupErr), errors.Is(err, docstore.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrInvalidDate),
		errors.Is(err, booking.ErrInvalidPrice),
		errors.Is(err, booking.ErrInvalidStatus),
		errors.Is(err, booking.ErrDateOrder),
		errors.Is(err, booking.ErrEmptyChange):
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}

func rootCause(err error) string {
	for _, sentinel := range []error{booking.ErrInvalidDate, booking.ErrInvalidPrice, booking.ErrInvalidStatus, booking.ErrDateOrder, booking.ErrEmptyChange} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
