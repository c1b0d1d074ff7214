package handlers

import (
	"net/http"
	"strings"

	"hoteladmin/models"
	"hoteladmin/utils"

	"github.com/gin-gonic/gin"
)

const bookedPath = "/booked"

type bookedView struct {
	baseView
	Records []models.BookingRecord
}

// BookedPage re-reads the payments collection and renders the mirror. A failed
// read shows the previous mirror together with an error message.
func (hb *HandlerBundle) BookedPage(c *gin.Context) {
	view := bookedView{baseView: newBaseView(c, "Booked")}
	if err := hb.Bookings.LoadAll(c.Request.Context()); err != nil {
		view.Error = userMessage(err)
	}
	view.Records = hb.Bookings.Records()
	render(c, http.StatusOK, "booked.html", view)
}

func (hb *HandlerBundle) ChangeCheckIn(c *gin.Context) {
	err := hb.Bookings.ChangeCheckIn(c.Request.Context(), c.Param("id"), strings.TrimSpace(c.PostForm("date")))
	hb.afterBookingMutation(c, err, "Check-in date updated")
}

func (hb *HandlerBundle) ChangeCheckOut(c *gin.Context) {
	err := hb.Bookings.ChangeCheckOut(c.Request.Context(), c.Param("id"), strings.TrimSpace(c.PostForm("date")))
	hb.afterBookingMutation(c, err, "Check-out date updated")
}

func (hb *HandlerBundle) SetBookingStatus(c *gin.Context) {
	status := models.RoomStatus(strings.TrimSpace(c.PostForm("status")))
	err := hb.Bookings.SetStatus(c.Request.Context(), c.Param("id"), status)
	hb.afterBookingMutation(c, err, "Status set to "+string(status))
}

func (hb *HandlerBundle) DeleteBooking(c *gin.Context) {
	err := hb.Bookings.DeleteRecord(c.Request.Context(), c.Param("id"))
	hb.afterBookingMutation(c, err, "Booking deleted")
}

func (hb *HandlerBundle) afterBookingMutation(c *gin.Context, err error, notice string) {
	if err != nil {
		utils.RedirectWithMessage(c, bookedPath, utils.FlashError, userMessage(err))
		return
	}
	utils.RedirectWithMessage(c, bookedPath, utils.FlashNotice, notice)
}
