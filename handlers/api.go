package handlers

import (
	"net/http"

	"hoteladmin/models"
	"hoteladmin/services/booking"
	"hoteladmin/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingPatch is the JSON body of PATCH /api/bookings/:id. Fields left out
// are not touched. The body is validated as a whole and written in one update.
type BookingPatch struct {
	CheckInDate  *string            `json:"checkInDate"`
	CheckOutDate *string            `json:"checkOutDate"`
	RoomStatus   *models.RoomStatus `json:"roomStatus"`
}

func (hb *HandlerBundle) ListBookingsAPI(c *gin.Context) {
	if err := hb.Bookings.LoadAll(c.Request.Context()); err != nil {
		utils.JSONError(c, statusFor(err), userMessage(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": hb.Bookings.Records()})
}

func (hb *HandlerBundle) GetBookingAPI(c *gin.Context) {
	rec, ok := hb.Bookings.Record(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "booking not found", "")
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (hb *HandlerBundle) PatchBookingAPI(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var patch BookingPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if patch.CheckInDate == nil && patch.CheckOutDate == nil && patch.RoomStatus == nil {
		utils.JSONError(c, http.StatusBadRequest, "nothing to update", "")
		return
	}

	change := booking.Change{
		CheckInDate:  patch.CheckInDate,
		CheckOutDate: patch.CheckOutDate,
		RoomStatus:   patch.RoomStatus,
	}
	if err := hb.Bookings.UpdateRecord(c.Request.Context(), id, change); err != nil {
		logger.Info("Booking patch rejected", zap.String("bookingID", id), zap.Error(err))
		utils.JSONError(c, statusFor(err), userMessage(err), err.Error())
		return
	}

	rec, _ := hb.Bookings.Record(id)
	c.JSON(http.StatusOK, rec)
}

func (hb *HandlerBundle) DeleteBookingAPI(c *gin.Context) {
	if err := hb.Bookings.DeleteRecord(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, statusFor(err), userMessage(err), err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// Health reports the last snapshot taken by the health monitor.
func Health(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"healthy": status.Healthy(), "services": status.Services, "checkedAt": status.CheckedAt})
}
