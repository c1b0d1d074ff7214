package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type homeView struct {
	baseView
	Rooms    int
	Guests   int
	Bookings int
}

func (hb *HandlerBundle) Home(c *gin.Context) {
	ctx := c.Request.Context()
	logger := getLogger(c)
	view := homeView{baseView: newBaseView(c, "Home")}

	if rooms, err := hb.Rooms.List(ctx); err == nil {
		view.Rooms = len(rooms)
	} else {
		logger.Warn("Home: room count unavailable", zap.Error(err))
		view.Error = userMessage(err)
	}
	if guests, err := hb.Guests.List(ctx); err == nil {
		view.Guests = len(guests)
	} else {
		logger.Warn("Home: guest count unavailable", zap.Error(err))
		view.Error = userMessage(err)
	}
	if err := hb.Bookings.LoadAll(ctx); err != nil {
		view.Error = userMessage(err)
	}
	view.Bookings = len(hb.Bookings.Records())

	render(c, http.StatusOK, "home.html", view)
}
