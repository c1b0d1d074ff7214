package handlers

import (
	"errors"
	"net/http"

	"hoteladmin/models"
	"hoteladmin/services/room"
	"hoteladmin/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const roomsPath = "/rooms"

type roomsView struct {
	baseView
	EditID    string
	Draft     models.RoomDraft
	MaxImages int
	Rooms     []models.Room
}

func (hb *HandlerBundle) newRoomsView(c *gin.Context) roomsView {
	view := roomsView{baseView: newBaseView(c, "Rooms"), MaxImages: models.MaxRoomImages}
	rooms, err := hb.Rooms.List(c.Request.Context())
	if err != nil {
		getLogger(c).Warn("Rooms page: listing failed", zap.Error(err))
		view.Error = userMessage(err)
	}
	view.Rooms = rooms
	return view
}

// RoomsPage lists the catalog. With ?edit=<id> the form is filled from that room.
func (hb *HandlerBundle) RoomsPage(c *gin.Context) {
	view := hb.newRoomsView(c)
	if id := c.Query("edit"); id != "" {
		for _, r := range view.Rooms {
			if r.ID == id {
				view.EditID = id
				view.Draft = r.Draft()
				break
			}
		}
		if view.EditID == "" && view.Error == "" {
			view.Error = "The room was not found, it may have been deleted"
		}
	}
	render(c, http.StatusOK, "rooms.html", view)
}

func (hb *HandlerBundle) CreateRoom(c *gin.Context) {
	draft, uploads, ok := hb.bindRoom(c, "")
	if !ok {
		return
	}
	id, err := hb.Rooms.Create(c.Request.Context(), draft, uploads)
	if err != nil {
		hb.roomFormError(c, "", draft, err)
		return
	}
	getLogger(c).Info("Room created", zap.String("roomID", id))
	utils.RedirectWithMessage(c, roomsPath, utils.FlashNotice, "Room added")
}

func (hb *HandlerBundle) UpdateRoom(c *gin.Context) {
	id := c.Param("id")
	draft, uploads, ok := hb.bindRoom(c, id)
	if !ok {
		return
	}
	if err := hb.Rooms.Update(c.Request.Context(), id, draft, uploads); err != nil {
		hb.roomFormError(c, id, draft, err)
		return
	}
	utils.RedirectWithMessage(c, roomsPath, utils.FlashNotice, "Room updated")
}

func (hb *HandlerBundle) DeleteRoom(c *gin.Context) {
	if err := hb.Rooms.Delete(c.Request.Context(), c.Param("id")); err != nil {
		getLogger(c).Error("Room delete failed", zap.String("roomID", c.Param("id")), zap.Error(err))
		utils.RedirectWithMessage(c, roomsPath, utils.FlashError, userMessage(err))
		return
	}
	utils.RedirectWithMessage(c, roomsPath, utils.FlashNotice, "Room deleted")
}

func (hb *HandlerBundle) bindRoom(c *gin.Context, id string) (models.RoomDraft, []room.Upload, bool) {
	var draft models.RoomDraft
	if err := c.ShouldBind(&draft); err != nil {
		hb.roomFormError(c, id, draft, err)
		return draft, nil, false
	}
	files, err := formFiles(c, "uploads")
	if err != nil {
		hb.roomFormError(c, id, draft, err)
		return draft, nil, false
	}
	uploads := make([]room.Upload, 0, len(files))
	for _, f := range files {
		uploads = append(uploads, room.Upload{Name: f.Name, Data: f.Data})
	}
	return draft, uploads, true
}

// roomFormError shows the form again with the submitted values so nothing typed is lost.
func (hb *HandlerBundle) roomFormError(c *gin.Context, id string, draft models.RoomDraft, err error) {
	view := hb.newRoomsView(c)
	view.EditID = id
	view.Draft = draft
	view.Error = userMessage(err)

	status := http.StatusBadRequest
	var validationErrs room.ValidationErrors
	if !errors.As(err, &validationErrs) {
		getLogger(c).Error("Room save failed", zap.String("roomID", id), zap.Error(err))
		status = statusFor(err)
	}
	render(c, status, "rooms.html", view)
}
