package handlers

import (
	"net/http"
	"strings"

	"hoteladmin/models"
	"hoteladmin/services/guest"
	"hoteladmin/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const usersPath = "/users"

type usersView struct {
	baseView
	Guests []models.GuestProfile
}

type userEditView struct {
	baseView
	Guest models.GuestProfile
	Draft models.GuestDraft
}

func (hb *HandlerBundle) UsersPage(c *gin.Context) {
	view := usersView{baseView: newBaseView(c, "Users")}
	guests, err := hb.Guests.List(c.Request.Context())
	if err != nil {
		getLogger(c).Warn("Users page: listing failed", zap.Error(err))
		view.Error = userMessage(err)
	}
	view.Guests = guests
	render(c, http.StatusOK, "users.html", view)
}

func (hb *HandlerBundle) EditUserPage(c *gin.Context) {
	g, err := hb.Guests.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RedirectWithMessage(c, usersPath, utils.FlashError, userMessage(err))
		return
	}
	render(c, http.StatusOK, "user_edit.html", userEditView{
		baseView: newBaseView(c, "Edit user"),
		Guest:    g,
		Draft:    g.Draft(),
	})
}

func (hb *HandlerBundle) UpdateUser(c *gin.Context) {
	id := c.Param("id")
	editPath := usersPath + "/" + id + "/edit"

	var draft models.GuestDraft
	if err := c.ShouldBind(&draft); err != nil {
		utils.RedirectWithMessage(c, editPath, utils.FlashError, "The form could not be read")
		return
	}
	files, err := formFiles(c, "image")
	if err != nil {
		utils.RedirectWithMessage(c, editPath, utils.FlashError, capitalize(err.Error()))
		return
	}
	var image *guest.ImageUpload
	if len(files) > 0 {
		image = &guest.ImageUpload{Name: files[0].Name, Data: files[0].Data}
	}

	if err := hb.Guests.Update(c.Request.Context(), id, draft, image); err != nil {
		getLogger(c).Error("User update failed", zap.String("userID", id), zap.Error(err))
		utils.RedirectWithMessage(c, editPath, utils.FlashError, userMessage(err))
		return
	}
	utils.RedirectWithMessage(c, usersPath, utils.FlashNotice, "User "+strings.TrimSpace(draft.Username)+" updated")
}

func (hb *HandlerBundle) DeleteUser(c *gin.Context) {
	if err := hb.Guests.Delete(c.Request.Context(), c.Param("id")); err != nil {
		getLogger(c).Error("User delete failed", zap.String("userID", c.Param("id")), zap.Error(err))
		utils.RedirectWithMessage(c, usersPath, utils.FlashError, userMessage(err))
		return
	}
	utils.RedirectWithMessage(c, usersPath, utils.FlashNotice, "User deleted")
}
