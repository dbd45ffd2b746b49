package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/estiakahmed98/islami-dawa-production-sub001/database"
	"github.com/estiakahmed98/islami-dawa-production-sub001/models"
)

type NotificationHandler struct {
	log *zap.Logger
}

func NewNotificationHandler(log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{log: log}
}

// GET /api/notification?unread=true
func (h *NotificationHandler) List(c echo.Context) error {
	tx := database.DB.Where("recipient = ?", claimEmail(c))
	if c.QueryParam("unread") == "true" {
		tx = tx.Where("read = ?", false)
	}
	var rows []models.Notification
	if err := tx.Order("created_at DESC, id DESC").Limit(100).Find(&rows).Error; err != nil {
		return internalError(c, h.log, "list notifications", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": rows})
}

type notificationCreateReq struct {
	Recipient string `json:"recipient" validate:"required,email"`
	Message   string `json:"message" validate:"required"`
}

// POST /api/notification
//
// Admins push announcements to users in their scope.
func (h *NotificationHandler) Create(c echo.Context) error {
	var req notificationCreateReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	recipient := strings.ToLower(strings.TrimSpace(req.Recipient))

	viewer, err := loadViewer(c)
	if err != nil {
		return internalError(c, h.log, "load viewer", err)
	}
	emails, _, err := scopedEmails(viewer)
	if err != nil {
		return internalError(c, h.log, "resolve scope", err)
	}
	if !inScope(emails, recipient) {
		return c.JSON(http.StatusForbidden, map[string]any{"error": "OUT_OF_SCOPE"})
	}

	rec := models.Notification{Recipient: recipient, Message: strings.TrimSpace(req.Message)}
	if err := database.DB.Create(&rec).Error; err != nil {
		return internalError(c, h.log, "create notification", err)
	}
	return c.JSON(http.StatusCreated, rec)
}

// PUT /api/notification/:id/read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	rec, errResp := h.loadOwned(c)
	if rec == nil {
		return errResp
	}
	if err := database.DB.Model(&models.Notification{}).Where("id = ?", rec.ID).
		Update("read", true).Error; err != nil {
		return internalError(c, h.log, "mark read", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}

// DELETE /api/notification/:id
func (h *NotificationHandler) Delete(c echo.Context) error {
	rec, errResp := h.loadOwned(c)
	if rec == nil {
		return errResp
	}
	if err := database.DB.Delete(&models.Notification{}, rec.ID).Error; err != nil {
		return internalError(c, h.log, "delete notification", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}

func (h *NotificationHandler) loadOwned(c echo.Context) (*models.Notification, error) {
	var rec models.Notification
	if err := database.DB.First(&rec, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		return nil, internalError(c, h.log, "load notification", err)
	}
	if rec.Recipient != claimEmail(c) {
		return nil, c.JSON(http.StatusForbidden, map[string]any{"error": "NOT_OWNER"})
	}
	return &rec, nil
}
