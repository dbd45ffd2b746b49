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

type EditRequestHandler struct {
	log *zap.Logger
}

func NewEditRequestHandler(log *zap.Logger) *EditRequestHandler {
	return &EditRequestHandler{log: log}
}

type editCreateReq struct {
	Name     string `json:"name" validate:"required,max=120"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	Division string `json:"division"`
	District string `json:"district"`
	Upazila  string `json:"upazila"`
	Union    string `json:"union"`
	Reason   string `json:"reason" validate:"required"`
}

// POST /api/edit-requests
//
// The requester's email and role come from the token, never the body.
func (h *EditRequestHandler) Create(c echo.Context) error {
	var req editCreateReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	role, _ := c.Get("role").(string)

	rec := models.EditRequest{
		Email:    claimEmail(c),
		Name:     strings.TrimSpace(req.Name),
		Phone:    strings.TrimSpace(req.Phone),
		Role:     role,
		Division: strings.TrimSpace(req.Division),
		District: strings.TrimSpace(req.District),
		Upazila:  strings.TrimSpace(req.Upazila),
		Union:    strings.TrimSpace(req.Union),
		Reason:   strings.TrimSpace(req.Reason),
		Status:   "pending",
	}
	if err := database.DB.Create(&rec).Error; err != nil {
		return internalError(c, h.log, "create edit request", err)
	}
	return c.JSON(http.StatusCreated, rec)
}

// GET /api/edit-requests?status=
//
// Returns the scope's requests grouped by email, the shape the review
// screen renders.
func (h *EditRequestHandler) List(c echo.Context) error {
	viewer, err := loadViewer(c)
	if err != nil {
		return internalError(c, h.log, "load viewer", err)
	}
	emails, _, err := scopedEmails(viewer)
	if err != nil {
		return internalError(c, h.log, "resolve scope", err)
	}

	tx := database.DB.Where("email IN ?", emails)
	if status := strings.TrimSpace(c.QueryParam("status")); status != "" {
		tx = tx.Where("status = ?", status)
	}
	var rows []models.EditRequest
	if err := tx.Order("date DESC, id DESC").Find(&rows).Error; err != nil {
		return internalError(c, h.log, "list edit requests", err)
	}

	grouped := map[string][]models.EditRequest{}
	for _, r := range rows {
		grouped[r.Email] = append(grouped[r.Email], r)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": grouped})
}

type editDecisionReq struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// PUT /api/edit-requests/:id
//
// Approval applies the snapshot to the user row.
func (h *EditRequestHandler) Decide(c echo.Context) error {
	var req editDecisionReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	var row models.EditRequest
	if err := database.DB.First(&row, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		return internalError(c, h.log, "load edit request", err)
	}

	viewer, err := loadViewer(c)
	if err != nil {
		return internalError(c, h.log, "load viewer", err)
	}
	emails, _, err := scopedEmails(viewer)
	if err != nil {
		return internalError(c, h.log, "resolve scope", err)
	}
	if !inScope(emails, row.Email) {
		return c.JSON(http.StatusForbidden, map[string]any{"error": "OUT_OF_SCOPE"})
	}

	if req.Status == "approved" {
		updates := map[string]any{
			"name":       row.Name,
			"phone":      row.Phone,
			"division":   row.Division,
			"district":   row.District,
			"upazila":    row.Upazila,
			"union_name": row.Union,
		}
		if err := database.DB.Model(&models.User{}).Where("email = ?", row.Email).Updates(updates).Error; err != nil {
			return internalError(c, h.log, "apply edit request", err)
		}
	}
	if err := database.DB.Model(&models.EditRequest{}).Where("id = ?", row.ID).
		Update("status", req.Status).Error; err != nil {
		return internalError(c, h.log, "update edit request", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
