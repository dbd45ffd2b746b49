package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/estiakahmed98/islami-dawa-production-sub001/database"
	"github.com/estiakahmed98/islami-dawa-production-sub001/models"
	"github.com/estiakahmed98/islami-dawa-production-sub001/scope"
)

type LeaveRequestHandler struct {
	log *zap.Logger
}

func NewLeaveRequestHandler(log *zap.Logger) *LeaveRequestHandler {
	return &LeaveRequestHandler{log: log}
}

type leaveCreateReq struct {
	LeaveType string `json:"leave_type" validate:"required,max=40"`
	FromDate  string `json:"from_date" validate:"required,datetime=2006-01-02"`
	ToDate    string `json:"to_date" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" validate:"required"`
}

// leaveDays counts the inclusive span of a request; both bounds are
// date-only strings already validated by the DTO.
func leaveDays(from, to string) (int, bool) {
	f, err1 := time.Parse("2006-01-02", from)
	t, err2 := time.Parse("2006-01-02", to)
	if err1 != nil || err2 != nil || t.Before(f) {
		return 0, false
	}
	return int(t.Sub(f).Hours()/24) + 1, true
}

// POST /api/leaves
func (h *LeaveRequestHandler) Create(c echo.Context) error {
	var req leaveCreateReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	days, ok := leaveDays(req.FromDate, req.ToDate)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_DATE_RANGE"})
	}

	rec := models.LeaveRequest{
		UserEmail: claimEmail(c),
		LeaveType: strings.TrimSpace(req.LeaveType),
		FromDate:  req.FromDate,
		ToDate:    req.ToDate,
		Days:      days,
		Reason:    strings.TrimSpace(req.Reason),
		Status:    models.LeavePending,
	}
	if err := database.DB.Create(&rec).Error; err != nil {
		return internalError(c, h.log, "create leave", err)
	}

	// Tell the worker's admin chain a request is waiting. Best effort; the
	// request itself is already stored.
	h.notifyChain(rec)

	return c.JSON(http.StatusCreated, rec)
}

func (h *LeaveRequestHandler) notifyChain(rec models.LeaveRequest) {
	var all []models.User
	if err := database.DB.Find(&all).Error; err != nil {
		h.log.Warn("leave notify: load users", zap.Error(err))
		return
	}
	owner, ok := func() (models.User, bool) {
		for _, u := range all {
			if u.Email == rec.UserEmail {
				return u, true
			}
		}
		return models.User{}, false
	}()
	if !ok {
		return
	}
	chain := scope.AncestorChain(all, owner)
	if len(chain) == 0 {
		return
	}
	n := models.Notification{
		Recipient: chain[0],
		Message:   owner.Name + " submitted a leave request (" + rec.FromDate + " – " + rec.ToDate + ")",
	}
	if err := database.DB.Create(&n).Error; err != nil {
		h.log.Warn("leave notify: create notification", zap.Error(err))
	}
}

// GET /api/leaves?status=&email=&page=&size=
//
// Admins see the requests of everyone in their scope; a field worker sees
// only their own.
func (h *LeaveRequestHandler) List(c echo.Context) error {
	viewer, err := loadViewer(c)
	if err != nil {
		return internalError(c, h.log, "load viewer", err)
	}
	emails, _, err := scopedEmails(viewer)
	if err != nil {
		return internalError(c, h.log, "resolve scope", err)
	}

	page := atoiOr(c.QueryParam("page"), 1)
	size := atoiOr(c.QueryParam("size"), 20)
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}

	tx := database.DB.Model(&models.LeaveRequest{}).Where("user_email IN ?", emails)
	if status := strings.TrimSpace(c.QueryParam("status")); status != "" {
		tx = tx.Where("status = ?", status)
	}
	if email := strings.ToLower(strings.TrimSpace(c.QueryParam("email"))); email != "" {
		if !inScope(emails, email) {
			return c.JSON(http.StatusForbidden, map[string]any{"error": "OUT_OF_SCOPE"})
		}
		tx = tx.Where("user_email = ?", email)
	}

	var rows []models.LeaveRequest
	offset := (page - 1) * size
	if err := tx.Order("created_at DESC, id DESC").Offset(offset).Limit(size).Find(&rows).Error; err != nil {
		return internalError(c, h.log, "list leaves", err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /api/leaves/pending-count
func (h *LeaveRequestHandler) PendingCount(c echo.Context) error {
	viewer, err := loadViewer(c)
	if err != nil {
		return internalError(c, h.log, "load viewer", err)
	}
	emails, _, err := scopedEmails(viewer)
	if err != nil {
		return internalError(c, h.log, "resolve scope", err)
	}

	var n int64
	if err := database.DB.Model(&models.LeaveRequest{}).
		Where("status = ? AND user_email IN ?", models.LeavePending, emails).
		Count(&n).Error; err != nil {
		return internalError(c, h.log, "count leaves", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"count": n})
}

type leaveDecisionReq struct {
	Status          string `json:"status" validate:"required,oneof=approved rejected"`
	RejectionReason string `json:"rejection_reason"`
}

// PUT /api/leaves/:id
//
// Admin decision. A rejection without a reason is a 400 before anything is
// read from the database.
func (h *LeaveRequestHandler) Decide(c echo.Context) error {
	var req leaveDecisionReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	reason := strings.TrimSpace(req.RejectionReason)
	if req.Status == models.LeaveRejected && reason == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "REJECTION_REASON_REQUIRED"})
	}

	var row models.LeaveRequest
	if err := database.DB.First(&row, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		return internalError(c, h.log, "load leave", err)
	}

	viewer, err := loadViewer(c)
	if err != nil {
		return internalError(c, h.log, "load viewer", err)
	}
	emails, _, err := scopedEmails(viewer)
	if err != nil {
		return internalError(c, h.log, "resolve scope", err)
	}
	if !inScope(emails, row.UserEmail) {
		return c.JSON(http.StatusForbidden, map[string]any{"error": "OUT_OF_SCOPE"})
	}

	now := time.Now()
	updates := map[string]any{
		"status":      req.Status,
		"approved_by": viewer.Email,
		"decided_at":  &now,
	}
	if req.Status == models.LeaveRejected {
		updates["rejection_reason"] = reason
	} else {
		updates["rejection_reason"] = ""
	}
	if err := database.DB.Model(&models.LeaveRequest{}).Where("id = ?", row.ID).Updates(updates).Error; err != nil {
		return internalError(c, h.log, "update leave", err)
	}

	n := models.Notification{
		Recipient: row.UserEmail,
		Message:   "Your leave request (" + row.FromDate + " – " + row.ToDate + ") was " + req.Status,
	}
	if err := database.DB.Create(&n).Error; err != nil {
		h.log.Warn("leave decision: create notification", zap.Error(err))
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
