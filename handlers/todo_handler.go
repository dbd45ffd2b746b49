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
	"github.com/estiakahmed98/islami-dawa-production-sub001/timeutil"
)

// TodoHandler serves the weekly planner. Entries are private to their owner.
type TodoHandler struct {
	log *zap.Logger
}

func NewTodoHandler(log *zap.Logger) *TodoHandler { return &TodoHandler{log: log} }

type todoReq struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Done        bool   `json:"done"`
}

// weekBounds returns the Monday and Sunday of the week holding anchor,
// as yyyy-mm-dd strings.
func weekBounds(anchor time.Time) (string, string) {
	offset := (int(anchor.Weekday()) + 6) % 7
	start := anchor.AddDate(0, 0, -offset).Format("2006-01-02")
	end := anchor.AddDate(0, 0, 6-offset).Format("2006-01-02")
	return start, end
}

// GET /api/todo?week=2006-01-02 (any day of the wanted week; defaults to today)
func (h *TodoHandler) List(c echo.Context) error {
	anchor := time.Now().In(timeutil.Dhaka)
	if w := strings.TrimSpace(c.QueryParam("week")); w != "" {
		t, err := time.Parse("2006-01-02", w)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_WEEK"})
		}
		anchor = t
	}
	start, end := weekBounds(anchor)

	var rows []models.Todo
	if err := database.DB.
		Where("user_email = ? AND date >= ? AND date <= ?", claimEmail(c), start, end).
		Order("date ASC, id ASC").Find(&rows).Error; err != nil {
		return internalError(c, h.log, "list todos", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": rows, "meta": map[string]any{"from": start, "to": end}})
}

// POST /api/todo
func (h *TodoHandler) Create(c echo.Context) error {
	var req todoReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	rec := models.Todo{
		UserEmail:   claimEmail(c),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Date:        req.Date,
		Done:        req.Done,
	}
	if err := database.DB.Create(&rec).Error; err != nil {
		return internalError(c, h.log, "create todo", err)
	}
	return c.JSON(http.StatusCreated, rec)
}

// PUT /api/todo/:id
func (h *TodoHandler) Update(c echo.Context) error {
	var req todoReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	rec, errResp := h.loadOwned(c)
	if rec == nil {
		return errResp
	}
	rec.Title = strings.TrimSpace(req.Title)
	rec.Description = req.Description
	rec.Date = req.Date
	rec.Done = req.Done
	if err := database.DB.Save(rec).Error; err != nil {
		return internalError(c, h.log, "update todo", err)
	}
	return c.JSON(http.StatusOK, rec)
}

// DELETE /api/todo/:id
func (h *TodoHandler) Delete(c echo.Context) error {
	rec, errResp := h.loadOwned(c)
	if rec == nil {
		return errResp
	}
	if err := database.DB.Delete(&models.Todo{}, rec.ID).Error; err != nil {
		return internalError(c, h.log, "delete todo", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}

func (h *TodoHandler) loadOwned(c echo.Context) (*models.Todo, error) {
	var rec models.Todo
	if err := database.DB.First(&rec, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		return nil, internalError(c, h.log, "load todo", err)
	}
	if rec.UserEmail != claimEmail(c) {
		return nil, c.JSON(http.StatusForbidden, map[string]any{"error": "NOT_OWNER"})
	}
	return &rec, nil
}
