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

// TaskHandler serves dated calendar items; an external calendar sync reads
// the same rows.
type TaskHandler struct {
	log *zap.Logger
}

func NewTaskHandler(log *zap.Logger) *TaskHandler { return &TaskHandler{log: log} }

type taskReq struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string `json:"time" validate:"omitempty,datetime=15:04"`
}

// GET /api/tasks?from=&to=
func (h *TaskHandler) List(c echo.Context) error {
	tx := database.DB.Where("user_email = ?", claimEmail(c))
	if from := strings.TrimSpace(c.QueryParam("from")); from != "" {
		tx = tx.Where("date >= ?", from)
	}
	if to := strings.TrimSpace(c.QueryParam("to")); to != "" {
		tx = tx.Where("date <= ?", to)
	}
	var rows []models.Task
	if err := tx.Order("date ASC, time ASC, id ASC").Find(&rows).Error; err != nil {
		return internalError(c, h.log, "list tasks", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": rows})
}

// POST /api/tasks
func (h *TaskHandler) Create(c echo.Context) error {
	var req taskReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	rec := models.Task{
		UserEmail:   claimEmail(c),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
	}
	if err := database.DB.Create(&rec).Error; err != nil {
		return internalError(c, h.log, "create task", err)
	}
	return c.JSON(http.StatusCreated, rec)
}

// PUT /api/tasks/:id
func (h *TaskHandler) Update(c echo.Context) error {
	var req taskReq
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
	rec.Time = req.Time
	if err := database.DB.Save(rec).Error; err != nil {
		return internalError(c, h.log, "update task", err)
	}
	return c.JSON(http.StatusOK, rec)
}

// DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c echo.Context) error {
	rec, errResp := h.loadOwned(c)
	if rec == nil {
		return errResp
	}
	if err := database.DB.Delete(&models.Task{}, rec.ID).Error; err != nil {
		return internalError(c, h.log, "delete task", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}

func (h *TaskHandler) loadOwned(c echo.Context) (*models.Task, error) {
	var rec models.Task
	if err := database.DB.First(&rec, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		return nil, internalError(c, h.log, "load task", err)
	}
	if rec.UserEmail != claimEmail(c) {
		return nil, c.JSON(http.StatusForbidden, map[string]any{"error": "NOT_OWNER"})
	}
	return &rec, nil
}
