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

type MarkazHandler struct {
	log *zap.Logger
}

func NewMarkazHandler(log *zap.Logger) *MarkazHandler { return &MarkazHandler{log: log} }

type markazReq struct {
	Name     string `json:"name" validate:"required,max=120"`
	Division string `json:"division"`
	District string `json:"district"`
	Upazila  string `json:"upazila"`
	Union    string `json:"union"`
	Note     string `json:"note"`
}

// GET /api/markaz-masjid?division=&district=&q=
func (h *MarkazHandler) List(c echo.Context) error {
	tx := database.DB.Model(&models.Markaz{})
	if division := strings.TrimSpace(c.QueryParam("division")); division != "" {
		tx = tx.Where("division = ?", division)
	}
	if district := strings.TrimSpace(c.QueryParam("district")); district != "" {
		tx = tx.Where("district = ?", district)
	}
	if q := strings.TrimSpace(c.QueryParam("q")); q != "" {
		tx = tx.Where("name ILIKE ?", "%"+q+"%")
	}
	var rows []models.Markaz
	if err := tx.Order("name ASC").Find(&rows).Error; err != nil {
		return internalError(c, h.log, "list markaz", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": rows})
}

// POST /api/markaz-masjid
func (h *MarkazHandler) Create(c echo.Context) error {
	var req markazReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	name := strings.TrimSpace(req.Name)
	var dup models.Markaz
	if err := database.DB.Where("name = ?", name).First(&dup).Error; err == nil {
		return c.JSON(http.StatusConflict, map[string]any{"error": "MARKAZ_EXISTS", "code": "MARKAZ_EXISTS"})
	}
	rec := models.Markaz{
		Name:     name,
		Division: strings.TrimSpace(req.Division),
		District: strings.TrimSpace(req.District),
		Upazila:  strings.TrimSpace(req.Upazila),
		Union:    strings.TrimSpace(req.Union),
		Note:     req.Note,
	}
	if err := database.DB.Create(&rec).Error; err != nil {
		return internalError(c, h.log, "create markaz", err)
	}
	return c.JSON(http.StatusCreated, rec)
}

// PUT /api/markaz-masjid/:id
func (h *MarkazHandler) Update(c echo.Context) error {
	var req markazReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	var rec models.Markaz
	if err := database.DB.First(&rec, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		return internalError(c, h.log, "load markaz", err)
	}
	rec.Name = strings.TrimSpace(req.Name)
	rec.Division = strings.TrimSpace(req.Division)
	rec.District = strings.TrimSpace(req.District)
	rec.Upazila = strings.TrimSpace(req.Upazila)
	rec.Union = strings.TrimSpace(req.Union)
	rec.Note = req.Note
	if err := database.DB.Save(&rec).Error; err != nil {
		return internalError(c, h.log, "update markaz", err)
	}
	return c.JSON(http.StatusOK, rec)
}

// DELETE /api/markaz-masjid/:id
func (h *MarkazHandler) Delete(c echo.Context) error {
	res := database.DB.Delete(&models.Markaz{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return internalError(c, h.log, "delete markaz", res.Error)
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
