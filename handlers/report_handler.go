package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/estiakahmed98/islami-dawa-production-sub001/database"
	"github.com/estiakahmed98/islami-dawa-production-sub001/metrics"
	"github.com/estiakahmed98/islami-dawa-production-sub001/models"
	"github.com/estiakahmed98/islami-dawa-production-sub001/report"
	"github.com/estiakahmed98/islami-dawa-production-sub001/timeutil"
)

// ReportHandler serves every category through one code path; the category
// comes from the route, the field set from the registry. The two store
// funcs default to database.DB and exist so the day gate is testable
// without a live database.
type ReportHandler struct {
	log        *zap.Logger
	findInDay  func(email, category string, start, end time.Time) (bool, error)
	insert     func(rec *models.ReportRecord) error
	submitTime func() time.Time
}

func NewReportHandler(log *zap.Logger) *ReportHandler {
	h := &ReportHandler{log: log, submitTime: time.Now}
	h.findInDay = h.dbFindInDay
	h.insert = h.dbInsert
	return h
}

func (h *ReportHandler) dbFindInDay(email, category string, start, end time.Time) (bool, error) {
	var existing models.ReportRecord
	err := database.DB.
		Where("user_email = ? AND category = ? AND date >= ? AND date < ?", email, category, start, end).
		First(&existing).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

func (h *ReportHandler) dbInsert(rec *models.ReportRecord) error {
	return database.DB.Create(rec).Error
}

// isUniqueViolation reports whether err is a postgres duplicate-key error
// (SQLSTATE 23505), the signature of a concurrent same-day submission
// hitting the uniq_report_day index.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func categoryFromRoute(c echo.Context) (report.Category, error) {
	slug := c.Param("category")
	cat, ok := report.BySlug(slug)
	if !ok {
		return report.Category{}, c.JSON(http.StatusNotFound, map[string]any{"error": "UNKNOWN_CATEGORY"})
	}
	return cat, nil
}

type reportCreateReq struct {
	Fields        models.FieldMap `json:"fields" validate:"required"`
	EditorContent string          `json:"editorContent"`
}

// POST /api/:category
//
// One submission per Dhaka calendar day. The read check gives the friendly
// 409; the unique index on (user_email, category, report_date) closes the
// race window left between read and insert.
func (h *ReportHandler) Create(c echo.Context) error {
	cat, errResp := categoryFromRoute(c)
	if cat.Slug == "" {
		return errResp
	}
	var req reportCreateReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	email := claimEmail(c)
	now := h.submitTime()
	dayStart, dayEnd := timeutil.DayWindow(now)

	exists, err := h.findInDay(email, cat.Slug, dayStart, dayEnd)
	if err != nil {
		return internalError(c, h.log, "check submission", err)
	}
	if exists {
		metrics.SubmissionConflicts.Inc()
		return c.JSON(http.StatusConflict, map[string]any{"error": "ALREADY_SUBMITTED", "code": "ALREADY_SUBMITTED"})
	}

	rec := models.ReportRecord{
		UserEmail:     email,
		Category:      cat.Slug,
		ReportDate:    timeutil.DateKey(now),
		Date:          now,
		Fields:        keepKnownFields(cat, req.Fields),
		EditorContent: req.EditorContent,
	}
	if err := h.insert(&rec); err != nil {
		// Constraint hit means a concurrent duplicate lost the race.
		if isUniqueViolation(err) {
			metrics.SubmissionConflicts.Inc()
			return c.JSON(http.StatusConflict, map[string]any{"error": "ALREADY_SUBMITTED", "code": "ALREADY_SUBMITTED"})
		}
		return internalError(c, h.log, "create record", err)
	}

	metrics.ReportSubmissions.WithLabelValues(cat.Slug).Inc()
	return c.JSON(http.StatusCreated, rec)
}

// GET /api/:category?email=&from=&to=
//
// Without email, returns the viewer's own records. With email, the target
// must be inside the viewer's scope.
func (h *ReportHandler) List(c echo.Context) error {
	cat, errResp := categoryFromRoute(c)
	if cat.Slug == "" {
		return errResp
	}

	target := strings.ToLower(strings.TrimSpace(c.QueryParam("email")))
	own := claimEmail(c)
	if target == "" {
		target = own
	}
	if target != own {
		viewer, err := loadViewer(c)
		if err != nil {
			return internalError(c, h.log, "load viewer", err)
		}
		emails, _, err := scopedEmails(viewer)
		if err != nil {
			return internalError(c, h.log, "resolve scope", err)
		}
		if !inScope(emails, target) {
			return c.JSON(http.StatusForbidden, map[string]any{"error": "OUT_OF_SCOPE"})
		}
	}

	tx := database.DB.Where("user_email = ? AND category = ?", target, cat.Slug)
	if from := strings.TrimSpace(c.QueryParam("from")); from != "" {
		tx = tx.Where("report_date >= ?", from)
	}
	if to := strings.TrimSpace(c.QueryParam("to")); to != "" {
		tx = tx.Where("report_date <= ?", to)
	}

	var rows []models.ReportRecord
	if err := tx.Order("report_date ASC, id ASC").Find(&rows).Error; err != nil {
		return internalError(c, h.log, "list records", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"records": rows})
}

// PUT /api/:category/:id
//
// Owner only; the submission day never changes.
func (h *ReportHandler) Update(c echo.Context) error {
	cat, errResp := categoryFromRoute(c)
	if cat.Slug == "" {
		return errResp
	}
	var req reportCreateReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	var rec models.ReportRecord
	if err := database.DB.First(&rec, "id = ? AND category = ?", c.Param("id"), cat.Slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		return internalError(c, h.log, "load record", err)
	}
	if rec.UserEmail != claimEmail(c) {
		return c.JSON(http.StatusForbidden, map[string]any{"error": "NOT_OWNER"})
	}

	rec.Fields = keepKnownFields(cat, req.Fields)
	rec.EditorContent = req.EditorContent
	if err := database.DB.Save(&rec).Error; err != nil {
		return internalError(c, h.log, "update record", err)
	}
	return c.JSON(http.StatusOK, rec)
}

// keepKnownFields drops keys the category does not define. Values are kept
// raw; the aggregator's lenient conversion handles whatever was submitted.
func keepKnownFields(cat report.Category, in models.FieldMap) models.FieldMap {
	out := make(models.FieldMap, len(cat.Fields))
	for _, f := range cat.Fields {
		if v, ok := in[f.Key]; ok {
			out[f.Key] = v
		}
	}
	return out
}
