package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/estiakahmed98/islami-dawa-production-sub001/database"
	"github.com/estiakahmed98/islami-dawa-production-sub001/models"
	"github.com/estiakahmed98/islami-dawa-production-sub001/report"
)

// TallyHandler turns a month of raw submissions into the label-by-day pivot
// behind tables, charts and exports.
type TallyHandler struct {
	log *zap.Logger
}

func NewTallyHandler(log *zap.Logger) *TallyHandler { return &TallyHandler{log: log} }

// tallyWindow reads ?year=&month=&email= and resolves the email list: a
// given email must fall inside the viewer's scope, no email means the whole
// scope. Returns ok=false when it already answered the request.
func (h *TallyHandler) tallyWindow(c echo.Context) (emails []string, year int, month time.Month, ok bool, resp error) {
	now := time.Now()
	year = atoiOr(c.QueryParam("year"), now.Year())
	m := atoiOr(c.QueryParam("month"), int(now.Month()))
	if year < 2000 || year > 2100 || m < 1 || m > 12 {
		return nil, 0, 0, false, c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PERIOD"})
	}
	month = time.Month(m)

	viewer, err := loadViewer(c)
	if err != nil {
		return nil, 0, 0, false, internalError(c, h.log, "load viewer", err)
	}
	scoped, _, err := scopedEmails(viewer)
	if err != nil {
		return nil, 0, 0, false, internalError(c, h.log, "resolve scope", err)
	}

	if target := strings.ToLower(strings.TrimSpace(c.QueryParam("email"))); target != "" {
		if !inScope(scoped, target) {
			return nil, 0, 0, false, c.JSON(http.StatusForbidden, map[string]any{"error": "OUT_OF_SCOPE"})
		}
		return []string{target}, year, month, true, nil
	}
	return scoped, year, month, true, nil
}

// loadRecords fetches the month's rows for the email list and reshapes them
// into the aggregator's nested map.
func (h *TallyHandler) loadRecords(cat report.Category, emails []string, year int, month time.Month) (report.Records, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
	last := time.Date(year, month, report.DaysIn(year, month), 0, 0, 0, 0, time.UTC).Format("2006-01-02")

	var rows []models.ReportRecord
	err := database.DB.
		Where("category = ? AND user_email IN ? AND report_date >= ? AND report_date <= ?", cat.Slug, emails, first, last).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	recs := make(report.Records, len(emails))
	for _, r := range rows {
		byDate, ok := recs[r.UserEmail]
		if !ok {
			byDate = make(map[string]map[string]any)
			recs[r.UserEmail] = byDate
		}
		byDate[r.ReportDate] = map[string]any(r.Fields)
	}
	return recs, nil
}

// GET /api/tally/:category?year=&month=&email=
func (h *TallyHandler) Tally(c echo.Context) error {
	cat, errResp := categoryFromRoute(c)
	if cat.Slug == "" {
		return errResp
	}
	emails, year, month, ok, resp := h.tallyWindow(c)
	if !ok {
		return resp
	}

	recs, err := h.loadRecords(cat, emails, year, month)
	if err != nil {
		return internalError(c, h.log, "load records", err)
	}
	rows := report.Pivot(cat, recs, emails, year, month)

	return c.JSON(http.StatusOK, map[string]any{
		"category": cat.Slug,
		"name":     cat.Name,
		"year":     year,
		"month":    int(month),
		"days":     report.DaysIn(year, month),
		"rows":     rows,
	})
}
