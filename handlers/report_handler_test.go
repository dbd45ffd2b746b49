package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/estiakahmed98/islami-dawa-production-sub001/models"
	"github.com/estiakahmed98/islami-dawa-production-sub001/report"
	"github.com/estiakahmed98/islami-dawa-production-sub001/timeutil"
)

func reportCreateOn(t *testing.T, h *ReportHandler, slug, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/"+slug, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("category")
	c.SetParamValues(slug)
	c.Set("email", "daye1@idi.org")

	require.NoError(t, h.Create(c))
	return rec
}

func reportCreate(t *testing.T, slug, body string) *httptest.ResponseRecorder {
	t.Helper()
	return reportCreateOn(t, NewReportHandler(zap.NewNop()), slug, body)
}

// memoryReportHandler backs the store funcs with a slice so the day gate
// runs without a database.
func memoryReportHandler(t *testing.T) (*ReportHandler, *[]models.ReportRecord) {
	t.Helper()
	var stored []models.ReportRecord
	h := NewReportHandler(zap.NewNop())
	h.findInDay = func(email, category string, start, end time.Time) (bool, error) {
		for _, r := range stored {
			if r.UserEmail == email && r.Category == category &&
				!r.Date.Before(start) && r.Date.Before(end) {
				return true, nil
			}
		}
		return false, nil
	}
	h.insert = func(rec *models.ReportRecord) error {
		stored = append(stored, *rec)
		return nil
	}
	return h, &stored
}

func TestCreateSecondSubmissionSameDayIs409(t *testing.T) {
	h, stored := memoryReportHandler(t)

	rec := reportCreateOn(t, h, "dawati", `{"fields":{"nonMuslimDawat":3}}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, *stored, 1)

	rec = reportCreateOn(t, h, "dawati", `{"fields":{"nonMuslimDawat":5}}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"ALREADY_SUBMITTED"`)
	assert.Len(t, *stored, 1)
}

func TestCreateNextDhakaDayIsAccepted(t *testing.T) {
	h, stored := memoryReportHandler(t)

	day1 := time.Date(2025, 6, 9, 20, 0, 0, 0, timeutil.Dhaka)
	h.submitTime = func() time.Time { return day1 }
	rec := reportCreateOn(t, h, "dawati", `{"fields":{"nonMuslimDawat":3}}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// four hours later it is the next Dhaka calendar day
	h.submitTime = func() time.Time { return day1.Add(4 * time.Hour) }
	rec = reportCreateOn(t, h, "dawati", `{"fields":{"nonMuslimDawat":1}}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, *stored, 2)
	assert.Equal(t, "2025-06-09", (*stored)[0].ReportDate)
	assert.Equal(t, "2025-06-10", (*stored)[1].ReportDate)
}

func TestCreateOtherCategorySameDayIsAccepted(t *testing.T) {
	h, stored := memoryReportHandler(t)

	rec := reportCreateOn(t, h, "dawati", `{"fields":{"nonMuslimDawat":3}}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	rec = reportCreateOn(t, h, "moktob", `{"fields":{"totalMoktob":2}}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, *stored, 2)
}

func TestCreateConstraintViolationMapsTo409(t *testing.T) {
	// The read check misses a concurrent duplicate; the unique index
	// rejects the insert and the handler answers the same 409.
	h, _ := memoryReportHandler(t)
	h.insert = func(rec *models.ReportRecord) error {
		return &pgconn.PgError{Code: "23505", ConstraintName: "uniq_report_day"}
	}

	rec := reportCreateOn(t, h, "dawati", `{"fields":{"nonMuslimDawat":3}}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"ALREADY_SUBMITTED"`)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("duplicate key value")))
}

func TestCreateUnknownCategoryIs404(t *testing.T) {
	rec := reportCreate(t, "nosuch", `{"fields":{"x":1}}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNKNOWN_CATEGORY")
}

func TestCreateWithoutFieldsIs400(t *testing.T) {
	rec := reportCreate(t, "dawati", `{"editorContent":"note"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestKeepKnownFields(t *testing.T) {
	cat, ok := report.BySlug("dawati")
	require.True(t, ok)

	in := models.FieldMap{
		"nonMuslimDawat": 3.0,
		"murtadDawat":    "2",
		"bogusKey":       "dropped",
	}
	out := keepKnownFields(cat, in)
	assert.Equal(t, models.FieldMap{
		"nonMuslimDawat": 3.0,
		"murtadDawat":    "2",
	}, out)
}

func TestAtoiOr(t *testing.T) {
	assert.Equal(t, 7, atoiOr("7", 1))
	assert.Equal(t, 1, atoiOr("", 1))
	assert.Equal(t, 1, atoiOr("x", 1))
}

func TestInScope(t *testing.T) {
	emails := []string{"a@idi.org", "b@idi.org"}
	assert.True(t, inScope(emails, "b@idi.org"))
	assert.False(t, inScope(emails, "c@idi.org"))
}
