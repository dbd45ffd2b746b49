package handlers

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/estiakahmed98/islami-dawa-production-sub001/export"
	"github.com/estiakahmed98/islami-dawa-production-sub001/report"
)

// ExportHandler serves the tally pivot as a downloadable file. It shares
// the TallyHandler's scope and loading logic, only the rendering differs.
type ExportHandler struct {
	tally *TallyHandler
	log   *zap.Logger
}

func NewExportHandler(tally *TallyHandler, log *zap.Logger) *ExportHandler {
	return &ExportHandler{tally: tally, log: log}
}

// GET /api/export/:category/csv?year=&month=&email=
func (h *ExportHandler) CSV(c echo.Context) error {
	cat, errResp := categoryFromRoute(c)
	if cat.Slug == "" {
		return errResp
	}
	emails, year, month, ok, resp := h.tally.tallyWindow(c)
	if !ok {
		return resp
	}
	recs, err := h.tally.loadRecords(cat, emails, year, month)
	if err != nil {
		return internalError(c, h.log, "load records", err)
	}
	rows := report.Pivot(cat, recs, emails, year, month)

	data, err := export.CSV(cat, rows, year, month)
	if err != nil {
		return internalError(c, h.log, "render csv", err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="`+export.Filename(cat, year, month, "csv")+`"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", data)
}

// GET /api/export/:category/xlsx?year=&month=&email=
func (h *ExportHandler) Excel(c echo.Context) error {
	cat, errResp := categoryFromRoute(c)
	if cat.Slug == "" {
		return errResp
	}
	emails, year, month, ok, resp := h.tally.tallyWindow(c)
	if !ok {
		return resp
	}
	recs, err := h.tally.loadRecords(cat, emails, year, month)
	if err != nil {
		return internalError(c, h.log, "load records", err)
	}
	rows := report.Pivot(cat, recs, emails, year, month)

	f, err := export.Excel(cat, rows, year, month)
	if err != nil {
		return internalError(c, h.log, "render xlsx", err)
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return internalError(c, h.log, "write xlsx", err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="`+export.Filename(cat, year, month, "xlsx")+`"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
