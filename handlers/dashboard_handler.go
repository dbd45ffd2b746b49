package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/estiakahmed98/islami-dawa-production-sub001/database"
	"github.com/estiakahmed98/islami-dawa-production-sub001/models"
	"github.com/estiakahmed98/islami-dawa-production-sub001/report"
	"github.com/estiakahmed98/islami-dawa-production-sub001/timeutil"
)

type DashboardHandler struct {
	log *zap.Logger
}

func NewDashboardHandler(log *zap.Logger) *DashboardHandler { return &DashboardHandler{log: log} }

// GET /api/dashboard
//
// Headline numbers for the admin landing page, all confined to the
// viewer's scope: directory size by role, today's submission coverage per
// category, pending leave requests.
func (h *DashboardHandler) Summary(c echo.Context) error {
	viewer, err := loadViewer(c)
	if err != nil {
		return internalError(c, h.log, "load viewer", err)
	}
	emails, all, err := scopedEmails(viewer)
	if err != nil {
		return internalError(c, h.log, "resolve scope", err)
	}

	inSet := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		inSet[e] = struct{}{}
	}
	byRole := map[string]int{}
	for _, u := range all {
		if _, ok := inSet[u.Email]; ok {
			byRole[u.Role]++
		}
	}

	today := timeutil.DateKey(time.Now())
	type catCount struct {
		Slug      string `json:"category"`
		Name      string `json:"name"`
		Submitted int64  `json:"submitted"`
	}
	coverage := make([]catCount, 0, len(report.Categories))
	for _, cat := range report.Categories {
		var n int64
		if err := database.DB.Model(&models.ReportRecord{}).
			Where("category = ? AND report_date = ? AND user_email IN ?", cat.Slug, today, emails).
			Count(&n).Error; err != nil {
			return internalError(c, h.log, "count submissions", err)
		}
		coverage = append(coverage, catCount{Slug: cat.Slug, Name: cat.Name, Submitted: n})
	}

	var pendingLeaves int64
	if err := database.DB.Model(&models.LeaveRequest{}).
		Where("status = ? AND user_email IN ?", models.LeavePending, emails).
		Count(&pendingLeaves).Error; err != nil {
		return internalError(c, h.log, "count leaves", err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"date":           today,
		"scope_size":     len(emails),
		"users_by_role":  byRole,
		"today":          coverage,
		"pending_leaves": pendingLeaves,
	})
}
