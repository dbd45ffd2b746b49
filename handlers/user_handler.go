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

type UserHandler struct {
	log *zap.Logger
}

func NewUserHandler(log *zap.Logger) *UserHandler { return &UserHandler{log: log} }

// GET /api/usershow?role=&division=&district=&q=&page=&size=
//
// Lists only the users inside the viewer's scope; a centraladmin therefore
// sees the whole directory and everyone else sees their subtree.
func (h *UserHandler) List(c echo.Context) error {
	viewer, err := loadViewer(c)
	if err != nil {
		return internalError(c, h.log, "load viewer", err)
	}
	emails, all, err := scopedEmails(viewer)
	if err != nil {
		return internalError(c, h.log, "list users", err)
	}

	role := strings.TrimSpace(c.QueryParam("role"))
	division := strings.TrimSpace(c.QueryParam("division"))
	district := strings.TrimSpace(c.QueryParam("district"))
	q := strings.ToLower(strings.TrimSpace(c.QueryParam("q")))

	page := atoiOr(c.QueryParam("page"), 1)
	size := atoiOr(c.QueryParam("size"), 50)
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 200 {
		size = 50
	}

	inSet := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		inSet[e] = struct{}{}
	}

	filtered := make([]models.User, 0, len(emails))
	for _, u := range all {
		if _, ok := inSet[u.Email]; !ok {
			continue
		}
		if role != "" && u.Role != role {
			continue
		}
		if division != "" && u.Division != division {
			continue
		}
		if district != "" && u.District != district {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(u.Name), q) && !strings.Contains(strings.ToLower(u.Email), q) {
			continue
		}
		filtered = append(filtered, u)
	}

	total := len(filtered)
	lo := (page - 1) * size
	if lo > total {
		lo = total
	}
	hi := lo + size
	if hi > total {
		hi = total
	}
	return c.JSON(http.StatusOK, map[string]any{
		"data": filtered[lo:hi],
		"meta": map[string]any{"page": page, "size": size, "total": total},
	})
}

type userUpdateReq struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role" validate:"omitempty,oneof=centraladmin divisionadmin districtadmin upozilaadmin unionadmin daye"`
	Division *string `json:"division"`
	District *string `json:"district"`
	Upazila  *string `json:"upazila"`
	Union    *string `json:"union"`
	Markaz   *string `json:"markaz"`
}

// PUT /api/usershow/:id
func (h *UserHandler) Update(c echo.Context) error {
	var req userUpdateReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	target, errResp := h.loadScopedTarget(c)
	if target == nil {
		return errResp
	}

	updates := map[string]any{}
	set := func(col string, v *string) {
		if v != nil {
			updates[col] = strings.TrimSpace(*v)
		}
	}
	set("name", req.Name)
	set("phone", req.Phone)
	set("role", req.Role)
	set("division", req.Division)
	set("district", req.District)
	set("upazila", req.Upazila)
	set("union_name", req.Union)
	set("markaz", req.Markaz)
	if len(updates) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "EMPTY_UPDATE"})
	}

	if err := database.DB.Model(&models.User{}).Where("id = ?", target.ID).Updates(updates).Error; err != nil {
		return internalError(c, h.log, "update user", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}

// POST /api/usershow/:id/ban  body: {"banned": true|false}
func (h *UserHandler) Ban(c echo.Context) error {
	var req struct {
		Banned bool `json:"banned"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}

	target, errResp := h.loadScopedTarget(c)
	if target == nil {
		return errResp
	}
	if err := database.DB.Model(&models.User{}).Where("id = ?", target.ID).Update("banned", req.Banned).Error; err != nil {
		return internalError(c, h.log, "ban user", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true, "banned": req.Banned})
}

// DELETE /api/usershow/:id
//
// Hard delete. Report history stays behind keyed by email; the ban flag is
// the reversible alternative.
func (h *UserHandler) Delete(c echo.Context) error {
	target, errResp := h.loadScopedTarget(c)
	if target == nil {
		return errResp
	}
	if err := database.DB.Delete(&models.User{}, target.ID).Error; err != nil {
		return internalError(c, h.log, "delete user", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}

// loadScopedTarget fetches the :id user and checks the viewer may act on
// them. Returns (nil, response) when the request is already answered.
func (h *UserHandler) loadScopedTarget(c echo.Context) (*models.User, error) {
	var target models.User
	if err := database.DB.First(&target, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		return nil, internalError(c, h.log, "load target", err)
	}

	viewer, err := loadViewer(c)
	if err != nil {
		return nil, internalError(c, h.log, "load viewer", err)
	}
	emails, _, err := scopedEmails(viewer)
	if err != nil {
		return nil, internalError(c, h.log, "resolve scope", err)
	}
	if !inScope(emails, target.Email) {
		return nil, c.JSON(http.StatusForbidden, map[string]any{"error": "OUT_OF_SCOPE"})
	}
	return &target, nil
}
