package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/estiakahmed98/islami-dawa-production-sub001/database"
	"github.com/estiakahmed98/islami-dawa-production-sub001/models"
	"github.com/estiakahmed98/islami-dawa-production-sub001/scope"
)

var validate = validator.New()

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func claimEmail(c echo.Context) string {
	e, _ := c.Get("email").(string)
	return strings.ToLower(strings.TrimSpace(e))
}

// loadViewer resolves the authenticated user's row. If the row vanished
// since the token was issued, the claims still identify the viewer, so the
// scope degrades to just them instead of failing the request.
func loadViewer(c echo.Context) (models.User, error) {
	email := claimEmail(c)
	var u models.User
	err := database.DB.Where("email = ?", email).First(&u).Error
	if err == nil {
		return u, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		role, _ := c.Get("role").(string)
		name, _ := c.Get("name").(string)
		return models.User{Email: email, Role: role, Name: name}, nil
	}
	return models.User{}, err
}

// scopedEmails recomputes the viewer's visibility set from a fresh user
// list. Recomputed per request; nothing is cached.
func scopedEmails(viewer models.User) ([]string, []models.User, error) {
	var all []models.User
	if err := database.DB.Find(&all).Error; err != nil {
		return nil, nil, err
	}
	return scope.Emails(all, viewer), all, nil
}

func inScope(emails []string, email string) bool {
	for _, e := range emails {
		if e == email {
			return true
		}
	}
	return false
}

// internalError logs the cause and returns a generic body. Raw error text
// never reaches the client.
func internalError(c echo.Context, log *zap.Logger, op string, err error) error {
	log.Error(op, zap.Error(err))
	return c.JSON(http.StatusInternalServerError, map[string]any{"error": "INTERNAL_ERROR"})
}

// bindAndValidate binds the JSON body into dst and runs struct validation,
// answering 400 with field-level messages itself when either fails.
func bindAndValidate(c echo.Context, dst any) (ok bool, err error) {
	if err := c.Bind(dst); err != nil {
		return false, c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[strings.ToLower(fe.Field())] = fe.Tag()
			}
			return false, c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_FAILED", "fields": fields})
		}
		return false, c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_FAILED"})
	}
	return true, nil
}
