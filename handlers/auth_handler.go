package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/estiakahmed98/islami-dawa-production-sub001/database"
	"github.com/estiakahmed98/islami-dawa-production-sub001/middlewares"
	"github.com/estiakahmed98/islami-dawa-production-sub001/models"
)

type AuthHandler struct {
	secret string
	log    *zap.Logger
}

func NewAuthHandler(secret string, log *zap.Logger) *AuthHandler {
	return &AuthHandler{secret: secret, log: log}
}

func (h *AuthHandler) signJWT(u models.User, ttl time.Duration) (string, error) {
	claims := middlewares.Claims{
		Sub:   u.ID,
		Email: u.Email,
		Role:  u.Role,
		Name:  u.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.secret))
}

type RegisterReq struct {
	Name     string `json:"name" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	Role     string `json:"role" validate:"required,oneof=centraladmin divisionadmin districtadmin upozilaadmin unionadmin daye"`
	Division string `json:"division"`
	District string `json:"district"`
	Upazila  string `json:"upazila"`
	Union    string `json:"union"`
	Markaz   string `json:"markaz"`
}

type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// POST /auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	var dup models.User
	if err := database.DB.Where("email = ?", email).First(&dup).Error; err == nil {
		return c.JSON(http.StatusConflict, map[string]any{"error": "EMAIL_EXISTS", "code": "EMAIL_EXISTS"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return internalError(c, h.log, "hash password", err)
	}
	rec := models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: string(hash),
		Phone:    strings.TrimSpace(req.Phone),
		Role:     req.Role,
		Division: strings.TrimSpace(req.Division),
		District: strings.TrimSpace(req.District),
		Upazila:  strings.TrimSpace(req.Upazila),
		Union:    strings.TrimSpace(req.Union),
		Markaz:   strings.TrimSpace(req.Markaz),
	}
	if err := database.DB.Create(&rec).Error; err != nil {
		return internalError(c, h.log, "create user", err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"id": rec.ID, "email": rec.Email})
}

// POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	var u models.User
	if err := database.DB.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusUnauthorized, map[string]any{"error": "INVALID_CREDENTIALS"})
		}
		return internalError(c, h.log, "load user", err)
	}
	if u.Banned {
		return c.JSON(http.StatusForbidden, map[string]any{"error": "USER_BANNED"})
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, map[string]any{"error": "INVALID_CREDENTIALS"})
	}

	tok, err := h.signJWT(u, 24*time.Hour)
	if err != nil {
		return internalError(c, h.log, "sign token", err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"token": tok,
		"user": map[string]any{
			"id": u.ID, "name": u.Name, "email": u.Email, "role": u.Role,
			"division": u.Division, "district": u.District, "upazila": u.Upazila,
			"union": u.Union, "markaz": u.Markaz,
		},
	})
}

// GET /auth/check-email?email=...
func (h *AuthHandler) CheckEmail(c echo.Context) error {
	email := strings.ToLower(strings.TrimSpace(c.QueryParam("email")))
	if email == "" {
		return c.JSON(http.StatusOK, map[string]bool{"exists": false})
	}
	var u models.User
	err := database.DB.Where("email = ?", email).First(&u).Error
	return c.JSON(http.StatusOK, map[string]bool{"exists": err == nil})
}
