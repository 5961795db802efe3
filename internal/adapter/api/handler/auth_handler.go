package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"freelancehub/internal/adapter/api/middleware"
	"freelancehub/internal/usecase"
	"freelancehub/pkg/config"
	"freelancehub/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
	cfg         *config.Config
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cfg:         cfg,
	}
}

type registerRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=30"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Image       string `json:"img" validate:"omitempty,url"`
	Country     string `json:"country" validate:"required"`
	Phone       string `json:"phone" validate:"omitempty"`
	Description string `json:"desc" validate:"omitempty,max=500"`
	IsSeller    bool   `json:"isSeller"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		Image:       req.Image,
		Country:     req.Country,
		Phone:       req.Phone,
		Description: req.Description,
		IsSeller:    req.IsSeller,
	})
	if err != nil {
		return response.Error(c, err)
	}

	h.setAuthCookie(c, result.Token)

	return response.Created(c, result.User)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	h.setAuthCookie(c, result.Token)

	return response.Success(c, result.User)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
		Secure:   true,
	})

	return response.Success(c, map[string]string{
		"message": "User has been logged out",
	})
}

func (h *AuthHandler) Me(c echo.Context) error {
	userID := c.Get("uid").(string)

	user, err := h.authUseCase.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *AuthHandler) setAuthCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(h.cfg.JWTExpiry) * time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
		Secure:   true,
	})
}
