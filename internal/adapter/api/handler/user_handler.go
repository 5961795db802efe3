package handler

import (
	"github.com/labstack/echo/v4"

	"freelancehub/internal/usecase"
	"freelancehub/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

type updateUserRequest struct {
	Image       string `json:"img" validate:"omitempty,url"`
	Country     string `json:"country" validate:"required"`
	Phone       string `json:"phone" validate:"omitempty"`
	Description string `json:"desc" validate:"omitempty,max=500"`
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.Update(c.Request().Context(), userID, userID, usecase.UserUpdateInput{
		Image:       req.Image,
		Country:     req.Country,
		Phone:       req.Phone,
		Description: req.Description,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	actorID := c.Get("uid").(string)

	if err := h.userUseCase.Delete(c.Request().Context(), c.Param("id"), actorID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Account has been deleted",
	})
}
