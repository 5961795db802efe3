package handler

import (
	"github.com/labstack/echo/v4"

	"freelancehub/internal/usecase"
	"freelancehub/pkg/response"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type createReviewRequest struct {
	GigID string `json:"gigId" validate:"required"`
	Star  int    `json:"star" validate:"required,min=1,max=5"`
	Desc  string `json:"desc" validate:"required,max=1000"`
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	actorID := c.Get("uid").(string)
	isSeller, _ := c.Get("isSeller").(bool)

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.Create(c.Request().Context(), actorID, isSeller, req.GigID, req.Star, req.Desc)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	reviews, err := h.reviewUseCase.ListByGig(c.Request().Context(), c.Param("gigId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reviews)
}

func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	actorID := c.Get("uid").(string)

	if err := h.reviewUseCase.Delete(c.Request().Context(), c.Param("id"), actorID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Review has been deleted",
	})
}
