package router

import (
	"github.com/labstack/echo/v4"

	"freelancehub/internal/adapter/api/handler"
	"freelancehub/internal/adapter/api/middleware"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	e.GET("/api/reviews/:gigId", reviewHandler.ListReviews)

	protected := e.Group("/api/reviews")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("", reviewHandler.CreateReview)
	protected.DELETE("/:id", reviewHandler.DeleteReview)
}
