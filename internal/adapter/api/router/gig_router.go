package router

import (
	"github.com/labstack/echo/v4"

	"freelancehub/internal/adapter/api/handler"
	"freelancehub/internal/adapter/api/middleware"
)

func SetupGigRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	gigHandler := handler.GetGigHandler()

	e.GET("/api/gigs", gigHandler.ListGigs)
	e.GET("/api/gigs/single/:id", gigHandler.GetGig)

	protected := e.Group("/api/gigs")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("", gigHandler.CreateGig)
	protected.GET("/user", gigHandler.ListMyGigs)
	protected.PUT("/:id", gigHandler.UpdateGig)
	protected.DELETE("/:id", gigHandler.DeleteGig)
}
