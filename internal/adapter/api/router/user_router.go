package router

import (
	"github.com/labstack/echo/v4"

	"freelancehub/internal/adapter/api/handler"
	"freelancehub/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	e.GET("/api/users/:id", userHandler.GetUser)

	protected := e.Group("/api/users")
	protected.Use(authMiddleware.Authenticate)

	protected.PUT("", userHandler.UpdateUser)
	protected.DELETE("/:id", userHandler.DeleteUser)
}
