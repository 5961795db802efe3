package router

import (
	"github.com/labstack/echo/v4"

	"freelancehub/internal/adapter/api/handler"
	"freelancehub/internal/adapter/api/middleware"
)

func SetupFileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	fileHandler := handler.GetFileHandler()

	e.POST("/api/upload", fileHandler.Upload, authMiddleware.Authenticate)
}
