package router

import (
	"github.com/labstack/echo/v4"

	"freelancehub/internal/adapter/api/handler"
	"freelancehub/internal/adapter/api/middleware"
)

func SetupMessageRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	messageHandler := handler.GetMessageHandler()

	protected := e.Group("/api/messages")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("", messageHandler.CreateMessage)
	protected.GET("/:id", messageHandler.ListMessages)
	protected.PUT("/read/:conversationId", messageHandler.MarkMessagesRead)
}
