package router

import (
	"github.com/labstack/echo/v4"

	"freelancehub/internal/adapter/api/handler"
	"freelancehub/internal/adapter/api/middleware"
)

func SetupConversationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	conversationHandler := handler.GetConversationHandler()

	protected := e.Group("/api/conversations")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("", conversationHandler.CreateConversation)
	protected.GET("", conversationHandler.ListConversations)
	protected.GET("/single/:id", conversationHandler.GetConversation)
	protected.GET("/gig/:gigId", conversationHandler.GetConversationByGig)
	protected.PUT("/:id", conversationHandler.MarkConversationRead)
}
