package router

import (
	"github.com/labstack/echo/v4"

	"freelancehub/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupGigRouter(e, authMiddleware)
	SetupConversationRouter(e, authMiddleware)
	SetupMessageRouter(e, authMiddleware)
	SetupOrderRouter(e, authMiddleware)
	SetupReviewRouter(e, authMiddleware)
	SetupFileRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
