package router

import (
	"github.com/labstack/echo/v4"

	"freelancehub/internal/adapter/api/handler"
	"freelancehub/internal/adapter/api/middleware"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	orderHandler := handler.GetOrderHandler()

	protected := e.Group("/api/orders")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("", orderHandler.CreateOrder)
	protected.GET("", orderHandler.ListOrders)
	protected.POST("/create-payment-intent", orderHandler.CreatePaymentIntent)
	protected.PUT("/update-payment", orderHandler.UpdatePayment)
	protected.PUT("/confirm/:id", orderHandler.ConfirmOrder)
}
