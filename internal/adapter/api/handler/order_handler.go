package handler

import (
	"github.com/labstack/echo/v4"

	"freelancehub/internal/usecase"
	"freelancehub/pkg/response"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

type createOrderRequest struct {
	GigID string `json:"gigId" validate:"required"`
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	buyerID := c.Get("uid").(string)

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.CreateOrder(c.Request().Context(), req.GigID, buyerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	actorID := c.Get("uid").(string)
	isSeller, _ := c.Get("isSeller").(bool)

	orders, err := h.orderUseCase.List(c.Request().Context(), actorID, isSeller)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, orders)
}

func (h *OrderHandler) CreatePaymentIntent(c echo.Context) error {
	buyerID := c.Get("uid").(string)

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.orderUseCase.CreatePaymentIntent(c.Request().Context(), req.GigID, buyerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"orderId":      result.OrderID,
		"clientSecret": result.ClientSecret,
	})
}

type updatePaymentRequest struct {
	OrderID       string `json:"orderId" validate:"required"`
	PaymentIntent string `json:"payment_intent" validate:"required"`
}

func (h *OrderHandler) UpdatePayment(c echo.Context) error {
	var req updatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.UpdatePayment(c.Request().Context(), req.OrderID, req.PaymentIntent)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) ConfirmOrder(c echo.Context) error {
	order, err := h.orderUseCase.Confirm(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}
