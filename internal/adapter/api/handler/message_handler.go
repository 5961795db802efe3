package handler

import (
	"github.com/labstack/echo/v4"

	"freelancehub/internal/usecase"
	"freelancehub/pkg/response"
)

type MessageHandler struct {
	messageUseCase *usecase.MessageUseCase
}

func NewMessageHandler(messageUseCase *usecase.MessageUseCase) *MessageHandler {
	return &MessageHandler{
		messageUseCase: messageUseCase,
	}
}

type createMessageRequest struct {
	ConversationID string `json:"conversationId" validate:"required"`
	Desc           string `json:"desc" validate:"required,max=2000"`
}

func (h *MessageHandler) CreateMessage(c echo.Context) error {
	actorID := c.Get("uid").(string)
	isSeller, _ := c.Get("isSeller").(bool)

	var req createMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.messageUseCase.Create(c.Request().Context(), req.ConversationID, actorID, isSeller, req.Desc)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

func (h *MessageHandler) ListMessages(c echo.Context) error {
	messages, err := h.messageUseCase.List(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}

func (h *MessageHandler) MarkMessagesRead(c echo.Context) error {
	isSeller, _ := c.Get("isSeller").(bool)

	if err := h.messageUseCase.MarkRead(c.Request().Context(), c.Param("conversationId"), isSeller); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Conversation has been marked as read",
	})
}
