package handler

import (
	"github.com/labstack/echo/v4"

	"freelancehub/internal/usecase"
	"freelancehub/pkg/errors"
	"freelancehub/pkg/response"
)

type ConversationHandler struct {
	conversationUseCase *usecase.ConversationUseCase
}

func NewConversationHandler(conversationUseCase *usecase.ConversationUseCase) *ConversationHandler {
	return &ConversationHandler{
		conversationUseCase: conversationUseCase,
	}
}

type createConversationRequest struct {
	To string `json:"to" validate:"required"`
}

func (h *ConversationHandler) CreateConversation(c echo.Context) error {
	actorID := c.Get("uid").(string)
	isSeller, _ := c.Get("isSeller").(bool)

	var req createConversationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	conversation, err := h.conversationUseCase.Create(c.Request().Context(), actorID, isSeller, req.To)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, conversation)
}

func (h *ConversationHandler) ListConversations(c echo.Context) error {
	actorID := c.Get("uid").(string)
	isSeller, _ := c.Get("isSeller").(bool)

	conversations, err := h.conversationUseCase.List(c.Request().Context(), actorID, isSeller)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, conversations)
}

func (h *ConversationHandler) GetConversation(c echo.Context) error {
	conversation, err := h.conversationUseCase.GetSingle(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, conversation)
}

// GetConversationByGig distinguishes "no conversation yet" from a missing
// gig: the former is a 404 with a CONVERSATION_NOT_STARTED code so clients
// can offer to start one.
func (h *ConversationHandler) GetConversationByGig(c echo.Context) error {
	actorID := c.Get("uid").(string)

	conversation, err := h.conversationUseCase.GetByGig(c.Request().Context(), c.Param("gigId"), actorID)
	if err != nil {
		return response.Error(c, err)
	}
	if conversation == nil {
		return response.Error(c, errors.New("CONVERSATION_NOT_STARTED", "No conversation with this seller yet", 404, nil))
	}

	return response.Success(c, conversation)
}

func (h *ConversationHandler) MarkConversationRead(c echo.Context) error {
	isSeller, _ := c.Get("isSeller").(bool)

	conversation, err := h.conversationUseCase.MarkRead(c.Request().Context(), c.Param("id"), isSeller)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, conversation)
}
