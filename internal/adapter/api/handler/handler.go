package handler

import (
	"freelancehub/internal/usecase"
	"freelancehub/pkg/config"
)

var (
	authHandler         *AuthHandler
	userHandler         *UserHandler
	gigHandler          *GigHandler
	conversationHandler *ConversationHandler
	messageHandler      *MessageHandler
	orderHandler        *OrderHandler
	reviewHandler       *ReviewHandler
)

func Setup(
	cfg *config.Config,
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	gigUseCase *usecase.GigUseCase,
	conversationUseCase *usecase.ConversationUseCase,
	messageUseCase *usecase.MessageUseCase,
	orderUseCase *usecase.OrderUseCase,
	reviewUseCase *usecase.ReviewUseCase,
) {
	authHandler = NewAuthHandler(authUseCase, cfg)
	userHandler = NewUserHandler(userUseCase)
	gigHandler = NewGigHandler(gigUseCase)
	conversationHandler = NewConversationHandler(conversationUseCase)
	messageHandler = NewMessageHandler(messageUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetGigHandler() *GigHandler {
	return gigHandler
}

func GetConversationHandler() *ConversationHandler {
	return conversationHandler
}

func GetMessageHandler() *MessageHandler {
	return messageHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}
