package main

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"freelancehub/internal/adapter/api"
	"freelancehub/internal/adapter/api/handler"
	apimiddleware "freelancehub/internal/adapter/api/middleware"
	"freelancehub/internal/adapter/api/router"
	"freelancehub/internal/adapter/repository"
	"freelancehub/internal/domain/service"
	"freelancehub/internal/infrastructure/auth"
	"freelancehub/internal/infrastructure/ratelimit"
	"freelancehub/internal/infrastructure/storage"
	"freelancehub/internal/infrastructure/websocket"
	"freelancehub/internal/usecase"
	"freelancehub/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if cfg.CredentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	} else if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirestoreProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	var storageClient *storage.CloudStorageClient
	if cfg.StorageBucket != "" {
		storageClient, err = storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.CredentialsFile)
		if err != nil {
			log.Fatalf("Failed to initialize Cloud Storage: %v", err)
		}
		defer storageClient.Close()
	}

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	gigRepo := repository.NewFirestoreGigRepository(firestoreClient)
	conversationRepo := repository.NewFirestoreConversationRepository(firestoreClient)
	messageRepo := repository.NewFirestoreMessageRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)

	tokenManager := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine(ctx)

	paymentGateway := service.NewPaymentGateway(func() service.PaymentService {
		if cfg.StripeSecretKey == "" {
			return nil
		}
		return service.NewStripePaymentService(cfg.StripeSecretKey)
	})

	authUseCase := usecase.NewAuthUseCase(userRepo, tokenManager)
	userUseCase := usecase.NewUserUseCase(userRepo)
	gigUseCase := usecase.NewGigUseCase(gigRepo)
	conversationUseCase := usecase.NewConversationUseCase(conversationRepo, gigRepo, rateLimiter)
	messageUseCase := usecase.NewMessageUseCase(messageRepo, conversationRepo, rateLimiter)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, gigRepo, userRepo, paymentGateway)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, gigRepo)

	handler.Setup(cfg, authUseCase, userUseCase, gigUseCase, conversationUseCase, messageUseCase, orderUseCase, reviewUseCase)
	handler.SetupFileHandler(storageClient, cfg)

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(tokenManager)
	wsHandler := handler.NewWebSocketHandler(wsManager, authMiddleware)

	router.Setup(e, authMiddleware)
	router.SetupWebSocketRouter(e, wsHandler)

	// Locally stored uploads are served straight from disk.
	if cfg.StorageBucket == "" {
		e.Static("/uploads", "uploads")
	}

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
