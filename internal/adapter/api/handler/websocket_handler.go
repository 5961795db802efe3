package handler

import (
	"net/http"

	"github.com/google/uuid"
	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"freelancehub/internal/adapter/api/middleware"
	ws "freelancehub/internal/infrastructure/websocket"
	"freelancehub/pkg/logger"
)

type WebSocketHandler struct {
	wsManager      *ws.Manager
	authMiddleware *middleware.AuthMiddleware
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func NewWebSocketHandler(wsManager *ws.Manager, authMiddleware *middleware.AuthMiddleware) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager:      wsManager,
		authMiddleware: authMiddleware,
	}
}

// HandleWebSocket upgrades the connection and hands it to the relay. A
// token is accepted from the auth cookie, the Authorization header or a
// "token" query parameter; connections without one still relay, they just
// carry no user identity.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	var userID string
	if token := h.extractToken(c); token != "" {
		uid, _, err := h.authMiddleware.VerifyToken(token)
		if err == nil {
			userID = uid
		}
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("websocket upgrade: %v", err)
		return err
	}

	client := &ws.Client{
		ID:     uuid.New().String(),
		UserID: userID,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}

	h.wsManager.Register <- client

	go client.ReadPump(h.wsManager)
	go client.WritePump()

	return nil
}

func (h *WebSocketHandler) extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(middleware.AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if token := c.QueryParam("token"); token != "" {
		return token
	}

	authHeader := c.Request().Header.Get("Authorization")
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}

	return ""
}
