package http

import (
	"context"
	"fmt"
	"net/http"

	"traders-bloc/internal/usecase"
	"traders-bloc/pkg/jwt"
	"traders-bloc/pkg/logger"
	"traders-bloc/pkg/queue"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type NotificationHandler struct {
	notificationUseCase usecase.NotificationUseCase
	redisClient         *redis.Client
	queueClient         *queue.Client
	jwtService          *jwt.Service
	logger              *logger.Logger
}

func NewNotificationHandler(
	notificationUseCase usecase.NotificationUseCase,
	redisClient *redis.Client,
	queueClient *queue.Client,
	jwtService *jwt.Service,
	logger *logger.Logger,
) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
		redisClient:         redisClient,
		queueClient:         queueClient,
		jwtService:          jwtService,
		logger:              logger,
	}
}

// QueueStatus godoc
// @Summary      Delivery queue status
// @Description  Number of notification delivery tasks waiting in the queue
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /admin/notifications/queue [get]
func (h *NotificationHandler) QueueStatus(c *gin.Context) {
	queueLength, err := h.queueClient.GetQueueLength()
	if err != nil {
		h.logger.Error("Failed to get queue length: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get queue length"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"queue_length": queueLength})
}

// Stream upgrades the connection to a websocket and relays every
// notification published on the caller's channel until the client
// disconnects. Browsers cannot set headers on websocket requests, so a
// token query parameter is accepted as a fallback.
func (h *NotificationHandler) Stream(c *gin.Context) {
	userID := c.GetString("user_id")

	if userID == "" {
		token := c.Query("token")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token required"})
			return
		}

		claims, err := h.jwtService.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		userID = claims.UserID
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade connection to WebSocket: %v", err)
		return
	}
	defer conn.Close()

	h.logger.Info("WebSocket connected for user %s", userID)

	ctx := context.Background()
	pubsub := h.redisClient.Subscribe(ctx, fmt.Sprintf("notifications:%s", userID))
	defer pubsub.Close()

	redisChannel := pubsub.Channel()
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			case msg, ok := <-redisChannel:
				if !ok || msg == nil {
					// Pub/sub channel closed; stop relaying.
					return
				}
				if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
					h.logger.Error("Failed to write WebSocket message: %v", err)
					return
				}
			}
		}
	}()

	for {
		messageType, _, err := conn.ReadMessage()
		if err != nil {
			h.logger.Warn("WebSocket read error: %v", err)
			break
		}
		if messageType == websocket.CloseMessage {
			break
		}
		if messageType == websocket.PingMessage {
			conn.WriteMessage(websocket.PongMessage, nil)
		}
	}

	close(done)
	h.logger.Info("WebSocket disconnected for user %s", userID)
}
