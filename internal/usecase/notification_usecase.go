package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"traders-bloc/internal/apperr"
	"traders-bloc/internal/entity"
	"traders-bloc/internal/repo/persistent"
	"traders-bloc/pkg/logger"
	"traders-bloc/pkg/queue"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type NotificationUseCase interface {
	Dispatch(message string, kind entity.EventKind, link string, targetUserID string, actingSession *entity.Session) error
	GetByUser(userID string) ([]entity.Notification, error)
	SetRead(id string, isRead bool) (*entity.Notification, error)
	MarkRead(id string) (*entity.Notification, error)
	HandleDeliveryTask(task map[string]interface{}) error
}

type notificationUseCase struct {
	notificationRepo persistent.NotificationRepository
	adminRepo        persistent.AdminRepository
	userRepo         persistent.UserRepository
	activityRepo     persistent.ActivityLogRepository
	redisClient      *redis.Client
	queueClient      *queue.Client
	logger           *logger.Logger
}

func NewNotificationUseCase(
	notificationRepo persistent.NotificationRepository,
	adminRepo persistent.AdminRepository,
	userRepo persistent.UserRepository,
	activityRepo persistent.ActivityLogRepository,
	redisClient *redis.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
) NotificationUseCase {
	return &notificationUseCase{
		notificationRepo: notificationRepo,
		adminRepo:        adminRepo,
		userRepo:         userRepo,
		activityRepo:     activityRepo,
		redisClient:      redisClient,
		queueClient:      queueClient,
		logger:           logger,
	}
}

// Dispatch turns a business event into persisted notification rows.
// Broadcast kinds go to every ADMIN-role admin; targeted kinds go to one
// user; anything else is a no-op. An acting staff session on a targeted
// dispatch additionally appends an activity-log entry.
func (uc *notificationUseCase) Dispatch(message string, kind entity.EventKind, link string, targetUserID string, actingSession *entity.Session) error {
	switch kind.Classify() {
	case entity.BucketBroadcast:
		return uc.dispatchBroadcast(message, kind, link)
	case entity.BucketTargeted:
		return uc.dispatchTargeted(message, kind, link, targetUserID, actingSession)
	default:
		uc.logger.Warn("[NOTIFICATION HANDLER] Unhandled event kind %s, no notification created", kind)
		return nil
	}
}

func (uc *notificationUseCase) dispatchBroadcast(message string, kind entity.EventKind, link string) error {
	admins, err := uc.adminRepo.ListByRole(entity.RoleAdmin)
	if err != nil {
		uc.logger.Error("[NOTIFICATION HANDLER] Failed to list admins for broadcast: %v", err)
		return apperr.Internal("failed to create notification", err)
	}

	notification := &entity.Notification{
		Kind:    kind,
		Message: message,
		Link:    link,
	}
	// The row is created even when no admin exists; it just has no
	// recipients attached.
	for i := range admins {
		notification.AdminIDs = append(notification.AdminIDs, admins[i].ID)
	}

	if err := uc.notificationRepo.Create(notification); err != nil {
		uc.logger.Error("[NOTIFICATION HANDLER] Failed to create broadcast notification: %v", err)
		return apperr.Internal("failed to create notification", err)
	}

	uc.logger.Info("[NOTIFICATION HANDLER] Broadcast notification %s created for %d admins: %s", notification.ID, len(notification.AdminIDs), message)
	uc.enqueueDelivery(notification)
	return nil
}

func (uc *notificationUseCase) dispatchTargeted(message string, kind entity.EventKind, link string, targetUserID string, actingSession *entity.Session) error {
	notification := &entity.Notification{
		Kind:    kind,
		Message: message,
		Link:    link,
	}

	user, err := uc.userRepo.GetByID(targetUserID)
	switch {
	case err == nil:
		notification.UserID = user.ID
	case errors.Is(err, gorm.ErrRecordNotFound):
		// The row is still created without a recipient when the lookup
		// misses.
		uc.logger.Warn("[NOTIFICATION HANDLER] Target user %s not found, creating recipient-less notification", targetUserID)
	default:
		uc.logger.Error("[NOTIFICATION HANDLER] Failed to look up target user %s: %v", targetUserID, err)
		return apperr.Internal("failed to create notification", err)
	}

	if err := uc.notificationRepo.Create(notification); err != nil {
		uc.logger.Error("[NOTIFICATION HANDLER] Failed to create targeted notification: %v", err)
		return apperr.Internal("failed to create notification", err)
	}

	if actingSession != nil {
		entry := &entity.ActivityLog{
			AdminID: actingSession.IdentityID,
			Action:  message,
			Kind:    kind,
		}
		if err := uc.activityRepo.Create(entry); err != nil {
			uc.logger.Error("[NOTIFICATION HANDLER] Failed to record activity for admin %s: %v", actingSession.IdentityID, err)
			return apperr.Internal("failed to record activity", err)
		}
	}

	uc.logger.Info("[NOTIFICATION HANDLER] Targeted notification %s created for user %s: %s", notification.ID, notification.UserID, message)
	uc.enqueueDelivery(notification)
	return nil
}

// enqueueDelivery hands the persisted notification to the delivery worker.
// Best effort: a missing or failing queue never fails the dispatch.
func (uc *notificationUseCase) enqueueDelivery(notification *entity.Notification) {
	if uc.queueClient == nil {
		return
	}

	task := map[string]interface{}{
		"notification_id": notification.ID,
	}
	if err := uc.queueClient.PublishNotificationTask(task); err != nil {
		uc.logger.Warn("[NOTIFICATION HANDLER] Failed to enqueue delivery for notification %s: %v", notification.ID, err)
	}
}

func (uc *notificationUseCase) GetByUser(userID string) ([]entity.Notification, error) {
	notifications, err := uc.notificationRepo.ListByUser(userID)
	if err != nil {
		return nil, apperr.Internal("failed to retrieve notifications", err)
	}
	return notifications, nil
}

func (uc *notificationUseCase) SetRead(id string, isRead bool) (*entity.Notification, error) {
	notification, err := uc.notificationRepo.SetRead(id, isRead)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Notification not found")
		}
		return nil, apperr.Internal("failed to update notification", err)
	}
	return notification, nil
}

func (uc *notificationUseCase) MarkRead(id string) (*entity.Notification, error) {
	return uc.SetRead(id, true)
}

// HandleDeliveryTask is the queue consumer side: it fans the persisted
// notification out to each recipient's redis inbox and pub/sub channel so
// open websocket streams pick it up.
func (uc *notificationUseCase) HandleDeliveryTask(task map[string]interface{}) error {
	notificationID, _ := task["notification_id"].(string)
	if notificationID == "" {
		uc.logger.Error("[NOTIFICATION HANDLER] Invalid delivery task: missing notification_id, task=%+v", task)
		return fmt.Errorf("invalid task: missing notification_id")
	}

	notification, err := uc.notificationRepo.GetByID(notificationID)
	if err != nil {
		uc.logger.Error("[NOTIFICATION HANDLER] Failed to load notification %s: %v", notificationID, err)
		return err
	}

	recipients := notification.AdminIDs
	if notification.UserID != "" {
		recipients = append(recipients, notification.UserID)
	}
	if len(recipients) == 0 {
		uc.logger.Info("[NOTIFICATION HANDLER] Notification %s has no recipients, nothing to deliver", notificationID)
		return nil
	}

	delivered := 0
	for _, recipientID := range recipients {
		if err := uc.pushToInbox(recipientID, notification); err != nil {
			uc.logger.Warn("[NOTIFICATION HANDLER] Failed to deliver notification %s to %s: %v", notificationID, recipientID, err)
			continue
		}
		delivered++
	}

	uc.logger.Info("[NOTIFICATION HANDLER] Delivered notification %s to %d/%d recipients", notificationID, delivered, len(recipients))
	return nil
}

func (uc *notificationUseCase) pushToInbox(recipientID string, notification *entity.Notification) error {
	if uc.redisClient == nil {
		return nil
	}

	notificationJSON, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	ctx := context.Background()
	inboxKey := fmt.Sprintf("notifications:%s", recipientID)
	if err := uc.redisClient.LPush(ctx, inboxKey, notificationJSON).Err(); err != nil {
		return fmt.Errorf("failed to LPush notification to Redis: %w", err)
	}
	uc.redisClient.LTrim(ctx, inboxKey, 0, 99)
	uc.redisClient.Expire(ctx, inboxKey, 30*24*time.Hour)

	if err := uc.redisClient.Publish(ctx, inboxKey, notificationJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish notification to channel %s: %w", inboxKey, err)
	}
	return nil
}
