package persistent

import (
	"traders-bloc/internal/entity"
	"traders-bloc/internal/model"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(notification *entity.Notification) error
	GetByID(id string) (*entity.Notification, error)
	ListByUser(userID string) ([]entity.Notification, error)
	ListUnread() ([]entity.Notification, error)
	SetRead(id string, isRead bool) (*entity.Notification, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// Create persists the notification together with its admin recipient set.
// The Admins association only carries IDs, so existing rows are linked, not
// re-created.
func (r *notificationRepository) Create(notification *entity.Notification) error {
	notificationModel := ToNotificationModel(notification)
	err := r.db.Omit("Admins.*").Create(notificationModel).Error
	if err != nil {
		return err
	}
	*notification = *ToNotificationEntity(notificationModel)
	return nil
}

func (r *notificationRepository) GetByID(id string) (*entity.Notification, error) {
	var notificationModel model.NotificationModel
	err := r.db.Preload("Admins").Where("id = ?", id).First(&notificationModel).Error
	if err != nil {
		return nil, err
	}
	return ToNotificationEntity(&notificationModel), nil
}

func (r *notificationRepository) ListByUser(userID string) ([]entity.Notification, error) {
	var notificationModels []model.NotificationModel
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notificationModels).Error
	if err != nil {
		return nil, err
	}

	notifications := make([]entity.Notification, len(notificationModels))
	for i := range notificationModels {
		notifications[i] = *ToNotificationEntity(&notificationModels[i])
	}
	return notifications, nil
}

func (r *notificationRepository) ListUnread() ([]entity.Notification, error) {
	var notificationModels []model.NotificationModel
	err := r.db.Where("is_read = ?", false).
		Order("created_at DESC").
		Find(&notificationModels).Error
	if err != nil {
		return nil, err
	}

	notifications := make([]entity.Notification, len(notificationModels))
	for i := range notificationModels {
		notifications[i] = *ToNotificationEntity(&notificationModels[i])
	}
	return notifications, nil
}

func (r *notificationRepository) SetRead(id string, isRead bool) (*entity.Notification, error) {
	var notificationModel model.NotificationModel
	if err := r.db.Where("id = ?", id).First(&notificationModel).Error; err != nil {
		return nil, err
	}

	notificationModel.IsRead = isRead
	if err := r.db.Save(&notificationModel).Error; err != nil {
		return nil, err
	}
	return ToNotificationEntity(&notificationModel), nil
}
