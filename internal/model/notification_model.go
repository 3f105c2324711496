package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationModel carries either a set of admin recipients (broadcast) or a
// single user recipient (targeted). Both may be empty.
type NotificationModel struct {
	ID        string         `gorm:"type:uuid;primary_key" json:"id"`
	Kind      string         `gorm:"type:varchar(40);not null" json:"kind"`
	Message   string         `gorm:"not null" json:"message"`
	Link      string         `gorm:"type:varchar(500)" json:"link"`
	UserID    *string        `gorm:"type:uuid;index" json:"user_id"`
	IsRead    bool           `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Admins []AdminModel `gorm:"many2many:notification_admins" json:"admins,omitempty"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

func (n *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return nil
}
