package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminModel struct {
	ID        string         `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Email     string         `gorm:"uniqueIndex;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Role      string         `gorm:"type:varchar(20);default:'ADMIN'" json:"role"`
	Status    string         `gorm:"type:varchar(20);default:'ACTIVE'" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (AdminModel) TableName() string {
	return "admins"
}

func (a *AdminModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

type ActivityLogModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	AdminID   string    `gorm:"type:uuid;index;not null" json:"admin_id"`
	Action    string    `gorm:"not null" json:"action"`
	Kind      string    `gorm:"type:varchar(40)" json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

func (ActivityLogModel) TableName() string {
	return "activity_logs"
}

func (l *ActivityLogModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
