package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID          string         `gorm:"type:uuid;primary_key" json:"id"`
	FirstName   string         `gorm:"not null" json:"first_name"`
	LastName    string         `gorm:"not null" json:"last_name"`
	PhoneNumber string         `gorm:"type:varchar(30)" json:"phone_number"`
	Email       string         `gorm:"uniqueIndex;not null" json:"email"`
	Password    string         `gorm:"not null" json:"-"`
	CompanyName string         `json:"company_name"`
	TaxID       string         `gorm:"type:varchar(50)" json:"tax_id"`
	Industry    string         `json:"industry"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

type AppUserModel struct {
	ID             string         `gorm:"type:uuid;primary_key" json:"id"`
	FirstName      string         `gorm:"not null" json:"first_name"`
	LastName       string         `gorm:"not null" json:"last_name"`
	PhoneNumber    string         `gorm:"type:varchar(30)" json:"phone_number"`
	Email          string         `gorm:"uniqueIndex;not null" json:"email"`
	Password       string         `gorm:"not null" json:"-"`
	ProfilePicture string         `gorm:"type:varchar(500)" json:"profile_picture"`
	DateOfBirth    *time.Time     `json:"date_of_birth"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (AppUserModel) TableName() string {
	return "app_users"
}

func (u *AppUserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
