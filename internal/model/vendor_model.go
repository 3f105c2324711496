package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VendorModel struct {
	ID                       string         `gorm:"type:uuid;primary_key" json:"id"`
	Name                     string         `gorm:"not null" json:"name"`
	ContactPerson            string         `json:"contact_person"`
	ContactPersonPhoneNumber string         `gorm:"type:varchar(30)" json:"contact_person_phone_number"`
	PhoneNumber              string         `gorm:"type:varchar(30)" json:"phone_number"`
	Address                  string         `json:"address"`
	Email                    string         `gorm:"uniqueIndex;not null" json:"email"`
	BankName                 string         `json:"bank_name"`
	BankAccountNumber        string         `gorm:"type:varchar(50)" json:"bank_account_number"`
	CreatedByID              *string        `gorm:"type:uuid" json:"created_by_id"`
	CreatedAt                time.Time      `json:"created_at"`
	UpdatedAt                time.Time      `json:"updated_at"`
	DeletedAt                gorm.DeletedAt `gorm:"index" json:"-"`
}

func (VendorModel) TableName() string {
	return "vendors"
}

func (v *VendorModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
