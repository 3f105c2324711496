package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceModel struct {
	ID             string         `gorm:"type:uuid;primary_key" json:"id"`
	UserID         string         `gorm:"type:uuid;index;not null" json:"user_id"`
	VendorID       string         `gorm:"type:uuid;index" json:"vendor_id"`
	InvoiceNumber  string         `gorm:"type:varchar(100);not null" json:"invoice_number"`
	Description    string         `json:"description"`
	Quantity       int            `json:"quantity"`
	PricePerUnit   float64        `json:"price_per_unit"`
	TotalPrice     float64        `json:"total_price"`
	InvoiceFile    string         `gorm:"type:varchar(500)" json:"invoice_file"`
	PaymentTerms   string         `json:"payment_terms"`
	DueDate        time.Time      `gorm:"index" json:"due_date"`
	Status         string         `gorm:"type:varchar(20);default:'PENDING';index" json:"status"`
	SubmissionDate time.Time      `gorm:"index" json:"submission_date"`
	ReviewDate     *time.Time     `json:"review_date"`
	ReviewedByID   *string        `gorm:"type:uuid" json:"reviewed_by_id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	User   *UserModel   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Vendor *VendorModel `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
}

func (InvoiceModel) TableName() string {
	return "invoices"
}

func (i *InvoiceModel) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	if i.SubmissionDate.IsZero() {
		i.SubmissionDate = time.Now()
	}
	return nil
}

type MilestoneModel struct {
	ID            string         `gorm:"type:uuid;primary_key" json:"id"`
	UserID        string         `gorm:"type:uuid;index;not null" json:"user_id"`
	InvoiceID     string         `gorm:"type:uuid;index;not null" json:"invoice_id"`
	Title         string         `gorm:"not null" json:"title"`
	Description   string         `json:"description"`
	SupportingDoc string         `gorm:"type:varchar(500)" json:"supporting_doc"`
	BankName      string         `json:"bank_name"`
	BankAccountNo string         `gorm:"type:varchar(50)" json:"bank_account_no"`
	PaymentAmount float64        `json:"payment_amount"`
	DueDate       time.Time      `gorm:"index" json:"due_date"`
	PaidAt        *time.Time     `json:"paid_at"`
	Status        string         `gorm:"type:varchar(20);default:'PENDING';index" json:"status"`
	ReviewedByID  *string        `gorm:"type:uuid" json:"reviewed_by_id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	User    *UserModel    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Invoice *InvoiceModel `gorm:"foreignKey:InvoiceID" json:"invoice,omitempty"`
}

func (MilestoneModel) TableName() string {
	return "milestones"
}

func (m *MilestoneModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

type FundingRequestModel struct {
	ID               string         `gorm:"type:uuid;primary_key" json:"id"`
	UserID           string         `gorm:"type:uuid;index;not null" json:"user_id"`
	InvoiceID        string         `gorm:"type:uuid;index;not null" json:"invoice_id"`
	RequestedAmount  float64        `json:"requested_amount"`
	YourContribution float64        `json:"your_contribution"`
	Status           string         `gorm:"type:varchar(20);default:'PENDING';index" json:"status"`
	SubmissionDate   time.Time      `gorm:"index" json:"submission_date"`
	ReviewDate       *time.Time     `json:"review_date"`
	ReviewedByID     *string        `gorm:"type:uuid" json:"reviewed_by_id"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	User    *UserModel    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Invoice *InvoiceModel `gorm:"foreignKey:InvoiceID" json:"invoice,omitempty"`
}

func (FundingRequestModel) TableName() string {
	return "funding_requests"
}

func (f *FundingRequestModel) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	if f.SubmissionDate.IsZero() {
		f.SubmissionDate = time.Now()
	}
	return nil
}

type KYCDocumentModel struct {
	ID             string         `gorm:"type:uuid;primary_key" json:"id"`
	UserID         string         `gorm:"type:uuid;not null;uniqueIndex:idx_kyc_user_document_type" json:"user_id"`
	DocumentType   string         `gorm:"type:varchar(100);not null;uniqueIndex:idx_kyc_user_document_type" json:"document_type"`
	DocumentURL    string         `gorm:"type:varchar(500);not null" json:"document_url"`
	FileName       string         `json:"file_name"`
	Status         string         `gorm:"type:varchar(20);default:'PENDING';index" json:"status"`
	SubmissionDate time.Time      `gorm:"index" json:"submission_date"`
	ReviewDate     *time.Time     `json:"review_date"`
	ReviewedByID   *string        `gorm:"type:uuid" json:"reviewed_by_id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	User *UserModel `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (KYCDocumentModel) TableName() string {
	return "kyc_documents"
}

func (k *KYCDocumentModel) BeforeCreate(tx *gorm.DB) error {
	if k.ID == "" {
		k.ID = uuid.New().String()
	}
	if k.SubmissionDate.IsZero() {
		k.SubmissionDate = time.Now()
	}
	return nil
}
