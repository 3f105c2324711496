package entity

import "time"

type ApprovalStatus string

const (
	StatusPending      ApprovalStatus = "PENDING"
	StatusApproved     ApprovalStatus = "APPROVED"
	StatusRejected     ApprovalStatus = "REJECTED"
	StatusNotSubmitted ApprovalStatus = "NOT_SUBMITTED"
)

type Invoice struct {
	ID             string         `json:"id"`
	UserID         string         `json:"user_id"`
	VendorID       string         `json:"vendor_id"`
	InvoiceNumber  string         `json:"invoice_number"`
	Description    string         `json:"description"`
	Quantity       int            `json:"quantity"`
	PricePerUnit   float64        `json:"price_per_unit"`
	TotalPrice     float64        `json:"total_price"`
	InvoiceFile    string         `json:"invoice_file"`
	PaymentTerms   string         `json:"payment_terms"`
	DueDate        time.Time      `json:"due_date"`
	Status         ApprovalStatus `json:"status"`
	SubmissionDate time.Time      `json:"submission_date"`
	ReviewDate     *time.Time     `json:"review_date,omitempty"`
	ReviewedByID   string         `json:"reviewed_by_id,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	User   *User   `json:"user,omitempty"`
	Vendor *Vendor `json:"vendor,omitempty"`
}

type Milestone struct {
	ID            string         `json:"id"`
	UserID        string         `json:"user_id"`
	InvoiceID     string         `json:"invoice_id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	SupportingDoc string         `json:"supporting_doc"`
	BankName      string         `json:"bank_name"`
	BankAccountNo string         `json:"bank_account_no"`
	PaymentAmount float64        `json:"payment_amount"`
	DueDate       time.Time      `json:"due_date"`
	PaidAt        *time.Time     `json:"paid_at,omitempty"`
	Status        ApprovalStatus `json:"status"`
	ReviewedByID  string         `json:"reviewed_by_id,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`

	User    *User    `json:"user,omitempty"`
	Invoice *Invoice `json:"invoice,omitempty"`
}

type FundingRequest struct {
	ID               string         `json:"id"`
	UserID           string         `json:"user_id"`
	InvoiceID        string         `json:"invoice_id"`
	RequestedAmount  float64        `json:"requested_amount"`
	YourContribution float64        `json:"your_contribution"`
	Status           ApprovalStatus `json:"status"`
	SubmissionDate   time.Time      `json:"submission_date"`
	ReviewDate       *time.Time     `json:"review_date,omitempty"`
	ReviewedByID     string         `json:"reviewed_by_id,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`

	User    *User    `json:"user,omitempty"`
	Invoice *Invoice `json:"invoice,omitempty"`
}

type KYCDocument struct {
	ID             string         `json:"id"`
	UserID         string         `json:"user_id"`
	DocumentType   string         `json:"document_type"`
	DocumentURL    string         `json:"document_url"`
	FileName       string         `json:"file_name,omitempty"`
	Status         ApprovalStatus `json:"status"`
	SubmissionDate time.Time      `json:"submission_date"`
	ReviewDate     *time.Time     `json:"review_date,omitempty"`
	ReviewedByID   string         `json:"reviewed_by_id,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	User *User `json:"user,omitempty"`
}
