package entity

import "time"

type User struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email"`
	Password    string    `json:"-"`
	CompanyName string    `json:"company_name"`
	TaxID       string    `json:"tax_id"`
	Industry    string    `json:"industry"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AppUser is a mobile-app principal, kept separate from web users.
type AppUser struct {
	ID             string     `json:"id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	PhoneNumber    string     `json:"phone_number"`
	Email          string     `json:"email"`
	Password       string     `json:"-"`
	ProfilePicture string     `json:"profile_picture,omitempty"`
	DateOfBirth    *time.Time `json:"date_of_birth,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// UserProfile is the aggregate a user sees on their dashboard.
type UserProfile struct {
	User            User             `json:"user"`
	Invoices        []Invoice        `json:"invoices"`
	Milestones      []Milestone      `json:"milestones"`
	FundingRequests []FundingRequest `json:"funding_requests"`
	KYCDocuments    []KYCDocument    `json:"kyc_documents"`
	Notifications   []Notification   `json:"notifications"`
}
