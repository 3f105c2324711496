package entity

import "time"

type Vendor struct {
	ID                       string    `json:"id"`
	Name                     string    `json:"name"`
	ContactPerson            string    `json:"contact_person"`
	ContactPersonPhoneNumber string    `json:"contact_person_phone_number"`
	PhoneNumber              string    `json:"phone_number"`
	Address                  string    `json:"address"`
	Email                    string    `json:"email"`
	BankName                 string    `json:"bank_name"`
	BankAccountNumber        string    `json:"bank_account_number"`
	CreatedByID              string    `json:"created_by_id,omitempty"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}
