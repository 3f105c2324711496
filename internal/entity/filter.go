package entity

import "time"

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// DueDatePreset is a named due-date window relative to the current day.
type DueDatePreset string

const (
	DueDateAll       DueDatePreset = "all"
	DueDateOverdue   DueDatePreset = "overdue"
	DueDateToday     DueDatePreset = "due-today"
	DueDateThisWeek  DueDatePreset = "due-this-week"
	DueDateThisMonth DueDatePreset = "due-this-month"
)

// Window resolves the preset into a half-open [from, to) interval anchored at
// the start of now's day. Overdue has no lower bound; "all" has neither.
func (p DueDatePreset) Window(now time.Time) (from, to *time.Time) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch p {
	case DueDateOverdue:
		return nil, &day
	case DueDateToday:
		end := day.Add(24 * time.Hour)
		return &day, &end
	case DueDateThisWeek:
		end := day.Add(7 * 24 * time.Hour)
		return &day, &end
	case DueDateThisMonth:
		end := time.Date(day.Year(), day.Month()+1, 0, 0, 0, 0, 0, day.Location())
		return &day, &end
	default:
		return nil, nil
	}
}

type DateRange struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

type AmountRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

type PaymentStatus string

const (
	PaymentAll    PaymentStatus = "all"
	PaymentPaid   PaymentStatus = "paid"
	PaymentUnpaid PaymentStatus = "unpaid"
)

type ReviewStatus string

const (
	ReviewAll      ReviewStatus = "all"
	ReviewReviewed ReviewStatus = "reviewed"
	ReviewPending  ReviewStatus = "pending"
)

// Pagination is shared by every listing operation.
type Pagination struct {
	Page      int       `json:"page"`
	Limit     int       `json:"limit"`
	SortBy    string    `json:"sort_by"`
	SortOrder SortOrder `json:"sort_order"`
}

func (p *Pagination) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.SortOrder != SortAsc && p.SortOrder != SortDesc {
		p.SortOrder = SortDesc
	}
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

type PageMetadata struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

func NewPageMetadata(total int64, p Pagination) PageMetadata {
	pages := total / int64(p.Limit)
	if total%int64(p.Limit) != 0 {
		pages++
	}
	return PageMetadata{Total: total, Page: p.Page, Limit: p.Limit, TotalPages: pages}
}

type MilestoneFilter struct {
	Pagination
	Search        string
	Status        ApprovalStatus
	DueDateRange  *DateRange
	DueDatePreset DueDatePreset
	PaymentStatus PaymentStatus
	AmountRange   *AmountRange
}

type InvoiceFilter struct {
	Pagination
	Search        string
	Status        ApprovalStatus
	Vendor        string
	DueDateRange  *DateRange
	DueDatePreset DueDatePreset
}

type FundingRequestFilter struct {
	Pagination
	Search            string
	Status            ApprovalStatus
	DateRange         *DateRange
	AmountRange       *AmountRange
	ContributionRange *AmountRange
	ReviewStatus      ReviewStatus
}

type KYCFilter struct {
	Pagination
	Search string
	Status ApprovalStatus
}

type VendorFilter struct {
	Pagination
	Search string
}
