package entity

import "time"

// EventKind identifies what happened in the system. The dispatcher decides
// from the kind alone who gets notified.
type EventKind string

const (
	EventFundingUpdate   EventKind = "funding_update"
	EventInvoiceUpdate   EventKind = "invoice_update"
	EventMilestoneUpdate EventKind = "milestone_update"

	EventFundingStatusUpdate   EventKind = "funding_status_update"
	EventInvoiceStatusUpdate   EventKind = "invoice_status_update"
	EventMilestoneStatusUpdate EventKind = "milestone_status_update"
	EventKYCStatusUpdate       EventKind = "kyc_status_update"

	EventSystemAlert EventKind = "system_alert"
)

// Bucket is the dispatch strategy for an event kind.
type Bucket int

const (
	BucketUnhandled Bucket = iota
	BucketBroadcast
	BucketTargeted
)

// Classify maps an event kind to its dispatch bucket. Kinds outside the two
// known families are unhandled and dispatch as a no-op.
func (k EventKind) Classify() Bucket {
	switch k {
	case EventFundingUpdate, EventInvoiceUpdate, EventMilestoneUpdate:
		return BucketBroadcast
	case EventFundingStatusUpdate, EventInvoiceStatusUpdate, EventMilestoneStatusUpdate, EventKYCStatusUpdate:
		return BucketTargeted
	default:
		return BucketUnhandled
	}
}

type Notification struct {
	ID        string    `json:"id"`
	Kind      EventKind `json:"kind"`
	Message   string    `json:"message"`
	Link      string    `json:"link"`
	UserID    string    `json:"user_id,omitempty"`
	AdminIDs  []string  `json:"admin_ids,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
