package entity

import "time"

type ReportRange string

const (
	ReportWeek  ReportRange = "week"
	ReportMonth ReportRange = "month"
	ReportYear  ReportRange = "year"
)

// Bounds returns the current window start and the start of the preceding
// window of the same length, both relative to now.
func (r ReportRange) Bounds(now time.Time) (start, previousStart time.Time) {
	switch r {
	case ReportWeek:
		start = now.AddDate(0, 0, -7)
		previousStart = start.AddDate(0, 0, -7)
	case ReportMonth:
		start = now.AddDate(0, -1, 0)
		previousStart = start.AddDate(0, -1, 0)
	case ReportYear:
		start = now.AddDate(-1, 0, 0)
		previousStart = start.AddDate(-1, 0, 0)
	}
	return start, previousStart
}

func (r ReportRange) Valid() bool {
	return r == ReportWeek || r == ReportMonth || r == ReportYear
}

type InvoiceTrend struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
	Count  int64     `json:"count"`
}

type StatusCount struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

type MilestoneProgress struct {
	Name      string `json:"name"`
	Completed int64  `json:"completed"`
	Pending   int64  `json:"pending"`
}

type UserActivityPoint struct {
	Date        time.Time `json:"date"`
	ActiveUsers int64     `json:"activeUsers"`
	NewUsers    int64     `json:"newUsers"`
}

type Report struct {
	TotalInvoices      int64               `json:"totalInvoices"`
	InvoiceGrowth      float64             `json:"invoiceGrowth"`
	ActiveUsers        int64               `json:"activeUsers"`
	UserGrowth         float64             `json:"userGrowth"`
	TotalMilestones    int64               `json:"totalMilestones"`
	MilestoneGrowth    float64             `json:"milestoneGrowth"`
	TotalAmount        float64             `json:"totalAmount"`
	AmountGrowth       float64             `json:"amountGrowth"`
	InvoiceTrends      []InvoiceTrend      `json:"invoiceTrends"`
	StatusDistribution []StatusCount       `json:"statusDistribution"`
	MilestoneProgress  []MilestoneProgress `json:"milestoneProgress"`
	UserActivity       []UserActivityPoint `json:"userActivity"`
}

// DashboardSummary is the admin landing-page aggregate.
type DashboardSummary struct {
	Admin               *Admin         `json:"admin"`
	PendingInvoices     int64          `json:"pendingInvoices"`
	PendingFundRequest  int64          `json:"pendingFundRequest"`
	TotalFunded         float64        `json:"totalFunded"`
	PendingMilestone    int64          `json:"pendingMilestone"`
	RecentActivity      []ActivityLog  `json:"recentActivity"`
	UnreadNotifications []Notification `json:"unreadNotifications"`
}
