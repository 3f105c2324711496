package persistent

import (
	"time"

	"traders-bloc/internal/entity"
	"traders-bloc/internal/model"

	"gorm.io/gorm"
)

// ReportRepository serves the aggregate reads behind admin reporting. A zero
// `to` leaves the window open-ended.
type ReportRepository interface {
	CountInvoices(from, to time.Time) (int64, error)
	CountUsers(from, to time.Time) (int64, error)
	CountMilestones(from, to time.Time) (int64, error)
	SumInvoiceTotal(from, to time.Time) (float64, error)
	InvoiceTrends(from time.Time) ([]entity.InvoiceTrend, error)
	InvoiceStatusDistribution() ([]entity.StatusCount, error)
	MilestoneStatusDistribution() ([]entity.StatusCount, error)
	UserSignups(from time.Time) ([]entity.UserActivityPoint, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func window(query *gorm.DB, column string, from, to time.Time) *gorm.DB {
	query = query.Where(column+" >= ?", from)
	if !to.IsZero() {
		query = query.Where(column+" < ?", to)
	}
	return query
}

func (r *reportRepository) CountInvoices(from, to time.Time) (int64, error) {
	var count int64
	query := r.db.Model(&model.InvoiceModel{})
	err := window(query, "submission_date", from, to).Count(&count).Error
	return count, err
}

func (r *reportRepository) CountUsers(from, to time.Time) (int64, error) {
	var count int64
	query := r.db.Model(&model.UserModel{})
	err := window(query, "created_at", from, to).Count(&count).Error
	return count, err
}

func (r *reportRepository) CountMilestones(from, to time.Time) (int64, error) {
	var count int64
	query := r.db.Model(&model.MilestoneModel{})
	err := window(query, "created_at", from, to).Count(&count).Error
	return count, err
}

func (r *reportRepository) SumInvoiceTotal(from, to time.Time) (float64, error) {
	var total float64
	query := r.db.Model(&model.InvoiceModel{}).
		Select("COALESCE(SUM(total_price), 0)")
	err := window(query, "submission_date", from, to).Scan(&total).Error
	return total, err
}

func (r *reportRepository) InvoiceTrends(from time.Time) ([]entity.InvoiceTrend, error) {
	var trends []entity.InvoiceTrend
	err := r.db.Model(&model.InvoiceModel{}).
		Select("DATE(submission_date) AS date, COALESCE(SUM(total_price), 0) AS amount, COUNT(id) AS count").
		Where("submission_date >= ?", from).
		Group("DATE(submission_date)").
		Order("date ASC").
		Scan(&trends).Error
	return trends, err
}

func (r *reportRepository) InvoiceStatusDistribution() ([]entity.StatusCount, error) {
	var distribution []entity.StatusCount
	err := r.db.Model(&model.InvoiceModel{}).
		Select("status AS name, COUNT(id) AS value").
		Group("status").
		Scan(&distribution).Error
	return distribution, err
}

func (r *reportRepository) MilestoneStatusDistribution() ([]entity.StatusCount, error) {
	var distribution []entity.StatusCount
	err := r.db.Model(&model.MilestoneModel{}).
		Select("status AS name, COUNT(id) AS value").
		Group("status").
		Scan(&distribution).Error
	return distribution, err
}

func (r *reportRepository) UserSignups(from time.Time) ([]entity.UserActivityPoint, error) {
	var points []entity.UserActivityPoint
	err := r.db.Model(&model.UserModel{}).
		Select("DATE(created_at) AS date, COUNT(id) AS active_users, COUNT(id) AS new_users").
		Where("created_at >= ?", from).
		Group("DATE(created_at)").
		Order("date ASC").
		Scan(&points).Error
	return points, err
}
