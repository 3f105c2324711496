package persistent

import (
	"fmt"
	"time"

	"traders-bloc/internal/apperr"
	"traders-bloc/internal/entity"
	"traders-bloc/internal/model"

	"gorm.io/gorm"
)

// Sort keys are resolved through an explicit whitelist; anything else is
// rejected with BadRequest.
var invoiceSortColumns = map[string]string{
	"invoice_number":  "invoices.invoice_number",
	"description":     "invoices.description",
	"total_price":     "invoices.total_price",
	"due_date":        "invoices.due_date",
	"status":          "invoices.status",
	"submission_date": "invoices.submission_date",
	"created_at":      "invoices.created_at",
	"vendor":          `"Vendor".name`,
	"user":            `"User".first_name`,
}

type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	ListByUser(userID string) ([]entity.Invoice, error)
	List(filter entity.InvoiceFilter) ([]entity.Invoice, int64, error)
	Update(invoice *entity.Invoice) error
	UpdateStatus(id string, status entity.ApprovalStatus, reviewerID string) (*entity.Invoice, error)
	SoftDelete(id string) error
	CountPending() (int64, error)
}

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(invoice *entity.Invoice) error {
	invoiceModel := ToInvoiceModel(invoice)
	if err := r.db.Create(invoiceModel).Error; err != nil {
		return err
	}
	*invoice = *ToInvoiceEntity(invoiceModel)
	return nil
}

func (r *invoiceRepository) GetByID(id string) (*entity.Invoice, error) {
	var invoiceModel model.InvoiceModel
	err := r.db.Preload("User").Preload("Vendor").
		Where("id = ?", id).First(&invoiceModel).Error
	if err != nil {
		return nil, err
	}
	return ToInvoiceEntity(&invoiceModel), nil
}

func (r *invoiceRepository) ListByUser(userID string) ([]entity.Invoice, error) {
	var invoiceModels []model.InvoiceModel
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&invoiceModels).Error
	if err != nil {
		return nil, err
	}

	invoices := make([]entity.Invoice, len(invoiceModels))
	for i := range invoiceModels {
		invoices[i] = *ToInvoiceEntity(&invoiceModels[i])
	}
	return invoices, nil
}

func (r *invoiceRepository) List(filter entity.InvoiceFilter) ([]entity.Invoice, int64, error) {
	query := r.db.Model(&model.InvoiceModel{}).Joins("User").Joins("Vendor")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			`"User".first_name ILIKE ? OR "User".last_name ILIKE ? OR invoices.description ILIKE ? OR invoices.invoice_number ILIKE ?`,
			pattern, pattern, pattern, pattern,
		)
	}
	if filter.Status != "" {
		query = query.Where("invoices.status = ?", string(filter.Status))
	}
	if filter.Vendor != "" {
		query = query.Where(`"Vendor".name ILIKE ?`, "%"+filter.Vendor+"%")
	}
	query = applyDueDateFilters(query, "invoices.due_date", filter.DueDateRange, filter.DueDatePreset)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderClause := "invoices.submission_date DESC"
	if filter.SortBy != "" {
		column, ok := invoiceSortColumns[filter.SortBy]
		if !ok {
			return nil, 0, apperr.BadRequest(fmt.Sprintf("unknown sort key: %s", filter.SortBy))
		}
		orderClause = column + " " + sortDirection(filter.SortOrder)
	}

	var invoiceModels []model.InvoiceModel
	err := query.Order(orderClause).
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&invoiceModels).Error
	if err != nil {
		return nil, 0, err
	}

	invoices := make([]entity.Invoice, len(invoiceModels))
	for i := range invoiceModels {
		invoices[i] = *ToInvoiceEntity(&invoiceModels[i])
	}
	return invoices, total, nil
}

func (r *invoiceRepository) Update(invoice *entity.Invoice) error {
	return r.db.Save(ToInvoiceModel(invoice)).Error
}

func (r *invoiceRepository) UpdateStatus(id string, status entity.ApprovalStatus, reviewerID string) (*entity.Invoice, error) {
	var invoiceModel model.InvoiceModel
	if err := r.db.Where("id = ?", id).First(&invoiceModel).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	invoiceModel.Status = string(status)
	invoiceModel.ReviewDate = &now
	invoiceModel.ReviewedByID = &reviewerID
	if err := r.db.Save(&invoiceModel).Error; err != nil {
		return nil, err
	}
	return ToInvoiceEntity(&invoiceModel), nil
}

func (r *invoiceRepository) SoftDelete(id string) error {
	result := r.db.Delete(&model.InvoiceModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *invoiceRepository) CountPending() (int64, error) {
	var count int64
	err := r.db.Model(&model.InvoiceModel{}).
		Where("status = ?", string(entity.StatusPending)).
		Count(&count).Error
	return count, err
}
