package persistent

import (
	"fmt"

	"traders-bloc/internal/apperr"
	"traders-bloc/internal/entity"
	"traders-bloc/internal/model"

	"gorm.io/gorm"
)

var milestoneSortColumns = map[string]string{
	"title":          "milestones.title",
	"description":    "milestones.description",
	"payment_amount": "milestones.payment_amount",
	"due_date":       "milestones.due_date",
	"status":         "milestones.status",
	"created_at":     "milestones.created_at",
	"user":           `"User".first_name`,
	"invoice":        `"Invoice".invoice_number`,
}

type MilestoneRepository interface {
	Create(milestone *entity.Milestone) error
	GetByID(id string) (*entity.Milestone, error)
	ListByUser(userID string) ([]entity.Milestone, error)
	List(filter entity.MilestoneFilter) ([]entity.Milestone, int64, error)
	Update(milestone *entity.Milestone) error
	UpdateStatus(id string, status entity.ApprovalStatus, reviewerID string) (*entity.Milestone, error)
	SoftDelete(id string) error
	CountPending() (int64, error)
}

type milestoneRepository struct {
	db *gorm.DB
}

func NewMilestoneRepository(db *gorm.DB) MilestoneRepository {
	return &milestoneRepository{db: db}
}

func (r *milestoneRepository) Create(milestone *entity.Milestone) error {
	milestoneModel := ToMilestoneModel(milestone)
	if err := r.db.Create(milestoneModel).Error; err != nil {
		return err
	}
	*milestone = *ToMilestoneEntity(milestoneModel)
	return nil
}

func (r *milestoneRepository) GetByID(id string) (*entity.Milestone, error) {
	var milestoneModel model.MilestoneModel
	err := r.db.Preload("User").Preload("Invoice").
		Where("id = ?", id).First(&milestoneModel).Error
	if err != nil {
		return nil, err
	}
	return ToMilestoneEntity(&milestoneModel), nil
}

func (r *milestoneRepository) ListByUser(userID string) ([]entity.Milestone, error) {
	var milestoneModels []model.MilestoneModel
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&milestoneModels).Error
	if err != nil {
		return nil, err
	}

	milestones := make([]entity.Milestone, len(milestoneModels))
	for i := range milestoneModels {
		milestones[i] = *ToMilestoneEntity(&milestoneModels[i])
	}
	return milestones, nil
}

func (r *milestoneRepository) List(filter entity.MilestoneFilter) ([]entity.Milestone, int64, error) {
	query := r.db.Model(&model.MilestoneModel{}).Joins("User").Joins("Invoice")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			`milestones.description ILIKE ? OR "User".first_name ILIKE ? OR "User".last_name ILIKE ? OR "Invoice".invoice_number ILIKE ? OR milestones.bank_name ILIKE ?`,
			pattern, pattern, pattern, pattern, pattern,
		)
	}
	if filter.Status != "" {
		query = query.Where("milestones.status = ?", string(filter.Status))
	}
	query = applyDueDateFilters(query, "milestones.due_date", filter.DueDateRange, filter.DueDatePreset)
	query = applyAmountRange(query, "milestones.payment_amount", filter.AmountRange)

	switch filter.PaymentStatus {
	case entity.PaymentPaid:
		query = query.Where("milestones.paid_at IS NOT NULL")
	case entity.PaymentUnpaid:
		query = query.Where("milestones.paid_at IS NULL")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderClause := "milestones.created_at DESC"
	if filter.SortBy != "" {
		column, ok := milestoneSortColumns[filter.SortBy]
		if !ok {
			return nil, 0, apperr.BadRequest(fmt.Sprintf("unknown sort key: %s", filter.SortBy))
		}
		orderClause = column + " " + sortDirection(filter.SortOrder)
	}

	var milestoneModels []model.MilestoneModel
	err := query.Order(orderClause).
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&milestoneModels).Error
	if err != nil {
		return nil, 0, err
	}

	milestones := make([]entity.Milestone, len(milestoneModels))
	for i := range milestoneModels {
		milestones[i] = *ToMilestoneEntity(&milestoneModels[i])
	}
	return milestones, total, nil
}

func (r *milestoneRepository) Update(milestone *entity.Milestone) error {
	return r.db.Save(ToMilestoneModel(milestone)).Error
}

func (r *milestoneRepository) UpdateStatus(id string, status entity.ApprovalStatus, reviewerID string) (*entity.Milestone, error) {
	var milestoneModel model.MilestoneModel
	if err := r.db.Where("id = ?", id).First(&milestoneModel).Error; err != nil {
		return nil, err
	}

	milestoneModel.Status = string(status)
	milestoneModel.ReviewedByID = &reviewerID
	if err := r.db.Save(&milestoneModel).Error; err != nil {
		return nil, err
	}
	return ToMilestoneEntity(&milestoneModel), nil
}

func (r *milestoneRepository) SoftDelete(id string) error {
	result := r.db.Delete(&model.MilestoneModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *milestoneRepository) CountPending() (int64, error) {
	var count int64
	err := r.db.Model(&model.MilestoneModel{}).
		Where("status = ?", string(entity.StatusPending)).
		Count(&count).Error
	return count, err
}
