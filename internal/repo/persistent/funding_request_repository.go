package persistent

import (
	"fmt"
	"time"

	"traders-bloc/internal/apperr"
	"traders-bloc/internal/entity"
	"traders-bloc/internal/model"

	"gorm.io/gorm"
)

var fundingRequestSortColumns = map[string]string{
	"requested_amount":  "funding_requests.requested_amount",
	"your_contribution": "funding_requests.your_contribution",
	"status":            "funding_requests.status",
	"submission_date":   "funding_requests.submission_date",
	"created_at":        "funding_requests.created_at",
	"user":              `"User".first_name`,
	"invoice":           `"Invoice".description`,
}

type FundingRequestRepository interface {
	Create(request *entity.FundingRequest) error
	GetByID(id string) (*entity.FundingRequest, error)
	ListByUser(userID string) ([]entity.FundingRequest, error)
	List(filter entity.FundingRequestFilter) ([]entity.FundingRequest, int64, error)
	UpdateStatus(id string, status entity.ApprovalStatus, reviewerID string) (*entity.FundingRequest, error)
	CountPending() (int64, error)
	SumApprovedRequested() (float64, error)
}

type fundingRequestRepository struct {
	db *gorm.DB
}

func NewFundingRequestRepository(db *gorm.DB) FundingRequestRepository {
	return &fundingRequestRepository{db: db}
}

func (r *fundingRequestRepository) Create(request *entity.FundingRequest) error {
	requestModel := ToFundingRequestModel(request)
	if err := r.db.Create(requestModel).Error; err != nil {
		return err
	}
	*request = *ToFundingRequestEntity(requestModel)
	return nil
}

func (r *fundingRequestRepository) GetByID(id string) (*entity.FundingRequest, error) {
	var requestModel model.FundingRequestModel
	err := r.db.Preload("User").Preload("Invoice").
		Where("id = ?", id).First(&requestModel).Error
	if err != nil {
		return nil, err
	}
	return ToFundingRequestEntity(&requestModel), nil
}

func (r *fundingRequestRepository) ListByUser(userID string) ([]entity.FundingRequest, error) {
	var requestModels []model.FundingRequestModel
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requestModels).Error
	if err != nil {
		return nil, err
	}

	requests := make([]entity.FundingRequest, len(requestModels))
	for i := range requestModels {
		requests[i] = *ToFundingRequestEntity(&requestModels[i])
	}
	return requests, nil
}

func (r *fundingRequestRepository) List(filter entity.FundingRequestFilter) ([]entity.FundingRequest, int64, error) {
	query := r.db.Model(&model.FundingRequestModel{}).Joins("User").Joins("Invoice")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			`"User".first_name ILIKE ? OR "User".last_name ILIKE ? OR "Invoice".description ILIKE ?`,
			pattern, pattern, pattern,
		)
	}
	if filter.Status != "" {
		query = query.Where("funding_requests.status = ?", string(filter.Status))
	}
	query = applyDateRange(query, "funding_requests.submission_date", filter.DateRange)
	query = applyAmountRange(query, "funding_requests.requested_amount", filter.AmountRange)
	query = applyAmountRange(query, "funding_requests.your_contribution", filter.ContributionRange)

	switch filter.ReviewStatus {
	case entity.ReviewReviewed:
		query = query.Where("funding_requests.review_date IS NOT NULL")
	case entity.ReviewPending:
		query = query.Where("funding_requests.review_date IS NULL")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderClause := "funding_requests.submission_date DESC"
	if filter.SortBy != "" {
		column, ok := fundingRequestSortColumns[filter.SortBy]
		if !ok {
			return nil, 0, apperr.BadRequest(fmt.Sprintf("unknown sort key: %s", filter.SortBy))
		}
		orderClause = column + " " + sortDirection(filter.SortOrder)
	}

	var requestModels []model.FundingRequestModel
	err := query.Order(orderClause).
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&requestModels).Error
	if err != nil {
		return nil, 0, err
	}

	requests := make([]entity.FundingRequest, len(requestModels))
	for i := range requestModels {
		requests[i] = *ToFundingRequestEntity(&requestModels[i])
	}
	return requests, total, nil
}

func (r *fundingRequestRepository) UpdateStatus(id string, status entity.ApprovalStatus, reviewerID string) (*entity.FundingRequest, error) {
	var requestModel model.FundingRequestModel
	if err := r.db.Where("id = ?", id).First(&requestModel).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	requestModel.Status = string(status)
	requestModel.ReviewDate = &now
	requestModel.ReviewedByID = &reviewerID
	if err := r.db.Save(&requestModel).Error; err != nil {
		return nil, err
	}
	return ToFundingRequestEntity(&requestModel), nil
}

func (r *fundingRequestRepository) CountPending() (int64, error) {
	var count int64
	err := r.db.Model(&model.FundingRequestModel{}).
		Where("status = ?", string(entity.StatusPending)).
		Count(&count).Error
	return count, err
}

func (r *fundingRequestRepository) SumApprovedRequested() (float64, error) {
	var total float64
	err := r.db.Model(&model.FundingRequestModel{}).
		Where("status = ?", string(entity.StatusApproved)).
		Select("COALESCE(SUM(requested_amount), 0)").
		Scan(&total).Error
	return total, err
}
