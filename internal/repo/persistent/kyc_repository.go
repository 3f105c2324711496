package persistent

import (
	"fmt"
	"time"

	"traders-bloc/internal/apperr"
	"traders-bloc/internal/entity"
	"traders-bloc/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var kycSortColumns = map[string]string{
	"document_type":   "kyc_documents.document_type",
	"status":          "kyc_documents.status",
	"submission_date": "kyc_documents.submission_date",
	"created_at":      "kyc_documents.created_at",
	"company":         `"User".company_name`,
	"user":            `"User".first_name`,
}

type KYCRepository interface {
	UpsertBatch(userID string, documents []entity.KYCDocument) ([]entity.KYCDocument, error)
	GetByID(id string) (*entity.KYCDocument, error)
	ListByUser(userID string) ([]entity.KYCDocument, error)
	List(filter entity.KYCFilter) ([]entity.KYCDocument, int64, error)
	UpdateStatus(id string, status entity.ApprovalStatus, reviewerID string) (*entity.KYCDocument, error)
}

type kycRepository struct {
	db *gorm.DB
}

func NewKYCRepository(db *gorm.DB) KYCRepository {
	return &kycRepository{db: db}
}

// UpsertBatch writes every document in one transaction keyed on
// (user_id, document_type); resubmission resets the review to PENDING.
// Either the whole batch lands or none of it does.
func (r *kycRepository) UpsertBatch(userID string, documents []entity.KYCDocument) ([]entity.KYCDocument, error) {
	documentModels := make([]*model.KYCDocumentModel, len(documents))

	err := r.db.Transaction(func(tx *gorm.DB) error {
		for i := range documents {
			documentModel := ToKYCDocumentModel(&documents[i])
			documentModel.UserID = userID
			documentModel.Status = string(entity.StatusPending)

			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "user_id"}, {Name: "document_type"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"document_url": documentModel.DocumentURL,
					"file_name":    documentModel.FileName,
					"status":       string(entity.StatusPending),
					"updated_at":   time.Now(),
				}),
			}).Create(documentModel).Error
			if err != nil {
				return err
			}
			documentModels[i] = documentModel
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := make([]entity.KYCDocument, len(documentModels))
	for i := range documentModels {
		result[i] = *ToKYCDocumentEntity(documentModels[i])
	}
	return result, nil
}

func (r *kycRepository) GetByID(id string) (*entity.KYCDocument, error) {
	var documentModel model.KYCDocumentModel
	err := r.db.Preload("User").Where("id = ?", id).First(&documentModel).Error
	if err != nil {
		return nil, err
	}
	return ToKYCDocumentEntity(&documentModel), nil
}

func (r *kycRepository) ListByUser(userID string) ([]entity.KYCDocument, error) {
	var documentModels []model.KYCDocumentModel
	err := r.db.Where("user_id = ?", userID).
		Order("submission_date DESC").
		Find(&documentModels).Error
	if err != nil {
		return nil, err
	}

	documents := make([]entity.KYCDocument, len(documentModels))
	for i := range documentModels {
		documents[i] = *ToKYCDocumentEntity(&documentModels[i])
	}
	return documents, nil
}

func (r *kycRepository) List(filter entity.KYCFilter) ([]entity.KYCDocument, int64, error) {
	query := r.db.Model(&model.KYCDocumentModel{}).Joins("User")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			`"User".first_name ILIKE ? OR "User".last_name ILIKE ? OR "User".company_name ILIKE ? OR "User".email ILIKE ? OR "User".industry ILIKE ?`,
			pattern, pattern, pattern, pattern, pattern,
		)
	}
	if filter.Status != "" {
		query = query.Where("kyc_documents.status = ?", string(filter.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderClause := "kyc_documents.submission_date DESC"
	if filter.SortBy != "" {
		column, ok := kycSortColumns[filter.SortBy]
		if !ok {
			return nil, 0, apperr.BadRequest(fmt.Sprintf("unknown sort key: %s", filter.SortBy))
		}
		orderClause = column + " " + sortDirection(filter.SortOrder)
	}

	var documentModels []model.KYCDocumentModel
	err := query.Order(orderClause).
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&documentModels).Error
	if err != nil {
		return nil, 0, err
	}

	documents := make([]entity.KYCDocument, len(documentModels))
	for i := range documentModels {
		documents[i] = *ToKYCDocumentEntity(&documentModels[i])
	}
	return documents, total, nil
}

func (r *kycRepository) UpdateStatus(id string, status entity.ApprovalStatus, reviewerID string) (*entity.KYCDocument, error) {
	var documentModel model.KYCDocumentModel
	if err := r.db.Where("id = ?", id).First(&documentModel).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	documentModel.Status = string(status)
	documentModel.ReviewDate = &now
	documentModel.ReviewedByID = &reviewerID
	if err := r.db.Save(&documentModel).Error; err != nil {
		return nil, err
	}
	return ToKYCDocumentEntity(&documentModel), nil
}
