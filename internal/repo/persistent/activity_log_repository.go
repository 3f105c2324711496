package persistent

import (
	"traders-bloc/internal/entity"
	"traders-bloc/internal/model"

	"gorm.io/gorm"
)

type ActivityLogRepository interface {
	Create(entry *entity.ActivityLog) error
	ListRecentByAdmin(adminID string, limit int) ([]entity.ActivityLog, error)
}

type activityLogRepository struct {
	db *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepository{db: db}
}

func (r *activityLogRepository) Create(entry *entity.ActivityLog) error {
	entryModel := ToActivityLogModel(entry)
	if err := r.db.Create(entryModel).Error; err != nil {
		return err
	}
	*entry = *ToActivityLogEntity(entryModel)
	return nil
}

func (r *activityLogRepository) ListRecentByAdmin(adminID string, limit int) ([]entity.ActivityLog, error) {
	var entryModels []model.ActivityLogModel
	err := r.db.Where("admin_id = ?", adminID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entryModels).Error
	if err != nil {
		return nil, err
	}

	entries := make([]entity.ActivityLog, len(entryModels))
	for i := range entryModels {
		entries[i] = *ToActivityLogEntity(&entryModels[i])
	}
	return entries, nil
}
