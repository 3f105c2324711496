package persistent

import (
	"traders-bloc/internal/entity"
	"traders-bloc/internal/model"

	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(admin *entity.Admin) error
	GetByID(id string) (*entity.Admin, error)
	GetByEmail(email string) (*entity.Admin, error)
	ListByRole(role entity.Role) ([]entity.Admin, error)
	Update(admin *entity.Admin) error
	Delete(id string) error
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(admin *entity.Admin) error {
	adminModel := ToAdminModel(admin)
	if err := r.db.Create(adminModel).Error; err != nil {
		return err
	}
	*admin = *ToAdminEntity(adminModel)
	return nil
}

func (r *adminRepository) GetByID(id string) (*entity.Admin, error) {
	var adminModel model.AdminModel
	if err := r.db.Where("id = ?", id).First(&adminModel).Error; err != nil {
		return nil, err
	}
	return ToAdminEntity(&adminModel), nil
}

func (r *adminRepository) GetByEmail(email string) (*entity.Admin, error) {
	var adminModel model.AdminModel
	if err := r.db.Where("email = ?", email).First(&adminModel).Error; err != nil {
		return nil, err
	}
	return ToAdminEntity(&adminModel), nil
}

func (r *adminRepository) ListByRole(role entity.Role) ([]entity.Admin, error) {
	var adminModels []model.AdminModel
	if err := r.db.Where("role = ?", string(role)).Find(&adminModels).Error; err != nil {
		return nil, err
	}

	admins := make([]entity.Admin, len(adminModels))
	for i := range adminModels {
		admins[i] = *ToAdminEntity(&adminModels[i])
	}
	return admins, nil
}

func (r *adminRepository) Update(admin *entity.Admin) error {
	return r.db.Save(ToAdminModel(admin)).Error
}

func (r *adminRepository) Delete(id string) error {
	result := r.db.Delete(&model.AdminModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
