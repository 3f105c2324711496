package persistent

import (
	"traders-bloc/internal/entity"
	"traders-bloc/internal/model"

	"gorm.io/gorm"
)

type AppUserRepository interface {
	Create(user *entity.AppUser) error
	GetByEmail(email string) (*entity.AppUser, error)
}

type appUserRepository struct {
	db *gorm.DB
}

func NewAppUserRepository(db *gorm.DB) AppUserRepository {
	return &appUserRepository{db: db}
}

func (r *appUserRepository) Create(user *entity.AppUser) error {
	userModel := ToAppUserModel(user)
	if err := r.db.Create(userModel).Error; err != nil {
		return err
	}
	*user = *ToAppUserEntity(userModel)
	return nil
}

func (r *appUserRepository) GetByEmail(email string) (*entity.AppUser, error) {
	var userModel model.AppUserModel
	if err := r.db.Where("email = ?", email).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToAppUserEntity(&userModel), nil
}
