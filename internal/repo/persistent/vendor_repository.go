package persistent

import (
	"fmt"

	"traders-bloc/internal/apperr"
	"traders-bloc/internal/entity"
	"traders-bloc/internal/model"

	"gorm.io/gorm"
)

var vendorSortColumns = map[string]string{
	"name":           "vendors.name",
	"contact_person": "vendors.contact_person",
	"email":          "vendors.email",
	"created_at":     "vendors.created_at",
}

type VendorRepository interface {
	Create(vendor *entity.Vendor) error
	GetByID(id string) (*entity.Vendor, error)
	ListActive() ([]entity.Vendor, error)
	List(filter entity.VendorFilter) ([]entity.Vendor, int64, error)
	Update(vendor *entity.Vendor) error
}

type vendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{db: db}
}

func (r *vendorRepository) Create(vendor *entity.Vendor) error {
	vendorModel := ToVendorModel(vendor)
	if err := r.db.Create(vendorModel).Error; err != nil {
		return err
	}
	*vendor = *ToVendorEntity(vendorModel)
	return nil
}

func (r *vendorRepository) GetByID(id string) (*entity.Vendor, error) {
	var vendorModel model.VendorModel
	if err := r.db.Where("id = ?", id).First(&vendorModel).Error; err != nil {
		return nil, err
	}
	return ToVendorEntity(&vendorModel), nil
}

func (r *vendorRepository) ListActive() ([]entity.Vendor, error) {
	var vendorModels []model.VendorModel
	if err := r.db.Order("name ASC").Find(&vendorModels).Error; err != nil {
		return nil, err
	}

	vendors := make([]entity.Vendor, len(vendorModels))
	for i := range vendorModels {
		vendors[i] = *ToVendorEntity(&vendorModels[i])
	}
	return vendors, nil
}

func (r *vendorRepository) List(filter entity.VendorFilter) ([]entity.Vendor, int64, error) {
	query := r.db.Model(&model.VendorModel{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"name ILIKE ? OR contact_person ILIKE ? OR email ILIKE ? OR phone_number ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderClause := "vendors.name ASC"
	if filter.SortBy != "" {
		column, ok := vendorSortColumns[filter.SortBy]
		if !ok {
			return nil, 0, apperr.BadRequest(fmt.Sprintf("unknown sort key: %s", filter.SortBy))
		}
		orderClause = column + " " + sortDirection(filter.SortOrder)
	}

	var vendorModels []model.VendorModel
	err := query.Order(orderClause).
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&vendorModels).Error
	if err != nil {
		return nil, 0, err
	}

	vendors := make([]entity.Vendor, len(vendorModels))
	for i := range vendorModels {
		vendors[i] = *ToVendorEntity(&vendorModels[i])
	}
	return vendors, total, nil
}

func (r *vendorRepository) Update(vendor *entity.Vendor) error {
	return r.db.Save(ToVendorModel(vendor)).Error
}
