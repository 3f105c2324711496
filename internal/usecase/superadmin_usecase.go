package usecase

import (
	"errors"
	"fmt"

	"traders-bloc/internal/apperr"
	"traders-bloc/internal/entity"
	"traders-bloc/internal/repo/persistent"
	"traders-bloc/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CreateAdminInput struct {
	Email    string
	Name     string
	Password string
	Role     entity.Role
}

type SuperAdminUseCase interface {
	CreateAdmin(input CreateAdminInput) (*entity.Admin, error)
	UpdateAdmin(session *entity.Session, adminID string, status entity.AdminStatus) (*entity.Admin, error)
	UpdateAdminPermissions(adminID string, role entity.Role) (*entity.Admin, error)
	DeleteAdmin(session *entity.Session, adminID string) error
}

type superAdminUseCase struct {
	adminRepo    persistent.AdminRepository
	activityRepo persistent.ActivityLogRepository
	logger       *logger.Logger
}

func NewSuperAdminUseCase(
	adminRepo persistent.AdminRepository,
	activityRepo persistent.ActivityLogRepository,
	logger *logger.Logger,
) SuperAdminUseCase {
	return &superAdminUseCase{
		adminRepo:    adminRepo,
		activityRepo: activityRepo,
		logger:       logger,
	}
}

func (uc *superAdminUseCase) CreateAdmin(input CreateAdminInput) (*entity.Admin, error) {
	if input.Role != entity.RoleAdmin {
		return nil, apperr.BadRequest("New admins must be created with the ADMIN role")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash admin password: %v", err)
		return nil, apperr.Internal("Failed to create admin", err)
	}

	admin := &entity.Admin{
		Email:    input.Email,
		Name:     input.Name,
		Password: string(hashedPassword),
		Role:     input.Role,
		Status:   entity.AdminStatusActive,
	}
	if err := uc.adminRepo.Create(admin); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Email already exists")
		}
		uc.logger.Error("Failed to create admin: %v", err)
		return nil, apperr.Internal("Failed to create admin", err)
	}

	admin.Password = ""
	return admin, nil
}

func (uc *superAdminUseCase) UpdateAdmin(session *entity.Session, adminID string, status entity.AdminStatus) (*entity.Admin, error) {
	if status != entity.AdminStatusActive && status != entity.AdminStatusSuspended {
		return nil, apperr.BadRequest("status must be ACTIVE or SUSPENDED")
	}

	admin, err := uc.adminRepo.GetByID(adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Admin not found")
		}
		return nil, apperr.Internal("Failed to update admin", err)
	}

	admin.Status = status
	if err := uc.adminRepo.Update(admin); err != nil {
		uc.logger.Error("Failed to update admin %s: %v", adminID, err)
		return nil, apperr.Internal("Failed to update admin", err)
	}

	uc.logActivity(session, fmt.Sprintf("Updated admin: %s", admin.Email))

	admin.Password = ""
	return admin, nil
}

func (uc *superAdminUseCase) UpdateAdminPermissions(adminID string, role entity.Role) (*entity.Admin, error) {
	if role != entity.RoleAdmin && role != entity.RoleSuperAdmin {
		return nil, apperr.BadRequest("role must be ADMIN or SUPER_ADMIN")
	}

	admin, err := uc.adminRepo.GetByID(adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Admin not found")
		}
		return nil, apperr.Internal("Failed to update admin permissions", err)
	}

	admin.Role = role
	if err := uc.adminRepo.Update(admin); err != nil {
		uc.logger.Error("Failed to update permissions for admin %s: %v", adminID, err)
		return nil, apperr.Internal("Failed to update admin permissions", err)
	}

	admin.Password = ""
	return admin, nil
}

func (uc *superAdminUseCase) DeleteAdmin(session *entity.Session, adminID string) error {
	admin, err := uc.adminRepo.GetByID(adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Admin not found")
		}
		return apperr.Internal("Failed to delete admin", err)
	}

	if err := uc.adminRepo.Delete(adminID); err != nil {
		uc.logger.Error("Failed to delete admin %s: %v", adminID, err)
		return apperr.Internal("Failed to delete admin", err)
	}

	uc.logActivity(session, fmt.Sprintf("Deleted admin: %s", admin.Email))
	return nil
}

// Staff-management actions land in the same audit trail as review actions.
func (uc *superAdminUseCase) logActivity(session *entity.Session, action string) {
	entry := &entity.ActivityLog{
		AdminID: session.IdentityID,
		Action:  action,
		Kind:    entity.EventInvoiceUpdate,
	}
	if err := uc.activityRepo.Create(entry); err != nil {
		uc.logger.Warn("Failed to record admin activity: %v", err)
	}
}
