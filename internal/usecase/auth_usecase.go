package usecase

import (
	"errors"
	"fmt"
	"time"

	"traders-bloc/internal/apperr"
	"traders-bloc/internal/entity"
	"traders-bloc/internal/repo/persistent"
	"traders-bloc/pkg/jwt"
	"traders-bloc/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterUserInput struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	Email       string
	Password    string
	CompanyName string
	TaxID       string
	Industry    string
}

type RegisterAppUserInput struct {
	FirstName      string
	LastName       string
	PhoneNumber    string
	Email          string
	Password       string
	ProfilePicture string
	DateOfBirth    *time.Time
}

type AuthUseCase interface {
	RegisterUser(input RegisterUserInput) (*entity.User, error)
	RegisterAppUser(input RegisterAppUserInput) (*entity.AppUser, error)
	Login(email, password string) (*entity.Session, string, error)
}

type authUseCase struct {
	userRepo       persistent.UserRepository
	appUserRepo    persistent.AppUserRepository
	adminRepo      persistent.AdminRepository
	notificationUC NotificationUseCase
	jwtService     *jwt.Service
	logger         *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	appUserRepo persistent.AppUserRepository,
	adminRepo persistent.AdminRepository,
	notificationUC NotificationUseCase,
	jwtService *jwt.Service,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:       userRepo,
		appUserRepo:    appUserRepo,
		adminRepo:      adminRepo,
		notificationUC: notificationUC,
		jwtService:     jwtService,
		logger:         logger,
	}
}

func (uc *authUseCase) RegisterUser(input RegisterUserInput) (*entity.User, error) {
	_, err := uc.userRepo.GetByEmail(input.Email)
	if err == nil {
		return nil, apperr.BadRequest("User already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		uc.logger.Error("Failed to check existing user: %v", err)
		return nil, apperr.Internal("An unexpected error occurred during registration", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, apperr.Internal("An unexpected error occurred during registration", err)
	}

	user := &entity.User{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		PhoneNumber: input.PhoneNumber,
		Email:       input.Email,
		Password:    string(hashedPassword),
		CompanyName: input.CompanyName,
		TaxID:       input.TaxID,
		Industry:    input.Industry,
	}
	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, apperr.Internal("An unexpected error occurred during registration", err)
	}

	// system_alert is not a recognized dispatch kind, so no notification
	// row comes out of registration today.
	message := fmt.Sprintf("New user %s %s has registered", user.FirstName, user.LastName)
	if err := uc.notificationUC.Dispatch(message, entity.EventSystemAlert, fmt.Sprintf("/user/%s", user.ID), "", nil); err != nil {
		uc.logger.Warn("Failed to dispatch registration event: %v", err)
	}

	user.Password = ""
	return user, nil
}

func (uc *authUseCase) RegisterAppUser(input RegisterAppUserInput) (*entity.AppUser, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, apperr.Internal("Failed to register user", err)
	}

	appUser := &entity.AppUser{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		PhoneNumber:    input.PhoneNumber,
		Email:          input.Email,
		Password:       string(hashedPassword),
		ProfilePicture: input.ProfilePicture,
		DateOfBirth:    input.DateOfBirth,
	}
	if err := uc.appUserRepo.Create(appUser); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Email already exists")
		}
		uc.logger.Error("Failed to create app user: %v", err)
		return nil, apperr.Internal("Failed to register user", err)
	}

	appUser.Password = ""
	return appUser, nil
}

// Login checks the users table first and falls back to admins, so one
// credential form serves both principal kinds.
func (uc *authUseCase) Login(email, password string) (*entity.Session, string, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err == nil {
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
			return nil, "", apperr.Unauthenticated("Invalid credentials")
		}
		return uc.issueSession(user.ID, user.Email, entity.RoleUser)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		uc.logger.Error("Failed to look up user %s: %v", email, err)
		return nil, "", apperr.Internal("Login failed", err)
	}

	admin, err := uc.adminRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperr.Unauthenticated("Invalid credentials")
		}
		uc.logger.Error("Failed to look up admin %s: %v", email, err)
		return nil, "", apperr.Internal("Login failed", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return nil, "", apperr.Unauthenticated("Invalid credentials")
	}
	if admin.Status == entity.AdminStatusSuspended {
		return nil, "", apperr.Forbidden("Account is suspended")
	}
	return uc.issueSession(admin.ID, admin.Email, admin.Role)
}

func (uc *authUseCase) issueSession(id, email string, role entity.Role) (*entity.Session, string, error) {
	token, err := uc.jwtService.GenerateToken(id, email, string(role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", apperr.Internal("Login failed", err)
	}
	return &entity.Session{IdentityID: id, Email: email, Role: role}, token, nil
}
