package usecase

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"traders-bloc/internal/apperr"
	"traders-bloc/internal/entity"
	"traders-bloc/internal/repo/persistent"
	"traders-bloc/pkg/logger"
	"traders-bloc/pkg/s3"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UpdateUserInput struct {
	FirstName       string
	LastName        string
	PhoneNumber     string
	Email           string
	CompanyName     string
	TaxID           string
	Industry        string
	CurrentPassword string
	NewPassword     string
}

type KYCDocumentInput struct {
	DocumentType string
	DocumentURL  string
	FileName     string
}

type InvoiceInput struct {
	InvoiceNumber string
	VendorID      string
	Description   string
	Quantity      int
	PricePerUnit  float64
	TotalPrice    float64
	InvoiceFile   string
	PaymentTerms  string
	DueDate       time.Time
}

type MilestoneInput struct {
	InvoiceID     string
	Title         string
	Description   string
	SupportingDoc string
	BankName      string
	BankAccountNo string
	PaymentAmount float64
	DueDate       time.Time
}

type FundingRequestInput struct {
	InvoiceID        string
	RequestedAmount  float64
	YourContribution float64
}

type UserUseCase interface {
	GetProfile(userID string) (*entity.UserProfile, error)
	UpdateUser(userID string, input UpdateUserInput) (*entity.User, error)
	UpsertKYCDocuments(userID string, documents []KYCDocumentInput) ([]entity.KYCDocument, error)
	CreateInvoice(userID string, input InvoiceInput) (*entity.Invoice, error)
	UpdateInvoice(userID, invoiceID string, input InvoiceInput) (*entity.Invoice, error)
	DeleteInvoice(userID, invoiceID string) error
	ListInvoices(userID string) ([]entity.Invoice, error)
	CreateMilestone(userID string, input MilestoneInput) (*entity.Milestone, error)
	UpdateMilestone(userID, milestoneID string, input MilestoneInput) (*entity.Milestone, error)
	DeleteMilestone(userID, milestoneID string) error
	CreateFundingRequest(userID string, input FundingRequestInput) (*entity.FundingRequest, error)
	ListVendors() ([]entity.Vendor, error)
	UploadDocument(userID, fileName string, file io.Reader, contentType string) (string, error)
}

type userUseCase struct {
	userRepo           persistent.UserRepository
	invoiceRepo        persistent.InvoiceRepository
	milestoneRepo      persistent.MilestoneRepository
	fundingRequestRepo persistent.FundingRequestRepository
	kycRepo            persistent.KYCRepository
	vendorRepo         persistent.VendorRepository
	notificationRepo   persistent.NotificationRepository
	notificationUC     NotificationUseCase
	s3Client           *s3.Client
	logger             *logger.Logger
}

func NewUserUseCase(
	userRepo persistent.UserRepository,
	invoiceRepo persistent.InvoiceRepository,
	milestoneRepo persistent.MilestoneRepository,
	fundingRequestRepo persistent.FundingRequestRepository,
	kycRepo persistent.KYCRepository,
	vendorRepo persistent.VendorRepository,
	notificationRepo persistent.NotificationRepository,
	notificationUC NotificationUseCase,
	s3Client *s3.Client,
	logger *logger.Logger,
) UserUseCase {
	return &userUseCase{
		userRepo:           userRepo,
		invoiceRepo:        invoiceRepo,
		milestoneRepo:      milestoneRepo,
		fundingRequestRepo: fundingRequestRepo,
		kycRepo:            kycRepo,
		vendorRepo:         vendorRepo,
		notificationRepo:   notificationRepo,
		notificationUC:     notificationUC,
		s3Client:           s3Client,
		logger:             logger,
	}
}

func (uc *userUseCase) GetProfile(userID string) (*entity.UserProfile, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal("Failed to retrieve user data", err)
	}
	user.Password = ""

	invoices, err := uc.invoiceRepo.ListByUser(userID)
	if err != nil {
		return nil, apperr.Internal("Failed to retrieve user data", err)
	}
	milestones, err := uc.milestoneRepo.ListByUser(userID)
	if err != nil {
		return nil, apperr.Internal("Failed to retrieve user data", err)
	}
	fundingRequests, err := uc.fundingRequestRepo.ListByUser(userID)
	if err != nil {
		return nil, apperr.Internal("Failed to retrieve user data", err)
	}
	kycDocuments, err := uc.kycRepo.ListByUser(userID)
	if err != nil {
		return nil, apperr.Internal("Failed to retrieve user data", err)
	}
	notifications, err := uc.notificationRepo.ListByUser(userID)
	if err != nil {
		return nil, apperr.Internal("Failed to retrieve user data", err)
	}

	return &entity.UserProfile{
		User:            *user,
		Invoices:        invoices,
		Milestones:      milestones,
		FundingRequests: fundingRequests,
		KYCDocuments:    kycDocuments,
		Notifications:   notifications,
	}, nil
}

func (uc *userUseCase) UpdateUser(userID string, input UpdateUserInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal("Failed to update user", err)
	}

	if input.CurrentPassword != "" {
		if input.NewPassword == "" {
			return nil, apperr.BadRequest("New password must be provided when updating password")
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)) != nil {
			return nil, apperr.BadRequest("Current password is incorrect")
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperr.Internal("Failed to update user", err)
		}
		user.Password = string(hashedPassword)
	} else if input.NewPassword != "" {
		return nil, apperr.BadRequest("Current password is required to update password")
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.PhoneNumber != "" {
		user.PhoneNumber = input.PhoneNumber
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.CompanyName != "" {
		user.CompanyName = input.CompanyName
	}
	if input.TaxID != "" {
		user.TaxID = input.TaxID
	}
	if input.Industry != "" {
		user.Industry = input.Industry
	}

	if err := uc.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Email already exists")
		}
		uc.logger.Error("Failed to update user %s: %v", userID, err)
		return nil, apperr.Internal("Failed to update user", err)
	}

	user.Password = ""
	return user, nil
}

// UpsertKYCDocuments validates the whole batch up front; nothing is written
// unless every document passes.
func (uc *userUseCase) UpsertKYCDocuments(userID string, documents []KYCDocumentInput) ([]entity.KYCDocument, error) {
	if len(documents) == 0 {
		return nil, apperr.BadRequest("At least one KYC document is required")
	}
	for _, doc := range documents {
		if doc.DocumentType == "" || doc.DocumentURL == "" {
			return nil, apperr.BadRequest("Each KYC document requires a document type and document URL")
		}
	}

	batch := make([]entity.KYCDocument, len(documents))
	for i, doc := range documents {
		batch[i] = entity.KYCDocument{
			DocumentType: doc.DocumentType,
			DocumentURL:  doc.DocumentURL,
			FileName:     doc.FileName,
		}
	}

	result, err := uc.kycRepo.UpsertBatch(userID, batch)
	if err != nil {
		uc.logger.Error("KYC documents submission error for user %s: %v", userID, err)
		return nil, apperr.Internal("Failed to submit KYC documents", err)
	}
	return result, nil
}

func (uc *userUseCase) CreateInvoice(userID string, input InvoiceInput) (*entity.Invoice, error) {
	invoice := &entity.Invoice{
		UserID:        userID,
		VendorID:      input.VendorID,
		InvoiceNumber: input.InvoiceNumber,
		Description:   input.Description,
		Quantity:      input.Quantity,
		PricePerUnit:  input.PricePerUnit,
		TotalPrice:    input.TotalPrice,
		InvoiceFile:   input.InvoiceFile,
		PaymentTerms:  input.PaymentTerms,
		DueDate:       input.DueDate,
		Status:        entity.StatusPending,
	}
	if err := uc.invoiceRepo.Create(invoice); err != nil {
		uc.logger.Error("Invoice creation error: %v", err)
		return nil, apperr.Internal("Failed to create invoice", err)
	}

	if err := uc.notificationUC.Dispatch("New invoice has been created", entity.EventInvoiceUpdate, fmt.Sprintf("/invoices/%s", invoice.ID), "", nil); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (uc *userUseCase) UpdateInvoice(userID, invoiceID string, input InvoiceInput) (*entity.Invoice, error) {
	invoice, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Invoice not found")
		}
		return nil, apperr.Internal("Failed to update invoice", err)
	}
	if invoice.UserID != userID {
		return nil, apperr.Forbidden("You do not have permission to access this resource")
	}

	invoice.InvoiceNumber = input.InvoiceNumber
	invoice.Description = input.Description
	invoice.Quantity = input.Quantity
	invoice.PricePerUnit = input.PricePerUnit
	invoice.TotalPrice = input.TotalPrice
	invoice.PaymentTerms = input.PaymentTerms
	invoice.DueDate = input.DueDate
	invoice.InvoiceFile = input.InvoiceFile
	invoice.User = nil
	invoice.Vendor = nil

	if err := uc.invoiceRepo.Update(invoice); err != nil {
		uc.logger.Error("Invoice update error: %v", err)
		return nil, apperr.Internal("Failed to update invoice", err)
	}

	if err := uc.notificationUC.Dispatch("Invoice has been updated", entity.EventInvoiceUpdate, fmt.Sprintf("/invoices/%s", invoice.ID), "", nil); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (uc *userUseCase) DeleteInvoice(userID, invoiceID string) error {
	invoice, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Invoice not found")
		}
		return apperr.Internal("Failed to delete invoice", err)
	}
	if invoice.UserID != userID {
		return apperr.Forbidden("You do not have permission to access this resource")
	}

	if err := uc.invoiceRepo.SoftDelete(invoiceID); err != nil {
		uc.logger.Error("Delete invoice error: %v", err)
		return apperr.Internal("Failed to delete invoice", err)
	}

	if err := uc.notificationUC.Dispatch("Invoice has been deleted", entity.EventInvoiceUpdate, fmt.Sprintf("/invoices/%s", invoiceID), "", nil); err != nil {
		return err
	}
	return nil
}

func (uc *userUseCase) ListInvoices(userID string) ([]entity.Invoice, error) {
	invoices, err := uc.invoiceRepo.ListByUser(userID)
	if err != nil {
		return nil, apperr.Internal("Failed to retrieve invoices", err)
	}
	return invoices, nil
}

func (uc *userUseCase) CreateMilestone(userID string, input MilestoneInput) (*entity.Milestone, error) {
	milestone := &entity.Milestone{
		UserID:        userID,
		InvoiceID:     input.InvoiceID,
		Title:         input.Title,
		Description:   input.Description,
		SupportingDoc: input.SupportingDoc,
		BankName:      input.BankName,
		BankAccountNo: input.BankAccountNo,
		PaymentAmount: input.PaymentAmount,
		DueDate:       input.DueDate,
		Status:        entity.StatusPending,
	}
	if err := uc.milestoneRepo.Create(milestone); err != nil {
		uc.logger.Error("Milestone creation error: %v", err)
		return nil, apperr.Internal("Failed to create milestone", err)
	}

	if err := uc.notificationUC.Dispatch("New milestone has been created", entity.EventMilestoneUpdate, fmt.Sprintf("/milestone/%s", milestone.ID), "", nil); err != nil {
		return nil, err
	}
	return milestone, nil
}

func (uc *userUseCase) UpdateMilestone(userID, milestoneID string, input MilestoneInput) (*entity.Milestone, error) {
	milestone, err := uc.milestoneRepo.GetByID(milestoneID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Milestone not found")
		}
		return nil, apperr.Internal("Failed to update milestone", err)
	}
	if milestone.UserID != userID {
		return nil, apperr.Forbidden("You do not have permission to access this resource")
	}

	milestone.Title = input.Title
	milestone.Description = input.Description
	milestone.SupportingDoc = input.SupportingDoc
	milestone.BankName = input.BankName
	milestone.BankAccountNo = input.BankAccountNo
	milestone.PaymentAmount = input.PaymentAmount
	milestone.DueDate = input.DueDate
	milestone.User = nil
	milestone.Invoice = nil

	if err := uc.milestoneRepo.Update(milestone); err != nil {
		uc.logger.Error("Milestone update error: %v", err)
		return nil, apperr.Internal("Failed to update milestone", err)
	}

	if err := uc.notificationUC.Dispatch("Milestone has been updated", entity.EventMilestoneUpdate, fmt.Sprintf("/milestone/%s", milestone.ID), "", nil); err != nil {
		return nil, err
	}
	return milestone, nil
}

func (uc *userUseCase) DeleteMilestone(userID, milestoneID string) error {
	milestone, err := uc.milestoneRepo.GetByID(milestoneID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Milestone not found")
		}
		return apperr.Internal("Failed to delete milestone", err)
	}
	if milestone.UserID != userID {
		return apperr.Forbidden("You do not have permission to access this resource")
	}

	if err := uc.milestoneRepo.SoftDelete(milestoneID); err != nil {
		uc.logger.Error("Delete milestone error: %v", err)
		return apperr.Internal("Failed to delete milestone", err)
	}

	if err := uc.notificationUC.Dispatch("Milestone has been deleted", entity.EventMilestoneUpdate, fmt.Sprintf("/milestone/%s", milestoneID), "", nil); err != nil {
		return err
	}
	return nil
}

func (uc *userUseCase) CreateFundingRequest(userID string, input FundingRequestInput) (*entity.FundingRequest, error) {
	request := &entity.FundingRequest{
		UserID:           userID,
		InvoiceID:        input.InvoiceID,
		RequestedAmount:  input.RequestedAmount,
		YourContribution: input.YourContribution,
		Status:           entity.StatusPending,
	}
	if err := uc.fundingRequestRepo.Create(request); err != nil {
		uc.logger.Error("Funding request creation error: %v", err)
		return nil, apperr.Internal("Failed to create funding request", err)
	}

	if err := uc.notificationUC.Dispatch("New funding request has been created", entity.EventFundingUpdate, fmt.Sprintf("/funding-requests/%s", request.ID), "", nil); err != nil {
		return nil, err
	}
	return request, nil
}

func (uc *userUseCase) ListVendors() ([]entity.Vendor, error) {
	vendors, err := uc.vendorRepo.ListActive()
	if err != nil {
		return nil, apperr.Internal("Failed to retrieve vendors", err)
	}
	return vendors, nil
}

func (uc *userUseCase) UploadDocument(userID, fileName string, file io.Reader, contentType string) (string, error) {
	if uc.s3Client == nil {
		return "", apperr.Internal("Document storage is not configured", nil)
	}

	key := fmt.Sprintf("documents/%s/%s%s", userID, uuid.New().String(), filepath.Ext(fileName))
	url, err := uc.s3Client.UploadFile(key, file, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload document for user %s: %v", userID, err)
		return "", apperr.Internal("Failed to upload document", err)
	}
	return url, nil
}
