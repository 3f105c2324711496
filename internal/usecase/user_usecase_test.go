package usecase

import (
	"testing"

	"traders-bloc/internal/apperr"
	"traders-bloc/internal/entity"
	"traders-bloc/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type userUseCaseMocks struct {
	userRepo           *MockUserRepository
	invoiceRepo        *MockInvoiceRepository
	milestoneRepo      *MockMilestoneRepository
	fundingRequestRepo *MockFundingRequestRepository
	kycRepo            *MockKYCRepository
	vendorRepo         *MockVendorRepository
	notificationRepo   *MockNotificationRepository
	notificationUC     *MockNotificationUseCase
}

func newUserUseCaseForTest() (UserUseCase, *userUseCaseMocks) {
	mocks := &userUseCaseMocks{
		userRepo:           new(MockUserRepository),
		invoiceRepo:        new(MockInvoiceRepository),
		milestoneRepo:      new(MockMilestoneRepository),
		fundingRequestRepo: new(MockFundingRequestRepository),
		kycRepo:            new(MockKYCRepository),
		vendorRepo:         new(MockVendorRepository),
		notificationRepo:   new(MockNotificationRepository),
		notificationUC:     new(MockNotificationUseCase),
	}
	uc := NewUserUseCase(
		mocks.userRepo,
		mocks.invoiceRepo,
		mocks.milestoneRepo,
		mocks.fundingRequestRepo,
		mocks.kycRepo,
		mocks.vendorRepo,
		mocks.notificationRepo,
		mocks.notificationUC,
		nil,
		logger.New(),
	)
	return uc, mocks
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestUpdateUser_ChangesPassword(t *testing.T) {
	uc, mocks := newUserUseCaseForTest()

	mocks.userRepo.On("GetByID", "u1").Return(&entity.User{
		ID:       "u1",
		Email:    "jane@example.com",
		Password: hashPassword(t, "old-password"),
	}, nil)
	mocks.userRepo.On("Update", mock.Anything).Return(nil)

	user, err := uc.UpdateUser("u1", UpdateUserInput{
		CurrentPassword: "old-password",
		NewPassword:     "new-password",
	})

	assert.NoError(t, err)
	assert.Empty(t, user.Password)
	mocks.userRepo.AssertNumberOfCalls(t, "Update", 1)
}

func TestUpdateUser_WrongCurrentPassword(t *testing.T) {
	uc, mocks := newUserUseCaseForTest()

	mocks.userRepo.On("GetByID", "u1").Return(&entity.User{
		ID:       "u1",
		Password: hashPassword(t, "old-password"),
	}, nil)

	_, err := uc.UpdateUser("u1", UpdateUserInput{
		CurrentPassword: "not-the-password",
		NewPassword:     "new-password",
	})

	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
	assert.Equal(t, "Current password is incorrect", apperr.MessageOf(err))
	mocks.userRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUpdateUser_PasswordFieldsMustComeTogether(t *testing.T) {
	uc, mocks := newUserUseCaseForTest()

	mocks.userRepo.On("GetByID", "u1").Return(&entity.User{
		ID:       "u1",
		Password: hashPassword(t, "old-password"),
	}, nil)

	_, err := uc.UpdateUser("u1", UpdateUserInput{NewPassword: "new-password"})
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))

	_, err = uc.UpdateUser("u1", UpdateUserInput{CurrentPassword: "old-password"})
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))

	mocks.userRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUpdateUser_EmptyFieldsAreLeftAlone(t *testing.T) {
	uc, mocks := newUserUseCaseForTest()

	mocks.userRepo.On("GetByID", "u1").Return(&entity.User{
		ID:          "u1",
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@example.com",
		CompanyName: "Doe Trading",
	}, nil)
	mocks.userRepo.On("Update", mock.MatchedBy(func(u *entity.User) bool {
		return u.FirstName == "Janet" && u.LastName == "Doe" && u.Email == "jane@example.com"
	})).Return(nil)

	user, err := uc.UpdateUser("u1", UpdateUserInput{FirstName: "Janet"})

	assert.NoError(t, err)
	assert.Equal(t, "Janet", user.FirstName)
	assert.Equal(t, "Doe Trading", user.CompanyName)
}

func TestUpdateUser_DuplicateEmail(t *testing.T) {
	uc, mocks := newUserUseCaseForTest()

	mocks.userRepo.On("GetByID", "u1").Return(&entity.User{ID: "u1"}, nil)
	mocks.userRepo.On("Update", mock.Anything).Return(gorm.ErrDuplicatedKey)

	_, err := uc.UpdateUser("u1", UpdateUserInput{Email: "taken@example.com"})

	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestUpsertKYCDocuments_RejectsInvalidBatchBeforeWriting(t *testing.T) {
	uc, mocks := newUserUseCaseForTest()

	_, err := uc.UpsertKYCDocuments("u1", nil)
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))

	_, err = uc.UpsertKYCDocuments("u1", []KYCDocumentInput{
		{DocumentType: "tax_certificate", DocumentURL: "https://cdn.example.com/tax.pdf"},
		{DocumentType: "business_license"},
	})
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))

	mocks.kycRepo.AssertNotCalled(t, "UpsertBatch", mock.Anything, mock.Anything)
}

func TestUpsertKYCDocuments_ValidBatch(t *testing.T) {
	uc, mocks := newUserUseCaseForTest()

	mocks.kycRepo.On("UpsertBatch", "u1", mock.MatchedBy(func(docs []entity.KYCDocument) bool {
		return len(docs) == 2 && docs[0].DocumentType == "tax_certificate"
	})).Return([]entity.KYCDocument{
		{UserID: "u1", DocumentType: "tax_certificate", Status: entity.StatusPending},
		{UserID: "u1", DocumentType: "business_license", Status: entity.StatusPending},
	}, nil)

	result, err := uc.UpsertKYCDocuments("u1", []KYCDocumentInput{
		{DocumentType: "tax_certificate", DocumentURL: "https://cdn.example.com/tax.pdf", FileName: "tax.pdf"},
		{DocumentType: "business_license", DocumentURL: "https://cdn.example.com/license.pdf", FileName: "license.pdf"},
	})

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, entity.StatusPending, result[0].Status)
}

func TestCreateInvoice_DispatchesBroadcastNotification(t *testing.T) {
	uc, mocks := newUserUseCaseForTest()

	mocks.invoiceRepo.On("Create", mock.MatchedBy(func(inv *entity.Invoice) bool {
		return inv.UserID == "u1" && inv.Status == entity.StatusPending
	})).Return(nil)
	mocks.notificationUC.On("Dispatch",
		"New invoice has been created", entity.EventInvoiceUpdate, mock.Anything, "", (*entity.Session)(nil),
	).Return(nil)

	invoice, err := uc.CreateInvoice("u1", InvoiceInput{
		InvoiceNumber: "INV-001",
		VendorID:      "v1",
		Quantity:      10,
		PricePerUnit:  25,
		TotalPrice:    250,
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusPending, invoice.Status)
	mocks.notificationUC.AssertNumberOfCalls(t, "Dispatch", 1)
}

func TestCreateInvoice_SurfacesNotificationFailure(t *testing.T) {
	uc, mocks := newUserUseCaseForTest()

	mocks.invoiceRepo.On("Create", mock.Anything).Return(nil)
	mocks.notificationUC.On("Dispatch",
		"New invoice has been created", entity.EventInvoiceUpdate, mock.Anything, "", (*entity.Session)(nil),
	).Return(apperr.Internal("Failed to create notification", nil))

	invoice, err := uc.CreateInvoice("u1", InvoiceInput{InvoiceNumber: "INV-001", VendorID: "v1"})

	// The invoice write lands, but the caller learns the notification failed.
	assert.Nil(t, invoice)
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
	mocks.invoiceRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestUpdateInvoice_RejectsForeignInvoice(t *testing.T) {
	uc, mocks := newUserUseCaseForTest()

	mocks.invoiceRepo.On("GetByID", "i1").Return(&entity.Invoice{ID: "i1", UserID: "someone-else"}, nil)

	_, err := uc.UpdateInvoice("u1", "i1", InvoiceInput{InvoiceNumber: "INV-002"})

	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	mocks.invoiceRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestDeleteInvoice_NotFound(t *testing.T) {
	uc, mocks := newUserUseCaseForTest()

	mocks.invoiceRepo.On("GetByID", "missing").Return(nil, gorm.ErrRecordNotFound)

	err := uc.DeleteInvoice("u1", "missing")

	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	mocks.invoiceRepo.AssertNotCalled(t, "SoftDelete", mock.Anything)
}

func TestDeleteMilestone_OwnerSucceedsAndNotifies(t *testing.T) {
	uc, mocks := newUserUseCaseForTest()

	mocks.milestoneRepo.On("GetByID", "m1").Return(&entity.Milestone{ID: "m1", UserID: "u1"}, nil)
	mocks.milestoneRepo.On("SoftDelete", "m1").Return(nil)
	mocks.notificationUC.On("Dispatch",
		"Milestone has been deleted", entity.EventMilestoneUpdate, "/milestone/m1", "", (*entity.Session)(nil),
	).Return(nil)

	err := uc.DeleteMilestone("u1", "m1")

	assert.NoError(t, err)
	mocks.notificationUC.AssertNumberOfCalls(t, "Dispatch", 1)
}

func TestDeleteMilestone_SurfacesNotificationFailure(t *testing.T) {
	uc, mocks := newUserUseCaseForTest()

	mocks.milestoneRepo.On("GetByID", "m1").Return(&entity.Milestone{ID: "m1", UserID: "u1"}, nil)
	mocks.milestoneRepo.On("SoftDelete", "m1").Return(nil)
	mocks.notificationUC.On("Dispatch",
		"Milestone has been deleted", entity.EventMilestoneUpdate, "/milestone/m1", "", (*entity.Session)(nil),
	).Return(apperr.Internal("Failed to create notification", nil))

	err := uc.DeleteMilestone("u1", "m1")

	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
	mocks.milestoneRepo.AssertNumberOfCalls(t, "SoftDelete", 1)
}

func TestGetProfile_AggregatesUserData(t *testing.T) {
	uc, mocks := newUserUseCaseForTest()

	mocks.userRepo.On("GetByID", "u1").Return(&entity.User{ID: "u1", Password: "hashed"}, nil)
	mocks.invoiceRepo.On("ListByUser", "u1").Return([]entity.Invoice{{ID: "i1"}}, nil)
	mocks.milestoneRepo.On("ListByUser", "u1").Return([]entity.Milestone{}, nil)
	mocks.fundingRequestRepo.On("ListByUser", "u1").Return([]entity.FundingRequest{}, nil)
	mocks.kycRepo.On("ListByUser", "u1").Return([]entity.KYCDocument{{ID: "k1"}}, nil)
	mocks.notificationRepo.On("ListByUser", "u1").Return([]entity.Notification{}, nil)

	profile, err := uc.GetProfile("u1")

	assert.NoError(t, err)
	assert.Empty(t, profile.User.Password)
	assert.Len(t, profile.Invoices, 1)
	assert.Len(t, profile.KYCDocuments, 1)
}
