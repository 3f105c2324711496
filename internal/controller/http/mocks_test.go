package http

import (
	"io"

	"traders-bloc/internal/entity"
	"traders-bloc/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockAuthUseCase is a mock implementation of usecase.AuthUseCase
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) RegisterUser(input usecase.RegisterUserInput) (*entity.User, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) RegisterAppUser(input usecase.RegisterAppUserInput) (*entity.AppUser, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AppUser), args.Error(1)
}

func (m *MockAuthUseCase) Login(email, password string) (*entity.Session, string, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.Session), args.String(1), args.Error(2)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

// MockUserUseCase is a mock implementation of usecase.UserUseCase
type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) GetProfile(userID string) (*entity.UserProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserProfile), args.Error(1)
}

func (m *MockUserUseCase) UpdateUser(userID string, input usecase.UpdateUserInput) (*entity.User, error) {
	args := m.Called(userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) UpsertKYCDocuments(userID string, documents []usecase.KYCDocumentInput) ([]entity.KYCDocument, error) {
	args := m.Called(userID, documents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.KYCDocument), args.Error(1)
}

func (m *MockUserUseCase) CreateInvoice(userID string, input usecase.InvoiceInput) (*entity.Invoice, error) {
	args := m.Called(userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Invoice), args.Error(1)
}

func (m *MockUserUseCase) UpdateInvoice(userID, invoiceID string, input usecase.InvoiceInput) (*entity.Invoice, error) {
	args := m.Called(userID, invoiceID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Invoice), args.Error(1)
}

func (m *MockUserUseCase) DeleteInvoice(userID, invoiceID string) error {
	args := m.Called(userID, invoiceID)
	return args.Error(0)
}

func (m *MockUserUseCase) ListInvoices(userID string) ([]entity.Invoice, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Invoice), args.Error(1)
}

func (m *MockUserUseCase) CreateMilestone(userID string, input usecase.MilestoneInput) (*entity.Milestone, error) {
	args := m.Called(userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Milestone), args.Error(1)
}

func (m *MockUserUseCase) UpdateMilestone(userID, milestoneID string, input usecase.MilestoneInput) (*entity.Milestone, error) {
	args := m.Called(userID, milestoneID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Milestone), args.Error(1)
}

func (m *MockUserUseCase) DeleteMilestone(userID, milestoneID string) error {
	args := m.Called(userID, milestoneID)
	return args.Error(0)
}

func (m *MockUserUseCase) CreateFundingRequest(userID string, input usecase.FundingRequestInput) (*entity.FundingRequest, error) {
	args := m.Called(userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FundingRequest), args.Error(1)
}

func (m *MockUserUseCase) ListVendors() ([]entity.Vendor, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Vendor), args.Error(1)
}

func (m *MockUserUseCase) UploadDocument(userID, fileName string, file io.Reader, contentType string) (string, error) {
	args := m.Called(userID, fileName, file, contentType)
	return args.String(0), args.Error(1)
}

var _ usecase.UserUseCase = (*MockUserUseCase)(nil)

// MockAdminUseCase is a mock implementation of usecase.AdminUseCase
type MockAdminUseCase struct {
	mock.Mock
}

func (m *MockAdminUseCase) GetDashboardSummary(adminID string) (*entity.DashboardSummary, error) {
	args := m.Called(adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DashboardSummary), args.Error(1)
}

func (m *MockAdminUseCase) ListMilestones(filter entity.MilestoneFilter) ([]entity.Milestone, entity.PageMetadata, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(entity.PageMetadata), args.Error(2)
	}
	return args.Get(0).([]entity.Milestone), args.Get(1).(entity.PageMetadata), args.Error(2)
}

func (m *MockAdminUseCase) ListInvoices(filter entity.InvoiceFilter) ([]entity.Invoice, entity.PageMetadata, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(entity.PageMetadata), args.Error(2)
	}
	return args.Get(0).([]entity.Invoice), args.Get(1).(entity.PageMetadata), args.Error(2)
}

func (m *MockAdminUseCase) ListFundingRequests(filter entity.FundingRequestFilter) ([]entity.FundingRequest, entity.PageMetadata, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(entity.PageMetadata), args.Error(2)
	}
	return args.Get(0).([]entity.FundingRequest), args.Get(1).(entity.PageMetadata), args.Error(2)
}

func (m *MockAdminUseCase) ListKYCDocuments(filter entity.KYCFilter) ([]entity.KYCDocument, entity.PageMetadata, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(entity.PageMetadata), args.Error(2)
	}
	return args.Get(0).([]entity.KYCDocument), args.Get(1).(entity.PageMetadata), args.Error(2)
}

func (m *MockAdminUseCase) ListVendors(filter entity.VendorFilter) ([]entity.Vendor, entity.PageMetadata, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(entity.PageMetadata), args.Error(2)
	}
	return args.Get(0).([]entity.Vendor), args.Get(1).(entity.PageMetadata), args.Error(2)
}

func (m *MockAdminUseCase) GetMilestone(id string) (*entity.Milestone, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Milestone), args.Error(1)
}

func (m *MockAdminUseCase) GetInvoice(id string) (*entity.Invoice, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Invoice), args.Error(1)
}

func (m *MockAdminUseCase) GetFundingRequest(id string) (*entity.FundingRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FundingRequest), args.Error(1)
}

func (m *MockAdminUseCase) GetKYCDocument(id string) (*entity.KYCDocument, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.KYCDocument), args.Error(1)
}

func (m *MockAdminUseCase) UpdateMilestoneStatus(session *entity.Session, milestoneID string, status entity.ApprovalStatus) (*entity.Milestone, error) {
	args := m.Called(session, milestoneID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Milestone), args.Error(1)
}

func (m *MockAdminUseCase) UpdateInvoiceStatus(session *entity.Session, invoiceID string, status entity.ApprovalStatus) (*entity.Invoice, error) {
	args := m.Called(session, invoiceID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Invoice), args.Error(1)
}

func (m *MockAdminUseCase) UpdateFundingRequestStatus(session *entity.Session, requestID string, status entity.ApprovalStatus) (*entity.FundingRequest, error) {
	args := m.Called(session, requestID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FundingRequest), args.Error(1)
}

func (m *MockAdminUseCase) UpdateKYCStatus(session *entity.Session, kycID string, status entity.ApprovalStatus) (*entity.KYCDocument, error) {
	args := m.Called(session, kycID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.KYCDocument), args.Error(1)
}

func (m *MockAdminUseCase) CreateVendor(session *entity.Session, input usecase.VendorInput) (*entity.Vendor, error) {
	args := m.Called(session, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Vendor), args.Error(1)
}

func (m *MockAdminUseCase) UpdateVendor(vendorID string, input usecase.VendorInput) (*entity.Vendor, error) {
	args := m.Called(vendorID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Vendor), args.Error(1)
}

func (m *MockAdminUseCase) GetAdminProfile(adminID string) (*entity.Admin, error) {
	args := m.Called(adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Admin), args.Error(1)
}

func (m *MockAdminUseCase) UpdateAdminData(session *entity.Session, adminID string, input usecase.UpdateAdminInput) (*entity.Admin, error) {
	args := m.Called(session, adminID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Admin), args.Error(1)
}

func (m *MockAdminUseCase) GetReportData(timeRange entity.ReportRange) (*entity.Report, error) {
	args := m.Called(timeRange)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Report), args.Error(1)
}

var _ usecase.AdminUseCase = (*MockAdminUseCase)(nil)

// MockSuperAdminUseCase is a mock implementation of usecase.SuperAdminUseCase
type MockSuperAdminUseCase struct {
	mock.Mock
}

func (m *MockSuperAdminUseCase) CreateAdmin(input usecase.CreateAdminInput) (*entity.Admin, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Admin), args.Error(1)
}

func (m *MockSuperAdminUseCase) UpdateAdmin(session *entity.Session, adminID string, status entity.AdminStatus) (*entity.Admin, error) {
	args := m.Called(session, adminID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Admin), args.Error(1)
}

func (m *MockSuperAdminUseCase) UpdateAdminPermissions(adminID string, role entity.Role) (*entity.Admin, error) {
	args := m.Called(adminID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Admin), args.Error(1)
}

func (m *MockSuperAdminUseCase) DeleteAdmin(session *entity.Session, adminID string) error {
	args := m.Called(session, adminID)
	return args.Error(0)
}

var _ usecase.SuperAdminUseCase = (*MockSuperAdminUseCase)(nil)

// MockNotificationUseCase is a mock implementation of usecase.NotificationUseCase
type MockNotificationUseCase struct {
	mock.Mock
}

func (m *MockNotificationUseCase) Dispatch(message string, kind entity.EventKind, link string, targetUserID string, actingSession *entity.Session) error {
	args := m.Called(message, kind, link, targetUserID, actingSession)
	return args.Error(0)
}

func (m *MockNotificationUseCase) GetByUser(userID string) ([]entity.Notification, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Notification), args.Error(1)
}

func (m *MockNotificationUseCase) SetRead(id string, isRead bool) (*entity.Notification, error) {
	args := m.Called(id, isRead)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Notification), args.Error(1)
}

func (m *MockNotificationUseCase) MarkRead(id string) (*entity.Notification, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Notification), args.Error(1)
}

func (m *MockNotificationUseCase) HandleDeliveryTask(task map[string]interface{}) error {
	args := m.Called(task)
	return args.Error(0)
}

var _ usecase.NotificationUseCase = (*MockNotificationUseCase)(nil)
