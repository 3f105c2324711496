package usecase

import (
	"time"

	"traders-bloc/internal/entity"
	"traders-bloc/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of persistent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

// MockAppUserRepository is a mock implementation of persistent.AppUserRepository
type MockAppUserRepository struct {
	mock.Mock
}

func (m *MockAppUserRepository) Create(user *entity.AppUser) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockAppUserRepository) GetByEmail(email string) (*entity.AppUser, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AppUser), args.Error(1)
}

var _ persistent.AppUserRepository = (*MockAppUserRepository)(nil)

// MockAdminRepository is a mock implementation of persistent.AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(admin *entity.Admin) error {
	args := m.Called(admin)
	return args.Error(0)
}

func (m *MockAdminRepository) GetByID(id string) (*entity.Admin, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Admin), args.Error(1)
}

func (m *MockAdminRepository) GetByEmail(email string) (*entity.Admin, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Admin), args.Error(1)
}

func (m *MockAdminRepository) ListByRole(role entity.Role) ([]entity.Admin, error) {
	args := m.Called(role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Admin), args.Error(1)
}

func (m *MockAdminRepository) Update(admin *entity.Admin) error {
	args := m.Called(admin)
	return args.Error(0)
}

func (m *MockAdminRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ persistent.AdminRepository = (*MockAdminRepository)(nil)

// MockNotificationRepository is a mock implementation of persistent.NotificationRepository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(notification *entity.Notification) error {
	args := m.Called(notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) GetByID(id string) (*entity.Notification, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Notification), args.Error(1)
}

func (m *MockNotificationRepository) ListByUser(userID string) ([]entity.Notification, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Notification), args.Error(1)
}

func (m *MockNotificationRepository) ListUnread() ([]entity.Notification, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Notification), args.Error(1)
}

func (m *MockNotificationRepository) SetRead(id string, isRead bool) (*entity.Notification, error) {
	args := m.Called(id, isRead)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Notification), args.Error(1)
}

var _ persistent.NotificationRepository = (*MockNotificationRepository)(nil)

// MockActivityLogRepository is a mock implementation of persistent.ActivityLogRepository
type MockActivityLogRepository struct {
	mock.Mock
}

func (m *MockActivityLogRepository) Create(entry *entity.ActivityLog) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockActivityLogRepository) ListRecentByAdmin(adminID string, limit int) ([]entity.ActivityLog, error) {
	args := m.Called(adminID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ActivityLog), args.Error(1)
}

var _ persistent.ActivityLogRepository = (*MockActivityLogRepository)(nil)

// MockKYCRepository is a mock implementation of persistent.KYCRepository
type MockKYCRepository struct {
	mock.Mock
}

func (m *MockKYCRepository) UpsertBatch(userID string, documents []entity.KYCDocument) ([]entity.KYCDocument, error) {
	args := m.Called(userID, documents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.KYCDocument), args.Error(1)
}

func (m *MockKYCRepository) GetByID(id string) (*entity.KYCDocument, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.KYCDocument), args.Error(1)
}

func (m *MockKYCRepository) ListByUser(userID string) ([]entity.KYCDocument, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.KYCDocument), args.Error(1)
}

func (m *MockKYCRepository) List(filter entity.KYCFilter) ([]entity.KYCDocument, int64, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]entity.KYCDocument), args.Get(1).(int64), args.Error(2)
}

func (m *MockKYCRepository) UpdateStatus(id string, status entity.ApprovalStatus, reviewerID string) (*entity.KYCDocument, error) {
	args := m.Called(id, status, reviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.KYCDocument), args.Error(1)
}

var _ persistent.KYCRepository = (*MockKYCRepository)(nil)

// MockInvoiceRepository is a mock implementation of persistent.InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) Create(invoice *entity.Invoice) error {
	args := m.Called(invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) GetByID(id string) (*entity.Invoice, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListByUser(userID string) ([]entity.Invoice, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) List(filter entity.InvoiceFilter) ([]entity.Invoice, int64, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]entity.Invoice), args.Get(1).(int64), args.Error(2)
}

func (m *MockInvoiceRepository) Update(invoice *entity.Invoice) error {
	args := m.Called(invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateStatus(id string, status entity.ApprovalStatus, reviewerID string) (*entity.Invoice, error) {
	args := m.Called(id, status, reviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) SoftDelete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockInvoiceRepository) CountPending() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.InvoiceRepository = (*MockInvoiceRepository)(nil)

// MockMilestoneRepository is a mock implementation of persistent.MilestoneRepository
type MockMilestoneRepository struct {
	mock.Mock
}

func (m *MockMilestoneRepository) Create(milestone *entity.Milestone) error {
	args := m.Called(milestone)
	return args.Error(0)
}

func (m *MockMilestoneRepository) GetByID(id string) (*entity.Milestone, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Milestone), args.Error(1)
}

func (m *MockMilestoneRepository) ListByUser(userID string) ([]entity.Milestone, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Milestone), args.Error(1)
}

func (m *MockMilestoneRepository) List(filter entity.MilestoneFilter) ([]entity.Milestone, int64, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]entity.Milestone), args.Get(1).(int64), args.Error(2)
}

func (m *MockMilestoneRepository) Update(milestone *entity.Milestone) error {
	args := m.Called(milestone)
	return args.Error(0)
}

func (m *MockMilestoneRepository) UpdateStatus(id string, status entity.ApprovalStatus, reviewerID string) (*entity.Milestone, error) {
	args := m.Called(id, status, reviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Milestone), args.Error(1)
}

func (m *MockMilestoneRepository) SoftDelete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMilestoneRepository) CountPending() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.MilestoneRepository = (*MockMilestoneRepository)(nil)

// MockFundingRequestRepository is a mock implementation of persistent.FundingRequestRepository
type MockFundingRequestRepository struct {
	mock.Mock
}

func (m *MockFundingRequestRepository) Create(request *entity.FundingRequest) error {
	args := m.Called(request)
	return args.Error(0)
}

func (m *MockFundingRequestRepository) GetByID(id string) (*entity.FundingRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FundingRequest), args.Error(1)
}

func (m *MockFundingRequestRepository) ListByUser(userID string) ([]entity.FundingRequest, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.FundingRequest), args.Error(1)
}

func (m *MockFundingRequestRepository) List(filter entity.FundingRequestFilter) ([]entity.FundingRequest, int64, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]entity.FundingRequest), args.Get(1).(int64), args.Error(2)
}

func (m *MockFundingRequestRepository) UpdateStatus(id string, status entity.ApprovalStatus, reviewerID string) (*entity.FundingRequest, error) {
	args := m.Called(id, status, reviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FundingRequest), args.Error(1)
}

func (m *MockFundingRequestRepository) CountPending() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFundingRequestRepository) SumApprovedRequested() (float64, error) {
	args := m.Called()
	return args.Get(0).(float64), args.Error(1)
}

var _ persistent.FundingRequestRepository = (*MockFundingRequestRepository)(nil)

// MockVendorRepository is a mock implementation of persistent.VendorRepository
type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) Create(vendor *entity.Vendor) error {
	args := m.Called(vendor)
	return args.Error(0)
}

func (m *MockVendorRepository) GetByID(id string) (*entity.Vendor, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Vendor), args.Error(1)
}

func (m *MockVendorRepository) ListActive() ([]entity.Vendor, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Vendor), args.Error(1)
}

func (m *MockVendorRepository) List(filter entity.VendorFilter) ([]entity.Vendor, int64, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]entity.Vendor), args.Get(1).(int64), args.Error(2)
}

func (m *MockVendorRepository) Update(vendor *entity.Vendor) error {
	args := m.Called(vendor)
	return args.Error(0)
}

var _ persistent.VendorRepository = (*MockVendorRepository)(nil)

// MockReportRepository is a mock implementation of persistent.ReportRepository
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) CountInvoices(from, to time.Time) (int64, error) {
	args := m.Called(from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportRepository) CountUsers(from, to time.Time) (int64, error) {
	args := m.Called(from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportRepository) CountMilestones(from, to time.Time) (int64, error) {
	args := m.Called(from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportRepository) SumInvoiceTotal(from, to time.Time) (float64, error) {
	args := m.Called(from, to)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockReportRepository) InvoiceTrends(from time.Time) ([]entity.InvoiceTrend, error) {
	args := m.Called(from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.InvoiceTrend), args.Error(1)
}

func (m *MockReportRepository) InvoiceStatusDistribution() ([]entity.StatusCount, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.StatusCount), args.Error(1)
}

func (m *MockReportRepository) MilestoneStatusDistribution() ([]entity.StatusCount, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.StatusCount), args.Error(1)
}

func (m *MockReportRepository) UserSignups(from time.Time) ([]entity.UserActivityPoint, error) {
	args := m.Called(from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.UserActivityPoint), args.Error(1)
}

var _ persistent.ReportRepository = (*MockReportRepository)(nil)

// MockNotificationUseCase is a mock implementation of NotificationUseCase
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

var _ NotificationUseCase = (*MockNotificationUseCase)(nil)
