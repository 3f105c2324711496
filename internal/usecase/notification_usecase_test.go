package usecase

import (
	"errors"
	"testing"

	"traders-bloc/internal/apperr"
	"traders-bloc/internal/entity"
	"traders-bloc/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newDispatcherForTest(
	notificationRepo *MockNotificationRepository,
	adminRepo *MockAdminRepository,
	userRepo *MockUserRepository,
	activityRepo *MockActivityLogRepository,
) NotificationUseCase {
	return NewNotificationUseCase(notificationRepo, adminRepo, userRepo, activityRepo, nil, nil, logger.New())
}

func TestDispatch_BroadcastNotifiesAllAdmins(t *testing.T) {
	notificationRepo := new(MockNotificationRepository)
	adminRepo := new(MockAdminRepository)

	adminRepo.On("ListByRole", entity.RoleAdmin).Return([]entity.Admin{
		{ID: "a1", Role: entity.RoleAdmin},
		{ID: "a2", Role: entity.RoleAdmin},
	}, nil)
	notificationRepo.On("Create", mock.MatchedBy(func(n *entity.Notification) bool {
		return n.Kind == entity.EventInvoiceUpdate &&
			len(n.AdminIDs) == 2 &&
			n.UserID == ""
	})).Return(nil)

	uc := newDispatcherForTest(notificationRepo, adminRepo, new(MockUserRepository), new(MockActivityLogRepository))
	err := uc.Dispatch("New invoice has been created", entity.EventInvoiceUpdate, "/invoices/i1", "", nil)

	assert.NoError(t, err)
	notificationRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestDispatch_BroadcastWithZeroAdminsStillCreatesBareRow(t *testing.T) {
	notificationRepo := new(MockNotificationRepository)
	adminRepo := new(MockAdminRepository)

	adminRepo.On("ListByRole", entity.RoleAdmin).Return([]entity.Admin{}, nil)
	notificationRepo.On("Create", mock.MatchedBy(func(n *entity.Notification) bool {
		return len(n.AdminIDs) == 0 && n.UserID == ""
	})).Return(nil)

	uc := newDispatcherForTest(notificationRepo, adminRepo, new(MockUserRepository), new(MockActivityLogRepository))
	err := uc.Dispatch("New milestone has been created", entity.EventMilestoneUpdate, "/milestone/m1", "", nil)

	assert.NoError(t, err)
	notificationRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestDispatch_TargetedWithSessionCreatesNotificationAndActivity(t *testing.T) {
	notificationRepo := new(MockNotificationRepository)
	userRepo := new(MockUserRepository)
	activityRepo := new(MockActivityLogRepository)
	session := &entity.Session{IdentityID: "admin-1", Role: entity.RoleAdmin}

	userRepo.On("GetByID", "u1").Return(&entity.User{ID: "u1"}, nil)
	notificationRepo.On("Create", mock.MatchedBy(func(n *entity.Notification) bool {
		return n.UserID == "u1" && len(n.AdminIDs) == 0
	})).Return(nil)
	activityRepo.On("Create", mock.MatchedBy(func(e *entity.ActivityLog) bool {
		return e.AdminID == "admin-1" &&
			e.Action == "Invoice has been APPROVED" &&
			e.Kind == entity.EventInvoiceStatusUpdate
	})).Return(nil)

	uc := newDispatcherForTest(notificationRepo, new(MockAdminRepository), userRepo, activityRepo)
	err := uc.Dispatch("Invoice has been APPROVED", entity.EventInvoiceStatusUpdate, "i1", "u1", session)

	assert.NoError(t, err)
	notificationRepo.AssertNumberOfCalls(t, "Create", 1)
	activityRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestDispatch_TargetedWithoutSessionSkipsActivity(t *testing.T) {
	notificationRepo := new(MockNotificationRepository)
	userRepo := new(MockUserRepository)
	activityRepo := new(MockActivityLogRepository)

	userRepo.On("GetByID", "u1").Return(&entity.User{ID: "u1"}, nil)
	notificationRepo.On("Create", mock.Anything).Return(nil)

	uc := newDispatcherForTest(notificationRepo, new(MockAdminRepository), userRepo, activityRepo)
	err := uc.Dispatch("KYC document has been REJECTED", entity.EventKYCStatusUpdate, "k1", "u1", nil)

	assert.NoError(t, err)
	notificationRepo.AssertNumberOfCalls(t, "Create", 1)
	activityRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestDispatch_TargetedMissingUserCreatesRecipientLessRow(t *testing.T) {
	notificationRepo := new(MockNotificationRepository)
	userRepo := new(MockUserRepository)

	userRepo.On("GetByID", "ghost").Return(nil, gorm.ErrRecordNotFound)
	notificationRepo.On("Create", mock.MatchedBy(func(n *entity.Notification) bool {
		return n.UserID == "" && len(n.AdminIDs) == 0
	})).Return(nil)

	uc := newDispatcherForTest(notificationRepo, new(MockAdminRepository), userRepo, new(MockActivityLogRepository))
	err := uc.Dispatch("Funding request has been APPROVED", entity.EventFundingStatusUpdate, "f1", "ghost", nil)

	assert.NoError(t, err)
	notificationRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestDispatch_UnhandledKindCreatesNothing(t *testing.T) {
	notificationRepo := new(MockNotificationRepository)
	adminRepo := new(MockAdminRepository)
	userRepo := new(MockUserRepository)
	activityRepo := new(MockActivityLogRepository)

	uc := newDispatcherForTest(notificationRepo, adminRepo, userRepo, activityRepo)

	// system_alert is outside both dispatch families, so user registration
	// produces no notification row.
	err := uc.Dispatch("New user Jane Doe has registered", entity.EventSystemAlert, "/user/u1", "", nil)
	assert.NoError(t, err)

	err = uc.Dispatch("something happened", entity.EventKind("mystery_event"), "", "", nil)
	assert.NoError(t, err)

	notificationRepo.AssertNotCalled(t, "Create", mock.Anything)
	adminRepo.AssertNotCalled(t, "ListByRole", mock.Anything)
	userRepo.AssertNotCalled(t, "GetByID", mock.Anything)
	activityRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestDispatch_PersistenceFailureIsInternal(t *testing.T) {
	notificationRepo := new(MockNotificationRepository)
	adminRepo := new(MockAdminRepository)

	adminRepo.On("ListByRole", entity.RoleAdmin).Return([]entity.Admin{{ID: "a1"}}, nil)
	notificationRepo.On("Create", mock.Anything).Return(errors.New("connection refused"))

	uc := newDispatcherForTest(notificationRepo, adminRepo, new(MockUserRepository), new(MockActivityLogRepository))
	err := uc.Dispatch("New invoice has been created", entity.EventInvoiceUpdate, "/invoices/i1", "", nil)

	assert.Error(t, err)
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
}

func TestSetRead(t *testing.T) {
	notificationRepo := new(MockNotificationRepository)
	notificationRepo.On("SetRead", "n1", true).Return(&entity.Notification{ID: "n1", IsRead: true}, nil)
	notificationRepo.On("SetRead", "missing", true).Return(nil, gorm.ErrRecordNotFound)

	uc := newDispatcherForTest(notificationRepo, new(MockAdminRepository), new(MockUserRepository), new(MockActivityLogRepository))

	notification, err := uc.MarkRead("n1")
	assert.NoError(t, err)
	assert.True(t, notification.IsRead)

	_, err = uc.MarkRead("missing")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
