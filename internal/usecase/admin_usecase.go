package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"traders-bloc/internal/apperr"
	"traders-bloc/internal/entity"
	"traders-bloc/internal/repo/persistent"
	"traders-bloc/pkg/logger"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const dashboardCacheTTL = time.Minute

type VendorInput struct {
	Name                     string
	ContactPerson            string
	ContactPersonPhoneNumber string
	PhoneNumber              string
	Address                  string
	Email                    string
	BankName                 string
	BankAccountNumber        string
}

type UpdateAdminInput struct {
	Name            string
	Email           string
	CurrentPassword string
	NewPassword     string
}

type AdminUseCase interface {
	GetDashboardSummary(adminID string) (*entity.DashboardSummary, error)
	ListMilestones(filter entity.MilestoneFilter) ([]entity.Milestone, entity.PageMetadata, error)
	ListInvoices(filter entity.InvoiceFilter) ([]entity.Invoice, entity.PageMetadata, error)
	ListFundingRequests(filter entity.FundingRequestFilter) ([]entity.FundingRequest, entity.PageMetadata, error)
	ListKYCDocuments(filter entity.KYCFilter) ([]entity.KYCDocument, entity.PageMetadata, error)
	ListVendors(filter entity.VendorFilter) ([]entity.Vendor, entity.PageMetadata, error)
	GetMilestone(id string) (*entity.Milestone, error)
	GetInvoice(id string) (*entity.Invoice, error)
	GetFundingRequest(id string) (*entity.FundingRequest, error)
	GetKYCDocument(id string) (*entity.KYCDocument, error)
	UpdateMilestoneStatus(session *entity.Session, milestoneID string, status entity.ApprovalStatus) (*entity.Milestone, error)
	UpdateInvoiceStatus(session *entity.Session, invoiceID string, status entity.ApprovalStatus) (*entity.Invoice, error)
	UpdateFundingRequestStatus(session *entity.Session, requestID string, status entity.ApprovalStatus) (*entity.FundingRequest, error)
	UpdateKYCStatus(session *entity.Session, kycID string, status entity.ApprovalStatus) (*entity.KYCDocument, error)
	CreateVendor(session *entity.Session, input VendorInput) (*entity.Vendor, error)
	UpdateVendor(vendorID string, input VendorInput) (*entity.Vendor, error)
	GetAdminProfile(adminID string) (*entity.Admin, error)
	UpdateAdminData(session *entity.Session, adminID string, input UpdateAdminInput) (*entity.Admin, error)
	GetReportData(timeRange entity.ReportRange) (*entity.Report, error)
}

type adminUseCase struct {
	adminRepo          persistent.AdminRepository
	invoiceRepo        persistent.InvoiceRepository
	milestoneRepo      persistent.MilestoneRepository
	fundingRequestRepo persistent.FundingRequestRepository
	kycRepo            persistent.KYCRepository
	vendorRepo         persistent.VendorRepository
	notificationRepo   persistent.NotificationRepository
	activityRepo       persistent.ActivityLogRepository
	reportRepo         persistent.ReportRepository
	notificationUC     NotificationUseCase
	redisClient        *redis.Client
	logger             *logger.Logger
}

func NewAdminUseCase(
	adminRepo persistent.AdminRepository,
	invoiceRepo persistent.InvoiceRepository,
	milestoneRepo persistent.MilestoneRepository,
	fundingRequestRepo persistent.FundingRequestRepository,
	kycRepo persistent.KYCRepository,
	vendorRepo persistent.VendorRepository,
	notificationRepo persistent.NotificationRepository,
	activityRepo persistent.ActivityLogRepository,
	reportRepo persistent.ReportRepository,
	notificationUC NotificationUseCase,
	redisClient *redis.Client,
	logger *logger.Logger,
) AdminUseCase {
	return &adminUseCase{
		adminRepo:          adminRepo,
		invoiceRepo:        invoiceRepo,
		milestoneRepo:      milestoneRepo,
		fundingRequestRepo: fundingRequestRepo,
		kycRepo:            kycRepo,
		vendorRepo:         vendorRepo,
		notificationRepo:   notificationRepo,
		activityRepo:       activityRepo,
		reportRepo:         reportRepo,
		notificationUC:     notificationUC,
		redisClient:        redisClient,
		logger:             logger,
	}
}

func (uc *adminUseCase) GetDashboardSummary(adminID string) (*entity.DashboardSummary, error) {
	cacheKey := fmt.Sprintf("dashboard:%s", adminID)
	if uc.redisClient != nil {
		cached, err := uc.redisClient.Get(context.Background(), cacheKey).Result()
		if err == nil {
			var summary entity.DashboardSummary
			if json.Unmarshal([]byte(cached), &summary) == nil {
				return &summary, nil
			}
		}
	}

	admin, err := uc.adminRepo.GetByID(adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Admin not found")
		}
		return nil, apperr.Internal("Failed to retrieve admin dashboard summary", err)
	}
	admin.Password = ""

	pendingInvoices, err := uc.invoiceRepo.CountPending()
	if err != nil {
		return nil, apperr.Internal("Failed to retrieve admin dashboard summary", err)
	}
	pendingFundRequest, err := uc.fundingRequestRepo.CountPending()
	if err != nil {
		return nil, apperr.Internal("Failed to retrieve admin dashboard summary", err)
	}
	totalFunded, err := uc.fundingRequestRepo.SumApprovedRequested()
	if err != nil {
		return nil, apperr.Internal("Failed to retrieve admin dashboard summary", err)
	}
	pendingMilestone, err := uc.milestoneRepo.CountPending()
	if err != nil {
		return nil, apperr.Internal("Failed to retrieve admin dashboard summary", err)
	}
	recentActivity, err := uc.activityRepo.ListRecentByAdmin(adminID, 10)
	if err != nil {
		return nil, apperr.Internal("Failed to retrieve admin dashboard summary", err)
	}
	unreadNotifications, err := uc.notificationRepo.ListUnread()
	if err != nil {
		return nil, apperr.Internal("Failed to retrieve admin dashboard summary", err)
	}

	summary := &entity.DashboardSummary{
		Admin:               admin,
		PendingInvoices:     pendingInvoices,
		PendingFundRequest:  pendingFundRequest,
		TotalFunded:         totalFunded,
		PendingMilestone:    pendingMilestone,
		RecentActivity:      recentActivity,
		UnreadNotifications: unreadNotifications,
	}

	if uc.redisClient != nil {
		if summaryJSON, err := json.Marshal(summary); err == nil {
			uc.redisClient.Set(context.Background(), cacheKey, summaryJSON, dashboardCacheTTL)
		}
	}
	return summary, nil
}

func (uc *adminUseCase) ListMilestones(filter entity.MilestoneFilter) ([]entity.Milestone, entity.PageMetadata, error) {
	filter.Normalize()
	milestones, total, err := uc.milestoneRepo.List(filter)
	if err != nil {
		return nil, entity.PageMetadata{}, uc.listError("milestones", err)
	}
	return milestones, entity.NewPageMetadata(total, filter.Pagination), nil
}

func (uc *adminUseCase) ListInvoices(filter entity.InvoiceFilter) ([]entity.Invoice, entity.PageMetadata, error) {
	filter.Normalize()
	invoices, total, err := uc.invoiceRepo.List(filter)
	if err != nil {
		return nil, entity.PageMetadata{}, uc.listError("invoices", err)
	}
	return invoices, entity.NewPageMetadata(total, filter.Pagination), nil
}

func (uc *adminUseCase) ListFundingRequests(filter entity.FundingRequestFilter) ([]entity.FundingRequest, entity.PageMetadata, error) {
	filter.Normalize()
	requests, total, err := uc.fundingRequestRepo.List(filter)
	if err != nil {
		return nil, entity.PageMetadata{}, uc.listError("funding requests", err)
	}
	return requests, entity.NewPageMetadata(total, filter.Pagination), nil
}

func (uc *adminUseCase) ListKYCDocuments(filter entity.KYCFilter) ([]entity.KYCDocument, entity.PageMetadata, error) {
	filter.Normalize()
	documents, total, err := uc.kycRepo.List(filter)
	if err != nil {
		return nil, entity.PageMetadata{}, uc.listError("KYC documents", err)
	}
	return documents, entity.NewPageMetadata(total, filter.Pagination), nil
}

func (uc *adminUseCase) ListVendors(filter entity.VendorFilter) ([]entity.Vendor, entity.PageMetadata, error) {
	filter.Normalize()
	vendors, total, err := uc.vendorRepo.List(filter)
	if err != nil {
		return nil, entity.PageMetadata{}, uc.listError("vendors", err)
	}
	return vendors, entity.NewPageMetadata(total, filter.Pagination), nil
}

// listError keeps BadRequest (bad sort key) intact and wraps everything else
// as Internal.
func (uc *adminUseCase) listError(what string, err error) error {
	if apperr.KindOf(err) == apperr.KindBadRequest {
		return err
	}
	uc.logger.Error("Failed to list %s: %v", what, err)
	return apperr.Internal(fmt.Sprintf("Failed to retrieve %s", what), err)
}

func (uc *adminUseCase) GetMilestone(id string) (*entity.Milestone, error) {
	milestone, err := uc.milestoneRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Milestone not found")
		}
		return nil, apperr.Internal("Failed to retrieve milestone", err)
	}
	return milestone, nil
}

func (uc *adminUseCase) GetInvoice(id string) (*entity.Invoice, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Invoice not found")
		}
		return nil, apperr.Internal("Failed to retrieve invoice", err)
	}
	return invoice, nil
}

func (uc *adminUseCase) GetFundingRequest(id string) (*entity.FundingRequest, error) {
	request, err := uc.fundingRequestRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Funding request not found")
		}
		return nil, apperr.Internal("Failed to retrieve funding request", err)
	}
	return request, nil
}

func (uc *adminUseCase) GetKYCDocument(id string) (*entity.KYCDocument, error) {
	document, err := uc.kycRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("KYC document not found")
		}
		return nil, apperr.Internal("Failed to retrieve KYC document", err)
	}
	return document, nil
}

func (uc *adminUseCase) UpdateMilestoneStatus(session *entity.Session, milestoneID string, status entity.ApprovalStatus) (*entity.Milestone, error) {
	milestone, err := uc.milestoneRepo.UpdateStatus(milestoneID, status, session.IdentityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Milestone not found")
		}
		return nil, apperr.Internal("Failed to update milestone status", err)
	}

	message := fmt.Sprintf("Milestone has been %s", status)
	if err := uc.notificationUC.Dispatch(message, entity.EventMilestoneStatusUpdate, milestone.ID, milestone.UserID, session); err != nil {
		return nil, err
	}
	return milestone, nil
}

func (uc *adminUseCase) UpdateInvoiceStatus(session *entity.Session, invoiceID string, status entity.ApprovalStatus) (*entity.Invoice, error) {
	invoice, err := uc.invoiceRepo.UpdateStatus(invoiceID, status, session.IdentityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Invoice not found")
		}
		return nil, apperr.Internal("Failed to update invoice status", err)
	}

	message := fmt.Sprintf("Invoice has been %s", status)
	if err := uc.notificationUC.Dispatch(message, entity.EventInvoiceStatusUpdate, invoice.ID, invoice.UserID, session); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (uc *adminUseCase) UpdateFundingRequestStatus(session *entity.Session, requestID string, status entity.ApprovalStatus) (*entity.FundingRequest, error) {
	request, err := uc.fundingRequestRepo.UpdateStatus(requestID, status, session.IdentityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Funding request not found")
		}
		return nil, apperr.Internal("Failed to update funding request status", err)
	}

	message := fmt.Sprintf("Funding request has been %s", status)
	if err := uc.notificationUC.Dispatch(message, entity.EventFundingStatusUpdate, request.ID, request.UserID, session); err != nil {
		return nil, err
	}
	return request, nil
}

func (uc *adminUseCase) UpdateKYCStatus(session *entity.Session, kycID string, status entity.ApprovalStatus) (*entity.KYCDocument, error) {
	document, err := uc.kycRepo.UpdateStatus(kycID, status, session.IdentityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("KYC document not found")
		}
		return nil, apperr.Internal("Failed to update KYC status", err)
	}

	message := fmt.Sprintf("KYC document has been %s", status)
	if err := uc.notificationUC.Dispatch(message, entity.EventKYCStatusUpdate, document.ID, document.UserID, session); err != nil {
		return nil, err
	}
	return document, nil
}

func (uc *adminUseCase) CreateVendor(session *entity.Session, input VendorInput) (*entity.Vendor, error) {
	vendor := &entity.Vendor{
		Name:                     input.Name,
		ContactPerson:            input.ContactPerson,
		ContactPersonPhoneNumber: input.ContactPersonPhoneNumber,
		PhoneNumber:              input.PhoneNumber,
		Address:                  input.Address,
		Email:                    input.Email,
		BankName:                 input.BankName,
		BankAccountNumber:        input.BankAccountNumber,
		CreatedByID:              session.IdentityID,
	}
	if err := uc.vendorRepo.Create(vendor); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("A vendor with this email already exists")
		}
		uc.logger.Error("Failed to create vendor: %v", err)
		return nil, apperr.Internal("Failed to create vendor", err)
	}
	return vendor, nil
}

func (uc *adminUseCase) UpdateVendor(vendorID string, input VendorInput) (*entity.Vendor, error) {
	vendor, err := uc.vendorRepo.GetByID(vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Vendor not found")
		}
		return nil, apperr.Internal("Failed to update vendor", err)
	}

	vendor.Name = input.Name
	vendor.ContactPerson = input.ContactPerson
	vendor.ContactPersonPhoneNumber = input.ContactPersonPhoneNumber
	vendor.PhoneNumber = input.PhoneNumber
	vendor.Address = input.Address
	vendor.Email = input.Email
	vendor.BankName = input.BankName
	vendor.BankAccountNumber = input.BankAccountNumber

	if err := uc.vendorRepo.Update(vendor); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("A vendor with this email already exists")
		}
		uc.logger.Error("Failed to update vendor %s: %v", vendorID, err)
		return nil, apperr.Internal("Failed to update vendor", err)
	}
	return vendor, nil
}

func (uc *adminUseCase) GetAdminProfile(adminID string) (*entity.Admin, error) {
	admin, err := uc.adminRepo.GetByID(adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Admin not found")
		}
		return nil, apperr.Internal("Failed to retrieve admin", err)
	}
	admin.Password = ""
	return admin, nil
}

// UpdateAdminData lets an admin edit their own record, or a SUPER_ADMIN edit
// anyone's. Editing an admin whose role differs from the caller's requires
// SUPER_ADMIN.
func (uc *adminUseCase) UpdateAdminData(session *entity.Session, adminID string, input UpdateAdminInput) (*entity.Admin, error) {
	admin, err := uc.adminRepo.GetByID(adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Admin not found")
		}
		return nil, apperr.Internal("Failed to update admin data", err)
	}

	if admin.Role != session.Role && session.Role != entity.RoleSuperAdmin {
		return nil, apperr.Forbidden("Insufficient permissions to modify admin role")
	}

	if input.CurrentPassword != "" && input.NewPassword != "" {
		if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.CurrentPassword)) != nil {
			return nil, apperr.BadRequest("Current password is incorrect")
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperr.Internal("Failed to update admin data", err)
		}
		admin.Password = string(hashedPassword)
	} else if input.CurrentPassword != "" || input.NewPassword != "" {
		return nil, apperr.BadRequest("Both current and new passwords must be provided to update password")
	}

	if input.Name != "" {
		admin.Name = input.Name
	}
	if input.Email != "" {
		admin.Email = input.Email
	}

	if err := uc.adminRepo.Update(admin); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Email already exists")
		}
		uc.logger.Error("Failed to update admin %s: %v", adminID, err)
		return nil, apperr.Internal("Failed to update admin data", err)
	}

	admin.Password = ""
	return admin, nil
}

// GetReportData runs the independent aggregate reads in parallel and joins
// on all of them; any single failure fails the whole report.
func (uc *adminUseCase) GetReportData(timeRange entity.ReportRange) (*entity.Report, error) {
	if !timeRange.Valid() {
		return nil, apperr.BadRequest("timeRange must be one of week, month, year")
	}

	now := time.Now()
	start, previousStart := timeRange.Bounds(now)

	var (
		currentInvoices, previousInvoices     int64
		activeUsers, previousActiveUsers      int64
		currentMilestones, previousMilestones int64
		totalAmount, previousTotalAmount      float64
		invoiceTrends                         []entity.InvoiceTrend
		statusDistribution                    []entity.StatusCount
		milestoneDistribution                 []entity.StatusCount
		userActivity                          []entity.UserActivityPoint
	)

	var g errgroup.Group
	g.Go(func() (err error) {
		currentInvoices, err = uc.reportRepo.CountInvoices(start, time.Time{})
		return err
	})
	g.Go(func() (err error) {
		previousInvoices, err = uc.reportRepo.CountInvoices(previousStart, start)
		return err
	})
	g.Go(func() (err error) {
		activeUsers, err = uc.reportRepo.CountUsers(start, time.Time{})
		return err
	})
	g.Go(func() (err error) {
		previousActiveUsers, err = uc.reportRepo.CountUsers(previousStart, start)
		return err
	})
	g.Go(func() (err error) {
		currentMilestones, err = uc.reportRepo.CountMilestones(start, time.Time{})
		return err
	})
	g.Go(func() (err error) {
		previousMilestones, err = uc.reportRepo.CountMilestones(previousStart, start)
		return err
	})
	g.Go(func() (err error) {
		totalAmount, err = uc.reportRepo.SumInvoiceTotal(start, time.Time{})
		return err
	})
	g.Go(func() (err error) {
		previousTotalAmount, err = uc.reportRepo.SumInvoiceTotal(previousStart, start)
		return err
	})
	g.Go(func() (err error) {
		invoiceTrends, err = uc.reportRepo.InvoiceTrends(start)
		return err
	})
	g.Go(func() (err error) {
		statusDistribution, err = uc.reportRepo.InvoiceStatusDistribution()
		return err
	})
	g.Go(func() (err error) {
		milestoneDistribution, err = uc.reportRepo.MilestoneStatusDistribution()
		return err
	})
	g.Go(func() (err error) {
		userActivity, err = uc.reportRepo.UserSignups(start)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.logger.Error("Failed to assemble report data: %v", err)
		return nil, apperr.Internal("Failed to retrieve report data", err)
	}

	var completed, pending int64
	for _, d := range milestoneDistribution {
		switch entity.ApprovalStatus(d.Name) {
		case entity.StatusApproved:
			completed = d.Value
		case entity.StatusPending:
			pending = d.Value
		}
	}

	return &entity.Report{
		TotalInvoices:      currentInvoices,
		InvoiceGrowth:      growth(float64(currentInvoices), float64(previousInvoices)),
		ActiveUsers:        activeUsers,
		UserGrowth:         growth(float64(activeUsers), float64(previousActiveUsers)),
		TotalMilestones:    currentMilestones,
		MilestoneGrowth:    growth(float64(currentMilestones), float64(previousMilestones)),
		TotalAmount:        totalAmount,
		AmountGrowth:       growth(totalAmount, previousTotalAmount),
		InvoiceTrends:      invoiceTrends,
		StatusDistribution: statusDistribution,
		MilestoneProgress: []entity.MilestoneProgress{
			{Name: "Milestones", Completed: completed, Pending: pending},
		},
		UserActivity: userActivity,
	}, nil
}

func growth(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
