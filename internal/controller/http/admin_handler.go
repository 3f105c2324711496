package http

import (
	"net/http"
	"strconv"
	"time"

	"traders-bloc/internal/entity"
	"traders-bloc/internal/usecase"
	"traders-bloc/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUseCase usecase.AdminUseCase
	logger       *logger.Logger
}

func NewAdminHandler(adminUseCase usecase.AdminUseCase, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
		logger:       logger,
	}
}

type VendorRequest struct {
	Name                     string `json:"name" binding:"required"`
	ContactPerson            string `json:"contact_person"`
	ContactPersonPhoneNumber string `json:"contact_person_phone_number"`
	PhoneNumber              string `json:"phone_number"`
	Address                  string `json:"address"`
	Email                    string `json:"email" binding:"required,email"`
	BankName                 string `json:"bank_name"`
	BankAccountNumber        string `json:"bank_account_number"`
}

type UpdateAdminDataRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type UpdateStatusRequest struct {
	Status entity.ApprovalStatus `json:"status" binding:"required,oneof=PENDING APPROVED REJECTED NOT_SUBMITTED"`
}

func parsePagination(c *gin.Context) entity.Pagination {
	p := entity.Pagination{
		SortBy:    c.Query("sortBy"),
		SortOrder: entity.SortOrder(c.Query("sortOrder")),
	}
	if pageStr := c.Query("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			p.Page = page
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			p.Limit = limit
		}
	}
	return p
}

func parseDateRange(c *gin.Context, fromKey, toKey string) *entity.DateRange {
	var r entity.DateRange
	if fromStr := c.Query(fromKey); fromStr != "" {
		if from, err := time.Parse(time.RFC3339, fromStr); err == nil {
			r.From = &from
		}
	}
	if toStr := c.Query(toKey); toStr != "" {
		if to, err := time.Parse(time.RFC3339, toStr); err == nil {
			r.To = &to
		}
	}
	if r.From == nil && r.To == nil {
		return nil
	}
	return &r
}

func parseAmountRange(c *gin.Context, minKey, maxKey string) *entity.AmountRange {
	var r entity.AmountRange
	if minStr := c.Query(minKey); minStr != "" {
		if min, err := strconv.ParseFloat(minStr, 64); err == nil {
			r.Min = &min
		}
	}
	if maxStr := c.Query(maxKey); maxStr != "" {
		if max, err := strconv.ParseFloat(maxStr, 64); err == nil {
			r.Max = &max
		}
	}
	if r.Min == nil && r.Max == nil {
		return nil
	}
	return &r
}

// GetDashboard godoc
// @Summary      Admin dashboard summary
// @Description  Aggregated pending counts, funded total, recent activity and unread notifications
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.DashboardSummary
// @Failure      403  {object}  map[string]string
// @Router       /admin/dashboard [get]
func (h *AdminHandler) GetDashboard(c *gin.Context) {
	session := admit(c, entity.RoleAdmin)
	if session == nil {
		return
	}

	summary, err := h.adminUseCase.GetDashboardSummary(session.IdentityID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ListMilestones godoc
// @Summary      List milestones
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Param        sortBy query string false "Sort key"
// @Param        sortOrder query string false "asc or desc"
// @Param        search query string false "Search term"
// @Param        status query string false "Approval status"
// @Param        dueDateFilter query string false "Due date preset" Enums(all, overdue, due-today, due-this-week, due-this-month)
// @Param        paymentStatus query string false "Payment status" Enums(all, paid, unpaid)
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /admin/milestones [get]
func (h *AdminHandler) ListMilestones(c *gin.Context) {
	if session := admit(c, entity.RoleAdmin); session == nil {
		return
	}

	filter := entity.MilestoneFilter{
		Pagination:    parsePagination(c),
		Search:        c.Query("search"),
		Status:        entity.ApprovalStatus(c.Query("status")),
		DueDateRange:  parseDateRange(c, "dueDateFrom", "dueDateTo"),
		DueDatePreset: entity.DueDatePreset(c.Query("dueDateFilter")),
		PaymentStatus: entity.PaymentStatus(c.Query("paymentStatus")),
		AmountRange:   parseAmountRange(c, "minAmount", "maxAmount"),
	}

	milestones, metadata, err := h.adminUseCase.ListMilestones(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": milestones, "metadata": metadata})
}

// ListInvoices godoc
// @Summary      List invoices
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Param        sortBy query string false "Sort key"
// @Param        sortOrder query string false "asc or desc"
// @Param        search query string false "Search term"
// @Param        status query string false "Approval status"
// @Param        vendor query string false "Vendor name"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /admin/invoices [get]
func (h *AdminHandler) ListInvoices(c *gin.Context) {
	if session := admit(c, entity.RoleAdmin); session == nil {
		return
	}

	filter := entity.InvoiceFilter{
		Pagination:    parsePagination(c),
		Search:        c.Query("search"),
		Status:        entity.ApprovalStatus(c.Query("status")),
		Vendor:        c.Query("vendor"),
		DueDateRange:  parseDateRange(c, "dueDateFrom", "dueDateTo"),
		DueDatePreset: entity.DueDatePreset(c.Query("dueDateFilter")),
	}

	invoices, metadata, err := h.adminUseCase.ListInvoices(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": invoices, "metadata": metadata})
}

// ListFundingRequests godoc
// @Summary      List funding requests
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Param        sortBy query string false "Sort key"
// @Param        sortOrder query string false "asc or desc"
// @Param        search query string false "Search term"
// @Param        status query string false "Approval status"
// @Param        reviewStatus query string false "Review status" Enums(all, reviewed, pending)
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /admin/funding-requests [get]
func (h *AdminHandler) ListFundingRequests(c *gin.Context) {
	if session := admit(c, entity.RoleAdmin); session == nil {
		return
	}

	filter := entity.FundingRequestFilter{
		Pagination:        parsePagination(c),
		Search:            c.Query("search"),
		Status:            entity.ApprovalStatus(c.Query("status")),
		DateRange:         parseDateRange(c, "dateFrom", "dateTo"),
		AmountRange:       parseAmountRange(c, "minAmount", "maxAmount"),
		ContributionRange: parseAmountRange(c, "minContribution", "maxContribution"),
		ReviewStatus:      entity.ReviewStatus(c.Query("reviewStatus")),
	}

	requests, metadata, err := h.adminUseCase.ListFundingRequests(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": requests, "metadata": metadata})
}

// ListKYCDocuments godoc
// @Summary      List KYC documents
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Param        sortBy query string false "Sort key"
// @Param        sortOrder query string false "asc or desc"
// @Param        search query string false "Search term"
// @Param        status query string false "Approval status"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /admin/kyc [get]
func (h *AdminHandler) ListKYCDocuments(c *gin.Context) {
	if session := admit(c, entity.RoleAdmin); session == nil {
		return
	}

	filter := entity.KYCFilter{
		Pagination: parsePagination(c),
		Search:     c.Query("search"),
		Status:     entity.ApprovalStatus(c.Query("status")),
	}

	documents, metadata, err := h.adminUseCase.ListKYCDocuments(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": documents, "metadata": metadata})
}

// ListVendors godoc
// @Summary      List vendors with pagination
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Param        sortBy query string false "Sort key"
// @Param        sortOrder query string false "asc or desc"
// @Param        search query string false "Search term"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /admin/vendors [get]
func (h *AdminHandler) ListVendors(c *gin.Context) {
	if session := admit(c, entity.RoleAdmin); session == nil {
		return
	}

	filter := entity.VendorFilter{
		Pagination: parsePagination(c),
		Search:     c.Query("search"),
	}

	vendors, metadata, err := h.adminUseCase.ListVendors(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": vendors, "metadata": metadata})
}

// GetMilestone godoc
// @Summary      Get a milestone
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Milestone ID"
// @Success      200  {object}  entity.Milestone
// @Failure      404  {object}  map[string]string
// @Router       /admin/milestones/{id} [get]
func (h *AdminHandler) GetMilestone(c *gin.Context) {
	if session := admit(c, entity.RoleAdmin); session == nil {
		return
	}

	milestone, err := h.adminUseCase.GetMilestone(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, milestone)
}

// GetInvoice godoc
// @Summary      Get an invoice
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Invoice ID"
// @Success      200  {object}  entity.Invoice
// @Failure      404  {object}  map[string]string
// @Router       /admin/invoices/{id} [get]
func (h *AdminHandler) GetInvoice(c *gin.Context) {
	if session := admit(c, entity.RoleAdmin); session == nil {
		return
	}

	invoice, err := h.adminUseCase.GetInvoice(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// GetFundingRequest godoc
// @Summary      Get a funding request
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Funding request ID"
// @Success      200  {object}  entity.FundingRequest
// @Failure      404  {object}  map[string]string
// @Router       /admin/funding-requests/{id} [get]
func (h *AdminHandler) GetFundingRequest(c *gin.Context) {
	if session := admit(c, entity.RoleAdmin); session == nil {
		return
	}

	request, err := h.adminUseCase.GetFundingRequest(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// GetKYCDocument godoc
// @Summary      Get a KYC document
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "KYC document ID"
// @Success      200  {object}  entity.KYCDocument
// @Failure      404  {object}  map[string]string
// @Router       /admin/kyc/{id} [get]
func (h *AdminHandler) GetKYCDocument(c *gin.Context) {
	if session := admit(c, entity.RoleAdmin); session == nil {
		return
	}

	document, err := h.adminUseCase.GetKYCDocument(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, document)
}

// UpdateMilestoneStatus godoc
// @Summary      Review a milestone
// @Description  Set milestone status and notify its owner
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Milestone ID"
// @Param        request body UpdateStatusRequest true "New status"
// @Success      200  {object}  entity.Milestone
// @Failure      404  {object}  map[string]string
// @Router       /admin/milestones/{id}/status [put]
func (h *AdminHandler) UpdateMilestoneStatus(c *gin.Context) {
	session := admit(c, entity.RoleAdmin)
	if session == nil {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	milestone, err := h.adminUseCase.UpdateMilestoneStatus(session, c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, milestone)
}

// UpdateInvoiceStatus godoc
// @Summary      Review an invoice
// @Description  Set invoice status and notify its owner
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Invoice ID"
// @Param        request body UpdateStatusRequest true "New status"
// @Success      200  {object}  entity.Invoice
// @Failure      404  {object}  map[string]string
// @Router       /admin/invoices/{id}/status [put]
func (h *AdminHandler) UpdateInvoiceStatus(c *gin.Context) {
	session := admit(c, entity.RoleAdmin)
	if session == nil {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invoice, err := h.adminUseCase.UpdateInvoiceStatus(session, c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// UpdateFundingRequestStatus godoc
// @Summary      Review a funding request
// @Description  Set funding request status and notify its owner
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Funding request ID"
// @Param        request body UpdateStatusRequest true "New status"
// @Success      200  {object}  entity.FundingRequest
// @Failure      404  {object}  map[string]string
// @Router       /admin/funding-requests/{id}/status [put]
func (h *AdminHandler) UpdateFundingRequestStatus(c *gin.Context) {
	session := admit(c, entity.RoleAdmin)
	if session == nil {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.adminUseCase.UpdateFundingRequestStatus(session, c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// UpdateKYCStatus godoc
// @Summary      Review a KYC document
// @Description  Set KYC document status and notify its owner
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "KYC document ID"
// @Param        request body UpdateStatusRequest true "New status"
// @Success      200  {object}  entity.KYCDocument
// @Failure      404  {object}  map[string]string
// @Router       /admin/kyc/{id}/status [put]
func (h *AdminHandler) UpdateKYCStatus(c *gin.Context) {
	session := admit(c, entity.RoleAdmin)
	if session == nil {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	document, err := h.adminUseCase.UpdateKYCStatus(session, c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, document)
}

// CreateVendor godoc
// @Summary      Create a vendor
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body VendorRequest true "Vendor data"
// @Success      201  {object}  entity.Vendor
// @Failure      409  {object}  map[string]string
// @Router       /admin/vendors [post]
func (h *AdminHandler) CreateVendor(c *gin.Context) {
	session := admit(c, entity.RoleAdmin)
	if session == nil {
		return
	}

	var req VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vendor, err := h.adminUseCase.CreateVendor(session, usecase.VendorInput{
		Name:                     req.Name,
		ContactPerson:            req.ContactPerson,
		ContactPersonPhoneNumber: req.ContactPersonPhoneNumber,
		PhoneNumber:              req.PhoneNumber,
		Address:                  req.Address,
		Email:                    req.Email,
		BankName:                 req.BankName,
		BankAccountNumber:        req.BankAccountNumber,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vendor)
}

// UpdateVendor godoc
// @Summary      Update a vendor
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Vendor ID"
// @Param        request body VendorRequest true "Vendor data"
// @Success      200  {object}  entity.Vendor
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /admin/vendors/{id} [put]
func (h *AdminHandler) UpdateVendor(c *gin.Context) {
	if session := admit(c, entity.RoleAdmin); session == nil {
		return
	}

	var req VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vendor, err := h.adminUseCase.UpdateVendor(c.Param("id"), usecase.VendorInput{
		Name:                     req.Name,
		ContactPerson:            req.ContactPerson,
		ContactPersonPhoneNumber: req.ContactPersonPhoneNumber,
		PhoneNumber:              req.PhoneNumber,
		Address:                  req.Address,
		Email:                    req.Email,
		BankName:                 req.BankName,
		BankAccountNumber:        req.BankAccountNumber,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// GetProfile godoc
// @Summary      Get own admin profile
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.Admin
// @Failure      404  {object}  map[string]string
// @Router       /admin/me [get]
func (h *AdminHandler) GetProfile(c *gin.Context) {
	session := admit(c, entity.RoleAdmin)
	if session == nil {
		return
	}

	admin, err := h.adminUseCase.GetAdminProfile(session.IdentityID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, admin)
}

// UpdateAdminData godoc
// @Summary      Update an admin record
// @Description  Update name, email or password. Editing an admin with a different role requires SUPER_ADMIN.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Admin ID"
// @Param        request body UpdateAdminDataRequest true "Fields to update"
// @Success      200  {object}  entity.Admin
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/admins/{id} [put]
func (h *AdminHandler) UpdateAdminData(c *gin.Context) {
	session := admit(c, entity.RoleAdmin)
	if session == nil {
		return
	}

	var req UpdateAdminDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, err := h.adminUseCase.UpdateAdminData(session, c.Param("id"), usecase.UpdateAdminInput{
		Name:            req.Name,
		Email:           req.Email,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, admin)
}

// GetReport godoc
// @Summary      Platform report
// @Description  Aggregate counts, growth rates, trends and distributions over a time range
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        timeRange query string false "Time range" Enums(week, month, year) default(month)
// @Success      200  {object}  entity.Report
// @Failure      400  {object}  map[string]string
// @Router       /admin/reports [get]
func (h *AdminHandler) GetReport(c *gin.Context) {
	if session := admit(c, entity.RoleAdmin); session == nil {
		return
	}

	timeRange := entity.ReportRange(c.DefaultQuery("timeRange", string(entity.ReportMonth)))
	report, err := h.adminUseCase.GetReportData(timeRange)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
