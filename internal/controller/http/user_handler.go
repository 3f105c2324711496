package http

import (
	"net/http"
	"time"

	"traders-bloc/internal/entity"
	"traders-bloc/internal/usecase"
	"traders-bloc/pkg/logger"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase         usecase.UserUseCase
	notificationUseCase usecase.NotificationUseCase
	logger              *logger.Logger
}

func NewUserHandler(userUseCase usecase.UserUseCase, notificationUseCase usecase.NotificationUseCase, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userUseCase:         userUseCase,
		notificationUseCase: notificationUseCase,
		logger:              logger,
	}
}

type UpdateUserRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	PhoneNumber     string `json:"phone_number"`
	Email           string `json:"email"`
	CompanyName     string `json:"company_name"`
	TaxID           string `json:"tax_id"`
	Industry        string `json:"industry"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type KYCDocumentRequest struct {
	DocumentType string `json:"document_type" binding:"required"`
	DocumentURL  string `json:"document_url" binding:"required"`
	FileName     string `json:"file_name"`
}

type InvoiceRequest struct {
	InvoiceNumber string    `json:"invoice_number" binding:"required"`
	VendorID      string    `json:"vendor_id" binding:"required"`
	Description   string    `json:"description"`
	Quantity      int       `json:"quantity" binding:"required"`
	PricePerUnit  float64   `json:"price_per_unit" binding:"required"`
	TotalPrice    float64   `json:"total_price" binding:"required"`
	InvoiceFile   string    `json:"invoice_file"`
	PaymentTerms  string    `json:"payment_terms"`
	DueDate       time.Time `json:"due_date" binding:"required"`
}

type MilestoneRequest struct {
	InvoiceID     string    `json:"invoice_id" binding:"required"`
	Title         string    `json:"title" binding:"required"`
	Description   string    `json:"description"`
	SupportingDoc string    `json:"supporting_doc"`
	BankName      string    `json:"bank_name"`
	BankAccountNo string    `json:"bank_account_no"`
	PaymentAmount float64   `json:"payment_amount" binding:"required"`
	DueDate       time.Time `json:"due_date" binding:"required"`
}

type FundingRequestRequest struct {
	InvoiceID        string  `json:"invoice_id" binding:"required"`
	RequestedAmount  float64 `json:"requested_amount" binding:"required"`
	YourContribution float64 `json:"your_contribution"`
}

// GetProfile godoc
// @Summary      Get user profile
// @Description  Get the authenticated user's profile with their invoices, milestones, funding requests, KYC documents and notifications
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.UserProfile
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/me [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	session := admit(c, entity.RoleUser)
	if session == nil {
		return
	}

	profile, err := h.userUseCase.GetProfile(session.IdentityID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary      Update user profile
// @Description  Update the authenticated user's profile. Password change requires both current and new passwords.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdateUserRequest true "Fields to update"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /users/me [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	session := admit(c, entity.RoleUser)
	if session == nil {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUseCase.UpdateUser(session.IdentityID, usecase.UpdateUserInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		PhoneNumber:     req.PhoneNumber,
		Email:           req.Email,
		CompanyName:     req.CompanyName,
		TaxID:           req.TaxID,
		Industry:        req.Industry,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// SubmitKYCDocuments godoc
// @Summary      Submit KYC documents
// @Description  Submit or resubmit KYC documents. Resubmitting a document type replaces it and resets its status to PENDING.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body []KYCDocumentRequest true "Documents"
// @Success      200  {array}  entity.KYCDocument
// @Failure      400  {object}  map[string]string
// @Router       /users/me/kyc [post]
func (h *UserHandler) SubmitKYCDocuments(c *gin.Context) {
	session := admit(c, entity.RoleUser)
	if session == nil {
		return
	}

	var req []KYCDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	documents := make([]usecase.KYCDocumentInput, len(req))
	for i, doc := range req {
		documents[i] = usecase.KYCDocumentInput{
			DocumentType: doc.DocumentType,
			DocumentURL:  doc.DocumentURL,
			FileName:     doc.FileName,
		}
	}

	result, err := h.userUseCase.UpsertKYCDocuments(session.IdentityID, documents)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateInvoice godoc
// @Summary      Create an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body InvoiceRequest true "Invoice data"
// @Success      201  {object}  entity.Invoice
// @Failure      400  {object}  map[string]string
// @Router       /invoices [post]
func (h *UserHandler) CreateInvoice(c *gin.Context) {
	session := admit(c, entity.RoleUser)
	if session == nil {
		return
	}

	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invoice, err := h.userUseCase.CreateInvoice(session.IdentityID, usecase.InvoiceInput{
		InvoiceNumber: req.InvoiceNumber,
		VendorID:      req.VendorID,
		Description:   req.Description,
		Quantity:      req.Quantity,
		PricePerUnit:  req.PricePerUnit,
		TotalPrice:    req.TotalPrice,
		InvoiceFile:   req.InvoiceFile,
		PaymentTerms:  req.PaymentTerms,
		DueDate:       req.DueDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

// ListInvoices godoc
// @Summary      List own invoices
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /invoices [get]
func (h *UserHandler) ListInvoices(c *gin.Context) {
	session := admit(c, entity.RoleUser)
	if session == nil {
		return
	}

	invoices, err := h.userUseCase.ListInvoices(session.IdentityID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoices": invoices, "count": len(invoices)})
}

// UpdateInvoice godoc
// @Summary      Update an invoice
// @Description  Update an invoice. Only the owner can update their own invoices.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Invoice ID"
// @Param        request body InvoiceRequest true "Invoice data"
// @Success      200  {object}  entity.Invoice
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /invoices/{id} [put]
func (h *UserHandler) UpdateInvoice(c *gin.Context) {
	session := admit(c, entity.RoleUser)
	if session == nil {
		return
	}

	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invoice, err := h.userUseCase.UpdateInvoice(session.IdentityID, c.Param("id"), usecase.InvoiceInput{
		InvoiceNumber: req.InvoiceNumber,
		VendorID:      req.VendorID,
		Description:   req.Description,
		Quantity:      req.Quantity,
		PricePerUnit:  req.PricePerUnit,
		TotalPrice:    req.TotalPrice,
		InvoiceFile:   req.InvoiceFile,
		PaymentTerms:  req.PaymentTerms,
		DueDate:       req.DueDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// DeleteInvoice godoc
// @Summary      Delete an invoice
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Invoice ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /invoices/{id} [delete]
func (h *UserHandler) DeleteInvoice(c *gin.Context) {
	session := admit(c, entity.RoleUser)
	if session == nil {
		return
	}

	if err := h.userUseCase.DeleteInvoice(session.IdentityID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
}

// CreateMilestone godoc
// @Summary      Create a milestone
// @Tags         milestones
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body MilestoneRequest true "Milestone data"
// @Success      201  {object}  entity.Milestone
// @Failure      400  {object}  map[string]string
// @Router       /milestones [post]
func (h *UserHandler) CreateMilestone(c *gin.Context) {
	session := admit(c, entity.RoleUser)
	if session == nil {
		return
	}

	var req MilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	milestone, err := h.userUseCase.CreateMilestone(session.IdentityID, usecase.MilestoneInput{
		InvoiceID:     req.InvoiceID,
		Title:         req.Title,
		Description:   req.Description,
		SupportingDoc: req.SupportingDoc,
		BankName:      req.BankName,
		BankAccountNo: req.BankAccountNo,
		PaymentAmount: req.PaymentAmount,
		DueDate:       req.DueDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, milestone)
}

// UpdateMilestone godoc
// @Summary      Update a milestone
// @Tags         milestones
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Milestone ID"
// @Param        request body MilestoneRequest true "Milestone data"
// @Success      200  {object}  entity.Milestone
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /milestones/{id} [put]
func (h *UserHandler) UpdateMilestone(c *gin.Context) {
	session := admit(c, entity.RoleUser)
	if session == nil {
		return
	}

	var req MilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	milestone, err := h.userUseCase.UpdateMilestone(session.IdentityID, c.Param("id"), usecase.MilestoneInput{
		InvoiceID:     req.InvoiceID,
		Title:         req.Title,
		Description:   req.Description,
		SupportingDoc: req.SupportingDoc,
		BankName:      req.BankName,
		BankAccountNo: req.BankAccountNo,
		PaymentAmount: req.PaymentAmount,
		DueDate:       req.DueDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, milestone)
}

// DeleteMilestone godoc
// @Summary      Delete a milestone
// @Tags         milestones
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Milestone ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /milestones/{id} [delete]
func (h *UserHandler) DeleteMilestone(c *gin.Context) {
	session := admit(c, entity.RoleUser)
	if session == nil {
		return
	}

	if err := h.userUseCase.DeleteMilestone(session.IdentityID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Milestone deleted successfully"})
}

// CreateFundingRequest godoc
// @Summary      Request funding for an invoice
// @Tags         funding-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body FundingRequestRequest true "Funding request data"
// @Success      201  {object}  entity.FundingRequest
// @Failure      400  {object}  map[string]string
// @Router       /funding-requests [post]
func (h *UserHandler) CreateFundingRequest(c *gin.Context) {
	session := admit(c, entity.RoleUser)
	if session == nil {
		return
	}

	var req FundingRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.userUseCase.CreateFundingRequest(session.IdentityID, usecase.FundingRequestInput{
		InvoiceID:        req.InvoiceID,
		RequestedAmount:  req.RequestedAmount,
		YourContribution: req.YourContribution,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// ListVendors godoc
// @Summary      List vendors
// @Description  List active vendors for invoice creation
// @Tags         vendors
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /vendors [get]
func (h *UserHandler) ListVendors(c *gin.Context) {
	if session := admit(c, entity.RoleUser); session == nil {
		return
	}

	vendors, err := h.userUseCase.ListVendors()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vendors": vendors, "count": len(vendors)})
}

// UploadDocument godoc
// @Summary      Upload a document
// @Description  Upload a supporting document and get back its storage URL
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "Document file"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /users/me/documents [post]
func (h *UserHandler) UploadDocument(c *gin.Context) {
	session := admit(c, entity.RoleUser)
	if session == nil {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Document file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read document file"})
		return
	}
	defer file.Close()

	url, err := h.userUseCase.UploadDocument(session.IdentityID, fileHeader.Filename, file, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// GetNotifications godoc
// @Summary      Get own notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /notifications [get]
func (h *UserHandler) GetNotifications(c *gin.Context) {
	session, err := admitAny(c)
	if err != nil {
		respondError(c, err)
		return
	}

	notifications, err := h.notificationUseCase.GetByUser(session.IdentityID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications, "count": len(notifications)})
}

// MarkNotificationRead godoc
// @Summary      Mark a notification as read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Notification ID"
// @Success      200  {object}  entity.Notification
// @Failure      404  {object}  map[string]string
// @Router       /notifications/{id}/read [put]
func (h *UserHandler) MarkNotificationRead(c *gin.Context) {
	if _, err := admitAny(c); err != nil {
		respondError(c, err)
		return
	}

	notification, err := h.notificationUseCase.MarkRead(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notification)
}
