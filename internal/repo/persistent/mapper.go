package persistent

import (
	"traders-bloc/internal/entity"
	"traders-bloc/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:          m.ID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		PhoneNumber: m.PhoneNumber,
		Email:       m.Email,
		Password:    m.Password,
		CompanyName: m.CompanyName,
		TaxID:       m.TaxID,
		Industry:    m.Industry,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:          e.ID,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		PhoneNumber: e.PhoneNumber,
		Email:       e.Email,
		Password:    e.Password,
		CompanyName: e.CompanyName,
		TaxID:       e.TaxID,
		Industry:    e.Industry,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToAppUserEntity(m *model.AppUserModel) *entity.AppUser {
	if m == nil {
		return nil
	}

	return &entity.AppUser{
		ID:             m.ID,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		PhoneNumber:    m.PhoneNumber,
		Email:          m.Email,
		Password:       m.Password,
		ProfilePicture: m.ProfilePicture,
		DateOfBirth:    m.DateOfBirth,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func ToAppUserModel(e *entity.AppUser) *model.AppUserModel {
	if e == nil {
		return nil
	}

	return &model.AppUserModel{
		ID:             e.ID,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		PhoneNumber:    e.PhoneNumber,
		Email:          e.Email,
		Password:       e.Password,
		ProfilePicture: e.ProfilePicture,
		DateOfBirth:    e.DateOfBirth,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToAdminEntity(m *model.AdminModel) *entity.Admin {
	if m == nil {
		return nil
	}

	return &entity.Admin{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Password:  m.Password,
		Role:      entity.Role(m.Role),
		Status:    entity.AdminStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToAdminModel(e *entity.Admin) *model.AdminModel {
	if e == nil {
		return nil
	}

	return &model.AdminModel{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Password:  e.Password,
		Role:      string(e.Role),
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToActivityLogEntity(m *model.ActivityLogModel) *entity.ActivityLog {
	if m == nil {
		return nil
	}

	return &entity.ActivityLog{
		ID:        m.ID,
		AdminID:   m.AdminID,
		Action:    m.Action,
		Kind:      entity.EventKind(m.Kind),
		CreatedAt: m.CreatedAt,
	}
}

func ToActivityLogModel(e *entity.ActivityLog) *model.ActivityLogModel {
	if e == nil {
		return nil
	}

	return &model.ActivityLogModel{
		ID:        e.ID,
		AdminID:   e.AdminID,
		Action:    e.Action,
		Kind:      string(e.Kind),
		CreatedAt: e.CreatedAt,
	}
}

func ToInvoiceEntity(m *model.InvoiceModel) *entity.Invoice {
	if m == nil {
		return nil
	}

	e := &entity.Invoice{
		ID:             m.ID,
		UserID:         m.UserID,
		VendorID:       m.VendorID,
		InvoiceNumber:  m.InvoiceNumber,
		Description:    m.Description,
		Quantity:       m.Quantity,
		PricePerUnit:   m.PricePerUnit,
		TotalPrice:     m.TotalPrice,
		InvoiceFile:    m.InvoiceFile,
		PaymentTerms:   m.PaymentTerms,
		DueDate:        m.DueDate,
		Status:         entity.ApprovalStatus(m.Status),
		SubmissionDate: m.SubmissionDate,
		ReviewDate:     m.ReviewDate,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		User:           ToUserEntity(m.User),
		Vendor:         ToVendorEntity(m.Vendor),
	}
	if m.ReviewedByID != nil {
		e.ReviewedByID = *m.ReviewedByID
	}
	return e
}

func ToInvoiceModel(e *entity.Invoice) *model.InvoiceModel {
	if e == nil {
		return nil
	}

	m := &model.InvoiceModel{
		ID:             e.ID,
		UserID:         e.UserID,
		VendorID:       e.VendorID,
		InvoiceNumber:  e.InvoiceNumber,
		Description:    e.Description,
		Quantity:       e.Quantity,
		PricePerUnit:   e.PricePerUnit,
		TotalPrice:     e.TotalPrice,
		InvoiceFile:    e.InvoiceFile,
		PaymentTerms:   e.PaymentTerms,
		DueDate:        e.DueDate,
		Status:         string(e.Status),
		SubmissionDate: e.SubmissionDate,
		ReviewDate:     e.ReviewDate,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
	if e.ReviewedByID != "" {
		m.ReviewedByID = &e.ReviewedByID
	}
	return m
}

func ToMilestoneEntity(m *model.MilestoneModel) *entity.Milestone {
	if m == nil {
		return nil
	}

	e := &entity.Milestone{
		ID:            m.ID,
		UserID:        m.UserID,
		InvoiceID:     m.InvoiceID,
		Title:         m.Title,
		Description:   m.Description,
		SupportingDoc: m.SupportingDoc,
		BankName:      m.BankName,
		BankAccountNo: m.BankAccountNo,
		PaymentAmount: m.PaymentAmount,
		DueDate:       m.DueDate,
		PaidAt:        m.PaidAt,
		Status:        entity.ApprovalStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		User:          ToUserEntity(m.User),
		Invoice:       ToInvoiceEntity(m.Invoice),
	}
	if m.ReviewedByID != nil {
		e.ReviewedByID = *m.ReviewedByID
	}
	return e
}

func ToMilestoneModel(e *entity.Milestone) *model.MilestoneModel {
	if e == nil {
		return nil
	}

	m := &model.MilestoneModel{
		ID:            e.ID,
		UserID:        e.UserID,
		InvoiceID:     e.InvoiceID,
		Title:         e.Title,
		Description:   e.Description,
		SupportingDoc: e.SupportingDoc,
		BankName:      e.BankName,
		BankAccountNo: e.BankAccountNo,
		PaymentAmount: e.PaymentAmount,
		DueDate:       e.DueDate,
		PaidAt:        e.PaidAt,
		Status:        string(e.Status),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
	if e.ReviewedByID != "" {
		m.ReviewedByID = &e.ReviewedByID
	}
	return m
}

func ToFundingRequestEntity(m *model.FundingRequestModel) *entity.FundingRequest {
	if m == nil {
		return nil
	}

	e := &entity.FundingRequest{
		ID:               m.ID,
		UserID:           m.UserID,
		InvoiceID:        m.InvoiceID,
		RequestedAmount:  m.RequestedAmount,
		YourContribution: m.YourContribution,
		Status:           entity.ApprovalStatus(m.Status),
		SubmissionDate:   m.SubmissionDate,
		ReviewDate:       m.ReviewDate,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
		User:             ToUserEntity(m.User),
		Invoice:          ToInvoiceEntity(m.Invoice),
	}
	if m.ReviewedByID != nil {
		e.ReviewedByID = *m.ReviewedByID
	}
	return e
}

func ToFundingRequestModel(e *entity.FundingRequest) *model.FundingRequestModel {
	if e == nil {
		return nil
	}

	m := &model.FundingRequestModel{
		ID:               e.ID,
		UserID:           e.UserID,
		InvoiceID:        e.InvoiceID,
		RequestedAmount:  e.RequestedAmount,
		YourContribution: e.YourContribution,
		Status:           string(e.Status),
		SubmissionDate:   e.SubmissionDate,
		ReviewDate:       e.ReviewDate,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
	if e.ReviewedByID != "" {
		m.ReviewedByID = &e.ReviewedByID
	}
	return m
}

func ToKYCDocumentEntity(m *model.KYCDocumentModel) *entity.KYCDocument {
	if m == nil {
		return nil
	}

	e := &entity.KYCDocument{
		ID:             m.ID,
		UserID:         m.UserID,
		DocumentType:   m.DocumentType,
		DocumentURL:    m.DocumentURL,
		FileName:       m.FileName,
		Status:         entity.ApprovalStatus(m.Status),
		SubmissionDate: m.SubmissionDate,
		ReviewDate:     m.ReviewDate,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		User:           ToUserEntity(m.User),
	}
	if m.ReviewedByID != nil {
		e.ReviewedByID = *m.ReviewedByID
	}
	return e
}

func ToKYCDocumentModel(e *entity.KYCDocument) *model.KYCDocumentModel {
	if e == nil {
		return nil
	}

	m := &model.KYCDocumentModel{
		ID:             e.ID,
		UserID:         e.UserID,
		DocumentType:   e.DocumentType,
		DocumentURL:    e.DocumentURL,
		FileName:       e.FileName,
		Status:         string(e.Status),
		SubmissionDate: e.SubmissionDate,
		ReviewDate:     e.ReviewDate,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
	if e.ReviewedByID != "" {
		m.ReviewedByID = &e.ReviewedByID
	}
	return m
}

func ToVendorEntity(m *model.VendorModel) *entity.Vendor {
	if m == nil {
		return nil
	}

	e := &entity.Vendor{
		ID:                       m.ID,
		Name:                     m.Name,
		ContactPerson:            m.ContactPerson,
		ContactPersonPhoneNumber: m.ContactPersonPhoneNumber,
		PhoneNumber:              m.PhoneNumber,
		Address:                  m.Address,
		Email:                    m.Email,
		BankName:                 m.BankName,
		BankAccountNumber:        m.BankAccountNumber,
		CreatedAt:                m.CreatedAt,
		UpdatedAt:                m.UpdatedAt,
	}
	if m.CreatedByID != nil {
		e.CreatedByID = *m.CreatedByID
	}
	return e
}

func ToVendorModel(e *entity.Vendor) *model.VendorModel {
	if e == nil {
		return nil
	}

	m := &model.VendorModel{
		ID:                       e.ID,
		Name:                     e.Name,
		ContactPerson:            e.ContactPerson,
		ContactPersonPhoneNumber: e.ContactPersonPhoneNumber,
		PhoneNumber:              e.PhoneNumber,
		Address:                  e.Address,
		Email:                    e.Email,
		BankName:                 e.BankName,
		BankAccountNumber:        e.BankAccountNumber,
		CreatedAt:                e.CreatedAt,
		UpdatedAt:                e.UpdatedAt,
	}
	if e.CreatedByID != "" {
		m.CreatedByID = &e.CreatedByID
	}
	return m
}

func ToNotificationEntity(m *model.NotificationModel) *entity.Notification {
	if m == nil {
		return nil
	}

	e := &entity.Notification{
		ID:        m.ID,
		Kind:      entity.EventKind(m.Kind),
		Message:   m.Message,
		Link:      m.Link,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.UserID != nil {
		e.UserID = *m.UserID
	}
	for i := range m.Admins {
		e.AdminIDs = append(e.AdminIDs, m.Admins[i].ID)
	}
	return e
}

func ToNotificationModel(e *entity.Notification) *model.NotificationModel {
	if e == nil {
		return nil
	}

	m := &model.NotificationModel{
		ID:        e.ID,
		Kind:      string(e.Kind),
		Message:   e.Message,
		Link:      e.Link,
		IsRead:    e.IsRead,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	if e.UserID != "" {
		userID := e.UserID
		m.UserID = &userID
	}
	for _, adminID := range e.AdminIDs {
		m.Admins = append(m.Admins, model.AdminModel{ID: adminID})
	}
	return m
}
