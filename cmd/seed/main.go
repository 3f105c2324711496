package main

import (
	"flag"
	"fmt"
	"time"

	"traders-bloc/internal/model"
	"traders-bloc/pkg/config"
	"traders-bloc/pkg/database"
	"traders-bloc/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to config file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	superAdminID, err := seedAdmins(db, log)
	if err != nil {
		return err
	}

	if err := seedVendors(db, superAdminID, log); err != nil {
		return err
	}

	userIDs, err := seedUsers(db, log)
	if err != nil {
		return err
	}

	return seedInvoices(db, userIDs, log)
}

func seedAdmins(db *gorm.DB, log *logger.Logger) (string, error) {
	admins := []struct {
		name  string
		email string
		role  string
	}{
		{"Root Admin", "root@tradersbloc.com", "SUPER_ADMIN"},
		{"Ops Admin", "ops@tradersbloc.com", "ADMIN"},
		{"Reviews Admin", "reviews@tradersbloc.com", "ADMIN"},
	}

	var superAdminID string
	for _, adminData := range admins {
		var existing model.AdminModel
		result := db.Where("email = ?", adminData.email).First(&existing)
		if result.Error == nil {
			log.Info("Admin %s already exists, skipping", adminData.email)
			if adminData.role == "SUPER_ADMIN" {
				superAdminID = existing.ID
			}
			continue
		}

		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		admin := &model.AdminModel{
			Name:     adminData.name,
			Email:    adminData.email,
			Password: string(hashedPassword),
			Role:     adminData.role,
			Status:   "ACTIVE",
		}
		if err := admin.BeforeCreate(nil); err != nil {
			return "", fmt.Errorf("failed to generate admin ID: %w", err)
		}
		if err := db.Create(admin).Error; err != nil {
			return "", fmt.Errorf("failed to create admin %s: %w", admin.Email, err)
		}
		log.Info("Created admin: %s (%s)", admin.Name, admin.Email)
		if admin.Role == "SUPER_ADMIN" {
			superAdminID = admin.ID
		}
	}
	return superAdminID, nil
}

func seedVendors(db *gorm.DB, createdByID string, log *logger.Logger) error {
	vendors := []struct {
		name  string
		email string
		bank  string
	}{
		{"Acme Logistics", "accounts@acmelogistics.com", "First National"},
		{"Northwind Supplies", "billing@northwind.com", "Commerce Bank"},
		{"Globex Materials", "finance@globex.com", "First National"},
	}

	for _, vendorData := range vendors {
		var existing model.VendorModel
		result := db.Where("email = ?", vendorData.email).First(&existing)
		if result.Error == nil {
			log.Info("Vendor %s already exists, skipping", vendorData.name)
			continue
		}

		vendor := &model.VendorModel{
			Name:        vendorData.name,
			Email:       vendorData.email,
			BankName:    vendorData.bank,
			CreatedByID: &createdByID,
		}
		if err := vendor.BeforeCreate(nil); err != nil {
			return fmt.Errorf("failed to generate vendor ID: %w", err)
		}
		if err := db.Create(vendor).Error; err != nil {
			log.Error("Failed to create vendor %s: %v", vendor.Name, err)
			continue
		}
		log.Info("Created vendor: %s", vendor.Name)
	}
	return nil
}

func seedUsers(db *gorm.DB, log *logger.Logger) ([]string, error) {
	testUsers := []struct {
		firstName string
		lastName  string
		email     string
		company   string
	}{
		{"Alice", "Mercer", "alice@test.com", "Mercer Trading Ltd"},
		{"Bob", "Osei", "bob@test.com", "Osei Imports"},
		{"Charlie", "Ihejirika", "charlie@test.com", "CI Distribution"},
	}

	userIDs := make([]string, 0, len(testUsers))
	for _, userData := range testUsers {
		var existing model.UserModel
		result := db.Where("email = ?", userData.email).First(&existing)
		if result.Error == nil {
			log.Info("User %s already exists, skipping", userData.email)
			userIDs = append(userIDs, existing.ID)
			continue
		}

		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user := &model.UserModel{
			FirstName:   userData.firstName,
			LastName:    userData.lastName,
			Email:       userData.email,
			Password:    string(hashedPassword),
			CompanyName: userData.company,
		}
		if err := user.BeforeCreate(nil); err != nil {
			return nil, fmt.Errorf("failed to generate user ID: %w", err)
		}
		if err := db.Create(user).Error; err != nil {
			log.Error("Failed to create user %s: %v", user.Email, err)
			continue
		}
		log.Info("Created user: %s %s (%s)", user.FirstName, user.LastName, user.Email)
		userIDs = append(userIDs, user.ID)
	}
	return userIDs, nil
}

func seedInvoices(db *gorm.DB, userIDs []string, log *logger.Logger) error {
	var vendors []model.VendorModel
	if err := db.Find(&vendors).Error; err != nil {
		return fmt.Errorf("failed to load vendors: %w", err)
	}
	if len(vendors) == 0 {
		return fmt.Errorf("no vendors available for invoices")
	}

	for i, userID := range userIDs {
		invoicesCount := 2 + (i % 2)
		for j := 0; j < invoicesCount; j++ {
			invoiceNumber := fmt.Sprintf("INV-%04d-%02d", i+1, j+1)

			var existing model.InvoiceModel
			result := db.Where("user_id = ? AND invoice_number = ?", userID, invoiceNumber).First(&existing)
			if result.Error == nil {
				continue
			}

			vendor := vendors[(i+j)%len(vendors)]
			quantity := 10 * (j + 1)
			pricePerUnit := 150.0
			invoice := &model.InvoiceModel{
				UserID:        userID,
				VendorID:      vendor.ID,
				InvoiceNumber: invoiceNumber,
				Description:   fmt.Sprintf("Supply order from %s", vendor.Name),
				Quantity:      quantity,
				PricePerUnit:  pricePerUnit,
				TotalPrice:    float64(quantity) * pricePerUnit,
				PaymentTerms:  "NET 30",
				DueDate:       time.Now().AddDate(0, 1, 0),
				Status:        "PENDING",
			}
			if err := invoice.BeforeCreate(nil); err != nil {
				return fmt.Errorf("failed to generate invoice ID: %w", err)
			}
			if err := db.Create(invoice).Error; err != nil {
				log.Error("Failed to create invoice %s: %v", invoiceNumber, err)
				continue
			}
			log.Info("Created invoice: %s", invoice.InvoiceNumber)

			milestone := &model.MilestoneModel{
				UserID:        userID,
				InvoiceID:     invoice.ID,
				Title:         fmt.Sprintf("Delivery for %s", invoiceNumber),
				Description:   "First delivery tranche",
				PaymentAmount: invoice.TotalPrice / 2,
				DueDate:       time.Now().AddDate(0, 0, 14),
				Status:        "PENDING",
			}
			if err := milestone.BeforeCreate(nil); err != nil {
				return fmt.Errorf("failed to generate milestone ID: %w", err)
			}
			if err := db.Create(milestone).Error; err != nil {
				log.Error("Failed to create milestone for %s: %v", invoiceNumber, err)
			}
		}
	}
	return nil
}
