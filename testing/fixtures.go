// Package testing provides test utilities and database setup for integration tests
package testing

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/verdelease/leasing-api/finance"
	"github.com/verdelease/leasing-api/models"
	"github.com/verdelease/leasing-api/repository"
	"github.com/verdelease/leasing-api/utils"
	"golang.org/x/crypto/bcrypt"
)

// TestFixtures provides helper methods for creating test data against any
// LeadRepository/AdminRepository implementation.
type TestFixtures struct {
	LeadRepo  repository.LeadRepository
	AdminRepo repository.AdminRepository
}

// NewTestFixtures creates a new test fixtures instance
func NewTestFixtures(leadRepo repository.LeadRepository, adminRepo repository.AdminRepository) *TestFixtures {
	return &TestFixtures{LeadRepo: leadRepo, AdminRepo: adminRepo}
}

// CreateTestAdmin creates an active admin with a bcrypt-hashed password
func (tf *TestFixtures) CreateTestAdmin(ctx context.Context, username, password string) (*models.Admin, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		UUID:         uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		IsActive:     utils.ToPtr(true),
		CreatedAt:    utils.UTCNow(),
		UpdatedAt:    utils.UTCNow(),
	}
	if err := tf.AdminRepo.Save(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to create test admin: %w", err)
	}
	return admin, nil
}

// CreateTestLead creates a stored simulation with plausible values, created at
// the given time.
func (tf *TestFixtures) CreateTestLead(ctx context.Context, vehicleID string, createdAt time.Time) (*models.Lead, error) {
	randomDigits := fmt.Sprintf("%09d", rand.Intn(900000000)+100000000)

	payment, err := finance.MonthlyPayment(24000, 48, 0.0699)
	if err != nil {
		return nil, fmt.Errorf("failed to compute fixture payment: %w", err)
	}

	lead := &models.Lead{
		UUID:              uuid.New(),
		Amount:            24000,
		FinancePercentage: 80,
		Term:              48,
		Income:            2500,
		Employment:        models.EmploymentEmployed,
		Name:              "Test Customer",
		Email:             fmt.Sprintf("customer.%s@example.com", randomDigits),
		Phone:             "+34 " + randomDigits,
		MonthlyPayment:    payment,
		AnnualRate:        0.0699,
		VehicleID:         vehicleID,
		CreatedAt:         createdAt,
	}
	if err := tf.LeadRepo.Save(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to create test lead: %w", err)
	}
	return lead, nil
}
