// Package models contains domain entities and business models for the leasing lead-intake system
package models

import (
	"time"

	"github.com/google/uuid"
)

// Employment situation values accepted on a credit simulation.
const (
	EmploymentEmployed     = "employed"
	EmploymentSelfEmployed = "self-employed"
	EmploymentRetired      = "retired"
	EmploymentOther        = "other"
)

// AllowedTerms is the set of financing terms offered, in months.
var AllowedTerms = []int{12, 24, 36, 48, 60, 72, 84}

// IsAllowedTerm reports whether term is one of the offered financing terms.
func IsAllowedTerm(term int) bool {
	for _, t := range AllowedTerms {
		if t == term {
			return true
		}
	}
	return false
}

// Lead is a stored credit simulation: a prospective customer's financing
// inquiry. Immutable once persisted. Amount is the principal derived from the
// catalog price and MonthlyPayment the server-computed payment, both kept at
// full precision; the client-submitted figures are never stored.
type Lead struct {
	ID   uint      `gorm:"primaryKey" json:"id"`
	UUID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_simulations_uuid" json:"uuid"`

	Amount            float64 `gorm:"not null" json:"amount"`
	Term              int     `gorm:"not null" json:"term"`
	Income            float64 `gorm:"not null" json:"income"`
	Employment        string  `gorm:"size:32;not null" json:"employment"`
	Name              string  `gorm:"size:255;not null" json:"name"`
	Email             string  `gorm:"size:255;not null" json:"email"`
	Phone             string  `gorm:"size:32;not null" json:"phone"`
	MonthlyPayment    float64 `gorm:"column:monthly_payment;not null" json:"monthly_payment"`
	VehicleID         string  `gorm:"column:vehicle_id;size:128;not null;index:idx_simulations_vehicle_id" json:"vehicle_id"`
	FinancePercentage int     `gorm:"column:finance_percentage;not null" json:"finance_percentage"`
	AnnualRate        float64 `gorm:"column:annual_rate;not null" json:"annual_rate"`

	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC');index:idx_simulations_created_at" json:"created_at"`
}

func (Lead) TableName() string {
	return "simulations"
}

// LeadFilter represents filter criteria for lead queries
type LeadFilter struct {
	ID            *uint
	UUID          *uuid.UUID
	VehicleID     *string
	Email         *string
	Employment    *string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}
