// Package finance provides the amortized-payment calculation used by the credit simulator.
package finance

import (
	"errors"
	"math"
)

// ErrInvalidTerm is returned when the amortization formula is undefined for the
// given inputs (zero or negative term, or non-positive rate).
var ErrInvalidTerm = errors.New("invalid term or rate for amortization")

// ErrInvalidPrincipal is returned for a non-positive financed amount.
var ErrInvalidPrincipal = errors.New("principal must be positive")

// MonthlyPayment computes the fixed monthly payment that fully repays principal
// plus interest over termMonths at the given annual rate.
//
// Formula: r = annualRate/12; payment = principal * r * (1+r)^n / ((1+r)^n - 1).
// The result keeps full float64 precision; round with RoundCurrency at
// presentation boundaries only.
func MonthlyPayment(principal float64, termMonths int, annualRate float64) (float64, error) {
	if principal <= 0 || math.IsNaN(principal) || math.IsInf(principal, 0) {
		return 0, ErrInvalidPrincipal
	}
	if termMonths <= 0 || annualRate <= 0 || math.IsNaN(annualRate) || math.IsInf(annualRate, 0) {
		return 0, ErrInvalidTerm
	}

	r := annualRate / 12
	factor := math.Pow(1+r, float64(termMonths))
	payment := principal * r * factor / (factor - 1)

	if math.IsNaN(payment) || math.IsInf(payment, 0) {
		return 0, ErrInvalidTerm
	}
	return payment, nil
}

// TotalRepaid returns the total amount repaid over the full term.
func TotalRepaid(monthlyPayment float64, termMonths int) float64 {
	return monthlyPayment * float64(termMonths)
}

// RoundCurrency rounds an amount to 2 decimal places for display and export.
func RoundCurrency(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// PaymentMatches reports whether a stored monthly payment agrees with a fresh
// recomputation within the given tolerance.
func PaymentMatches(stored, recomputed, tolerance float64) bool {
	return math.Abs(stored-recomputed) <= tolerance
}
