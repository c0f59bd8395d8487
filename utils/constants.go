// Package utils provides utility functions for the application.
package utils

import "time"

// SessionTokenTTL is the default lifetime of an admin session token.
const SessionTokenTTL = 1 * time.Hour

// PaymentTolerance is the accepted float drift between a stored monthly
// payment and its recomputation from the stored amount and term.
const PaymentTolerance = 1e-6
