// Package domain defines domain-level errors for the investors feature.
package domain

import "errors"

// Domain errors for investor lookups.
// These errors represent business logic failures and should be handled appropriately by upper layers.
var (
	// ErrInvestorNotFound indicates that no investor matched the given id or page.
	// The query layer surfaces this as an explicit 404 rather than an empty success payload.
	ErrInvestorNotFound = errors.New("investor not found")
)
