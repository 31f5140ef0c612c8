// Package domain defines domain-level errors for the commitments feature.
package domain

import "errors"

var (
	// ErrCommitmentNotFound indicates that no commitment matched the given id or page.
	// The query layer surfaces this as an explicit 404 rather than an empty success payload.
	ErrCommitmentNotFound = errors.New("commitment not found")
)
