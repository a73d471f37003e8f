// Package common defines shared constants and sentinel errors used across
// the importer and storage layers of PuxVault. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Archive-level errors.
	ErrUnzipFailure = errors.New("could not unzip archive")

	// ErrInvalidStructure indicates the decoded export document is
	// structurally unusable, most notably a missing or empty account list.
	// Wrapped errors carry the violated expectation as detail.
	ErrInvalidStructure = errors.New("invalid export structure")

	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Vault errors (wrong master password on an existing vault).
	ErrInvalidMasterPassword = errors.New("invalid master password")
)
