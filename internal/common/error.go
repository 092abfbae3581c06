// Package common defines shared constants and sentinel errors used across
// the salesdesk client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")

	// Validation errors raised before any request is made.
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrNoFileSelected   = errors.New("no file selected")
)
