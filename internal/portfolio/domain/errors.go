package domain

import "errors"

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrInvalidSeries   = errors.New("invalid progress series")
	ErrAlreadySeeded   = errors.New("repository already seeded")
	ErrInvalidSeedSize = errors.New("seed sizes must not be negative")
)
