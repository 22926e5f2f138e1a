package attendance

import "errors"

var (
	ErrTransactionNotFound = errors.New("attendance record not found")
	ErrInvalidDateRange    = errors.New("end date must not be before start date")
)
