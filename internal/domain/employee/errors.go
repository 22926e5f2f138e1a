package employee

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrDepartmentNotFound  = errors.New("department not found")
	ErrEmailExists         = errors.New("email already registered")
	ErrFieldNotAllowed     = errors.New("field not allowed for role")
	ErrInsufficientBalance = errors.New("insufficient leave balance")
)
