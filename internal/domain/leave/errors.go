package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrInvalidRange         = errors.New("end date must not be before start date")
	ErrInsufficientBalance  = errors.New("insufficient leave balance")
	ErrAlreadyProcessed     = errors.New("leave request already processed")
	ErrCannotDecideOwn      = errors.New("cannot approve or reject your own leave request")
	ErrNotRequestOwner      = errors.New("only the requesting employee may cancel this request")
)
