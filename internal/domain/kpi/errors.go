package kpi

import "errors"

var (
	ErrTemplateNotFound   = errors.New("kpi template not found")
	ErrAssignmentNotFound = errors.New("kpi assignment not found")
	ErrInvalidTransition  = errors.New("kpi assignment status transition not allowed")
	ErrNotAssignmentOwner = errors.New("kpi assignment belongs to another employee")
	ErrCannotReviewOwn    = errors.New("cannot review own kpi assignment")
	ErrInvalidTargetValue = errors.New("target value does not match target type")
	ErrMissingSubmission  = errors.New("assignment has no submitted value")
)
