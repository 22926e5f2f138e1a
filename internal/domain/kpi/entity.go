package kpi

import (
	"encoding/json"
	"time"
)

type TargetType string

const (
	TargetNumeric    TargetType = "numeric"
	TargetBoolean    TargetType = "boolean"
	TargetText       TargetType = "text"
	TargetPercentage TargetType = "percentage"
	TargetRange      TargetType = "range"
)

func (t TargetType) Valid() bool {
	switch t {
	case TargetNumeric, TargetBoolean, TargetText, TargetPercentage, TargetRange:
		return true
	}
	return false
}

type AssignmentStatus string

const (
	StatusAssigned   AssignmentStatus = "assigned"
	StatusInProgress AssignmentStatus = "in_progress"
	StatusSubmitted  AssignmentStatus = "submitted"
	StatusApproved   AssignmentStatus = "approved"
	StatusRejected   AssignmentStatus = "rejected"
)

func (s AssignmentStatus) Valid() bool {
	switch s {
	case StatusAssigned, StatusInProgress, StatusSubmitted, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// CanTransitionTo enforces the assignment workflow: assigned -> in_progress
// -> submitted -> approved|rejected. A rejected assignment may be reworked
// back to in_progress.
func (s AssignmentStatus) CanTransitionTo(next AssignmentStatus) bool {
	switch s {
	case StatusAssigned:
		return next == StatusInProgress
	case StatusInProgress:
		return next == StatusSubmitted
	case StatusSubmitted:
		return next == StatusApproved || next == StatusRejected
	case StatusRejected:
		return next == StatusInProgress
	}
	return false
}

// Template describes one measurable indicator. TargetValue is stored as
// JSONB and its shape depends on TargetType:
//
//	numeric/percentage: {"value": 40}
//	boolean:            {"value": true}
//	text:               {"value": "description of done"}
//	range:              {"min": 10, "max": 20}
type Template struct {
	ID          string
	Name        string
	Description *string
	Weight      float64 // 0..1
	TargetType  TargetType
	TargetValue json.RawMessage
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Assignment struct {
	ID             string
	TemplateID     string
	EmployeeID     string
	AssignedBy     string
	PeriodStart    time.Time
	PeriodEnd      time.Time
	Status         AssignmentStatus
	SubmittedValue json.RawMessage
	EvidenceURL    *string
	ReviewedBy     *string
	ReviewedAt     *time.Time
	ReviewNote     *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	TemplateName   *string
	TemplateWeight *float64
	TargetType     *TargetType
	TargetValue    json.RawMessage
}
