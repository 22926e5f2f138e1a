package kpi

import (
	"encoding/json"
	"strings"
)

type scalarValue struct {
	Value json.RawMessage `json:"value"`
}

type rangeValue struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Achievement computes the achievement ratio in [0, 1] of a submitted value
// against a target, per target type:
//
//	numeric/percentage: submitted / target, clamped to 1
//	boolean:            1 when the submitted flag matches the target flag
//	text:               1 when a non-empty text was submitted
//	range:              1 inside [min, max]; below min scales linearly
func Achievement(targetType TargetType, target, submitted json.RawMessage) (float64, error) {
	if len(submitted) == 0 {
		return 0, ErrMissingSubmission
	}

	switch targetType {
	case TargetNumeric, TargetPercentage:
		want, err := unwrapNumber(target)
		if err != nil {
			return 0, err
		}
		got, err := unwrapNumber(submitted)
		if err != nil {
			return 0, ErrMissingSubmission
		}
		if want <= 0 {
			return 0, ErrInvalidTargetValue
		}
		return clamp01(got / want), nil

	case TargetBoolean:
		want, err := unwrapBool(target)
		if err != nil {
			return 0, err
		}
		got, err := unwrapBool(submitted)
		if err != nil {
			return 0, ErrMissingSubmission
		}
		if got == want {
			return 1, nil
		}
		return 0, nil

	case TargetText:
		got, err := unwrapText(submitted)
		if err != nil {
			return 0, ErrMissingSubmission
		}
		if strings.TrimSpace(got) != "" {
			return 1, nil
		}
		return 0, nil

	case TargetRange:
		var rng rangeValue
		if err := json.Unmarshal(target, &rng); err != nil || rng.Max < rng.Min {
			return 0, ErrInvalidTargetValue
		}
		got, err := unwrapNumber(submitted)
		if err != nil {
			return 0, ErrMissingSubmission
		}
		switch {
		case got >= rng.Min && got <= rng.Max:
			return 1, nil
		case got < rng.Min && rng.Min > 0:
			return clamp01(got / rng.Min), nil
		default:
			return 0, nil
		}
	}

	return 0, ErrInvalidTargetValue
}

// WeightedScore is the assignment's contribution to the employee's overall
// score for the period.
func WeightedScore(weight, achievement float64) float64 {
	return weight * achievement
}

// ValidateTargetValue checks that a raw target value has the shape required
// by the target type.
func ValidateTargetValue(targetType TargetType, target json.RawMessage) error {
	switch targetType {
	case TargetNumeric, TargetPercentage:
		v, err := unwrapNumber(target)
		if err != nil || v <= 0 {
			return ErrInvalidTargetValue
		}
	case TargetBoolean:
		if _, err := unwrapBool(target); err != nil {
			return ErrInvalidTargetValue
		}
	case TargetText:
		v, err := unwrapText(target)
		if err != nil || strings.TrimSpace(v) == "" {
			return ErrInvalidTargetValue
		}
	case TargetRange:
		var rng rangeValue
		if err := json.Unmarshal(target, &rng); err != nil || rng.Max < rng.Min {
			return ErrInvalidTargetValue
		}
	default:
		return ErrInvalidTargetValue
	}
	return nil
}

func unwrapNumber(raw json.RawMessage) (float64, error) {
	var s scalarValue
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, ErrInvalidTargetValue
	}
	var v float64
	if err := json.Unmarshal(s.Value, &v); err != nil {
		return 0, ErrInvalidTargetValue
	}
	return v, nil
}

func unwrapBool(raw json.RawMessage) (bool, error) {
	var s scalarValue
	if err := json.Unmarshal(raw, &s); err != nil {
		return false, ErrInvalidTargetValue
	}
	var v bool
	if err := json.Unmarshal(s.Value, &v); err != nil {
		return false, ErrInvalidTargetValue
	}
	return v, nil
}

func unwrapText(raw json.RawMessage) (string, error) {
	var s scalarValue
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", ErrInvalidTargetValue
	}
	var v string
	if err := json.Unmarshal(s.Value, &v); err != nil {
		return "", ErrInvalidTargetValue
	}
	return v, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
