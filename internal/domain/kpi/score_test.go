package kpi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raw(s string) json.RawMessage { return json.RawMessage(s) }

func TestAchievementNumeric(t *testing.T) {
	target := raw(`{"value": 40}`)

	score, err := Achievement(TargetNumeric, target, raw(`{"value": 30}`))
	require.NoError(t, err)
	assert.InDelta(t, 0.75, score, 1e-9)

	score, err = Achievement(TargetNumeric, target, raw(`{"value": 55}`))
	require.NoError(t, err)
	assert.Equal(t, 1.0, score, "overshoot clamps to 1")

	score, err = Achievement(TargetNumeric, target, raw(`{"value": 0}`))
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}

func TestAchievementPercentage(t *testing.T) {
	score, err := Achievement(TargetPercentage, raw(`{"value": 95}`), raw(`{"value": 76}`))
	require.NoError(t, err)
	assert.InDelta(t, 0.8, score, 1e-9)
}

func TestAchievementBoolean(t *testing.T) {
	target := raw(`{"value": true}`)

	score, err := Achievement(TargetBoolean, target, raw(`{"value": true}`))
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)

	score, err = Achievement(TargetBoolean, target, raw(`{"value": false}`))
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}

func TestAchievementText(t *testing.T) {
	target := raw(`{"value": "migration plan delivered"}`)

	score, err := Achievement(TargetText, target, raw(`{"value": "plan attached"}`))
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)

	score, err = Achievement(TargetText, target, raw(`{"value": "   "}`))
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}

func TestAchievementRange(t *testing.T) {
	target := raw(`{"min": 10, "max": 20}`)

	score, err := Achievement(TargetRange, target, raw(`{"value": 15}`))
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)

	score, err = Achievement(TargetRange, target, raw(`{"value": 10}`))
	require.NoError(t, err)
	assert.Equal(t, 1.0, score, "min boundary is inside")

	score, err = Achievement(TargetRange, target, raw(`{"value": 5}`))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, score, 1e-9, "below min scales against min")

	score, err = Achievement(TargetRange, target, raw(`{"value": 25}`))
	require.NoError(t, err)
	assert.Equal(t, 0.0, score, "above max scores zero")
}

func TestAchievementMissingSubmission(t *testing.T) {
	_, err := Achievement(TargetNumeric, raw(`{"value": 40}`), nil)
	assert.ErrorIs(t, err, ErrMissingSubmission)
}

func TestAchievementBadTarget(t *testing.T) {
	_, err := Achievement(TargetNumeric, raw(`{"value": 0}`), raw(`{"value": 3}`))
	assert.ErrorIs(t, err, ErrInvalidTargetValue)

	_, err = Achievement(TargetRange, raw(`{"min": 20, "max": 10}`), raw(`{"value": 15}`))
	assert.ErrorIs(t, err, ErrInvalidTargetValue)
}

func TestWeightedScoreBounds(t *testing.T) {
	assert.InDelta(t, 0.225, WeightedScore(0.3, 0.75), 1e-9)
	assert.Equal(t, 0.0, WeightedScore(0.3, 0))
	assert.Equal(t, 0.3, WeightedScore(0.3, 1))
}

func TestValidateTargetValue(t *testing.T) {
	assert.NoError(t, ValidateTargetValue(TargetNumeric, raw(`{"value": 12}`)))
	assert.NoError(t, ValidateTargetValue(TargetBoolean, raw(`{"value": false}`)))
	assert.NoError(t, ValidateTargetValue(TargetText, raw(`{"value": "ship it"}`)))
	assert.NoError(t, ValidateTargetValue(TargetRange, raw(`{"min": 1, "max": 9}`)))

	assert.ErrorIs(t, ValidateTargetValue(TargetNumeric, raw(`{"value": -1}`)), ErrInvalidTargetValue)
	assert.ErrorIs(t, ValidateTargetValue(TargetText, raw(`{"value": ""}`)), ErrInvalidTargetValue)
	assert.ErrorIs(t, ValidateTargetValue(TargetRange, raw(`{"min": 9, "max": 1}`)), ErrInvalidTargetValue)
	assert.ErrorIs(t, ValidateTargetValue(TargetType("banana"), raw(`{"value": 1}`)), ErrInvalidTargetValue)
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, StatusAssigned.CanTransitionTo(StatusInProgress))
	assert.True(t, StatusInProgress.CanTransitionTo(StatusSubmitted))
	assert.True(t, StatusSubmitted.CanTransitionTo(StatusApproved))
	assert.True(t, StatusSubmitted.CanTransitionTo(StatusRejected))
	assert.True(t, StatusRejected.CanTransitionTo(StatusInProgress))

	assert.False(t, StatusAssigned.CanTransitionTo(StatusSubmitted))
	assert.False(t, StatusApproved.CanTransitionTo(StatusInProgress))
	assert.False(t, StatusSubmitted.CanTransitionTo(StatusAssigned))
}
