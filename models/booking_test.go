package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{StatusInitiated, StatusAccepted, true},
		{StatusInitiated, StatusCancelled, true},
		{StatusInitiated, StatusCompleted, false},
		{StatusUpcoming, StatusAccepted, true},
		{StatusUpcoming, StatusRunning, false},
		{StatusAccepted, StatusRunning, true},
		{StatusAccepted, StatusCancelled, true},
		{StatusAccepted, StatusPaused, false},
		{StatusRunning, StatusCompleted, true},
		{StatusRunning, StatusPaused, true},
		{StatusRunning, StatusCancelled, true},
		{StatusPaused, StatusRunning, true},
		{StatusPaused, StatusCompleted, false},
		{StatusCompleted, StatusRunning, false},
		{StatusCancelled, StatusAccepted, false},
		{StatusAccepted, StatusAccepted, true}, // self-transition is a no-op
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.allowed, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, IsTerminal(StatusCompleted))
	assert.True(t, IsTerminal(StatusCancelled))
	assert.False(t, IsTerminal(StatusRunning))
	assert.False(t, IsTerminal(StatusPaused))
}

func TestActionLegality(t *testing.T) {
	// cancel is only offered for accepted and running
	assert.True(t, CanCancel(StatusAccepted))
	assert.True(t, CanCancel(StatusRunning))
	assert.False(t, CanCancel(StatusPaused))
	assert.False(t, CanCancel(StatusCompleted))

	// reschedule only for accepted
	assert.True(t, CanReschedule(StatusAccepted))
	assert.False(t, CanReschedule(StatusRunning))
	assert.False(t, CanReschedule(StatusUpcoming))
}
