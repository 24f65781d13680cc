package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom_Valid(t *testing.T) {
	r, err := NewRoom(101, RoomStandard, 2, 150.0)
	require.NoError(t, err)
	assert.Equal(t, 101, r.Number)
	assert.Equal(t, 2, r.Capacity)
	assert.Equal(t, 150.0, r.BaseRate)
	assert.Equal(t, RoomAvailable, r.Status)
}

func TestNewRoom_RejectsBadInput(t *testing.T) {
	cases := []struct {
		name     string
		number   int
		capacity int
		rate     float64
	}{
		{"zero capacity", 101, 0, 100},
		{"negative capacity", 101, -1, 100},
		{"zero rate", 101, 2, 0},
		{"negative rate", 101, 2, -50},
		{"zero number", 0, 2, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRoom(tc.number, RoomStandard, tc.capacity, tc.rate)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestNewRoom_UnknownCategory(t *testing.T) {
	_, err := NewRoom(101, RoomCategory("penthouse"), 2, 100)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewRoom_SuiteOverridesCapacityAndRate(t *testing.T) {
	r, err := NewRoom(301, RoomSuite, 10, 200.0)
	require.NoError(t, err)
	assert.Equal(t, 4, r.Capacity)
	assert.Equal(t, 300.0, r.BaseRate)
}
