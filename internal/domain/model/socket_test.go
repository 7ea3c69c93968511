package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSocket_RejectsNegativeRatedPower(t *testing.T) {
	_, err := NewSocket("Lamp", true, -5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNegativeRatedPower)
}

func TestSocket_PowerConsumption(t *testing.T) {
	tests := []struct {
		name       string
		on         bool
		ratedPower float64
		want       float64
	}{
		{"on draws rated power", true, 150, 150},
		{"off draws nothing", false, 100, 0},
		{"zero rated power", true, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSocket("Test Socket", tt.on, tt.ratedPower)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.PowerConsumption())
			assert.Equal(t, tt.ratedPower, s.RatedPower())
		})
	}
}

func TestSocket_PowerControl(t *testing.T) {
	s, err := NewSocket("Test Socket", false, 150)
	require.NoError(t, err)

	s.TurnOn()
	assert.True(t, s.On())
	assert.Equal(t, 150.0, s.PowerConsumption())

	// Idempotent
	s.TurnOn()
	assert.True(t, s.On())

	s.TurnOff()
	assert.False(t, s.On())
	assert.Equal(t, 0.0, s.PowerConsumption())
}

func TestSocket_Report(t *testing.T) {
	tests := []struct {
		name       string
		device     string
		on         bool
		ratedPower float64
		want       string
	}{
		{"whole watts, on", "Lamp", true, 60, "Device: Lamp, Status: ON, Power consumption: 60W"},
		{"off reports zero", "Heater", false, 2000, "Device: Heater, Status: OFF, Power consumption: 0W"},
		{"fractional watts", "Charger", true, 7.5, "Device: Charger, Status: ON, Power consumption: 7.5W"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSocket(tt.device, tt.on, tt.ratedPower)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Report())
		})
	}
}
