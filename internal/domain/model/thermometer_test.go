package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThermometer_Readings(t *testing.T) {
	th := NewThermometer("Outdoor", -15.7)
	assert.Equal(t, "Outdoor", th.Name())
	assert.Equal(t, -15.7, th.Temperature())
}

func TestThermometer_Report(t *testing.T) {
	tests := []struct {
		name        string
		temperature float64
		want        string
	}{
		{"T1", 21.5, "Device: T1, Temperature: 21.5°C"},
		{"Freezer", -20.3, "Device: Freezer, Temperature: -20.3°C"},
		{"Zero", 0, "Device: Zero, Temperature: 0°C"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewThermometer(tt.name, tt.temperature).Report())
		})
	}
}
