package model

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrNegativeRatedPower is returned when a socket is created with a
// negative wattage.
var ErrNegativeRatedPower = errors.New("rated power must not be negative")

// Socket is a switchable power socket. The rated power is a latent
// capacity, not a live reading: the effective consumption is zero
// whenever the socket is off.
type Socket struct {
	name       string
	on         bool
	ratedPower float64
}

// NewSocket creates a socket with the given initial state and rated
// power in watts. Negative rated power is rejected.
func NewSocket(name string, on bool, ratedPower float64) (*Socket, error) {
	if ratedPower < 0 {
		return nil, fmt.Errorf("socket %q: %w", name, ErrNegativeRatedPower)
	}
	return &Socket{name: name, on: on, ratedPower: ratedPower}, nil
}

func (s *Socket) Name() string { return s.name }

func (s *Socket) On() bool { return s.on }

// TurnOn switches the socket on. Idempotent.
func (s *Socket) TurnOn() { s.on = true }

// TurnOff switches the socket off. Idempotent.
func (s *Socket) TurnOff() { s.on = false }

// RatedPower returns the configured wattage regardless of state.
func (s *Socket) RatedPower() float64 { return s.ratedPower }

// PowerConsumption returns the effective draw: the rated power while on,
// zero while off.
func (s *Socket) PowerConsumption() float64 {
	if s.on {
		return s.ratedPower
	}
	return 0
}

func (s *Socket) Report() string {
	status := "OFF"
	if s.on {
		status = "ON"
	}
	return fmt.Sprintf("Device: %s, Status: %s, Power consumption: %sW",
		s.name, status, formatReading(s.PowerConsumption()))
}

func (s *Socket) isDevice() {}

// formatReading renders a reading without a trailing ".0" (60W, 21.5°C).
func formatReading(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
