package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSocket(t *testing.T, on bool) *Socket {
	t.Helper()
	s, err := NewSocket("Test Socket", on, 100)
	require.NoError(t, err)
	return s
}

func TestSupportsPowerControl(t *testing.T) {
	assert.True(t, SupportsPowerControl(testSocket(t, true)))
	assert.False(t, SupportsPowerControl(NewThermometer("Test Thermometer", 22.5)))
}

func TestIsOn(t *testing.T) {
	on, ok := IsOn(testSocket(t, true))
	assert.True(t, ok)
	assert.True(t, on)

	on, ok = IsOn(testSocket(t, false))
	assert.True(t, ok)
	assert.False(t, on)

	_, ok = IsOn(NewThermometer("Test Thermometer", 22.5))
	assert.False(t, ok)
}

func TestTurnOnOff(t *testing.T) {
	s := testSocket(t, false)
	assert.True(t, TurnOn(s))
	assert.True(t, s.On())

	// Already on: still supported, state unchanged.
	assert.True(t, TurnOn(s))
	assert.True(t, s.On())

	assert.True(t, TurnOff(s))
	assert.False(t, s.On())

	th := NewThermometer("Test Thermometer", 22.5)
	assert.False(t, TurnOn(th))
	assert.False(t, TurnOff(th))
	assert.Equal(t, 22.5, th.Temperature())
}

func TestTemperatureDispatch(t *testing.T) {
	v, ok := Temperature(NewThermometer("Test Thermometer", 22.5))
	assert.True(t, ok)
	assert.Equal(t, 22.5, v)

	_, ok = Temperature(testSocket(t, true))
	assert.False(t, ok)
}

func TestPowerConsumptionDispatch(t *testing.T) {
	w, ok := PowerConsumption(testSocket(t, true))
	assert.True(t, ok)
	assert.Equal(t, 100.0, w)

	w, ok = PowerConsumption(testSocket(t, false))
	assert.True(t, ok)
	assert.Equal(t, 0.0, w)

	_, ok = PowerConsumption(NewThermometer("Test Thermometer", 22.5))
	assert.False(t, ok)
}

// fakeSwitch checks the capability interfaces stay satisfiable by
// hand-written fakes.
type fakeSwitch struct{ on bool }

func (f *fakeSwitch) On() bool { return f.on }
func (f *fakeSwitch) TurnOn()  { f.on = true }
func (f *fakeSwitch) TurnOff() { f.on = false }

func TestPowerControllerFake(t *testing.T) {
	var pc PowerController = &fakeSwitch{}
	pc.TurnOn()
	assert.True(t, pc.On())
	pc.TurnOff()
	assert.False(t, pc.On())
}
