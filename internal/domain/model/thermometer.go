package model

import "fmt"

// Thermometer reports an ambient temperature in degrees Celsius. Any
// reading is valid, negatives included.
type Thermometer struct {
	name        string
	temperature float64
}

func NewThermometer(name string, temperature float64) *Thermometer {
	return &Thermometer{name: name, temperature: temperature}
}

func (t *Thermometer) Name() string { return t.name }

func (t *Thermometer) Temperature() float64 { return t.temperature }

func (t *Thermometer) Report() string {
	return fmt.Sprintf("Device: %s, Temperature: %s°C",
		t.name, formatReading(t.temperature))
}

func (t *Thermometer) isDevice() {}
