package model

// Device is the closed set of smart-home device variants: Socket and
// Thermometer. The unexported marker method keeps the set closed so the
// capability dispatch in capability.go stays exhaustive; adding a variant
// means updating every switch there.
type Device interface {
	Name() string
	Report() string
	isDevice()
}

// PowerController is the capability of devices that can be switched.
type PowerController interface {
	On() bool
	TurnOn()
	TurnOff()
}

// TemperatureSensor is the capability of devices that read temperature.
type TemperatureSensor interface {
	Temperature() float64
}

// PowerMeter is the capability of devices that report power draw.
type PowerMeter interface {
	PowerConsumption() float64
}

var (
	_ Device          = (*Socket)(nil)
	_ PowerController = (*Socket)(nil)
	_ PowerMeter      = (*Socket)(nil)

	_ Device            = (*Thermometer)(nil)
	_ TemperatureSensor = (*Thermometer)(nil)
)
