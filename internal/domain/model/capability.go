package model

// Capability dispatch over the closed variant set. Every switch below
// lists all variants explicitly; a new variant must be added to each.

// SupportsPowerControl reports whether the device can be switched.
func SupportsPowerControl(d Device) bool {
	switch d.(type) {
	case *Socket:
		return true
	case *Thermometer:
		return false
	}
	return false
}

// IsOn returns the power state. ok is false for devices without power
// control.
func IsOn(d Device) (on, ok bool) {
	switch dev := d.(type) {
	case *Socket:
		return dev.On(), true
	case *Thermometer:
		return false, false
	}
	return false, false
}

// TurnOn switches the device on and reports whether the device supports
// power control. Switching an already-on device still reports true.
func TurnOn(d Device) bool {
	switch dev := d.(type) {
	case *Socket:
		dev.TurnOn()
		return true
	case *Thermometer:
		return false
	}
	return false
}

// TurnOff switches the device off and reports whether the device
// supports power control.
func TurnOff(d Device) bool {
	switch dev := d.(type) {
	case *Socket:
		dev.TurnOff()
		return true
	case *Thermometer:
		return false
	}
	return false
}

// Temperature returns the current reading. ok is false for devices
// without a temperature sensor.
func Temperature(d Device) (float64, bool) {
	switch dev := d.(type) {
	case *Thermometer:
		return dev.Temperature(), true
	case *Socket:
		return 0, false
	}
	return 0, false
}

// PowerConsumption returns the effective draw. ok is false for devices
// that do not meter power.
func PowerConsumption(d Device) (float64, bool) {
	switch dev := d.(type) {
	case *Socket:
		return dev.PowerConsumption(), true
	case *Thermometer:
		return 0, false
	}
	return 0, false
}
