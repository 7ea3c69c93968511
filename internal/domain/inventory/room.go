package inventory

import (
	"fmt"
	"strings"

	"smart-house/internal/domain/model"
)

// Room is an insertion-ordered, name-keyed collection of devices. Device
// names are unique within a room; adding a device under an existing name
// replaces the previous one in place.
type Room struct {
	name    string
	order   []string
	devices map[string]model.Device
}

// NewRoom builds a room from zero or more devices. A later device with a
// duplicate name replaces the earlier one.
func NewRoom(name string, devices ...model.Device) *Room {
	r := &Room{
		name:    name,
		devices: make(map[string]model.Device, len(devices)),
	}
	for _, d := range devices {
		r.AddDevice(d)
	}
	return r
}

func (r *Room) Name() string { return r.name }

// Len returns the number of devices in the room.
func (r *Room) Len() int { return len(r.devices) }

// Devices returns the devices in insertion order.
func (r *Room) Devices() []model.Device {
	out := make([]model.Device, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.devices[name])
	}
	return out
}

// Device returns the device with the given name.
func (r *Room) Device(name string) (model.Device, error) {
	d, ok := r.devices[name]
	if !ok {
		return nil, &DeviceNotFoundError{Device: name, Room: r.name}
	}
	return d, nil
}

// DeviceAt returns the device at the given insertion position. Positions
// shift down when an earlier device is removed.
func (r *Room) DeviceAt(index int) (model.Device, error) {
	if index < 0 || index >= len(r.order) {
		return nil, &AccessError{Resource: "Device", Index: index, Count: len(r.order)}
	}
	return r.devices[r.order[index]], nil
}

// AddDevice inserts the device under its name and returns the device it
// replaced, or nil. A replaced name keeps its original position.
func (r *Room) AddDevice(d model.Device) model.Device {
	prev, existed := r.devices[d.Name()]
	r.devices[d.Name()] = d
	if !existed {
		r.order = append(r.order, d.Name())
		return nil
	}
	return prev
}

// RemoveDevice removes the named device and hands it back to the caller.
func (r *Room) RemoveDevice(name string) (model.Device, error) {
	d, ok := r.devices[name]
	if !ok {
		return nil, &DeviceNotFoundError{Device: name, Room: r.name}
	}
	delete(r.devices, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return d, nil
}

// TurnOnDevice switches the named device on. The bool mirrors capability
// dispatch: false means the device has no power control.
func (r *Room) TurnOnDevice(name string) (bool, error) {
	d, err := r.Device(name)
	if err != nil {
		return false, err
	}
	return model.TurnOn(d), nil
}

// TurnOffDevice switches the named device off; same contract as
// TurnOnDevice.
func (r *Room) TurnOffDevice(name string) (bool, error) {
	d, err := r.Device(name)
	if err != nil {
		return false, err
	}
	return model.TurnOff(d), nil
}

// Temperature reads the named device's temperature. ok is false when the
// device exists but has no temperature sensor.
func (r *Room) Temperature(name string) (value float64, ok bool, err error) {
	d, err := r.Device(name)
	if err != nil {
		return 0, false, err
	}
	value, ok = model.Temperature(d)
	return value, ok, nil
}

// PowerConsumption reads the named device's effective draw. ok is false
// when the device exists but does not meter power.
func (r *Room) PowerConsumption(name string) (value float64, ok bool, err error) {
	d, err := r.Device(name)
	if err != nil {
		return 0, false, err
	}
	value, ok = model.PowerConsumption(d)
	return value, ok, nil
}

// TotalPowerConsumption sums the effective draw of every metering device.
func (r *Room) TotalPowerConsumption() float64 {
	var total float64
	for _, name := range r.order {
		if w, ok := model.PowerConsumption(r.devices[name]); ok {
			total += w
		}
	}
	return total
}

// Report renders the room header followed by one line per device, in
// insertion order.
func (r *Room) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Room: %s ===\n", r.name)
	for _, name := range r.order {
		b.WriteString(r.devices[name].Report())
		b.WriteByte('\n')
	}
	return b.String()
}
