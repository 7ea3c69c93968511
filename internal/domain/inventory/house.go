package inventory

import (
	"fmt"
	"strings"

	"smart-house/internal/domain/model"
)

// House is an insertion-ordered, name-keyed collection of rooms. The
// house exclusively owns its rooms; callers reach devices through it.
type House struct {
	name  string
	order []string
	rooms map[string]*Room
}

// NewHouse builds a house from zero or more rooms. A later room with a
// duplicate name replaces the earlier one.
func NewHouse(name string, rooms ...*Room) *House {
	h := &House{
		name:  name,
		rooms: make(map[string]*Room, len(rooms)),
	}
	for _, r := range rooms {
		h.AddRoom(r)
	}
	return h
}

func (h *House) Name() string { return h.name }

// Len returns the number of rooms in the house.
func (h *House) Len() int { return len(h.rooms) }

// Rooms returns the rooms in insertion order.
func (h *House) Rooms() []*Room {
	out := make([]*Room, 0, len(h.order))
	for _, name := range h.order {
		out = append(out, h.rooms[name])
	}
	return out
}

// Room returns the room with the given name.
func (h *House) Room(name string) (*Room, error) {
	r, ok := h.rooms[name]
	if !ok {
		return nil, &RoomNotFoundError{Room: name}
	}
	return r, nil
}

// RoomAt returns the room at the given insertion position.
func (h *House) RoomAt(index int) (*Room, error) {
	if index < 0 || index >= len(h.order) {
		return nil, &AccessError{Resource: "Room", Index: index, Count: len(h.order)}
	}
	return h.rooms[h.order[index]], nil
}

// AddRoom inserts the room under its name and returns the room it
// replaced, or nil. A replaced name keeps its original position.
func (h *House) AddRoom(r *Room) *Room {
	prev, existed := h.rooms[r.Name()]
	h.rooms[r.Name()] = r
	if !existed {
		h.order = append(h.order, r.Name())
		return nil
	}
	return prev
}

// RemoveRoom removes the named room and hands it back to the caller.
func (h *House) RemoveRoom(name string) (*Room, error) {
	r, ok := h.rooms[name]
	if !ok {
		return nil, &RoomNotFoundError{Room: name}
	}
	delete(h.rooms, name)
	for i, n := range h.order {
		if n == name {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
	return r, nil
}

// Device resolves a device through its room. Failures distinguish the
// level: a missing room yields RoomNotFoundError, a missing device in a
// located room yields DeviceNotFoundError.
func (h *House) Device(roomName, deviceName string) (model.Device, error) {
	room, err := h.Room(roomName)
	if err != nil {
		return nil, err
	}
	return room.Device(deviceName)
}

// TurnOnDevice switches a device on through its room.
func (h *House) TurnOnDevice(roomName, deviceName string) (bool, error) {
	room, err := h.Room(roomName)
	if err != nil {
		return false, err
	}
	return room.TurnOnDevice(deviceName)
}

// TurnOffDevice switches a device off through its room.
func (h *House) TurnOffDevice(roomName, deviceName string) (bool, error) {
	room, err := h.Room(roomName)
	if err != nil {
		return false, err
	}
	return room.TurnOffDevice(deviceName)
}

// Temperature reads a device's temperature through its room.
func (h *House) Temperature(roomName, deviceName string) (float64, bool, error) {
	room, err := h.Room(roomName)
	if err != nil {
		return 0, false, err
	}
	return room.Temperature(deviceName)
}

// PowerConsumption reads a device's effective draw through its room.
func (h *House) PowerConsumption(roomName, deviceName string) (float64, bool, error) {
	room, err := h.Room(roomName)
	if err != nil {
		return 0, false, err
	}
	return room.PowerConsumption(deviceName)
}

// TotalPowerConsumption sums the effective draw across all rooms.
func (h *House) TotalPowerConsumption() float64 {
	var total float64
	for _, name := range h.order {
		total += h.rooms[name].TotalPowerConsumption()
	}
	return total
}

// Report renders the house header followed by each room's report, each
// followed by a newline, in insertion order.
func (h *House) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Smart House: %s ===\n", h.name)
	for _, name := range h.order {
		b.WriteString(h.rooms[name].Report())
		b.WriteByte('\n')
	}
	return b.String()
}
