package inventory

import (
	"fmt"
	"strings"
)

// AccessError reports positional access past the end of a container.
type AccessError struct {
	Resource string // "Room" or "Device"
	Index    int
	Count    int
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("%s index %d is out of bounds. Total %s: %d",
		e.Resource, e.Index, strings.ToLower(e.Resource), e.Count)
}

// RoomNotFoundError reports a named room lookup that matched nothing.
type RoomNotFoundError struct {
	Room string
}

func (e *RoomNotFoundError) Error() string {
	return fmt.Sprintf("Room '%s' not found", e.Room)
}

// DeviceNotFoundError reports a named device lookup that matched nothing
// within a located room.
type DeviceNotFoundError struct {
	Device string
	Room   string
}

func (e *DeviceNotFoundError) Error() string {
	return fmt.Sprintf("Device '%s' not found in room '%s'", e.Device, e.Room)
}
