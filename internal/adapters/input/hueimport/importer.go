package hueimport

import (
	"fmt"
	"strconv"

	"github.com/amimof/huego"

	"smart-house/internal/domain/inventory"
	"smart-house/internal/domain/model"
)

// UngroupedRoom collects lights that no group references.
const UngroupedRoom = "Ungrouped"

// fallbackRatedPower is a typical LED bulb wattage, used when neither
// the model table nor DefaultRatedPower provides a value.
const fallbackRatedPower = 9

// Importer converts state already fetched from a Hue bridge into a
// domain house: groups become rooms, lights become sockets, and
// ZLLTemperature sensors become thermometers. It performs no I/O; the
// caller is whoever talked to a bridge.
type Importer struct {
	// RatedPower maps a light model ID to its wattage. Unknown models
	// fall back to DefaultRatedPower, then to fallbackRatedPower.
	RatedPower        map[string]float64
	DefaultRatedPower float64

	// SensorRoom assigns a sensor name to a room. Sensors without an
	// entry are skipped: the Hue API does not tie sensors to groups.
	SensorRoom map[string]string
}

// House builds a domain house from bridge state.
func (i *Importer) House(name string, groups []huego.Group, lights []huego.Light, sensors []huego.Sensor) (*inventory.House, error) {
	house := inventory.NewHouse(name)

	byID := make(map[string]huego.Light, len(lights))
	for _, l := range lights {
		byID[strconv.Itoa(l.ID)] = l
	}

	grouped := make(map[string]bool, len(lights))
	for _, g := range groups {
		room := inventory.NewRoom(g.Name)
		for _, id := range g.Lights {
			l, ok := byID[id]
			if !ok {
				return nil, fmt.Errorf("group %q references unknown light %s", g.Name, id)
			}
			socket, err := i.socket(l)
			if err != nil {
				return nil, err
			}
			room.AddDevice(socket)
			grouped[id] = true
		}
		house.AddRoom(room)
	}

	for _, l := range lights {
		if grouped[strconv.Itoa(l.ID)] {
			continue
		}
		socket, err := i.socket(l)
		if err != nil {
			return nil, err
		}
		i.room(house, UngroupedRoom).AddDevice(socket)
	}

	for _, s := range sensors {
		if s.Type != "ZLLTemperature" {
			continue
		}
		roomName, ok := i.SensorRoom[s.Name]
		if !ok {
			continue
		}
		temp, err := temperature(s)
		if err != nil {
			return nil, err
		}
		i.room(house, roomName).AddDevice(model.NewThermometer(s.Name, temp))
	}

	return house, nil
}

func (i *Importer) socket(l huego.Light) (*model.Socket, error) {
	watts, ok := i.RatedPower[l.ModelID]
	if !ok {
		watts = i.DefaultRatedPower
	}
	if watts == 0 {
		watts = fallbackRatedPower
	}
	on := l.State != nil && l.State.On
	return model.NewSocket(l.Name, on, watts)
}

func (i *Importer) room(house *inventory.House, name string) *inventory.Room {
	if room, err := house.Room(name); err == nil {
		return room
	}
	room := inventory.NewRoom(name)
	house.AddRoom(room)
	return room
}

// temperature decodes the sensor reading, reported in centi-degrees.
func temperature(s huego.Sensor) (float64, error) {
	switch v := s.State["temperature"].(type) {
	case float64:
		return v / 100, nil
	case int:
		return float64(v) / 100, nil
	default:
		return 0, fmt.Errorf("sensor %q: unexpected temperature value %v", s.Name, s.State["temperature"])
	}
}
