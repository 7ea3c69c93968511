package layout

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"smart-house/internal/domain/inventory"
	"smart-house/internal/domain/model"
	"smart-house/internal/ports"
)

// Loader reads a house layout from a YAML file and builds the domain
// tree. The file is construction input, not persisted state.
type Loader struct {
	path string
}

var _ ports.HouseSource = (*Loader)(nil)

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

type layoutFile struct {
	Name  string       `yaml:"name"`
	Rooms []layoutRoom `yaml:"rooms"`
}

type layoutRoom struct {
	Name    string         `yaml:"name"`
	Devices []layoutDevice `yaml:"devices"`
}

type layoutDevice struct {
	Type        string  `yaml:"type"` // "socket" or "thermometer"
	Name        string  `yaml:"name"`
	On          bool    `yaml:"on"`
	RatedPower  float64 `yaml:"rated_power"`
	Temperature float64 `yaml:"temperature"`
}

func (l *Loader) Load(ctx context.Context) (*inventory.House, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("reading layout file: %w", err)
	}
	return Parse(data)
}

// Parse builds a house from raw layout YAML.
func Parse(data []byte) (*inventory.House, error) {
	var file layoutFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}
	if file.Name == "" {
		file.Name = "Smart House"
	}

	house := inventory.NewHouse(file.Name)
	for _, lr := range file.Rooms {
		room := inventory.NewRoom(lr.Name)
		for _, ld := range lr.Devices {
			device, err := buildDevice(ld)
			if err != nil {
				return nil, fmt.Errorf("room %q: %w", lr.Name, err)
			}
			room.AddDevice(device)
		}
		house.AddRoom(room)
	}
	return house, nil
}

func buildDevice(ld layoutDevice) (model.Device, error) {
	switch ld.Type {
	case "socket":
		return model.NewSocket(ld.Name, ld.On, ld.RatedPower)
	case "thermometer":
		return model.NewThermometer(ld.Name, ld.Temperature), nil
	default:
		return nil, fmt.Errorf("device %q: unknown type %q", ld.Name, ld.Type)
	}
}
