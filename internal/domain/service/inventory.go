package service

import (
	"context"
	"errors"
	"fmt"

	"smart-house/internal/domain/inventory"
	"smart-house/internal/domain/report"
	"smart-house/internal/ports"
)

// ErrNoHouse is returned by operations that need a loaded house.
var ErrNoHouse = errors.New("no house loaded")

// InventoryService wires a house source to a report sink. It owns the
// loaded house; access is single-threaded by design, so there is no
// locking here.
type InventoryService struct {
	source ports.HouseSource
	sink   ports.ReportSink
	house  *inventory.House
}

func NewInventoryService(source ports.HouseSource, sink ports.ReportSink) *InventoryService {
	return &InventoryService{source: source, sink: sink}
}

// Load fetches the house from the source, replacing any previous one.
func (s *InventoryService) Load(ctx context.Context) error {
	house, err := s.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading house: %w", err)
	}
	s.house = house
	return nil
}

// House returns the loaded house, or nil before Load.
func (s *InventoryService) House() *inventory.House { return s.house }

// PublishReport renders the whole house and hands it to the sink.
func (s *InventoryService) PublishReport(ctx context.Context) error {
	if s.house == nil {
		return ErrNoHouse
	}
	return s.Publish(ctx, s.house)
}

// Publish sends any reportable entity to the sink: a bare device, a
// room, or a whole house.
func (s *InventoryService) Publish(ctx context.Context, rep report.Reporter) error {
	return s.sink.Write(ctx, rep.Report())
}

// TotalPowerConsumption sums the effective draw across the house.
func (s *InventoryService) TotalPowerConsumption() (float64, error) {
	if s.house == nil {
		return 0, ErrNoHouse
	}
	return s.house.TotalPowerConsumption(), nil
}
