package ports

import (
	"context"

	"smart-house/internal/domain/inventory"
)

// HouseSource supplies a fully-built house from some external layout: a
// config file, an imported bridge, a test fixture.
type HouseSource interface {
	Load(ctx context.Context) (*inventory.House, error)
}
