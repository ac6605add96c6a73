package services

import (
	"fmt"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
	"busbooking/internal/repositories"
	"busbooking/internal/utils"
)

// CatalogService owns bus records: creation with name uniqueness and the
// lookups the booking flow and the choice list depend on.
type CatalogService struct {
	Buses     repositories.BusRepository
	RequestID string
}

// AddBus validates and persists a new bus. All string fields are trimmed and
// must be non-empty; capacity must be positive. A duplicate name surfaces as
// DuplicateNameError with nothing written.
func (s CatalogService) AddBus(name, origin, destination string, capacity int) (models.Bus, error) {
	name = utils.TrimOrEmpty(name)
	origin = utils.TrimOrEmpty(origin)
	destination = utils.TrimOrEmpty(destination)

	if !utils.AllPresent(name, origin, destination) {
		return models.Bus{}, domain.ValidationError{Msg: "all fields are required"}
	}
	if capacity <= 0 {
		return models.Bus{}, domain.ValidationError{Field: "capacity", Msg: "must be a positive integer"}
	}

	bus, err := s.Buses.Insert(models.Bus{
		Name:        name,
		Origin:      origin,
		Destination: destination,
		Capacity:    capacity,
	})
	if err != nil {
		return models.Bus{}, err
	}

	utils.LogEvent(s.RequestID, "catalog", "add_bus",
		fmt.Sprintf("id=%d name=%s seats=%d", bus.ID, bus.Name, bus.Capacity))
	return bus, nil
}

// ListBuses returns all buses in insertion order.
func (s CatalogService) ListBuses() ([]models.Bus, error) {
	return s.Buses.List()
}

// BusChoices returns bus names sorted ascending, the shape choice lists
// refresh from.
func (s CatalogService) BusChoices() ([]string, error) {
	return s.Buses.ListNames()
}

// FindByName resolves a bus by exact, case-sensitive name.
func (s CatalogService) FindByName(name string) (models.Bus, error) {
	return s.Buses.FindByName(name)
}
