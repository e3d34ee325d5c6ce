package demo

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mrlokans/fleet/internal/entities"
	"github.com/mrlokans/fleet/internal/services"
)

// Seed populates an empty facade with a small sample fleet: two users,
// three buses, two reports and three routes. Everything goes through the
// facade so change loggers see the seeded writes.
func Seed(f *services.Facade, log *zap.Logger) error {
	if len(f.Users.GetAll()) > 0 || len(f.Buses.GetAll()) > 0 {
		log.Info("store not empty, skipping demo seed")
		return nil
	}

	alice, err := f.Users.Create(entities.UserInput{FirstName: "Alice", LastName: "Martin", Email: "alice@fleet.example", IsAdmin: true})
	if err != nil {
		return fmt.Errorf("seed user: %w", err)
	}
	bob, err := f.Users.Create(entities.UserInput{FirstName: "Bob", LastName: "Durand", Email: "bob@fleet.example"})
	if err != nil {
		return fmt.Errorf("seed user: %w", err)
	}

	brakes, err := f.Reports.Create("Brakes squeal at low speed")
	if err != nil {
		return fmt.Errorf("seed report: %w", err)
	}
	door, err := f.Reports.Create("Rear door sensor intermittent")
	if err != nil {
		return fmt.Errorf("seed report: %w", err)
	}

	buses := []services.CreateBusRequest{
		{
			BusAttributes: entities.BusAttributes{
				Name: "Citaro E-12", Description: "Electric city bus", Price: 520000,
				Length: 12, Capacity: 85, EngineType: string(entities.EngineElectric), EuroStandard: 6, Status: int(entities.BusActive),
			},
			OwnerID: &alice.ID,
			Reports: []string{door.ID},
		},
		{
			BusAttributes: entities.BusAttributes{
				Name: "Urbino 18", Description: "Articulated hybrid", Price: 610000,
				Length: 18, Capacity: 150, EngineType: string(entities.EngineHybrid), EuroStandard: 6, Status: int(entities.BusActive),
			},
			OwnerID: &bob.ID,
			Reports: []string{brakes.ID},
		},
		{
			BusAttributes: entities.BusAttributes{
				Name: "Lion's City", Description: "Retired diesel", Price: 90000,
				Length: 12, Capacity: 90, EngineType: string(entities.EngineThermal), EuroStandard: 4, Status: int(entities.BusRetired),
			},
		},
	}

	busIDs := make([]string, 0, len(buses))
	for _, req := range buses {
		bus, err := f.Buses.Create(req)
		if err != nil {
			return fmt.Errorf("seed bus %q: %w", req.Name, err)
		}
		busIDs = append(busIDs, bus.ID)
	}

	routes := []services.CreateRouteRequest{
		{RouteNumber: "1", Name: "Harbour loop", Rating: 4, UserID: alice.ID, BusID: busIDs[0]},
		{RouteNumber: "12", Name: "Airport express", Rating: 5, UserID: bob.ID, BusID: busIDs[1]},
		{RouteNumber: "12N", Name: "Airport night", Rating: 3, UserID: bob.ID, BusID: busIDs[1]},
	}
	for _, req := range routes {
		if _, err := f.Routes.Create(req); err != nil {
			return fmt.Errorf("seed route %q: %w", req.RouteNumber, err)
		}
	}

	log.Info("demo data seeded", zap.Any("stored", f.Counts()))
	return nil
}
