package services

import (
	"github.com/mrlokans/fleet/internal/database/memory"
	"github.com/mrlokans/fleet/internal/entities"
)

// CreateBusRequest is the payload accepted by BusService.Create. OwnerID
// and Reports are resolved by the facade, never by the entity.
type CreateBusRequest struct {
	entities.BusAttributes
	OwnerID *string  `json:"owner_id"`
	Reports []string `json:"reports"`
}

// BusService coordinates buses. The repository keeps buses shallow
// (identifiers only); every read hydrates a private copy.
type BusService struct {
	repo    *memory.Repository[*entities.Bus]
	users   *memory.Repository[*entities.User]
	reports *memory.Repository[*entities.Report]
	recorder
}

// Create resolves the owner, builds the bus and attaches the listed
// reports. Report ids that do not resolve are skipped; an owner id that
// does not resolve fails the call.
func (s *BusService) Create(req CreateBusRequest) (*entities.Bus, error) {
	bus, err := s.create(req)
	if err != nil {
		s.record(entities.AuditEventCreate, entities.EntityBus, "", err)
		return nil, err
	}
	s.record(entities.AuditEventCreate, entities.EntityBus, bus.ID, nil)
	return bus, nil
}

func (s *BusService) create(req CreateBusRequest) (*entities.Bus, error) {
	var owner *entities.User
	if req.OwnerID != nil {
		user, ok := s.users.Get(*req.OwnerID)
		if !ok {
			return nil, ownerNotFound(*req.OwnerID)
		}
		owner = user
	}

	bus, err := entities.NewBus(req.BusAttributes, owner)
	if err != nil {
		return nil, err
	}

	for _, reportID := range req.Reports {
		if report, ok := s.reports.Get(reportID); ok {
			bus.AddReport(report)
		}
	}

	if err := s.repo.Add(bus); err != nil {
		return nil, err
	}
	return bus, nil
}

// Get returns a hydrated copy of the bus.
func (s *BusService) Get(id string) (*entities.Bus, bool) {
	bus, ok := s.repo.Get(id)
	if !ok {
		return nil, false
	}
	return s.hydrate(bus), true
}

func (s *BusService) GetAll() []*entities.Bus {
	buses := s.repo.GetAll()
	for i, bus := range buses {
		buses[i] = s.hydrate(bus)
	}
	return buses
}

// hydrate resolves OwnerID and ReportIDs on a copy owned by the caller.
// A deleted owner yields a bus without owner; deleted reports are dropped
// from the view but stay in the stored record.
func (s *BusService) hydrate(bus *entities.Bus) *entities.Bus {
	var owner *entities.User
	if bus.OwnerID != nil {
		if user, ok := s.users.Get(*bus.OwnerID); ok {
			owner = user
		}
	}
	bus.SetOwner(owner)

	reports := make([]*entities.Report, 0, len(bus.ReportIDs))
	reportIDs := make([]string, 0, len(bus.ReportIDs))
	for _, reportID := range bus.ReportIDs {
		if report, ok := s.reports.Get(reportID); ok {
			reports = append(reports, report)
			reportIDs = append(reportIDs, reportID)
		}
	}
	bus.Reports = reports
	bus.ReportIDs = reportIDs
	return bus
}

// Update applies req atomically. Unlike Create, every report id must
// resolve or nothing is changed.
func (s *BusService) Update(id string, req entities.BusUpdate) (*entities.Bus, error) {
	if _, ok := s.repo.Get(id); !ok {
		return nil, missing(entities.EntityBus, id)
	}

	if err := s.resolveUpdate(req); err != nil {
		s.record(entities.AuditEventUpdate, entities.EntityBus, id, err)
		return nil, err
	}

	bus, ok, err := s.repo.Update(id, func(b *entities.Bus) error {
		return b.Update(req)
	})
	if !ok {
		return nil, missing(entities.EntityBus, id)
	}
	s.record(entities.AuditEventUpdate, entities.EntityBus, id, err)
	if err != nil {
		return nil, err
	}
	return s.hydrate(bus), nil
}

func (s *BusService) resolveUpdate(req entities.BusUpdate) error {
	if req.OwnerID != nil {
		if _, ok := s.users.Get(*req.OwnerID); !ok {
			return ownerNotFound(*req.OwnerID)
		}
	}
	if req.ReportIDs != nil {
		for _, reportID := range *req.ReportIDs {
			if _, ok := s.reports.Get(reportID); !ok {
				return reportNotFound(reportID)
			}
		}
	}
	return nil
}

// Delete removes the bus without touching routes that reference it.
func (s *BusService) Delete(id string) {
	if s.repo.Delete(id) {
		s.record(entities.AuditEventDelete, entities.EntityBus, id, nil)
	}
}

// AddRoute records routeID on the bus. It reports false when the bus
// does not exist.
func (s *BusService) AddRoute(busID, routeID string) bool {
	_, ok, _ := s.repo.Update(busID, func(b *entities.Bus) error {
		b.AddRoute(routeID)
		b.Touch()
		return nil
	})
	return ok
}

// RemoveRoute drops routeID from the bus. It reports false when the bus
// does not exist.
func (s *BusService) RemoveRoute(busID, routeID string) bool {
	_, ok, _ := s.repo.Update(busID, func(b *entities.Bus) error {
		b.RemoveRoute(routeID)
		b.Touch()
		return nil
	})
	return ok
}
