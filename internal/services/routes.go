package services

import (
	"strings"

	"github.com/mrlokans/fleet/internal/database/memory"
	"github.com/mrlokans/fleet/internal/entities"
)

// CreateRouteRequest is the payload accepted by RouteService.Create.
type CreateRouteRequest struct {
	RouteNumber string `json:"route_number"`
	Name        string `json:"name"`
	Rating      int    `json:"rating"`
	UserID      string `json:"user_id"`
	BusID       string `json:"bus_id"`
}

// UpdateRouteRequest lists the route attributes that may change.
type UpdateRouteRequest struct {
	RouteNumber *string `json:"route_number"`
	Name        *string `json:"name"`
	Rating      *int    `json:"rating"`
	UserID      *string `json:"user_id"`
	BusID       *string `json:"bus_id"`
}

// RouteService coordinates routes. The repository keeps bus and user ids
// only; every read links the route to the current bus and user.
type RouteService struct {
	repo  *memory.Repository[*entities.Route]
	users *UserService
	buses *BusService
	recorder
}

// Create links a new route to an existing user and bus. A request that
// is malformed (blank name, rating outside 1..5, missing ids) yields
// ErrInvalidInput; an unknown user or bus yields a *NotFoundError.
func (s *RouteService) Create(req CreateRouteRequest) (*entities.Route, error) {
	if strings.TrimSpace(req.Name) == "" ||
		entities.ValidateRating(req.Rating) != nil ||
		req.UserID == "" || req.BusID == "" {
		return nil, ErrInvalidInput
	}

	route, err := s.create(req)
	if err != nil {
		s.record(entities.AuditEventCreate, entities.EntityRoute, "", err)
		return nil, err
	}
	s.record(entities.AuditEventCreate, entities.EntityRoute, route.ID, nil)
	return route, nil
}

func (s *RouteService) create(req CreateRouteRequest) (*entities.Route, error) {
	user, userOK := s.users.Get(req.UserID)
	bus, busOK := s.buses.Get(req.BusID)
	if !userOK {
		return nil, userNotFound(req.UserID)
	}
	if !busOK {
		return nil, vehicleNotFound(req.BusID)
	}

	route, err := entities.NewRoute(entities.RouteAttributes{
		RouteNumber: req.RouteNumber,
		Name:        req.Name,
		Rating:      req.Rating,
	}, bus, user)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Add(route); err != nil {
		return nil, err
	}
	s.buses.AddRoute(bus.ID, route.ID)
	return s.hydrate(route), nil
}

func (s *RouteService) Get(id string) (*entities.Route, bool) {
	route, ok := s.repo.Get(id)
	if !ok {
		return nil, false
	}
	return s.hydrate(route), true
}

func (s *RouteService) GetAll() []*entities.Route {
	routes := s.repo.GetAll()
	for _, route := range routes {
		s.hydrate(route)
	}
	return routes
}

// GetByBus returns the routes linked to busID in repository order.
func (s *RouteService) GetByBus(busID string) []*entities.Route {
	var matching []*entities.Route
	for _, route := range s.repo.GetAll() {
		if route.BusID() == busID {
			matching = append(matching, s.hydrate(route))
		}
	}
	return matching
}

// hydrate links a route copy to the current bus and user. A deleted bus
// or user leaves its side nil; the id is kept.
func (s *RouteService) hydrate(route *entities.Route) *entities.Route {
	var bus *entities.Bus
	if b, ok := s.buses.Get(route.BusID()); ok {
		bus = b
	}
	var user *entities.User
	if u, ok := s.users.Get(route.UserID()); ok {
		user = u
	}
	route.Link(bus, user)
	return route
}

// Update applies req atomically. A missing route yields ErrNotFound; a
// user or bus that does not resolve yields a *NotFoundError.
func (s *RouteService) Update(id string, req UpdateRouteRequest) (*entities.Route, error) {
	current, ok := s.repo.Get(id)
	if !ok {
		return nil, missing(entities.EntityRoute, id)
	}

	change, err := s.resolveUpdate(req)
	if err != nil {
		s.record(entities.AuditEventUpdate, entities.EntityRoute, id, err)
		return nil, err
	}

	route, ok, err := s.repo.Update(id, func(r *entities.Route) error {
		return r.Update(change)
	})
	if !ok {
		return nil, missing(entities.EntityRoute, id)
	}
	s.record(entities.AuditEventUpdate, entities.EntityRoute, id, err)
	if err != nil {
		return nil, err
	}

	if oldBusID := current.BusID(); oldBusID != route.BusID() {
		s.buses.RemoveRoute(oldBusID, id)
		s.buses.AddRoute(route.BusID(), id)
	}
	return s.hydrate(route), nil
}

func (s *RouteService) resolveUpdate(req UpdateRouteRequest) (entities.RouteUpdate, error) {
	change := entities.RouteUpdate{
		RouteNumber: req.RouteNumber,
		Name:        req.Name,
		Rating:      req.Rating,
	}

	if req.Rating != nil {
		if err := entities.ValidateRating(*req.Rating); err != nil {
			return change, err
		}
	}
	if req.UserID != nil {
		user, ok := s.users.Get(*req.UserID)
		if !ok {
			return change, userNotFound(*req.UserID)
		}
		change.User = user
	}
	if req.BusID != nil {
		bus, ok := s.buses.Get(*req.BusID)
		if !ok {
			return change, vehicleNotFound(*req.BusID)
		}
		change.Bus = bus
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return change, entities.NewValueError("name", "Text is required")
	}
	return change, nil
}

// Delete removes the route. The bus keeps the route id; nothing cascades.
func (s *RouteService) Delete(id string) {
	if s.repo.Delete(id) {
		s.record(entities.AuditEventDelete, entities.EntityRoute, id, nil)
	}
}
