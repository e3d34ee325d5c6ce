package entities

import "slices"

const (
	maxBusNameLength = 100
	maxBusLength     = 24.5
)

// EngineType is the propulsion of a bus.
type EngineType string

const (
	EngineThermal  EngineType = "thermal"
	EngineHybrid   EngineType = "hybrid"
	EngineHydrogen EngineType = "hydrogen"
	EngineElectric EngineType = "electric"
)

// BusStatus is -1 (retired), 0 (off) or 1 (active).
type BusStatus int

const (
	BusRetired BusStatus = -1
	BusOff     BusStatus = 0
	BusActive  BusStatus = 1
)

// BusAttributes are the plain fields a bus is built from.
type BusAttributes struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Length       float64 `json:"length"`
	Capacity     float64 `json:"capacity"`
	EngineType   string  `json:"engine_type"`
	EuroStandard int     `json:"euro_standard"`
	Status       int     `json:"status"`
}

// BusUpdate lists the bus attributes that may change. OwnerID and
// ReportIDs must already be resolved by the caller.
type BusUpdate struct {
	Name         *string   `json:"name"`
	Description  *string   `json:"description"`
	Price        *float64  `json:"price"`
	Length       *float64  `json:"length"`
	Capacity     *float64  `json:"capacity"`
	EngineType   *string   `json:"engine_type"`
	EuroStandard *int      `json:"euro_standard"`
	Status       *int      `json:"status"`
	OwnerID      *string   `json:"owner_id"`
	ReportIDs    *[]string `json:"reports"`
}

// Bus is stored shallow: OwnerID, RouteIDs and ReportIDs are the source
// of truth. Owner and Reports are only populated on hydrated copies.
type Bus struct {
	Base
	Name         string
	Description  string
	Price        float64
	Length       float64
	Capacity     float64
	EngineType   EngineType
	EuroStandard int
	Status       BusStatus
	OwnerID      *string
	RouteIDs     []string
	ReportIDs    []string

	Owner   *User
	Reports []*Report
}

type BusRecord struct {
	Base
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Price        float64    `json:"price"`
	Length       float64    `json:"length"`
	Capacity     float64    `json:"capacity"`
	EngineType   EngineType `json:"engine_type"`
	EuroStandard int        `json:"euro_standard"`
	Status       BusStatus  `json:"status"`
	OwnerID      *string    `json:"owner_id"`
	Routes       []string   `json:"routes"`
	Reports      []string   `json:"reports"`
}

// NewBus validates attrs and builds a bus owned by owner, which may be nil.
func NewBus(attrs BusAttributes, owner *User) (*Bus, error) {
	if err := firstError(
		validateBusName(attrs.Name),
		validatePrice(attrs.Price),
		validateLength(attrs.Length),
		validateCapacity(attrs.Capacity),
		validateEngineType(attrs.EngineType),
		validateEuroStandard(attrs.EuroStandard),
		validateStatus(attrs.Status),
	); err != nil {
		return nil, err
	}

	b := &Bus{
		Base:         newBase(),
		Name:         attrs.Name,
		Description:  attrs.Description,
		Price:        attrs.Price,
		Length:       attrs.Length,
		Capacity:     attrs.Capacity,
		EngineType:   EngineType(attrs.EngineType),
		EuroStandard: attrs.EuroStandard,
		Status:       BusStatus(attrs.Status),
		RouteIDs:     []string{},
		ReportIDs:    []string{},
	}
	b.SetOwner(owner)
	return b, nil
}

func validateBusName(name string) error {
	if len([]rune(name)) > maxBusNameLength {
		return NewValueError("name", "name must be <= %d characters", maxBusNameLength)
	}
	return nil
}

func validatePrice(price float64) error {
	if price < 0 {
		return NewValueError("price", "price must be positive")
	}
	return nil
}

func validateLength(length float64) error {
	if !(length > 0 && length <= maxBusLength) {
		return NewValueError("length", "length must be between 0 and %g meters", maxBusLength)
	}
	return nil
}

func validateCapacity(capacity float64) error {
	if capacity < 0 {
		return NewValueError("capacity", "capacity must be positive")
	}
	return nil
}

func validateEngineType(engine string) error {
	switch EngineType(engine) {
	case EngineThermal, EngineHybrid, EngineHydrogen, EngineElectric:
		return nil
	}
	return NewTypeError("engine_type", "engine_type must be thermal, hybrid, hydrogen or electric")
}

func validateEuroStandard(euro int) error {
	if euro < 0 {
		return NewTypeError("euro_standard", "euro_standard must be a positive integer")
	}
	return nil
}

func validateStatus(status int) error {
	if status < int(BusRetired) || status > int(BusActive) {
		return NewTypeError("status", "status must be an integer between -1 and 1")
	}
	return nil
}

// SetOwner attaches owner and keeps OwnerID in step with it.
func (b *Bus) SetOwner(owner *User) {
	b.Owner = owner
	if owner == nil {
		b.OwnerID = nil
		return
	}
	id := owner.ID
	b.OwnerID = &id
}

// AddReport attaches a resolved report.
func (b *Bus) AddReport(report *Report) {
	if report == nil {
		return
	}
	b.Reports = append(b.Reports, report)
	if !slices.Contains(b.ReportIDs, report.ID) {
		b.ReportIDs = append(b.ReportIDs, report.ID)
	}
}

// AddRoute records a route identifier, ignoring duplicates.
func (b *Bus) AddRoute(routeID string) {
	if !slices.Contains(b.RouteIDs, routeID) {
		b.RouteIDs = append(b.RouteIDs, routeID)
	}
}

// RemoveRoute drops a route identifier if present.
func (b *Bus) RemoveRoute(routeID string) {
	b.RouteIDs = slices.DeleteFunc(b.RouteIDs, func(id string) bool { return id == routeID })
}

// Update validates every present field and applies them only if all pass.
func (b *Bus) Update(req BusUpdate) error {
	var errs []error
	if req.Name != nil {
		errs = append(errs, validateBusName(*req.Name))
	}
	if req.Price != nil {
		errs = append(errs, validatePrice(*req.Price))
	}
	if req.Length != nil {
		errs = append(errs, validateLength(*req.Length))
	}
	if req.Capacity != nil {
		errs = append(errs, validateCapacity(*req.Capacity))
	}
	if req.EngineType != nil {
		errs = append(errs, validateEngineType(*req.EngineType))
	}
	if req.EuroStandard != nil {
		errs = append(errs, validateEuroStandard(*req.EuroStandard))
	}
	if req.Status != nil {
		errs = append(errs, validateStatus(*req.Status))
	}
	if err := firstError(errs...); err != nil {
		return err
	}

	if req.Name != nil {
		b.Name = *req.Name
	}
	if req.Description != nil {
		b.Description = *req.Description
	}
	if req.Price != nil {
		b.Price = *req.Price
	}
	if req.Length != nil {
		b.Length = *req.Length
	}
	if req.Capacity != nil {
		b.Capacity = *req.Capacity
	}
	if req.EngineType != nil {
		b.EngineType = EngineType(*req.EngineType)
	}
	if req.EuroStandard != nil {
		b.EuroStandard = *req.EuroStandard
	}
	if req.Status != nil {
		b.Status = BusStatus(*req.Status)
	}
	if req.OwnerID != nil {
		id := *req.OwnerID
		b.OwnerID = &id
		if b.Owner != nil && b.Owner.ID != id {
			b.Owner = nil
		}
	}
	if req.ReportIDs != nil {
		b.ReportIDs = slices.Clone(*req.ReportIDs)
		b.Reports = nil
	}
	b.Touch()
	return nil
}

// Clone returns a copy that shares no slices with b. Hydrated references
// are dropped; the copy is shallow.
func (b *Bus) Clone() *Bus {
	c := *b
	if b.OwnerID != nil {
		id := *b.OwnerID
		c.OwnerID = &id
	}
	c.RouteIDs = slices.Clone(b.RouteIDs)
	c.ReportIDs = slices.Clone(b.ReportIDs)
	c.Owner = nil
	c.Reports = nil
	return &c
}

func (b *Bus) Record() BusRecord {
	rec := BusRecord{
		Base:         b.Base,
		Name:         b.Name,
		Description:  b.Description,
		Price:        b.Price,
		Length:       b.Length,
		Capacity:     b.Capacity,
		EngineType:   b.EngineType,
		EuroStandard: b.EuroStandard,
		Status:       b.Status,
		Routes:       append([]string{}, b.RouteIDs...),
		Reports:      append([]string{}, b.ReportIDs...),
	}
	if b.OwnerID != nil {
		id := *b.OwnerID
		rec.OwnerID = &id
	}
	return rec
}
