package entities

const (
	maxRouteNumberLength = 100
	MinRating            = 1
	MaxRating            = 5
)

// RouteAttributes are the plain fields a route is built from.
type RouteAttributes struct {
	RouteNumber string `json:"route_number"`
	Name        string `json:"name"`
	Rating      int    `json:"rating"`
}

// RouteUpdate lists the route attributes that may change. Bus and User
// must already be resolved by the caller; only their ids are kept.
type RouteUpdate struct {
	RouteNumber *string
	Name        *string
	Rating      *int
	Bus         *Bus
	User        *User
}

// Route links a bus to the user operating it. Only the ids are stored;
// Bus and User are filled in by Link when the route is read and stay nil
// once the referenced entity is deleted.
type Route struct {
	Base
	RouteNumber string
	Name        string
	Rating      int
	Bus         *Bus
	User        *User

	busID  string
	userID string
}

type RouteRecord struct {
	Base
	RouteNumber string      `json:"route_number"`
	Name        string      `json:"name"`
	Rating      int         `json:"rating"`
	BusID       string      `json:"bus_id"`
	UserID      string      `json:"user_id"`
	Bus         *BusRecord  `json:"bus"`
	User        *UserRecord `json:"user"`
}

// NewRoute validates attrs and links the route to bus and user.
func NewRoute(attrs RouteAttributes, bus *Bus, user *User) (*Route, error) {
	if err := firstError(
		validateString("route_number", attrs.RouteNumber, maxRouteNumberLength),
		validateString("name", attrs.Name, 0),
		ValidateRating(attrs.Rating),
		validateRouteBus(bus),
		validateRouteUser(user),
	); err != nil {
		return nil, err
	}

	return &Route{
		Base:        newBase(),
		RouteNumber: attrs.RouteNumber,
		Name:        attrs.Name,
		Rating:      attrs.Rating,
		busID:       bus.ID,
		userID:      user.ID,
	}, nil
}

// ValidateRating checks that rating lies in [MinRating, MaxRating].
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return NewValueError("rating", "Rating must be between %d and %d", MinRating, MaxRating)
	}
	return nil
}

func validateRouteBus(bus *Bus) error {
	if bus == nil {
		return NewTypeError("bus", "bus must be a Bus instance")
	}
	return nil
}

func validateRouteUser(user *User) error {
	if user == nil {
		return NewTypeError("user", "user must be a User instance")
	}
	return nil
}

// BusID is the identifier of the linked bus.
func (r *Route) BusID() string {
	return r.busID
}

// UserID is the identifier of the linked user.
func (r *Route) UserID() string {
	return r.userID
}

// Link attaches the current bus and user to the route for reading. Either
// may be nil when the referenced entity no longer exists.
func (r *Route) Link(bus *Bus, user *User) {
	r.Bus = bus
	r.User = user
}

// Update validates every present field and applies them only if all pass.
func (r *Route) Update(req RouteUpdate) error {
	var errs []error
	if req.RouteNumber != nil {
		errs = append(errs, validateString("route_number", *req.RouteNumber, maxRouteNumberLength))
	}
	if req.Name != nil {
		errs = append(errs, validateString("name", *req.Name, 0))
	}
	if req.Rating != nil {
		errs = append(errs, ValidateRating(*req.Rating))
	}
	if err := firstError(errs...); err != nil {
		return err
	}

	if req.RouteNumber != nil {
		r.RouteNumber = *req.RouteNumber
	}
	if req.Name != nil {
		r.Name = *req.Name
	}
	if req.Rating != nil {
		r.Rating = *req.Rating
	}
	if req.Bus != nil {
		r.busID = req.Bus.ID
	}
	if req.User != nil {
		r.userID = req.User.ID
	}
	r.Touch()
	return nil
}

// Clone copies the stored form of the route, without the linked bus and
// user.
func (r *Route) Clone() *Route {
	c := *r
	c.Bus, c.User = nil, nil
	return &c
}

func (r *Route) Record() RouteRecord {
	rec := RouteRecord{
		Base:        r.Base,
		RouteNumber: r.RouteNumber,
		Name:        r.Name,
		Rating:      r.Rating,
		BusID:       r.BusID(),
		UserID:      r.UserID(),
	}
	if r.Bus != nil {
		bus := r.Bus.Record()
		rec.Bus = &bus
	}
	if r.User != nil {
		user := r.User.Record()
		rec.User = &user
	}
	return rec
}
