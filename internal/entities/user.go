package entities

import "strings"

const maxUserNameLength = 50

// UserInput holds the fields needed to register a user.
type UserInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
}

// UserUpdate lists the user attributes that may change. Nil fields are
// left untouched.
type UserUpdate struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	IsAdmin   *bool   `json:"is_admin"`
}

type User struct {
	Base
	FirstName string
	LastName  string
	Email     string
	IsAdmin   bool
}

// UserRecord is the serialized form of a User.
type UserRecord struct {
	Base
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
}

// NewUser validates the input and returns a user with a fresh identity.
func NewUser(in UserInput) (*User, error) {
	if err := firstError(
		validateString("first_name", in.FirstName, maxUserNameLength),
		validateString("last_name", in.LastName, maxUserNameLength),
		validateEmail(in.Email),
	); err != nil {
		return nil, err
	}

	return &User{
		Base:      newBase(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		IsAdmin:   in.IsAdmin,
	}, nil
}

func validateEmail(email string) error {
	if email == "" {
		return NewValueError("email", "email is required")
	}
	if !strings.Contains(email, "@") {
		return NewValueError("email", "email must be a valid email address")
	}
	return nil
}

// Update validates every present field and applies them only if all pass.
func (u *User) Update(req UserUpdate) error {
	var errs []error
	if req.FirstName != nil {
		errs = append(errs, validateString("first_name", *req.FirstName, maxUserNameLength))
	}
	if req.LastName != nil {
		errs = append(errs, validateString("last_name", *req.LastName, maxUserNameLength))
	}
	if req.Email != nil {
		errs = append(errs, validateEmail(*req.Email))
	}
	if err := firstError(errs...); err != nil {
		return err
	}

	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.IsAdmin != nil {
		u.IsAdmin = *req.IsAdmin
	}
	u.Touch()
	return nil
}

func (u *User) Clone() *User {
	c := *u
	return &c
}

func (u *User) Record() UserRecord {
	return UserRecord{
		Base:      u.Base,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
	}
}
