package services

import (
	"github.com/mrlokans/fleet/internal/database/memory"
	"github.com/mrlokans/fleet/internal/entities"
)

// UserService coordinates users. Users reference nothing, so creation
// only runs the entity's own validation.
type UserService struct {
	repo *memory.Repository[*entities.User]
	recorder
}

func (s *UserService) Create(in entities.UserInput) (*entities.User, error) {
	user, err := entities.NewUser(in)
	if err == nil {
		err = s.repo.Add(user)
	}
	if err != nil {
		s.record(entities.AuditEventCreate, entities.EntityUser, "", err)
		return nil, err
	}
	s.record(entities.AuditEventCreate, entities.EntityUser, user.ID, nil)
	return user, nil
}

func (s *UserService) Get(id string) (*entities.User, bool) {
	return s.repo.Get(id)
}

// GetByEmail returns the first user registered with email.
func (s *UserService) GetByEmail(email string) (*entities.User, bool) {
	return s.repo.FindFirst(func(u *entities.User) bool {
		return u.Email == email
	})
}

func (s *UserService) GetAll() []*entities.User {
	return s.repo.GetAll()
}

func (s *UserService) Update(id string, req entities.UserUpdate) (*entities.User, error) {
	user, ok, err := s.repo.Update(id, func(u *entities.User) error {
		return u.Update(req)
	})
	if !ok {
		return nil, missing(entities.EntityUser, id)
	}
	s.record(entities.AuditEventUpdate, entities.EntityUser, id, err)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user and returns what was removed. Buses and routes
// pointing at the user are left dangling.
func (s *UserService) Delete(id string) (*entities.User, bool) {
	user, ok := s.repo.Get(id)
	if !ok {
		return nil, false
	}
	s.repo.Delete(id)
	s.record(entities.AuditEventDelete, entities.EntityUser, id, nil)
	return user, true
}
