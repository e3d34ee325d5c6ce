package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/fleet/internal/entities"
)

type loggedChange struct {
	Event      entities.AuditEventType
	EntityType string
	EntityID   string
	Failed     bool
}

type fakeChangeLogger struct {
	mu      sync.Mutex
	changes []loggedChange
}

func (f *fakeChangeLogger) LogChange(event entities.AuditEventType, entityType, entityID string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.changes = append(f.changes, loggedChange{Event: event, EntityType: entityType, EntityID: entityID, Failed: err != nil})
}

func (f *fakeChangeLogger) Changes() []loggedChange {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]loggedChange(nil), f.changes...)
}

func ptr[T any](v T) *T { return &v }

func createJane(t *testing.T, f *Facade) *entities.User {
	t.Helper()
	user, err := f.Users.Create(entities.UserInput{FirstName: "Jane", LastName: "Doe", Email: "jane@x.com"})
	require.NoError(t, err)
	return user
}

func electricBus(ownerID *string, reports ...string) CreateBusRequest {
	return CreateBusRequest{
		BusAttributes: entities.BusAttributes{
			Name:         "Line 7",
			Price:        100,
			Length:       10,
			EngineType:   "electric",
			EuroStandard: 6,
			Status:       1,
		},
		OwnerID: ownerID,
		Reports: reports,
	}
}

func TestFacade_Counts(t *testing.T) {
	f := New()
	user := createJane(t, f)
	_, err := f.Reports.Create("noisy brakes")
	require.NoError(t, err)
	_, err = f.Buses.Create(electricBus(&user.ID))
	require.NoError(t, err)

	assert.Equal(t, map[string]int{
		entities.EntityUser:   1,
		entities.EntityReport: 1,
		entities.EntityBus:    1,
		entities.EntityRoute:  0,
	}, f.Counts())
}

func TestFacade_ChangeLogger(t *testing.T) {
	logger := &fakeChangeLogger{}
	f := New(WithChangeLogger(logger))

	user := createJane(t, f)
	_, err := f.Users.Create(entities.UserInput{FirstName: "", LastName: "Doe", Email: "x@y.z"})
	require.Error(t, err)
	_, err = f.Users.Update(user.ID, entities.UserUpdate{LastName: ptr("Smith")})
	require.NoError(t, err)
	_, ok := f.Users.Delete(user.ID)
	require.True(t, ok)

	assert.Equal(t, []loggedChange{
		{Event: entities.AuditEventCreate, EntityType: entities.EntityUser, EntityID: user.ID},
		{Event: entities.AuditEventCreate, EntityType: entities.EntityUser, Failed: true},
		{Event: entities.AuditEventUpdate, EntityType: entities.EntityUser, EntityID: user.ID},
		{Event: entities.AuditEventDelete, EntityType: entities.EntityUser, EntityID: user.ID},
	}, logger.Changes())
}

func TestFacade_MultipleChangeLoggers(t *testing.T) {
	first, second := &fakeChangeLogger{}, &fakeChangeLogger{}
	f := New(WithChangeLogger(first), WithChangeLogger(nil), WithChangeLogger(second))

	_, err := f.Reports.Create("flat tyre")
	require.NoError(t, err)

	assert.Len(t, first.Changes(), 1)
	assert.Equal(t, first.Changes(), second.Changes())
}
