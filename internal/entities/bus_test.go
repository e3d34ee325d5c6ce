package entities

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBusAttributes() BusAttributes {
	return BusAttributes{
		Name:         "Citaro",
		Description:  "city bus",
		Price:        100,
		Length:       10,
		Capacity:     80,
		EngineType:   "electric",
		EuroStandard: 6,
		Status:       1,
	}
}

func TestNewBus_Length(t *testing.T) {
	tests := []struct {
		length  float64
		wantErr bool
	}{
		{0, true},
		{25, true},
		{-3, true},
		{24.5, false},
		{12, false},
	}

	for _, tt := range tests {
		attrs := validBusAttributes()
		attrs.Length = tt.length

		bus, err := NewBus(attrs, nil)
		if !tt.wantErr {
			require.NoError(t, err, "length %v", tt.length)
			assert.Equal(t, tt.length, bus.Length)
			continue
		}

		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr), "length %v", tt.length)
		assert.Equal(t, KindValue, vErr.Kind)
		assert.Equal(t, "length", vErr.Field)
	}
}

func TestNewBus_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BusAttributes)
		field  string
		kind   ValidationKind
	}{
		{"negative price", func(a *BusAttributes) { a.Price = -1 }, "price", KindValue},
		{"negative capacity", func(a *BusAttributes) { a.Capacity = -1 }, "capacity", KindValue},
		{"name too long", func(a *BusAttributes) { a.Name = strings.Repeat("n", 101) }, "name", KindValue},
		{"unknown engine", func(a *BusAttributes) { a.EngineType = "steam" }, "engine_type", KindType},
		{"negative euro standard", func(a *BusAttributes) { a.EuroStandard = -1 }, "euro_standard", KindType},
		{"status out of range", func(a *BusAttributes) { a.Status = 2 }, "status", KindType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := validBusAttributes()
			tt.mutate(&attrs)

			bus, err := NewBus(attrs, nil)
			assert.Nil(t, bus)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.field, vErr.Field)
			assert.Equal(t, tt.kind, vErr.Kind)
		})
	}
}

func TestBus_OwnerInvariant(t *testing.T) {
	owner, err := NewUser(UserInput{FirstName: "Jane", LastName: "Doe", Email: "jane@x.com"})
	require.NoError(t, err)

	bus, err := NewBus(validBusAttributes(), owner)
	require.NoError(t, err)
	require.NotNil(t, bus.OwnerID)
	assert.Equal(t, owner.ID, *bus.OwnerID)
	assert.Equal(t, owner.ID, *bus.Record().OwnerID)

	bus.SetOwner(nil)
	assert.Nil(t, bus.OwnerID)
	assert.Nil(t, bus.Record().OwnerID)

	noOwner, err := NewBus(validBusAttributes(), nil)
	require.NoError(t, err)
	assert.Nil(t, noOwner.OwnerID)
}

func TestBus_Update(t *testing.T) {
	t.Run("invalid field aborts the whole update", func(t *testing.T) {
		bus, err := NewBus(validBusAttributes(), nil)
		require.NoError(t, err)
		snapshot := bus.Clone()

		name := "Renamed"
		length := 30.0
		err = bus.Update(BusUpdate{Name: &name, Length: &length})
		require.Error(t, err)
		assert.Equal(t, snapshot, bus.Clone())
	})

	t.Run("applies report ids and description", func(t *testing.T) {
		bus, err := NewBus(validBusAttributes(), nil)
		require.NoError(t, err)

		ids := []string{"r1", "r2"}
		desc := "night line"
		require.NoError(t, bus.Update(BusUpdate{Description: &desc, ReportIDs: &ids}))

		ids[0] = "mutated"
		assert.Equal(t, []string{"r1", "r2"}, bus.ReportIDs)
		assert.Equal(t, "night line", bus.Description)
	})
}

func TestBus_CloneIsIndependent(t *testing.T) {
	owner, err := NewUser(UserInput{FirstName: "Jane", LastName: "Doe", Email: "jane@x.com"})
	require.NoError(t, err)
	bus, err := NewBus(validBusAttributes(), owner)
	require.NoError(t, err)
	bus.AddRoute("route-1")

	clone := bus.Clone()
	clone.AddRoute("route-2")
	*clone.OwnerID = "someone-else"

	assert.Equal(t, []string{"route-1"}, bus.RouteIDs)
	assert.Equal(t, owner.ID, *bus.OwnerID)
	assert.Nil(t, clone.Owner)
}

func TestBus_RouteLinks(t *testing.T) {
	bus, err := NewBus(validBusAttributes(), nil)
	require.NoError(t, err)

	bus.AddRoute("a")
	bus.AddRoute("b")
	bus.AddRoute("a")
	assert.Equal(t, []string{"a", "b"}, bus.RouteIDs)

	bus.RemoveRoute("a")
	assert.Equal(t, []string{"b"}, bus.Record().Routes)
}

func TestBus_AddReport(t *testing.T) {
	bus, err := NewBus(validBusAttributes(), nil)
	require.NoError(t, err)
	report, err := NewReport("flat tyre")
	require.NoError(t, err)

	bus.AddReport(report)
	bus.AddReport(nil)

	assert.Len(t, bus.Reports, 1)
	assert.Equal(t, []string{report.ID}, bus.Record().Reports)
}
