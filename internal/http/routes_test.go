package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/fleet/internal/entities"
)

func validRouteBody(userID, busID string) map[string]any {
	return map[string]any{
		"route_number": "42",
		"name":         "Harbour loop",
		"rating":       4,
		"user_id":      userID,
		"bus_id":       busID,
	}
}

func createRoute(t *testing.T, router http.Handler, body map[string]any) entities.RouteRecord {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/routes", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[entities.RouteRecord](t, w)
}

func TestRoutesController_Create(t *testing.T) {
	router, _ := newTestRouter(t)
	user := createUser(t, router, jane)
	bus := createBus(t, router, validBus(nil))

	route := createRoute(t, router, validRouteBody(user.ID, bus.ID))
	assert.Equal(t, bus.ID, route.BusID)
	assert.Equal(t, user.ID, route.UserID)
	require.NotNil(t, route.Bus)
	require.NotNil(t, route.User)
	assert.Equal(t, "jane@x.com", route.User.Email)

	w := doJSON(t, router, http.MethodGet, "/api/v1/buses/"+bus.ID, nil)
	assert.Equal(t, []string{route.ID}, decode[entities.BusRecord](t, w).Routes)

	t.Run("unknown bus", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/routes", validRouteBody(user.ID, "ghost"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Vehicle not found")
	})

	t.Run("unknown user", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/routes", validRouteBody("ghost", bus.ID))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "User not found")
	})

	t.Run("rating out of range", func(t *testing.T) {
		body := validRouteBody(user.ID, bus.ID)
		body["rating"] = 6
		w := doJSON(t, router, http.MethodPost, "/api/v1/routes", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rating of the wrong type", func(t *testing.T) {
		body := validRouteBody(user.ID, bus.ID)
		body["rating"] = "great"
		w := doJSON(t, router, http.MethodPost, "/api/v1/routes", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "rating", decode[ErrorResponse](t, w).Field)
	})
}

func TestRoutesController_ReadUpdateDelete(t *testing.T) {
	router, _ := newTestRouter(t)
	user := createUser(t, router, jane)
	bus := createBus(t, router, validBus(nil))
	other := createBus(t, router, validBus(map[string]any{"name": "other"}))
	route := createRoute(t, router, validRouteBody(user.ID, bus.ID))

	w := doJSON(t, router, http.MethodGet, "/api/v1/routes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]entities.RouteRecord](t, w), 1)

	w = doJSON(t, router, http.MethodGet, "/api/v1/routes/"+route.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, route.ID, decode[entities.RouteRecord](t, w).ID)

	w = doJSON(t, router, http.MethodGet, "/api/v1/routes/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	t.Run("update rating", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, "/api/v1/routes/"+route.ID, map[string]any{"rating": 5})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 5, decode[entities.RouteRecord](t, w).Rating)
	})

	t.Run("relink bus", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, "/api/v1/routes/"+route.ID, map[string]any{"bus_id": other.ID})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, other.ID, decode[entities.RouteRecord](t, w).BusID)
	})

	t.Run("unknown user", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, "/api/v1/routes/"+route.ID, map[string]any{"user_id": "ghost"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing route", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, "/api/v1/routes/ghost", map[string]any{"rating": 3})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing route with a malformed body", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, "/api/v1/routes/ghost", map[string]any{"rating": "great"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("reads show the current bus", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, "/api/v1/buses/"+other.ID, map[string]any{"name": "Renamed"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = doJSON(t, router, http.MethodGet, "/api/v1/routes/"+route.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		rec := decode[entities.RouteRecord](t, w)
		require.NotNil(t, rec.Bus)
		assert.Equal(t, "Renamed", rec.Bus.Name)
	})

	t.Run("delete", func(t *testing.T) {
		w := doJSON(t, router, http.MethodDelete, "/api/v1/routes/"+route.ID, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, http.MethodDelete, "/api/v1/routes/"+route.ID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
