package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/fleet/internal/entities"
)

const emailTakenMessage = "Email already registered"

type UsersController struct {
	store UserStore
}

func NewUsersController(store UserStore) *UsersController {
	return &UsersController{store: store}
}

// CreateUser registers a user. Emails are unique.
// POST /api/v1/users
func (uc *UsersController) CreateUser(c *gin.Context) {
	var req entities.UserInput
	if !bindJSON(c, &req) {
		return
	}

	if _, taken := uc.store.GetByEmail(req.Email); taken {
		respondBadRequest(c, emailTakenMessage)
		return
	}

	user, err := uc.store.Create(req)
	if err != nil {
		respondServiceError(c, err, "User")
		return
	}
	respondCreated(c, user.Record())
}

// GET /api/v1/users
func (uc *UsersController) ListUsers(c *gin.Context) {
	users := uc.store.GetAll()
	records := make([]entities.UserRecord, 0, len(users))
	for _, user := range users {
		records = append(records, user.Record())
	}
	c.JSON(http.StatusOK, records)
}

// GET /api/v1/users/:id
func (uc *UsersController) GetUser(c *gin.Context) {
	user, ok := uc.store.Get(c.Param("id"))
	if !ok {
		respondNotFound(c, "User")
		return
	}
	c.JSON(http.StatusOK, user.Record())
}

// UpdateUser changes the fields present in the body.
// PUT /api/v1/users/:id
func (uc *UsersController) UpdateUser(c *gin.Context) {
	id := c.Param("id")

	var req entities.UserUpdate
	if !bindJSON(c, &req) {
		return
	}

	if req.Email != nil {
		if other, taken := uc.store.GetByEmail(*req.Email); taken && other.ID != id {
			respondBadRequest(c, emailTakenMessage)
			return
		}
	}

	user, err := uc.store.Update(id, req)
	if err != nil {
		respondServiceError(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, user.Record())
}

// DELETE /api/v1/users/:id
func (uc *UsersController) DeleteUser(c *gin.Context) {
	if _, ok := uc.store.Delete(c.Param("id")); !ok {
		respondNotFound(c, "User")
		return
	}
	respondSuccess(c, "User deleted successfully")
}
