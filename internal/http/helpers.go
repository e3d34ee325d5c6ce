package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/fleet/internal/entities"
	"github.com/mrlokans/fleet/internal/services"
)

const invalidInputMessage = "Invalid input data"

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`  // machine-readable error code
	Field string `json:"field,omitempty"` // offending field for validation errors
}

// SuccessResponse is a standard success response with optional data.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// PaginatedResponse wraps paginated data with metadata.
type PaginatedResponse struct {
	Data    any   `json:"data"`
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"has_more"`
}

// --- Error Response Helpers ---

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 with "<resource> not found".
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondInternalError attaches err to the request, where the request
// logger picks it up, and hides it from the client.
func respondInternalError(c *gin.Context, err error, context string) {
	_ = c.Error(fmt.Errorf("%s: %w", context, err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondServiceError maps facade and entity errors to status codes.
// resource names the entity in 404 bodies.
func respondServiceError(c *gin.Context, err error, resource string) {
	var validationErr *entities.ValidationError
	var notFoundErr *services.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: validationErr.Message,
			Code:  string(validationErr.Kind) + "_error",
			Field: validationErr.Field,
		})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: notFoundErr.Message, Code: "reference_not_found"})
	case errors.Is(err, services.ErrInvalidInput):
		respondBadRequest(c, invalidInputMessage)
	case errors.Is(err, services.ErrNotFound):
		respondNotFound(c, resource)
	default:
		respondInternalError(c, err, resource)
	}
}

// --- Success Response Helpers ---

func respondSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// respondAccepted sends a 202 Accepted response (for async operations).
func respondAccepted(c *gin.Context, message string, data any) {
	c.JSON(http.StatusAccepted, SuccessResponse{Message: message, Data: data})
}

// --- Request Parsing ---

// bindJSON decodes the request body into dst. A field of the wrong JSON
// type is a type error on that field; any other decoding failure,
// including an empty body, is invalid input. It responds with 400 and
// returns false on failure.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr):
		field := jsonFieldName(typeErr.Field)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf("%s must be of type %s", field, typeErr.Type),
			Code:  string(entities.KindType) + "_error",
			Field: field,
		})
	default:
		respondBadRequest(c, invalidInputMessage)
	}
	return false
}

// jsonFieldName drops the embedded struct prefix encoding/json puts in
// front of promoted fields ("BusAttributes.price" becomes "price").
func jsonFieldName(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[i+1:]
	}
	return path
}

// parseIntQuery reads a non-negative integer query parameter, falling
// back to def when it is absent. It responds with 400 on a malformed value.
func parseIntQuery(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		respondBadRequest(c, "invalid "+name)
		return 0, false
	}
	return value, true
}
