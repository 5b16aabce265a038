package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DataResponse wraps a successful payload.
type DataResponse struct {
	Data interface{} `json:"data"`
} // @name DataResponse

// ErrorResponse carries a machine-readable error message.
type ErrorResponse struct {
	Error string `json:"error"`
} // @name ErrorResponse

// OK sends a 200 response with the payload under "data".
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, DataResponse{Data: data})
}

// Error sends an error response with the given status code.
func Error(c *gin.Context, statusCode int, err string) {
	c.JSON(statusCode, ErrorResponse{Error: err})
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *gin.Context, err string) {
	Error(c, http.StatusInternalServerError, err)
}

// BadRequest sends a 400 Bad Request response.
func BadRequest(c *gin.Context, err string) {
	Error(c, http.StatusBadRequest, err)
}

// GetRequestID retrieves the request ID injected by the middleware,
// generating one if the middleware did not run.
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return uuid.New().String()
}
