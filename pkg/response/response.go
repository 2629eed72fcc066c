package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ValidationError writes the API's 422 shape for request bodies that fail
// binding. The inner status_code 10422 is part of the wire contract.
func ValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"status_code": 10422,
		"message":     err.Error(),
		"data":        nil,
	})
}
