package response

import "github.com/gin-gonic/gin"

const (
	MsgDatabaseNotConfigured = "Database not configured on server"
	MsgUnauthorized          = "Unauthorized: invalid admin password"
	MsgInvalidPassword       = "Invalid password"
	MsgInvalidJSON           = "Invalid JSON body"
	MsgPayloadTooLarge       = "Payload too large"
	MsgNotFound              = "Not found"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// Success writes {"success": true} merged with extra.
func Success(c *gin.Context, extra gin.H) {
	body := gin.H{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(200, body)
}

func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, ErrorResponse{Error: message})
}

// Abort writes the error and stops the handler chain.
func Abort(c *gin.Context, httpStatus int, message string) {
	c.AbortWithStatusJSON(httpStatus, ErrorResponse{Error: message})
}
