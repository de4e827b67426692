package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AhmedGamal2004/My-Personal-final/internal/app"
	"github.com/AhmedGamal2004/My-Personal-final/internal/transport/http/response"
)

// flexibleID accepts 12 or "12". Missing, null and empty decode to zero.
type flexibleID uint

func (id *flexibleID) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		*id = 0
		return nil
	}
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %s", data)
	}
	*id = flexibleID(parsed)
	return nil
}

func respondError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, app.ErrContentRequired),
		errors.Is(err, app.ErrIDRequired),
		errors.Is(err, app.ErrAudioRequired):
		response.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, app.ErrAudioNotFound):
		response.Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, app.ErrUnauthorized):
		response.Error(c, http.StatusForbidden, response.MsgUnauthorized)
	default:
		log.Printf("%s failed: %v", op, err)
		response.Error(c, http.StatusInternalServerError, err.Error())
	}
}

// respondBodyError reports a body that could not be read or decoded.
func respondBodyError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		response.Error(c, http.StatusRequestEntityTooLarge, response.MsgPayloadTooLarge)
		return
	}
	response.Error(c, http.StatusBadRequest, response.MsgInvalidJSON)
}
