package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AhmedGamal2004/My-Personal-final/internal/app"
	"github.com/AhmedGamal2004/My-Personal-final/internal/repository"
	"github.com/AhmedGamal2004/My-Personal-final/internal/transport/http/response"
)

type AdminHandler struct {
	gate      *app.AdminGate
	eventRepo *repository.EventRepository
}

type VerifyAdminRequest struct {
	Password string `json:"password"`
}

func NewAdminHandler(gate *app.AdminGate, eventRepo *repository.EventRepository) *AdminHandler {
	return &AdminHandler{gate: gate, eventRepo: eventRepo}
}

func (h *AdminHandler) Verify(c *gin.Context) {
	var req VerifyAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBodyError(c, err)
		return
	}
	if !h.gate.Verify(req.Password) {
		response.Error(c, http.StatusUnauthorized, response.MsgInvalidPassword)
		return
	}
	response.Success(c, nil)
}

// ContentEvents lists the activity log, newest first.
func (h *AdminHandler) ContentEvents(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	events, err := h.eventRepo.ListRecent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, "list content events", err)
		return
	}
	c.JSON(http.StatusOK, events)
}
