package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AhmedGamal2004/My-Personal-final/internal/app"
	"github.com/AhmedGamal2004/My-Personal-final/internal/audio"
	"github.com/AhmedGamal2004/My-Personal-final/internal/pkg/optional"
	"github.com/AhmedGamal2004/My-Personal-final/internal/transport/http/response"
)

type MessageHandler struct {
	messageService *app.MessageService
	audioService   *app.AudioService
}

type CreateMessageRequest struct {
	Content string  `json:"content"`
	Type    string  `json:"type"`
	Title   *string `json:"title"`
	Artist  *string `json:"artist"`
}

type UpdateMessageRequest struct {
	ID      flexibleID      `json:"id"`
	Content optional.String `json:"content"`
	Title   optional.String `json:"title"`
	Artist  optional.String `json:"artist"`
}

type DeleteMessageRequest struct {
	ID flexibleID `json:"id"`
}

func NewMessageHandler(messageService *app.MessageService, audioService *app.AudioService) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		audioService:   audioService,
	}
}

func (h *MessageHandler) List(c *gin.Context) {
	full, _ := strconv.ParseBool(c.Query("full"))
	messages, err := h.messageService.ListMessages(c.Request.Context(), full)
	if err != nil {
		respondError(c, "list messages", err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (h *MessageHandler) Create(c *gin.Context) {
	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBodyError(c, err)
		return
	}

	message, err := h.messageService.CreateMessage(c.Request.Context(), app.CreateMessageInput{
		Content: req.Content,
		Type:    req.Type,
		Title:   req.Title,
		Artist:  req.Artist,
	})
	if err != nil {
		respondError(c, "create message", err)
		return
	}
	response.Success(c, gin.H{"id": message.ID})
}

func (h *MessageHandler) Update(c *gin.Context) {
	var req UpdateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBodyError(c, err)
		return
	}

	err := h.messageService.UpdateMessage(c.Request.Context(), app.UpdateMessageInput{
		ID:      uint(req.ID),
		Content: req.Content,
		Title:   req.Title,
		Artist:  req.Artist,
	})
	if err != nil {
		respondError(c, "update message", err)
		return
	}
	response.Success(c, nil)
}

func (h *MessageHandler) Delete(c *gin.Context) {
	var req DeleteMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBodyError(c, err)
		return
	}

	if err := h.messageService.DeleteMessage(c.Request.Context(), uint(req.ID)); err != nil {
		respondError(c, "delete message", err)
		return
	}
	response.Success(c, nil)
}

// UploadAudio takes the raw request body as the audio payload.
func (h *MessageHandler) UploadAudio(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondBodyError(c, err)
		return
	}

	message, err := h.audioService.UploadAudio(c.Request.Context(), raw, c.Query("title"), c.Query("artist"))
	if err != nil {
		respondError(c, "upload audio", err)
		return
	}
	response.Success(c, gin.H{"id": message.ID})
}

func (h *MessageHandler) FetchAudio(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, http.StatusBadRequest, app.ErrIDRequired.Error())
		return
	}

	raw, err := h.audioService.FetchAudio(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, "fetch audio", err)
		return
	}
	c.Header("Content-Length", strconv.Itoa(len(raw)))
	c.Data(http.StatusOK, audio.ContentType, raw)
}
