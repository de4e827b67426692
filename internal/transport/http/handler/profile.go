package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/AhmedGamal2004/My-Personal-final/internal/app"
	"github.com/AhmedGamal2004/My-Personal-final/internal/pkg/optional"
	"github.com/AhmedGamal2004/My-Personal-final/internal/transport/http/response"
)

type ProfileHandler struct {
	profileService *app.ProfileService
}

type UpdateProfileRequest struct {
	Name   optional.String `json:"name"`
	Bio    optional.String `json:"bio"`
	Avatar optional.String `json:"avatar"`
	Cover  optional.String `json:"cover"`
}

func NewProfileHandler(profileService *app.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	settings, err := h.profileService.GetProfile(c.Request.Context())
	if err != nil {
		respondError(c, "get profile", err)
		return
	}
	if settings == nil {
		c.JSON(200, gin.H{})
		return
	}
	c.JSON(200, settings)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBodyError(c, err)
		return
	}

	err := h.profileService.UpdateProfile(c.Request.Context(), app.ProfilePatch{
		Name:   req.Name,
		Bio:    req.Bio,
		Avatar: req.Avatar,
		Cover:  req.Cover,
	})
	if err != nil {
		respondError(c, "update profile", err)
		return
	}
	response.Success(c, nil)
}
