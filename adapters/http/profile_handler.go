package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/sharafhazem/portfolio-ops/internal/application/usecase/profile"
	"github.com/sharafhazem/portfolio-ops/internal/domain/profile"
	"github.com/sharafhazem/portfolio-ops/pkg/apperror"
	"github.com/sharafhazem/portfolio-ops/pkg/logger"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	logger         logger.Logger
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: uc,
		logger:         log,
	}
}

// GetProfile is public. A fresh database answers with the seeded defaults.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	output, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	respondData(c, http.StatusOK, output.Profile)
}

// UpdateProfile takes a partial document and merges it over the stored one.
// Fields absent from the body are left untouched.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var patch profile.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile update", err))
		return
	}

	input := profileUC.UpdateProfileInput{Patch: patch}
	output, err := h.profileUseCase.ExecuteUpdateProfile(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	respondData(c, http.StatusOK, output.Profile)
}
