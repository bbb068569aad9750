package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sharafhazem/portfolio-ops/internal/application/usecase/auth"
	"github.com/sharafhazem/portfolio-ops/pkg/apperror"
)

type AuthHandler struct {
	loginUseCase    *auth.LoginUseCase
	registerUseCase *auth.RegisterUseCase
}

func NewAuthHandler(loginUC *auth.LoginUseCase, registerUC *auth.RegisterUseCase) *AuthHandler {
	return &AuthHandler{
		loginUseCase:    loginUC,
		registerUseCase: registerUC,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("username and password are required", err))
		return
	}

	input := auth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": output.AccessToken})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("username and password are required", err))
		return
	}

	input := auth.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	}

	output, err := h.registerUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	respondData(c, http.StatusCreated, gin.H{"id": output.UserID})
}
