package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sharafhazem/portfolio-ops/internal/domain/project"
)

// Envelope is the shape of every JSON response. Data carries the payload on
// success; Error carries a client-safe message on failure.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{Success: true, Data: data})
}

// Auth DTOs

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Project DTOs

type CreateProjectRequest struct {
	Title             string        `json:"title"`
	Category          string        `json:"category"`
	Images            []string      `json:"images"`
	Image             string        `json:"image"`
	Desc              string        `json:"desc"`
	Tech              []string      `json:"tech"`
	ClientName        string        `json:"clientName"`
	Timeline          string        `json:"timeline"`
	RoleStack         string        `json:"roleStack"`
	CoreChallenge     string        `json:"coreChallenge"`
	TechnicalSolution string        `json:"technicalSolution"`
	Links             project.Links `json:"links"`
}

// Notify DTOs

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type BookingRequest struct {
	Alias            string `json:"alias"`
	Email            string `json:"email"`
	Discord          string `json:"discord"`
	Twitter          string `json:"twitter"`
	PreferredChannel string `json:"preferredChannel"`
	ProjectCategory  string `json:"projectCategory"`
	Budget           string `json:"budget"`
	Timeline         string `json:"timeline"`
	MissionBrief     string `json:"missionBrief"`
	PlanName         string `json:"planName"`
	PlanLevel        string `json:"planLevel"`
}

// Upload DTOs

type SignUploadRequest struct {
	ParamsToSign map[string]any `json:"paramsToSign"`
}

type SignUploadResponse struct {
	Success   bool   `json:"success"`
	Signature string `json:"signature"`
}

func respondSignature(c *gin.Context, signature string) {
	c.JSON(http.StatusOK, SignUploadResponse{Success: true, Signature: signature})
}
