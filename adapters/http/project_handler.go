package http

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	projectUC "github.com/sharafhazem/portfolio-ops/internal/application/usecase/project"
	"github.com/sharafhazem/portfolio-ops/internal/domain/project"
	"github.com/sharafhazem/portfolio-ops/pkg/apperror"
	"github.com/sharafhazem/portfolio-ops/pkg/logger"
)

type ProjectHandler struct {
	createUseCase *projectUC.CreateProjectUseCase
	listUseCase   *projectUC.ListProjectsUseCase
	updateUseCase *projectUC.UpdateProjectUseCase
	deleteUseCase *projectUC.DeleteProjectUseCase
	logger        logger.Logger
}

func NewProjectHandler(
	createUC *projectUC.CreateProjectUseCase,
	listUC *projectUC.ListProjectsUseCase,
	updateUC *projectUC.UpdateProjectUseCase,
	deleteUC *projectUC.DeleteProjectUseCase,
	log logger.Logger,
) *ProjectHandler {
	return &ProjectHandler{
		createUseCase: createUC,
		listUseCase:   listUC,
		updateUseCase: updateUC,
		deleteUseCase: deleteUC,
		logger:        log,
	}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	output, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	respondData(c, http.StatusOK, output.Projects)
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for project", err))
		return
	}

	images := req.Images
	if len(images) == 0 && req.Image != "" {
		images = []string{req.Image}
	}

	input := projectUC.CreateProjectInput{
		Title:             req.Title,
		Category:          req.Category,
		Images:            images,
		Desc:              req.Desc,
		Tech:              req.Tech,
		ClientName:        req.ClientName,
		Timeline:          req.Timeline,
		RoleStack:         req.RoleStack,
		CoreChallenge:     req.CoreChallenge,
		TechnicalSolution: req.TechnicalSolution,
		Links:             req.Links,
	}

	output, err := h.createUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	respondData(c, http.StatusCreated, output.Project)
}

// UpdateProject takes a partial project document. The _id field selects the
// record and is never itself overwritten.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var patch project.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for project update", err))
		return
	}

	rawID, ok := patch["_id"]
	if !ok {
		c.Error(apperror.NewInvalidInput("project _id is required", nil))
		return
	}

	var idStr string
	if err := json.Unmarshal(rawID, &idStr); err != nil {
		c.Error(apperror.NewInvalidInput("project _id must be a string", err))
		return
	}

	projectID, err := uuid.Parse(idStr)
	if err != nil {
		c.Error(apperror.NewInvalidInput("project _id is not a valid identifier", err))
		return
	}

	input := projectUC.UpdateProjectInput{
		ProjectID: projectID,
		Patch:     patch,
	}

	output, err := h.updateUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	respondData(c, http.StatusOK, output.Project)
}

// DeleteProject is idempotent. Deleting an id that no longer exists still
// answers success.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	idStr := c.Query("id")
	if idStr == "" {
		c.Error(apperror.NewInvalidInput("id query parameter is required", nil))
		return
	}

	projectID, err := uuid.Parse(idStr)
	if err != nil {
		c.Error(apperror.NewInvalidInput("id is not a valid identifier", err))
		return
	}

	input := projectUC.DeleteProjectInput{ProjectID: projectID}
	if err := h.deleteUseCase.Execute(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"deleted": idStr})
}
