package handlers

import (
	"net/http"

	"github.com/SscSPs/cashclaim/internal/core/domain"
	portssvc "github.com/SscSPs/cashclaim/internal/core/ports/services"
	"github.com/SscSPs/cashclaim/internal/dto"
	"github.com/gin-gonic/gin"
)

type projectHandler struct {
	projectService portssvc.ProjectSvcFacade
}

func registerProjectRoutes(rg *gin.RouterGroup, ps portssvc.ProjectSvcFacade) {
	h := &projectHandler{projectService: ps}

	projects := rg.Group("/projects")
	{
		projects.GET("", h.listProjects)
		projects.POST("", h.createProject)
	}
}

// listProjects godoc
// @Summary List projects with balances
// @Tags projects
// @Produce json
// @Param user query string false "User name (admins only for others)"
// @Success 200 {object} dto.ListProjectsResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var params dto.ListProjectsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	projects, err := h.projectService.ListProjects(c.Request.Context(), principal, params.User)
	if err != nil {
		respondError(c, err, "Failed to list projects")
		return
	}
	c.JSON(http.StatusOK, dto.ToListProjectsResponse(projects))
}

// createProject godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Param project body dto.CreateProjectRequest true "Project"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), principal, req)
	if err != nil {
		respondError(c, err, "Failed to create project")
		return
	}
	c.JSON(http.StatusCreated, dto.ToProjectResponse(&domain.ProjectBalance{Project: *project}))
}
