package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/opslane/erp_backend/internal/core/ports/services"
	"github.com/opslane/erp_backend/internal/dto"
)

type projectHandler struct {
	projectService portssvc.ProjectSvcFacade
}

func registerProjectRoutes(rg *gin.RouterGroup, projectService portssvc.ProjectSvcFacade) {
	h := &projectHandler{projectService: projectService}

	projects := rg.Group("/projects")
	{
		projects.GET("", h.listProjects)
		projects.POST("", h.createProject)
		projects.GET("/:projectID/items", h.listItems)
		projects.POST("/:projectID/items", h.createItem)
		projects.PUT("/:projectID/items/:name", h.updateItem)
		projects.DELETE("/:projectID/items/:name", h.deleteItem)
	}
}

// listProjects godoc
// @Summary List projects
// @Tags projects
// @Produce json
// @Success 200 {array} domain.Project
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// createProject godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Param project body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} domain.Project
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// listItems godoc
// @Summary List project items
// @Tags projects
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {array} domain.ProjectItem
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{projectID}/items [get]
func (h *projectHandler) listItems(c *gin.Context) {
	items, err := h.projectService.ListItems(c.Request.Context(), c.Param("projectID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// createItem godoc
// @Summary Create a project item
// @Description Adds a line item; an Additional Requirement item raises the project's extra budget allocation by its unit cost.
// @Tags projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID"
// @Param item body dto.CreateProjectItemRequest true "Item details"
// @Success 201 {object} domain.ProjectItem
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 409 {object} ErrorResponse "Duplicate requirement name"
// @Security BearerAuth
// @Router /projects/{projectID}/items [post]
func (h *projectHandler) createItem(c *gin.Context) {
	var req dto.CreateProjectItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := h.projectService.CreateItem(c.Request.Context(), c.Param("projectID"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// updateItem godoc
// @Summary Update a project item
// @Description Overwrites the item and adjusts the project's extra budget allocation by the contribution delta.
// @Tags projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID"
// @Param name path string true "Requirement name"
// @Param item body dto.UpdateProjectItemRequest true "Item details"
// @Success 200 {object} domain.ProjectItem
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Project or item not found"
// @Security BearerAuth
// @Router /projects/{projectID}/items/{name} [put]
func (h *projectHandler) updateItem(c *gin.Context) {
	var req dto.UpdateProjectItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := h.projectService.UpdateItem(c.Request.Context(), c.Param("projectID"), c.Param("name"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// deleteItem godoc
// @Summary Delete a project item
// @Description Removes the item and lowers the allocation by its contribution when it was an Additional Requirement.
// @Tags projects
// @Produce json
// @Param projectID path string true "Project ID"
// @Param name path string true "Requirement name"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Project or item not found"
// @Security BearerAuth
// @Router /projects/{projectID}/items/{name} [delete]
func (h *projectHandler) deleteItem(c *gin.Context) {
	if err := h.projectService.DeleteItem(c.Request.Context(), c.Param("projectID"), c.Param("name")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
