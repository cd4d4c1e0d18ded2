package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/opslane/erp_backend/internal/core/ports/services"
	"github.com/opslane/erp_backend/internal/dto"
)

// todoHandler mirrors noteHandler for todos.
type todoHandler struct {
	todoService portssvc.TodoSvcFacade
}

func registerTodoRoutes(rg *gin.RouterGroup, todoService portssvc.TodoSvcFacade) {
	h := &todoHandler{todoService: todoService}

	todos := rg.Group("/todos")
	{
		todos.GET("", h.listTodos)
		todos.POST("", h.createTodo)
		todos.PUT("/:id", h.updateTodo)
		todos.DELETE("/:id", h.deleteTodo)
		todos.POST("/:id/share", h.shareTodo)
		todos.DELETE("/:id/share/:shareID", h.unshareTodo)
	}
}

// listTodos godoc
// @Summary List todos
// @Description Lists todos the caller owns or has a share on, ordered by status, priority, due date then creation time.
// @Tags todos
// @Produce json
// @Success 200 {array} domain.Todo
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /todos [get]
func (h *todoHandler) listTodos(c *gin.Context) {
	viewerID, ok := callerID(c)
	if !ok {
		return
	}

	todos, err := h.todoService.ListTodos(c.Request.Context(), viewerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todos)
}

// createTodo godoc
// @Summary Create a todo
// @Description Status defaults to pending, priority to medium.
// @Tags todos
// @Accept json
// @Produce json
// @Param todo body dto.CreateTodoRequest true "Todo details"
// @Success 201 {object} domain.Todo
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /todos [post]
func (h *todoHandler) createTodo(c *gin.Context) {
	viewerID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	todo, err := h.todoService.CreateTodo(c.Request.Context(), viewerID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, todo)
}

// updateTodo godoc
// @Summary Update a todo
// @Description Requires ownership or a write share. A read share gets 403; no share at all gets 404.
// @Tags todos
// @Accept json
// @Produce json
// @Param id path string true "Todo ID"
// @Param todo body dto.UpdateTodoRequest true "Todo details"
// @Success 200 {object} domain.Todo
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /todos/{id} [put]
func (h *todoHandler) updateTodo(c *gin.Context) {
	viewerID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	todo, err := h.todoService.UpdateTodo(c.Request.Context(), viewerID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

// deleteTodo godoc
// @Summary Delete a todo
// @Description Owner only. A non-owner caller gets 404, never 403.
// @Tags todos
// @Produce json
// @Param id path string true "Todo ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /todos/{id} [delete]
func (h *todoHandler) deleteTodo(c *gin.Context) {
	viewerID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.todoService.DeleteTodo(c.Request.Context(), viewerID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// shareTodo godoc
// @Summary Share a todo
// @Description Owner only. Re-sharing the same user overwrites the permission.
// @Tags todos
// @Accept json
// @Produce json
// @Param id path string true "Todo ID"
// @Param share body dto.ShareRequest true "Share target and permission"
// @Success 200 {object} domain.Share
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Todo or target user not found"
// @Security BearerAuth
// @Router /todos/{id}/share [post]
func (h *todoHandler) shareTodo(c *gin.Context) {
	viewerID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	share, err := h.todoService.ShareTodo(c.Request.Context(), viewerID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, share)
}

// unshareTodo godoc
// @Summary Revoke a todo share
// @Description Owner only.
// @Tags todos
// @Produce json
// @Param id path string true "Todo ID"
// @Param shareID path string true "Share ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /todos/{id}/share/{shareID} [delete]
func (h *todoHandler) unshareTodo(c *gin.Context) {
	viewerID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.todoService.UnshareTodo(c.Request.Context(), viewerID, c.Param("id"), c.Param("shareID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
