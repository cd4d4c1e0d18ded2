package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/opslane/erp_backend/internal/core/ports/services"
	"github.com/opslane/erp_backend/internal/dto"
)

// noteHandler handles note CRUD and sharing. Every route acts on behalf of
// the authenticated caller.
type noteHandler struct {
	noteService portssvc.NoteSvcFacade
}

func registerNoteRoutes(rg *gin.RouterGroup, noteService portssvc.NoteSvcFacade) {
	h := &noteHandler{noteService: noteService}

	notes := rg.Group("/notes")
	{
		notes.GET("", h.listNotes)
		notes.POST("", h.createNote)
		notes.PUT("/:id", h.updateNote)
		notes.DELETE("/:id", h.deleteNote)
		notes.POST("/:id/share", h.shareNote)
		notes.DELETE("/:id/share/:shareID", h.unshareNote)
	}
}

// listNotes godoc
// @Summary List notes
// @Description Lists notes the caller owns or has a share on, pinned first then most recently updated.
// @Tags notes
// @Produce json
// @Success 200 {array} domain.Note
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /notes [get]
func (h *noteHandler) listNotes(c *gin.Context) {
	viewerID, ok := callerID(c)
	if !ok {
		return
	}

	notes, err := h.noteService.ListNotes(c.Request.Context(), viewerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

// createNote godoc
// @Summary Create a note
// @Tags notes
// @Accept json
// @Produce json
// @Param note body dto.CreateNoteRequest true "Note details"
// @Success 201 {object} domain.Note
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /notes [post]
func (h *noteHandler) createNote(c *gin.Context) {
	viewerID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	note, err := h.noteService.CreateNote(c.Request.Context(), viewerID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

// updateNote godoc
// @Summary Update a note
// @Description Requires ownership or a write share. A read share gets 403; no share at all gets 404.
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Note ID"
// @Param note body dto.UpdateNoteRequest true "Note details"
// @Success 200 {object} domain.Note
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /notes/{id} [put]
func (h *noteHandler) updateNote(c *gin.Context) {
	viewerID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	note, err := h.noteService.UpdateNote(c.Request.Context(), viewerID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

// deleteNote godoc
// @Summary Delete a note
// @Description Owner only. A non-owner caller gets 404, never 403.
// @Tags notes
// @Produce json
// @Param id path string true "Note ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /notes/{id} [delete]
func (h *noteHandler) deleteNote(c *gin.Context) {
	viewerID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.noteService.DeleteNote(c.Request.Context(), viewerID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// shareNote godoc
// @Summary Share a note
// @Description Owner only. Re-sharing the same user overwrites the permission.
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Note ID"
// @Param share body dto.ShareRequest true "Share target and permission"
// @Success 200 {object} domain.Share
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Note or target user not found"
// @Security BearerAuth
// @Router /notes/{id}/share [post]
func (h *noteHandler) shareNote(c *gin.Context) {
	viewerID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	share, err := h.noteService.ShareNote(c.Request.Context(), viewerID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, share)
}

// unshareNote godoc
// @Summary Revoke a note share
// @Description Owner only.
// @Tags notes
// @Produce json
// @Param id path string true "Note ID"
// @Param shareID path string true "Share ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /notes/{id}/share/{shareID} [delete]
func (h *noteHandler) unshareNote(c *gin.Context) {
	viewerID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.noteService.UnshareNote(c.Request.Context(), viewerID, c.Param("id"), c.Param("shareID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
