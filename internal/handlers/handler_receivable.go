package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/opslane/erp_backend/internal/core/ports/services"
	"github.com/opslane/erp_backend/internal/dto"
)

type receivableHandler struct {
	receivableService portssvc.ReceivableSvcFacade
}

func registerReceivableRoutes(rg *gin.RouterGroup, receivableService portssvc.ReceivableSvcFacade) {
	h := &receivableHandler{receivableService: receivableService}

	receivables := rg.Group("/receivables")
	{
		receivables.GET("", h.listReceivables)
		receivables.POST("", h.createReceivable)
	}
}

// listReceivables godoc
// @Summary List receivables
// @Description Lists receivables joined with project name and account number.
// @Tags receivables
// @Produce json
// @Success 200 {array} domain.Receivable
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /receivables [get]
func (h *receivableHandler) listReceivables(c *gin.Context) {
	receivables, err := h.receivableService.ListReceivables(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, receivables)
}

// createReceivable godoc
// @Summary Create a receivable
// @Tags receivables
// @Accept json
// @Produce json
// @Param receivable body dto.CreateReceivableRequest true "Receivable details"
// @Success 201 {object} domain.Receivable
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Referenced project or account not found"
// @Security BearerAuth
// @Router /receivables [post]
func (h *receivableHandler) createReceivable(c *gin.Context) {
	var req dto.CreateReceivableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	receivable, err := h.receivableService.CreateReceivable(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, receivable)
}
