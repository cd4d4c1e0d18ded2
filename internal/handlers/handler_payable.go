package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/opslane/erp_backend/internal/core/ports/services"
	"github.com/opslane/erp_backend/internal/dto"
)

type payableHandler struct {
	payableService portssvc.PayableSvcFacade
}

func registerPayableRoutes(rg *gin.RouterGroup, payableService portssvc.PayableSvcFacade) {
	h := &payableHandler{payableService: payableService}

	payables := rg.Group("/payables")
	{
		payables.GET("", h.listPayables)
		payables.POST("", h.createPayable)
	}
}

// listPayables godoc
// @Summary List payables
// @Description Lists payables joined with vendor and project names.
// @Tags payables
// @Produce json
// @Success 200 {array} domain.Payable
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /payables [get]
func (h *payableHandler) listPayables(c *gin.Context) {
	payables, err := h.payableService.ListPayables(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payables)
}

// createPayable godoc
// @Summary Create a payable
// @Description Creates a payable. Petty-cash payables draw down the petty-cash account; payment fields additionally record a payment.
// @Tags payables
// @Accept json
// @Produce json
// @Param payable body dto.CreatePayableRequest true "Payable details"
// @Success 201 {object} domain.Payable
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Referenced vendor or project not found"
// @Security BearerAuth
// @Router /payables [post]
func (h *payableHandler) createPayable(c *gin.Context) {
	var req dto.CreatePayableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	payable, err := h.payableService.CreatePayable(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payable)
}
