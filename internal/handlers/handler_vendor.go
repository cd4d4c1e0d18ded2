package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/opslane/erp_backend/internal/core/ports/services"
	"github.com/opslane/erp_backend/internal/dto"
)

type vendorHandler struct {
	vendorService portssvc.VendorSvcFacade
}

func registerVendorRoutes(rg *gin.RouterGroup, vendorService portssvc.VendorSvcFacade) {
	h := &vendorHandler{vendorService: vendorService}

	vendors := rg.Group("/vendors")
	{
		vendors.GET("", h.listVendors)
		vendors.POST("", h.createVendor)
	}
}

// listVendors godoc
// @Summary List vendors
// @Tags vendors
// @Produce json
// @Success 200 {array} domain.Vendor
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /vendors [get]
func (h *vendorHandler) listVendors(c *gin.Context) {
	vendors, err := h.vendorService.ListVendors(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendors)
}

// createVendor godoc
// @Summary Create a vendor
// @Description Creates a vendor; names are unique.
// @Tags vendors
// @Accept json
// @Produce json
// @Param vendor body dto.CreateVendorRequest true "Vendor details"
// @Success 201 {object} domain.Vendor
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Duplicate vendor name"
// @Security BearerAuth
// @Router /vendors [post]
func (h *vendorHandler) createVendor(c *gin.Context) {
	var req dto.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vendor)
}
