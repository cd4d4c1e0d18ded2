package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/opslane/erp_backend/internal/core/ports/services"
	"github.com/opslane/erp_backend/internal/dto"
)

type debitCardHandler struct {
	cardService portssvc.DebitCardSvcFacade
}

func registerDebitCardRoutes(rg *gin.RouterGroup, cardService portssvc.DebitCardSvcFacade) {
	h := &debitCardHandler{cardService: cardService}

	cards := rg.Group("/debit-cards")
	{
		cards.GET("", h.listCards)
		cards.POST("", h.createCard)
		cards.PUT("/:id/deactivate", h.deactivateCard)
	}
}

// listCards godoc
// @Summary List debit cards
// @Description Lists cards joined with their parent account number.
// @Tags debit-cards
// @Produce json
// @Success 200 {array} domain.DebitCard
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /debit-cards [get]
func (h *debitCardHandler) listCards(c *gin.Context) {
	cards, err := h.cardService.ListCards(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

// createCard godoc
// @Summary Create a debit card
// @Description Creates a card against an existing account. Expiry accepts YYYY-MM-DD or YYYY-MM.
// @Tags debit-cards
// @Accept json
// @Produce json
// @Param card body dto.CreateDebitCardRequest true "Card details"
// @Success 201 {object} domain.DebitCard
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /debit-cards [post]
func (h *debitCardHandler) createCard(c *gin.Context) {
	var req dto.CreateDebitCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	card, err := h.cardService.CreateCard(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, card)
}

// deactivateCard godoc
// @Summary Deactivate a debit card
// @Tags debit-cards
// @Produce json
// @Param id path string true "Card ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /debit-cards/{id}/deactivate [put]
func (h *debitCardHandler) deactivateCard(c *gin.Context) {
	if err := h.cardService.DeactivateCard(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
