package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vidro-absolut/study-api/internal/dto"
	"github.com/vidro-absolut/study-api/internal/models"
	"github.com/vidro-absolut/study-api/pkg/cpf"
	"github.com/vidro-absolut/study-api/pkg/response"
)

type checkoutService interface {
	Register(ctx context.Context, req dto.CheckoutRequest) (*models.CheckoutResult, error)
}

// CheckoutHandler serves the public purchase form.
type CheckoutHandler struct {
	service checkoutService
}

// NewCheckoutHandler constructs the handler.
func NewCheckoutHandler(service checkoutService) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

// Register godoc
// @Summary Register a buyer
// @Description Stores the checkout form and returns the PIX payment instructions
// @Tags Checkout
// @Accept json
// @Produce json
// @Param payload body dto.CheckoutRequest true "Checkout form"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /checkout [post]
func (h *CheckoutHandler) Register(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid checkout payload"))
		return
	}
	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// ValidateCPF godoc
// @Summary Check and mask a CPF
// @Tags Checkout
// @Produce json
// @Param value query string true "CPF, masked or digits only"
// @Success 200 {object} response.Envelope
// @Router /cpf/validate [get]
func (h *CheckoutHandler) ValidateCPF(c *gin.Context) {
	value := c.Query("value")
	response.JSON(c, http.StatusOK, dto.CPFValidationResponse{
		Valid:     cpf.Validate(value),
		Formatted: cpf.Format(value),
	}, nil)
}
