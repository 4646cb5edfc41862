package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/adapter/http/dto/request"
	response "github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/adapter/http/dto/response"
	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/usecase"
	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/pkg"

	"github.com/gin-gonic/gin"
)

// LeadHandler handles contact form submissions and their back-office reads.

type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

// CreateLead godoc
// @Summary      Submit a lead
// @Description  Stores a contact form submission. Source defaults to "website".
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        lead  body      request.LeadRequest  true  "Contact form"
// @Success      200   {object}  response.LeadResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var payload request.LeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[lead][handler] invalid payload err=%v", err)
		writeError(c, errInvalidPayload)
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(c, validationError(err))
		return
	}

	lead, err := h.usecase.CreateLead(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[lead][handler] create failed err=%v", err)
		writeError(c, mapLeadError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromLead(lead))
}

// ListLeads godoc
// @Summary      List leads
// @Description  Returns every stored lead in submission order.
// @Tags         leads
// @Produce      json
// @Security     Bearer
// @Success      200  {array}   response.LeadResponse
// @Failure      401  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	leads, err := h.usecase.ListLeads(c.Request.Context())
	if err != nil {
		log.Printf("[lead][handler] list failed err=%v", err)
		writeError(c, mapLeadError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromLeads(leads))
}

// GetLead godoc
// @Summary      Get a lead
// @Tags         leads
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Lead ID"
// @Success      200  {object}  response.LeadResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	lead, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapLeadError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromLead(lead))
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLead):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid lead", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound), errors.Is(err, usecase.ErrInvalidLeadID):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
