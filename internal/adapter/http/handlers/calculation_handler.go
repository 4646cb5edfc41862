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

// CalculationHandler serves the cost calculator.
type CalculationHandler struct {
	usecase usecase.ICalculationUseCase
}

func NewCalculationHandler(uc usecase.ICalculationUseCase) *CalculationHandler {
	return &CalculationHandler{usecase: uc}
}

// CreateCalculation godoc
// @Summary      Save a calculation
// @Description  Prices the project and stores the input together with the computed amounts.
// @Tags         calculations
// @Accept       json
// @Produce      json
// @Param        project  body      request.CalculationRequest  true  "Calculator form"
// @Success      200      {object}  response.CalculationResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /calculations [post]
func (h *CalculationHandler) CreateCalculation(c *gin.Context) {
	payload, ok := bindCalculation(c)
	if !ok {
		return
	}

	calc, err := h.usecase.CreateCalculation(c.Request.Context(), payload.ToProjectInput())
	if err != nil {
		log.Printf("[calculation][handler] create failed err=%v", err)
		writeError(c, mapCalculationError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromCalculation(calc))
}

// GetCalculation godoc
// @Summary      Get a calculation
// @Tags         calculations
// @Produce      json
// @Param        id   path      string  true  "Calculation ID"
// @Success      200  {object}  response.CalculationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /calculations/{id} [get]
func (h *CalculationHandler) GetCalculation(c *gin.Context) {
	calc, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCalculationError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromCalculation(calc))
}

// Estimate godoc
// @Summary      Price a project
// @Description  Runs the calculator without storing anything.
// @Tags         calculations
// @Accept       json
// @Produce      json
// @Param        project  body      request.CalculationRequest  true  "Calculator form"
// @Success      200      {object}  response.EstimateResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /estimates [post]
func (h *CalculationHandler) Estimate(c *gin.Context) {
	payload, ok := bindCalculation(c)
	if !ok {
		return
	}

	res, err := h.usecase.Estimate(payload.ToProjectInput())
	if err != nil {
		writeError(c, mapCalculationError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(res))
}

func bindCalculation(c *gin.Context) (request.CalculationRequest, bool) {
	var payload request.CalculationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[calculation][handler] invalid payload err=%v", err)
		writeError(c, errInvalidPayload)
		return payload, false
	}
	if err := payload.Validate(); err != nil {
		writeError(c, validationError(err))
		return payload, false
	}
	return payload, true
}

func mapCalculationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid project input", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCalculationNotFound), errors.Is(err, usecase.ErrInvalidCalculationID):
		return pkg.NewDomainErrorSimple("CALCULATION_NOT_FOUND", "Calculation not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
