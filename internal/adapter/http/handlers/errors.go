package handlers

import (
	"errors"
	"net/http"

	request "github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/adapter/http/dto/request"
	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// validationError converts request validation failures into a 400 with per-field messages.
func validationError(err error) *pkg.AppError {
	var fe *request.FieldErrors
	if errors.As(err, &fe) {
		return pkg.NewValidationError(fe.Error(), fe.Fields, http.StatusBadRequest)
	}
	return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
}

// internalError exposes the raw storage failure message to the caller.
func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", err.Error(), err, http.StatusInternalServerError)
}
