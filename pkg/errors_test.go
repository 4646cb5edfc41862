package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_ToHTTPError(t *testing.T) {
	appErr := NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	body := appErr.ToHTTPError()
	if body.Error != "Lead not found" || body.Code != "LEAD_NOT_FOUND" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Fields != nil {
		t.Fatalf("expected no fields, got %v", body.Fields)
	}
}

func TestAppError_Validation(t *testing.T) {
	appErr := NewValidationError("Укажите высоту", map[string]string{"height": "Укажите высоту"}, http.StatusBadRequest)
	body := appErr.ToHTTPError()
	if body.Code != "VALIDATION_ERROR" || body.Fields["height"] != "Укажите высоту" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	appErr := NewDomainError("INTERNAL_ERROR", cause.Error(), cause, http.StatusInternalServerError)
	if !errors.Is(appErr, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if appErr.Error() != "INTERNAL_ERROR: connection refused: connection refused" {
		t.Fatalf("unexpected message: %s", appErr.Error())
	}
}
