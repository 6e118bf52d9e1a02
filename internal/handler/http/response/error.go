package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/employee-manager-go/internal/domain/branch"
	"github.com/cmlabs-hris/employee-manager-go/internal/domain/employee"
	"github.com/cmlabs-hris/employee-manager-go/internal/domain/message"
	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/database"
	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	HandleErrorWithData(w, err, nil)
}

// HandleErrorWithData is HandleError for operations whose failure still
// yields a result, such as an empty search. data is sent on storage
// failures only.
func HandleErrorWithData(w http.ResponseWriter, err error, data interface{}) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, message.FromError(err), validationErrs.ToMap())
		return
	}
	var validationErr validator.ValidationError
	if errors.As(err, &validationErr) {
		ValidationError(w, message.FromError(err), map[string]string{validationErr.Field: validationErr.Message})
		return
	}

	var storageErr *database.StorageError
	if errors.As(err, &storageErr) {
		msg := message.Error(storageErr.Caption(), "The operation could not be completed. Reference: "+storageErr.Ref)
		ServiceUnavailable(w, msg, storageErr.Ref, data)
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEditorClosed):
		Conflict(w, "Employee has already been saved")

	// Branch domain errors
	case errors.Is(err, branch.ErrBranchNotFound):
		NotFound(w, "Branch not found")
	case errors.Is(err, branch.ErrBranchNameExists):
		Conflict(w, "Branch name already exists")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
