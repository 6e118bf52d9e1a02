package response

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/employee-manager-go/internal/domain/message"
)

type Response struct {
	Success  bool             `json:"success"`
	Severity message.Severity `json:"severity"`
	Caption  string           `json:"caption,omitempty"`
	Message  string           `json:"message,omitempty"`
	Data     interface{}      `json:"data,omitempty"`
	Error    *ErrorDetail     `json:"error,omitempty"`
	Meta     *Meta            `json:"meta,omitempty"`
}

type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Ref     string            `json:"ref,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

type Meta struct {
	TotalItems int `json:"total_items"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		fallback := Response{
			Success:  false,
			Severity: message.SeverityError,
			Error: &ErrorDetail{
				Code:    "ENCODING_ERROR",
				Message: "Failed to encode response",
			},
		}
		_ = json.NewEncoder(w).Encode(fallback)
	}
}

// Success responses
func Success(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Success:  true,
		Severity: message.SeverityInfo,
		Data:     data,
	})
}

func SuccessWithMessage(w http.ResponseWriter, msg message.Message, data interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Success:  true,
		Severity: msg.Severity,
		Caption:  msg.Caption,
		Message:  msg.Text,
		Data:     data,
	})
}

func Created(w http.ResponseWriter, msg message.Message, data interface{}) {
	writeJSON(w, http.StatusCreated, Response{
		Success:  true,
		Severity: msg.Severity,
		Caption:  msg.Caption,
		Message:  msg.Text,
		Data:     data,
	})
}

func SuccessWithMeta(w http.ResponseWriter, data interface{}, meta *Meta) {
	writeJSON(w, http.StatusOK, Response{
		Success:  true,
		Severity: message.SeverityInfo,
		Data:     data,
		Meta:     meta,
	})
}

// Error responses
func BadRequest(w http.ResponseWriter, msg string, details map[string]string) {
	writeJSON(w, http.StatusBadRequest, Response{
		Success:  false,
		Severity: message.SeverityWarning,
		Message:  msg,
		Error: &ErrorDetail{
			Code:    "BAD_REQUEST",
			Message: msg,
			Details: details,
		},
	})
}

// ValidationError reports a rejected input. msg carries the first
// rejection; details lists every rejected field.
func ValidationError(w http.ResponseWriter, msg message.Message, details map[string]string) {
	writeJSON(w, http.StatusUnprocessableEntity, Response{
		Success:  false,
		Severity: msg.Severity,
		Caption:  msg.Caption,
		Message:  msg.Text,
		Error: &ErrorDetail{
			Code:    "VALIDATION_ERROR",
			Message: "Validation failed",
			Details: details,
		},
	})
}

func NotFound(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusNotFound, Response{
		Success:  false,
		Severity: message.SeverityWarning,
		Message:  msg,
		Error: &ErrorDetail{
			Code:    "NOT_FOUND",
			Message: msg,
		},
	})
}

func Conflict(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusConflict, Response{
		Success:  false,
		Severity: message.SeverityWarning,
		Message:  msg,
		Error: &ErrorDetail{
			Code:    "CONFLICT",
			Message: msg,
		},
	})
}

// ServiceUnavailable reports a storage failure. data is the empty result
// of the failed operation.
func ServiceUnavailable(w http.ResponseWriter, msg message.Message, ref string, data interface{}) {
	writeJSON(w, http.StatusServiceUnavailable, Response{
		Success:  false,
		Severity: message.SeverityError,
		Caption:  msg.Caption,
		Message:  msg.Text,
		Data:     data,
		Error: &ErrorDetail{
			Code:    "STORAGE_UNAVAILABLE",
			Message: "The database could not complete the request",
			Ref:     ref,
		},
	})
}

func InternalServerError(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusInternalServerError, Response{
		Success:  false,
		Severity: message.SeverityError,
		Message:  msg,
		Error: &ErrorDetail{
			Code:    "INTERNAL_SERVER_ERROR",
			Message: msg,
		},
	})
}
