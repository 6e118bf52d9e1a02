package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/employee-manager-go/internal/domain/employee"
	"github.com/cmlabs-hris/employee-manager-go/internal/domain/message"
	"github.com/cmlabs-hris/employee-manager-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	Search(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	AddForm(w http.ResponseWriter, r *http.Request)
	EditForm(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	SalesReport(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// parseID reads the {id} path parameter, writing a 400 when it is not a
// positive integer.
func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "Invalid id", map[string]string{"id": "id must be a positive integer"})
		return 0, false
	}
	return id, true
}

// Search implements EmployeeHandler.
func (h *employeeHandlerImpl) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	form := employee.SearchForm{
		Name:      q.Get("name"),
		BranchID:  q.Get("branch_id"),
		MinSalary: q.Get("min_salary"),
		MaxSalary: q.Get("max_salary"),
	}

	result, err := h.employeeService.SearchEmployees(r.Context(), form)
	if err != nil {
		response.HandleErrorWithData(w, err, result)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{TotalItems: len(result)})
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	result, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AddForm implements EmployeeHandler.
func (h *employeeHandlerImpl) AddForm(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.AddForm(r.Context())
	if err != nil {
		response.HandleErrorWithData(w, err, result)
		return
	}

	response.Success(w, result)
}

// EditForm implements EmployeeHandler.
func (h *employeeHandlerImpl) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	result, err := h.employeeService.EditForm(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create implements EmployeeHandler.
func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var form employee.EmployeeForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, msg, err := h.employeeService.CreateEmployee(r.Context(), form)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, msg, result)
}

// Update implements EmployeeHandler.
func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var form employee.EmployeeForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, msg, err := h.employeeService.UpdateEmployee(r.Context(), id, form)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, msg, result)
}

// Delete implements EmployeeHandler.
func (h *employeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.employeeService.DeleteEmployee(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message.Info("Employee deleted", "The employee was deleted."), nil)
}

// SalesReport implements EmployeeHandler.
func (h *employeeHandlerImpl) SalesReport(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	result, err := h.employeeService.SalesReport(r.Context(), id)
	if err != nil {
		response.HandleErrorWithData(w, err, result)
		return
	}

	response.Success(w, result)
}
