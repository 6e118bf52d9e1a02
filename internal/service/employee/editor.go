package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/employee-manager-go/internal/domain/branch"
	"github.com/cmlabs-hris/employee-manager-go/internal/domain/employee"
	"github.com/cmlabs-hris/employee-manager-go/internal/domain/message"
	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/database"
	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/validator"
)

type EditorState string

const (
	StateAdd  EditorState = "add"
	StateEdit EditorState = "edit"
	StateDone EditorState = "done"
)

// Editor runs one add or edit of an employee. It accepts submissions until
// one is saved, then moves to StateDone and rejects further ones.
type Editor struct {
	svc      *EmployeeServiceImpl
	state    EditorState
	mode     employee.EditorMode
	original employee.EmployeeWithDetails
	saved    employee.EmployeeResponse
}

// NewAddEditor opens an editor for a new employee.
func (s *EmployeeServiceImpl) NewAddEditor() *Editor {
	return &Editor{svc: s, state: StateAdd, mode: employee.ModeAdd}
}

// NewEditEditor loads employee id and opens an editor prefilled with it.
func (s *EmployeeServiceImpl) NewEditEditor(ctx context.Context, id int64) (*Editor, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, database.NewStorageError("get employee", err)
	}
	return &Editor{svc: s, state: StateEdit, mode: employee.ModeEdit, original: emp}, nil
}

func (e *Editor) State() EditorState {
	return e.state
}

// Saved returns the stored record once the editor is done.
func (e *Editor) Saved() employee.EmployeeResponse {
	return e.saved
}

func (e *Editor) selfID() *int64 {
	if e.mode != employee.ModeEdit {
		return nil
	}
	id := e.original.ID
	return &id
}

// View returns the form prefill together with the branch and supervisor
// choices. The record being edited is never offered as its own supervisor.
func (e *Editor) View(ctx context.Context) (employee.EditorView, error) {
	view := employee.EditorView{
		Mode:        e.mode,
		EmployeeID:  e.selfID(),
		Genders:     employee.GenderIdentities,
		Branches:    []branch.BranchResponse{},
		Supervisors: []employee.SupervisorOption{{ID: nil, Name: "(none)"}},
	}
	if e.mode == employee.ModeEdit {
		view.Form = mapEmployeeToForm(e.original.Employee)
	}

	branches, err := e.svc.branchRepo.List(ctx)
	if err != nil {
		return view, database.NewStorageError("list branches", err)
	}
	for _, b := range branches {
		view.Branches = append(view.Branches, branch.BranchResponse{ID: b.ID, Name: b.Name})
	}

	candidates, err := e.svc.employeeRepo.SupervisorCandidates(ctx, e.selfID())
	if err != nil {
		view.Branches = []branch.BranchResponse{}
		return view, database.NewStorageError("list supervisor candidates", err)
	}
	for _, c := range candidates {
		id := c.ID
		view.Supervisors = append(view.Supervisors, employee.SupervisorOption{ID: &id, Name: c.FullName()})
	}

	return view, nil
}

// Submit validates form and, when it passes, saves it. A rejected form
// leaves the editor open so the user can correct it.
func (e *Editor) Submit(ctx context.Context, form employee.EmployeeForm) (message.Message, error) {
	if e.state == StateDone {
		return message.FromError(employee.ErrEditorClosed), employee.ErrEditorClosed
	}

	emp, err := form.Validate(e.svc.now(), e.selfID())
	if err == nil {
		err = e.checkReferences(ctx, emp)
	}
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			metrics.CountRejections(err)
		}
		return message.FromError(err), err
	}

	var saved employee.Employee
	var msg message.Message
	switch e.mode {
	case employee.ModeEdit:
		emp.ID = e.original.ID
		saved, err = e.svc.employeeRepo.Update(ctx, emp)
		if err != nil {
			if !errors.Is(err, employee.ErrEmployeeNotFound) {
				err = database.NewStorageError("update employee", err)
			}
			return message.FromError(err), err
		}
		msg = message.Info("Employee updated", fmt.Sprintf("%s was updated.", saved.FullName()))
	default:
		saved, err = e.svc.employeeRepo.Create(ctx, emp)
		if err != nil {
			err = database.NewStorageError("create employee", err)
			return message.FromError(err), err
		}
		msg = message.Info("Employee added", fmt.Sprintf("%s was added.", saved.FullName()))
	}

	e.saved = mapEmployeeToResponse(employee.EmployeeWithDetails{Employee: saved})
	if details, err := e.svc.employeeRepo.GetByID(ctx, saved.ID); err == nil {
		e.saved = mapEmployeeToResponse(details)
	} else {
		slog.Warn("Failed to reload saved employee", "employee_id", saved.ID, "error", err)
	}

	e.state = StateDone
	return msg, nil
}

// checkReferences rejects a branch or supervisor that no longer exists,
// e.g. because it was deleted while the form was open.
func (e *Editor) checkReferences(ctx context.Context, emp employee.Employee) error {
	if emp.BranchID != nil {
		if _, err := e.svc.branchRepo.GetByID(ctx, *emp.BranchID); err != nil {
			if !errors.Is(err, branch.ErrBranchNotFound) {
				return database.NewStorageError("get branch", err)
			}
			return validator.ValidationErrors{{
				Field:   "branch",
				Message: "The selected branch no longer exists. Please select another branch.",
				Reason:  employee.ErrBranchNotFound,
			}}
		}
	}
	if emp.SupervisorID != nil {
		if _, err := e.svc.employeeRepo.GetByID(ctx, *emp.SupervisorID); err != nil {
			if !errors.Is(err, employee.ErrEmployeeNotFound) {
				return database.NewStorageError("get supervisor", err)
			}
			return validator.ValidationErrors{{
				Field:   "supervisor",
				Message: "The selected supervisor no longer exists. Please select another supervisor.",
				Reason:  employee.ErrSupervisorNotFound,
			}}
		}
	}
	return nil
}
