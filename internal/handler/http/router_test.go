package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/employee-manager-go/internal/domain/branch"
	"github.com/cmlabs-hris/employee-manager-go/internal/repository/memory"
	branchService "github.com/cmlabs-hris/employee-manager-go/internal/service/branch"
	employeeService "github.com/cmlabs-hris/employee-manager-go/internal/service/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success  bool            `json:"success"`
	Severity string          `json:"severity"`
	Caption  string          `json:"caption"`
	Message  string          `json:"message"`
	Data     json.RawMessage `json:"data"`
	Error    *struct {
		Code    string            `json:"code"`
		Ref     string            `json:"ref"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	Meta *struct {
		TotalItems int `json:"total_items"`
	} `json:"meta"`
}

type testServer struct {
	store    *memory.Store
	server   *httptest.Server
	scranton branch.Branch
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	store := memory.NewStore()
	scranton, err := store.Branches().Create(context.Background(), branch.Branch{Name: "Scranton"})
	require.NoError(t, err)

	now := func() time.Time { return time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC) }
	empSvc := employeeService.NewEmployeeService(store.Employees(), store.Branches(), store.Sales(), employeeService.WithClock(now))
	brSvc := branchService.NewBranchService(store.Branches())

	router := NewRouter(RouterConfig{
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		AllowedOrigins: []string{"http://localhost:3000"},
	}, NewEmployeeHandler(empSvc), NewBranchHandler(brSvc))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return &testServer{store: store, server: srv, scranton: scranton}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, s.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func (s *testServer) createEmployee(t *testing.T, given, family, salary string) int64 {
	t.Helper()

	status, env := s.do(t, http.MethodPost, "/api/v1/employees", map[string]interface{}{
		"given_name":      given,
		"family_name":     family,
		"date_of_birth":   "1980-01-01",
		"gender_identity": "M",
		"gross_salary":    salary,
		"branch_id":       s.scranton.ID,
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	assert.Equal(t, given+" "+family+" was added.", env.Message)

	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	return created.ID
}

func TestEmployeeEndpoints(t *testing.T) {
	s := newTestServer(t)

	smith := s.createEmployee(t, "John", "Smith", "65000")
	s.createEmployee(t, "John", "Brown", "55000")

	t.Run("search by name tokens", func(t *testing.T) {
		status, env := s.do(t, http.MethodGet, "/api/v1/employees?name=Jo+Sm", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "info", env.Severity)
		require.NotNil(t, env.Meta)
		assert.Equal(t, 1, env.Meta.TotalItems)
		assert.Contains(t, string(env.Data), "John Smith")
	})

	t.Run("search with inverted salary range", func(t *testing.T) {
		status, env := s.do(t, http.MethodGet, "/api/v1/employees?min_salary=50000&max_salary=40000", nil)
		require.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, "warning", env.Severity)
		assert.Equal(t, "Salary range not valid", env.Caption)
		assert.Equal(t, "The minimum salary must be lower than the maximum salary.", env.Message)
		require.NotNil(t, env.Error)
		assert.Contains(t, env.Error.Details, "salary_range")
	})

	t.Run("get", func(t *testing.T) {
		status, env := s.do(t, http.MethodGet, "/api/v1/employees/"+itoa(smith), nil)
		require.Equal(t, http.StatusOK, status)
		assert.Contains(t, string(env.Data), `"branch_name":"Scranton"`)

		status, _ = s.do(t, http.MethodGet, "/api/v1/employees/999", nil)
		assert.Equal(t, http.StatusNotFound, status)

		status, _ = s.do(t, http.MethodGet, "/api/v1/employees/abc", nil)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("create rejects invalid salary", func(t *testing.T) {
		status, env := s.do(t, http.MethodPost, "/api/v1/employees", map[string]interface{}{
			"given_name":      "Kevin",
			"family_name":     "Malone",
			"date_of_birth":   "1978-06-01",
			"gender_identity": "M",
			"gross_salary":    "-10",
			"branch_id":       s.scranton.ID,
		})
		require.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, "Salary not valid", env.Caption)
		assert.Equal(t, "The salary cannot be negative.", env.Message)
	})

	t.Run("create rejects missing branch", func(t *testing.T) {
		status, env := s.do(t, http.MethodPost, "/api/v1/employees", map[string]interface{}{
			"given_name":      "Toby",
			"family_name":     "Flenderson",
			"date_of_birth":   "1971-02-22",
			"gender_identity": "M",
			"gross_salary":    "50000",
			"branch_id":       999,
		})
		require.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, "warning", env.Severity)
		assert.Equal(t, "Branch not valid", env.Caption)
		require.NotNil(t, env.Error)
		assert.Contains(t, env.Error.Details, "branch")
	})

	t.Run("update and edit form", func(t *testing.T) {
		status, env := s.do(t, http.MethodGet, "/api/v1/employees/"+itoa(smith)+"/form", nil)
		require.Equal(t, http.StatusOK, status)

		var view struct {
			Mode string                 `json:"mode"`
			Form map[string]interface{} `json:"form"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &view))
		assert.Equal(t, "edit", view.Mode)
		assert.Equal(t, "65000", view.Form["gross_salary"])

		view.Form["gross_salary"] = "67000"
		status, env = s.do(t, http.MethodPut, "/api/v1/employees/"+itoa(smith), view.Form)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "John Smith was updated.", env.Message)
		assert.Contains(t, string(env.Data), `"gross_salary":67000`)
	})

	t.Run("add form", func(t *testing.T) {
		status, env := s.do(t, http.MethodGet, "/api/v1/employees/form", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Contains(t, string(env.Data), `"mode":"add"`)
	})

	t.Run("sales report", func(t *testing.T) {
		client, err := s.store.AddClient("Blue Cross")
		require.NoError(t, err)
		require.NoError(t, s.store.RecordSale(smith, client, decimal.NewFromInt(1500)))

		status, env := s.do(t, http.MethodGet, "/api/v1/employees/"+itoa(smith)+"/sales", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Contains(t, string(env.Data), `"total_sales":"$1,500"`)
	})

	t.Run("delete", func(t *testing.T) {
		status, env := s.do(t, http.MethodDelete, "/api/v1/employees/"+itoa(smith), nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "info", env.Severity)

		status, _ = s.do(t, http.MethodDelete, "/api/v1/employees/"+itoa(smith), nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestStorageFailureResponse(t *testing.T) {
	s := newTestServer(t)
	s.store.SetFailure(errors.New("connection refused"))

	status, env := s.do(t, http.MethodGet, "/api/v1/employees?name=x", nil)
	require.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "error", env.Severity)
	assert.Equal(t, "Database error", env.Caption)
	require.NotNil(t, env.Error)
	assert.NotEmpty(t, env.Error.Ref)
	assert.Contains(t, env.Message, env.Error.Ref)
	assert.Equal(t, "[]", strings.TrimSpace(string(env.Data)))
}

func TestBranchEndpoints(t *testing.T) {
	s := newTestServer(t)

	status, env := s.do(t, http.MethodPost, "/api/v1/branches", map[string]string{"name": "Stamford"})
	require.Equal(t, http.StatusCreated, status)
	var created branch.BranchResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))

	status, _ = s.do(t, http.MethodPost, "/api/v1/branches", map[string]string{"name": "stamford"})
	assert.Equal(t, http.StatusConflict, status)

	status, _ = s.do(t, http.MethodPost, "/api/v1/branches", map[string]string{"name": ""})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, env = s.do(t, http.MethodGet, "/api/v1/branches", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, env.Meta.TotalItems)

	status, env = s.do(t, http.MethodPut, "/api/v1/branches/"+itoa(created.ID), map[string]string{"name": "Nashua"})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), "Nashua")

	status, _ = s.do(t, http.MethodDelete, "/api/v1/branches/"+itoa(created.ID), nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = s.do(t, http.MethodGet, "/api/v1/branches/"+itoa(created.ID), nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)

	resp, err := http.Get(s.server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "go_goroutines")
}
