package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/personnel/internal/app/controllers"
	"github.com/yigit/personnel/internal/app/models"
	"github.com/yigit/personnel/internal/app/validation"
	"github.com/yigit/personnel/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeEmployees records the calls it receives and answers from fixed data
type fakeEmployees struct {
	employee   *models.Employee
	err        error
	deleted    bool
	lastFilter models.EmployeeFilter
	lastFields validation.Fields
}

func (f *fakeEmployees) Get(_ context.Context, id int64) (*models.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.employee == nil || f.employee.ID != id {
		return nil, apperrors.ErrEmployeeNotFound
	}
	return f.employee, nil
}

func (f *fakeEmployees) List(_ context.Context, filter models.EmployeeFilter) ([]*models.Employee, error) {
	f.lastFilter = filter
	if f.employee == nil {
		return []*models.Employee{}, f.err
	}
	return []*models.Employee{f.employee}, f.err
}

func (f *fakeEmployees) Count(_ context.Context, _ models.EmployeeFilter) (int64, error) {
	if f.employee == nil {
		return 0, nil
	}
	return 12, nil
}

func (f *fakeEmployees) Create(_ context.Context, fields validation.Fields) (*models.Employee, error) {
	f.lastFields = fields
	return f.employee, f.err
}

func (f *fakeEmployees) Update(_ context.Context, _ int64, fields validation.Fields) (*models.Employee, error) {
	f.lastFields = fields
	return f.employee, f.err
}

func (f *fakeEmployees) Delete(_ context.Context, _ int64) (bool, error) {
	return f.deleted, f.err
}

func sampleEmployee() *models.Employee {
	return &models.Employee{
		ID:           7,
		FullName:     "Ana Smith",
		BirthDate:    time.Date(1990, time.April, 12, 0, 0, 0, 0, time.UTC),
		StartDate:    time.Date(2020, time.January, 15, 0, 0, 0, 0, time.UTC),
		Salary:       2500,
		Rate:         1,
		Status:       "active",
		PhoneNumber:  "+1 555 0100",
		Email:        "ana@example.com",
		DepartmentID: 1,
		PositionID:   2,
	}
}

func employeeRouter(svc *fakeEmployees) *gin.Engine {
	ctrl := controllers.NewEmployeeController(svc, controllers.Pagination{DefaultLimit: 100, MaxLimit: 1000})
	router := gin.New()
	api := router.Group("/api/v1")
	api.GET("/employees", ctrl.ListEmployees)
	api.GET("/employees/:id", ctrl.GetEmployee)
	api.POST("/employees", ctrl.CreateEmployee)
	api.PATCH("/employees/:id", ctrl.UpdateEmployee)
	api.DELETE("/employees/:id", ctrl.DeleteEmployee)
	return router
}

func serve(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Pagination *struct {
		Skip       int   `json:"skip"`
		Limit      int   `json:"limit"`
		TotalItems int64 `json:"totalItems"`
	} `json:"pagination"`
	Error *struct {
		Code  string `json:"code"`
		Field string `json:"field"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestEmployeeController_List(t *testing.T) {
	t.Parallel()
	svc := &fakeEmployees{employee: sampleEmployee()}
	router := employeeRouter(svc)

	w := serve(router, http.MethodGet, "/api/v1/employees?full_name=an&min_salary=abc&start_date_from=2020-01-01&skip=10&limit=5000", "")

	require.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.True(t, env.Success)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, 10, env.Pagination.Skip)
	assert.Equal(t, 1000, env.Pagination.Limit)
	assert.Equal(t, int64(12), env.Pagination.TotalItems)
	assert.Contains(t, string(env.Data), `"birth_date":"1990-04-12"`)

	require.NotNil(t, svc.lastFilter.NameSubstring)
	assert.Equal(t, "an", *svc.lastFilter.NameSubstring)
	assert.Nil(t, svc.lastFilter.MinSalary)
	require.NotNil(t, svc.lastFilter.StartDateFrom)
	assert.Equal(t, 1000, svc.lastFilter.Limit)
}

func TestEmployeeController_ListEmpty(t *testing.T) {
	t.Parallel()
	router := employeeRouter(&fakeEmployees{})

	w := serve(router, http.MethodGet, "/api/v1/employees", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", string(decode(t, w).Data))
}

func TestEmployeeController_Get(t *testing.T) {
	t.Parallel()
	router := employeeRouter(&fakeEmployees{employee: sampleEmployee()})

	w := serve(router, http.MethodGet, "/api/v1/employees/7", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(decode(t, w).Data), `"full_name":"Ana Smith"`)

	w = serve(router, http.MethodGet, "/api/v1/employees/8", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(router, http.MethodGet, "/api/v1/employees/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "id", decode(t, w).Error.Field)
}

func TestEmployeeController_Create(t *testing.T) {
	t.Parallel()

	t.Run("created", func(t *testing.T) {
		t.Parallel()
		svc := &fakeEmployees{employee: sampleEmployee()}
		w := serve(employeeRouter(svc), http.MethodPost, "/api/v1/employees",
			`{"full_name":"Ana Smith","salary":2500,"department_id":1}`)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "2500", svc.lastFields["salary"])
	})

	t.Run("dangling department", func(t *testing.T) {
		t.Parallel()
		svc := &fakeEmployees{err: apperrors.NewReferentialError("department_id", 99)}
		w := serve(employeeRouter(svc), http.MethodPost, "/api/v1/employees", `{"department_id":99}`)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "department_id", decode(t, w).Error.Field)
	})

	t.Run("validation failure", func(t *testing.T) {
		t.Parallel()
		svc := &fakeEmployees{err: &validation.FieldError{Field: "birth_date", Reason: "is required"}}
		w := serve(employeeRouter(svc), http.MethodPost, "/api/v1/employees", `{}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "birth_date", decode(t, w).Error.Field)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		w := serve(employeeRouter(&fakeEmployees{}), http.MethodPost, "/api/v1/employees", `{`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeController_Update(t *testing.T) {
	t.Parallel()
	svc := &fakeEmployees{employee: sampleEmployee()}

	w := serve(employeeRouter(svc), http.MethodPatch, "/api/v1/employees/7", `{"status":"on leave"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, validation.Fields{"status": "on leave"}, svc.lastFields)
}

func TestEmployeeController_Delete(t *testing.T) {
	t.Parallel()

	w := serve(employeeRouter(&fakeEmployees{deleted: true}), http.MethodDelete, "/api/v1/employees/7", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted":true}`, string(decode(t, w).Data))

	w = serve(employeeRouter(&fakeEmployees{deleted: false}), http.MethodDelete, "/api/v1/employees/7", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
