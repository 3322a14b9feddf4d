package web_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/yigit/personnel/internal/app/models"
	"github.com/yigit/personnel/internal/app/report"
	"github.com/yigit/personnel/internal/app/services"
	"github.com/yigit/personnel/internal/app/validation"
	"github.com/yigit/personnel/internal/app/web"
	"github.com/yigit/personnel/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubEmployees struct {
	rows       []*models.Employee
	createErr  error
	lastFilter models.EmployeeFilter
	created    validation.Fields
	deletedID  int64
	pageCap    int
}

func (s *stubEmployees) Get(_ context.Context, id int64) (*models.Employee, error) {
	for _, e := range s.rows {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, apperrors.ErrEmployeeNotFound
}

func (s *stubEmployees) List(_ context.Context, f models.EmployeeFilter) ([]*models.Employee, error) {
	s.lastFilter = f
	limit := f.Limit
	if s.pageCap > 0 {
		limit = min(limit, s.pageCap)
	}
	start := min(f.Skip, len(s.rows))
	end := min(start+limit, len(s.rows))
	return s.rows[start:end], nil
}

func (s *stubEmployees) Count(context.Context, models.EmployeeFilter) (int64, error) {
	return int64(len(s.rows)), nil
}

func (s *stubEmployees) Create(_ context.Context, fields validation.Fields) (*models.Employee, error) {
	s.created = fields
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &models.Employee{ID: 99}, nil
}

func (s *stubEmployees) Update(ctx context.Context, id int64, _ validation.Fields) (*models.Employee, error) {
	return s.Get(ctx, id)
}

func (s *stubEmployees) Delete(_ context.Context, id int64) (bool, error) {
	s.deletedID = id
	return true, nil
}

type stubDepartments struct {
	services.DepartmentService
	deleteErr error
}

func (stubDepartments) List(context.Context, int, int) ([]*models.Department, error) {
	return []*models.Department{{ID: 1, Name: "Sales"}}, nil
}

func (s stubDepartments) Delete(context.Context, int64) (bool, error) {
	return s.deleteErr == nil, s.deleteErr
}

type stubPositions struct {
	services.PositionService
}

func (stubPositions) List(context.Context, int, int) ([]*models.Position, error) {
	return []*models.Position{{ID: 2, Name: "Engineer"}}, nil
}

func employee(id int64, name string) *models.Employee {
	return &models.Employee{
		ID:           id,
		FullName:     name,
		BirthDate:    time.Date(1990, time.April, 12, 0, 0, 0, 0, time.UTC),
		StartDate:    time.Date(2020, time.January, 15, 0, 0, 0, 0, time.UTC),
		Salary:       1000 * float64(id),
		Rate:         1,
		Status:       "active",
		DepartmentID: 1,
		PositionID:   2,
	}
}

func newRouter(emp *stubEmployees, dep stubDepartments) *gin.Engine {
	return newRouterWithConfig(emp, dep, web.Config{PageSize: 2, MaxLimit: 1000})
}

func newRouterWithConfig(emp *stubEmployees, dep stubDepartments, cfg web.Config) *gin.Engine {
	svcs := &services.Services{
		EmployeeService:   emp,
		DepartmentService: dep,
		PositionService:   stubPositions{},
	}
	router := gin.New()
	router.SetHTMLTemplate(web.Templates())
	web.NewHandler(svcs, cfg, nil).RegisterRoutes(router)
	return router
}

func do(router *gin.Engine, method, target string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func fiveEmployees() *stubEmployees {
	return &stubEmployees{rows: []*models.Employee{
		employee(1, "Ana Smith"),
		employee(2, "Bob Jones"),
		employee(3, "Carl Banas"),
		employee(4, "Diana Prince"),
		employee(5, "Eve Adams"),
	}}
}

func TestListEmployees(t *testing.T) {
	t.Parallel()
	emp := fiveEmployees()
	router := newRouter(emp, stubDepartments{})

	w := do(router, http.MethodGet, "/?full_name=a&min_salary=oops&skip=2", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Carl Banas")
	assert.Contains(t, body, "Diana Prince")
	assert.NotContains(t, body, "Bob Jones")
	assert.Contains(t, body, "Sales")
	assert.Contains(t, body, "Page 2 of 3")
	assert.Contains(t, body, `href="/employees/export?full_name=a&amp;min_salary=oops"`)

	assert.Equal(t, 2, emp.lastFilter.Skip)
	assert.Equal(t, 2, emp.lastFilter.Limit)
	assert.Nil(t, emp.lastFilter.MinSalary)
	require.NotNil(t, emp.lastFilter.NameSubstring)
}

func TestShowEmployee(t *testing.T) {
	t.Parallel()
	router := newRouter(fiveEmployees(), stubDepartments{})

	w := do(router, http.MethodGet, "/employees/4", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Diana Prince")
	assert.Contains(t, w.Body.String(), "1990-04-12")
	assert.Contains(t, w.Body.String(), "Engineer")

	w = do(router, http.MethodGet, "/employees/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(router, http.MethodGet, "/employees/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEditEmployeePrefillsForm(t *testing.T) {
	t.Parallel()
	router := newRouter(fiveEmployees(), stubDepartments{})

	w := do(router, http.MethodGet, "/employees/2/edit", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="Bob Jones"`)
	assert.Contains(t, w.Body.String(), `action="/employees/2/update"`)
}

func TestCreateEmployee(t *testing.T) {
	t.Parallel()

	t.Run("redirects to the list", func(t *testing.T) {
		t.Parallel()
		emp := &stubEmployees{}
		form := url.Values{"full_name": {"Ana Smith"}, "salary": {"1200"}}

		w := do(newRouter(emp, stubDepartments{}), http.MethodPost, "/employees", form)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		assert.Equal(t, "Ana Smith", emp.created["full_name"])
	})

	t.Run("re-renders the form on invalid input", func(t *testing.T) {
		t.Parallel()
		emp := &stubEmployees{createErr: apperrors.NewReferentialError("department_id", 99)}
		form := url.Values{"full_name": {"Ana Smith"}, "department_id": {"99"}}

		w := do(newRouter(emp, stubDepartments{}), http.MethodPost, "/employees", form)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "department_id 99 does not exist")
		assert.Contains(t, w.Body.String(), `value="Ana Smith"`)
	})
}

func TestUpdateAndDeleteEmployee(t *testing.T) {
	t.Parallel()
	emp := fiveEmployees()
	router := newRouter(emp, stubDepartments{})

	w := do(router, http.MethodPost, "/employees/3/update", url.Values{"status": {"on leave"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/employees/3", w.Header().Get("Location"))

	w = do(router, http.MethodPost, "/employees/42/update", url.Values{"status": {"on leave"}})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(router, http.MethodPost, "/employees/3/delete", url.Values{})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, int64(3), emp.deletedID)
}

func TestDepartmentPages(t *testing.T) {
	t.Parallel()

	w := do(newRouter(&stubEmployees{}, stubDepartments{}), http.MethodGet, "/departments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sales")

	blocked := stubDepartments{deleteErr: apperrors.ErrDepartmentHasEmployees}
	w = do(newRouter(&stubEmployees{}, blocked), http.MethodPost, "/departments/1/delete", url.Values{})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "department has employees")

	w = do(newRouter(&stubEmployees{}, stubDepartments{}), http.MethodGet, "/positions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Engineer")
}

func TestExportEmployees(t *testing.T) {
	t.Parallel()
	emp := fiveEmployees()

	w := do(newRouter(emp, stubDepartments{}), http.MethodGet, "/employees/export?skip=3&limit=1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, report.ContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(report.SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 6, "header plus every matching employee")
	assert.Equal(t, "Sales", rows[1][9])
}

func TestExportEmployeesWalksShortPages(t *testing.T) {
	t.Parallel()
	emp := &stubEmployees{pageCap: 1000}
	for i := range 1500 {
		emp.rows = append(emp.rows, employee(int64(i+1), fmt.Sprintf("Employee %d", i+1)))
	}
	router := newRouterWithConfig(emp, stubDepartments{}, web.Config{PageSize: 10, MaxLimit: 5000})

	w := do(router, http.MethodGet, "/employees/export", nil)

	require.Equal(t, http.StatusOK, w.Code)
	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(report.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1501, "header plus every matching employee")
	assert.Equal(t, "Employee 1500", rows[1500][1])
}
