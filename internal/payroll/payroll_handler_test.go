package payroll_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakePayrollService struct {
	generateFn         func(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.PayrollResponse, error)
	getAllFn           func(ctx context.Context) ([]payroll.PayrollResponse, error)
	getByIDFn          func(ctx context.Context, id string) (payroll.PayrollResponse, error)
	getAllByEmployeeFn func(ctx context.Context, employeeID string) ([]payroll.PayrollResponse, error)
	deleteFn           func(ctx context.Context, id string) error
}

func (f *fakePayrollService) Generate(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.PayrollResponse, error) {
	return f.generateFn(ctx, req)
}

func (f *fakePayrollService) GetAll(ctx context.Context) ([]payroll.PayrollResponse, error) {
	return f.getAllFn(ctx)
}

func (f *fakePayrollService) GetByID(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakePayrollService) GetAllByEmployee(ctx context.Context, employeeID string) ([]payroll.PayrollResponse, error) {
	return f.getAllByEmployeeFn(ctx, employeeID)
}

func (f *fakePayrollService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func TestPayrollHandler_Generate(t *testing.T) {
	employeeID := uuid.New().String()

	svc := &fakePayrollService{
		generateFn: func(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.PayrollResponse, error) {
			assert.Equal(t, employeeID, req.EmployeeID)
			assert.Equal(t, 2, req.Month)
			assert.Equal(t, 2026, req.Year)
			return payroll.PayrollResponse{
				ID:             uuid.New().String(),
				EmployeeID:     req.EmployeeID,
				Month:          req.Month,
				Year:           req.Year,
				AttendanceDays: 26,
				NetSalary:      13611,
			}, nil
		},
	}

	h := payroll.NewHandler(svc, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employee_id":"` + employeeID + `","month":2,"year":2026}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll/generate", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Generate(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestPayrollHandler_Generate_StoresIdempotentResponse(t *testing.T) {
	employeeID := uuid.New().String()
	svc := &fakePayrollService{
		generateFn: func(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.PayrollResponse, error) {
			return payroll.PayrollResponse{ID: uuid.New().String(), EmployeeID: req.EmployeeID}, nil
		},
	}

	rdb, mock := redismock.NewClientMock()
	cacheKey := "idemp:/payroll/generate:user-1:key-1"
	lockKey := cacheKey + ":lock"
	// The cached record carries the 201 status and the full envelope so a
	// replay reproduces the original response.
	mock.Regexp().ExpectSet(cacheKey, `\{"status":201,"body":\{"ok":true,"data":.*`, 24*time.Hour).SetVal("OK")
	mock.ExpectDel(lockKey).SetVal(1)

	h := payroll.NewHandler(svc, rdb)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("idempotency_cache_key", cacheKey)
	c.Set("idempotency_lock_key", lockKey)

	body := `{"employee_id":"` + employeeID + `","month":2,"year":2026}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll/generate", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Generate(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayrollHandler_Generate_ReleasesLockOnError(t *testing.T) {
	svc := &fakePayrollService{
		generateFn: func(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.PayrollResponse, error) {
			return payroll.PayrollResponse{}, payrollerrors.ErrDuplicatePayroll
		},
	}

	rdb, mock := redismock.NewClientMock()
	lockKey := "idemp:/payroll/generate:user-1:key-1:lock"
	mock.ExpectDel(lockKey).SetVal(1)

	h := payroll.NewHandler(svc, rdb)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("idempotency_cache_key", "idemp:/payroll/generate:user-1:key-1")
	c.Set("idempotency_lock_key", lockKey)

	body := `{"employee_id":"` + uuid.New().String() + `","month":2,"year":2026}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll/generate", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Generate(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayrollHandler_Generate_Duplicate(t *testing.T) {
	svc := &fakePayrollService{
		generateFn: func(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.PayrollResponse, error) {
			return payroll.PayrollResponse{}, payrollerrors.ErrDuplicatePayroll
		},
	}

	h := payroll.NewHandler(svc, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employee_id":"` + uuid.New().String() + `","month":2,"year":2026}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll/generate", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Generate(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "CONFLICT", env.Error.Code)
}

func TestPayrollHandler_Generate_ValidationError(t *testing.T) {
	svc := &fakePayrollService{
		generateFn: func(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.PayrollResponse, error) {
			t.Fatal("service must not be reached on invalid input")
			return payroll.PayrollResponse{}, nil
		},
	}

	h := payroll.NewHandler(svc, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employee_id":"not-a-uuid","month":13,"year":2026}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll/generate", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Generate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
}

func TestPayrollHandler_GetSelf_NoEmployeeLink(t *testing.T) {
	svc := &fakePayrollService{
		getAllByEmployeeFn: func(ctx context.Context, employeeID string) ([]payroll.PayrollResponse, error) {
			t.Fatal("service must not be reached without an employee link")
			return nil, nil
		},
	}

	h := payroll.NewHandler(svc, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payroll/self", nil)

	h.GetSelf(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPayrollHandler_GetSelf(t *testing.T) {
	employeeID := uuid.New().String()

	svc := &fakePayrollService{
		getAllByEmployeeFn: func(ctx context.Context, eid string) ([]payroll.PayrollResponse, error) {
			assert.Equal(t, employeeID, eid)
			return []payroll.PayrollResponse{{ID: uuid.New().String(), EmployeeID: eid}}, nil
		},
	}

	h := payroll.NewHandler(svc, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payroll/self", nil)
	c.Set("employee_id", employeeID)

	h.GetSelf(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}
