package payroll_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-paydesk/internal/payroll"
	payrollerrors "go-paydesk/internal/payroll/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakePayrollService struct {
	getAllFn   func(ctx context.Context, partition string) ([]payroll.PayrollEntryResponse, error)
	getByIDFn  func(ctx context.Context, id int64) (payroll.PayrollEntryResponse, error)
	statsFn    func(ctx context.Context, partition string) (payroll.PayrollStatsResponse, error)
	approveFn  func(ctx context.Context, id int64) (payroll.PayrollEntryResponse, error)
	markPaidFn func(ctx context.Context, id int64) (payroll.PayrollEntryResponse, error)
	payslipFn  func(ctx context.Context, id int64) ([]byte, error)
}

func (f *fakePayrollService) GetAll(ctx context.Context, partition string) ([]payroll.PayrollEntryResponse, error) {
	return f.getAllFn(ctx, partition)
}

func (f *fakePayrollService) GetByID(ctx context.Context, id int64) (payroll.PayrollEntryResponse, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakePayrollService) Stats(ctx context.Context, partition string) (payroll.PayrollStatsResponse, error) {
	return f.statsFn(ctx, partition)
}

func (f *fakePayrollService) Approve(ctx context.Context, id int64) (payroll.PayrollEntryResponse, error) {
	return f.approveFn(ctx, id)
}

func (f *fakePayrollService) MarkPaid(ctx context.Context, id int64) (payroll.PayrollEntryResponse, error) {
	return f.markPaidFn(ctx, id)
}

func (f *fakePayrollService) Payslip(ctx context.Context, id int64) ([]byte, error) {
	return f.payslipFn(ctx, id)
}

func TestPayrollHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakePayrollService{
		getAllFn: func(ctx context.Context, partition string) ([]payroll.PayrollEntryResponse, error) {
			assert.Equal(t, payroll.PartitionMonthly, partition)
			return []payroll.PayrollEntryResponse{
				{ID: 1, EmployeeName: "Sara Ahmed", FinalPayable: 5800, Status: payroll.StatusPending},
			}, nil
		},
	}
	h := payroll.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payroll?partition=Monthly", nil)
	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
	assert.Contains(t, w.Body.String(), `"final_payable":5800`)
}

func TestPayrollHandler_GetAllDefaultsToWeekly(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakePayrollService{
		getAllFn: func(ctx context.Context, partition string) ([]payroll.PayrollEntryResponse, error) {
			assert.Equal(t, payroll.PartitionWeekly, partition)
			return nil, nil
		},
	}
	h := payroll.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payroll", nil)
	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPayrollHandler_Approve(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakePayrollService{
			approveFn: func(ctx context.Context, id int64) (payroll.PayrollEntryResponse, error) {
				assert.Equal(t, int64(3), id)
				return payroll.PayrollEntryResponse{ID: id, Status: payroll.StatusApproved}, nil
			},
		}
		h := payroll.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "3"}}
		c.Request = httptest.NewRequest(http.MethodPost, "/payroll/3/approve", nil)
		h.Approve(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"Approved"`)
	})

	t.Run("negative invalid transition", func(t *testing.T) {
		svc := &fakePayrollService{
			approveFn: func(ctx context.Context, id int64) (payroll.PayrollEntryResponse, error) {
				return payroll.PayrollEntryResponse{}, payrollerrors.ErrInvalidStatusTransition
			},
		}
		h := payroll.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "3"}}
		c.Request = httptest.NewRequest(http.MethodPost, "/payroll/3/approve", nil)
		h.Approve(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"ok":false`)
		assert.Contains(t, w.Body.String(), "INVALID_STATE")
	})

	t.Run("negative bad id", func(t *testing.T) {
		h := payroll.NewHandler(&fakePayrollService{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "abc"}}
		c.Request = httptest.NewRequest(http.MethodPost, "/payroll/abc/approve", nil)
		h.Approve(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPayrollHandler_MarkPaid(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakePayrollService{
		markPaidFn: func(ctx context.Context, id int64) (payroll.PayrollEntryResponse, error) {
			return payroll.PayrollEntryResponse{ID: id, Status: payroll.StatusPaid}, nil
		},
	}
	h := payroll.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "5"}}
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll/5/pay", nil)
	h.MarkPaid(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Paid"`)
}

func TestPayrollHandler_Stats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakePayrollService{
		statsFn: func(ctx context.Context, partition string) (payroll.PayrollStatsResponse, error) {
			return payroll.PayrollStatsResponse{Total: 2250, Approved: 1850, Pending: 400}, nil
		},
	}
	h := payroll.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payroll/stats?partition=Weekly", nil)
	h.GetStats(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":2250`)
}

func TestPayrollHandler_Payslip(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakePayrollService{
		payslipFn: func(ctx context.Context, id int64) ([]byte, error) {
			return []byte("%PDF-1.4\n"), nil
		},
	}
	h := payroll.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "2"}}
	c.Request = httptest.NewRequest(http.MethodGet, "/payroll/2/payslip", nil)
	h.Payslip(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "payslip-2.pdf")
}
