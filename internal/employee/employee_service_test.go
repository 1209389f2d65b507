package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-paydesk/internal/employee"
	employeeerrors "go-paydesk/internal/employee/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEmployeeRepository struct {
	withTxFn         func(tx *sql.Tx) employee.Repository
	createFn         func(ctx context.Context, empl *employee.Employee) error
	findAllFn        func(ctx context.Context) ([]employee.Employee, error)
	findByIDFn       func(ctx context.Context, id int64) (*employee.Employee, error)
	findOptionsFn    func(ctx context.Context) ([]employee.Employee, error)
	updateFn         func(ctx context.Context, empl *employee.Employee) error
	deleteFn         func(ctx context.Context, id int64) error
	settleAdvancesFn func(ctx context.Context, fullName string) (int64, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, empl *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, empl)
	}
	return nil
}

func (f *fakeEmployeeRepository) FindAll(ctx context.Context) ([]employee.Employee, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id int64) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) FindOptions(ctx context.Context) ([]employee.Employee, error) {
	if f.findOptionsFn != nil {
		return f.findOptionsFn(ctx)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, empl *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, empl)
	}
	return nil
}

func (f *fakeEmployeeRepository) Delete(ctx context.Context, id int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeEmployeeRepository) SettleAdvancesByEmployeeName(ctx context.Context, fullName string) (int64, error) {
	if f.settleAdvancesFn != nil {
		return f.settleAdvancesFn(ctx, fullName)
	}
	return 0, nil
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &fakeEmployeeRepository{}
		repo.createFn = func(ctx context.Context, empl *employee.Employee) error {
			assert.Equal(t, "Ahmed Hassan", empl.FullName)
			assert.Equal(t, employee.PaymentPerDelivery, empl.PaymentType)
			assert.Equal(t, int64(25), empl.SalaryRate)
			assert.Equal(t, employee.StatusActive, empl.Status)
			assert.Empty(t, empl.SalaryHistory)
			assert.Empty(t, empl.Advances)
			empl.ID = 1
			return nil
		}

		svc := employee.NewService(repo, nil)
		resp, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			FullName:       "Ahmed Hassan",
			Role:           "Courier",
			PaymentType:    employee.PaymentPerDelivery,
			SalaryRate:     "25",
			AssignedClient: "Emirates Express",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, employee.StatusActive, resp.Status)
	})

	t.Run("negative missing fields reported in order", func(t *testing.T) {
		svc := employee.NewService(&fakeEmployeeRepository{}, nil)

		cases := []struct {
			req  employee.CreateEmployeeRequest
			want string
		}{
			{employee.CreateEmployeeRequest{}, "Full Name is required"},
			{employee.CreateEmployeeRequest{FullName: "A"}, "Role is required"},
			{employee.CreateEmployeeRequest{FullName: "A", Role: "B"}, "Salary Rate is required"},
			{employee.CreateEmployeeRequest{FullName: "A", Role: "B", SalaryRate: "10"}, "Assigned Client is required"},
		}
		for _, tc := range cases {
			_, err := svc.Create(ctx, tc.req)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		}
	})

	t.Run("negative invalid salary rate", func(t *testing.T) {
		svc := employee.NewService(&fakeEmployeeRepository{}, nil)

		for _, rate := range []string{"0", "-5", "abc"} {
			_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
				FullName:       "A",
				Role:           "B",
				SalaryRate:     rate,
				AssignedClient: "C",
			})
			assert.ErrorIs(t, err, employeeerrors.ErrInvalidSalaryRate, "rate %q", rate)
		}
	})

	t.Run("payment type defaults to monthly", func(t *testing.T) {
		repo := &fakeEmployeeRepository{}
		repo.createFn = func(ctx context.Context, empl *employee.Employee) error {
			assert.Equal(t, employee.PaymentMonthly, empl.PaymentType)
			return nil
		}

		svc := employee.NewService(repo, nil)
		_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			FullName:       "A",
			Role:           "B",
			SalaryRate:     "100",
			AssignedClient: "C",
		})

		assert.NoError(t, err)
	})

	t.Run("negative duplicate name", func(t *testing.T) {
		repo := &fakeEmployeeRepository{}
		repo.createFn = func(ctx context.Context, empl *employee.Employee) error {
			return employeeerrors.ErrEmployeeAlreadyExists
		}

		svc := employee.NewService(repo, nil)
		_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			FullName:       "Ahmed Hassan",
			Role:           "Courier",
			SalaryRate:     "25",
			AssignedClient: "Emirates Express",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	ctx := context.Background()

	seed := []employee.Employee{
		{ID: 1, FullName: "Ali Khan", PaymentType: employee.PaymentWeekly},
		{ID: 2, FullName: "Sara Ahmed", PaymentType: employee.PaymentMonthly},
		{ID: 3, FullName: "Ahmed Hassan", PaymentType: employee.PaymentPerDelivery},
	}

	repo := &fakeEmployeeRepository{}
	repo.findAllFn = func(ctx context.Context) ([]employee.Employee, error) {
		return seed, nil
	}
	svc := employee.NewService(repo, nil)

	t.Run("all sentinel keeps everything", func(t *testing.T) {
		resp, err := svc.GetAll(ctx, "All")
		assert.NoError(t, err)
		assert.Len(t, resp, 3)
	})

	t.Run("filter by payment type", func(t *testing.T) {
		resp, err := svc.GetAll(ctx, employee.PaymentWeekly)
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Ali Khan", resp[0].FullName)
	})

	t.Run("unknown filter yields empty, not error", func(t *testing.T) {
		resp, err := svc.GetAll(ctx, "Quarterly")
		assert.NoError(t, err)
		assert.Empty(t, resp)
	})
}

func TestEmployeeService_GetOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss populates redis", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()

		repo := &fakeEmployeeRepository{}
		repo.findOptionsFn = func(ctx context.Context) ([]employee.Employee, error) {
			return []employee.Employee{{ID: 1, FullName: "Ali Khan"}}, nil
		}

		expected, _ := json.Marshal([]employee.EmployeeOption{{ID: 1, FullName: "Ali Khan"}})
		mock.ExpectGet(employee.EmployeeOptionsKey).RedisNil()
		mock.ExpectSet(employee.EmployeeOptionsKey, expected, time.Hour).SetVal("OK")

		svc := employee.NewService(repo, rdb)
		resp, err := svc.GetOptions(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()

		repo := &fakeEmployeeRepository{}
		repo.findOptionsFn = func(ctx context.Context) ([]employee.Employee, error) {
			t.Fatal("repository must not be hit on cache hit")
			return nil, nil
		}

		cached, _ := json.Marshal([]employee.EmployeeOption{{ID: 2, FullName: "Sara Ahmed"}})
		mock.ExpectGet(employee.EmployeeOptionsKey).SetVal(string(cached))

		svc := employee.NewService(repo, rdb)
		resp, err := svc.GetOptions(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Sara Ahmed", resp[0].FullName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success invalidates options cache", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		repo := &fakeEmployeeRepository{}
		repo.findByIDFn = func(ctx context.Context, id int64) (*employee.Employee, error) {
			return &employee.Employee{ID: id, FullName: "Ali Khan", PaymentType: employee.PaymentWeekly, SalaryRate: 900, Status: employee.StatusActive}, nil
		}
		repo.updateFn = func(ctx context.Context, empl *employee.Employee) error {
			assert.Equal(t, "Ali K. Khan", empl.FullName)
			assert.Equal(t, int64(950), empl.SalaryRate)
			return nil
		}

		svc := employee.NewService(repo, rdb)
		resp, err := svc.Update(ctx, 1, employee.UpdateEmployeeRequest{
			FullName:       "Ali K. Khan",
			Role:           "Driver",
			PaymentType:    employee.PaymentWeekly,
			SalaryRate:     "950",
			AssignedClient: "Dubai Logistics",
			Status:         employee.StatusActive,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Ali K. Khan", resp.FullName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative unknown status", func(t *testing.T) {
		svc := employee.NewService(&fakeEmployeeRepository{}, nil)
		_, err := svc.Update(ctx, 1, employee.UpdateEmployeeRequest{
			FullName:       "A",
			Role:           "B",
			PaymentType:    employee.PaymentWeekly,
			SalaryRate:     "10",
			AssignedClient: "C",
			Status:         "Retired",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidStatus)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &fakeEmployeeRepository{}
		repo.findByIDFn = func(ctx context.Context, id int64) (*employee.Employee, error) {
			return &employee.Employee{ID: id}, nil
		}
		deleted := false
		repo.deleteFn = func(ctx context.Context, id int64) error {
			deleted = true
			return nil
		}

		svc := employee.NewService(repo, nil)
		assert.NoError(t, svc.Delete(ctx, 1))
		assert.True(t, deleted)
	})

	t.Run("negative not found", func(t *testing.T) {
		svc := employee.NewService(&fakeEmployeeRepository{}, nil)
		err := svc.Delete(ctx, 99)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_SettleAdvances(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &fakeEmployeeRepository{}
		repo.settleAdvancesFn = func(ctx context.Context, fullName string) (int64, error) {
			assert.Equal(t, "Ali Khan", fullName)
			return 2, nil
		}

		svc := employee.NewService(repo, nil)
		settled, err := svc.SettleAdvances(ctx, "Ali Khan")

		assert.NoError(t, err)
		assert.Equal(t, int64(2), settled)
	})

	t.Run("negative repo error", func(t *testing.T) {
		repo := &fakeEmployeeRepository{}
		repo.settleAdvancesFn = func(ctx context.Context, fullName string) (int64, error) {
			return 0, errors.New("db down")
		}

		svc := employee.NewService(repo, nil)
		_, err := svc.SettleAdvances(ctx, "Ali Khan")

		assert.Error(t, err)
	})
}
