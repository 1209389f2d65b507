package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"go-paydesk/internal/company"
	"go-paydesk/internal/employee"
	"go-paydesk/internal/expense"
	"go-paydesk/internal/payroll"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const SummaryCacheKey = "dashboard:summary"

// summaryTTL is short on purpose: the dashboard tolerates slightly stale
// numbers but an approved payroll run should show up within a refresh.
const summaryTTL = 30 * time.Second

type Service interface {
	Summary(ctx context.Context) (SummaryResponse, error)
}

type service struct {
	employees employee.Service
	companies company.Service
	expenses  expense.Service
	payrolls  payroll.Service
	rdb       *redis.Client
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(
	employees employee.Service,
	companies company.Service,
	expenses expense.Service,
	payrolls payroll.Service,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{
		employees: employees,
		companies: companies,
		expenses:  expenses,
		payrolls:  payrolls,
		rdb:       rdb,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

func (s *service) Summary(ctx context.Context) (SummaryResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, SummaryCacheKey).Result(); err == nil {
			var resp SummaryResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight collapses the burst when several admins load the
	// dashboard right after the cache expires.
	v, err, _ := s.sf.Do(SummaryCacheKey, func() (interface{}, error) {
		resp, err := s.buildSummary(ctx)
		if err != nil {
			return SummaryResponse{}, err
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, SummaryCacheKey, jsonData, summaryTTL)
			}
		}

		return resp, nil
	})

	if err != nil {
		s.logger.Error("dashboard summary failed", zap.Error(err))
		return SummaryResponse{}, err
	}

	return v.(SummaryResponse), nil
}

func (s *service) buildSummary(ctx context.Context) (SummaryResponse, error) {
	revenue, err := s.companies.Revenue(ctx)
	if err != nil {
		return SummaryResponse{}, err
	}

	totals, err := s.expenses.CategoryTotals(ctx)
	if err != nil {
		return SummaryResponse{}, err
	}

	payrollStats := make(map[string]payroll.PayrollStatsResponse, len(payroll.Partitions))
	for _, partition := range payroll.Partitions {
		stats, err := s.payrolls.Stats(ctx, partition)
		if err != nil {
			return SummaryResponse{}, err
		}
		payrollStats[partition] = stats
	}

	empls, err := s.employees.GetAll(ctx, "All")
	if err != nil {
		return SummaryResponse{}, err
	}

	headcount := HeadcountResponse{Total: len(empls)}
	for _, e := range empls {
		if e.Status == employee.StatusActive {
			headcount.Active++
		}
	}

	return SummaryResponse{
		Revenue:       revenue,
		ExpenseTotals: totals,
		Payroll:       payrollStats,
		Headcount:     headcount,
	}, nil
}
