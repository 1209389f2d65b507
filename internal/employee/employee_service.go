package employee

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	employeeerrors "go-paydesk/internal/employee/errors"
	"go-paydesk/internal/shared/apperror"
	"go-paydesk/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const EmployeeOptionsKey = "employees:options"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, paymentType string) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOption, error)
	GetByID(ctx context.Context, id int64) (EmployeeResponse, error)
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id int64) error
	SettleAdvances(ctx context.Context, fullName string) (int64, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(
	ctx context.Context,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("full_name", req.FullName),
		zap.String("payment_type", req.PaymentType),
	)

	// Field order matters: the form surfaces the first missing field only.
	if strings.TrimSpace(req.FullName) == "" {
		return EmployeeResponse{}, apperror.RequiredField("Full Name")
	}
	if strings.TrimSpace(req.Role) == "" {
		return EmployeeResponse{}, apperror.RequiredField("Role")
	}
	if strings.TrimSpace(req.SalaryRate) == "" {
		return EmployeeResponse{}, apperror.RequiredField("Salary Rate")
	}
	if strings.TrimSpace(req.AssignedClient) == "" {
		return EmployeeResponse{}, apperror.RequiredField("Assigned Client")
	}

	salaryRate, err := parseAmount(req.SalaryRate)
	if err != nil {
		s.logger.Warn("create employee invalid salary rate",
			zap.String("salary_rate", req.SalaryRate),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidSalaryRate
	}

	paymentType := strings.TrimSpace(req.PaymentType)
	if paymentType == "" {
		paymentType = PaymentMonthly
	}
	if !ValidPaymentType(paymentType) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidPaymentType
	}

	empl := &Employee{
		FullName:       strings.TrimSpace(req.FullName),
		Role:           strings.TrimSpace(req.Role),
		PaymentType:    paymentType,
		SalaryRate:     salaryRate,
		AssignedClient: strings.TrimSpace(req.AssignedClient),
		Status:         StatusActive,
		SalaryHistory:  []SalaryRecord{},
		Advances:       []AdvanceRecord{},
		Assets:         []Asset{},
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", empl.ID),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(
	ctx context.Context,
	paymentType string,
) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested", zap.String("payment_type", paymentType))
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	// "All" (or empty) keeps every record; otherwise exact match, insertion
	// order preserved.
	if paymentType != "" && paymentType != "All" {
		filtered := make([]Employee, 0, len(empls))
		for _, e := range empls {
			if e.PaymentType == paymentType {
				filtered = append(filtered, e)
			}
		}
		empls = filtered
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeOption, error) {
	// 1. Redis first
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var resp []EmployeeOption
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// 2. Singleflight collapses concurrent misses when admins open the
	// assignment form at the same time.
	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		empls, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]EmployeeOption, 0, len(empls))
		for _, e := range empls {
			resp = append(resp, EmployeeOption{ID: e.ID, FullName: e.FullName})
		}

		// 3. Master data, 1h TTL is plenty.
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, EmployeeOptionsKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOption), nil
}

func (s *service) GetByID(
	ctx context.Context,
	id int64,
) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.Int64("employee_id", id))
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(
	ctx context.Context,
	id int64,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.Int64("employee_id", id))

	if strings.TrimSpace(req.FullName) == "" {
		return EmployeeResponse{}, apperror.RequiredField("Full Name")
	}
	if strings.TrimSpace(req.Role) == "" {
		return EmployeeResponse{}, apperror.RequiredField("Role")
	}
	if strings.TrimSpace(req.SalaryRate) == "" {
		return EmployeeResponse{}, apperror.RequiredField("Salary Rate")
	}
	if strings.TrimSpace(req.AssignedClient) == "" {
		return EmployeeResponse{}, apperror.RequiredField("Assigned Client")
	}

	salaryRate, err := parseAmount(req.SalaryRate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidSalaryRate
	}
	if !ValidPaymentType(req.PaymentType) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidPaymentType
	}
	status := req.Status
	if status == "" {
		status = StatusActive
	}
	if status != StatusActive && status != StatusInactive && status != StatusOnLeave {
		return EmployeeResponse{}, employeeerrors.ErrInvalidStatus
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.FullName = strings.TrimSpace(req.FullName)
	empl.Role = strings.TrimSpace(req.Role)
	empl.PaymentType = req.PaymentType
	empl.SalaryRate = salaryRate
	empl.AssignedClient = strings.TrimSpace(req.AssignedClient)
	empl.Status = status

	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("update employee success", zap.Int64("employee_id", id))

	return mapToResponse(*empl), nil
}

func (s *service) Delete(
	ctx context.Context,
	id int64,
) error {
	s.logger.Debug("delete employee requested", zap.Int64("employee_id", id))

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("delete employee success", zap.Int64("employee_id", id))
	return nil
}

// SettleAdvances flips every pending advance for the named employee to Paid.
// Called by the payroll consumer once an entry with an advance deduction is
// marked paid.
func (s *service) SettleAdvances(ctx context.Context, fullName string) (int64, error) {
	settled, err := s.repo.SettleAdvancesByEmployeeName(ctx, fullName)
	if err != nil {
		s.logger.Error("settle advances failed",
			zap.String("full_name", fullName),
			zap.Error(err),
		)
		return 0, mapRepositoryError(err)
	}

	if settled > 0 {
		s.logger.Info("advances settled",
			zap.String("full_name", fullName),
			zap.Int64("count", settled),
		)
	}
	return settled, nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", EmployeeOptionsKey),
		)
	}
}

func parseAmount(v string) (int64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, err
	}
	if f <= 0 {
		return 0, strconv.ErrRange
	}
	return int64(math.Round(f)), nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:             empl.ID,
		FullName:       empl.FullName,
		Role:           empl.Role,
		PaymentType:    empl.PaymentType,
		SalaryRate:     empl.SalaryRate,
		AssignedClient: empl.AssignedClient,
		Status:         empl.Status,
		SalaryHistory:  make([]SalaryRecordResponse, 0, len(empl.SalaryHistory)),
		Advances:       make([]AdvanceRecordResponse, 0, len(empl.Advances)),
		Assets:         make([]string, 0, len(empl.Assets)),
	}

	for _, rec := range empl.SalaryHistory {
		resp.SalaryHistory = append(resp.SalaryHistory, SalaryRecordResponse{
			Period: rec.Period,
			Amount: rec.Amount,
			Units:  rec.Units,
		})
	}
	for _, adv := range empl.Advances {
		resp.Advances = append(resp.Advances, AdvanceRecordResponse{
			Date:   adv.Date.Format("2006-01-02"),
			Amount: adv.Amount,
			Status: adv.Status,
		})
	}
	for _, asset := range empl.Assets {
		resp.Assets = append(resp.Assets, asset.Name)
	}

	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(empls))
	for i, empl := range empls {
		resp[i] = mapToResponse(empl)
	}
	return resp
}
