package company

import (
	"context"
	"math"
	"strconv"
	"strings"

	companyerrors "go-paydesk/internal/company/errors"
	"go-paydesk/internal/shared/apperror"
	"go-paydesk/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error)
	GetAll(ctx context.Context) ([]CompanyResponse, error)
	GetByID(ctx context.Context, id int64) (CompanyResponse, error)
	Revenue(ctx context.Context) (RevenueResponse, error)
	Update(ctx context.Context, id int64, req UpdateCompanyRequest) (CompanyResponse, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	req CreateCompanyRequest,
) (CompanyResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create company requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
	)

	if strings.TrimSpace(req.Name) == "" {
		return CompanyResponse{}, apperror.RequiredField("Company Name")
	}

	charge, err := parseCharge(req.MonthlyCharge)
	if err != nil {
		s.logger.Warn("create company invalid monthly charge",
			zap.String("monthly_charge", req.MonthlyCharge),
			zap.Error(err),
		)
		return CompanyResponse{}, companyerrors.ErrInvalidMonthlyCharge
	}

	serviceType := strings.TrimSpace(req.ServiceType)
	if serviceType == "" {
		serviceType = DefaultServiceType
	}

	comp := &Company{
		Name:              strings.TrimSpace(req.Name),
		ServiceType:       serviceType,
		MonthlyCharge:     charge,
		PaymentStatus:     PaymentStatusPending,
		AssignedEmployees: splitEmployeeNames(req.AssignedEmployees),
		Invoices:          []Invoice{},
		PaymentHistory:    []Payment{},
	}

	if err := s.repo.Create(ctx, comp); err != nil {
		s.logger.Error("create company persist failed", zap.String("request_id", rid), zap.Error(err))
		return CompanyResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create company success",
		zap.String("request_id", rid),
		zap.Int64("company_id", comp.ID),
	)

	return mapToResponse(*comp), nil
}

func (s *service) GetAll(ctx context.Context) ([]CompanyResponse, error) {
	comps, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all companies failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(comps), nil
}

func (s *service) GetByID(
	ctx context.Context,
	id int64,
) (CompanyResponse, error) {
	comp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get company by id failed", zap.Error(err))
		return CompanyResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*comp), nil
}

// Revenue recomputes the dashboard revenue cards on every call. The data is
// tens of rows, so there is nothing to cache here.
func (s *service) Revenue(ctx context.Context) (RevenueResponse, error) {
	comps, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("revenue query failed", zap.Error(err))
		return RevenueResponse{}, mapRepositoryError(err)
	}

	var rev RevenueResponse
	for _, c := range comps {
		rev.Total += c.MonthlyCharge
		switch c.PaymentStatus {
		case PaymentStatusPaid:
			rev.Paid += c.MonthlyCharge
		case PaymentStatusPending:
			rev.Pending += c.MonthlyCharge
		}
	}

	return rev, nil
}

func (s *service) Update(
	ctx context.Context,
	id int64,
	req UpdateCompanyRequest,
) (CompanyResponse, error) {
	s.logger.Debug("update company requested", zap.Int64("company_id", id))

	if strings.TrimSpace(req.Name) == "" {
		return CompanyResponse{}, apperror.RequiredField("Company Name")
	}

	charge, err := parseCharge(req.MonthlyCharge)
	if err != nil {
		return CompanyResponse{}, companyerrors.ErrInvalidMonthlyCharge
	}

	status := req.PaymentStatus
	if status == "" {
		status = PaymentStatusPending
	}
	if status != PaymentStatusPaid && status != PaymentStatusPending {
		return CompanyResponse{}, companyerrors.ErrInvalidPaymentStatus
	}

	comp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update company fetch existing failed", zap.Error(err))
		return CompanyResponse{}, mapRepositoryError(err)
	}

	comp.Name = strings.TrimSpace(req.Name)
	comp.ServiceType = strings.TrimSpace(req.ServiceType)
	if comp.ServiceType == "" {
		comp.ServiceType = DefaultServiceType
	}
	comp.MonthlyCharge = charge
	comp.PaymentStatus = status
	comp.AssignedEmployees = splitEmployeeNames(req.AssignedEmployees)

	if err := s.repo.Update(ctx, comp); err != nil {
		s.logger.Error("update company persist failed", zap.Error(err))
		return CompanyResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update company success", zap.Int64("company_id", id))

	return mapToResponse(*comp), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	s.logger.Debug("delete company requested", zap.Int64("company_id", id))

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete company failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete company success", zap.Int64("company_id", id))
	return nil
}

func parseCharge(v string) (int64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, err
	}
	if f <= 0 {
		return 0, strconv.ErrRange
	}
	return int64(math.Round(f)), nil
}

func splitEmployeeNames(v string) []Assignment {
	parts := strings.Split(v, ",")
	out := make([]Assignment, 0, len(parts))
	for _, p := range parts {
		name := strings.TrimSpace(p)
		if name == "" {
			continue
		}
		out = append(out, Assignment{EmployeeName: name})
	}
	return out
}

func mapToResponse(comp Company) CompanyResponse {
	resp := CompanyResponse{
		ID:                comp.ID,
		Name:              comp.Name,
		ServiceType:       comp.ServiceType,
		MonthlyCharge:     comp.MonthlyCharge,
		PaymentStatus:     comp.PaymentStatus,
		AssignedEmployees: make([]string, 0, len(comp.AssignedEmployees)),
		Invoices:          make([]InvoiceResponse, 0, len(comp.Invoices)),
		PaymentHistory:    make([]PaymentResponse, 0, len(comp.PaymentHistory)),
	}

	for _, a := range comp.AssignedEmployees {
		resp.AssignedEmployees = append(resp.AssignedEmployees, a.EmployeeName)
	}
	for _, inv := range comp.Invoices {
		item := InvoiceResponse{
			Month:  inv.Month,
			Amount: inv.Amount,
			Status: inv.Status,
		}
		if inv.PaidDate != nil {
			v := inv.PaidDate.Format("2006-01-02")
			item.PaidDate = &v
		}
		resp.Invoices = append(resp.Invoices, item)
	}
	for _, pay := range comp.PaymentHistory {
		resp.PaymentHistory = append(resp.PaymentHistory, PaymentResponse{
			Date:   pay.Date.Format("2006-01-02"),
			Amount: pay.Amount,
			Method: pay.Method,
		})
	}

	return resp
}

func mapToListResponse(comps []Company) []CompanyResponse {
	resp := make([]CompanyResponse, len(comps))
	for i, comp := range comps {
		resp[i] = mapToResponse(comp)
	}
	return resp
}
