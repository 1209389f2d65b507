package expense

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	expenseerrors "go-paydesk/internal/expense/errors"
	"go-paydesk/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=expense_service.go -destination=mock/expense_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateExpenseRequest) (ExpenseResponse, error)
	GetAll(ctx context.Context, category string) ([]ExpenseResponse, error)
	CategoryTotals(ctx context.Context) ([]CategoryTotal, error)
	GetByID(ctx context.Context, id int64) (ExpenseResponse, error)
	Update(ctx context.Context, id int64, req UpdateExpenseRequest) (ExpenseResponse, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("expense.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("expense.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	req CreateExpenseRequest,
) (ExpenseResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create expense requested",
		zap.String("request_id", rid),
		zap.String("category", req.Category),
	)

	amount, err := parseAmount(req.Amount)
	if err != nil {
		s.logger.Warn("create expense invalid amount",
			zap.String("amount", req.Amount),
			zap.Error(err),
		)
		return ExpenseResponse{}, expenseerrors.ErrInvalidAmount
	}

	if !ValidCategory(req.Category) {
		return ExpenseResponse{}, expenseerrors.ErrInvalidCategory
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if strings.TrimSpace(req.Date) != "" {
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			return ExpenseResponse{}, expenseerrors.ErrInvalidDateFormat
		}
	}

	notes := strings.TrimSpace(req.Notes)
	if notes == "" {
		notes = DefaultNotes
	}

	exp := &Expense{
		Date:     date,
		Category: req.Category,
		Amount:   amount,
		Notes:    notes,
	}

	if err := s.repo.Create(ctx, exp); err != nil {
		s.logger.Error("create expense persist failed", zap.String("request_id", rid), zap.Error(err))
		return ExpenseResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create expense success",
		zap.String("request_id", rid),
		zap.Int64("expense_id", exp.ID),
	)

	return mapToResponse(*exp), nil
}

func (s *service) GetAll(
	ctx context.Context,
	category string,
) ([]ExpenseResponse, error) {
	exps, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all expenses failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	if category != "" && category != "All" {
		filtered := make([]Expense, 0, len(exps))
		for _, e := range exps {
			if e.Category == category {
				filtered = append(filtered, e)
			}
		}
		exps = filtered
	}

	return mapToListResponse(exps), nil
}

// CategoryTotals reports one row per category in the fixed enum order; a
// category with no expenses reports 0, never goes missing.
func (s *service) CategoryTotals(ctx context.Context) ([]CategoryTotal, error) {
	exps, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("category totals failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	sums := make(map[string]int64, len(Categories))
	for _, e := range exps {
		sums[e.Category] += e.Amount
	}

	totals := make([]CategoryTotal, 0, len(Categories))
	for _, c := range Categories {
		totals = append(totals, CategoryTotal{Category: c, Total: sums[c]})
	}
	return totals, nil
}

func (s *service) GetByID(
	ctx context.Context,
	id int64,
) (ExpenseResponse, error) {
	exp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get expense by id failed", zap.Error(err))
		return ExpenseResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*exp), nil
}

func (s *service) Update(
	ctx context.Context,
	id int64,
	req UpdateExpenseRequest,
) (ExpenseResponse, error) {
	s.logger.Debug("update expense requested", zap.Int64("expense_id", id))

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return ExpenseResponse{}, expenseerrors.ErrInvalidAmount
	}
	if !ValidCategory(req.Category) {
		return ExpenseResponse{}, expenseerrors.ErrInvalidCategory
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return ExpenseResponse{}, expenseerrors.ErrInvalidDateFormat
	}

	exp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update expense fetch existing failed", zap.Error(err))
		return ExpenseResponse{}, mapRepositoryError(err)
	}

	notes := strings.TrimSpace(req.Notes)
	if notes == "" {
		notes = DefaultNotes
	}

	exp.Date = date
	exp.Category = req.Category
	exp.Amount = amount
	exp.Notes = notes

	if err := s.repo.Update(ctx, exp); err != nil {
		s.logger.Error("update expense persist failed", zap.Error(err))
		return ExpenseResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update expense success", zap.Int64("expense_id", id))

	return mapToResponse(*exp), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	s.logger.Debug("delete expense requested", zap.Int64("expense_id", id))

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete expense failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete expense success", zap.Int64("expense_id", id))
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return expenseerrors.ErrExpenseNotFound
	}
	return err
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

func mapToResponse(exp Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:       exp.ID,
		Date:     exp.Date.Format("2006-01-02"),
		Category: exp.Category,
		Amount:   exp.Amount,
		Notes:    exp.Notes,
	}
}

func mapToListResponse(exps []Expense) []ExpenseResponse {
	resp := make([]ExpenseResponse, len(exps))
	for i, exp := range exps {
		resp[i] = mapToResponse(exp)
	}
	return resp
}
