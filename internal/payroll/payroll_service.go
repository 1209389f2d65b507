package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"go-paydesk/internal/events"
	"go-paydesk/internal/messaging/kafka"
	payrollerrors "go-paydesk/internal/payroll/errors"
	"go-paydesk/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, partition string) ([]PayrollEntryResponse, error)
	GetByID(ctx context.Context, id int64) (PayrollEntryResponse, error)
	Stats(ctx context.Context, partition string) (PayrollStatsResponse, error)
	Approve(ctx context.Context, id int64) (PayrollEntryResponse, error)
	MarkPaid(ctx context.Context, id int64) (PayrollEntryResponse, error)
	Payslip(ctx context.Context, id int64) ([]byte, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(nil, repo, nil, logger...)
}

// NewServiceWithOutbox wires the notification pipeline. With a SQL store the
// outbox row commits in the same transaction as the status change; in memory
// mode db is nil and the event is queued directly.
func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
	}
}

// NewEntry validates the fixed amounts once, at construction. Transitions
// never touch them again.
func NewEntry(employeeName, partition string, calculatedAmount, advanceDeduction int64) (*PayrollEntry, error) {
	if !ValidPartition(partition) {
		return nil, payrollerrors.ErrInvalidPartition
	}
	if calculatedAmount < 0 || advanceDeduction < 0 {
		return nil, payrollerrors.ErrNegativeAmount
	}
	if advanceDeduction > calculatedAmount {
		return nil, payrollerrors.ErrAdvanceExceedsCalculated
	}
	return &PayrollEntry{
		EmployeeName:     employeeName,
		PaymentType:      partition,
		CalculatedAmount: calculatedAmount,
		AdvanceDeduction: advanceDeduction,
		Status:           StatusPending,
	}, nil
}

func (s *service) GetAll(
	ctx context.Context,
	partition string,
) ([]PayrollEntryResponse, error) {
	if !ValidPartition(partition) {
		return nil, payrollerrors.ErrInvalidPartition
	}

	entries, err := s.repo.FindAllByPartition(ctx, partition)
	if err != nil {
		s.logger.Error("get payroll entries failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(entries), nil
}

func (s *service) GetByID(
	ctx context.Context,
	id int64,
) (PayrollEntryResponse, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get payroll entry failed", zap.Error(err))
		return PayrollEntryResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*entry), nil
}

// Stats recomputes on every call; with tens of entries per partition there is
// nothing worth caching.
func (s *service) Stats(
	ctx context.Context,
	partition string,
) (PayrollStatsResponse, error) {
	if !ValidPartition(partition) {
		return PayrollStatsResponse{}, payrollerrors.ErrInvalidPartition
	}

	entries, err := s.repo.FindAllByPartition(ctx, partition)
	if err != nil {
		s.logger.Error("payroll stats failed", zap.Error(err))
		return PayrollStatsResponse{}, mapRepositoryError(err)
	}

	var stats PayrollStatsResponse
	for _, e := range entries {
		final := e.FinalPayable()
		stats.Total += final
		switch e.Status {
		case StatusApproved, StatusPaid:
			stats.Approved += final
		case StatusPending:
			stats.Pending += final
		}
	}

	return stats, nil
}

func (s *service) Approve(ctx context.Context, id int64) (PayrollEntryResponse, error) {
	return s.transition(ctx, id, StatusApproved)
}

func (s *service) MarkPaid(ctx context.Context, id int64) (PayrollEntryResponse, error) {
	return s.transition(ctx, id, StatusPaid)
}

// transition is the single write path for payroll status. It re-validates
// the current status regardless of what the UI rendered: the action button
// may be stale by the time the request lands.
func (s *service) transition(
	ctx context.Context,
	id int64,
	target string,
) (PayrollEntryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("payroll transition requested",
		zap.String("request_id", rid),
		zap.Int64("entry_id", id),
		zap.String("target_status", target),
	)

	var tx *sql.Tx
	qtx := s.repo
	if s.db != nil {
		var err error
		tx, err = s.db.BeginTx(ctx, nil)
		if err != nil {
			s.logger.Error("payroll transition begin tx failed", zap.String("request_id", rid), zap.Error(err))
			return PayrollEntryResponse{}, err
		}
		defer tx.Rollback()
		qtx = s.repo.WithTx(tx)
	}

	entry, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("payroll transition fetch failed", zap.Error(err))
		return PayrollEntryResponse{}, mapRepositoryError(err)
	}

	fromStatus := entry.Status
	if !canTransition(fromStatus, target) {
		s.logger.Warn("payroll transition rejected",
			zap.Int64("entry_id", id),
			zap.String("from_status", fromStatus),
			zap.String("target_status", target),
		)
		return PayrollEntryResponse{}, payrollerrors.ErrInvalidStatusTransition
	}

	now := time.Now().UTC()
	entry.Status = target
	switch target {
	case StatusApproved:
		entry.ApprovedAt = &now
	case StatusPaid:
		entry.PaidAt = &now
	}

	// The guarded update re-checks the stored status so a concurrent
	// transition cannot slip through between fetch and write.
	if err := qtx.UpdateStatus(ctx, entry, fromStatus); err != nil {
		if errors.Is(err, ErrStatusConflict) {
			s.logger.Warn("payroll transition lost race",
				zap.Int64("entry_id", id),
				zap.String("target_status", target),
			)
			return PayrollEntryResponse{}, payrollerrors.ErrInvalidStatusTransition
		}
		s.logger.Error("payroll transition persist failed", zap.Error(err))
		return PayrollEntryResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.PayrollStatusChangedEvent{
			EventType:        "payroll_status_changed",
			RequestID:        rid,
			EntryID:          entry.ID,
			EmployeeName:     entry.EmployeeName,
			Partition:        entry.PaymentType,
			FromStatus:       fromStatus,
			ToStatus:         target,
			FinalPayable:     entry.FinalPayable(),
			AdvanceDeduction: entry.AdvanceDeduction,
			OccurredAt:       now,
		}

		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal payroll event failed", zap.String("request_id", rid), zap.Error(err))
			return PayrollEntryResponse{}, err
		}

		outboxRepo := s.outbox
		if tx != nil {
			outboxRepo = s.outbox.WithTx(tx)
		}
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "payroll_entry",
			AggregateID:   strconv.FormatInt(entry.ID, 10),
			EventType:     event.EventType,
			Topic:         events.PayrollStatusChangedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("payroll transition outbox persist failed",
				zap.Int64("entry_id", entry.ID),
				zap.Error(err),
			)
			return PayrollEntryResponse{}, err
		}
	}

	if tx != nil {
		if err := tx.Commit(); err != nil {
			s.logger.Error("payroll transition commit failed", zap.String("request_id", rid), zap.Error(err))
			return PayrollEntryResponse{}, err
		}
	}

	s.logger.Info("payroll transition success",
		zap.String("request_id", rid),
		zap.Int64("entry_id", entry.ID),
		zap.String("from_status", fromStatus),
		zap.String("to_status", target),
	)

	return mapToResponse(*entry), nil
}

func (s *service) Payslip(ctx context.Context, id int64) ([]byte, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	lines := []string{
		"Payslip",
		"Employee: " + entry.EmployeeName,
		"Payment type: " + entry.PaymentType,
		"Calculated amount: AED " + strconv.FormatInt(entry.CalculatedAmount, 10),
		"Advance deduction: AED " + strconv.FormatInt(entry.AdvanceDeduction, 10),
		"Final payable: AED " + strconv.FormatInt(entry.FinalPayable(), 10),
		"Status: " + entry.Status,
	}

	return buildSimplePayslipPDF(lines)
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrPayrollNotFound
	}
	return err
}

func mapToResponse(entry PayrollEntry) PayrollEntryResponse {
	resp := PayrollEntryResponse{
		ID:               entry.ID,
		EmployeeName:     entry.EmployeeName,
		PaymentType:      entry.PaymentType,
		CalculatedAmount: entry.CalculatedAmount,
		AdvanceDeduction: entry.AdvanceDeduction,
		FinalPayable:     entry.FinalPayable(),
		Status:           entry.Status,
	}

	if entry.ApprovedAt != nil {
		v := entry.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	if entry.PaidAt != nil {
		v := entry.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &v
	}

	return resp
}

func mapToListResponse(entries []PayrollEntry) []PayrollEntryResponse {
	resp := make([]PayrollEntryResponse, len(entries))
	for i, entry := range entries {
		resp[i] = mapToResponse(entry)
	}
	return resp
}
