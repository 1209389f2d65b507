package consumer

import (
	"context"
	"encoding/json"

	"go-paydesk/internal/employee"
	"go-paydesk/internal/events"
	"go-paydesk/internal/payroll"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumePayrollStatus settles pending employee advances once a payroll entry
// that deducted an advance is marked paid. Other transitions are committed
// and skipped.
func ConsumePayrollStatus(
	ctx context.Context,
	reader *kafkago.Reader,
	employeeService employee.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_status")
	log.Info("payroll status consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll status consumer stopped")
				return
			}
			log.Error("fetch payroll status message failed", zap.Error(err))
			continue
		}

		var event events.PayrollStatusChangedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payroll_status_changed event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if event.ToStatus != payroll.StatusPaid || event.AdvanceDeduction <= 0 {
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		settled, err := employeeService.SettleAdvances(ctx, event.EmployeeName)
		if err != nil {
			log.Error("settle advances from payroll event failed",
				zap.String("employee_name", event.EmployeeName),
				zap.Int64("entry_id", event.EntryID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payroll status message failed", zap.Error(err))
			continue
		}

		log.Info("advances settled from payroll event",
			zap.String("employee_name", event.EmployeeName),
			zap.Int64("entry_id", event.EntryID),
			zap.Int64("settled", settled),
		)
	}
}
