package kafka_test

import (
	"context"
	"testing"

	"go-paydesk/internal/messaging/kafka"

	"github.com/stretchr/testify/assert"
)

func pendingEvent(id string) kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            id,
		AggregateType: "payroll_entry",
		AggregateID:   "1",
		EventType:     "payroll_status_changed",
		Topic:         "paydesk.payroll.status.v1",
		Payload:       []byte(`{"entry_id":1}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestMemoryOutbox_CreateAndListPending(t *testing.T) {
	ctx := context.Background()
	outbox := kafka.NewMemoryOutbox()

	assert.NoError(t, outbox.Create(ctx, pendingEvent("evt-1")))
	assert.NoError(t, outbox.Create(ctx, pendingEvent("evt-2")))
	assert.NoError(t, outbox.Create(ctx, pendingEvent("evt-3")))

	t.Run("lists in insertion order up to the limit", func(t *testing.T) {
		events, err := outbox.ListPending(ctx, 2)
		assert.NoError(t, err)
		assert.Len(t, events, 2)
		assert.Equal(t, "evt-1", events[0].ID)
		assert.Equal(t, "evt-2", events[1].ID)
	})

	t.Run("sent events drop out", func(t *testing.T) {
		assert.NoError(t, outbox.MarkSent(ctx, "evt-1"))

		events, err := outbox.ListPending(ctx, 10)
		assert.NoError(t, err)
		assert.Len(t, events, 2)
		assert.Equal(t, "evt-2", events[0].ID)
	})

	t.Run("failed events back off before retrying", func(t *testing.T) {
		assert.NoError(t, outbox.MarkFailed(ctx, "evt-2", "broker unreachable"))

		events, err := outbox.ListPending(ctx, 10)
		assert.NoError(t, err)
		assert.Len(t, events, 1)
		assert.Equal(t, "evt-3", events[0].ID)
	})
}

func TestMemoryOutbox_CreateRejectsInvalidEvents(t *testing.T) {
	ctx := context.Background()
	outbox := kafka.NewMemoryOutbox()

	t.Run("negative missing id", func(t *testing.T) {
		evt := pendingEvent("")
		assert.Error(t, outbox.Create(ctx, evt))
	})

	t.Run("negative missing topic", func(t *testing.T) {
		evt := pendingEvent("evt-1")
		evt.Topic = ""
		assert.Error(t, outbox.Create(ctx, evt))
	})

	t.Run("negative empty payload", func(t *testing.T) {
		evt := pendingEvent("evt-1")
		evt.Payload = nil
		assert.Error(t, outbox.Create(ctx, evt))
	})

	t.Run("negative unknown status", func(t *testing.T) {
		evt := pendingEvent("evt-1")
		evt.Status = "queued"
		assert.Error(t, outbox.Create(ctx, evt))
	})
}
