package kafka

import (
	"context"
	"database/sql"
	"sync"
	"time"
)

// memoryOutbox backs the memory store mode: events are queued in process and
// drained by the same producer worker running as a goroutine inside the API
// instead of a separate cmd/worker.
type memoryOutbox struct {
	mu     sync.Mutex
	events []OutboxEvent
}

func NewMemoryOutbox() OutboxRepository {
	return &memoryOutbox{}
}

func (m *memoryOutbox) WithTx(tx *sql.Tx) OutboxRepository {
	return m
}

func (m *memoryOutbox) Create(ctx context.Context, event OutboxEvent) error {
	if err := ValidateOutboxEvent(event); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *memoryOutbox) ListPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	out := make([]OutboxEvent, 0, limit)
	for _, e := range m.events {
		if len(out) >= limit {
			break
		}
		if e.Status != OutboxStatusPending && e.Status != OutboxStatusFailed {
			continue
		}
		if !e.NextRetryAt.IsZero() && e.NextRetryAt.After(now) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (m *memoryOutbox) MarkSent(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.events {
		if m.events[i].ID == id {
			m.events[i].Status = OutboxStatusSent
			return nil
		}
	}
	return nil
}

func (m *memoryOutbox) MarkFailed(ctx context.Context, id string, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.events {
		if m.events[i].ID == id {
			m.events[i].Status = OutboxStatusFailed
			m.events[i].RetryCount++
			backoff := m.events[i].RetryCount
			if backoff > 10 {
				backoff = 10
			}
			m.events[i].NextRetryAt = time.Now().Add(time.Duration(backoff) * 15 * time.Second)
			return nil
		}
	}
	return nil
}
