package payroll

import (
	"context"
	"database/sql"
	"sync"

	"gorm.io/gorm"
)

// memoryRepository is the session store for payroll entries. The mutex gives
// the at-most-one-writer guarantee each transition relies on: two concurrent
// transitions can never interleave on the same entry.
type memoryRepository struct {
	mu      sync.RWMutex
	entries []PayrollEntry
	lastID  int64
}

func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) WithTx(tx *sql.Tx) Repository {
	return r
}

func (r *memoryRepository) Create(ctx context.Context, entry *PayrollEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == 0 {
		entry.ID = r.lastID + 1
	}
	if entry.ID > r.lastID {
		r.lastID = entry.ID
	}
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *memoryRepository) FindAllByPartition(ctx context.Context, partition string) ([]PayrollEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]PayrollEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if e.PaymentType == partition {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id int64) (*PayrollEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.ID == id {
			clone := e
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryRepository) Update(ctx context.Context, entry *PayrollEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.ID == entry.ID {
			r.entries[i] = *entry
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memoryRepository) UpdateStatus(ctx context.Context, entry *PayrollEntry, expectedStatus string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.ID != entry.ID {
			continue
		}
		if e.Status != expectedStatus {
			return ErrStatusConflict
		}
		r.entries[i] = *entry
		return nil
	}
	return gorm.ErrRecordNotFound
}
