package company

import (
	"context"
	"database/sql"
	"sync"

	"gorm.io/gorm"
)

// memoryRepository keeps the company collection in process memory for the
// session, one writer at a time, insertion order preserved.
type memoryRepository struct {
	mu     sync.RWMutex
	comps  []Company
	lastID int64
}

func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) WithTx(tx *sql.Tx) Repository {
	return r
}

func (r *memoryRepository) Create(ctx context.Context, comp *Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if comp.ID == 0 {
		comp.ID = r.lastID + 1
	}
	if comp.ID > r.lastID {
		r.lastID = comp.ID
	}
	r.comps = append(r.comps, cloneCompany(*comp))
	return nil
}

func (r *memoryRepository) FindAll(ctx context.Context) ([]Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Company, 0, len(r.comps))
	for _, c := range r.comps {
		out = append(out, cloneCompany(c))
	}
	return out, nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id int64) (*Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.comps {
		if c.ID == id {
			clone := cloneCompany(c)
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryRepository) Update(ctx context.Context, comp *Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.comps {
		if c.ID == comp.ID {
			r.comps[i] = cloneCompany(*comp)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.comps {
		if c.ID == id {
			r.comps = append(r.comps[:i], r.comps[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func cloneCompany(c Company) Company {
	clone := c
	clone.AssignedEmployees = append([]Assignment(nil), c.AssignedEmployees...)
	clone.Invoices = append([]Invoice(nil), c.Invoices...)
	clone.PaymentHistory = append([]Payment(nil), c.PaymentHistory...)
	return clone
}
