package employee

import (
	"context"
	"database/sql"
	"sync"

	"gorm.io/gorm"
)

// memoryRepository is the session-scoped record store: collections live in
// process memory for the lifetime of the server, exactly like the reference
// dashboard keeps them for the lifetime of a tab. One writer at a time per
// collection; reads hand out copies so callers cannot alias store state.
type memoryRepository struct {
	mu     sync.RWMutex
	empls  []Employee
	lastID int64
}

func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) WithTx(tx *sql.Tx) Repository {
	// No transactional backend in memory mode.
	return r
}

func (r *memoryRepository) Create(ctx context.Context, empl *Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Full names are the cross-reference key (company assignments, payroll
	// entries), so the memory store enforces the same uniqueness the SQL
	// schema gets from uq_employee_full_name.
	for _, e := range r.empls {
		if e.FullName == empl.FullName {
			return gorm.ErrDuplicatedKey
		}
	}

	if empl.ID == 0 {
		empl.ID = r.lastID + 1
	}
	if empl.ID > r.lastID {
		r.lastID = empl.ID
	}
	r.empls = append(r.empls, cloneEmployee(*empl))
	return nil
}

func (r *memoryRepository) FindAll(ctx context.Context) ([]Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Employee, 0, len(r.empls))
	for _, e := range r.empls {
		out = append(out, cloneEmployee(e))
	}
	return out, nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id int64) (*Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.empls {
		if e.ID == id {
			c := cloneEmployee(e)
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryRepository) FindOptions(ctx context.Context) ([]Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Employee, 0, len(r.empls))
	for _, e := range r.empls {
		if e.Status != StatusActive {
			continue
		}
		out = append(out, Employee{ID: e.ID, FullName: e.FullName})
	}
	return out, nil
}

func (r *memoryRepository) Update(ctx context.Context, empl *Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.empls {
		if e.ID != empl.ID && e.FullName == empl.FullName {
			return gorm.ErrDuplicatedKey
		}
	}

	for i, e := range r.empls {
		if e.ID == empl.ID {
			r.empls[i] = cloneEmployee(*empl)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.empls {
		if e.ID == id {
			r.empls = append(r.empls[:i], r.empls[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memoryRepository) SettleAdvancesByEmployeeName(ctx context.Context, fullName string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var settled int64
	for i := range r.empls {
		if r.empls[i].FullName != fullName {
			continue
		}
		for j := range r.empls[i].Advances {
			if r.empls[i].Advances[j].Status == AdvancePending {
				r.empls[i].Advances[j].Status = AdvancePaid
				settled++
			}
		}
	}
	return settled, nil
}

func cloneEmployee(e Employee) Employee {
	c := e
	c.SalaryHistory = append([]SalaryRecord(nil), e.SalaryHistory...)
	c.Advances = append([]AdvanceRecord(nil), e.Advances...)
	c.Assets = append([]Asset(nil), e.Assets...)
	return c
}
