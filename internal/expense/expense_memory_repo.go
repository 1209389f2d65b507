package expense

import (
	"context"
	"database/sql"
	"sync"

	"gorm.io/gorm"
)

// memoryRepository prepends on create so the newest expense is always first,
// the way the reference keeps its list without re-sorting.
type memoryRepository struct {
	mu     sync.RWMutex
	exps   []Expense
	lastID int64
}

func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) WithTx(tx *sql.Tx) Repository {
	return r
}

func (r *memoryRepository) Create(ctx context.Context, exp *Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if exp.ID == 0 {
		exp.ID = r.lastID + 1
	}
	if exp.ID > r.lastID {
		r.lastID = exp.ID
	}
	r.exps = append([]Expense{*exp}, r.exps...)
	return nil
}

func (r *memoryRepository) FindAll(ctx context.Context) ([]Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Expense, len(r.exps))
	copy(out, r.exps)
	return out, nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id int64) (*Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.exps {
		if e.ID == id {
			clone := e
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryRepository) Update(ctx context.Context, exp *Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.exps {
		if e.ID == exp.ID {
			r.exps[i] = *exp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.exps {
		if e.ID == id {
			r.exps = append(r.exps[:i], r.exps[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}
