package expense

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=expense_repo.go -destination=mock/expense_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, exp *Expense) error
	// FindAll returns expenses newest first.
	FindAll(ctx context.Context) ([]Expense, error)
	FindByID(ctx context.Context, id int64) (*Expense, error)
	Update(ctx context.Context, exp *Expense) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, exp *Expense) error {
	return r.db.WithContext(ctx).Create(exp).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Expense, error) {
	var exps []Expense
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Find(&exps).Error
	return exps, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Expense, error) {
	var exp Expense
	err := r.db.WithContext(ctx).
		First(&exp, "id = ?", id).Error
	return &exp, err
}

func (r *repository) Update(ctx context.Context, exp *Expense) error {
	return r.db.WithContext(ctx).Save(exp).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Delete(&Expense{}, "id = ?", id).Error
}
