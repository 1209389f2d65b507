package company

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, comp *Company) error
	FindAll(ctx context.Context) ([]Company, error)
	FindByID(ctx context.Context, id int64) (*Company, error)
	Update(ctx context.Context, comp *Company) error
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

func (r *repository) Create(ctx context.Context, comp *Company) error {
	return r.db.WithContext(ctx).Create(comp).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Company, error) {
	var comps []Company
	err := r.db.WithContext(ctx).
		Preload("AssignedEmployees").
		Preload("Invoices").
		Preload("PaymentHistory").
		Order("id ASC").
		Find(&comps).Error
	return comps, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Company, error) {
	var comp Company
	err := r.db.WithContext(ctx).
		Preload("AssignedEmployees").
		Preload("Invoices").
		Preload("PaymentHistory").
		First(&comp, "id = ?", id).Error
	return &comp, err
}

func (r *repository) Update(ctx context.Context, comp *Company) error {
	return r.db.WithContext(ctx).Save(comp).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Delete(&Company{}, "id = ?", id).Error
}
