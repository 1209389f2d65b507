package payroll

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

// ErrStatusConflict reports that the stored status no longer matches the one
// the transition was validated against; another transition won the race.
var ErrStatusConflict = errors.New("payroll status changed concurrently")

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, entry *PayrollEntry) error
	FindAllByPartition(ctx context.Context, partition string) ([]PayrollEntry, error)
	FindByID(ctx context.Context, id int64) (*PayrollEntry, error)
	Update(ctx context.Context, entry *PayrollEntry) error
	// UpdateStatus persists a transition only if the stored status still
	// equals expectedStatus, returning ErrStatusConflict otherwise.
	UpdateStatus(ctx context.Context, entry *PayrollEntry, expectedStatus string) error
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

func (r *repository) Create(ctx context.Context, entry *PayrollEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) FindAllByPartition(ctx context.Context, partition string) ([]PayrollEntry, error) {
	var entries []PayrollEntry
	err := r.db.WithContext(ctx).
		Where("payment_type = ?", partition).
		Order("id ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*PayrollEntry, error) {
	var entry PayrollEntry
	err := r.db.WithContext(ctx).
		First(&entry, "id = ?", id).Error
	return &entry, err
}

func (r *repository) Update(ctx context.Context, entry *PayrollEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *repository) UpdateStatus(ctx context.Context, entry *PayrollEntry, expectedStatus string) error {
	res := r.db.WithContext(ctx).
		Model(&PayrollEntry{}).
		Where("id = ? AND status = ?", entry.ID, expectedStatus).
		Updates(map[string]any{
			"status":      entry.Status,
			"approved_at": entry.ApprovedAt,
			"paid_at":     entry.PaidAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}
