package estimation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pebworks/steelquote-backend/pkg/db/models"
	"github.com/pebworks/steelquote-backend/pkg/enums"
	"github.com/pebworks/steelquote-backend/pkg/pagination"
)

// Repository wires estimation persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create inserts the estimation row.
func (r *Repository) Create(ctx context.Context, row *models.Estimation) (*models.Estimation, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// FindByID loads one estimation. Missing rows return nil without error.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Estimation, error) {
	var row models.Estimation
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListFilter narrows estimation listings.
type ListFilter struct {
	Status    enums.EstimationStatus
	JobNumber string
	Page      pagination.Params
}

// List returns a page of estimations newest first, cursor-paginated on
// (created_at, id).
func (r *Repository) List(ctx context.Context, filter ListFilter) ([]models.Estimation, string, error) {
	q := r.db.WithContext(ctx).Model(&models.Estimation{}).
		Order("created_at DESC, id DESC")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.JobNumber != "" {
		q = q.Where("job_number = ?", filter.JobNumber)
	}

	cursor, err := pagination.ParseCursor(filter.Page.Cursor)
	if err != nil {
		return nil, "", err
	}
	if cursor != nil {
		q = q.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}

	limit := pagination.NormalizeLimit(filter.Page.Limit)
	var rows []models.Estimation
	if err := q.Limit(limit + 1).Find(&rows).Error; err != nil {
		return nil, "", err
	}

	next := ""
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return rows, next, nil
}

// Save persists the full row.
func (r *Repository) Save(ctx context.Context, row *models.Estimation) (*models.Estimation, error) {
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Delete removes the row permanently.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Estimation{}, "id = ?", id).Error
}

// TransitionStatus flips the status only when the row currently holds one
// of the expected states. Reports whether the guard matched, which is the
// concurrency gate keeping two calculate calls off the same row.
func (r *Repository) TransitionStatus(ctx context.Context, id uuid.UUID, to enums.EstimationStatus, from ...enums.EstimationStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Estimation{}).
		Where("id = ? AND status IN ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
