package product

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pebworks/steelquote-backend/pkg/db/models"
	"github.com/pebworks/steelquote-backend/pkg/pagination"
)

// Repository wires product master persistence.
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

// FindByCode loads one product. A missing or inactive code returns nil with
// no error so calculation passes can degrade to zero-cost rows.
func (r *Repository) FindByCode(ctx context.Context, code string) (*models.Product, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, nil
	}
	var product models.Product
	err := r.db.WithContext(ctx).
		First(&product, "code = ? AND is_active = ?", code, true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Get loads one product regardless of active flag, for management reads.
func (r *Repository) Get(ctx context.Context, code string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).First(&product, "code = ?", strings.ToUpper(strings.TrimSpace(code))).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ListFilter narrows product listings.
type ListFilter struct {
	Prefix     string
	CostCode   string
	OnlyActive bool
	Limit      int
}

// List returns products ordered by code.
func (r *Repository) List(ctx context.Context, filter ListFilter) ([]models.Product, error) {
	q := r.db.WithContext(ctx).Model(&models.Product{}).Order("code ASC")
	if filter.Prefix != "" {
		q = q.Where("code LIKE ?", strings.ToUpper(filter.Prefix)+"%")
	}
	if filter.CostCode != "" {
		q = q.Where("cost_code = ?", filter.CostCode)
	}
	if filter.OnlyActive {
		q = q.Where("is_active = ?", true)
	}
	q = q.Limit(pagination.NormalizeLimit(filter.Limit))

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Create inserts a product row.
func (r *Repository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Update persists the full product row.
func (r *Repository) Update(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// SetActive toggles the active flag without touching rates.
func (r *Repository) SetActive(ctx context.Context, code string, active bool) error {
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).
		Update("is_active", active).Error
}

// UpsertAll inserts or refreshes a batch of catalog rows, used by seeding.
func (r *Repository) UpsertAll(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"description", "unit", "unit_weight", "material_cost",
				"manufacturing_cost", "overhead_cost", "unit_price",
				"cost_code", "sales_code", "erp_code", "phase_number", "is_active",
			}),
		}).
		Create(&products).Error
}
