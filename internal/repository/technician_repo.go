package repository

import (
	"context"
	"strings"

	"helpdesk/internal/domain"

	"gorm.io/gorm"
)

type TechnicianRepository struct {
	db *gorm.DB
}

func NewTechnicianRepository(db *gorm.DB) *TechnicianRepository {
	return &TechnicianRepository{db: db}
}

func (r *TechnicianRepository) Create(ctx context.Context, t *domain.Technician) error {
	t.Email = strings.TrimSpace(strings.ToLower(t.Email))
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TechnicianRepository) GetAll(ctx context.Context) ([]domain.Technician, error) {
	var technicians []domain.Technician
	err := r.db.WithContext(ctx).
		Order("last_name, first_name").
		Find(&technicians).Error
	return technicians, err
}

func (r *TechnicianRepository) GetByID(ctx context.Context, id int64) (*domain.Technician, error) {
	var t domain.Technician
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TechnicianRepository) Update(ctx context.Context, t *domain.Technician) error {
	t.Email = strings.TrimSpace(strings.ToLower(t.Email))
	// Save writes every column, including a false active flag.
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TechnicianRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Technician{}, id).Error
}

// TicketCount reports how many tickets reference the technician. A non-zero
// count blocks deletion.
func (r *TechnicianRepository) TicketCount(ctx context.Context, id int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Ticket{}).
		Where("technician_id = ?", id).
		Count(&n).Error
	return n, err
}

func (r *TechnicianRepository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Technician{}).
		Where("active = ?", true).
		Count(&n).Error
	return n, err
}

// Options returns active technicians as id -> "First Last" choices ordered
// by label.
func (r *TechnicianRepository) Options(ctx context.Context) ([]domain.CatalogOption, error) {
	var opts []domain.CatalogOption
	err := r.db.WithContext(ctx).
		Model(&domain.Technician{}).
		Select("id, first_name || ' ' || last_name AS label").
		Where("active = ?", true).
		Order("label").
		Scan(&opts).Error
	return opts, err
}
