package repository

import (
	"context"

	"helpdesk/internal/domain"

	"gorm.io/gorm"
)

// CatalogRepository reads the master/reference tables: task types, work
// modes, priorities and ticket states.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) TaskTypes(ctx context.Context) ([]domain.TaskType, error) {
	var types []domain.TaskType
	err := r.db.WithContext(ctx).Order("name").Find(&types).Error
	return types, err
}

func (r *CatalogRepository) WorkModes(ctx context.Context) ([]domain.WorkMode, error) {
	var modes []domain.WorkMode
	err := r.db.WithContext(ctx).Order("name").Find(&modes).Error
	return modes, err
}

func (r *CatalogRepository) Priorities(ctx context.Context) ([]domain.Priority, error) {
	var priorities []domain.Priority
	err := r.db.WithContext(ctx).Order("level").Find(&priorities).Error
	return priorities, err
}

func (r *CatalogRepository) States(ctx context.Context) ([]domain.TicketState, error) {
	var states []domain.TicketState
	err := r.db.WithContext(ctx).Order("flow_order").Find(&states).Error
	return states, err
}

func (r *CatalogRepository) GetState(ctx context.Context, id int64) (*domain.TicketState, error) {
	var s domain.TicketState
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *CatalogRepository) TaskTypeOptions(ctx context.Context) ([]domain.CatalogOption, error) {
	var opts []domain.CatalogOption
	err := r.db.WithContext(ctx).
		Model(&domain.TaskType{}).
		Select("id, name AS label").
		Where("active = ?", true).
		Order("label").
		Scan(&opts).Error
	return opts, err
}

func (r *CatalogRepository) WorkModeOptions(ctx context.Context) ([]domain.CatalogOption, error) {
	var opts []domain.CatalogOption
	err := r.db.WithContext(ctx).
		Model(&domain.WorkMode{}).
		Select("id, name AS label").
		Where("active = ?", true).
		Order("label").
		Scan(&opts).Error
	return opts, err
}

// Priorities and states carry no active flag; their options follow the
// urgency level and lifecycle flow order instead of the label.
func (r *CatalogRepository) PriorityOptions(ctx context.Context) ([]domain.CatalogOption, error) {
	var opts []domain.CatalogOption
	err := r.db.WithContext(ctx).
		Model(&domain.Priority{}).
		Select("id, name AS label").
		Order("level").
		Scan(&opts).Error
	return opts, err
}

func (r *CatalogRepository) StateOptions(ctx context.Context) ([]domain.CatalogOption, error) {
	var opts []domain.CatalogOption
	err := r.db.WithContext(ctx).
		Model(&domain.TicketState{}).
		Select("id, name AS label").
		Order("flow_order").
		Scan(&opts).Error
	return opts, err
}
