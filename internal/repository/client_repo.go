package repository

import (
	"context"

	"helpdesk/internal/domain"

	"gorm.io/gorm"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClientRepository) GetAll(ctx context.Context) ([]domain.Client, error) {
	var clients []domain.Client
	err := r.db.WithContext(ctx).
		Order("company_name").
		Find(&clients).Error
	return clients, err
}

func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	var c domain.Client
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Client{}, id).Error
}

// TicketCount reports how many tickets reference the client. A non-zero
// count blocks deletion.
func (r *ClientRepository) TicketCount(ctx context.Context, id int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Ticket{}).
		Where("client_id = ?", id).
		Count(&n).Error
	return n, err
}

func (r *ClientRepository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Client{}).
		Where("active = ?", true).
		Count(&n).Error
	return n, err
}

func (r *ClientRepository) Options(ctx context.Context) ([]domain.CatalogOption, error) {
	var opts []domain.CatalogOption
	err := r.db.WithContext(ctx).
		Model(&domain.Client{}).
		Select("id, company_name AS label").
		Where("active = ?", true).
		Order("label").
		Scan(&opts).Error
	return opts, err
}
