package technician

import (
	"context"

	"helpdesk/internal/domain"
)

type TechnicianRepo interface {
	Create(ctx context.Context, t *domain.Technician) error
	GetAll(ctx context.Context) ([]domain.Technician, error)
	GetByID(ctx context.Context, id int64) (*domain.Technician, error)
	Update(ctx context.Context, t *domain.Technician) error
	Delete(ctx context.Context, id int64) error
	TicketCount(ctx context.Context, id int64) (int64, error)
	Options(ctx context.Context) ([]domain.CatalogOption, error)
}
