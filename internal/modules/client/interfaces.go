package client

import (
	"context"

	"helpdesk/internal/domain"
)

type ClientRepo interface {
	Create(ctx context.Context, c *domain.Client) error
	GetAll(ctx context.Context) ([]domain.Client, error)
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id int64) error
	TicketCount(ctx context.Context, id int64) (int64, error)
	Options(ctx context.Context) ([]domain.CatalogOption, error)
}
