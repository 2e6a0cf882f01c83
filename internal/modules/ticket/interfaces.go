package ticket

import (
	"context"

	"helpdesk/internal/domain"
)

type TicketRepo interface {
	Create(ctx context.Context, t *domain.Ticket) error
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	GetDetail(ctx context.Context, id int64) (*domain.TicketDetail, error)
	GetAll(ctx context.Context) ([]domain.TicketRow, error)
	Update(ctx context.Context, t *domain.Ticket) error
	Delete(ctx context.Context, id int64) error
}

type ActivityRepo interface {
	Create(ctx context.Context, a *domain.ActivityRecord) error
	GetByID(ctx context.Context, id int64) (*domain.ActivityRecord, error)
	GetByTicket(ctx context.Context, ticketID int64) ([]domain.ActivityRow, error)
	Delete(ctx context.Context, id int64) error
}

type CatalogReader interface {
	GetState(ctx context.Context, id int64) (*domain.TicketState, error)
	TaskTypeOptions(ctx context.Context) ([]domain.CatalogOption, error)
	WorkModeOptions(ctx context.Context) ([]domain.CatalogOption, error)
	PriorityOptions(ctx context.Context) ([]domain.CatalogOption, error)
	StateOptions(ctx context.Context) ([]domain.CatalogOption, error)
}

// OptionSource is an id->label projection of another entity, used for the
// client and technician selects on the ticket form.
type OptionSource interface {
	Options(ctx context.Context) ([]domain.CatalogOption, error)
}
