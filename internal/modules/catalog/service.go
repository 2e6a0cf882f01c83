package catalog

import (
	"context"

	"helpdesk/internal/domain"
)

// CatalogSource reads the full master tables, descriptions and priority
// colors included, unlike the id->label option projections.
type CatalogSource interface {
	TaskTypes(ctx context.Context) ([]domain.TaskType, error)
	WorkModes(ctx context.Context) ([]domain.WorkMode, error)
	Priorities(ctx context.Context) ([]domain.Priority, error)
	States(ctx context.Context) ([]domain.TicketState, error)
}

type Service struct {
	source CatalogSource
}

func NewService(source CatalogSource) *Service {
	return &Service{source: source}
}

type Catalogs struct {
	TaskTypes  []domain.TaskType    `json:"task_types"`
	WorkModes  []domain.WorkMode    `json:"work_modes"`
	Priorities []domain.Priority    `json:"priorities"`
	States     []domain.TicketState `json:"states"`
}

func (s *Service) All(ctx context.Context) (*Catalogs, error) {
	out := &Catalogs{}
	var err error

	if out.TaskTypes, err = s.source.TaskTypes(ctx); err != nil {
		return nil, err
	}
	if out.WorkModes, err = s.source.WorkModes(ctx); err != nil {
		return nil, err
	}
	if out.Priorities, err = s.source.Priorities(ctx); err != nil {
		return nil, err
	}
	if out.States, err = s.source.States(ctx); err != nil {
		return nil, err
	}
	return out, nil
}
