package ticket

import (
	"context"
	"errors"
	"strings"
	"time"

	"helpdesk/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	tickets     TicketRepo
	activities  ActivityRepo
	catalogs    CatalogReader
	clients     OptionSource
	technicians OptionSource
}

func NewService(
	tickets TicketRepo,
	activities ActivityRepo,
	catalogs CatalogReader,
	clients OptionSource,
	technicians OptionSource,
) *Service {
	return &Service{
		tickets:     tickets,
		activities:  activities,
		catalogs:    catalogs,
		clients:     clients,
		technicians: technicians,
	}
}

type CreateInput struct {
	Number         string
	ClientID       int64
	TechnicianID   *int64
	TaskTypeID     int64
	PriorityID     int64
	StateID        int64
	Title          string
	Description    string
	EstimatedHours float64
}

type UpdateInput struct {
	Number         string
	ClientID       int64
	TechnicianID   *int64
	TaskTypeID     int64
	PriorityID     int64
	StateID        int64
	Title          string
	Description    string
	EstimatedHours float64
	AssignedAt     *time.Time
	ClosedAt       *time.Time
}

type ActivityInput struct {
	TechnicianID int64
	WorkModeID   int64
	Date         time.Time
	Hours        float64
	Description  string
	Notes        string
}

// FormOptions carries every choice list the ticket form needs. The
// technician select additionally offers an implicit "unassigned" entry,
// represented by omitting the id.
type FormOptions struct {
	Clients     []domain.CatalogOption `json:"clients"`
	Technicians []domain.CatalogOption `json:"technicians"`
	TaskTypes   []domain.CatalogOption `json:"task_types"`
	Priorities  []domain.CatalogOption `json:"priorities"`
	States      []domain.CatalogOption `json:"states"`
	WorkModes   []domain.CatalogOption `json:"work_modes"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Ticket, error) {
	state, err := s.catalogs.GetState(ctx, in.StateID)
	if err != nil {
		return nil, err
	}

	t := &domain.Ticket{
		Number:         strings.TrimSpace(in.Number),
		ClientID:       in.ClientID,
		TechnicianID:   in.TechnicianID,
		TaskTypeID:     in.TaskTypeID,
		PriorityID:     in.PriorityID,
		StateID:        in.StateID,
		Title:          in.Title,
		Description:    in.Description,
		EstimatedHours: in.EstimatedHours,
	}

	// Assignment and closure timestamps follow the chosen technician and
	// state; callers cannot set them independently.
	now := time.Now()
	if t.TechnicianID != nil {
		t.AssignedAt = &now
	}
	if state.IsFinal {
		t.ClosedAt = &now
	}

	if err := s.tickets.Create(ctx, t); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) GetAll(ctx context.Context) ([]domain.TicketRow, error) {
	return s.tickets.GetAll(ctx)
}

func (s *Service) GetDetail(ctx context.Context, id int64) (*domain.TicketDetail, error) {
	d, err := s.tickets.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*domain.Ticket, error) {
	t, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	state, err := s.catalogs.GetState(ctx, in.StateID)
	if err != nil {
		return nil, err
	}

	t.Number = strings.TrimSpace(in.Number)
	t.ClientID = in.ClientID
	t.TechnicianID = in.TechnicianID
	t.TaskTypeID = in.TaskTypeID
	t.PriorityID = in.PriorityID
	t.StateID = in.StateID
	t.Title = in.Title
	t.Description = in.Description
	t.EstimatedHours = in.EstimatedHours
	t.AssignedAt = in.AssignedAt
	t.ClosedAt = in.ClosedAt

	// Keep the timestamps consistent with the chosen technician and state:
	// assigned-at requires a technician, closed-at requires a final state.
	now := time.Now()
	if t.TechnicianID == nil {
		t.AssignedAt = nil
	} else if t.AssignedAt == nil {
		t.AssignedAt = &now
	}
	if !state.IsFinal {
		t.ClosedAt = nil
	} else if t.ClosedAt == nil {
		t.ClosedAt = &now
	}

	if err := s.tickets.Update(ctx, t); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return t, nil
}

// Delete removes the ticket and, in the same transaction, every activity
// record logged against it.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.tickets.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.tickets.Delete(ctx, id)
}

func (s *Service) Options(ctx context.Context) (*FormOptions, error) {
	opts := &FormOptions{}
	var err error

	if opts.Clients, err = s.clients.Options(ctx); err != nil {
		return nil, err
	}
	if opts.Technicians, err = s.technicians.Options(ctx); err != nil {
		return nil, err
	}
	if opts.TaskTypes, err = s.catalogs.TaskTypeOptions(ctx); err != nil {
		return nil, err
	}
	if opts.Priorities, err = s.catalogs.PriorityOptions(ctx); err != nil {
		return nil, err
	}
	if opts.States, err = s.catalogs.StateOptions(ctx); err != nil {
		return nil, err
	}
	if opts.WorkModes, err = s.catalogs.WorkModeOptions(ctx); err != nil {
		return nil, err
	}
	return opts, nil
}

func (s *Service) AddActivity(ctx context.Context, ticketID int64, in ActivityInput) (*domain.ActivityRecord, error) {
	if _, err := s.tickets.GetByID(ctx, ticketID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	a := &domain.ActivityRecord{
		TicketID:     ticketID,
		TechnicianID: in.TechnicianID,
		WorkModeID:   in.WorkModeID,
		Date:         in.Date,
		Hours:        in.Hours,
		Description:  in.Description,
		Notes:        in.Notes,
	}
	if err := s.activities.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Activities(ctx context.Context, ticketID int64) ([]domain.ActivityRow, error) {
	if _, err := s.tickets.GetByID(ctx, ticketID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.activities.GetByTicket(ctx, ticketID)
}

func (s *Service) DeleteActivity(ctx context.Context, ticketID, activityID int64) error {
	a, err := s.activities.GetByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrActivityNotFound
		}
		return err
	}
	if a.TicketID != ticketID {
		return ErrActivityNotFound
	}
	return s.activities.Delete(ctx, activityID)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
