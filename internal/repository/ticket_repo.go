package repository

import (
	"context"

	"helpdesk/internal/domain"

	"gorm.io/gorm"
)

type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

const ticketRowSelect = `
	tk.id, tk.number, c.company_name AS client_name,
	COALESCE(t.first_name || ' ' || t.last_name, '') AS technician_name,
	tt.name AS task_type, p.name AS priority, p.level AS priority_level,
	s.name AS state, s.is_final, tk.title, tk.created_at`

// left joins so that a ticket with no assigned technician still appears
func (r *TicketRepository) rowQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("tickets AS tk").
		Joins("LEFT JOIN clients c ON tk.client_id = c.id").
		Joins("LEFT JOIN technicians t ON tk.technician_id = t.id").
		Joins("LEFT JOIN task_types tt ON tk.task_type_id = tt.id").
		Joins("LEFT JOIN priorities p ON tk.priority_id = p.id").
		Joins("LEFT JOIN ticket_states s ON tk.state_id = s.id")
}

func (r *TicketRepository) Create(ctx context.Context, t *domain.Ticket) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TicketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	var t domain.Ticket
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// GetDetail returns one ticket with its reference labels resolved.
func (r *TicketRepository) GetDetail(ctx context.Context, id int64) (*domain.TicketDetail, error) {
	var d domain.TicketDetail
	err := r.rowQuery(ctx).
		Select(`tk.*, c.company_name AS client_name,
			COALESCE(t.first_name || ' ' || t.last_name, '') AS technician_name,
			tt.name AS task_type_name, p.name AS priority_name,
			s.name AS state_name, s.is_final AS state_is_final`).
		Where("tk.id = ?", id).
		Scan(&d).Error
	if err != nil {
		return nil, err
	}
	if d.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	if d.TechnicianName == "" {
		d.TechnicianName = domain.UnassignedLabel
	}
	return &d, nil
}

// GetAll returns display rows for every ticket, newest first.
func (r *TicketRepository) GetAll(ctx context.Context) ([]domain.TicketRow, error) {
	var rows []domain.TicketRow
	err := r.rowQuery(ctx).
		Select(ticketRowSelect).
		Order("tk.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	labelUnassigned(rows)
	return rows, nil
}

// Recent returns the newest display rows for the dashboard.
func (r *TicketRepository) Recent(ctx context.Context, limit int) ([]domain.TicketRow, error) {
	var rows []domain.TicketRow
	err := r.rowQuery(ctx).
		Select(ticketRowSelect).
		Order("tk.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	labelUnassigned(rows)
	return rows, nil
}

func labelUnassigned(rows []domain.TicketRow) {
	for i := range rows {
		if rows[i].TechnicianName == "" {
			rows[i].TechnicianName = domain.UnassignedLabel
		}
	}
}

func (r *TicketRepository) Update(ctx context.Context, t *domain.Ticket) error {
	return r.db.WithContext(ctx).Save(t).Error
}

// Delete removes a ticket and its activity records in one transaction:
// either both deletions land or neither does.
func (r *TicketRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ticket_id = ?", id).Delete(&domain.ActivityRecord{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Ticket{}, id).Error
	})
}

func (r *TicketRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Ticket{}).Count(&n).Error
	return n, err
}

// CountOpen counts tickets whose state is not final. Open/closed is derived
// from the state, never stored on the ticket.
func (r *TicketRepository) CountOpen(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("tickets AS tk").
		Joins("JOIN ticket_states s ON tk.state_id = s.id").
		Where("s.is_final = ?", false).
		Count(&n).Error
	return n, err
}
