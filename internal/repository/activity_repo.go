package repository

import (
	"context"

	"helpdesk/internal/domain"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(ctx context.Context, a *domain.ActivityRecord) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ActivityRepository) GetByID(ctx context.Context, id int64) (*domain.ActivityRecord, error) {
	var a domain.ActivityRecord
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByTicket returns the work log of one ticket, newest activity first.
func (r *ActivityRepository) GetByTicket(ctx context.Context, ticketID int64) ([]domain.ActivityRow, error) {
	var rows []domain.ActivityRow
	err := r.db.WithContext(ctx).
		Table("activity_records AS a").
		Select(`a.id, a.ticket_id,
			t.first_name || ' ' || t.last_name AS technician_name,
			m.name AS work_mode, a.date, a.hours, a.description, a.notes,
			a.created_at`).
		Joins("JOIN technicians t ON a.technician_id = t.id").
		Joins("JOIN work_modes m ON a.work_mode_id = m.id").
		Where("a.ticket_id = ?", ticketID).
		Order("a.date DESC, a.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *ActivityRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.ActivityRecord{}, id).Error
}

func (r *ActivityRepository) CountByTicket(ctx context.Context, ticketID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.ActivityRecord{}).
		Where("ticket_id = ?", ticketID).
		Count(&n).Error
	return n, err
}
