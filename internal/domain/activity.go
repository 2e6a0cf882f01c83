package domain

import "time"

// ActivityRecord is logged work against a ticket. Records are removed in
// cascade when their ticket is deleted.
type ActivityRecord struct {
	ID           int64     `json:"id"`
	TicketID     int64     `json:"ticket_id" gorm:"index;not null"`
	TechnicianID int64     `json:"technician_id" gorm:"index;not null"`
	WorkModeID   int64     `json:"work_mode_id" gorm:"index;not null"`
	Date         time.Time `json:"date" gorm:"index:idx_activity_records_date;not null"`
	Hours        float64   `json:"hours" gorm:"not null"`
	Description  string    `json:"description,omitempty" gorm:"type:text"`
	Notes        string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`

	Ticket     *Ticket     `json:"-" gorm:"foreignKey:TicketID"`
	Technician *Technician `json:"-" gorm:"foreignKey:TechnicianID"`
	WorkMode   *WorkMode   `json:"-" gorm:"foreignKey:WorkModeID"`
}

func (ActivityRecord) TableName() string { return "activity_records" }

// ActivityRow is an activity record with technician and work mode labels
// resolved for tabular rendering.
type ActivityRow struct {
	ID             int64     `json:"id"`
	TicketID       int64     `json:"ticket_id"`
	TechnicianName string    `json:"technician_name"`
	WorkMode       string    `json:"work_mode"`
	Date           time.Time `json:"date"`
	Hours          float64   `json:"hours"`
	Description    string    `json:"description,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
