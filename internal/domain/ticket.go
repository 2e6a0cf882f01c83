package domain

import "time"

// UnassignedLabel is the display label for a ticket without a technician.
const UnassignedLabel = "Unassigned"

type Ticket struct {
	ID             int64      `json:"id"`
	Number         string     `json:"number" gorm:"column:number;size:20;uniqueIndex;not null"`
	ClientID       int64      `json:"client_id" gorm:"index;not null"`
	TechnicianID   *int64     `json:"technician_id,omitempty" gorm:"index"`
	TaskTypeID     int64      `json:"task_type_id" gorm:"index;not null"`
	PriorityID     int64      `json:"priority_id" gorm:"index;not null"`
	StateID        int64      `json:"state_id" gorm:"index;not null"`
	Title          string     `json:"title" gorm:"size:200;not null"`
	Description    string     `json:"description,omitempty" gorm:"type:text"`
	EstimatedHours float64    `json:"estimated_hours,omitempty"`
	AssignedAt     *time.Time `json:"assigned_at,omitempty"`
	ClosedAt       *time.Time `json:"closed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at" gorm:"index:idx_tickets_created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Client     *Client      `json:"-" gorm:"foreignKey:ClientID"`
	Technician *Technician  `json:"-" gorm:"foreignKey:TechnicianID"`
	TaskType   *TaskType    `json:"-" gorm:"foreignKey:TaskTypeID"`
	Priority   *Priority    `json:"-" gorm:"foreignKey:PriorityID"`
	State      *TicketState `json:"-" gorm:"foreignKey:StateID"`
}

func (Ticket) TableName() string { return "tickets" }

// TicketRow is the denormalized listing row: FK labels resolved via left
// joins so a ticket without an assigned technician still appears.
type TicketRow struct {
	ID             int64     `json:"id"`
	Number         string    `json:"number"`
	ClientName     string    `json:"client_name"`
	TechnicianName string    `json:"technician_name"`
	TaskType       string    `json:"task_type"`
	Priority       string    `json:"priority"`
	PriorityLevel  int       `json:"priority_level"`
	State          string    `json:"state"`
	IsFinal        bool      `json:"is_final"`
	Title          string    `json:"title"`
	CreatedAt      time.Time `json:"created_at"`
}

// TicketDetail is a single ticket with its resolved labels, as shown on the
// edit screen.
type TicketDetail struct {
	ID             int64      `json:"id"`
	Number         string     `json:"number"`
	ClientID       int64      `json:"client_id"`
	TechnicianID   *int64     `json:"technician_id,omitempty"`
	TaskTypeID     int64      `json:"task_type_id"`
	PriorityID     int64      `json:"priority_id"`
	StateID        int64      `json:"state_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	EstimatedHours float64    `json:"estimated_hours,omitempty"`
	AssignedAt     *time.Time `json:"assigned_at,omitempty"`
	ClosedAt       *time.Time `json:"closed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	ClientName     string `json:"client_name"`
	TechnicianName string `json:"technician_name"`
	TaskTypeName   string `json:"task_type_name"`
	PriorityName   string `json:"priority_name"`
	StateName      string `json:"state_name"`
	StateIsFinal   bool   `json:"state_is_final"`
}
