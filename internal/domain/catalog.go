package domain

import "time"

// Master data: fixed lookup tables seeded once and rarely mutated.

type TaskType struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name" gorm:"size:200;uniqueIndex;not null"`
	Description     string    `json:"description,omitempty" gorm:"type:text"`
	EstimatedHours  float64   `json:"estimated_hours,omitempty"`
	DefaultPriority string    `json:"default_priority" gorm:"size:20;default:Medium"`
	Active          bool      `json:"active" gorm:"default:true"`
	CreatedAt       time.Time `json:"created_at"`
}

func (TaskType) TableName() string { return "task_types" }

type WorkMode struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" gorm:"size:50;uniqueIndex;not null"`
	Description string `json:"description,omitempty" gorm:"type:text"`
	Active      bool   `json:"active" gorm:"default:true"`
}

func (WorkMode) TableName() string { return "work_modes" }

// Priority level 1 is the most urgent.
type Priority struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" gorm:"size:20;uniqueIndex;not null"`
	Level       int    `json:"level" gorm:"not null"`
	ColorHex    string `json:"color_hex,omitempty" gorm:"size:7"`
	Description string `json:"description,omitempty" gorm:"type:text"`
}

func (Priority) TableName() string { return "priorities" }

// TicketState is a step in the ticket lifecycle. IsFinal marks terminal
// states; a ticket is open exactly when its state is not final.
type TicketState struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" gorm:"size:50;uniqueIndex;not null"`
	Description string `json:"description,omitempty" gorm:"type:text"`
	IsFinal     bool   `json:"is_final" gorm:"default:false"`
	FlowOrder   int    `json:"flow_order"`
}

func (TicketState) TableName() string { return "ticket_states" }

// CatalogOption is one entry of an id->label projection used to populate
// selection widgets. Options are returned already ordered.
type CatalogOption struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}
