package repository

import (
	"testing"
	"time"

	"helpdesk/internal/database"
	"helpdesk/internal/domain"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupDB opens a fresh in-memory SQLite database. The pool is pinned to a
// single connection so every query sees the same memory database.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

type fixture struct {
	technician domain.Technician
	client     domain.Client
	taskType   domain.TaskType
	workMode   domain.WorkMode
	priority   domain.Priority
	openState  domain.TicketState
	finalState domain.TicketState
}

func seedFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()

	f := fixture{
		technician: domain.Technician{
			FirstName:    "Dora",
			LastName:     "Bermudez",
			Email:        "dora@example.com",
			Login:        "dora",
			PasswordHash: "x",
			HireDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Active:       true,
		},
		client:     domain.Client{CompanyName: "Acme SL", Country: "Spain", Active: true},
		taskType:   domain.TaskType{Name: "End-user support", EstimatedHours: 1.5, DefaultPriority: "Medium", Active: true},
		workMode:   domain.WorkMode{Name: "Remote", Active: true},
		priority:   domain.Priority{Name: "Medium", Level: 3, ColorHex: "#FFFF00"},
		openState:  domain.TicketState{Name: "New", IsFinal: false, FlowOrder: 1},
		finalState: domain.TicketState{Name: "Closed", IsFinal: true, FlowOrder: 6},
	}

	require.NoError(t, db.Create(&f.technician).Error)
	require.NoError(t, db.Create(&f.client).Error)
	require.NoError(t, db.Create(&f.taskType).Error)
	require.NoError(t, db.Create(&f.workMode).Error)
	require.NoError(t, db.Create(&f.priority).Error)
	require.NoError(t, db.Create(&f.openState).Error)
	require.NoError(t, db.Create(&f.finalState).Error)
	return f
}

func (f fixture) ticket(number string, technicianID *int64, stateID int64) domain.Ticket {
	return domain.Ticket{
		Number:         number,
		ClientID:       f.client.ID,
		TechnicianID:   technicianID,
		TaskTypeID:     f.taskType.ID,
		PriorityID:     f.priority.ID,
		StateID:        stateID,
		Title:          "Ticket " + number,
		EstimatedHours: 2,
	}
}
