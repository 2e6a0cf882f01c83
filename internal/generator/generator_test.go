package generator

import (
	"context"
	"testing"

	"helpdesk/internal/database"
	"helpdesk/internal/domain"
	"helpdesk/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

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

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestRun_AbortsWithoutMasterData(t *testing.T) {
	db := setupDB(t) // migrated but never seeded
	gen := New(db)

	err := gen.Run(context.Background(), Counts{Technicians: 3, Clients: 3, Tickets: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run the seed loader first")

	assert.Zero(t, count(t, db, &domain.Ticket{}))
	assert.Zero(t, count(t, db, &domain.Technician{}))
	assert.Zero(t, count(t, db, &domain.Client{}))
}

func TestRun_CreatesRequestedCounts(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, seed.Run(db))
	gen := New(db)

	techsBefore := count(t, db, &domain.Technician{})
	clientsBefore := count(t, db, &domain.Client{})

	require.NoError(t, gen.Run(context.Background(), Counts{Technicians: 4, Clients: 6, Tickets: 25}))

	assert.EqualValues(t, techsBefore+4, count(t, db, &domain.Technician{}))
	assert.EqualValues(t, clientsBefore+6, count(t, db, &domain.Client{}))
	assert.EqualValues(t, 25, count(t, db, &domain.Ticket{}))
}

func TestRun_TimestampsFollowStateAndAssignment(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, seed.Run(db))
	gen := New(db)

	require.NoError(t, gen.Run(context.Background(), Counts{Technicians: 2, Clients: 2, Tickets: 40}))

	var tickets []domain.Ticket
	require.NoError(t, db.Find(&tickets).Error)
	require.Len(t, tickets, 40)

	finals := map[int64]bool{}
	var states []domain.TicketState
	require.NoError(t, db.Find(&states).Error)
	for _, s := range states {
		finals[s.ID] = s.IsFinal
	}

	for _, tk := range tickets {
		if tk.TechnicianID == nil {
			assert.Nil(t, tk.AssignedAt, "ticket %s has no technician", tk.Number)
		} else {
			require.NotNil(t, tk.AssignedAt, "ticket %s is assigned", tk.Number)
			assert.True(t, tk.AssignedAt.After(tk.CreatedAt), "ticket %s assigned before creation", tk.Number)
		}
		if finals[tk.StateID] {
			assert.NotNil(t, tk.ClosedAt, "ticket %s is in a final state", tk.Number)
		} else {
			assert.Nil(t, tk.ClosedAt, "ticket %s is open", tk.Number)
		}
	}
}

func TestRun_RerunSkipsExistingNumbers(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, seed.Run(db))
	gen := New(db)

	require.NoError(t, gen.Run(context.Background(), Counts{Tickets: 10}))
	require.NoError(t, gen.Run(context.Background(), Counts{Tickets: 10}))

	assert.EqualValues(t, 10, count(t, db, &domain.Ticket{}))
}
