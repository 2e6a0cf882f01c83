package repository

import (
	"context"
	"testing"
	"time"

	"helpdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTechnicianCreate_NormalizesEmail(t *testing.T) {
	db := setupDB(t)
	repo := NewTechnicianRepository(db)
	ctx := context.Background()

	tech := domain.Technician{
		FirstName:    "Ines",
		LastName:     "Romero",
		Email:        "Ines.Romero@Example.com",
		Login:        "ines",
		PasswordHash: "x",
		HireDate:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Active:       true,
	}
	require.NoError(t, repo.Create(ctx, &tech))

	got, err := repo.GetByID(ctx, tech.ID)
	require.NoError(t, err)
	assert.Equal(t, "ines.romero@example.com", got.Email)
}

func TestTechnicianCreate_DuplicateEmail(t *testing.T) {
	db := setupDB(t)
	f := seedFixture(t, db)
	repo := NewTechnicianRepository(db)
	ctx := context.Background()

	dup := domain.Technician{
		FirstName:    "Other",
		LastName:     "Person",
		Email:        f.technician.Email,
		Login:        "other",
		PasswordHash: "x",
		HireDate:     time.Now(),
		Active:       true,
	}
	err := repo.Create(ctx, &dup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE")

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestTechnicianOptions_ActiveOnly(t *testing.T) {
	db := setupDB(t)
	f := seedFixture(t, db)
	repo := NewTechnicianRepository(db)
	ctx := context.Background()

	inactive := domain.Technician{
		FirstName:    "Gone",
		LastName:     "Away",
		Email:        "gone@example.com",
		Login:        "gone",
		PasswordHash: "x",
		HireDate:     time.Now(),
		Active:       false,
	}
	require.NoError(t, db.Create(&inactive).Error)

	opts, err := repo.Options(ctx)
	require.NoError(t, err)
	require.Len(t, opts, 1)
	assert.Equal(t, f.technician.ID, opts[0].ID)
	assert.Equal(t, "Dora Bermudez", opts[0].Label)
}

func TestTechnicianTicketCount(t *testing.T) {
	db := setupDB(t)
	f := seedFixture(t, db)
	technicians := NewTechnicianRepository(db)
	tickets := NewTicketRepository(db)
	ctx := context.Background()

	n, err := technicians.TicketCount(ctx, f.technician.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	tk := f.ticket("TCK-0100", &f.technician.ID, f.openState.ID)
	require.NoError(t, tickets.Create(ctx, &tk))

	n, err = technicians.TicketCount(ctx, f.technician.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
