package repository

import (
	"context"
	"testing"

	"helpdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogOptions_OrderingAndFilters(t *testing.T) {
	db := setupDB(t)
	f := seedFixture(t, db)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	inactive := domain.TaskType{Name: "Decommissioned work", Active: false}
	urgent := domain.Priority{Name: "Critical", Level: 1, ColorHex: "#FF0000"}
	require.NoError(t, db.Create(&inactive).Error)
	require.NoError(t, db.Create(&urgent).Error)

	taskTypes, err := repo.TaskTypeOptions(ctx)
	require.NoError(t, err)
	require.Len(t, taskTypes, 1) // inactive type filtered out
	assert.Equal(t, f.taskType.ID, taskTypes[0].ID)

	priorities, err := repo.PriorityOptions(ctx)
	require.NoError(t, err)
	require.Len(t, priorities, 2)
	assert.Equal(t, "Critical", priorities[0].Label) // level 1 first
	assert.Equal(t, "Medium", priorities[1].Label)

	states, err := repo.StateOptions(ctx)
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.Equal(t, "New", states[0].Label) // flow order, not alphabetical
	assert.Equal(t, "Closed", states[1].Label)
}

func TestCatalogFullTables(t *testing.T) {
	db := setupDB(t)
	seedFixture(t, db)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	priorities, err := repo.Priorities(ctx)
	require.NoError(t, err)
	require.Len(t, priorities, 1)
	assert.Equal(t, "#FFFF00", priorities[0].ColorHex)

	states, err := repo.States(ctx)
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.False(t, states[0].IsFinal)
	assert.True(t, states[1].IsFinal)

	modes, err := repo.WorkModes(ctx)
	require.NoError(t, err)
	assert.Len(t, modes, 1)

	types, err := repo.TaskTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, types, 1)
}
