package client

import (
	"context"
	"testing"

	"helpdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockClientRepo struct {
	mock.Mock
}

func (m *MockClientRepo) Create(ctx context.Context, c *domain.Client) error {
	args := m.Called(ctx, c)
	if c != nil {
		c.ID = 7 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockClientRepo) GetAll(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepo) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepo) Update(ctx context.Context, c *domain.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClientRepo) TicketCount(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClientRepo) Options(ctx context.Context) ([]domain.CatalogOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CatalogOption), args.Error(1)
}

func TestCreate_DefaultsCountry(t *testing.T) {
	repo := new(MockClientRepo)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	created, err := svc.Create(context.Background(), Input{CompanyName: "Acme SL"})
	assert.NoError(t, err)
	assert.Equal(t, "Spain", created.Country)
	assert.True(t, created.Active)

	created, err = svc.Create(context.Background(), Input{CompanyName: "Beta GmbH", Country: "Germany"})
	assert.NoError(t, err)
	assert.Equal(t, "Germany", created.Country)
}

func TestDelete_RefusedWhileReferenced(t *testing.T) {
	repo := new(MockClientRepo)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Client{ID: 1, CompanyName: "Acme SL"}, nil)
	repo.On("TicketCount", mock.Anything, int64(1)).Return(int64(2), nil)

	err := svc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInUse)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_NotFound(t *testing.T) {
	repo := new(MockClientRepo)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}
