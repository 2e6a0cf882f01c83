package client

import (
	"context"
	"errors"

	"helpdesk/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	repo ClientRepo
}

func NewService(repo ClientRepo) *Service {
	return &Service{repo: repo}
}

type Input struct {
	CompanyName string
	ContactName string
	Email       string
	Phone       string
	Address     string
	City        string
	Country     string
	Active      bool
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Client, error) {
	country := in.Country
	if country == "" {
		country = "Spain"
	}

	c := &domain.Client{
		CompanyName: in.CompanyName,
		ContactName: in.ContactName,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		City:        in.City,
		Country:     country,
		Active:      true,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Client, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (*domain.Client, error) {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.CompanyName = in.CompanyName
	c.ContactName = in.ContactName
	c.Email = in.Email
	c.Phone = in.Phone
	c.Address = in.Address
	c.City = in.City
	if in.Country != "" {
		c.Country = in.Country
	}
	c.Active = in.Active

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete refuses to remove a client still referenced by tickets.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	n, err := s.repo.TicketCount(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrInUse
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) Options(ctx context.Context) ([]domain.CatalogOption, error) {
	return s.repo.Options(ctx)
}
