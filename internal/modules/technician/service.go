package technician

import (
	"context"
	"errors"
	"strings"
	"time"

	"helpdesk/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	repo TechnicianRepo
}

func NewService(repo TechnicianRepo) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	FirstName string
	LastName  string
	Email     string
	Login     string
	Password  string
	Phone     string
	Specialty string
	HireDate  time.Time
}

type UpdateInput struct {
	FirstName string
	LastName  string
	Email     string
	Login     string
	Phone     string
	Specialty string
	HireDate  time.Time
	Active    bool
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Technician, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	t := &domain.Technician{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Login:        in.Login,
		PasswordHash: string(hash),
		Phone:        in.Phone,
		Specialty:    in.Specialty,
		HireDate:     in.HireDate,
		Active:       true,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Technician, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Technician, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*domain.Technician, error) {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	t.FirstName = in.FirstName
	t.LastName = in.LastName
	t.Email = in.Email
	t.Login = in.Login
	t.Phone = in.Phone
	t.Specialty = in.Specialty
	t.HireDate = in.HireDate
	t.Active = in.Active

	if err := s.repo.Update(ctx, t); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return t, nil
}

// Delete refuses to remove a technician who is still referenced by tickets;
// such technicians are deactivated via Update instead.
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

func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
