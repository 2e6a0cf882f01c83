package dashboard

import (
	"context"

	"helpdesk/internal/domain"
)

const recentLimit = 5

type TicketCounter interface {
	Count(ctx context.Context) (int64, error)
	CountOpen(ctx context.Context) (int64, error)
	Recent(ctx context.Context, limit int) ([]domain.TicketRow, error)
}

type ActiveCounter interface {
	CountActive(ctx context.Context) (int64, error)
}

type Service struct {
	tickets     TicketCounter
	technicians ActiveCounter
	clients     ActiveCounter
}

func NewService(tickets TicketCounter, technicians, clients ActiveCounter) *Service {
	return &Service{tickets: tickets, technicians: technicians, clients: clients}
}

type Stats struct {
	TotalTickets      int64              `json:"total_tickets"`
	OpenTickets       int64              `json:"open_tickets"`
	ActiveTechnicians int64              `json:"active_technicians"`
	ActiveClients     int64              `json:"active_clients"`
	RecentTickets     []domain.TicketRow `json:"recent_tickets"`
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	var err error

	if stats.TotalTickets, err = s.tickets.Count(ctx); err != nil {
		return nil, err
	}
	if stats.OpenTickets, err = s.tickets.CountOpen(ctx); err != nil {
		return nil, err
	}
	if stats.ActiveTechnicians, err = s.technicians.CountActive(ctx); err != nil {
		return nil, err
	}
	if stats.ActiveClients, err = s.clients.CountActive(ctx); err != nil {
		return nil, err
	}
	if stats.RecentTickets, err = s.tickets.Recent(ctx, recentLimit); err != nil {
		return nil, err
	}
	return stats, nil
}
