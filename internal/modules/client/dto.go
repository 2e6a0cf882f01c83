package client

import "helpdesk/internal/domain"

type CreateRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`
}

type UpdateRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Active      *bool  `json:"active" binding:"required"`
}

type Response struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"company_name"`
	ContactName string `json:"contact_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country"`
	Active      bool   `json:"active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func toResponse(c *domain.Client) Response {
	return Response{
		ID:          c.ID,
		CompanyName: c.CompanyName,
		ContactName: c.ContactName,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		City:        c.City,
		Country:     c.Country,
		Active:      c.Active,
		CreatedAt:   domain.FormatDateTime(c.CreatedAt),
		UpdatedAt:   domain.FormatDateTime(c.UpdatedAt),
	}
}

func toResponseList(clients []domain.Client) []Response {
	out := make([]Response, 0, len(clients))
	for i := range clients {
		out = append(out, toResponse(&clients[i]))
	}
	return out
}
