package technician

import "helpdesk/internal/domain"

type CreateRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Login     string `json:"login" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Phone     string `json:"phone"`
	Specialty string `json:"specialty"`
	HireDate  string `json:"hire_date" binding:"required"`
}

type UpdateRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Login     string `json:"login" binding:"required"`
	Phone     string `json:"phone"`
	Specialty string `json:"specialty"`
	HireDate  string `json:"hire_date" binding:"required"`
	Active    *bool  `json:"active" binding:"required"`
}

type Response struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Login     string `json:"login"`
	Phone     string `json:"phone,omitempty"`
	Specialty string `json:"specialty,omitempty"`
	HireDate  string `json:"hire_date"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toResponse(t *domain.Technician) Response {
	return Response{
		ID:        t.ID,
		FirstName: t.FirstName,
		LastName:  t.LastName,
		Email:     t.Email,
		Login:     t.Login,
		Phone:     t.Phone,
		Specialty: t.Specialty,
		HireDate:  domain.FormatDate(t.HireDate),
		Active:    t.Active,
		CreatedAt: domain.FormatDateTime(t.CreatedAt),
		UpdatedAt: domain.FormatDateTime(t.UpdatedAt),
	}
}

func toResponseList(technicians []domain.Technician) []Response {
	out := make([]Response, 0, len(technicians))
	for i := range technicians {
		out = append(out, toResponse(&technicians[i]))
	}
	return out
}
