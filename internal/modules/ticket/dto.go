package ticket

import "helpdesk/internal/domain"

type CreateRequest struct {
	Number         string  `json:"number" binding:"required"`
	ClientID       int64   `json:"client_id" binding:"required"`
	TechnicianID   *int64  `json:"technician_id"`
	TaskTypeID     int64   `json:"task_type_id" binding:"required"`
	PriorityID     int64   `json:"priority_id" binding:"required"`
	StateID        int64   `json:"state_id" binding:"required"`
	Title          string  `json:"title" binding:"required"`
	Description    string  `json:"description"`
	EstimatedHours float64 `json:"estimated_hours"`
}

type UpdateRequest struct {
	Number         string  `json:"number" binding:"required"`
	ClientID       int64   `json:"client_id" binding:"required"`
	TechnicianID   *int64  `json:"technician_id"`
	TaskTypeID     int64   `json:"task_type_id" binding:"required"`
	PriorityID     int64   `json:"priority_id" binding:"required"`
	StateID        int64   `json:"state_id" binding:"required"`
	Title          string  `json:"title" binding:"required"`
	Description    string  `json:"description"`
	EstimatedHours float64 `json:"estimated_hours"`
	AssignedAt     string  `json:"assigned_at"`
	ClosedAt       string  `json:"closed_at"`
}

type ActivityRequest struct {
	TechnicianID int64   `json:"technician_id" binding:"required"`
	WorkModeID   int64   `json:"work_mode_id" binding:"required"`
	Date         string  `json:"date" binding:"required"`
	Hours        float64 `json:"hours" binding:"required,gt=0"`
	Description  string  `json:"description"`
	Notes        string  `json:"notes"`
}

type Response struct {
	ID             int64   `json:"id"`
	Number         string  `json:"number"`
	ClientID       int64   `json:"client_id"`
	TechnicianID   *int64  `json:"technician_id,omitempty"`
	TaskTypeID     int64   `json:"task_type_id"`
	PriorityID     int64   `json:"priority_id"`
	StateID        int64   `json:"state_id"`
	Title          string  `json:"title"`
	Description    string  `json:"description,omitempty"`
	EstimatedHours float64 `json:"estimated_hours,omitempty"`
	AssignedAt     string  `json:"assigned_at,omitempty"`
	ClosedAt       string  `json:"closed_at,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

func toResponse(t *domain.Ticket) Response {
	return Response{
		ID:             t.ID,
		Number:         t.Number,
		ClientID:       t.ClientID,
		TechnicianID:   t.TechnicianID,
		TaskTypeID:     t.TaskTypeID,
		PriorityID:     t.PriorityID,
		StateID:        t.StateID,
		Title:          t.Title,
		Description:    t.Description,
		EstimatedHours: t.EstimatedHours,
		AssignedAt:     domain.FormatDateTimePtr(t.AssignedAt),
		ClosedAt:       domain.FormatDateTimePtr(t.ClosedAt),
		CreatedAt:      domain.FormatDateTime(t.CreatedAt),
		UpdatedAt:      domain.FormatDateTime(t.UpdatedAt),
	}
}

type RowResponse struct {
	ID             int64  `json:"id"`
	Number         string `json:"number"`
	ClientName     string `json:"client_name"`
	TechnicianName string `json:"technician_name"`
	TaskType       string `json:"task_type"`
	Priority       string `json:"priority"`
	PriorityLevel  int    `json:"priority_level"`
	State          string `json:"state"`
	Open           bool   `json:"open"`
	Title          string `json:"title"`
	CreatedAt      string `json:"created_at"`
}

func toRowResponses(rows []domain.TicketRow) []RowResponse {
	out := make([]RowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, RowResponse{
			ID:             r.ID,
			Number:         r.Number,
			ClientName:     r.ClientName,
			TechnicianName: r.TechnicianName,
			TaskType:       r.TaskType,
			Priority:       r.Priority,
			PriorityLevel:  r.PriorityLevel,
			State:          r.State,
			Open:           !r.IsFinal,
			Title:          r.Title,
			CreatedAt:      domain.FormatDateTime(r.CreatedAt),
		})
	}
	return out
}

type DetailResponse struct {
	Response

	ClientName     string `json:"client_name"`
	TechnicianName string `json:"technician_name"`
	TaskTypeName   string `json:"task_type_name"`
	PriorityName   string `json:"priority_name"`
	StateName      string `json:"state_name"`
	Open           bool   `json:"open"`
}

func toDetailResponse(d *domain.TicketDetail) DetailResponse {
	return DetailResponse{
		Response: Response{
			ID:             d.ID,
			Number:         d.Number,
			ClientID:       d.ClientID,
			TechnicianID:   d.TechnicianID,
			TaskTypeID:     d.TaskTypeID,
			PriorityID:     d.PriorityID,
			StateID:        d.StateID,
			Title:          d.Title,
			Description:    d.Description,
			EstimatedHours: d.EstimatedHours,
			AssignedAt:     domain.FormatDateTimePtr(d.AssignedAt),
			ClosedAt:       domain.FormatDateTimePtr(d.ClosedAt),
			CreatedAt:      domain.FormatDateTime(d.CreatedAt),
			UpdatedAt:      domain.FormatDateTime(d.UpdatedAt),
		},
		ClientName:     d.ClientName,
		TechnicianName: d.TechnicianName,
		TaskTypeName:   d.TaskTypeName,
		PriorityName:   d.PriorityName,
		StateName:      d.StateName,
		Open:           !d.StateIsFinal,
	}
}

type ActivityResponse struct {
	ID             int64   `json:"id"`
	TicketID       int64   `json:"ticket_id"`
	TechnicianName string  `json:"technician_name,omitempty"`
	WorkMode       string  `json:"work_mode,omitempty"`
	Date           string  `json:"date"`
	Hours          float64 `json:"hours"`
	Description    string  `json:"description,omitempty"`
	Notes          string  `json:"notes,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

func toActivityResponses(rows []domain.ActivityRow) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ActivityResponse{
			ID:             r.ID,
			TicketID:       r.TicketID,
			TechnicianName: r.TechnicianName,
			WorkMode:       r.WorkMode,
			Date:           domain.FormatDate(r.Date),
			Hours:          r.Hours,
			Description:    r.Description,
			Notes:          r.Notes,
			CreatedAt:      domain.FormatDateTime(r.CreatedAt),
		})
	}
	return out
}
