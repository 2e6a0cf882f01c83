package domain

import "time"

// Client is a company the helpdesk serves.
type Client struct {
	ID          int64     `json:"id"`
	CompanyName string    `json:"company_name" gorm:"size:200;index:idx_clients_company_name;not null"`
	ContactName string    `json:"contact_name,omitempty" gorm:"size:150"`
	Email       string    `json:"email,omitempty" gorm:"size:150"`
	Phone       string    `json:"phone,omitempty" gorm:"size:20"`
	Address     string    `json:"address,omitempty" gorm:"type:text"`
	City        string    `json:"city,omitempty" gorm:"size:100"`
	Country     string    `json:"country" gorm:"size:100;default:Spain"`
	Active      bool      `json:"active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Client) TableName() string { return "clients" }
