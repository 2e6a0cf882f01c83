package domain

import "time"

// Technician is a support staff member tickets can be assigned to.
// Technicians referenced by tickets are deactivated instead of deleted.
type Technician struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"first_name" gorm:"size:100;not null"`
	LastName     string    `json:"last_name" gorm:"size:100;not null"`
	Email        string    `json:"email" gorm:"size:150;uniqueIndex;not null"`
	Login        string    `json:"login" gorm:"size:50;uniqueIndex:idx_technicians_login;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	Phone        string    `json:"phone,omitempty" gorm:"size:20"`
	Specialty    string    `json:"specialty,omitempty" gorm:"size:100"`
	HireDate     time.Time `json:"hire_date" gorm:"not null"`
	Active       bool      `json:"active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Technician) TableName() string { return "technicians" }

// FullName is the catalog label for technician selection.
func (t Technician) FullName() string {
	return t.FirstName + " " + t.LastName
}
