package technician

import "errors"

var (
	ErrNotFound  = errors.New("technician not found")
	ErrDuplicate = errors.New("email or login already taken")
	ErrInUse     = errors.New("technician is referenced by tickets")
)
