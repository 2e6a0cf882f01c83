package ticket

import "errors"

var (
	ErrNotFound         = errors.New("ticket not found")
	ErrDuplicate        = errors.New("ticket number already taken")
	ErrActivityNotFound = errors.New("activity record not found")
)
