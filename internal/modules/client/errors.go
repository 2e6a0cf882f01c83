package client

import "errors"

var (
	ErrNotFound = errors.New("client not found")
	ErrInUse    = errors.New("client is referenced by tickets")
)
