package repository

import "errors"

var (
	ErrNotFound          = errors.New("entity not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrUpdateFailed      = errors.New("update failed")
	ErrDeleteFailed      = errors.New("delete failed")
	ErrConnectionFailed  = errors.New("database connection failed")
)
