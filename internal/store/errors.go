package store

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyClaimed = errors.New("voucher already claimed")
	ErrAlreadyDecided = errors.New("verification already decided")
)
