package service

import "errors"

var (
	ErrValidation = errors.New("validation") // 400
	ErrNotFound   = errors.New("not found")  // 404
	ErrEmpty      = errors.New("empty")      // soft empty-collection condition
)
