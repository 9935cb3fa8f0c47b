package service

import "errors"

var (
	ErrValidation         = errors.New("validation")          // 400
	ErrConflict           = errors.New("conflict")            // 409
	ErrInvalidCredentials = errors.New("invalid credentials") // 401
	ErrUnauthenticated    = errors.New("unauthenticated")     // 401
	ErrInvalidToken       = errors.New("invalid token")       // 403
	ErrNotFound           = errors.New("not found")           // 404
)
