package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrProductNotFound    = errors.New("product not found")
	ErrDeliveryNotFound   = errors.New("delivery not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidStatus      = errors.New("invalid delivery status")
	ErrMissingField       = errors.New("missing required field")
)
