package store

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrMissingReference   = errors.New("payment reference is required")
	ErrProductGone        = errors.New("cart references a product no longer in the catalog")
	ErrNotFound           = errors.New("record not found")
)
