package domain

import "errors"

// Catalog errors
var (
	ErrDuplicateID  = errors.New("book id already exists")
	ErrBookNotFound = errors.New("book not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Lending errors
var (
	ErrAlreadyIssued = errors.New("borrower already has this book issued")
	ErrAlreadyQueued = errors.New("borrower is already in the waiting list")
	ErrNoActiveLoan  = errors.New("borrower has no active loan for this book")
)

// UserErrors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)
