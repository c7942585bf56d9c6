package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrValidationUsername = errors.New("username must be 3 to 80 characters")
	ErrValidationPassword = errors.New("password must be at least 6 characters")
	ErrValidationTitle    = errors.New("title is required and must be at most 120 characters")
	ErrValidationAuthor   = errors.New("author is required and must be at most 80 characters")
	ErrValidationYear     = errors.New("year must be between 1000 and 2100")
	ErrValidationLoanIDs  = errors.New("user ID and book ID must be positive")

	ErrValidationLoanDate   = errors.New("loan date is required")
	ErrValidationReturnDate = errors.New("return date is required")
)
