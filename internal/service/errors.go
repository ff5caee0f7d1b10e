package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")

	ErrValidationNameRequired     = errors.New("name is required")
	ErrValidationCategoryRequired = errors.New("category is required")
	ErrValidationUnknownCategory  = errors.New("unknown category")
	ErrValidationUnitRequired     = errors.New("unit is required")
	ErrValidationUnknownUnit      = errors.New("unknown unit")
	ErrValidationNegativeQuantity = errors.New("quantity must not be negative")
	ErrValidationQuantityNotAbove = errors.New("quantity must be greater than zero")
	ErrValidationUnknownStatus    = errors.New("unknown project status")
)
