package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Expense validation errors. The messages are part of the API contract,
// clients match on them.
var (
	ErrExpenseMissingFields     = errors.New("missing required fields")
	ErrExpenseAmountNotPositive = errors.New("amount must be a positive number")
	ErrExpenseInvalidCategory   = errors.New("invalid category")
)
