package models

import (
	"errors"
)

var (
	// ErrGeneral is returned when the database failed in a way we cannot
	// translate into something actionable for the user.
	ErrGeneral = errors.New("an error occurred on the server during your request")

	// ErrResourceNotFound is wrapped with the resource name by the query callback.
	ErrResourceNotFound = errors.New("there is no")

	// ErrNoActiveSession is returned when a request requires an
	// authenticated user, but no valid session exists.
	ErrNoActiveSession = errors.New("you need to be logged in for this request")
)

// User errors
var (
	ErrEmailInvalid       = errors.New("the email address is not valid")
	ErrEmailTaken         = errors.New("this email address is already registered")
	ErrPasswordTooShort   = errors.New("the password must be at least 8 characters long")
	ErrCredentialsInvalid = errors.New("the email address or password is incorrect")
)

// Transaction errors
var (
	ErrTransactionAmountNegative   = errors.New("the transaction amount must not be negative")
	ErrTransactionTypeInvalid      = errors.New("the transaction type must be income or expense")
	ErrTransactionDescriptionEmpty = errors.New("the transaction description must not be empty")
	ErrTransactionCategoryEmpty    = errors.New("the transaction category must not be empty")
)

// Budget errors
var (
	ErrBudgetLimitNotPositive = errors.New("the budget limit must be greater than zero")
	ErrBudgetPeriodInvalid    = errors.New("the budget period must be monthly or yearly")
	ErrBudgetCategoryEmpty    = errors.New("the budget category must not be empty")
)
