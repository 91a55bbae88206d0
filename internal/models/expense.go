package models

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Categories is the closed set of categories an expense can have.
var Categories = []string{"Food", "Travel", "Shopping", "Entertainment", "Bills", "Others"}

// Expense represents a single spent amount.
//
// Expenses are append-only: they are never updated or deleted, so the
// sequential IDs assigned by the database are exactly 1..N in insertion
// order.
type Expense struct {
	DefaultModel
	Category string          `json:"category" example:"Food"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"12.5"`
	Date     time.Time       `json:"date" example:"2024-03-01T00:00:00Z"`
}

// BeforeCreate validates the expense. Validation and ID assignment happen
// in the same insert, so an expense can never be stored without passing
// these checks. Checked in order, the first failure wins.
func (e *Expense) BeforeCreate(_ *gorm.DB) error {
	// A zero amount counts as missing, not as invalid
	if e.Category == "" || e.Amount.IsZero() || e.Date.IsZero() {
		return ErrExpenseMissingFields
	}

	if e.Amount.IsNegative() {
		return ErrExpenseAmountNotPositive
	}

	if !slices.Contains(Categories, e.Category) {
		return ErrExpenseInvalidCategory
	}

	return nil
}

// BeforeSave sets the timezone for the Date to UTC.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Date = e.Date.In(time.UTC)
	return nil
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (e *Expense) AfterFind(_ *gorm.DB) error {
	e.Date = e.Date.In(time.UTC)
	return nil
}

// Expenses returns all stored expenses in insertion order.
func Expenses(db *gorm.DB) ([]Expense, error) {
	var expenses []Expense

	err := db.Order("id ASC").Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}
