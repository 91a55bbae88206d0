package report

import (
	"time"

	"github.com/outlay-app/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Total returns the sum of all expense amounts.
func Total(expenses []models.Expense) decimal.Decimal {
	var total decimal.Decimal
	for _, expense := range expenses {
		total = total.Add(expense.Amount)
	}

	return total
}

// TotalSince returns the sum of the amounts of all expenses dated at or
// after start.
func TotalSince(expenses []models.Expense, start time.Time) decimal.Decimal {
	var total decimal.Decimal
	for _, expense := range expenses {
		if expense.Date.Before(start) {
			continue
		}

		total = total.Add(expense.Amount)
	}

	return total
}

// StartOfWeek returns midnight of the most recent Sunday in t's location.
// If t is a Sunday, the result is midnight of the same day.
func StartOfWeek(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day-int(t.Weekday()), 0, 0, 0, 0, t.Location())
}

// StartOfMonth returns midnight of the first day of t's month in t's
// location.
func StartOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}
