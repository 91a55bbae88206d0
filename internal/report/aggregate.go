// Package report implements the aggregation primitives for the analysis
// endpoint and the scheduled summary reports.
package report

import (
	"errors"
	"time"

	"github.com/outlay-app/backend/internal/models"
	"github.com/outlay-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Period determines how expenses are bucketed during aggregation.
type Period string

const (
	PeriodDaily    Period = "daily"
	PeriodMonthly  Period = "monthly"
	PeriodCategory Period = "category"
)

// ErrInvalidTimePeriod is part of the API contract, clients match on the
// message.
var ErrInvalidTimePeriod = errors.New("invalid time period")

// ParsePeriod parses the timePeriod query parameter.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDaily, PeriodMonthly, PeriodCategory:
		return Period(s), nil
	}

	return "", ErrInvalidTimePeriod
}

// Aggregate sums expense amounts into buckets determined by the period.
// Daily and monthly buckets are the UTC calendar day and month of the
// expense date. An empty input produces an empty map.
func Aggregate(expenses []models.Expense, period Period) (map[string]decimal.Decimal, error) {
	if _, err := ParsePeriod(string(period)); err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal)
	for _, expense := range expenses {
		label := bucketLabel(expense, period)
		totals[label] = totals[label].Add(expense.Amount)
	}

	return totals, nil
}

func bucketLabel(expense models.Expense, period Period) string {
	switch period {
	case PeriodDaily:
		return expense.Date.In(time.UTC).Format("2006-01-02")
	case PeriodMonthly:
		return types.MonthOf(expense.Date.In(time.UTC)).String()
	default:
		return expense.Category
	}
}
