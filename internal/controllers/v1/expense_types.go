package v1

import (
	"github.com/outlay-app/backend/internal/models"
	"github.com/outlay-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

// ExpenseEditable contains the fields a client sets when creating an expense.
type ExpenseEditable struct {
	Category string          `json:"category" example:"Food"`                                  // One of the predefined categories
	Amount   decimal.Decimal `json:"amount" example:"12.5" minimum:"0.00000001"`               // The spent amount, must be positive
	Date     types.Date      `json:"date" example:"2024-03-01" format:"date"`                  // Date of the expense, time of day is optional
}

// model returns the database resource for the API representation of the editable fields
func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Category: editable.Category,
		Amount:   editable.Amount,
		Date:     editable.Date.Time(),
	}
}

// Expense is the representation of an Expense in API v1.
type Expense struct {
	models.DefaultModel
	ExpenseEditable
}

// newExpense returns the API v1 representation of the resource
func newExpense(model models.Expense) Expense {
	return Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			Category: model.Category,
			Amount:   model.Amount,
			Date:     types.Date(model.Date),
		},
	}
}

// ExpenseQueryFilter contains the query parameters for the expense list.
//
// The dates are bound as strings since unparseable values must degrade to
// "no filter", never fail the request.
type ExpenseQueryFilter struct {
	Category  string `form:"category"`  // Only expenses with exactly this category
	StartDate string `form:"startDate"` // Lower bound of the date range, inclusive
	EndDate   string `form:"endDate"`   // Upper bound of the date range, inclusive
}

// ExpenseResponse is the response for a single created expense.
type ExpenseResponse struct {
	Status string  `json:"status" example:"success"`
	Data   Expense `json:"data"` // The created expense
}

// ExpenseListResponse is the response for the expense list.
type ExpenseListResponse struct {
	Status string    `json:"status" example:"success"`
	Data   []Expense `json:"data"` // List of expenses in insertion order
}

// AnalysisResponse is the response for the expense analysis.
type AnalysisResponse struct {
	Status string                     `json:"status" example:"success"`
	Data   map[string]decimal.Decimal `json:"data"` // Summed amounts per bucket label
}
