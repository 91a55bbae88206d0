package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/outlay-app/backend/internal/controllers/v1"
	"github.com/outlay-app/backend/internal/httperror"
	"github.com/outlay-app/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreateExpense() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", map[string]any{
		"category": "Food",
		"amount":   12.5,
		"date":     "2024-03-01",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal("success", response.Status)
	suite.Assert().Equal(uint64(1), response.Data.ID)
	suite.Assert().Equal("Food", response.Data.Category)
	suite.Assert().True(decimal.NewFromFloat(12.5).Equal(response.Data.Amount))
	suite.Assert().True(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).Equal(response.Data.Date.Time()))

	// IDs are assigned sequentially
	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", map[string]any{
		"category": "Bills",
		"amount":   30,
		"date":     "2024-03-02",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(uint64(2), response.Data.ID)
}

func (suite *TestSuiteStandard) TestCreateExpenseInvalid() {
	tests := []struct {
		name  string
		body  map[string]any
		error string
	}{
		{"no category", map[string]any{"amount": 5, "date": "2024-03-01"}, "missing required fields"},
		{"no amount", map[string]any{"category": "Food", "date": "2024-03-01"}, "missing required fields"},
		{"no date", map[string]any{"category": "Food", "amount": 5}, "missing required fields"},
		{"zero amount", map[string]any{"category": "Food", "amount": 0, "date": "2024-03-01"}, "missing required fields"},
		{"negative amount", map[string]any{"category": "Food", "amount": -5, "date": "2024-03-01"}, "amount must be a positive number"},
		{"unknown category", map[string]any{"category": "Bogus", "amount": 5, "date": "2024-03-01"}, "invalid category"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			var response httperror.Error
			test.DecodeResponse(t, &recorder, &response)

			assert.Equal(t, "error", response.Status)
			assert.Equal(t, tt.error, response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestCreateExpenseEmptyBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response httperror.Error
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("request body must not be empty", response.Error)
}

func (suite *TestSuiteStandard) TestCreateExpenseRejectionDoesNotStore() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", map[string]any{
		"category": "Bogus",
		"amount":   5,
		"date":     "2024-03-01",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Empty(response.Data)
}

func (suite *TestSuiteStandard) TestGetExpensesUnfiltered() {
	suite.createTestExpense("Food", 12.5, "2024-03-01")
	suite.createTestExpense("Travel", 100, "2024-03-05")
	suite.createTestExpense("Food", 7, "2024-03-10")

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal("success", response.Status)
	suite.Require().Len(response.Data, 3)

	// Insertion order
	for i, expense := range response.Data {
		suite.Assert().Equal(uint64(i+1), expense.ID)
	}
}

func (suite *TestSuiteStandard) TestGetExpensesFilterCategory() {
	suite.createTestExpense("Food", 12.5, "2024-03-01")
	suite.createTestExpense("Travel", 100, "2024-03-05")

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?category=Food", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Food", response.Data[0].Category)

	// The category must match exactly, matching is case-sensitive
	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?category=food", "")
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Empty(response.Data)
}

func (suite *TestSuiteStandard) TestGetExpensesFilterDateRange() {
	suite.createTestExpense("Food", 1, "2024-02-29")
	suite.createTestExpense("Food", 2, "2024-03-01")
	suite.createTestExpense("Food", 4, "2024-03-15")
	suite.createTestExpense("Food", 8, "2024-03-16")

	// Both bounds are inclusive
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?startDate=2024-03-01&endDate=2024-03-15", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal(uint64(2), response.Data[0].ID)
	suite.Assert().Equal(uint64(3), response.Data[1].ID)
}

func (suite *TestSuiteStandard) TestGetExpensesSingleDateBoundIgnored() {
	suite.createTestExpense("Food", 1, "2024-02-29")
	suite.createTestExpense("Food", 2, "2024-03-01")

	// A date range with only one bound does not filter at all
	for _, query := range []string{"startDate=2024-03-01", "endDate=2024-03-01"} {
		recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?%s", query), "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

		var response v1.ExpenseListResponse
		test.DecodeResponse(suite.T(), &recorder, &response)
		suite.Assert().Len(response.Data, 2, "query %q must not filter", query)
	}
}

func (suite *TestSuiteStandard) TestGetExpensesInvalidDatesIgnored() {
	suite.createTestExpense("Food", 1, "2024-03-01")

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?startDate=whenever&endDate=2024-03-15", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 1)
}

func (suite *TestSuiteStandard) TestGetExpensesCombinedFilters() {
	suite.createTestExpense("Food", 1, "2024-03-01")
	suite.createTestExpense("Travel", 2, "2024-03-01")
	suite.createTestExpense("Food", 4, "2024-04-01")

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?category=Food&startDate=2024-03-01&endDate=2024-03-31", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(uint64(1), response.Data[0].ID)
}

func (suite *TestSuiteStandard) TestExpenseAnalysisCategory() {
	suite.createTestExpense("Food", 10, "2024-03-01")
	suite.createTestExpense("Food", 5, "2024-03-02")
	suite.createTestExpense("Travel", 7, "2024-03-03")

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses/analysis?timePeriod=category", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AnalysisResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal("success", response.Status)
	suite.Require().Len(response.Data, 2)
	suite.Assert().True(decimal.NewFromInt(15).Equal(response.Data["Food"]))
	suite.Assert().True(decimal.NewFromInt(7).Equal(response.Data["Travel"]))
}

func (suite *TestSuiteStandard) TestExpenseAnalysisDaily() {
	suite.createTestExpense("Food", 3, "2024-03-01T08:00")
	suite.createTestExpense("Travel", 4, "2024-03-01T20:00")

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses/analysis?timePeriod=daily", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AnalysisResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().True(decimal.NewFromInt(7).Equal(response.Data["2024-03-01"]))
}

func (suite *TestSuiteStandard) TestExpenseAnalysisMonthly() {
	suite.createTestExpense("Food", 10, "2024-03-05")
	suite.createTestExpense("Bills", 20, "2024-04-01")

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses/analysis?timePeriod=monthly", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AnalysisResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().True(decimal.NewFromInt(10).Equal(response.Data["2024-03"]))
	suite.Assert().True(decimal.NewFromInt(20).Equal(response.Data["2024-04"]))
}

func (suite *TestSuiteStandard) TestExpenseAnalysisInvalidPeriod() {
	suite.createTestExpense("Food", 10, "2024-03-05")

	for _, period := range []string{"", "yearly", "weekly"} {
		recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses/analysis?timePeriod=%s", period), "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

		var response httperror.Error
		test.DecodeResponse(suite.T(), &recorder, &response)
		suite.Assert().Equal("invalid time period", response.Error)
	}
}

func (suite *TestSuiteStandard) TestExpenseAnalysisEmptyStore() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses/analysis?timePeriod=category", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AnalysisResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Empty(response.Data)
}

func (suite *TestSuiteStandard) TestOptionsExpense() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("GET, POST", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/expenses/analysis", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("GET", recorder.Header().Get("allow"))
}
