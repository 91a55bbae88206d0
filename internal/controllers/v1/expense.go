package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/outlay-app/backend/internal/httperror"
	"github.com/outlay-app/backend/internal/httputil"
	"github.com/outlay-app/backend/internal/models"
	"github.com/outlay-app/backend/internal/report"
	"github.com/outlay-app/backend/internal/types"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", GetExpenses)
		r.POST("", CreateExpense)
	}

	// Analysis
	{
		r.OPTIONS("/analysis", OptionsExpenseAnalysis)
		r.GET("/analysis", GetExpenseAnalysis)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses/analysis [options]
func OptionsExpenseAnalysis(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Create expense
// @Description	Creates a new expense
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func CreateExpense(c *gin.Context) {
	var editable ExpenseEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editable)
	if err != nil {
		return
	}

	// Validation runs in the model hooks, so creating the record and
	// assigning its ID is a single atomic step
	expense := editable.model()
	err = models.DB.Create(&expense).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{
		Status: "success",
		Data:   newExpense(expense),
	})
}

// @Summary		List expenses
// @Description	Returns a list of expenses in insertion order
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		500	{object}	httperror.Error
// @Router			/v1/expenses [get]
// @Param			category	query	string	false	"Filter by category, exact match"
// @Param			startDate	query	string	false	"Lower bound of the date range, inclusive"
// @Param			endDate		query	string	false	"Upper bound of the date range, inclusive"
func GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	q := models.DB.Order("id ASC")

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	// The date range only applies when both bounds are present and
	// parseable. A single bound is ignored.
	if start, err := types.ParseDate(filter.StartDate); err == nil {
		if end, err := types.ParseDate(filter.EndDate); err == nil {
			q = q.Where("date >= ? AND date <= ?", start.Time().In(time.UTC), end.Time().In(time.UTC))
		}
	}

	var expenses []models.Expense
	err := q.Find(&expenses).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	data := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newExpense(expense))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Status: "success",
		Data:   data,
	})
}

// @Summary		Analyze spending
// @Description	Returns expense totals summed per category, calendar day or calendar month
// @Tags			Expenses
// @Produce		json
// @Success		200			{object}	AnalysisResponse
// @Failure		400			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			timePeriod	query		string	true	"One of daily, monthly, category"
// @Router			/v1/expenses/analysis [get]
func GetExpenseAnalysis(c *gin.Context) {
	period, err := report.ParsePeriod(c.Query("timePeriod"))
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	expenses, err := models.Expenses(models.DB)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	data, err := report.Aggregate(expenses, period)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, AnalysisResponse{
		Status: "success",
		Data:   data,
	})
}
