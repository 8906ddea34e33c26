package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/reports"
	"github.com/centsible/backend/internal/types"
	"github.com/gin-gonic/gin"
)

type CategoryReportResponse struct {
	Data  []reports.CategoryTotal `json:"data"`  // Expense totals by category
	Error *string                 `json:"error"` // The error, if any occurred
}

type BalanceReportResponse struct {
	Data  []reports.BalancePoint `json:"data"`  // Running balance after each transaction
	Error *string                `json:"error"` // The error, if any occurred
}

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/categories", httputil.OptionsGet)
		r.GET("/categories", GetCategoryReport)
	}

	{
		r.OPTIONS("/balance", httputil.OptionsGet)
		r.GET("/balance", GetBalanceReport)
	}
}

// @Summary		Category report
// @Description	Returns the expense totals by category, in the order the categories first appear in the user's transactions
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	CategoryReportResponse
// @Failure		400		{object}	CategoryReportResponse
// @Failure		500		{object}	CategoryReportResponse
// @Param			month	query		string	false	"Only include transactions in this month, format 2006-01"
// @Router			/v1/reports/categories [get]
func GetCategoryReport(c *gin.Context) {
	var query QueryMonth
	if err := c.Bind(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CategoryReportResponse{
			Error: &s,
		})
		return
	}

	transactions, err := models.TransactionsForUser(currentSession(c).UserID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryReportResponse{
			Error: &e,
		})
		return
	}

	if !query.Month.IsZero() {
		month := types.MonthOf(query.Month)

		filtered := make([]models.Transaction, 0, len(transactions))
		for _, transaction := range transactions {
			if month.Contains(transaction.Date) {
				filtered = append(filtered, transaction)
			}
		}
		transactions = filtered
	}

	c.JSON(http.StatusOK, CategoryReportResponse{Data: reports.CategoryTotals(transactions)})
}

// @Summary		Balance report
// @Description	Returns the running balance after each transaction, in chronological order
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	BalanceReportResponse
// @Failure		500	{object}	BalanceReportResponse
// @Router			/v1/reports/balance [get]
func GetBalanceReport(c *gin.Context) {
	transactions, err := models.TransactionsForUser(currentSession(c).UserID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BalanceReportResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, BalanceReportResponse{Data: reports.RunningBalance(transactions)})
}
