package v1

import (
	"net/http"
	"time"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/reports"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// DashboardSummary is the headline card of the dashboard, with the
// amounts preformatted for display.
type DashboardSummary struct {
	Totals            reports.Summary `json:"totals"`
	IncomeFormatted   string          `json:"incomeFormatted" example:"$1,000.00"`
	ExpensesFormatted string          `json:"expensesFormatted" example:"$200.00"`
	BalanceFormatted  string          `json:"balanceFormatted" example:"$800.00"`
}

// Dashboard aggregates everything the dashboard page renders into a
// single response.
type Dashboard struct {
	Summary        DashboardSummary        `json:"summary"`        // Income, expenses and current balance
	CategoryTotals []reports.CategoryTotal `json:"categoryTotals"` // Expense totals for the pie chart
	Balance        []reports.BalancePoint  `json:"balance"`        // Running balance for the line chart
	Budgets        []BudgetUsage           `json:"budgets"`        // Usage of every budget in its current period
	Transactions   []Transaction           `json:"transactions"`   // Most recent transactions
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`  // The dashboard data, if the request was successful
	Error *string    `json:"error"` // The error, if any occurred
}

// recentTransactionCount limits the transaction list on the dashboard.
const recentTransactionCount = 5

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", GetDashboard)
}

// @Summary		Get dashboard
// @Description	Returns all aggregates the dashboard renders in a single request
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		500	{object}	DashboardResponse
// @Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	userID := currentSession(c).UserID

	var transactions []models.Transaction
	var budgets []models.Budget

	// Both reads are independent, fetch them concurrently
	var g errgroup.Group
	g.Go(func() error {
		var err error
		transactions, err = models.TransactionsForUser(userID)
		return err
	})
	g.Go(func() error {
		var err error
		budgets, err = models.BudgetsForUser(userID)
		return err
	})

	if err := g.Wait(); err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &e,
		})
		return
	}

	summary := reports.Summarize(transactions)
	now := time.Now()

	usages := make([]BudgetUsage, 0, len(budgets))
	for _, budget := range budgets {
		usages = append(usages, newBudgetUsage(budget, reports.BudgetUsage(budget, transactions, now)))
	}

	// TransactionsForUser orders by date descending, so the most
	// recent transactions are at the front
	recent := transactions
	if len(recent) > recentTransactionCount {
		recent = recent[:recentTransactionCount]
	}

	recentData := make([]Transaction, 0, len(recent))
	for _, transaction := range recent {
		recentData = append(recentData, newTransaction(c, transaction))
	}

	data := Dashboard{
		Summary: DashboardSummary{
			Totals:            summary,
			IncomeFormatted:   reports.FormatUSD(summary.Income),
			ExpensesFormatted: reports.FormatUSD(summary.Expenses),
			BalanceFormatted:  reports.FormatUSD(summary.Balance),
		},
		CategoryTotals: reports.CategoryTotals(transactions),
		Balance:        reports.RunningBalance(transactions),
		Budgets:        usages,
		Transactions:   recentData,
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &data})
}
