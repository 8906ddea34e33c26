package v1

import (
	"fmt"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/reports"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BudgetEditable struct {
	Category    string              `json:"category" example:"Food"`                         // Category the limit applies to
	LimitAmount decimal.Decimal     `json:"limitAmount" example:"300" minimum:"0.01"`        // Spending limit, must be greater than zero
	Period      models.BudgetPeriod `json:"period" example:"monthly" enums:"monthly,yearly"` //
}

// model returns the database resource for the API representation,
// owned by the user.
func (editable BudgetEditable) model(userID uuid.UUID) models.Budget {
	return models.Budget{
		UserID:      userID,
		Category:    editable.Category,
		LimitAmount: editable.LimitAmount,
		Period:      editable.Period,
	}
}

// newBudgetEditable returns the editable fields of an existing budget,
// used to prefill PATCH updates.
func newBudgetEditable(model models.Budget) BudgetEditable {
	return BudgetEditable{
		Category:    model.Category,
		LimitAmount: model.LimitAmount,
		Period:      model.Period,
	}
}

type BudgetLinks struct {
	Self  string `json:"self" example:"https://example.com/v1/budgets/af892e10-7e0a-4fb8-b1bc-4b6d88107ed9"`        // The budget itself
	Usage string `json:"usage" example:"https://example.com/v1/budgets/af892e10-7e0a-4fb8-b1bc-4b6d88107ed9/usage"` // The budget's usage in the current period
}

// Budget is the representation of a Budget in API v1.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

// newBudget returns the API v1 representation of the resource.
func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel:   model.DefaultModel,
		BudgetEditable: newBudgetEditable(model),
		Links: BudgetLinks{
			Self:  fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Usage: fmt.Sprintf("%s/v1/budgets/%s/usage", url, model.ID),
		},
	}
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // The Budget data, if the request was successful
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`                                                          // List of budgets
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetResponse `json:"data"`                                                          // List of created Budgets
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetQueryFilter struct {
	Category string              `form:"category" filterField:"false"` // Category matches this glob pattern
	Period   models.BudgetPeriod `form:"period"`                       // Period of the budget
}

// model returns the fields of the filter that gorm queries directly.
func (f BudgetQueryFilter) model() models.Budget {
	return models.Budget{
		Period: f.Period,
	}
}

// BudgetUsage is the state of a budget within its current period,
// enriched with display values for the dashboard.
type BudgetUsage struct {
	BudgetID          uuid.UUID           `json:"budgetId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88107ed9"` // The budget this usage belongs to
	Category          string              `json:"category" example:"Food"`                                 //
	Period            models.BudgetPeriod `json:"period" example:"monthly"`                                //
	Spent             decimal.Decimal     `json:"spent" example:"110"`                                     // Expenses in the current period
	Limit             decimal.Decimal     `json:"limit" example:"100"`                                     //
	Percentage        decimal.Decimal     `json:"percentage" example:"110"`                                // Unclamped percentage of the limit
	DisplayPercentage decimal.Decimal     `json:"displayPercentage" example:"100"`                         // Percentage clamped to [0,100] for progress bars
	OverBudget        bool                `json:"overBudget" example:"true"`                               //
	SpentFormatted    string              `json:"spentFormatted" example:"$110.00"`                        //
	LimitFormatted    string              `json:"limitFormatted" example:"$100.00"`                        //
}

func newBudgetUsage(model models.Budget, usage reports.Usage) BudgetUsage {
	return BudgetUsage{
		BudgetID:          model.ID,
		Category:          model.Category,
		Period:            model.Period,
		Spent:             usage.Spent,
		Limit:             usage.Limit,
		Percentage:        usage.Percentage,
		DisplayPercentage: reports.ClampPercentage(usage.Percentage),
		OverBudget:        usage.OverBudget,
		SpentFormatted:    reports.FormatUSD(usage.Spent),
		LimitFormatted:    reports.FormatUSD(usage.Limit),
	}
}

type BudgetUsageResponse struct {
	Data  *BudgetUsage `json:"data"`                                                          // The usage data, if the request was successful
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
