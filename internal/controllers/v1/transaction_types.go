package v1

import (
	"fmt"
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Date        time.Time              `json:"date" example:"2024-01-01T00:00:00Z"`              // Calendar date of the transaction. Defaults to today. Time is ignored.
	Category    string                 `json:"category" example:"Food"`                          // Free-form grouping label
	Description string                 `json:"description" example:"Groceries"`                  // What the transaction was for
	Amount      decimal.Decimal        `json:"amount" example:"14.03" minimum:"0"`               // Magnitude of the transaction, the sign follows from the type
	Type        models.TransactionType `json:"type" example:"expense" enums:"income,expense"`    //
}

// model returns the database resource for the API representation,
// owned by the user.
func (editable TransactionEditable) model(userID uuid.UUID) models.Transaction {
	return models.Transaction{
		UserID:      userID,
		Date:        editable.Date,
		Category:    editable.Category,
		Description: editable.Description,
		Amount:      editable.Amount,
		Type:        editable.Type,
	}
}

// newTransactionEditable returns the editable fields of an existing
// transaction. Used to prefill PATCH updates so that fields missing
// from the request body keep their value.
func newTransactionEditable(model models.Transaction) TransactionEditable {
	return TransactionEditable{
		Date:        model.Date,
		Category:    model.Category,
		Description: model.Description,
		Amount:      model.Amount,
		Type:        model.Type,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource.
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel:        model.DefaultModel,
		TransactionEditable: newTransactionEditable(model),
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if the request was successful
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionQueryFilter struct {
	Date        time.Time              `form:"date" filterField:"false"`        // Exact date. Time is ignored.
	FromDate    time.Time              `form:"fromDate" filterField:"false"`    // Transactions at and after this date. Time is ignored.
	UntilDate   time.Time              `form:"untilDate" filterField:"false"`   // Transactions before and at this date. Time is ignored.
	Category    string                 `form:"category" filterField:"false"`    // Category matches this glob pattern
	Description string                 `form:"description" filterField:"false"` // Description contains this string
	Type        models.TransactionType `form:"type"`                            // Type of the transaction
	Offset      uint                   `form:"offset" filterField:"false"`      // The offset of the first Transaction returned. Defaults to 0.
	Limit       int                    `form:"limit" filterField:"false"`       // Maximum number of Transactions to return. Defaults to all.
}

// model returns the fields of the filter that gorm queries directly.
func (f TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		Type: f.Type,
	}
}
