package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestTransactionsOptions verifies that the HTTP OPTIONS response for
// /transactions/{id} is correct.
func (suite *TestSuiteStandard) TestTransactionsOptions() {
	login := createTestSession(suite.T())

	tests := []struct {
		name     string        // Name for the test
		status   int           // Expected HTTP status
		id       string        // String to use as ID. Ignored when pathFunc is non-nil
		pathFunc func() string // Function returning the path
	}{
		{
			"Does not exist",
			http.StatusNotFound,
			uuid.New().String(),
			nil,
		},
		{
			"Invalid UUID",
			http.StatusBadRequest,
			"NotParseableAsUUID",
			nil,
		},
		{
			"Success",
			http.StatusNoContent,
			"",
			func() string {
				return createTestTransaction(suite.T(), login.Token, v1.TransactionEditable{Amount: decimal.NewFromFloat(31)}).Data.Links.Self
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var p string
			if tt.pathFunc != nil {
				p = tt.pathFunc()
			} else {
				p = fmt.Sprintf("%s/%s", "http://example.com/v1/transactions", tt.id)
			}

			r := test.Request(t, http.MethodOptions, p, nil, test.BearerHeader(login.Token))
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	login := createTestSession(suite.T())

	tests := []struct {
		name        string
		transaction v1.TransactionEditable
		status      int
	}{
		{
			"Expense",
			v1.TransactionEditable{Category: "Food", Description: "Groceries", Amount: decimal.NewFromFloat(17.23), Type: models.TransactionExpense},
			http.StatusCreated,
		},
		{
			"Income",
			v1.TransactionEditable{Category: "Salary", Description: "Monthly salary", Amount: decimal.NewFromInt(1000), Type: models.TransactionIncome},
			http.StatusCreated,
		},
		{
			"Zero amount",
			v1.TransactionEditable{Category: "Other", Description: "Nothing", Amount: decimal.Zero, Type: models.TransactionExpense},
			http.StatusCreated,
		},
		{
			"Negative amount",
			v1.TransactionEditable{Category: "Food", Description: "Groceries", Amount: decimal.NewFromInt(-10), Type: models.TransactionExpense},
			http.StatusBadRequest,
		},
		{
			"Invalid type",
			v1.TransactionEditable{Category: "Food", Description: "Groceries", Amount: decimal.NewFromInt(10), Type: "transfer"},
			http.StatusBadRequest,
		},
		{
			"Empty category",
			v1.TransactionEditable{Description: "Groceries", Amount: decimal.NewFromInt(10), Type: models.TransactionExpense},
			http.StatusBadRequest,
		},
		{
			"Empty description",
			v1.TransactionEditable{Category: "Food", Amount: decimal.NewFromInt(10), Type: models.TransactionExpense},
			http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{tt.transaction}, test.BearerHeader(login.Token))
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestTransactionsCreateAmountNotNumeric verifies that a non-numeric
// amount is rejected before anything is stored.
func (suite *TestSuiteStandard) TestTransactionsCreateAmountNotNumeric() {
	login := createTestSession(suite.T())

	body := `[{"category": "Food", "description": "Groceries", "amount": "not-a-number", "type": "expense"}]`
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", body, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// Nothing was stored
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", nil, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 0)
}

func (suite *TestSuiteStandard) TestTransactionsGetSingle() {
	login := createTestSession(suite.T())
	transaction := createTestTransaction(suite.T(), login.Token, v1.TransactionEditable{Amount: decimal.NewFromFloat(17.23)})

	r := test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, nil, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), transaction.Data.ID, response.Data.ID)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(17.23)))
}

// TestTransactionsSorted verifies that transactions are returned newest
// first.
func (suite *TestSuiteStandard) TestTransactionsSorted() {
	login := createTestSession(suite.T())

	older := createTestTransaction(suite.T(), login.Token, v1.TransactionEditable{
		Date:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Amount: decimal.NewFromInt(10),
	})
	newer := createTestTransaction(suite.T(), login.Token, v1.TransactionEditable{
		Date:   time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Amount: decimal.NewFromInt(20),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", nil, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if assert.Len(suite.T(), response.Data, 2) {
		assert.Equal(suite.T(), newer.Data.ID, response.Data[0].ID)
		assert.Equal(suite.T(), older.Data.ID, response.Data[1].ID)
	}
}

func (suite *TestSuiteStandard) TestTransactionsFilter() {
	login := createTestSession(suite.T())

	_ = createTestTransaction(suite.T(), login.Token, v1.TransactionEditable{Category: "Food", Amount: decimal.NewFromInt(10)})
	_ = createTestTransaction(suite.T(), login.Token, v1.TransactionEditable{Category: "Food & Drink", Amount: decimal.NewFromInt(20)})
	_ = createTestTransaction(suite.T(), login.Token, v1.TransactionEditable{Category: "Salary", Amount: decimal.NewFromInt(1000), Type: models.TransactionIncome})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"Category exact", "category=Food", 1},
		{"Category glob", "category=Food*", 2},
		{"Type income", "type=income", 1},
		{"Type expense", "type=expense", 2},
		{"No match", "category=Housing", 0},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=2", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), nil, test.BearerHeader(login.Token))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsFilterInvalidType() {
	login := createTestSession(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?type=transfer", nil, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	login := createTestSession(suite.T())
	transaction := createTestTransaction(suite.T(), login.Token, v1.TransactionEditable{Category: "Food", Amount: decimal.NewFromInt(10)})

	// Only the amount is updated, everything else keeps its value
	r := test.Request(suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{"amount": "42.42"}, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(42.42)))
	assert.Equal(suite.T(), "Food", response.Data.Category)
}

func (suite *TestSuiteStandard) TestTransactionsUpdateInvalid() {
	login := createTestSession(suite.T())
	transaction := createTestTransaction(suite.T(), login.Token, v1.TransactionEditable{Amount: decimal.NewFromInt(10)})

	tests := []struct {
		name string
		body any
	}{
		{"Negative amount", map[string]any{"amount": "-10"}},
		{"Invalid type", map[string]any{"type": "transfer"}},
		{"Empty category", map[string]any{"category": ""}},
		{"Broken JSON", `{ broken`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, transaction.Data.Links.Self, tt.body, test.BearerHeader(login.Token))
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	login := createTestSession(suite.T())
	transaction := createTestTransaction(suite.T(), login.Token, v1.TransactionEditable{Amount: decimal.NewFromInt(10)})

	r := test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, nil, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Deleting again returns a 404 as the resource is gone
	r = test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, nil, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionsDeleteNonexistent() {
	login := createTestSession(suite.T())

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), nil, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestTransactionsOwnerScoped verifies that users can never see or
// modify each other's transactions.
func (suite *TestSuiteStandard) TestTransactionsOwnerScoped() {
	alice := createTestSession(suite.T())
	bob := createTestSession(suite.T())

	transaction := createTestTransaction(suite.T(), alice.Token, v1.TransactionEditable{Amount: decimal.NewFromInt(10)})

	tests := []struct {
		name   string
		method string
	}{
		{"Get", http.MethodGet},
		{"Update", http.MethodPatch},
		{"Delete", http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, transaction.Data.Links.Self, nil, test.BearerHeader(bob.Token))
			test.AssertHTTPStatus(t, &r, http.StatusNotFound)
		})
	}

	// Bob's list does not contain Alice's transaction
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", nil, test.BearerHeader(bob.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 0)
}
