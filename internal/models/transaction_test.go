package models_test

import (
	"testing"
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionValidation() {
	user := suite.createTestUser("jane@example.com")

	tests := []struct {
		name        string
		transaction models.Transaction
		err         error
	}{
		{
			"Valid expense",
			models.Transaction{UserID: user.ID, Category: "Food", Description: "Groceries", Amount: decimal.NewFromFloat(14.03), Type: models.TransactionExpense},
			nil,
		},
		{
			"Valid income",
			models.Transaction{UserID: user.ID, Category: "Salary", Description: "Monthly salary", Amount: decimal.NewFromInt(1000), Type: models.TransactionIncome},
			nil,
		},
		{
			"Zero amount is allowed",
			models.Transaction{UserID: user.ID, Category: "Other", Description: "Free sample", Amount: decimal.Zero, Type: models.TransactionExpense},
			nil,
		},
		{
			"Negative amount",
			models.Transaction{UserID: user.ID, Category: "Food", Description: "Groceries", Amount: decimal.NewFromInt(-1), Type: models.TransactionExpense},
			models.ErrTransactionAmountNegative,
		},
		{
			"Invalid type",
			models.Transaction{UserID: user.ID, Category: "Food", Description: "Groceries", Amount: decimal.NewFromInt(1), Type: "transfer"},
			models.ErrTransactionTypeInvalid,
		},
		{
			"Category only whitespace",
			models.Transaction{UserID: user.ID, Category: "  ", Description: "Groceries", Amount: decimal.NewFromInt(1), Type: models.TransactionExpense},
			models.ErrTransactionCategoryEmpty,
		},
		{
			"Description empty",
			models.Transaction{UserID: user.ID, Category: "Food", Amount: decimal.NewFromInt(1), Type: models.TransactionExpense},
			models.ErrTransactionDescriptionEmpty,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.transaction).Error
			if tt.err == nil {
				assert.Nil(t, err)
			} else {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

// TestTransactionDateNormalized verifies that only the calendar day of
// the date is stored.
func (suite *TestSuiteStandard) TestTransactionDateNormalized() {
	user := suite.createTestUser("jane@example.com")

	transaction := suite.createTestTransaction(models.Transaction{
		UserID: user.ID,
		Date:   time.Date(2024, 3, 5, 17, 32, 11, 0, time.UTC),
		Amount: decimal.NewFromInt(10),
	})

	assert.Equal(suite.T(), time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), transaction.Date)
}

func (suite *TestSuiteStandard) TestTransactionDateDefaultsToToday() {
	user := suite.createTestUser("jane@example.com")

	transaction := suite.createTestTransaction(models.Transaction{UserID: user.ID, Amount: decimal.NewFromInt(10)})

	year, month, day := time.Now().In(time.UTC).Date()
	assert.Equal(suite.T(), time.Date(year, month, day, 0, 0, 0, 0, time.UTC), transaction.Date)
}

// TestTransactionsForUser verifies ordering and owner scoping.
func (suite *TestSuiteStandard) TestTransactionsForUser() {
	jane := suite.createTestUser("jane@example.com")
	john := suite.createTestUser("john@example.com")

	older := suite.createTestTransaction(models.Transaction{UserID: jane.ID, Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(10)})
	newer := suite.createTestTransaction(models.Transaction{UserID: jane.ID, Date: time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(20)})
	_ = suite.createTestTransaction(models.Transaction{UserID: john.ID, Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(30)})

	transactions, err := models.TransactionsForUser(jane.ID)
	assert.Nil(suite.T(), err)

	if assert.Len(suite.T(), transactions, 2) {
		assert.Equal(suite.T(), newer.ID, transactions[0].ID)
		assert.Equal(suite.T(), older.ID, transactions[1].ID)
	}
}

func (suite *TestSuiteStandard) TestTransactionForUser() {
	jane := suite.createTestUser("jane@example.com")
	john := suite.createTestUser("john@example.com")

	transaction := suite.createTestTransaction(models.Transaction{UserID: jane.ID, Amount: decimal.NewFromInt(10)})

	found, err := models.TransactionForUser(transaction.ID, jane.ID)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), transaction.ID, found.ID)

	// Another user's transaction surfaces as not found
	_, err = models.TransactionForUser(transaction.ID, john.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	_, err = models.TransactionForUser(uuid.New(), jane.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
