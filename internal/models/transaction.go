package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType determines whether a transaction adds to or
// subtracts from the balance.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction represents a single income or expense record.
//
// The amount is always the magnitude, the sign is derived from the
// type during aggregation and never stored.
type Transaction struct {
	DefaultModel
	UserID      uuid.UUID       `json:"userId" gorm:"index"`                                // Owner of the transaction, set from the session on create
	User        User            `json:"-"`                                                  //
	Date        time.Time       `json:"date" example:"2024-01-01T00:00:00Z"`                // Calendar date of the transaction, stored as UTC midnight
	Category    string          `json:"category" example:"Food"`                            // Free-form grouping label
	Description string          `json:"description" example:"Groceries"`                    // What the transaction was for
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"14.03"`   // Magnitude of the transaction, never negative
	Type        TransactionType `json:"type" example:"expense" enums:"income,expense"`      //
}

// BeforeSave validates the transaction and normalizes the date to
// UTC midnight so that only the calendar day is significant.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Category = strings.TrimSpace(t.Category)
	t.Description = strings.TrimSpace(t.Description)

	if t.Category == "" {
		return ErrTransactionCategoryEmpty
	}

	if t.Description == "" {
		return ErrTransactionDescriptionEmpty
	}

	if t.Amount.IsNegative() {
		return ErrTransactionAmountNegative
	}

	if t.Type != TransactionIncome && t.Type != TransactionExpense {
		return ErrTransactionTypeInvalid
	}

	if t.Date.IsZero() {
		t.Date = time.Now()
	}

	year, month, day := t.Date.In(time.UTC).Date()
	t.Date = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	return nil
}

// TransactionsForUser returns all transactions belonging to the user,
// ordered by date descending, newest created first on equal dates.
func TransactionsForUser(userID uuid.UUID) ([]Transaction, error) {
	var transactions []Transaction
	err := DB.
		Where("user_id = ?", userID).
		Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC").
		Find(&transactions).Error

	return transactions, err
}

// TransactionForUser returns the transaction with the ID if it belongs
// to the user. Any other user's transaction surfaces as not found.
func TransactionForUser(id uuid.UUID, userID uuid.UUID) (Transaction, error) {
	var transaction Transaction
	err := DB.Where("user_id = ?", userID).First(&transaction, "id = ?", id).Error
	return transaction, err
}
