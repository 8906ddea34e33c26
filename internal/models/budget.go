package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetPeriod is the window a budget limit applies to, always
// evaluated relative to the current date, not the creation date.
type BudgetPeriod string

const (
	BudgetMonthly BudgetPeriod = "monthly"
	BudgetYearly  BudgetPeriod = "yearly"
)

// Budget is a spending limit for one category.
//
// Budgets match transactions by exact category string equality. Several
// budgets for the same category are permitted and evaluated independently.
type Budget struct {
	DefaultModel
	UserID      uuid.UUID       `json:"userId" gorm:"index"`                                    // Owner of the budget, set from the session on create
	User        User            `json:"-"`                                                      //
	Category    string          `json:"category" example:"Food"`                                // Category the limit applies to
	LimitAmount decimal.Decimal `json:"limitAmount" gorm:"type:DECIMAL(20,8)" example:"300"`    // Spending limit, always greater than zero
	Period      BudgetPeriod    `json:"period" example:"monthly" enums:"monthly,yearly"`        //
}

// BeforeSave validates the budget. A limit of zero or less is rejected
// here so that usage percentages are always well-defined.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Category = strings.TrimSpace(b.Category)

	if b.Category == "" {
		return ErrBudgetCategoryEmpty
	}

	if !b.LimitAmount.IsPositive() {
		return ErrBudgetLimitNotPositive
	}

	if b.Period != BudgetMonthly && b.Period != BudgetYearly {
		return ErrBudgetPeriodInvalid
	}

	return nil
}

// BudgetsForUser returns all budgets belonging to the user, ordered
// by category ascending.
func BudgetsForUser(userID uuid.UUID) ([]Budget, error) {
	var budgets []Budget
	err := DB.
		Where("user_id = ?", userID).
		Order("budgets.category ASC").
		Find(&budgets).Error

	return budgets, err
}

// BudgetForUser returns the budget with the ID if it belongs to the
// user. Any other user's budget surfaces as not found.
func BudgetForUser(id uuid.UUID, userID uuid.UUID) (Budget, error) {
	var budget Budget
	err := DB.Where("user_id = ?", userID).First(&budget, "id = ?", id).Error
	return budget, err
}
