// Package testutil provides shared assertion helpers and expense fixtures.
package testutil

import (
	"fmt"

	"paisa/internal/models"
)

var fixtureCounter int

// NewExpense builds an expense with the fields the query engine cares about.
func NewExpense(amount float64, category models.Category, date string) models.Expense {
	fixtureCounter++
	return models.Expense{
		ID:       fmt.Sprintf("exp-%d", fixtureCounter),
		Title:    fmt.Sprintf("Expense %d", fixtureCounter),
		Amount:   amount,
		Category: category,
		Date:     date,
	}
}

// NewMerchantExpense builds an expense with merchant and description set.
func NewMerchantExpense(amount float64, merchant, description, date string) models.Expense {
	e := NewExpense(amount, models.CategoryOther, date)
	e.Merchant = merchant
	e.Description = description
	return e
}
