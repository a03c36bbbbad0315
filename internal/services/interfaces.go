// Package services contains the application layer between the CLI and the
// expense store, including the cached expense snapshot the assistant reads.
package services

import (
	"context"
	"io"

	"paisa/internal/assistant"
	"paisa/internal/models"
	"paisa/internal/store"
)

// ExpenseStore is the subset of the store client the service depends on.
type ExpenseStore interface {
	ListExpenses(ctx context.Context) ([]models.Expense, error)
	CreateExpense(ctx context.Context, req store.CreateExpenseRequest) (models.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
	UploadReceipt(ctx context.Context, filename string, r io.Reader) (store.ReceiptResult, error)
}

// ExpenseServicer owns the in-memory expense snapshot and the assistant
// conversation over it.
type ExpenseServicer interface {
	// Refresh refetches the snapshot from the store.
	Refresh(ctx context.Context) error
	// Snapshot returns the currently resident expense collection.
	Snapshot() []models.Expense
	// Add persists a new expense and refreshes the snapshot.
	Add(ctx context.Context, req store.CreateExpenseRequest) (models.Expense, error)
	// Remove deletes an expense and refreshes the snapshot.
	Remove(ctx context.Context, id string) error
	// ImportReceipt uploads a receipt image and refreshes the snapshot.
	ImportReceipt(ctx context.Context, filename string, r io.Reader) (store.ReceiptResult, error)
	// Ask answers a free-text question over the current snapshot.
	Ask(text string) (assistant.Result, error)
	// Messages returns the chat transcript so far.
	Messages() []models.ChatMessage
}
