package services

import (
	"context"
	"io"

	"go.uber.org/zap"

	"paisa/internal/assistant"
	"paisa/internal/logger"
	"paisa/internal/models"
	"paisa/internal/store"
)

// expenseService caches the expense collection between questions. The store
// stays the source of truth: every mutation invalidates the cache by
// refetching the full collection.
type expenseService struct {
	store    ExpenseStore
	conv     *assistant.Conversation
	snapshot []models.Expense
	log      *zap.SugaredLogger
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(st ExpenseStore, conv *assistant.Conversation) ExpenseServicer {
	return &expenseService{
		store: st,
		conv:  conv,
		log:   logger.Get(),
	}
}

func (s *expenseService) Refresh(ctx context.Context) error {
	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		return err
	}
	s.snapshot = expenses
	s.log.Debugw("snapshot refreshed", "expenses", len(expenses))
	return nil
}

func (s *expenseService) Snapshot() []models.Expense {
	return s.snapshot
}

func (s *expenseService) Add(ctx context.Context, req store.CreateExpenseRequest) (models.Expense, error) {
	created, err := s.store.CreateExpense(ctx, req)
	if err != nil {
		return models.Expense{}, err
	}
	if err := s.Refresh(ctx); err != nil {
		// The expense was created; a stale snapshot is recoverable.
		s.log.Warnw("snapshot refresh after create failed", "error", err)
	}
	return created, nil
}

func (s *expenseService) Remove(ctx context.Context, id string) error {
	if err := s.store.DeleteExpense(ctx, id); err != nil {
		return err
	}
	if err := s.Refresh(ctx); err != nil {
		s.log.Warnw("snapshot refresh after delete failed", "error", err)
	}
	return nil
}

func (s *expenseService) ImportReceipt(ctx context.Context, filename string, r io.Reader) (store.ReceiptResult, error) {
	result, err := s.store.UploadReceipt(ctx, filename, r)
	if err != nil {
		return store.ReceiptResult{}, err
	}
	if result.ExpenseCreated {
		if err := s.Refresh(ctx); err != nil {
			s.log.Warnw("snapshot refresh after receipt import failed", "error", err)
		}
	}
	return result, nil
}

func (s *expenseService) Ask(text string) (assistant.Result, error) {
	return s.conv.Ask(text, s.snapshot)
}

func (s *expenseService) Messages() []models.ChatMessage {
	return s.conv.Messages()
}
