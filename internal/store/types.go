package store

import (
	"github.com/go-playground/validator/v10"

	"paisa/internal/models"
)

// User is the account record returned by the expense store.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// Token is the bearer token issued at login.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CreateExpenseRequest carries the fields for a new manual expense.
// Category may be left empty; the store then categorizes server-side.
type CreateExpenseRequest struct {
	Title       string          `json:"title" validate:"required"`
	Amount      float64         `json:"amount" validate:"gte=0"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	Category    models.Category `json:"category" validate:"omitempty,category"`
	Description string          `json:"description"`
	Merchant    string          `json:"merchant,omitempty"`
	UserID      string          `json:"user_id"`
}

// MonthlyTotal is one month's aggregate from the analytics endpoint.
type MonthlyTotal struct {
	Month string  `json:"month"` // YYYY-MM
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// CategoryInsight is a per-category aggregate from the insights endpoint.
type CategoryInsight struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

// Insights is the store's spending overview for the authenticated user.
type Insights struct {
	TotalSpending     float64           `json:"total_spending"`
	TotalTransactions int               `json:"total_transactions"`
	Categories        []CategoryInsight `json:"categories"`
	SpendingTrend     float64           `json:"spending_trend"` // percent vs previous 30 days
}

// CategoryShare is a per-category aggregate with its share of total spend.
type CategoryShare struct {
	Category   string  `json:"category"`
	Total      float64 `json:"total"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// ExpenseStatistics summarizes overall spend for the dashboard.
type ExpenseStatistics struct {
	TotalSpent            float64 `json:"total_spent"`
	TotalTransactions     int     `json:"total_transactions"`
	AveragePerTransaction float64 `json:"average_per_transaction"`
}

// AccountInfo carries account metadata for the dashboard.
type AccountInfo struct {
	MemberSince string `json:"member_since"`
	LastLogin   string `json:"last_login"`
}

// Dashboard is the store's combined dashboard response.
type Dashboard struct {
	UserInfo          User              `json:"user_info"`
	ExpenseStatistics ExpenseStatistics `json:"expense_statistics"`
	CategoryBreakdown []CategoryShare   `json:"category_breakdown"`
	RecentExpenses    []models.Expense  `json:"recent_expenses"`
	MonthlyTrend      []MonthlyTotal    `json:"monthly_trend"`
	AccountInfo       AccountInfo       `json:"account_info"`
}

// ExtractedReceipt is the structured data the store's OCR pipeline produced.
type ExtractedReceipt struct {
	Amount             float64           `json:"amount"`
	Date               string            `json:"date"`
	Merchant           string            `json:"merchant"`
	Category           string            `json:"category"`
	Description        string            `json:"description"`
	Items              []models.LineItem `json:"items"`
	ReceiptURL         string            `json:"receipt_url"`
	RawText            string            `json:"raw_text"`
	CategoryConfidence string            `json:"category_confidence"`
	CategoryReason     string            `json:"category_reason"`
	NeedsConfirmation  bool              `json:"needs_confirmation"`
}

// ReceiptResult is the outcome of a receipt upload. The extraction itself is
// opaque to this client; only the structured fields below are consumed.
type ReceiptResult struct {
	Success        bool              `json:"success"`
	Message        string            `json:"message"`
	Error          string            `json:"error"`
	ErrorType      string            `json:"error_type"`
	ExpenseCreated bool              `json:"expense_created"`
	ExpenseID      string            `json:"expense_id"`
	Extracted      *ExtractedReceipt `json:"extracted_data"`
}

// newValidator builds the request validator with the category label check.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return models.Category(fl.Field().String()).IsValid()
	})
	return v
}
