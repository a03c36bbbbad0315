// Package assistant implements the rule-based query engine that answers
// free-text questions about a user's expense collection.
package assistant

// Intent is the classified meaning of a question, drawn from a fixed set.
type Intent string

const (
	IntentTotalSpend        Intent = "total_spend"
	IntentRecent            Intent = "recent"
	IntentAboveThreshold    Intent = "above_threshold"
	IntentToday             Intent = "today"
	IntentYesterday         Intent = "yesterday"
	IntentCategoryKeyword   Intent = "category_keyword"
	IntentWeek              Intent = "week"
	IntentMonth             Intent = "month"
	IntentTopExpenses       Intent = "top_expenses"
	IntentCategoryBreakdown Intent = "category_breakdown"
	IntentMerchant          Intent = "merchant"
	IntentUnknown           Intent = "unknown"
)
