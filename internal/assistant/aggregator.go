package assistant

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"paisa/internal/currency"
	"paisa/internal/models"
)

// resultCap bounds the expense lists attached to answer payloads.
const resultCap = 5

// Result is the assistant's answer to one question: rendered text plus the
// optional structured payload backing it.
type Result struct {
	Answer string
	Data   *models.Payload
}

// Engine answers free-text questions over an expense snapshot. It never
// mutates the snapshot and never fails on well-formed input, including an
// empty collection.
type Engine struct {
	fmtr *currency.Formatter
	now  func() time.Time
}

// NewEngine creates an engine rendering amounts with the given formatter.
func NewEngine(f *currency.Formatter) *Engine {
	return &Engine{fmtr: f, now: time.Now}
}

// Ask classifies the question and computes the answer. It is a pure function
// of (text, expenses): the same inputs always yield the same result.
func (e *Engine) Ask(text string, expenses []models.Expense) Result {
	intent, q := classify(text, expenses)
	return e.aggregate(intent, q)
}

func (e *Engine) aggregate(intent Intent, q *question) Result {
	switch intent {
	case IntentTotalSpend:
		return e.totalSpend(q)
	case IntentRecent:
		return e.recent(q)
	case IntentAboveThreshold:
		return e.aboveThreshold(q)
	case IntentToday:
		return e.onDate(q, e.today(), "today")
	case IntentYesterday:
		return e.onDate(q, e.yesterday(), "yesterday")
	case IntentCategoryKeyword:
		return e.byCategory(q)
	case IntentWeek:
		return e.lastWeek(q)
	case IntentMonth:
		return e.thisMonth(q)
	case IntentTopExpenses:
		return e.topExpenses(q)
	case IntentCategoryBreakdown:
		return e.categoryBreakdown(q)
	case IntentMerchant:
		return e.byMerchant(q)
	default:
		return Result{Answer: helpText}
	}
}

func (e *Engine) totalSpend(q *question) Result {
	total := sumAmounts(q.expenses)
	count := len(q.expenses)
	return Result{
		Answer: fmt.Sprintf("You've spent %s in total across %s.", e.fmtr.FormatDecimal(total), countNoun(count)),
		Data: &models.Payload{
			Total: floatPtr(total.InexactFloat64()),
			Count: intPtr(count),
		},
	}
}

func (e *Engine) recent(q *question) Result {
	selected := sortedByDateDesc(q.expenses)
	if len(selected) > q.limit {
		selected = selected[:q.limit]
	}
	if len(selected) == 0 {
		return Result{
			Answer: "You don't have any expenses recorded yet.",
			Data:   &models.Payload{Expenses: selected},
		}
	}
	return Result{
		Answer: fmt.Sprintf("Here are your %d most recent expenses.", len(selected)),
		Data:   &models.Payload{Expenses: selected},
	}
}

func (e *Engine) aboveThreshold(q *question) Result {
	filtered := filter(q.expenses, func(exp models.Expense) bool {
		return exp.Amount > q.threshold
	})
	return Result{
		Answer: fmt.Sprintf("Found %s above %s.", countNoun(len(filtered)), e.fmtr.Format(q.threshold)),
		Data:   &models.Payload{Expenses: capped(filtered)},
	}
}

func (e *Engine) onDate(q *question, date, label string) Result {
	filtered := filter(q.expenses, func(exp models.Expense) bool {
		return exp.Date == date
	})
	total := sumAmounts(filtered)
	return Result{
		Answer: fmt.Sprintf("You've spent %s %s across %s.", e.fmtr.FormatDecimal(total), label, countNoun(len(filtered))),
		Data:   &models.Payload{Expenses: filtered},
	}
}

func (e *Engine) byCategory(q *question) Result {
	filtered := filter(q.expenses, func(exp models.Expense) bool {
		for _, c := range q.categories {
			if exp.Category == c {
				return true
			}
		}
		return false
	})

	if len(filtered) == 0 {
		return Result{
			Answer: fmt.Sprintf("You haven't spent anything on %s yet.", q.keyword),
			Data: &models.Payload{
				Total:    floatPtr(0),
				Category: q.keyword,
				Expenses: []models.Expense{},
			},
		}
	}

	total := sumAmounts(filtered)
	return Result{
		Answer: fmt.Sprintf("You've spent %s on %s across %s.", e.fmtr.FormatDecimal(total), q.keyword, countNoun(len(filtered))),
		Data: &models.Payload{
			Total:    floatPtr(total.InexactFloat64()),
			Category: q.keyword,
			Expenses: capped(filtered),
		},
	}
}

func (e *Engine) lastWeek(q *question) Result {
	// YYYY-MM-DD strings compare in date order.
	cutoff := e.now().AddDate(0, 0, -7).Format(models.DateLayout)
	filtered := filter(q.expenses, func(exp models.Expense) bool {
		return exp.Date >= cutoff
	})
	total := sumAmounts(filtered)
	return Result{
		Answer: fmt.Sprintf("You've spent %s in the last 7 days across %s.", e.fmtr.FormatDecimal(total), countNoun(len(filtered))),
		Data: &models.Payload{
			Total:    floatPtr(total.InexactFloat64()),
			Expenses: capped(filtered),
		},
	}
}

func (e *Engine) thisMonth(q *question) Result {
	prefix := e.now().Format("2006-01")
	filtered := filter(q.expenses, func(exp models.Expense) bool {
		return strings.HasPrefix(exp.Date, prefix)
	})
	total := sumAmounts(filtered)
	return Result{
		Answer: fmt.Sprintf("You've spent %s this month across %s.", e.fmtr.FormatDecimal(total), countNoun(len(filtered))),
		Data: &models.Payload{
			Total:    floatPtr(total.InexactFloat64()),
			Expenses: capped(filtered),
		},
	}
}

func (e *Engine) topExpenses(q *question) Result {
	top := sortedByAmountDesc(q.expenses)
	top = capped(top)
	if len(top) == 0 {
		return Result{
			Answer: "You don't have any expenses recorded yet.",
			Data:   &models.Payload{Expenses: top},
		}
	}
	return Result{
		Answer: fmt.Sprintf("Here are your %d biggest expenses.", len(top)),
		Data:   &models.Payload{Expenses: top},
	}
}

func (e *Engine) categoryBreakdown(q *question) Result {
	totals := make(map[models.Category]decimal.Decimal)
	var order []models.Category
	for _, exp := range q.expenses {
		if _, seen := totals[exp.Category]; !seen {
			order = append(order, exp.Category)
		}
		totals[exp.Category] = totals[exp.Category].Add(decimal.NewFromFloat(exp.Amount))
	}

	// Ties keep first-seen order.
	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]].GreaterThan(totals[order[j]])
	})
	if len(order) > resultCap {
		order = order[:resultCap]
	}

	if len(order) == 0 {
		return Result{
			Answer: "You don't have any expenses recorded yet.",
			Data:   &models.Payload{Categories: []models.CategoryTotal{}},
		}
	}

	pairs := make([]models.CategoryTotal, 0, len(order))
	parts := make([]string, 0, len(order))
	for _, c := range order {
		pairs = append(pairs, models.CategoryTotal{Category: string(c), Total: totals[c].InexactFloat64()})
		parts = append(parts, fmt.Sprintf("%s: %s", c, e.fmtr.FormatDecimal(totals[c])))
	}

	return Result{
		Answer: "Here's where your money goes: " + strings.Join(parts, ", "),
		Data:   &models.Payload{Categories: pairs},
	}
}

func (e *Engine) byMerchant(q *question) Result {
	filtered := filter(q.expenses, func(exp models.Expense) bool {
		return containsFold(exp.Description, q.merchant) || containsFold(exp.Merchant, q.merchant)
	})
	total := sumAmounts(filtered)
	return Result{
		Answer: fmt.Sprintf("You've spent %s at %s across %s.", e.fmtr.FormatDecimal(total), q.merchant, countNoun(len(filtered))),
		Data:   &models.Payload{Expenses: capped(filtered)},
	}
}

const helpText = "I can answer questions about your expenses. Try asking:\n" +
	"- How much have I spent in total?\n" +
	"- Show me my recent expenses\n" +
	"- Which expenses were above 500?\n" +
	"- How much did I spend today?\n" +
	"- How much am I spending on food?\n" +
	"- What are my biggest expenses?\n" +
	"- Give me a category breakdown"

func (e *Engine) today() string {
	return e.now().Format(models.DateLayout)
}

// yesterday is today minus exactly 24 hours, not calendar-aware.
func (e *Engine) yesterday() string {
	return e.now().Add(-24 * time.Hour).Format(models.DateLayout)
}

func sumAmounts(expenses []models.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, exp := range expenses {
		total = total.Add(decimal.NewFromFloat(exp.Amount))
	}
	return total
}

func filter(expenses []models.Expense, keep func(models.Expense) bool) []models.Expense {
	out := []models.Expense{}
	for _, exp := range expenses {
		if keep(exp) {
			out = append(out, exp)
		}
	}
	return out
}

func sortedByDateDesc(expenses []models.Expense) []models.Expense {
	out := append([]models.Expense{}, expenses...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

func sortedByAmountDesc(expenses []models.Expense) []models.Expense {
	out := append([]models.Expense{}, expenses...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Amount > out[j].Amount })
	return out
}

func capped(expenses []models.Expense) []models.Expense {
	if len(expenses) > resultCap {
		return expenses[:resultCap]
	}
	return expenses
}

func countNoun(n int) string {
	if n == 1 {
		return "1 expense"
	}
	return fmt.Sprintf("%d expenses", n)
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(n int) *int           { return &n }
