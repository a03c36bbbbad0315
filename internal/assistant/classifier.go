package assistant

import (
	"strconv"
	"strings"

	"paisa/internal/models"
)

// question carries the normalized text, the expense snapshot, and whatever
// parameters the matching rule extracted.
type question struct {
	text     string
	expenses []models.Expense

	limit      int
	threshold  float64
	keyword    string
	categories []models.Category
	merchant   string
}

func (q *question) has(s string) bool { return strings.Contains(q.text, s) }

// rule pairs an intent with its predicate. Predicates may stash extracted
// parameters on the question.
type rule struct {
	intent Intent
	match  func(q *question) bool
}

// rules is the classifier: an ordered list evaluated top to bottom, first
// match wins. The order is load-bearing — overlapping keyword sets are
// resolved purely by position here, never by specificity or scoring.
var rules = []rule{
	{IntentTotalSpend, matchTotalSpend},
	{IntentRecent, matchRecent},
	{IntentAboveThreshold, matchAboveThreshold},
	{IntentToday, func(q *question) bool { return q.has("today") }},
	{IntentYesterday, func(q *question) bool { return q.has("yesterday") }},
	{IntentCategoryKeyword, matchCategoryKeyword},
	{IntentWeek, func(q *question) bool { return q.has("week") || q.has("weekly") }},
	{IntentMonth, func(q *question) bool { return q.has("month") || q.has("monthly") }},
	{IntentTopExpenses, matchTopExpenses},
	{IntentCategoryBreakdown, matchCategoryBreakdown},
	{IntentMerchant, matchMerchant},
}

// classify normalizes the text and returns the first matching intent along
// with the extracted parameters. Unmatched text resolves to IntentUnknown.
func classify(text string, expenses []models.Expense) (Intent, *question) {
	q := &question{
		text:     strings.ToLower(strings.TrimSpace(text)),
		expenses: expenses,
	}
	for _, r := range rules {
		if r.match(q) {
			return r.intent, q
		}
	}
	return IntentUnknown, q
}

func matchTotalSpend(q *question) bool {
	if q.has("total") && (q.has("spent") || q.has("spending")) {
		return true
	}
	return q.text == "total" || q.has("how much have i spent in total")
}

func matchRecent(q *question) bool {
	if !q.has("recent") && !q.has("latest") && !q.has("last") && !q.has("show me") {
		return false
	}
	// "show me expenses above 500" belongs to the threshold rule.
	if thresholdPattern(q.text) {
		return false
	}
	switch {
	case q.has("5") || q.has("five"):
		q.limit = 5
	case q.has("10") || q.has("ten"):
		q.limit = 10
	default:
		q.limit = 3
	}
	return true
}

func matchAboveThreshold(q *question) bool {
	// No extractable numeral means this rule is skipped, not defaulted.
	if !thresholdPattern(q.text) {
		return false
	}
	q.threshold, _ = firstNumber(q.text)
	return true
}

func thresholdPattern(text string) bool {
	if !strings.Contains(text, "above") && !strings.Contains(text, "over") && !strings.Contains(text, "more than") {
		return false
	}
	_, ok := firstNumber(text)
	return ok
}

func matchCategoryKeyword(q *question) bool {
	for _, k := range categoryKeywords {
		if q.has(k.keyword) {
			q.keyword = k.keyword
			q.categories = k.categories
			return true
		}
	}
	return false
}

func matchTopExpenses(q *question) bool {
	return q.has("highest") || q.has("largest") || q.has("biggest") || q.has("top")
}

func matchCategoryBreakdown(q *question) bool {
	return q.has("category") || q.has("breakdown") || q.has("categories")
}

func matchMerchant(q *question) bool {
	token, ok := merchantToken(q.text)
	if !ok {
		return false
	}
	for _, e := range q.expenses {
		if containsFold(e.Description, token) || containsFold(e.Merchant, token) {
			q.merchant = token
			return true
		}
	}
	return false
}

// merchantToken returns the word after the last occurrence of "from" or
// "at". The last word of the question has no successor, so the rule does not
// apply there.
func merchantToken(text string) (string, bool) {
	fields := strings.Fields(text)
	last := -1
	for i, w := range fields {
		w = strings.Trim(w, `?.,!"'`)
		if w == "from" || w == "at" {
			last = i
		}
	}
	if last < 0 || last+1 >= len(fields) {
		return "", false
	}
	token := strings.Trim(fields[last+1], `?.,!"'`)
	return token, token != ""
}

// firstNumber extracts the first run of digits (with an optional fraction)
// found in a left-to-right scan.
func firstNumber(s string) (float64, bool) {
	start := -1
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			start = i
			break
		}
	}
	if start < 0 {
		return 0, false
	}

	end := start
	seenDot := false
	for end < len(s) {
		switch {
		case s[end] >= '0' && s[end] <= '9':
			end++
		case s[end] == '.' && !seenDot && end+1 < len(s) && s[end+1] >= '0' && s[end+1] <= '9':
			seenDot = true
			end++
		default:
			return parseNumber(s[start:end])
		}
	}
	return parseNumber(s[start:end])
}

func parseNumber(s string) (float64, bool) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), sub)
}
