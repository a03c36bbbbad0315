package assistant

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"paisa/internal/currency"
	"paisa/internal/models"
	"paisa/internal/testutil"
)

func newTestEngine() *Engine {
	e := NewEngine(currency.NewFormatter("INR"))
	// Pin the clock so temporal rules are deterministic.
	e.now = func() time.Time {
		return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	}
	return e
}

func TestTotalSpend(t *testing.T) {
	e := newTestEngine()

	t.Run("sums_all_expenses", func(t *testing.T) {
		snapshot := []models.Expense{
			testutil.NewExpense(100, models.CategoryFoodDining, "2024-01-01"),
			testutil.NewExpense(50, models.CategoryTransportation, "2024-01-02"),
		}

		res := e.Ask("how much have i spent in total?", snapshot)

		if !strings.Contains(res.Answer, "₹150.00") {
			t.Errorf("answer %q should contain ₹150.00", res.Answer)
		}
		if !strings.Contains(res.Answer, "2 expenses") {
			t.Errorf("answer %q should contain '2 expenses'", res.Answer)
		}
		if res.Data == nil || res.Data.Total == nil || *res.Data.Total != 150 {
			t.Errorf("unexpected payload %+v", res.Data)
		}
		if res.Data.Count == nil || *res.Data.Count != 2 {
			t.Errorf("unexpected count %+v", res.Data.Count)
		}
	})

	t.Run("empty_collection", func(t *testing.T) {
		res := e.Ask("total", []models.Expense{})

		if res.Data == nil || *res.Data.Total != 0 || *res.Data.Count != 0 {
			t.Errorf("unexpected payload %+v", res.Data)
		}
		if !strings.Contains(res.Answer, "₹0.00") {
			t.Errorf("answer %q should contain ₹0.00", res.Answer)
		}
	})

	t.Run("exact_fractional_sum", func(t *testing.T) {
		snapshot := []models.Expense{
			testutil.NewExpense(0.1, models.CategoryOther, "2024-01-01"),
			testutil.NewExpense(0.2, models.CategoryOther, "2024-01-02"),
		}
		res := e.Ask("total spent", snapshot)
		if !strings.Contains(res.Answer, "₹0.30") {
			t.Errorf("answer %q should contain exactly ₹0.30", res.Answer)
		}
	})
}

func TestRecent(t *testing.T) {
	e := newTestEngine()
	snapshot := []models.Expense{
		testutil.NewExpense(10, models.CategoryOther, "2024-03-01"),
		testutil.NewExpense(20, models.CategoryOther, "2024-03-09"),
		testutil.NewExpense(30, models.CategoryOther, "2024-03-05"),
		testutil.NewExpense(40, models.CategoryOther, "2024-03-09"),
		testutil.NewExpense(50, models.CategoryOther, "2024-02-20"),
	}

	t.Run("default_limit_and_order", func(t *testing.T) {
		res := e.Ask("recent expenses", snapshot)

		got := res.Data.Expenses
		if len(got) != 3 {
			t.Fatalf("expected 3 expenses, got %d", len(got))
		}
		for i := 1; i < len(got); i++ {
			if got[i-1].Date < got[i].Date {
				t.Errorf("expenses not sorted by date descending: %v before %v", got[i-1].Date, got[i].Date)
			}
		}
		// Equal dates keep original order.
		if got[0].Amount != 20 || got[1].Amount != 40 {
			t.Errorf("tie not stable: %v, %v", got[0].Amount, got[1].Amount)
		}
	})

	t.Run("requested_limit_capped_by_collection", func(t *testing.T) {
		res := e.Ask("show me my last 10 expenses", snapshot)
		if len(res.Data.Expenses) != 5 {
			t.Errorf("expected all 5 expenses, got %d", len(res.Data.Expenses))
		}
	})

	t.Run("snapshot_not_mutated", func(t *testing.T) {
		before := append([]models.Expense{}, snapshot...)
		_ = e.Ask("recent expenses", snapshot)
		if !reflect.DeepEqual(before, snapshot) {
			t.Error("aggregation must not reorder the snapshot")
		}
	})
}

func TestAboveThreshold(t *testing.T) {
	e := newTestEngine()

	t.Run("filters_strictly_above", func(t *testing.T) {
		snapshot := []models.Expense{
			testutil.NewExpense(100, models.CategoryFoodDining, "2024-01-01"),
			testutil.NewExpense(50, models.CategoryTransportation, "2024-01-02"),
			testutil.NewExpense(75, models.CategoryOther, "2024-01-03"),
		}

		res := e.Ask("show me expenses above 75", snapshot)

		if len(res.Data.Expenses) != 1 || res.Data.Expenses[0].Amount != 100 {
			t.Errorf("expected only the 100 record, got %+v", res.Data.Expenses)
		}
		if !strings.Contains(res.Answer, "1 expense") {
			t.Errorf("answer %q should cite the count", res.Answer)
		}
	})

	t.Run("payload_capped_at_five", func(t *testing.T) {
		var snapshot []models.Expense
		for i := 0; i < 8; i++ {
			snapshot = append(snapshot, testutil.NewExpense(1000, models.CategoryOther, "2024-01-01"))
		}

		res := e.Ask("expenses over 500", snapshot)

		if len(res.Data.Expenses) != 5 {
			t.Errorf("expected payload capped at 5, got %d", len(res.Data.Expenses))
		}
		if !strings.Contains(res.Answer, "8 expenses") {
			t.Errorf("answer %q should cite the uncapped count", res.Answer)
		}
	})
}

func TestTodayAndYesterday(t *testing.T) {
	e := newTestEngine() // pinned to 2024-03-15
	snapshot := []models.Expense{
		testutil.NewExpense(100, models.CategoryFoodDining, "2024-03-15"),
		testutil.NewExpense(200, models.CategoryFoodDining, "2024-03-14"),
		testutil.NewExpense(300, models.CategoryFoodDining, "2024-03-01"),
	}

	t.Run("today", func(t *testing.T) {
		res := e.Ask("what did I spend today?", snapshot)
		if len(res.Data.Expenses) != 1 || res.Data.Expenses[0].Amount != 100 {
			t.Errorf("unexpected expenses %+v", res.Data.Expenses)
		}
		if !strings.Contains(res.Answer, "₹100.00") {
			t.Errorf("answer %q should cite the sum", res.Answer)
		}
	})

	t.Run("yesterday", func(t *testing.T) {
		res := e.Ask("and yesterday?", snapshot)
		if len(res.Data.Expenses) != 1 || res.Data.Expenses[0].Amount != 200 {
			t.Errorf("unexpected expenses %+v", res.Data.Expenses)
		}
	})

	t.Run("empty_day", func(t *testing.T) {
		res := e.Ask("today", nil)
		if !strings.Contains(res.Answer, "₹0.00") || !strings.Contains(res.Answer, "0 expenses") {
			t.Errorf("answer %q should cite zero sum and count", res.Answer)
		}
	})
}

func TestCategoryKeywordAggregation(t *testing.T) {
	e := newTestEngine()
	snapshot := []models.Expense{
		testutil.NewExpense(100, models.CategoryFoodDining, "2024-01-01"),
		testutil.NewExpense(50, models.CategoryTransportation, "2024-01-02"),
	}

	t.Run("matching_category", func(t *testing.T) {
		res := e.Ask("food", snapshot)

		if res.Data.Total == nil || *res.Data.Total != 100 {
			t.Errorf("unexpected total %+v", res.Data.Total)
		}
		if res.Data.Category != "food" {
			t.Errorf("payload category should be the trigger keyword, got %q", res.Data.Category)
		}
		if len(res.Data.Expenses) != 1 || res.Data.Expenses[0].Amount != 100 {
			t.Errorf("unexpected expenses %+v", res.Data.Expenses)
		}
	})

	t.Run("multi_category_keyword", func(t *testing.T) {
		res := e.Ask("travel", snapshot)
		// "travel" covers Transportation and Travel & Vacation.
		if len(res.Data.Expenses) != 1 || res.Data.Expenses[0].Category != models.CategoryTransportation {
			t.Errorf("unexpected expenses %+v", res.Data.Expenses)
		}
	})

	t.Run("no_spend_in_category", func(t *testing.T) {
		res := e.Ask("emi", snapshot)

		if !strings.Contains(res.Answer, "haven't spent anything on emi") {
			t.Errorf("unexpected answer %q", res.Answer)
		}
		if res.Data.Total == nil || *res.Data.Total != 0 {
			t.Errorf("expected zero total, got %+v", res.Data.Total)
		}
		if res.Data.Expenses == nil || len(res.Data.Expenses) != 0 {
			t.Errorf("expected empty expense list, got %+v", res.Data.Expenses)
		}
	})
}

func TestWeekAndMonth(t *testing.T) {
	e := newTestEngine() // pinned to 2024-03-15
	snapshot := []models.Expense{
		testutil.NewExpense(100, models.CategoryOther, "2024-03-15"),
		testutil.NewExpense(200, models.CategoryOther, "2024-03-09"),
		testutil.NewExpense(400, models.CategoryOther, "2024-03-07"), // 8 days ago
		testutil.NewExpense(800, models.CategoryOther, "2024-02-28"),
	}

	t.Run("week_window", func(t *testing.T) {
		res := e.Ask("this week", snapshot)
		if *res.Data.Total != 300 {
			t.Errorf("expected week total 300, got %v", *res.Data.Total)
		}
		if len(res.Data.Expenses) != 2 {
			t.Errorf("expected 2 expenses in window, got %d", len(res.Data.Expenses))
		}
	})

	t.Run("month_prefix", func(t *testing.T) {
		res := e.Ask("how much this month", snapshot)
		if *res.Data.Total != 700 {
			t.Errorf("expected month total 700, got %v", *res.Data.Total)
		}
	})
}

func TestTopExpenses(t *testing.T) {
	e := newTestEngine()
	snapshot := []models.Expense{
		testutil.NewExpense(10, models.CategoryOther, "2024-01-01"),
		testutil.NewExpense(500, models.CategoryOther, "2024-01-02"),
		testutil.NewExpense(300, models.CategoryOther, "2024-01-03"),
		testutil.NewExpense(700, models.CategoryOther, "2024-01-04"),
		testutil.NewExpense(200, models.CategoryOther, "2024-01-05"),
		testutil.NewExpense(400, models.CategoryOther, "2024-01-06"),
	}

	res := e.Ask("what are my biggest expenses?", snapshot)

	got := res.Data.Expenses
	if len(got) != 5 {
		t.Fatalf("expected top 5, got %d", len(got))
	}
	want := []float64{700, 500, 400, 300, 200}
	for i, amount := range want {
		if got[i].Amount != amount {
			t.Errorf("position %d: got %v, want %v", i, got[i].Amount, amount)
		}
	}
}

func TestCategoryBreakdown(t *testing.T) {
	e := newTestEngine()
	snapshot := []models.Expense{
		testutil.NewExpense(100, models.CategoryFoodDining, "2024-01-01"),
		testutil.NewExpense(200, models.CategoryFoodDining, "2024-01-02"),
		testutil.NewExpense(500, models.CategoryTransportation, "2024-01-03"),
		testutil.NewExpense(50, models.CategoryEntertainment, "2024-01-04"),
		testutil.NewExpense(75, models.CategoryHealthcare, "2024-01-05"),
		testutil.NewExpense(25, models.CategoryPersonalCare, "2024-01-06"),
		testutil.NewExpense(10, models.CategoryOther, "2024-01-07"),
	}

	res := e.Ask("category breakdown", snapshot)

	pairs := res.Data.Categories
	if len(pairs) != 5 {
		t.Fatalf("expected 5 pairs, got %d", len(pairs))
	}
	if pairs[0].Category != string(models.CategoryTransportation) || pairs[0].Total != 500 {
		t.Errorf("unexpected leading pair %+v", pairs[0])
	}
	if pairs[1].Category != string(models.CategoryFoodDining) || pairs[1].Total != 300 {
		t.Errorf("unexpected second pair %+v", pairs[1])
	}

	var pairSum, overall float64
	for _, p := range pairs {
		pairSum += p.Total
	}
	for _, exp := range snapshot {
		overall += exp.Amount
	}
	if pairSum > overall {
		t.Errorf("pair sum %v exceeds overall spend %v", pairSum, overall)
	}
	for i := 1; i < len(pairs); i++ {
		if pairs[i-1].Total < pairs[i].Total {
			t.Errorf("pairs not sorted descending at %d", i)
		}
	}

	if !strings.Contains(res.Answer, "Transportation: ₹500.00") {
		t.Errorf("answer %q should join category: amount parts", res.Answer)
	}
}

func TestMerchantAggregation(t *testing.T) {
	e := newTestEngine()
	snapshot := []models.Expense{
		testutil.NewMerchantExpense(300, "Starbucks", "Coffee and cake", "2024-01-01"),
		testutil.NewMerchantExpense(450, "Amazon", "USB cable", "2024-01-02"),
		testutil.NewMerchantExpense(120, "", "Snacks at Starbucks counter", "2024-01-03"),
	}

	res := e.Ask("how much did I spend at starbucks", snapshot)

	if len(res.Data.Expenses) != 2 {
		t.Fatalf("expected 2 matching expenses, got %d", len(res.Data.Expenses))
	}
	if !strings.Contains(res.Answer, "₹420.00") {
		t.Errorf("answer %q should cite the matched sum", res.Answer)
	}
}

func TestUnknown(t *testing.T) {
	e := newTestEngine()

	res := e.Ask("what's the meaning of life", nil)

	if res.Data != nil {
		t.Errorf("unknown intent must not carry a payload, got %+v", res.Data)
	}
	if !strings.Contains(res.Answer, "Try asking") {
		t.Errorf("expected help text, got %q", res.Answer)
	}
}

func TestAskIsIdempotent(t *testing.T) {
	e := newTestEngine()
	snapshot := []models.Expense{
		testutil.NewExpense(100, models.CategoryFoodDining, "2024-03-15"),
		testutil.NewExpense(50, models.CategoryTransportation, "2024-03-14"),
	}

	for _, text := range []string{"total", "recent", "food", "category breakdown", "today"} {
		first := e.Ask(text, snapshot)
		second := e.Ask(text, snapshot)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Ask(%q) not idempotent:\nfirst:  %+v\nsecond: %+v", text, first, second)
		}
	}
}
