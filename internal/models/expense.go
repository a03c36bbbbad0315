package models

// DateLayout is the calendar date format used by the expense store.
// All temporal filtering works on this lexicographically date-ordered form.
const DateLayout = "2006-01-02"

// Category represents one of the fixed expense category labels.
type Category string

const (
	CategoryFoodDining         Category = "Food & Dining"
	CategoryGroceriesHousehold Category = "Groceries & Household"
	CategoryTransportation     Category = "Transportation"
	CategoryShoppingClothes    Category = "Shopping & Clothes"
	CategoryEntertainment      Category = "Entertainment"
	CategoryBillsUtilities     Category = "Bills & Utilities"
	CategoryMobileInternet     Category = "Mobile & Internet"
	CategoryHealthcare         Category = "Healthcare"
	CategoryEducationCourses   Category = "Education & Courses"
	CategoryTravelVacation     Category = "Travel & Vacation"
	CategoryPersonalCare       Category = "Personal Care"
	CategoryHomeFamily         Category = "Home & Family"
	CategoryGiftsFestivals     Category = "Gifts & Festivals"
	CategoryEMILoans           Category = "EMI & Loans"
	CategoryInvestmentsSIP     Category = "Investments & SIP"
	CategoryOther              Category = "Other"
)

// Categories returns the fixed set of category labels in display order.
func Categories() []Category {
	return []Category{
		CategoryFoodDining,
		CategoryGroceriesHousehold,
		CategoryTransportation,
		CategoryShoppingClothes,
		CategoryEntertainment,
		CategoryBillsUtilities,
		CategoryMobileInternet,
		CategoryHealthcare,
		CategoryEducationCourses,
		CategoryTravelVacation,
		CategoryPersonalCare,
		CategoryHomeFamily,
		CategoryGiftsFestivals,
		CategoryEMILoans,
		CategoryInvestmentsSIP,
		CategoryOther,
	}
}

// IsValid reports whether c is one of the fixed category labels.
func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// LineItem is a single receipt line, present only on receipt-derived expenses.
type LineItem struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Amount    float64 `json:"amount"`
	UnitPrice float64 `json:"unit_price"`
}

// Expense represents a single recorded transaction as held by the expense
// store. Instances are read-only once created; the store owns their lifecycle.
type Expense struct {
	ID          string   `json:"id"`
	UserID      string   `json:"user_id,omitempty"`
	Title       string   `json:"title"`
	Amount      float64  `json:"amount"`
	Date        string   `json:"date"` // YYYY-MM-DD
	Category    Category `json:"category"`
	Description string   `json:"description,omitempty"`
	Merchant    string   `json:"merchant,omitempty"`

	// Categorization provenance, set by the store when it picked the
	// category itself. Confidence is absent for manual categories.
	AICategorized bool     `json:"ai_categorized,omitempty"`
	AIConfidence  *float64 `json:"ai_confidence,omitempty"`

	// Receipt extraction provenance
	Items              []LineItem `json:"items,omitempty"`
	ReceiptURL         string     `json:"receipt_url,omitempty"`
	RawText            string     `json:"raw_text,omitempty"`
	CategoryConfidence string     `json:"category_confidence,omitempty"`
	CategoryReason     string     `json:"category_reason,omitempty"`
	ExtractedDate      string     `json:"extracted_date,omitempty"`
	NeedsConfirmation  bool       `json:"needs_confirmation,omitempty"`
}
