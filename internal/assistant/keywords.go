package assistant

import "paisa/internal/models"

// categoryKeyword maps a lowercase trigger word to one or more category
// labels. The table is ordered: the first keyword contained in the question
// wins, so broader triggers sit after the specific ones they would shadow.
type categoryKeyword struct {
	keyword    string
	categories []models.Category
}

var categoryKeywords = []categoryKeyword{
	{"food", []models.Category{models.CategoryFoodDining}},
	{"dining", []models.Category{models.CategoryFoodDining}},
	{"restaurant", []models.Category{models.CategoryFoodDining}},
	{"eat", []models.Category{models.CategoryFoodDining}},
	{"meal", []models.Category{models.CategoryFoodDining}},
	{"groceries", []models.Category{models.CategoryGroceriesHousehold}},
	{"grocery", []models.Category{models.CategoryGroceriesHousehold}},
	{"household", []models.Category{models.CategoryGroceriesHousehold}},
	{"travel", []models.Category{models.CategoryTransportation, models.CategoryTravelVacation}},
	{"transport", []models.Category{models.CategoryTransportation}},
	{"taxi", []models.Category{models.CategoryTransportation}},
	{"uber", []models.Category{models.CategoryTransportation}},
	{"fuel", []models.Category{models.CategoryTransportation}},
	{"petrol", []models.Category{models.CategoryTransportation}},
	{"shopping", []models.Category{models.CategoryShoppingClothes}},
	{"clothes", []models.Category{models.CategoryShoppingClothes}},
	{"clothing", []models.Category{models.CategoryShoppingClothes}},
	{"entertainment", []models.Category{models.CategoryEntertainment}},
	{"movie", []models.Category{models.CategoryEntertainment}},
	{"electricity", []models.Category{models.CategoryBillsUtilities}},
	{"utilities", []models.Category{models.CategoryBillsUtilities}},
	{"bill", []models.Category{models.CategoryBillsUtilities}},
	{"recharge", []models.Category{models.CategoryMobileInternet}},
	{"mobile", []models.Category{models.CategoryMobileInternet}},
	{"internet", []models.Category{models.CategoryMobileInternet}},
	{"wifi", []models.Category{models.CategoryMobileInternet}},
	{"medical", []models.Category{models.CategoryHealthcare}},
	{"medicine", []models.Category{models.CategoryHealthcare}},
	{"doctor", []models.Category{models.CategoryHealthcare}},
	{"pharmacy", []models.Category{models.CategoryHealthcare}},
	{"health", []models.Category{models.CategoryHealthcare}},
	{"education", []models.Category{models.CategoryEducationCourses}},
	{"course", []models.Category{models.CategoryEducationCourses}},
	{"tuition", []models.Category{models.CategoryEducationCourses}},
	{"vacation", []models.Category{models.CategoryTravelVacation}},
	{"trip", []models.Category{models.CategoryTravelVacation}},
	{"hotel", []models.Category{models.CategoryTravelVacation}},
	{"flight", []models.Category{models.CategoryTravelVacation}},
	{"salon", []models.Category{models.CategoryPersonalCare}},
	{"haircut", []models.Category{models.CategoryPersonalCare}},
	{"grooming", []models.Category{models.CategoryPersonalCare}},
	{"rent", []models.Category{models.CategoryHomeFamily}},
	{"gifts", []models.Category{models.CategoryGiftsFestivals}},
	{"gift", []models.Category{models.CategoryGiftsFestivals}},
	{"festival", []models.Category{models.CategoryGiftsFestivals}},
	{"diwali", []models.Category{models.CategoryGiftsFestivals}},
	{"emi", []models.Category{models.CategoryEMILoans}},
	{"loan", []models.Category{models.CategoryEMILoans}},
	{"sip", []models.Category{models.CategoryInvestmentsSIP}},
	{"investment", []models.Category{models.CategoryInvestmentsSIP}},
	{"mutual fund", []models.Category{models.CategoryInvestmentsSIP}},
}
