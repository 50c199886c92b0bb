package dto

// CategoryStat is one (type, category) group.
type CategoryStat struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

// TypeBreakdown groups category stats under a transaction type with a
// running total. Order follows first occurrence, not alphabet.
type TypeBreakdown struct {
	Type       string         `json:"type"`
	Total      float64        `json:"total"`
	Categories []CategoryStat `json:"categories"`
}

// MonthPoint is one calendar-month bucket of the monthly series.
type MonthPoint struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

type AnalyticsSummary struct {
	TotalIncome   float64         `json:"totalIncome"`
	TotalExpenses float64         `json:"totalExpenses"`
	Balance       float64         `json:"balance"`
	Breakdown     []TypeBreakdown `json:"breakdown"`
	Monthly       []MonthPoint    `json:"monthly"`
}
