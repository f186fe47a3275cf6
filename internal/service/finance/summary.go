package finance

import "time"

// Income source and expense type category sets. The summary always reports
// every category, zero-filled, so dashboards get a complete breakdown even
// for empty ranges.
var (
	incomeSources = []string{"appointment", "lab", "pharmacy", "canteen", "other"}
	expenseTypes  = []string{"salary", "utility", "supplies", "maintenance", "other"}
)

type Summary struct {
	Period    Period    `json:"period"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	IncomeBySource map[string]int64 `json:"income_by_source"`
	ExpensesByType map[string]int64 `json:"expenses_by_type"`

	GrossIncome             int64 `json:"gross_income"`
	AdminShareOfCommissions int64 `json:"admin_share_of_commissions"`
	NetIncome               int64 `json:"net_income"`

	RegularExpenses   int64 `json:"regular_expenses"`
	CommissionExpense int64 `json:"commission_expense"`
	TotalExpenses     int64 `json:"total_expenses"`

	Profit       int64   `json:"profit"`
	ProfitMargin float64 `json:"profit_margin"`
}

// buildSummary folds the grouped sums into the final report. All derived
// figures live here so the arithmetic is testable without a database.
func buildSummary(period Period, start, end time.Time, incomeBySource, expensesByType map[string]int64, adminShare, commissionExpense int64) *Summary {
	income := make(map[string]int64, len(incomeSources))
	var gross int64
	for _, src := range incomeSources {
		income[src] = incomeBySource[src]
		gross += incomeBySource[src]
	}

	expenses := make(map[string]int64, len(expenseTypes))
	var regular int64
	for _, et := range expenseTypes {
		expenses[et] = expensesByType[et]
		regular += expensesByType[et]
	}

	net := gross + adminShare
	total := regular + commissionExpense
	profit := net - total

	// Margin is defined only against positive net income; reporting 0 for
	// an empty range beats a division by zero.
	margin := 0.0
	if net > 0 {
		margin = float64(profit) / float64(net) * 100
	}

	return &Summary{
		Period:                  period,
		StartDate:               start,
		EndDate:                 end,
		IncomeBySource:          income,
		ExpensesByType:          expenses,
		GrossIncome:             gross,
		AdminShareOfCommissions: adminShare,
		NetIncome:               net,
		RegularExpenses:         regular,
		CommissionExpense:       commissionExpense,
		TotalExpenses:           total,
		Profit:                  profit,
		ProfitMargin:            margin,
	}
}
