package finance

import (
	"testing"
	"time"
)

func TestBuildSummary(t *testing.T) {
	day := date(2024, time.January, 10)

	s := buildSummary(PeriodToday, day, day,
		map[string]int64{"lab": 1000, "pharmacy": 500},
		map[string]int64{"other": 300},
		0, 0)

	if s.GrossIncome != 1500 {
		t.Errorf("GrossIncome = %d, want 1500", s.GrossIncome)
	}
	if s.RegularExpenses != 300 {
		t.Errorf("RegularExpenses = %d, want 300", s.RegularExpenses)
	}
	if s.Profit != 1200 {
		t.Errorf("Profit = %d, want 1200", s.Profit)
	}
	if s.ProfitMargin != 80.0 {
		t.Errorf("ProfitMargin = %v, want 80.0", s.ProfitMargin)
	}
}

func TestBuildSummaryEmptyRange(t *testing.T) {
	day := date(2024, time.January, 10)

	s := buildSummary(PeriodToday, day, day, nil, nil, 0, 0)

	if s.GrossIncome != 0 || s.NetIncome != 0 || s.TotalExpenses != 0 || s.Profit != 0 {
		t.Errorf("empty range produced non-zero totals: %+v", s)
	}
	if s.ProfitMargin != 0 {
		t.Errorf("ProfitMargin = %v, want 0 for empty range", s.ProfitMargin)
	}

	// Every category must still be present, zero-valued.
	for _, src := range incomeSources {
		if v, ok := s.IncomeBySource[src]; !ok || v != 0 {
			t.Errorf("IncomeBySource[%q] = %d, %v; want 0, present", src, v, ok)
		}
	}
	for _, et := range expenseTypes {
		if v, ok := s.ExpensesByType[et]; !ok || v != 0 {
			t.Errorf("ExpensesByType[%q] = %d, %v; want 0, present", et, v, ok)
		}
	}
}

func TestBuildSummaryCommissions(t *testing.T) {
	day := date(2024, time.June, 1)

	s := buildSummary(PeriodToday, day, day,
		map[string]int64{"appointment": 2000},
		map[string]int64{"salary": 500},
		300, // admin share of referral commissions
		700) // paid out to referrers

	if s.NetIncome != 2300 {
		t.Errorf("NetIncome = %d, want gross 2000 + admin share 300", s.NetIncome)
	}
	if s.TotalExpenses != 1200 {
		t.Errorf("TotalExpenses = %d, want regular 500 + commission 700", s.TotalExpenses)
	}
	if s.Profit != 1100 {
		t.Errorf("Profit = %d, want 1100", s.Profit)
	}
}

func TestBuildSummaryNegativeProfit(t *testing.T) {
	day := date(2024, time.June, 1)

	s := buildSummary(PeriodToday, day, day,
		map[string]int64{"canteen": 100},
		map[string]int64{"utility": 400},
		0, 0)

	if s.Profit != -300 {
		t.Errorf("Profit = %d, want -300", s.Profit)
	}
	if s.ProfitMargin != -300.0 {
		t.Errorf("ProfitMargin = %v, want -300.0", s.ProfitMargin)
	}
}

func TestBuildSummaryAllExpensesNoIncome(t *testing.T) {
	day := date(2024, time.June, 1)

	s := buildSummary(PeriodToday, day, day,
		nil,
		map[string]int64{"maintenance": 900},
		0, 0)

	if s.Profit != -900 {
		t.Errorf("Profit = %d, want -900", s.Profit)
	}
	// Net income is zero, so margin must stay zero rather than divide.
	if s.ProfitMargin != 0 {
		t.Errorf("ProfitMargin = %v, want 0 when net income is 0", s.ProfitMargin)
	}
}
