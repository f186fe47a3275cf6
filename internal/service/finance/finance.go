package finance

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/niramoy/niramoy_backend/internal/repo"
	entappt "github.com/niramoy/niramoy_backend/internal/repo/appointment"
	entexpense "github.com/niramoy/niramoy_backend/internal/repo/expense"
	entincome "github.com/niramoy/niramoy_backend/internal/repo/income"
	entlab "github.com/niramoy/niramoy_backend/internal/repo/laborder"
	entpc "github.com/niramoy/niramoy_backend/internal/repo/pctransaction"
	entsale "github.com/niramoy/niramoy_backend/internal/repo/pharmacysale"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
)

// unpaid builds a field-vs-field amount_paid < total_amount predicate; ent
// only generates comparisons against literals.
func unpaid(paidCol, totalCol string) func(*sql.Selector) {
	return func(s *sql.Selector) {
		s.Where(sql.ColumnsLT(s.C(paidCol), s.C(totalCol)))
	}
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type AggregateRequest struct {
	Period Period
	From   *time.Time
	To     *time.Time
}

type RecordIncomeRequest struct {
	Source      string
	Amount      int64
	Description *string
	ReferenceID *uuid.UUID
	ReceivedBy  *uuid.UUID
	ReceivedAt  time.Time
}

type RecordExpenseRequest struct {
	ExpenseType string
	Amount      int64
	Description *string
	RecordedBy  *uuid.UUID
	IncurredAt  time.Time
}

type RecordPCTransactionRequest struct {
	ReferrerID       uuid.UUID
	PatientID        *uuid.UUID
	TotalAmount      int64
	CommissionAmount int64
	AdminShare       int64
	Description      *string
	OccurredAt       time.Time
}

// Outstanding reports unsettled balances per department. A record counts
// as unpaid when amount_paid < total_amount.
type Outstanding struct {
	Appointments  int64 `json:"appointments"`
	LabOrders     int64 `json:"lab_orders"`
	PharmacySales int64 `json:"pharmacy_sales"`
	Total         int64 `json:"total"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Aggregate computes the income/expense/profit roll-up for a derived
	// or caller-supplied inclusive date range.
	Aggregate(ctx context.Context, req AggregateRequest) (*Summary, error)

	RecordIncome(ctx context.Context, req RecordIncomeRequest) (*repo.Income, error)
	RecordExpense(ctx context.Context, req RecordExpenseRequest) (*repo.Expense, error)
	RecordPCTransaction(ctx context.Context, req RecordPCTransactionRequest) (*repo.PCTransaction, error)

	ListIncome(ctx context.Context, from, to time.Time) ([]*repo.Income, error)
	ListExpenses(ctx context.Context, from, to time.Time) ([]*repo.Expense, error)

	OutstandingBalances(ctx context.Context) (*Outstanding, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type financeService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &financeService{db: db}
}

func (s *financeService) Aggregate(ctx context.Context, req AggregateRequest) (*Summary, error) {
	start, end, err := DateRange(req.Period, time.Now(), req.From, req.To)
	if err != nil {
		return nil, err
	}
	// Inclusive day bounds become a half-open timestamp window.
	endExcl := end.AddDate(0, 0, 1)

	var incomeRows []struct {
		Source string `json:"source"`
		Sum    int64  `json:"sum"`
	}
	err = s.db.Income.Query().
		Where(entincome.ReceivedAtGTE(start), entincome.ReceivedAtLT(endExcl)).
		GroupBy(entincome.FieldSource).
		Aggregate(repo.Sum(entincome.FieldAmount)).
		Scan(ctx, &incomeRows)
	if err != nil {
		return nil, fmt.Errorf("aggregate income: %w", err)
	}
	incomeBySource := make(map[string]int64, len(incomeRows))
	for _, r := range incomeRows {
		incomeBySource[r.Source] = r.Sum
	}

	var expenseRows []struct {
		ExpenseType string `json:"expense_type"`
		Sum         int64  `json:"sum"`
	}
	err = s.db.Expense.Query().
		Where(entexpense.IncurredAtGTE(start), entexpense.IncurredAtLT(endExcl)).
		GroupBy(entexpense.FieldExpenseType).
		Aggregate(repo.Sum(entexpense.FieldAmount)).
		Scan(ctx, &expenseRows)
	if err != nil {
		return nil, fmt.Errorf("aggregate expenses: %w", err)
	}
	expensesByType := make(map[string]int64, len(expenseRows))
	for _, r := range expenseRows {
		expensesByType[r.ExpenseType] = r.Sum
	}

	var pcRows []struct {
		Commission int64 `json:"commission"`
		AdminShare int64 `json:"admin_share"`
	}
	err = s.db.PCTransaction.Query().
		Where(entpc.OccurredAtGTE(start), entpc.OccurredAtLT(endExcl)).
		Aggregate(
			repo.As(repo.Sum(entpc.FieldCommissionAmount), "commission"),
			repo.As(repo.Sum(entpc.FieldAdminShare), "admin_share"),
		).
		Scan(ctx, &pcRows)
	if err != nil {
		return nil, fmt.Errorf("aggregate commissions: %w", err)
	}
	var commission, adminShare int64
	if len(pcRows) > 0 {
		commission = pcRows[0].Commission
		adminShare = pcRows[0].AdminShare
	}

	return buildSummary(req.Period, start, end, incomeBySource, expensesByType, adminShare, commission), nil
}

func (s *financeService) RecordIncome(ctx context.Context, req RecordIncomeRequest) (*repo.Income, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	in, err := s.db.Income.Create().
		SetSource(entincome.Source(req.Source)).
		SetAmount(req.Amount).
		SetNillableDescription(req.Description).
		SetNillableReferenceID(req.ReferenceID).
		SetNillableReceivedBy(req.ReceivedBy).
		SetReceivedAt(req.ReceivedAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record income: %w", err)
	}
	return in, nil
}

func (s *financeService) RecordExpense(ctx context.Context, req RecordExpenseRequest) (*repo.Expense, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	ex, err := s.db.Expense.Create().
		SetExpenseType(entexpense.ExpenseType(req.ExpenseType)).
		SetAmount(req.Amount).
		SetNillableDescription(req.Description).
		SetNillableRecordedBy(req.RecordedBy).
		SetIncurredAt(req.IncurredAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record expense: %w", err)
	}
	return ex, nil
}

func (s *financeService) RecordPCTransaction(ctx context.Context, req RecordPCTransactionRequest) (*repo.PCTransaction, error) {
	if req.TotalAmount <= 0 {
		return nil, ErrInvalidAmount
	}
	if req.CommissionAmount < 0 || req.AdminShare < 0 ||
		req.CommissionAmount+req.AdminShare > req.TotalAmount {
		return nil, ErrInvalidSplit
	}

	pc, err := s.db.PCTransaction.Create().
		SetReferrerID(req.ReferrerID).
		SetNillablePatientID(req.PatientID).
		SetTotalAmount(req.TotalAmount).
		SetCommissionAmount(req.CommissionAmount).
		SetAdminShare(req.AdminShare).
		SetNillableDescription(req.Description).
		SetOccurredAt(req.OccurredAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record pc transaction: %w", err)
	}
	return pc, nil
}

func (s *financeService) ListIncome(ctx context.Context, from, to time.Time) ([]*repo.Income, error) {
	rows, err := s.db.Income.Query().
		Where(
			entincome.ReceivedAtGTE(dateOnly(from)),
			entincome.ReceivedAtLT(dateOnly(to).AddDate(0, 0, 1)),
		).
		Order(entincome.ByReceivedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list income: %w", err)
	}
	return rows, nil
}

func (s *financeService) ListExpenses(ctx context.Context, from, to time.Time) ([]*repo.Expense, error) {
	rows, err := s.db.Expense.Query().
		Where(
			entexpense.IncurredAtGTE(dateOnly(from)),
			entexpense.IncurredAtLT(dateOnly(to).AddDate(0, 0, 1)),
		).
		Order(entexpense.ByIncurredAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return rows, nil
}

// OutstandingBalances sums amount still owed across departments using the
// canonical unpaid rule: amount_paid < total_amount.
func (s *financeService) OutstandingBalances(ctx context.Context) (*Outstanding, error) {
	out := &Outstanding{}

	type owed struct {
		Total int64 `json:"total"`
		Paid  int64 `json:"paid"`
	}

	var apptRows []owed
	err := s.db.Appointment.Query().
		Where(
			entappt.StatusNEQ(entappt.StatusCancelled),
			predicate.Appointment(unpaid(entappt.FieldAmountPaid, entappt.FieldTotalAmount)),
		).
		Aggregate(
			repo.As(repo.Sum(entappt.FieldTotalAmount), "total"),
			repo.As(repo.Sum(entappt.FieldAmountPaid), "paid"),
		).
		Scan(ctx, &apptRows)
	if err != nil {
		return nil, fmt.Errorf("sum appointment balances: %w", err)
	}
	if len(apptRows) > 0 {
		out.Appointments = apptRows[0].Total - apptRows[0].Paid
	}

	var labRows []owed
	err = s.db.LabOrder.Query().
		Where(
			entlab.StatusNEQ(entlab.StatusCancelled),
			predicate.LabOrder(unpaid(entlab.FieldAmountPaid, entlab.FieldTotalAmount)),
		).
		Aggregate(
			repo.As(repo.Sum(entlab.FieldTotalAmount), "total"),
			repo.As(repo.Sum(entlab.FieldAmountPaid), "paid"),
		).
		Scan(ctx, &labRows)
	if err != nil {
		return nil, fmt.Errorf("sum lab balances: %w", err)
	}
	if len(labRows) > 0 {
		out.LabOrders = labRows[0].Total - labRows[0].Paid
	}

	var saleRows []owed
	err = s.db.PharmacySale.Query().
		Where(predicate.PharmacySale(unpaid(entsale.FieldAmountPaid, entsale.FieldTotalAmount))).
		Aggregate(
			repo.As(repo.Sum(entsale.FieldTotalAmount), "total"),
			repo.As(repo.Sum(entsale.FieldAmountPaid), "paid"),
		).
		Scan(ctx, &saleRows)
	if err != nil {
		return nil, fmt.Errorf("sum pharmacy balances: %w", err)
	}
	if len(saleRows) > 0 {
		out.PharmacySales = saleRows[0].Total - saleRows[0].Paid
	}

	out.Total = out.Appointments + out.LabOrders + out.PharmacySales
	return out, nil
}
