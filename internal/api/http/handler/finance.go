package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/niramoy/niramoy_backend/internal/service/finance"
	pasetotoken "github.com/niramoy/niramoy_backend/pkg/paseto"
)

type FinanceHandler struct {
	svc finance.Service
}

func NewFinanceHandler(svc finance.Service) *FinanceHandler {
	return &FinanceHandler{svc: svc}
}

func mapFinanceError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, finance.ErrInvalidPeriod):
		return badRequest(c, err.Error())
	case errors.Is(err, finance.ErrMissingDateRange):
		return badRequest(c, err.Error())
	case errors.Is(err, finance.ErrInvalidDateRange):
		return badRequest(c, err.Error())
	case errors.Is(err, finance.ErrInvalidAmount):
		return badRequest(c, err.Error())
	case errors.Is(err, finance.ErrInvalidSplit):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /finance/summary?period=today|week|month|year|custom&from=&to=
func (h *FinanceHandler) Summary(c fiber.Ctx) error {
	var q struct {
		Period string `query:"period"`
		From   string `query:"from"`
		To     string `query:"to"`
	}
	_ = c.Bind().Query(&q)

	if q.Period == "" {
		q.Period = string(finance.PeriodToday)
	}

	req := finance.AggregateRequest{Period: finance.Period(q.Period)}
	if q.From != "" {
		t, err := parseDate(q.From)
		if err != nil {
			return badRequest(c, "invalid from date, expected YYYY-MM-DD")
		}
		req.From = &t
	}
	if q.To != "" {
		t, err := parseDate(q.To)
		if err != nil {
			return badRequest(c, "invalid to date, expected YYYY-MM-DD")
		}
		req.To = &t
	}

	summary, err := h.svc.Aggregate(c.Context(), req)
	if err != nil {
		return mapFinanceError(c, err)
	}
	return ok(c, summary)
}

// POST /finance/income
func (h *FinanceHandler) RecordIncome(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Source      string  `json:"source"`
		Amount      int64   `json:"amount"`
		Description *string `json:"description"`
		ReferenceID *string `json:"reference_id"`
		ReceivedAt  *string `json:"received_at"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Source == "" {
		return badRequest(c, "source is required")
	}

	req := finance.RecordIncomeRequest{
		Source:      body.Source,
		Amount:      body.Amount,
		Description: body.Description,
		ReceivedBy:  &claims.UserID,
		ReceivedAt:  time.Now(),
	}
	if body.ReferenceID != nil && *body.ReferenceID != "" {
		id, err := uuid.Parse(*body.ReferenceID)
		if err != nil {
			return badRequest(c, "invalid reference_id")
		}
		req.ReferenceID = &id
	}
	if body.ReceivedAt != nil && *body.ReceivedAt != "" {
		t, err := parseDate(*body.ReceivedAt)
		if err != nil {
			return badRequest(c, "invalid received_at, expected YYYY-MM-DD")
		}
		req.ReceivedAt = t
	}

	income, err := h.svc.RecordIncome(c.Context(), req)
	if err != nil {
		return mapFinanceError(c, err)
	}
	return created(c, income)
}

// POST /finance/expenses
func (h *FinanceHandler) RecordExpense(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		ExpenseType string  `json:"expense_type"`
		Amount      int64   `json:"amount"`
		Description *string `json:"description"`
		IncurredAt  *string `json:"incurred_at"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.ExpenseType == "" {
		return badRequest(c, "expense_type is required")
	}

	req := finance.RecordExpenseRequest{
		ExpenseType: body.ExpenseType,
		Amount:      body.Amount,
		Description: body.Description,
		RecordedBy:  &claims.UserID,
		IncurredAt:  time.Now(),
	}
	if body.IncurredAt != nil && *body.IncurredAt != "" {
		t, err := parseDate(*body.IncurredAt)
		if err != nil {
			return badRequest(c, "invalid incurred_at, expected YYYY-MM-DD")
		}
		req.IncurredAt = t
	}

	expense, err := h.svc.RecordExpense(c.Context(), req)
	if err != nil {
		return mapFinanceError(c, err)
	}
	return created(c, expense)
}

// POST /finance/pc-transactions
func (h *FinanceHandler) RecordPCTransaction(c fiber.Ctx) error {
	var body struct {
		ReferrerID       string  `json:"referrer_id"`
		PatientID        *string `json:"patient_id"`
		TotalAmount      int64   `json:"total_amount"`
		CommissionAmount int64   `json:"commission_amount"`
		AdminShare       int64   `json:"admin_share"`
		Description      *string `json:"description"`
		OccurredAt       *string `json:"occurred_at"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	referrerID, err := uuid.Parse(body.ReferrerID)
	if err != nil {
		return badRequest(c, "invalid referrer_id")
	}

	req := finance.RecordPCTransactionRequest{
		ReferrerID:       referrerID,
		TotalAmount:      body.TotalAmount,
		CommissionAmount: body.CommissionAmount,
		AdminShare:       body.AdminShare,
		Description:      body.Description,
		OccurredAt:       time.Now(),
	}
	if body.PatientID != nil && *body.PatientID != "" {
		id, err := uuid.Parse(*body.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &id
	}
	if body.OccurredAt != nil && *body.OccurredAt != "" {
		t, err := parseDate(*body.OccurredAt)
		if err != nil {
			return badRequest(c, "invalid occurred_at, expected YYYY-MM-DD")
		}
		req.OccurredAt = t
	}

	tx, err := h.svc.RecordPCTransaction(c.Context(), req)
	if err != nil {
		return mapFinanceError(c, err)
	}
	return created(c, tx)
}

// GET /finance/income?from=&to=
func (h *FinanceHandler) ListIncome(c fiber.Ctx) error {
	from, to, err := dateRangeFromQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	rows, err := h.svc.ListIncome(c.Context(), from, to)
	if err != nil {
		return mapFinanceError(c, err)
	}
	return ok(c, rows)
}

// GET /finance/expenses?from=&to=
func (h *FinanceHandler) ListExpenses(c fiber.Ctx) error {
	from, to, err := dateRangeFromQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	rows, err := h.svc.ListExpenses(c.Context(), from, to)
	if err != nil {
		return mapFinanceError(c, err)
	}
	return ok(c, rows)
}

// GET /finance/outstanding
func (h *FinanceHandler) Outstanding(c fiber.Ctx) error {
	out, err := h.svc.OutstandingBalances(c.Context())
	if err != nil {
		return mapFinanceError(c, err)
	}
	return ok(c, out)
}

// dateRangeFromQuery reads from/to query dates, defaulting to the current
// month when both are absent.
func dateRangeFromQuery(c fiber.Ctx) (time.Time, time.Time, error) {
	fromStr := c.Query("from")
	toStr := c.Query("to")

	if fromStr == "" && toStr == "" {
		now := time.Now()
		from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		to := from.AddDate(0, 1, -1)
		return from, to, nil
	}

	from, err := parseDate(fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid from date, expected YYYY-MM-DD")
	}
	to, err := parseDate(toStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid to date, expected YYYY-MM-DD")
	}
	return from, to, nil
}
