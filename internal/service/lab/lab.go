package lab

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/niramoy/niramoy_backend/internal/repo"
	entincome "github.com/niramoy/niramoy_backend/internal/repo/income"
	entorder "github.com/niramoy/niramoy_backend/internal/repo/laborder"
	entresult "github.com/niramoy/niramoy_backend/internal/repo/labresult"
	enttest "github.com/niramoy/niramoy_backend/internal/repo/labtest"
	"github.com/niramoy/niramoy_backend/pkg/util/docnum"
)

const numberRetries = 3

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateTestRequest struct {
	Name        string
	Code        string
	Price       int64
	Category    *string
	SampleType  *string
	NormalRange *string
}

type CreateOrderRequest struct {
	PatientID      uuid.UUID
	OrderedBy      *uuid.UUID
	PrescriptionID *uuid.UUID
	TestIDs        []uuid.UUID
}

type EnterResultRequest struct {
	ResultValue string
	Unit        *string
	Abnormal    bool
	EnteredBy   uuid.UUID
}

// OrderDetail bundles an order with its per-test results.
type OrderDetail struct {
	Order   *repo.LabOrder    `json:"order"`
	Results []*repo.LabResult `json:"results"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Catalog
	CreateTest(ctx context.Context, req CreateTestRequest) (*repo.LabTest, error)
	ListTests(ctx context.Context, activeOnly bool) ([]*repo.LabTest, error)

	// Orders
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderDetail, error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (*OrderDetail, error)
	ListOrders(ctx context.Context, status *string, page, perPage int) ([]*repo.LabOrder, error)
	CollectSample(ctx context.Context, orderID uuid.UUID) error
	CancelOrder(ctx context.Context, orderID uuid.UUID) error

	// Results
	EnterResult(ctx context.Context, resultID uuid.UUID, req EnterResultRequest) (*repo.LabResult, error)
	VerifyResult(ctx context.Context, resultID, verifiedBy uuid.UUID) error

	// Payment, settled at the lab desk; writes the income row in the same
	// transaction.
	RecordPayment(ctx context.Context, orderID uuid.UUID, amount int64, receivedBy *uuid.UUID) (*repo.LabOrder, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type labService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &labService{db: db}
}

func (s *labService) CreateTest(ctx context.Context, req CreateTestRequest) (*repo.LabTest, error) {
	t, err := s.db.LabTest.Create().
		SetName(req.Name).
		SetCode(req.Code).
		SetPrice(req.Price).
		SetNillableCategory(req.Category).
		SetNillableSampleType(req.SampleType).
		SetNillableNormalRange(req.NormalRange).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create lab test: %w", err)
	}
	return t, nil
}

func (s *labService) ListTests(ctx context.Context, activeOnly bool) ([]*repo.LabTest, error) {
	q := s.db.LabTest.Query()
	if activeOnly {
		q = q.Where(enttest.Active(true))
	}
	tests, err := q.Order(enttest.ByName()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lab tests: %w", err)
	}
	return tests, nil
}

func (s *labService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderDetail, error) {
	if len(req.TestIDs) == 0 {
		return nil, ErrNoTests
	}

	tests, err := s.db.LabTest.Query().
		Where(enttest.IDIn(req.TestIDs...), enttest.Active(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tests: %w", err)
	}
	if len(tests) != len(req.TestIDs) {
		return nil, ErrTestNotFound
	}

	for attempt := 0; attempt < numberRetries; attempt++ {
		d, cErr := s.tryCreateOrder(ctx, req, tests)
		if cErr == nil {
			return d, nil
		}
		if !repo.IsConstraintError(cErr) {
			return nil, cErr
		}
	}
	return nil, ErrNumberExhausted
}

func (s *labService) tryCreateOrder(ctx context.Context, req CreateOrderRequest, tests []*repo.LabTest) (*OrderDetail, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	seq, err := tx.LabOrder.Query().
		Where(entorder.CreatedAtGTE(dayStart)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count day orders: %w", err)
	}

	var total int64
	for _, t := range tests {
		total += t.Price
	}

	order, err := tx.LabOrder.Create().
		SetOrderNumber(docnum.Format(docnum.PrefixLabOrder, now, seq+1)).
		SetPatientID(req.PatientID).
		SetNillableOrderedBy(req.OrderedBy).
		SetNillablePrescriptionID(req.PrescriptionID).
		SetTotalAmount(total).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create lab order: %w", err)
	}

	results := make([]*repo.LabResult, 0, len(tests))
	for _, t := range tests {
		r, rErr := tx.LabResult.Create().
			SetOrderID(order.ID).
			SetTestID(t.ID).
			SetPrice(t.Price).
			Save(ctx)
		if rErr != nil {
			err = fmt.Errorf("create result row: %w", rErr)
			return nil, err
		}
		results = append(results, r)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit lab order: %w", err)
	}
	return &OrderDetail{Order: order, Results: results}, nil
}

func (s *labService) GetOrder(ctx context.Context, orderID uuid.UUID) (*OrderDetail, error) {
	order, err := s.db.LabOrder.Get(ctx, orderID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("get lab order: %w", err)
	}

	results, err := s.db.LabResult.Query().
		Where(entresult.OrderID(orderID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	return &OrderDetail{Order: order, Results: results}, nil
}

func (s *labService) ListOrders(ctx context.Context, status *string, page, perPage int) ([]*repo.LabOrder, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	q := s.db.LabOrder.Query()
	if status != nil {
		q = q.Where(entorder.StatusEQ(entorder.Status(*status)))
	}

	orders, err := q.
		Order(entorder.ByCreatedAt(sql.OrderDesc())).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lab orders: %w", err)
	}
	return orders, nil
}

func (s *labService) CollectSample(ctx context.Context, orderID uuid.UUID) error {
	n, err := s.db.LabOrder.Update().
		Where(
			entorder.ID(orderID),
			entorder.StatusEQ(entorder.StatusOrdered),
		).
		SetStatus(entorder.StatusSampleCollected).
		SetSampleCollectedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("collect sample: %w", err)
	}
	if n == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (s *labService) CancelOrder(ctx context.Context, orderID uuid.UUID) error {
	n, err := s.db.LabOrder.Update().
		Where(
			entorder.ID(orderID),
			entorder.StatusIn(entorder.StatusOrdered, entorder.StatusSampleCollected),
		).
		SetStatus(entorder.StatusCancelled).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("cancel lab order: %w", err)
	}
	if n == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (s *labService) EnterResult(ctx context.Context, resultID uuid.UUID, req EnterResultRequest) (*repo.LabResult, error) {
	r, err := s.db.LabResult.Get(ctx, resultID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("get result: %w", err)
	}
	if r.Status == entresult.StatusVerified {
		return nil, ErrAlreadyVerified
	}

	r, err = s.db.LabResult.UpdateOne(r).
		SetResultValue(req.ResultValue).
		SetNillableUnit(req.Unit).
		SetAbnormal(req.Abnormal).
		SetStatus(entresult.StatusCompleted).
		SetEnteredBy(req.EnteredBy).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("enter result: %w", err)
	}

	if err := s.advanceOrder(ctx, r.OrderID); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *labService) VerifyResult(ctx context.Context, resultID, verifiedBy uuid.UUID) error {
	r, err := s.db.LabResult.Get(ctx, resultID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrResultNotFound
		}
		return fmt.Errorf("get result: %w", err)
	}
	if r.Status == entresult.StatusVerified {
		return ErrAlreadyVerified
	}
	if r.Status != entresult.StatusCompleted {
		return ErrResultNotEntered
	}

	err = s.db.LabResult.UpdateOne(r).
		SetStatus(entresult.StatusVerified).
		SetVerifiedBy(verifiedBy).
		SetVerifiedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("verify result: %w", err)
	}

	return s.advanceOrder(ctx, r.OrderID)
}

// advanceOrder rolls the order status forward once every result reaches the
// corresponding stage.
func (s *labService) advanceOrder(ctx context.Context, orderID uuid.UUID) error {
	results, err := s.db.LabResult.Query().
		Where(entresult.OrderID(orderID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("list results: %w", err)
	}

	allEntered, allVerified := true, true
	for _, r := range results {
		if r.Status == entresult.StatusPending {
			allEntered = false
		}
		if r.Status != entresult.StatusVerified {
			allVerified = false
		}
	}

	switch {
	case allVerified:
		return s.db.LabOrder.Update().
			Where(entorder.ID(orderID), entorder.StatusNEQ(entorder.StatusCancelled)).
			SetStatus(entorder.StatusVerified).
			Exec(ctx)
	case allEntered:
		return s.db.LabOrder.Update().
			Where(
				entorder.ID(orderID),
				entorder.StatusIn(entorder.StatusSampleCollected, entorder.StatusInProgress),
			).
			SetStatus(entorder.StatusCompleted).
			SetCompletedAt(time.Now()).
			Exec(ctx)
	default:
		return s.db.LabOrder.Update().
			Where(entorder.ID(orderID), entorder.StatusEQ(entorder.StatusSampleCollected)).
			SetStatus(entorder.StatusInProgress).
			Exec(ctx)
	}
}

func (s *labService) RecordPayment(ctx context.Context, orderID uuid.UUID, amount int64, receivedBy *uuid.UUID) (*repo.LabOrder, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive")
	}

	order, err := s.db.LabOrder.Get(ctx, orderID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("get lab order: %w", err)
	}
	if order.Status == entorder.StatusCancelled {
		return nil, ErrOrderCancelled
	}
	if order.AmountPaid+amount > order.TotalAmount {
		return nil, ErrOverpayment
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	order, err = tx.LabOrder.UpdateOne(order).
		AddAmountPaid(amount).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	_, err = tx.Income.Create().
		SetSource(entincome.SourceLab).
		SetAmount(amount).
		SetDescription("lab order " + order.OrderNumber).
		SetReferenceID(order.ID).
		SetNillableReceivedBy(receivedBy).
		SetReceivedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record income: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit payment: %w", err)
	}
	return order, nil
}
