package pharmacy

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/niramoy/niramoy_backend/internal/notify"
	"github.com/niramoy/niramoy_backend/internal/repo"
	entdrug "github.com/niramoy/niramoy_backend/internal/repo/drug"
	entincome "github.com/niramoy/niramoy_backend/internal/repo/income"
	entsale "github.com/niramoy/niramoy_backend/internal/repo/pharmacysale"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
	entitem "github.com/niramoy/niramoy_backend/internal/repo/saleitem"
	entadj "github.com/niramoy/niramoy_backend/internal/repo/stockadjustment"
	"github.com/niramoy/niramoy_backend/pkg/util/docnum"
)

const numberRetries = 3

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateDrugRequest struct {
	Name         string
	GenericName  *string
	Category     *string
	Manufacturer *string
	BatchNumber  *string
	UnitPrice    int64
	StockQty     int
	ReorderLevel int
	ExpiryDate   *time.Time
}

type SaleLine struct {
	DrugID   uuid.UUID
	Quantity int
}

type SellRequest struct {
	PatientID      *uuid.UUID
	PrescriptionID *uuid.UUID
	Items          []SaleLine
	AmountPaid     int64
	SoldBy         uuid.UUID
}

type AdjustStockRequest struct {
	DrugID     uuid.UUID
	Delta      int
	Reason     string // purchase | expired | damaged | correction
	Note       *string
	AdjustedBy uuid.UUID
}

type SaleDetail struct {
	Sale  *repo.PharmacySale `json:"sale"`
	Items []*repo.SaleItem   `json:"items"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Inventory
	CreateDrug(ctx context.Context, req CreateDrugRequest) (*repo.Drug, error)
	GetDrug(ctx context.Context, drugID uuid.UUID) (*repo.Drug, error)
	ListDrugs(ctx context.Context, search *string, page, perPage int) ([]*repo.Drug, error)
	AdjustStock(ctx context.Context, req AdjustStockRequest) (*repo.Drug, error)

	// LowStock lists active drugs at or below their reorder level.
	LowStock(ctx context.Context) ([]*repo.Drug, error)

	// ExpiringSoon lists active drugs whose batch expires within the window.
	ExpiringSoon(ctx context.Context, within time.Duration) ([]*repo.Drug, error)

	// Sales
	Sell(ctx context.Context, req SellRequest) (*SaleDetail, error)
	GetSale(ctx context.Context, saleID uuid.UUID) (*SaleDetail, error)
	ListSales(ctx context.Context, from, to *time.Time, page, perPage int) ([]*repo.PharmacySale, error)
	RecordPayment(ctx context.Context, saleID uuid.UUID, amount int64, receivedBy *uuid.UUID) (*repo.PharmacySale, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type pharmacyService struct {
	db       *repo.Client
	notifier notify.Notifier
}

func New(db *repo.Client, notifier notify.Notifier) Service {
	return &pharmacyService{db: db, notifier: notifier}
}

func (s *pharmacyService) CreateDrug(ctx context.Context, req CreateDrugRequest) (*repo.Drug, error) {
	d, err := s.db.Drug.Create().
		SetName(req.Name).
		SetNillableGenericName(req.GenericName).
		SetNillableCategory(req.Category).
		SetNillableManufacturer(req.Manufacturer).
		SetNillableBatchNumber(req.BatchNumber).
		SetUnitPrice(req.UnitPrice).
		SetStockQuantity(req.StockQty).
		SetReorderLevel(req.ReorderLevel).
		SetNillableExpiryDate(req.ExpiryDate).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create drug: %w", err)
	}
	return d, nil
}

func (s *pharmacyService) GetDrug(ctx context.Context, drugID uuid.UUID) (*repo.Drug, error) {
	d, err := s.db.Drug.Get(ctx, drugID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDrugNotFound
		}
		return nil, fmt.Errorf("get drug: %w", err)
	}
	return d, nil
}

func (s *pharmacyService) ListDrugs(ctx context.Context, search *string, page, perPage int) ([]*repo.Drug, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	q := s.db.Drug.Query().Where(entdrug.Active(true))
	if search != nil && *search != "" {
		q = q.Where(entdrug.Or(
			entdrug.NameContainsFold(*search),
			entdrug.GenericNameContainsFold(*search),
		))
	}

	drugs, err := q.
		Order(entdrug.ByName()).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list drugs: %w", err)
	}
	return drugs, nil
}

func (s *pharmacyService) AdjustStock(ctx context.Context, req AdjustStockRequest) (*repo.Drug, error) {
	if req.Delta == 0 {
		return nil, fmt.Errorf("stock delta must be non-zero")
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

	upd := tx.Drug.Update().
		Where(entdrug.ID(req.DrugID)).
		AddStockQuantity(req.Delta)
	if req.Delta < 0 {
		// The NonNegative check on stock_quantity would also reject this,
		// but a guarded update gives a clean error instead of a constraint
		// violation.
		upd = upd.Where(entdrug.StockQuantityGTE(-req.Delta))
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("adjust stock: %w", err)
	}
	if n == 0 {
		err = ErrInsufficientStock
		return nil, err
	}

	_, err = tx.StockAdjustment.Create().
		SetDrugID(req.DrugID).
		SetDelta(req.Delta).
		SetReason(entadj.Reason(req.Reason)).
		SetNillableNote(req.Note).
		SetAdjustedBy(req.AdjustedBy).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record adjustment: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit adjustment: %w", err)
	}

	d, err := s.db.Drug.Get(ctx, req.DrugID)
	if err != nil {
		return nil, fmt.Errorf("reload drug: %w", err)
	}
	s.alertIfLow(ctx, d)
	return d, nil
}

func (s *pharmacyService) LowStock(ctx context.Context) ([]*repo.Drug, error) {
	drugs, err := s.db.Drug.Query().
		Where(
			entdrug.Active(true),
			predicate.Drug(func(sel *sql.Selector) {
				sel.Where(sql.ColumnsLTE(sel.C(entdrug.FieldStockQuantity), sel.C(entdrug.FieldReorderLevel)))
			}),
		).
		Order(entdrug.ByStockQuantity()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	return drugs, nil
}

func (s *pharmacyService) ExpiringSoon(ctx context.Context, within time.Duration) ([]*repo.Drug, error) {
	cutoff := time.Now().Add(within)
	drugs, err := s.db.Drug.Query().
		Where(
			entdrug.Active(true),
			entdrug.ExpiryDateNotNil(),
			entdrug.ExpiryDateLTE(cutoff),
		).
		Order(entdrug.ByExpiryDate()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list expiring drugs: %w", err)
	}
	return drugs, nil
}

func (s *pharmacyService) Sell(ctx context.Context, req SellRequest) (*SaleDetail, error) {
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}
	if req.AmountPaid < 0 {
		return nil, ErrNegativePayment
	}

	for attempt := 0; attempt < numberRetries; attempt++ {
		d, err := s.trySell(ctx, req)
		if err == nil {
			s.postSaleAlerts(ctx, d)
			return d, nil
		}
		if !repo.IsConstraintError(err) {
			return nil, err
		}
	}
	return nil, ErrNumberExhausted
}

func (s *pharmacyService) trySell(ctx context.Context, req SellRequest) (*SaleDetail, error) {
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

	seq, err := tx.PharmacySale.Query().
		Where(entsale.CreatedAtGTE(dayStart)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count day sales: %w", err)
	}

	// Price the cart and decrement stock, all guarded. A conditional update
	// that touches zero rows means another sale emptied the shelf first.
	var total int64
	type pricedLine struct {
		line  SaleLine
		price int64
	}
	priced := make([]pricedLine, 0, len(req.Items))
	for _, line := range req.Items {
		drug, dErr := tx.Drug.Query().
			Where(entdrug.ID(line.DrugID), entdrug.Active(true)).
			Only(ctx)
		if dErr != nil {
			if repo.IsNotFound(dErr) {
				err = ErrDrugNotFound
			} else {
				err = fmt.Errorf("get drug: %w", dErr)
			}
			return nil, err
		}
		if drug.ExpiryDate != nil && drug.ExpiryDate.Before(now) {
			err = ErrDrugExpired
			return nil, err
		}

		n, uErr := tx.Drug.Update().
			Where(
				entdrug.ID(line.DrugID),
				entdrug.StockQuantityGTE(line.Quantity),
			).
			AddStockQuantity(-line.Quantity).
			Save(ctx)
		if uErr != nil {
			err = fmt.Errorf("decrement stock: %w", uErr)
			return nil, err
		}
		if n == 0 {
			err = ErrInsufficientStock
			return nil, err
		}

		total += drug.UnitPrice * int64(line.Quantity)
		priced = append(priced, pricedLine{line: line, price: drug.UnitPrice})
	}

	if req.AmountPaid > total {
		err = ErrOverpayment
		return nil, err
	}

	sale, err := tx.PharmacySale.Create().
		SetSaleNumber(docnum.Format(docnum.PrefixPharmacySale, now, seq+1)).
		SetNillablePatientID(req.PatientID).
		SetNillablePrescriptionID(req.PrescriptionID).
		SetTotalAmount(total).
		SetAmountPaid(req.AmountPaid).
		SetSoldBy(req.SoldBy).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create sale: %w", err)
	}

	items := make([]*repo.SaleItem, 0, len(priced))
	for _, pl := range priced {
		item, iErr := tx.SaleItem.Create().
			SetSaleID(sale.ID).
			SetDrugID(pl.line.DrugID).
			SetQuantity(pl.line.Quantity).
			SetUnitPrice(pl.price).
			SetSubtotal(pl.price * int64(pl.line.Quantity)).
			Save(ctx)
		if iErr != nil {
			err = fmt.Errorf("create sale item: %w", iErr)
			return nil, err
		}
		items = append(items, item)

		_, aErr := tx.StockAdjustment.Create().
			SetDrugID(pl.line.DrugID).
			SetDelta(-pl.line.Quantity).
			SetReason(entadj.ReasonSale).
			SetNote("sale " + sale.SaleNumber).
			Save(ctx)
		if aErr != nil {
			err = fmt.Errorf("record adjustment: %w", aErr)
			return nil, err
		}
	}

	if req.AmountPaid > 0 {
		_, err = tx.Income.Create().
			SetSource(entincome.SourcePharmacy).
			SetAmount(req.AmountPaid).
			SetDescription("pharmacy sale " + sale.SaleNumber).
			SetReferenceID(sale.ID).
			SetReceivedBy(req.SoldBy).
			SetReceivedAt(now).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("record income: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit sale: %w", err)
	}
	return &SaleDetail{Sale: sale, Items: items}, nil
}

// postSaleAlerts fires a low-stock event for every drug the sale pushed to
// or under its reorder level. Best-effort, outside the sale transaction.
func (s *pharmacyService) postSaleAlerts(ctx context.Context, d *SaleDetail) {
	for _, item := range d.Items {
		drug, err := s.db.Drug.Get(ctx, item.DrugID)
		if err != nil {
			continue
		}
		s.alertIfLow(ctx, drug)
	}
}

func (s *pharmacyService) alertIfLow(ctx context.Context, drug *repo.Drug) {
	if drug.StockQuantity > drug.ReorderLevel {
		return
	}
	s.notifier.LowStock(ctx, notify.LowStockEvent{
		DrugID:        drug.ID,
		DrugName:      drug.Name,
		StockQuantity: drug.StockQuantity,
		ReorderLevel:  drug.ReorderLevel,
	})
}

func (s *pharmacyService) GetSale(ctx context.Context, saleID uuid.UUID) (*SaleDetail, error) {
	sale, err := s.db.PharmacySale.Get(ctx, saleID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}

	items, err := s.db.SaleItem.Query().
		Where(entitem.SaleID(saleID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	return &SaleDetail{Sale: sale, Items: items}, nil
}

func (s *pharmacyService) ListSales(ctx context.Context, from, to *time.Time, page, perPage int) ([]*repo.PharmacySale, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	q := s.db.PharmacySale.Query()
	if from != nil {
		q = q.Where(entsale.CreatedAtGTE(*from))
	}
	if to != nil {
		q = q.Where(entsale.CreatedAtLT(*to))
	}

	sales, err := q.
		Order(entsale.ByCreatedAt(sql.OrderDesc())).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return sales, nil
}

func (s *pharmacyService) RecordPayment(ctx context.Context, saleID uuid.UUID, amount int64, receivedBy *uuid.UUID) (*repo.PharmacySale, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive")
	}

	sale, err := s.db.PharmacySale.Get(ctx, saleID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	if sale.AmountPaid+amount > sale.TotalAmount {
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

	sale, err = tx.PharmacySale.UpdateOne(sale).
		AddAmountPaid(amount).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	_, err = tx.Income.Create().
		SetSource(entincome.SourcePharmacy).
		SetAmount(amount).
		SetDescription("pharmacy sale " + sale.SaleNumber).
		SetReferenceID(sale.ID).
		SetNillableReceivedBy(receivedBy).
		SetReceivedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record income: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit payment: %w", err)
	}
	return sale, nil
}
