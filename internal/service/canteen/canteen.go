package canteen

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/niramoy/niramoy_backend/internal/repo"
	entitem "github.com/niramoy/niramoy_backend/internal/repo/canteenitem"
	entsale "github.com/niramoy/niramoy_backend/internal/repo/canteensale"
	entincome "github.com/niramoy/niramoy_backend/internal/repo/income"
	"github.com/niramoy/niramoy_backend/pkg/util/docnum"
)

const numberRetries = 3

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateItemRequest struct {
	Name     string
	Category *string
	Price    int64
}

type SaleLine struct {
	ItemID   uuid.UUID
	Quantity int
}

type SellRequest struct {
	Items  []SaleLine
	SoldBy uuid.UUID
}

type SaleDetail struct {
	Sale  *repo.CanteenSale       `json:"sale"`
	Items []*repo.CanteenSaleItem `json:"items"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	CreateItem(ctx context.Context, req CreateItemRequest) (*repo.CanteenItem, error)
	ListItems(ctx context.Context, availableOnly bool) ([]*repo.CanteenItem, error)
	SetAvailability(ctx context.Context, itemID uuid.UUID, available bool) error

	// Sell is cash-at-counter: the sale is settled in full immediately and
	// the income row is written in the same transaction.
	Sell(ctx context.Context, req SellRequest) (*SaleDetail, error)
	ListSales(ctx context.Context, from, to *time.Time, page, perPage int) ([]*repo.CanteenSale, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type canteenService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &canteenService{db: db}
}

func (s *canteenService) CreateItem(ctx context.Context, req CreateItemRequest) (*repo.CanteenItem, error) {
	it, err := s.db.CanteenItem.Create().
		SetName(req.Name).
		SetNillableCategory(req.Category).
		SetPrice(req.Price).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create canteen item: %w", err)
	}
	return it, nil
}

func (s *canteenService) ListItems(ctx context.Context, availableOnly bool) ([]*repo.CanteenItem, error) {
	q := s.db.CanteenItem.Query()
	if availableOnly {
		q = q.Where(entitem.Available(true))
	}
	items, err := q.Order(entitem.ByName()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list canteen items: %w", err)
	}
	return items, nil
}

func (s *canteenService) SetAvailability(ctx context.Context, itemID uuid.UUID, available bool) error {
	n, err := s.db.CanteenItem.Update().
		Where(entitem.ID(itemID)).
		SetAvailable(available).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set availability: %w", err)
	}
	if n == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (s *canteenService) Sell(ctx context.Context, req SellRequest) (*SaleDetail, error) {
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}

	for attempt := 0; attempt < numberRetries; attempt++ {
		d, err := s.trySell(ctx, req)
		if err == nil {
			return d, nil
		}
		if !repo.IsConstraintError(err) {
			return nil, err
		}
	}
	return nil, ErrNumberExhausted
}

func (s *canteenService) trySell(ctx context.Context, req SellRequest) (*SaleDetail, error) {
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

	seq, err := tx.CanteenSale.Query().
		Where(entsale.CreatedAtGTE(dayStart)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count day sales: %w", err)
	}

	var total int64
	type pricedLine struct {
		line  SaleLine
		price int64
	}
	priced := make([]pricedLine, 0, len(req.Items))
	for _, line := range req.Items {
		item, iErr := tx.CanteenItem.Get(ctx, line.ItemID)
		if iErr != nil {
			if repo.IsNotFound(iErr) {
				err = ErrItemNotFound
			} else {
				err = fmt.Errorf("get item: %w", iErr)
			}
			return nil, err
		}
		if !item.Available {
			err = ErrItemUnavailable
			return nil, err
		}
		total += item.Price * int64(line.Quantity)
		priced = append(priced, pricedLine{line: line, price: item.Price})
	}

	sale, err := tx.CanteenSale.Create().
		SetSaleNumber(docnum.Format(docnum.PrefixCanteenSale, now, seq+1)).
		SetTotalAmount(total).
		SetAmountPaid(total).
		SetSoldBy(req.SoldBy).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create sale: %w", err)
	}

	lines := make([]*repo.CanteenSaleItem, 0, len(priced))
	for _, pl := range priced {
		l, lErr := tx.CanteenSaleItem.Create().
			SetSaleID(sale.ID).
			SetItemID(pl.line.ItemID).
			SetQuantity(pl.line.Quantity).
			SetUnitPrice(pl.price).
			SetSubtotal(pl.price * int64(pl.line.Quantity)).
			Save(ctx)
		if lErr != nil {
			err = fmt.Errorf("create sale line: %w", lErr)
			return nil, err
		}
		lines = append(lines, l)
	}

	_, err = tx.Income.Create().
		SetSource(entincome.SourceCanteen).
		SetAmount(total).
		SetDescription("canteen sale " + sale.SaleNumber).
		SetReferenceID(sale.ID).
		SetReceivedBy(req.SoldBy).
		SetReceivedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record income: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit sale: %w", err)
	}
	return &SaleDetail{Sale: sale, Items: lines}, nil
}

func (s *canteenService) ListSales(ctx context.Context, from, to *time.Time, page, perPage int) ([]*repo.CanteenSale, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	q := s.db.CanteenSale.Query()
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
