package pharmacy

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/niramoy/niramoy_backend/internal/notify"
	"github.com/niramoy/niramoy_backend/internal/repo"
	"github.com/niramoy/niramoy_backend/internal/repo/enttest"
)

func newPharmacyFixture(t *testing.T) (Service, *repo.Drug) {
	t.Helper()

	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })

	svc := New(client, notify.NewNop())

	drug, err := svc.CreateDrug(context.Background(), CreateDrugRequest{
		Name:         "Paracetamol 500mg",
		UnitPrice:    10,
		StockQty:     50,
		ReorderLevel: 5,
	})
	if err != nil {
		t.Fatalf("CreateDrug: %v", err)
	}
	return svc, drug
}

func TestSellRejectsNegativeAmountPaid(t *testing.T) {
	svc, drug := newPharmacyFixture(t)

	_, err := svc.Sell(context.Background(), SellRequest{
		Items:      []SaleLine{{DrugID: drug.ID, Quantity: 2}},
		AmountPaid: -1,
		SoldBy:     uuid.New(),
	})
	if !errors.Is(err, ErrNegativePayment) {
		t.Errorf("Sell with negative amount_paid = %v, want ErrNegativePayment", err)
	}
}

func TestSellRejectsPaymentAboveTotal(t *testing.T) {
	svc, drug := newPharmacyFixture(t)
	ctx := context.Background()

	// 2 units at 10 each price the cart at 20.
	_, err := svc.Sell(ctx, SellRequest{
		Items:      []SaleLine{{DrugID: drug.ID, Quantity: 2}},
		AmountPaid: 21,
		SoldBy:     uuid.New(),
	})
	if !errors.Is(err, ErrOverpayment) {
		t.Errorf("Sell overpaying the cart = %v, want ErrOverpayment", err)
	}

	// The rejected sale must not have touched stock.
	got, err := svc.GetDrug(ctx, drug.ID)
	if err != nil {
		t.Fatalf("GetDrug: %v", err)
	}
	if got.StockQuantity != 50 {
		t.Errorf("stock after rejected sale = %d, want 50", got.StockQuantity)
	}
}

func TestSellPricesCartAndDecrementsStock(t *testing.T) {
	svc, drug := newPharmacyFixture(t)
	ctx := context.Background()

	detail, err := svc.Sell(ctx, SellRequest{
		Items:      []SaleLine{{DrugID: drug.ID, Quantity: 3}},
		AmountPaid: 30,
		SoldBy:     uuid.New(),
	})
	if err != nil {
		t.Fatalf("Sell: %v", err)
	}
	if detail.Sale.TotalAmount != 30 {
		t.Errorf("total_amount = %d, want 30", detail.Sale.TotalAmount)
	}
	if detail.Sale.AmountPaid != 30 {
		t.Errorf("amount_paid = %d, want 30", detail.Sale.AmountPaid)
	}

	got, err := svc.GetDrug(ctx, drug.ID)
	if err != nil {
		t.Fatalf("GetDrug: %v", err)
	}
	if got.StockQuantity != 47 {
		t.Errorf("stock after sale = %d, want 47", got.StockQuantity)
	}
}

func TestRecordPaymentStopsAtOutstandingBalance(t *testing.T) {
	svc, drug := newPharmacyFixture(t)
	ctx := context.Background()

	detail, err := svc.Sell(ctx, SellRequest{
		Items:      []SaleLine{{DrugID: drug.ID, Quantity: 4}},
		AmountPaid: 10,
		SoldBy:     uuid.New(),
	})
	if err != nil {
		t.Fatalf("Sell: %v", err)
	}

	if _, err := svc.RecordPayment(ctx, detail.Sale.ID, 31, nil); !errors.Is(err, ErrOverpayment) {
		t.Errorf("RecordPayment past the balance = %v, want ErrOverpayment", err)
	}

	sale, err := svc.RecordPayment(ctx, detail.Sale.ID, 30, nil)
	if err != nil {
		t.Fatalf("RecordPayment remainder: %v", err)
	}
	if sale.AmountPaid != sale.TotalAmount {
		t.Errorf("amount_paid = %d, want %d", sale.AmountPaid, sale.TotalAmount)
	}
}
