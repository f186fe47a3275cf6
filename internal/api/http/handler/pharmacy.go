package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/niramoy/niramoy_backend/internal/service/pharmacy"
	pasetotoken "github.com/niramoy/niramoy_backend/pkg/paseto"
)

type PharmacyHandler struct {
	svc pharmacy.Service
}

func NewPharmacyHandler(svc pharmacy.Service) *PharmacyHandler {
	return &PharmacyHandler{svc: svc}
}

func mapPharmacyError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, pharmacy.ErrDrugNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, pharmacy.ErrSaleNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, pharmacy.ErrNoItems):
		return badRequest(c, err.Error())
	case errors.Is(err, pharmacy.ErrNegativePayment):
		return badRequest(c, err.Error())
	case errors.Is(err, pharmacy.ErrInsufficientStock):
		return conflict(c, err.Error())
	case errors.Is(err, pharmacy.ErrDrugExpired):
		return conflict(c, err.Error())
	case errors.Is(err, pharmacy.ErrOverpayment):
		return badRequest(c, err.Error())
	case errors.Is(err, pharmacy.ErrNumberExhausted):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /pharmacy/drugs
func (h *PharmacyHandler) CreateDrug(c fiber.Ctx) error {
	var body struct {
		Name         string  `json:"name"`
		GenericName  *string `json:"generic_name"`
		Category     *string `json:"category"`
		Manufacturer *string `json:"manufacturer"`
		BatchNumber  *string `json:"batch_number"`
		UnitPrice    int64   `json:"unit_price"`
		StockQty     int     `json:"stock_quantity"`
		ReorderLevel int     `json:"reorder_level"`
		ExpiryDate   *string `json:"expiry_date"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" {
		return badRequest(c, "name is required")
	}
	if body.UnitPrice <= 0 {
		return badRequest(c, "unit_price must be positive")
	}

	req := pharmacy.CreateDrugRequest{
		Name:         body.Name,
		GenericName:  body.GenericName,
		Category:     body.Category,
		Manufacturer: body.Manufacturer,
		BatchNumber:  body.BatchNumber,
		UnitPrice:    body.UnitPrice,
		StockQty:     body.StockQty,
		ReorderLevel: body.ReorderLevel,
	}
	if body.ExpiryDate != nil && *body.ExpiryDate != "" {
		t, err := parseDate(*body.ExpiryDate)
		if err != nil {
			return badRequest(c, "invalid expiry_date, expected YYYY-MM-DD")
		}
		req.ExpiryDate = &t
	}

	drug, err := h.svc.CreateDrug(c.Context(), req)
	if err != nil {
		return mapPharmacyError(c, err)
	}
	return created(c, drug)
}

// GET /pharmacy/drugs
func (h *PharmacyHandler) ListDrugs(c fiber.Ctx) error {
	var q struct {
		Search  string `query:"search"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	var search *string
	if q.Search != "" {
		search = &q.Search
	}

	drugs, err := h.svc.ListDrugs(c.Context(), search, q.Page, q.PerPage)
	if err != nil {
		return mapPharmacyError(c, err)
	}
	return ok(c, drugs)
}

// GET /pharmacy/drugs/:id
func (h *PharmacyHandler) GetDrug(c fiber.Ctx) error {
	drugID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid drug id")
	}

	drug, err := h.svc.GetDrug(c.Context(), drugID)
	if err != nil {
		return mapPharmacyError(c, err)
	}
	return ok(c, drug)
}

// POST /pharmacy/drugs/:id/adjust-stock
func (h *PharmacyHandler) AdjustStock(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	drugID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid drug id")
	}

	var body struct {
		Delta  int     `json:"delta"`
		Reason string  `json:"reason"`
		Note   *string `json:"note"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Delta == 0 {
		return badRequest(c, "delta must be non-zero")
	}
	if body.Reason == "" {
		return badRequest(c, "reason is required")
	}

	drug, err := h.svc.AdjustStock(c.Context(), pharmacy.AdjustStockRequest{
		DrugID:     drugID,
		Delta:      body.Delta,
		Reason:     body.Reason,
		Note:       body.Note,
		AdjustedBy: claims.UserID,
	})
	if err != nil {
		return mapPharmacyError(c, err)
	}
	return ok(c, drug)
}

// GET /pharmacy/drugs/low-stock
func (h *PharmacyHandler) LowStock(c fiber.Ctx) error {
	drugs, err := h.svc.LowStock(c.Context())
	if err != nil {
		return mapPharmacyError(c, err)
	}
	return ok(c, drugs)
}

// GET /pharmacy/drugs/expiring?days=30
func (h *PharmacyHandler) ExpiringSoon(c fiber.Ctx) error {
	days := fiber.Query(c, "days", 30)
	if days < 1 {
		days = 30
	}

	drugs, err := h.svc.ExpiringSoon(c.Context(), time.Duration(days)*24*time.Hour)
	if err != nil {
		return mapPharmacyError(c, err)
	}
	return ok(c, drugs)
}

// POST /pharmacy/sales
func (h *PharmacyHandler) Sell(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		PatientID      *string `json:"patient_id"`
		PrescriptionID *string `json:"prescription_id"`
		AmountPaid     int64   `json:"amount_paid"`
		Items          []struct {
			DrugID   string `json:"drug_id"`
			Quantity int    `json:"quantity"`
		} `json:"items"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := pharmacy.SellRequest{
		AmountPaid: body.AmountPaid,
		SoldBy:     claims.UserID,
	}
	if body.PatientID != nil && *body.PatientID != "" {
		id, err := uuid.Parse(*body.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &id
	}
	if body.PrescriptionID != nil && *body.PrescriptionID != "" {
		id, err := uuid.Parse(*body.PrescriptionID)
		if err != nil {
			return badRequest(c, "invalid prescription_id")
		}
		req.PrescriptionID = &id
	}
	for _, item := range body.Items {
		id, err := uuid.Parse(item.DrugID)
		if err != nil {
			return badRequest(c, "invalid drug_id: "+item.DrugID)
		}
		if item.Quantity < 1 {
			return badRequest(c, "quantity must be positive")
		}
		req.Items = append(req.Items, pharmacy.SaleLine{DrugID: id, Quantity: item.Quantity})
	}

	detail, err := h.svc.Sell(c.Context(), req)
	if err != nil {
		return mapPharmacyError(c, err)
	}
	return created(c, detail)
}

// GET /pharmacy/sales
func (h *PharmacyHandler) ListSales(c fiber.Ctx) error {
	var q struct {
		From    string `query:"from"`
		To      string `query:"to"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	var from, to *time.Time
	if q.From != "" {
		if t, err := parseDate(q.From); err == nil {
			from = &t
		}
	}
	if q.To != "" {
		if t, err := parseDate(q.To); err == nil {
			to = &t
		}
	}

	sales, err := h.svc.ListSales(c.Context(), from, to, q.Page, q.PerPage)
	if err != nil {
		return mapPharmacyError(c, err)
	}
	return ok(c, sales)
}

// GET /pharmacy/sales/:id
func (h *PharmacyHandler) GetSale(c fiber.Ctx) error {
	saleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid sale id")
	}

	detail, err := h.svc.GetSale(c.Context(), saleID)
	if err != nil {
		return mapPharmacyError(c, err)
	}
	return ok(c, detail)
}

// POST /pharmacy/sales/:id/payments
func (h *PharmacyHandler) RecordPayment(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	saleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid sale id")
	}

	var body struct {
		Amount int64 `json:"amount"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Amount <= 0 {
		return badRequest(c, "amount must be positive")
	}

	sale, err := h.svc.RecordPayment(c.Context(), saleID, body.Amount, &claims.UserID)
	if err != nil {
		return mapPharmacyError(c, err)
	}
	return ok(c, sale)
}
