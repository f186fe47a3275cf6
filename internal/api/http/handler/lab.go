package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/niramoy/niramoy_backend/internal/service/lab"
	pasetotoken "github.com/niramoy/niramoy_backend/pkg/paseto"
)

type LabHandler struct {
	svc lab.Service
}

func NewLabHandler(svc lab.Service) *LabHandler {
	return &LabHandler{svc: svc}
}

func mapLabError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, lab.ErrOrderNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, lab.ErrTestNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, lab.ErrResultNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, lab.ErrNoTests):
		return badRequest(c, err.Error())
	case errors.Is(err, lab.ErrOrderCancelled):
		return conflict(c, err.Error())
	case errors.Is(err, lab.ErrResultNotEntered):
		return conflict(c, err.Error())
	case errors.Is(err, lab.ErrAlreadyVerified):
		return conflict(c, err.Error())
	case errors.Is(err, lab.ErrOverpayment):
		return badRequest(c, err.Error())
	case errors.Is(err, lab.ErrNumberExhausted):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /lab/tests
func (h *LabHandler) CreateTest(c fiber.Ctx) error {
	var body struct {
		Name        string  `json:"name"`
		Code        string  `json:"code"`
		Price       int64   `json:"price"`
		Category    *string `json:"category"`
		SampleType  *string `json:"sample_type"`
		NormalRange *string `json:"normal_range"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" || body.Code == "" {
		return badRequest(c, "name and code are required")
	}
	if body.Price <= 0 {
		return badRequest(c, "price must be positive")
	}

	test, err := h.svc.CreateTest(c.Context(), lab.CreateTestRequest{
		Name:        body.Name,
		Code:        body.Code,
		Price:       body.Price,
		Category:    body.Category,
		SampleType:  body.SampleType,
		NormalRange: body.NormalRange,
	})
	if err != nil {
		return mapLabError(c, err)
	}
	return created(c, test)
}

// GET /lab/tests
func (h *LabHandler) ListTests(c fiber.Ctx) error {
	activeOnly := c.Query("active_only", "true") != "false"

	tests, err := h.svc.ListTests(c.Context(), activeOnly)
	if err != nil {
		return mapLabError(c, err)
	}
	return ok(c, tests)
}

// POST /lab/orders
func (h *LabHandler) CreateOrder(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		PatientID      string   `json:"patient_id"`
		PrescriptionID *string  `json:"prescription_id"`
		TestIDs        []string `json:"test_ids"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.PatientID == "" {
		return badRequest(c, "patient_id is required")
	}

	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}

	req := lab.CreateOrderRequest{
		PatientID: patientID,
		OrderedBy: &claims.UserID,
	}
	if body.PrescriptionID != nil && *body.PrescriptionID != "" {
		id, err := uuid.Parse(*body.PrescriptionID)
		if err != nil {
			return badRequest(c, "invalid prescription_id")
		}
		req.PrescriptionID = &id
	}
	for _, raw := range body.TestIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "invalid test id: "+raw)
		}
		req.TestIDs = append(req.TestIDs, id)
	}

	detail, err := h.svc.CreateOrder(c.Context(), req)
	if err != nil {
		return mapLabError(c, err)
	}
	return created(c, detail)
}

// GET /lab/orders
func (h *LabHandler) ListOrders(c fiber.Ctx) error {
	var q struct {
		Status  string `query:"status"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	var status *string
	if q.Status != "" {
		status = &q.Status
	}

	orders, err := h.svc.ListOrders(c.Context(), status, q.Page, q.PerPage)
	if err != nil {
		return mapLabError(c, err)
	}
	return ok(c, orders)
}

// GET /lab/orders/:id
func (h *LabHandler) GetOrder(c fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	detail, err := h.svc.GetOrder(c.Context(), orderID)
	if err != nil {
		return mapLabError(c, err)
	}
	return ok(c, detail)
}

// PATCH /lab/orders/:id/collect-sample
func (h *LabHandler) CollectSample(c fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}
	if err := h.svc.CollectSample(c.Context(), orderID); err != nil {
		return mapLabError(c, err)
	}
	return noContent(c)
}

// PATCH /lab/orders/:id/cancel
func (h *LabHandler) CancelOrder(c fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}
	if err := h.svc.CancelOrder(c.Context(), orderID); err != nil {
		return mapLabError(c, err)
	}
	return noContent(c)
}

// PUT /lab/results/:id
func (h *LabHandler) EnterResult(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	resultID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid result id")
	}

	var body struct {
		ResultValue string  `json:"result_value"`
		Unit        *string `json:"unit"`
		Abnormal    bool    `json:"abnormal"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.ResultValue == "" {
		return badRequest(c, "result_value is required")
	}

	result, err := h.svc.EnterResult(c.Context(), resultID, lab.EnterResultRequest{
		ResultValue: body.ResultValue,
		Unit:        body.Unit,
		Abnormal:    body.Abnormal,
		EnteredBy:   claims.UserID,
	})
	if err != nil {
		return mapLabError(c, err)
	}
	return ok(c, result)
}

// PATCH /lab/results/:id/verify
func (h *LabHandler) VerifyResult(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	resultID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid result id")
	}

	if err := h.svc.VerifyResult(c.Context(), resultID, claims.UserID); err != nil {
		return mapLabError(c, err)
	}
	return noContent(c)
}

// POST /lab/orders/:id/payments
func (h *LabHandler) RecordPayment(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
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

	order, err := h.svc.RecordPayment(c.Context(), orderID, body.Amount, &claims.UserID)
	if err != nil {
		return mapLabError(c, err)
	}
	return ok(c, order)
}
