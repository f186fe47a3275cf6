package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/niramoy/niramoy_backend/internal/service/queue"
	pasetotoken "github.com/niramoy/niramoy_backend/pkg/paseto"
)

type QueueHandler struct {
	svc queue.Service
}

func NewQueueHandler(svc queue.Service) *QueueHandler {
	return &QueueHandler{svc: svc}
}

func mapQueueError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, queue.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, queue.ErrDoctorNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, queue.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, queue.ErrNoPatientWaiting):
		return notFound(c, err.Error())
	case errors.Is(err, queue.ErrInvalidTransition):
		return conflict(c, err.Error())
	case errors.Is(err, queue.ErrAlreadyTerminal):
		return conflict(c, err.Error())
	case errors.Is(err, queue.ErrDateNotBookable):
		return conflict(c, err.Error())
	case errors.Is(err, queue.ErrQueueFull):
		return conflict(c, err.Error())
	case errors.Is(err, queue.ErrSerialContention):
		return conflict(c, err.Error())
	case errors.Is(err, queue.ErrOverpayment):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

func parseDate(raw string) (time.Time, error) {
	return time.Parse("2006-01-02", raw)
}

// POST /appointments
func (h *QueueHandler) Book(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		PatientID string  `json:"patient_id"`
		DoctorID  string  `json:"doctor_id"`
		Date      string  `json:"date"` // "2006-01-02"
		Reason    *string `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.PatientID == "" || body.DoctorID == "" || body.Date == "" {
		return badRequest(c, "patient_id, doctor_id and date are required")
	}

	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}
	doctorID, err := uuid.Parse(body.DoctorID)
	if err != nil {
		return badRequest(c, "invalid doctor_id")
	}
	date, err := parseDate(body.Date)
	if err != nil {
		return badRequest(c, "invalid date, expected YYYY-MM-DD")
	}

	appt, err := h.svc.Create(c.Context(), queue.CreateRequest{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
		Reason:    body.Reason,
		CreatedBy: &claims.UserID,
	})
	if err != nil {
		return mapQueueError(c, err)
	}

	return created(c, appt)
}

// GET /appointments
func (h *QueueHandler) List(c fiber.Ctx) error {
	var q struct {
		DoctorID  string `query:"doctor_id"`
		PatientID string `query:"patient_id"`
		Status    string `query:"status"`
		From      string `query:"from"`
		To        string `query:"to"`
		Page      int    `query:"page"`
		PerPage   int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := queue.ListRequest{Page: q.Page, PerPage: q.PerPage}
	if q.DoctorID != "" {
		id, err := uuid.Parse(q.DoctorID)
		if err != nil {
			return badRequest(c, "invalid doctor_id")
		}
		req.DoctorID = &id
	}
	if q.PatientID != "" {
		id, err := uuid.Parse(q.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &id
	}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.From != "" {
		if t, err := parseDate(q.From); err == nil {
			req.From = &t
		}
	}
	if q.To != "" {
		if t, err := parseDate(q.To); err == nil {
			req.To = &t
		}
	}

	appts, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapQueueError(c, err)
	}
	return ok(c, appts)
}

// GET /appointments/:id
func (h *QueueHandler) GetByID(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.GetByID(c.Context(), apptID)
	if err != nil {
		return mapQueueError(c, err)
	}
	return ok(c, appt)
}

// GET /queue/:doctorId?date=YYYY-MM-DD
func (h *QueueHandler) DayQueue(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("doctorId"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		date, err = parseDate(raw)
		if err != nil {
			return badRequest(c, "invalid date, expected YYYY-MM-DD")
		}
	}

	appts, err := h.svc.DayQueue(c.Context(), doctorID, date)
	if err != nil {
		return mapQueueError(c, err)
	}
	return ok(c, appts)
}

// POST /queue/:doctorId/call-next
func (h *QueueHandler) CallNext(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("doctorId"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var body struct {
		Date             string `json:"date"`
		StartImmediately bool   `json:"start_immediately"`
	}
	// Body is optional; defaults to today.
	_ = c.Bind().JSON(&body)

	date := time.Now()
	if body.Date != "" {
		date, err = parseDate(body.Date)
		if err != nil {
			return badRequest(c, "invalid date, expected YYYY-MM-DD")
		}
	}

	appt, err := h.svc.CallNext(c.Context(), doctorID, date, body.StartImmediately)
	if err != nil {
		// An empty queue is a normal outcome, not an error response.
		if errors.Is(err, queue.ErrNoPatientWaiting) {
			return noContent(c)
		}
		return mapQueueError(c, err)
	}
	return ok(c, appt)
}

// PATCH /appointments/:id/start
func (h *QueueHandler) Start(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}
	if err := h.svc.Start(c.Context(), apptID); err != nil {
		return mapQueueError(c, err)
	}
	return noContent(c)
}

// PATCH /appointments/:id/complete
func (h *QueueHandler) Complete(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}
	if err := h.svc.Complete(c.Context(), apptID); err != nil {
		return mapQueueError(c, err)
	}
	return noContent(c)
}

// PATCH /appointments/:id/cancel
func (h *QueueHandler) Cancel(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Reason *string `json:"reason"`
	}
	_ = c.Bind().JSON(&body)

	if err := h.svc.Cancel(c.Context(), apptID, body.Reason); err != nil {
		return mapQueueError(c, err)
	}
	return noContent(c)
}

// PATCH /appointments/:id/no-show
func (h *QueueHandler) MarkNoShow(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}
	if err := h.svc.MarkNoShow(c.Context(), apptID); err != nil {
		return mapQueueError(c, err)
	}
	return noContent(c)
}

// POST /appointments/:id/payments
func (h *QueueHandler) RecordPayment(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
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

	appt, err := h.svc.RecordPayment(c.Context(), apptID, body.Amount, &claims.UserID)
	if err != nil {
		return mapQueueError(c, err)
	}
	return ok(c, appt)
}
