package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/niramoy/niramoy_backend/internal/service/prescription"
	pasetotoken "github.com/niramoy/niramoy_backend/pkg/paseto"
)

type PrescriptionHandler struct {
	svc prescription.Service
}

func NewPrescriptionHandler(svc prescription.Service) *PrescriptionHandler {
	return &PrescriptionHandler{svc: svc}
}

func mapPrescriptionError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, prescription.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, prescription.ErrNoMedicines):
		return badRequest(c, err.Error())
	case errors.Is(err, prescription.ErrNumberExhausted):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /prescriptions
func (h *PrescriptionHandler) Create(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		PatientID     string  `json:"patient_id"`
		AppointmentID *string `json:"appointment_id"`
		Diagnosis     string  `json:"diagnosis"`
		Advice        *string `json:"advice"`
		FollowUpDate  *string `json:"follow_up_date"`
		Medicines     []struct {
			Name         string  `json:"name"`
			Dosage       string  `json:"dosage"`
			Frequency    string  `json:"frequency"`
			Duration     string  `json:"duration"`
			Instructions *string `json:"instructions"`
		} `json:"medicines"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.PatientID == "" || body.Diagnosis == "" {
		return badRequest(c, "patient_id and diagnosis are required")
	}

	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}

	req := prescription.CreateRequest{
		PatientID: patientID,
		DoctorID:  claims.UserID,
		Diagnosis: body.Diagnosis,
		Advice:    body.Advice,
	}
	if body.AppointmentID != nil && *body.AppointmentID != "" {
		id, err := uuid.Parse(*body.AppointmentID)
		if err != nil {
			return badRequest(c, "invalid appointment_id")
		}
		req.AppointmentID = &id
	}
	if body.FollowUpDate != nil && *body.FollowUpDate != "" {
		t, err := parseDate(*body.FollowUpDate)
		if err != nil {
			return badRequest(c, "invalid follow_up_date, expected YYYY-MM-DD")
		}
		req.FollowUpDate = &t
	}
	for _, m := range body.Medicines {
		if m.Name == "" {
			return badRequest(c, "medicine name is required")
		}
		req.Medicines = append(req.Medicines, prescription.MedicineLine{
			Name:         m.Name,
			Dosage:       m.Dosage,
			Frequency:    m.Frequency,
			Duration:     m.Duration,
			Instructions: m.Instructions,
		})
	}

	detail, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return mapPrescriptionError(c, err)
	}
	return created(c, detail)
}

// GET /prescriptions/:id
func (h *PrescriptionHandler) GetByID(c fiber.Ctx) error {
	rxID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid prescription id")
	}

	detail, err := h.svc.GetByID(c.Context(), rxID)
	if err != nil {
		return mapPrescriptionError(c, err)
	}
	return ok(c, detail)
}

// GET /prescriptions/by-number/:number
func (h *PrescriptionHandler) GetByNumber(c fiber.Ctx) error {
	number := c.Params("number")
	if number == "" {
		return badRequest(c, "missing prescription number")
	}

	detail, err := h.svc.GetByNumber(c.Context(), number)
	if err != nil {
		return mapPrescriptionError(c, err)
	}
	return ok(c, detail)
}

// PATCH /prescriptions/:id/print
func (h *PrescriptionHandler) MarkPrinted(c fiber.Ctx) error {
	rxID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid prescription id")
	}

	rx, err := h.svc.MarkPrinted(c.Context(), rxID)
	if err != nil {
		return mapPrescriptionError(c, err)
	}
	return ok(c, rx)
}

// GET /patients/:id/prescriptions
func (h *PrescriptionHandler) ListByPatient(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	list, err := h.svc.ListByPatient(c.Context(), patientID, q.Page, q.PerPage)
	if err != nil {
		return mapPrescriptionError(c, err)
	}
	return ok(c, list)
}

// GET /prescriptions (doctor's own)
func (h *PrescriptionHandler) ListMine(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	list, err := h.svc.ListByDoctor(c.Context(), claims.UserID, q.Page, q.PerPage)
	if err != nil {
		return mapPrescriptionError(c, err)
	}
	return ok(c, list)
}
