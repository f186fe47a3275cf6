package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/niramoy/niramoy_backend/internal/service/patient"
)

type PatientHandler struct {
	svc patient.Service
}

func NewPatientHandler(svc patient.Service) *PatientHandler {
	return &PatientHandler{svc: svc}
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrInvalidPhone):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

type patientBody struct {
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	Phone            string  `json:"phone"`
	Email            *string `json:"email"`
	DateOfBirth      *string `json:"date_of_birth"` // "2006-01-02"
	Gender           *string `json:"gender"`
	BloodGroup       *string `json:"blood_group"`
	Address          *string `json:"address"`
	EmergencyContact *string `json:"emergency_contact"`
	MedicalNotes     *string `json:"medical_notes"`
}

func parseDateOfBirth(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// POST /patients
func (h *PatientHandler) Create(c fiber.Ctx) error {
	var body patientBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.FirstName == "" || body.LastName == "" || body.Phone == "" {
		return badRequest(c, "first_name, last_name and phone are required")
	}

	dob, err := parseDateOfBirth(body.DateOfBirth)
	if err != nil {
		return badRequest(c, "invalid date_of_birth, expected YYYY-MM-DD")
	}

	p, err := h.svc.Create(c.Context(), patient.CreateRequest{
		FirstName:        body.FirstName,
		LastName:         body.LastName,
		Phone:            body.Phone,
		Email:            body.Email,
		DateOfBirth:      dob,
		Gender:           body.Gender,
		BloodGroup:       body.BloodGroup,
		Address:          body.Address,
		EmergencyContact: body.EmergencyContact,
		MedicalNotes:     body.MedicalNotes,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return created(c, p)
}

// GET /patients
func (h *PatientHandler) List(c fiber.Ctx) error {
	var q struct {
		Search  string `query:"search"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := patient.ListRequest{Page: q.Page, PerPage: q.PerPage}
	if q.Search != "" {
		req.Search = &q.Search
	}

	patients, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, patients)
}

// GET /patients/:id
func (h *PatientHandler) GetByID(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	p, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// PATCH /patients/:id
func (h *PatientHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		FirstName        *string `json:"first_name"`
		LastName         *string `json:"last_name"`
		Phone            *string `json:"phone"`
		Email            *string `json:"email"`
		DateOfBirth      *string `json:"date_of_birth"`
		Gender           *string `json:"gender"`
		BloodGroup       *string `json:"blood_group"`
		Address          *string `json:"address"`
		EmergencyContact *string `json:"emergency_contact"`
		MedicalNotes     *string `json:"medical_notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	dob, err := parseDateOfBirth(body.DateOfBirth)
	if err != nil {
		return badRequest(c, "invalid date_of_birth, expected YYYY-MM-DD")
	}

	p, err := h.svc.Update(c.Context(), id, patient.UpdateRequest{
		FirstName:        body.FirstName,
		LastName:         body.LastName,
		Phone:            body.Phone,
		Email:            body.Email,
		DateOfBirth:      dob,
		Gender:           body.Gender,
		BloodGroup:       body.BloodGroup,
		Address:          body.Address,
		EmergencyContact: body.EmergencyContact,
		MedicalNotes:     body.MedicalNotes,
	})
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// DELETE /patients/:id
func (h *PatientHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapPatientError(c, err)
	}
	return noContent(c)
}
