package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/niramoy/niramoy_backend/internal/service/staff"
	pasetotoken "github.com/niramoy/niramoy_backend/pkg/paseto"
)

type StaffHandler struct {
	svc staff.Service
}

func NewStaffHandler(svc staff.Service) *StaffHandler {
	return &StaffHandler{svc: svc}
}

func mapStaffError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, staff.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, staff.ErrPhoneAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, staff.ErrEmailAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, staff.ErrInvalidPhone):
		return badRequest(c, err.Error())
	case errors.Is(err, staff.ErrInvalidRole):
		return badRequest(c, err.Error())
	case errors.Is(err, staff.ErrPasswordTooShort):
		return badRequest(c, err.Error())
	case errors.Is(err, staff.ErrSelfDemotion):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /staff
func (h *StaffHandler) Create(c fiber.Ctx) error {
	var body struct {
		FirstName       string  `json:"first_name"`
		LastName        string  `json:"last_name"`
		Phone           string  `json:"phone"`
		Email           *string `json:"email"`
		Role            string  `json:"role"`
		Password        string  `json:"password"`
		Specialization  *string `json:"specialization"`
		LicenseNumber   *string `json:"license_number"`
		ConsultationFee int64   `json:"consultation_fee"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.FirstName == "" || body.LastName == "" || body.Phone == "" || body.Role == "" {
		return badRequest(c, "first_name, last_name, phone and role are required")
	}

	res, err := h.svc.Create(c.Context(), staff.CreateRequest{
		FirstName:       body.FirstName,
		LastName:        body.LastName,
		Phone:           body.Phone,
		Email:           body.Email,
		Role:            body.Role,
		Password:        body.Password,
		Specialization:  body.Specialization,
		LicenseNumber:   body.LicenseNumber,
		ConsultationFee: body.ConsultationFee,
	})
	if err != nil {
		return mapStaffError(c, err)
	}

	resp := fiber.Map{"staff": res.Staff}
	if res.TempPassword != "" {
		resp["temp_password"] = res.TempPassword
	}
	return created(c, resp)
}

// GET /staff
func (h *StaffHandler) List(c fiber.Ctx) error {
	var q struct {
		Role    string `query:"role"`
		Status  string `query:"status"`
		Search  string `query:"search"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := staff.ListRequest{Search: q.Search, Page: q.Page, PerPage: q.PerPage}
	if q.Role != "" {
		req.Role = &q.Role
	}
	if q.Status != "" {
		req.Status = &q.Status
	}

	res, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapStaffError(c, err)
	}

	return ok(c, fiber.Map{"staff": res.Staff, "total": res.Total})
}

// GET /staff/doctors
func (h *StaffHandler) ListDoctors(c fiber.Ctx) error {
	doctors, err := h.svc.ListDoctors(c.Context())
	if err != nil {
		return mapStaffError(c, err)
	}
	return ok(c, doctors)
}

// GET /staff/:id
func (h *StaffHandler) GetByID(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid staff id")
	}

	st, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapStaffError(c, err)
	}
	return ok(c, st)
}

// PATCH /staff/:id
func (h *StaffHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid staff id")
	}

	var body struct {
		FirstName       *string `json:"first_name"`
		LastName        *string `json:"last_name"`
		Email           *string `json:"email"`
		Specialization  *string `json:"specialization"`
		LicenseNumber   *string `json:"license_number"`
		ConsultationFee *int64  `json:"consultation_fee"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	st, err := h.svc.Update(c.Context(), id, staff.UpdateRequest{
		FirstName:       body.FirstName,
		LastName:        body.LastName,
		Email:           body.Email,
		Specialization:  body.Specialization,
		LicenseNumber:   body.LicenseNumber,
		ConsultationFee: body.ConsultationFee,
	})
	if err != nil {
		return mapStaffError(c, err)
	}
	return ok(c, st)
}

// PATCH /staff/:id/role
func (h *StaffHandler) ChangeRole(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid staff id")
	}

	var body struct {
		Role string `json:"role"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Role == "" {
		return badRequest(c, "role is required")
	}

	st, err := h.svc.ChangeRole(c.Context(), claims.UserID, id, body.Role)
	if err != nil {
		return mapStaffError(c, err)
	}
	return ok(c, st)
}

// PATCH /staff/:id/status
func (h *StaffHandler) SetStatus(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid staff id")
	}

	var body struct {
		Suspend bool `json:"suspend"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	st, err := h.svc.SetStatus(c.Context(), claims.UserID, id, body.Suspend)
	if err != nil {
		return mapStaffError(c, err)
	}
	return ok(c, st)
}

// POST /staff/:id/reset-password
func (h *StaffHandler) ResetPassword(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid staff id")
	}

	temp, err := h.svc.ResetPassword(c.Context(), id)
	if err != nil {
		return mapStaffError(c, err)
	}
	return ok(c, fiber.Map{"temp_password": temp})
}

// DELETE /staff/:id
func (h *StaffHandler) Delete(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid staff id")
	}

	if err := h.svc.Delete(c.Context(), claims.UserID, id); err != nil {
		return mapStaffError(c, err)
	}
	return noContent(c)
}
