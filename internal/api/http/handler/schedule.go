package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/niramoy/niramoy_backend/internal/service/scheduling"
)

type ScheduleHandler struct {
	svc scheduling.Service
}

func NewScheduleHandler(svc scheduling.Service) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

func mapScheduleError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, scheduling.ErrWindowNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, scheduling.ErrDoctorNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, scheduling.ErrOverlappingWindow):
		return conflict(c, err.Error())
	case errors.Is(err, scheduling.ErrInvalidWindow):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /doctors/:doctorId/schedule
func (h *ScheduleHandler) ListWindows(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("doctorId"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	windows, err := h.svc.ListWindows(c.Context(), doctorID)
	if err != nil {
		return mapScheduleError(c, err)
	}
	return ok(c, windows)
}

// POST /doctors/:doctorId/schedule
func (h *ScheduleHandler) CreateWindow(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("doctorId"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var body struct {
		Weekday             int     `json:"weekday"` // 0 = Sunday
		StartTime           string  `json:"start_time"`
		EndTime             string  `json:"end_time"`
		MaxPatients         int     `json:"max_patients"`
		ConsultationMinutes int     `json:"consultation_minutes"`
		RoomNumber          *string `json:"room_number"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.StartTime == "" || body.EndTime == "" {
		return badRequest(c, "start_time and end_time are required")
	}

	window, err := h.svc.CreateWindow(c.Context(), scheduling.CreateWindowRequest{
		DoctorID:            doctorID,
		Weekday:             body.Weekday,
		StartTime:           body.StartTime,
		EndTime:             body.EndTime,
		MaxPatients:         body.MaxPatients,
		ConsultationMinutes: body.ConsultationMinutes,
		RoomNumber:          body.RoomNumber,
	})
	if err != nil {
		return mapScheduleError(c, err)
	}
	return created(c, window)
}

// DELETE /schedule-windows/:id
func (h *ScheduleHandler) DeleteWindow(c fiber.Ctx) error {
	windowID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid window id")
	}

	if err := h.svc.DeleteWindow(c.Context(), windowID); err != nil {
		return mapScheduleError(c, err)
	}
	return noContent(c)
}

// PUT /doctors/:doctorId/availability
func (h *ScheduleHandler) SetAvailability(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("doctorId"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var body struct {
		Date      string  `json:"date"`
		Available bool    `json:"available"`
		Reason    *string `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	date, err := parseDate(body.Date)
	if err != nil {
		return badRequest(c, "invalid date, expected YYYY-MM-DD")
	}

	av, err := h.svc.SetAvailability(c.Context(), scheduling.SetAvailabilityRequest{
		DoctorID:  doctorID,
		Date:      date,
		Available: body.Available,
		Reason:    body.Reason,
	})
	if err != nil {
		return mapScheduleError(c, err)
	}
	return ok(c, av)
}

// GET /doctors/:doctorId/available-dates
func (h *ScheduleHandler) AvailableDates(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("doctorId"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	dates, err := h.svc.AvailableDates(c.Context(), doctorID)
	if err != nil {
		return mapScheduleError(c, err)
	}

	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format("2006-01-02"))
	}
	return ok(c, out)
}

// GET /doctors/:doctorId/slots?date=YYYY-MM-DD
func (h *ScheduleHandler) TimeSlots(c fiber.Ctx) error {
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

	slots, err := h.svc.TimeSlots(c.Context(), doctorID, date)
	if err != nil {
		return mapScheduleError(c, err)
	}
	return ok(c, slots)
}
