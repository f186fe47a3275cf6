package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/niramoy/niramoy_backend/internal/repo"
	entappt "github.com/niramoy/niramoy_backend/internal/repo/appointment"
	entavail "github.com/niramoy/niramoy_backend/internal/repo/doctoravailability"
	entsched "github.com/niramoy/niramoy_backend/internal/repo/doctorschedule"
	entstaff "github.com/niramoy/niramoy_backend/internal/repo/staff"
)

// bookingHorizonDays bounds how far ahead AvailableDates looks.
const bookingHorizonDays = 14

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateWindowRequest struct {
	DoctorID            uuid.UUID
	Weekday             int
	StartTime           string // "15:04"
	EndTime             string
	MaxPatients         int
	ConsultationMinutes int
	RoomNumber          *string
}

type SetAvailabilityRequest struct {
	DoctorID  uuid.UUID
	Date      time.Time
	Available bool
	Reason    *string
}

// DaySlots is the public booking view for one doctor-date.
type DaySlots struct {
	Date      time.Time `json:"date"`
	Slots     []string  `json:"slots"`
	Capacity  int       `json:"capacity"`
	Booked    int       `json:"booked"`
	Remaining int       `json:"remaining"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	ListWindows(ctx context.Context, doctorID uuid.UUID) ([]*repo.DoctorSchedule, error)
	CreateWindow(ctx context.Context, req CreateWindowRequest) (*repo.DoctorSchedule, error)
	DeleteWindow(ctx context.Context, windowID uuid.UUID) error

	SetAvailability(ctx context.Context, req SetAvailabilityRequest) (*repo.DoctorAvailability, error)

	// AvailableDates returns the dates within the booking horizon on which
	// the doctor can still take patients, today included.
	AvailableDates(ctx context.Context, doctorID uuid.UUID) ([]time.Time, error)

	// TimeSlots derives the bookable start times and remaining capacity for
	// one doctor-date from the weekly windows and the day's bookings.
	TimeSlots(ctx context.Context, doctorID uuid.UUID, date time.Time) (*DaySlots, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type schedulingService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &schedulingService{db: db}
}

// dateOnly normalizes to midnight UTC of the value's calendar day, matching
// how availability dates are stored.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *schedulingService) ListWindows(ctx context.Context, doctorID uuid.UUID) ([]*repo.DoctorSchedule, error) {
	windows, err := s.db.DoctorSchedule.Query().
		Where(entsched.DoctorID(doctorID)).
		Order(entsched.ByWeekday(), entsched.ByStartTime()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schedule windows: %w", err)
	}
	return windows, nil
}

func (s *schedulingService) CreateWindow(ctx context.Context, req CreateWindowRequest) (*repo.DoctorSchedule, error) {
	// Validates the times and the step in one go.
	if _, err := slotTimes(req.StartTime, req.EndTime, req.ConsultationMinutes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}

	exists, err := s.db.Staff.Query().
		Where(
			entstaff.ID(req.DoctorID),
			entstaff.RoleEQ(entstaff.RoleDoctor),
			entstaff.DeletedAtIsNil(),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check doctor: %w", err)
	}
	if !exists {
		return nil, ErrDoctorNotFound
	}

	overlaps, err := s.db.DoctorSchedule.Query().
		Where(
			entsched.DoctorID(req.DoctorID),
			entsched.Weekday(req.Weekday),
			entsched.Active(true),
			entsched.StartTimeLT(req.EndTime),
			entsched.EndTimeGT(req.StartTime),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check overlap: %w", err)
	}
	if overlaps {
		return nil, ErrOverlappingWindow
	}

	w, err := s.db.DoctorSchedule.Create().
		SetDoctorID(req.DoctorID).
		SetWeekday(req.Weekday).
		SetStartTime(req.StartTime).
		SetEndTime(req.EndTime).
		SetMaxPatients(req.MaxPatients).
		SetConsultationMinutes(req.ConsultationMinutes).
		SetNillableRoomNumber(req.RoomNumber).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create schedule window: %w", err)
	}
	return w, nil
}

func (s *schedulingService) DeleteWindow(ctx context.Context, windowID uuid.UUID) error {
	n, err := s.db.DoctorSchedule.Delete().
		Where(entsched.ID(windowID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete schedule window: %w", err)
	}
	if n == 0 {
		return ErrWindowNotFound
	}
	return nil
}

func (s *schedulingService) SetAvailability(ctx context.Context, req SetAvailabilityRequest) (*repo.DoctorAvailability, error) {
	date := dateOnly(req.Date)

	existing, err := s.db.DoctorAvailability.Query().
		Where(entavail.DoctorID(req.DoctorID), entavail.Date(date)).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get availability: %w", err)
	}

	if existing != nil {
		a, uErr := s.db.DoctorAvailability.UpdateOne(existing).
			SetAvailable(req.Available).
			SetNillableReason(req.Reason).
			Save(ctx)
		if uErr != nil {
			return nil, fmt.Errorf("update availability: %w", uErr)
		}
		return a, nil
	}

	a, err := s.db.DoctorAvailability.Create().
		SetDoctorID(req.DoctorID).
		SetDate(date).
		SetAvailable(req.Available).
		SetNillableReason(req.Reason).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create availability: %w", err)
	}
	return a, nil
}

func (s *schedulingService) AvailableDates(ctx context.Context, doctorID uuid.UUID) ([]time.Time, error) {
	windows, err := s.db.DoctorSchedule.Query().
		Where(entsched.DoctorID(doctorID), entsched.Active(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schedule windows: %w", err)
	}

	weekdays := map[int]bool{}
	for _, w := range windows {
		weekdays[w.Weekday] = true
	}

	today := dateOnly(time.Now())
	horizon := today.AddDate(0, 0, bookingHorizonDays)

	overrides, err := s.db.DoctorAvailability.Query().
		Where(
			entavail.DoctorID(doctorID),
			entavail.DateGTE(today),
			entavail.DateLT(horizon),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list availability overrides: %w", err)
	}
	byDate := map[time.Time]bool{}
	for _, o := range overrides {
		byDate[dateOnly(o.Date)] = o.Available
	}

	var dates []time.Time
	for d := today; d.Before(horizon); d = d.AddDate(0, 0, 1) {
		open := weekdays[int(d.Weekday())]
		if avail, ok := byDate[d]; ok {
			open = avail
		}
		if open {
			dates = append(dates, d)
		}
	}
	return dates, nil
}

func (s *schedulingService) TimeSlots(ctx context.Context, doctorID uuid.UUID, date time.Time) (*DaySlots, error) {
	date = dateOnly(date)

	windows, err := s.db.DoctorSchedule.Query().
		Where(
			entsched.DoctorID(doctorID),
			entsched.Weekday(int(date.Weekday())),
			entsched.Active(true),
		).
		Order(entsched.ByStartTime()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schedule windows: %w", err)
	}

	capacity := 0
	var slots []string
	for _, w := range windows {
		ts, sErr := slotTimes(w.StartTime, w.EndTime, w.ConsultationMinutes)
		if sErr != nil {
			// A malformed stored window should not break the whole day.
			continue
		}
		slots = append(slots, ts...)
		capacity += w.MaxPatients
	}

	booked, err := s.db.Appointment.Query().
		Where(
			entappt.DoctorID(doctorID),
			entappt.AppointmentDate(date),
			entappt.StatusNEQ(entappt.StatusCancelled),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	remaining := capacity - booked
	if remaining < 0 {
		remaining = 0
	}

	return &DaySlots{
		Date:      date,
		Slots:     slots,
		Capacity:  capacity,
		Booked:    booked,
		Remaining: remaining,
	}, nil
}
