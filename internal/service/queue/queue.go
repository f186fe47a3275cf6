package queue

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/niramoy/niramoy_backend/internal/notify"
	"github.com/niramoy/niramoy_backend/internal/repo"
	entappt "github.com/niramoy/niramoy_backend/internal/repo/appointment"
	entavail "github.com/niramoy/niramoy_backend/internal/repo/doctoravailability"
	entsched "github.com/niramoy/niramoy_backend/internal/repo/doctorschedule"
	entincome "github.com/niramoy/niramoy_backend/internal/repo/income"
	entpatient "github.com/niramoy/niramoy_backend/internal/repo/patient"
	entstaff "github.com/niramoy/niramoy_backend/internal/repo/staff"
	"github.com/niramoy/niramoy_backend/pkg/util/docnum"
)

// serialRetries bounds the read-max-then-insert loop. The unique index on
// (doctor_id, appointment_date, serial_number) rejects the loser of a race;
// retrying re-reads the new max. Contention is per doctor per day, so more
// than a couple of rounds means something is wrong.
const serialRetries = 3

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	PatientID uuid.UUID
	DoctorID  uuid.UUID
	Date      time.Time
	Reason    *string
	CreatedBy *uuid.UUID
}

type ListRequest struct {
	DoctorID  *uuid.UUID
	PatientID *uuid.UUID
	Status    *string
	From      *time.Time
	To        *time.Time
	Page      int
	PerPage   int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Appointment, error)
	GetByID(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error)
	List(ctx context.Context, req ListRequest) ([]*repo.Appointment, error)

	// CallNext claims the waiting appointment with the lowest serial number
	// for (doctor, date) and advances it to called (or straight to
	// in_progress when startImmediately is set). Returns ErrNoPatientWaiting
	// when the queue is empty; that is an answer, not a failure.
	CallNext(ctx context.Context, doctorID uuid.UUID, date time.Time, startImmediately bool) (*repo.Appointment, error)

	Start(ctx context.Context, apptID uuid.UUID) error
	Complete(ctx context.Context, apptID uuid.UUID) error
	Cancel(ctx context.Context, apptID uuid.UUID, reason *string) error
	MarkNoShow(ctx context.Context, apptID uuid.UUID) error

	// DayQueue returns every non-cancelled appointment for (doctor, date)
	// in serial order, for the doctor and receptionist queue views.
	DayQueue(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]*repo.Appointment, error)

	// RecordPayment settles (part of) the consultation fee at the desk and
	// writes the matching income row in the same transaction.
	RecordPayment(ctx context.Context, apptID uuid.UUID, amount int64, receivedBy *uuid.UUID) (*repo.Appointment, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type queueService struct {
	db       *repo.Client
	notifier notify.Notifier
}

func New(db *repo.Client, notifier notify.Notifier) Service {
	return &queueService{db: db, notifier: notifier}
}

// dateOnly normalizes to midnight UTC of the value's calendar day. Every
// appointment_date in the table is stored this way, so a "today" default
// taken from the server clock and a client-supplied date compare equal for
// the same calendar day regardless of the server's zone.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *queueService) Create(ctx context.Context, req CreateRequest) (*repo.Appointment, error) {
	date := dateOnly(req.Date)

	doctor, err := s.db.Staff.Query().
		Where(
			entstaff.ID(req.DoctorID),
			entstaff.RoleEQ(entstaff.RoleDoctor),
			entstaff.StatusEQ(entstaff.StatusACTIVE),
			entstaff.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("get doctor: %w", err)
	}

	exists, err := s.db.Patient.Query().
		Where(entpatient.ID(req.PatientID), entpatient.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if !exists {
		return nil, ErrPatientNotFound
	}

	capacity, room, err := s.dayCapacity(ctx, req.DoctorID, date)
	if err != nil {
		return nil, err
	}

	booked, err := s.db.Appointment.Query().
		Where(
			entappt.DoctorID(req.DoctorID),
			entappt.AppointmentDate(date),
			entappt.StatusNEQ(entappt.StatusCancelled),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}
	if booked >= capacity {
		return nil, ErrQueueFull
	}

	appt, err := s.createWithSerial(ctx, req, doctor, date, room)
	if err != nil {
		return nil, err
	}

	s.notifier.QueueBooked(ctx, notify.QueueBookedEvent{
		AppointmentID:     appt.ID,
		AppointmentNumber: appt.AppointmentNumber,
		DoctorID:          appt.DoctorID,
		AppointmentDate:   appt.AppointmentDate,
		SerialNumber:      appt.SerialNumber,
	})

	return appt, nil
}

// createWithSerial assigns the next serial number for (doctor, date) inside
// a transaction. Two concurrent bookings can read the same max; the unique
// index makes exactly one of them fail, and the loser retries against the
// committed state.
func (s *queueService) createWithSerial(ctx context.Context, req CreateRequest, doctor *repo.Staff, date time.Time, room *string) (*repo.Appointment, error) {
	for attempt := 0; attempt < serialRetries; attempt++ {
		appt, err := s.tryCreate(ctx, req, doctor, date, room)
		if err == nil {
			return appt, nil
		}
		if !repo.IsConstraintError(err) {
			return nil, err
		}
	}
	return nil, ErrSerialContention
}

func (s *queueService) tryCreate(ctx context.Context, req CreateRequest, doctor *repo.Staff, date time.Time, room *string) (*repo.Appointment, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	last, err := tx.Appointment.Query().
		Where(
			entappt.DoctorID(req.DoctorID),
			entappt.AppointmentDate(date),
		).
		Order(entappt.BySerialNumber(sql.OrderDesc())).
		First(ctx)
	serial := 1
	if err != nil {
		if !repo.IsNotFound(err) {
			return nil, fmt.Errorf("read max serial: %w", err)
		}
		err = nil
	} else {
		serial = last.SerialNumber + 1
	}

	daySeq, err := tx.Appointment.Query().
		Where(entappt.AppointmentDate(date)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count day appointments: %w", err)
	}

	c := tx.Appointment.Create().
		SetAppointmentNumber(docnum.Format(docnum.PrefixAppointment, date, daySeq+1)).
		SetPatientID(req.PatientID).
		SetDoctorID(req.DoctorID).
		SetAppointmentDate(date).
		SetSerialNumber(serial).
		SetTotalAmount(doctor.ConsultationFee).
		SetCheckedInAt(time.Now()).
		SetNillableReason(req.Reason).
		SetNillableRoomNumber(room).
		SetNillableCreatedBy(req.CreatedBy)

	appt, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit appointment: %w", err)
	}
	return appt, nil
}

// dayCapacity resolves the doctor's schedule for the date: availability
// overrides win, otherwise the active weekly windows for that weekday apply.
// Returns the summed patient cap and the room of the first window.
func (s *queueService) dayCapacity(ctx context.Context, doctorID uuid.UUID, date time.Time) (int, *string, error) {
	override, err := s.db.DoctorAvailability.Query().
		Where(entavail.DoctorID(doctorID), entavail.Date(date)).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return 0, nil, fmt.Errorf("get availability override: %w", err)
	}
	if err == nil && !override.Available {
		return 0, nil, ErrDateNotBookable
	}

	windows, err := s.db.DoctorSchedule.Query().
		Where(
			entsched.DoctorID(doctorID),
			entsched.Weekday(int(date.Weekday())),
			entsched.Active(true),
		).
		Order(entsched.ByStartTime()).
		All(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("get schedule windows: %w", err)
	}
	if len(windows) == 0 {
		// An explicit "available" override opens an otherwise-off day with
		// a default cap.
		if override != nil && override.Available {
			return 20, nil, nil
		}
		return 0, nil, ErrDateNotBookable
	}

	capacity := 0
	for _, w := range windows {
		capacity += w.MaxPatients
	}
	return capacity, windows[0].RoomNumber, nil
}

func (s *queueService) GetByID(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Get(ctx, apptID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return appt, nil
}

func (s *queueService) List(ctx context.Context, req ListRequest) ([]*repo.Appointment, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Appointment.Query()

	if req.DoctorID != nil {
		q = q.Where(entappt.DoctorID(*req.DoctorID))
	}
	if req.PatientID != nil {
		q = q.Where(entappt.PatientID(*req.PatientID))
	}
	if req.Status != nil {
		q = q.Where(entappt.StatusEQ(entappt.Status(*req.Status)))
	}
	if req.From != nil {
		q = q.Where(entappt.AppointmentDateGTE(dateOnly(*req.From)))
	}
	if req.To != nil {
		q = q.Where(entappt.AppointmentDateLTE(dateOnly(*req.To)))
	}

	appts, err := q.
		Order(entappt.ByAppointmentDate(sql.OrderDesc()), entappt.BySerialNumber()).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

func (s *queueService) CallNext(ctx context.Context, doctorID uuid.UUID, date time.Time, startImmediately bool) (*repo.Appointment, error) {
	date = dateOnly(date)

	target := entappt.StatusCalled
	if startImmediately {
		target = entappt.StatusInProgress
	}

	// Claim loop: the conditional update is the lock. If another call-next
	// won the race for this patient, the next iteration picks the new head
	// of the queue.
	for attempt := 0; attempt < 5; attempt++ {
		next, err := s.db.Appointment.Query().
			Where(
				entappt.DoctorID(doctorID),
				entappt.AppointmentDate(date),
				entappt.StatusEQ(entappt.StatusWaiting),
			).
			Order(entappt.BySerialNumber()).
			First(ctx)
		if err != nil {
			if repo.IsNotFound(err) {
				return nil, ErrNoPatientWaiting
			}
			return nil, fmt.Errorf("find next waiting: %w", err)
		}

		now := time.Now()
		upd := s.db.Appointment.Update().
			Where(
				entappt.ID(next.ID),
				entappt.StatusEQ(entappt.StatusWaiting),
			).
			SetStatus(target).
			SetCalledAt(now)
		if startImmediately {
			upd = upd.SetStartedAt(now)
		}

		n, err := upd.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("claim next patient: %w", err)
		}
		if n == 0 {
			continue
		}

		appt, err := s.db.Appointment.Get(ctx, next.ID)
		if err != nil {
			return nil, fmt.Errorf("reload appointment: %w", err)
		}

		s.broadcastCalled(ctx, appt)
		return appt, nil
	}

	return nil, ErrNoPatientWaiting
}

// broadcastCalled resolves the display names and publishes the call event.
// Delivery is best-effort; the status change is already committed.
func (s *queueService) broadcastCalled(ctx context.Context, appt *repo.Appointment) {
	ev := notify.QueueCalledEvent{
		AppointmentID: appt.ID,
		SerialNumber:  appt.SerialNumber,
		DoctorID:      appt.DoctorID,
		CalledAt:      time.Now(),
	}
	if appt.RoomNumber != nil {
		ev.RoomNumber = *appt.RoomNumber
	}

	if p, err := s.db.Patient.Get(ctx, appt.PatientID); err == nil {
		ev.PatientName = p.FirstName + " " + p.LastName
	}
	if d, err := s.db.Staff.Get(ctx, appt.DoctorID); err == nil {
		ev.DoctorName = d.FirstName + " " + d.LastName
	}

	s.notifier.QueueCalled(ctx, ev)
}

// transition advances one appointment through a guarded conditional update.
// The allowed-from set doubles as the idempotency check: a duplicate request
// finds the row already moved and gets a conflict, never a double advance.
func (s *queueService) transition(ctx context.Context, apptID uuid.UUID, from []entappt.Status, apply func(*repo.AppointmentUpdate) *repo.AppointmentUpdate) error {
	appt, err := s.GetByID(ctx, apptID)
	if err != nil {
		return err
	}
	if IsTerminal(appt.Status) {
		return ErrAlreadyTerminal
	}

	allowed := false
	for _, f := range from {
		if appt.Status == f {
			allowed = true
			break
		}
	}
	if !allowed {
		return ErrInvalidTransition
	}

	upd := s.db.Appointment.Update().
		Where(entappt.ID(apptID), entappt.StatusIn(from...))
	n, err := apply(upd).Save(ctx)
	if err != nil {
		return fmt.Errorf("update appointment status: %w", err)
	}
	if n == 0 {
		return ErrInvalidTransition
	}
	return nil
}

func (s *queueService) Start(ctx context.Context, apptID uuid.UUID) error {
	return s.transition(ctx, apptID,
		[]entappt.Status{entappt.StatusWaiting, entappt.StatusCalled},
		func(u *repo.AppointmentUpdate) *repo.AppointmentUpdate {
			return u.SetStatus(entappt.StatusInProgress).SetStartedAt(time.Now())
		})
}

func (s *queueService) Complete(ctx context.Context, apptID uuid.UUID) error {
	return s.transition(ctx, apptID,
		[]entappt.Status{entappt.StatusInProgress},
		func(u *repo.AppointmentUpdate) *repo.AppointmentUpdate {
			return u.SetStatus(entappt.StatusCompleted).SetCompletedAt(time.Now())
		})
}

func (s *queueService) Cancel(ctx context.Context, apptID uuid.UUID, reason *string) error {
	return s.transition(ctx, apptID,
		[]entappt.Status{entappt.StatusWaiting, entappt.StatusCalled, entappt.StatusInProgress},
		func(u *repo.AppointmentUpdate) *repo.AppointmentUpdate {
			u = u.SetStatus(entappt.StatusCancelled).SetCancelledAt(time.Now())
			if reason != nil {
				u = u.SetCancellationReason(*reason)
			}
			return u
		})
}

func (s *queueService) MarkNoShow(ctx context.Context, apptID uuid.UUID) error {
	return s.transition(ctx, apptID,
		[]entappt.Status{entappt.StatusWaiting, entappt.StatusCalled},
		func(u *repo.AppointmentUpdate) *repo.AppointmentUpdate {
			return u.SetStatus(entappt.StatusNoShow).SetNoShowAt(time.Now())
		})
}

func (s *queueService) DayQueue(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]*repo.Appointment, error) {
	appts, err := s.db.Appointment.Query().
		Where(
			entappt.DoctorID(doctorID),
			entappt.AppointmentDate(dateOnly(date)),
			entappt.StatusNEQ(entappt.StatusCancelled),
		).
		Order(entappt.BySerialNumber()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("day queue: %w", err)
	}
	return appts, nil
}

func (s *queueService) RecordPayment(ctx context.Context, apptID uuid.UUID, amount int64, receivedBy *uuid.UUID) (*repo.Appointment, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive")
	}

	appt, err := s.GetByID(ctx, apptID)
	if err != nil {
		return nil, err
	}
	if appt.Status == entappt.StatusCancelled {
		return nil, ErrAlreadyTerminal
	}
	if appt.AmountPaid+amount > appt.TotalAmount {
		return nil, ErrOverpayment
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	appt, err = tx.Appointment.UpdateOne(appt).
		AddAmountPaid(amount).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	_, err = tx.Income.Create().
		SetSource(entincome.SourceAppointment).
		SetAmount(amount).
		SetDescription("consultation fee " + appt.AppointmentNumber).
		SetReferenceID(appt.ID).
		SetNillableReceivedBy(receivedBy).
		SetReceivedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record income: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit payment: %w", err)
	}
	return appt, nil
}
