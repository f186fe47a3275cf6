// Package display builds the waiting-room board: one row per active doctor
// with the serial currently being served and the number still waiting.
package display

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/niramoy/niramoy_backend/internal/repo"
	entappt "github.com/niramoy/niramoy_backend/internal/repo/appointment"
	entstaff "github.com/niramoy/niramoy_backend/internal/repo/staff"
)

// NowServingKey is the Redis key holding the most recent queue.called event
// for a doctor. The queue worker writes it; the board reads it.
func NowServingKey(doctorID uuid.UUID) string {
	return "display:now_serving:" + doctorID.String()
}

// NowServing is the cached payload behind NowServingKey.
type NowServing struct {
	SerialNumber int       `json:"serial_number"`
	PatientName  string    `json:"patient_name"`
	RoomNumber   string    `json:"room_number"`
	CalledAt     time.Time `json:"called_at"`
}

type BoardRow struct {
	DoctorID       uuid.UUID `json:"doctor_id"`
	DoctorName     string    `json:"doctor_name"`
	Specialization string    `json:"specialization,omitempty"`
	RoomNumber     string    `json:"room_number,omitempty"`
	NowServing     int       `json:"now_serving"`
	PatientName    string    `json:"patient_name,omitempty"`
	Waiting        int       `json:"waiting"`
}

type Board struct {
	Date time.Time  `json:"date"`
	Rows []BoardRow `json:"rows"`
}

type Service interface {
	Board(ctx context.Context) (*Board, error)
}

type displayService struct {
	db  *repo.Client
	rdb *redis.Client
}

func New(db *repo.Client, rdb *redis.Client) Service {
	return &displayService{db: db, rdb: rdb}
}

func (s *displayService) Board(ctx context.Context) (*Board, error) {
	today := dateOnly(time.Now())

	doctors, err := s.db.Staff.Query().
		Where(
			entstaff.RoleEQ(entstaff.RoleDoctor),
			entstaff.StatusEQ(entstaff.StatusACTIVE),
			entstaff.DeletedAtIsNil(),
		).
		Order(entstaff.ByLastName(), entstaff.ByFirstName()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}

	board := &Board{Date: today, Rows: make([]BoardRow, 0, len(doctors))}

	for _, doc := range doctors {
		row := BoardRow{
			DoctorID:   doc.ID,
			DoctorName: doc.FirstName + " " + doc.LastName,
		}
		if doc.Specialization != nil {
			row.Specialization = *doc.Specialization
		}

		waiting, err := s.db.Appointment.Query().
			Where(
				entappt.DoctorID(doc.ID),
				entappt.AppointmentDate(today),
				entappt.StatusEQ(entappt.StatusWaiting),
			).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count waiting: %w", err)
		}
		row.Waiting = waiting

		// Only doctors with patients today make the board.
		if waiting == 0 {
			inPlay, err := s.db.Appointment.Query().
				Where(
					entappt.DoctorID(doc.ID),
					entappt.AppointmentDate(today),
					entappt.StatusIn(entappt.StatusCalled, entappt.StatusInProgress),
				).
				Exist(ctx)
			if err != nil {
				return nil, fmt.Errorf("check in-play: %w", err)
			}
			if !inPlay {
				continue
			}
		}

		if ns, ok := s.cachedNowServing(ctx, doc.ID); ok {
			row.NowServing = ns.SerialNumber
			row.PatientName = ns.PatientName
			row.RoomNumber = ns.RoomNumber
		} else if cur := s.currentFromDB(ctx, doc.ID, today); cur != nil {
			row.NowServing = cur.SerialNumber
			if cur.RoomNumber != nil {
				row.RoomNumber = *cur.RoomNumber
			}
		}

		board.Rows = append(board.Rows, row)
	}

	return board, nil
}

// cachedNowServing reads the worker-maintained Redis entry. A miss is normal
// (no one called yet, or the key expired at end of day).
func (s *displayService) cachedNowServing(ctx context.Context, doctorID uuid.UUID) (*NowServing, bool) {
	raw, err := s.rdb.Get(ctx, NowServingKey(doctorID)).Bytes()
	if err != nil {
		return nil, false
	}
	var ns NowServing
	if err := json.Unmarshal(raw, &ns); err != nil {
		return nil, false
	}
	return &ns, true
}

func (s *displayService) currentFromDB(ctx context.Context, doctorID uuid.UUID, date time.Time) *repo.Appointment {
	appt, err := s.db.Appointment.Query().
		Where(
			entappt.DoctorID(doctorID),
			entappt.AppointmentDate(date),
			entappt.StatusIn(entappt.StatusCalled, entappt.StatusInProgress),
		).
		Order(entappt.BySerialNumber()).
		First(ctx)
	if err != nil {
		return nil
	}
	return appt
}

// dateOnly normalizes to midnight UTC of the value's calendar day, the form
// every appointment_date is stored in.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
