package queue

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/niramoy/niramoy_backend/internal/notify"
	"github.com/niramoy/niramoy_backend/internal/repo"
	entappt "github.com/niramoy/niramoy_backend/internal/repo/appointment"
	"github.com/niramoy/niramoy_backend/internal/repo/enttest"
	entstaff "github.com/niramoy/niramoy_backend/internal/repo/staff"
)

type queueFixture struct {
	client    *repo.Client
	svc       Service
	doctorID  uuid.UUID
	patientID uuid.UUID
	date      time.Time
}

// newQueueFixture opens an in-memory database with one active doctor, one
// patient, and a schedule window covering the booking date.
func newQueueFixture(t *testing.T) *queueFixture {
	t.Helper()

	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })

	ctx := context.Background()

	doctor := client.Staff.Create().
		SetFirstName("Ayesha").
		SetLastName("Rahman").
		SetPhone("+8801712345678").
		SetPasswordHash("irrelevant").
		SetRole(entstaff.RoleDoctor).
		SetConsultationFee(500).
		SaveX(ctx)

	patient := client.Patient.Create().
		SetFirstName("Abdul").
		SetLastName("Karim").
		SetPhone("+8801898765432").
		SaveX(ctx)

	date := dateOnly(time.Now().AddDate(0, 0, 1))

	client.DoctorSchedule.Create().
		SetDoctorID(doctor.ID).
		SetWeekday(int(date.Weekday())).
		SetStartTime("09:00").
		SetEndTime("13:00").
		SetMaxPatients(30).
		SaveX(ctx)

	return &queueFixture{
		client:    client,
		svc:       New(client, notify.NewNop()),
		doctorID:  doctor.ID,
		patientID: patient.ID,
		date:      date,
	}
}

func (f *queueFixture) book(t *testing.T) *repo.Appointment {
	t.Helper()
	appt, err := f.svc.Create(context.Background(), CreateRequest{
		PatientID: f.patientID,
		DoctorID:  f.doctorID,
		Date:      f.date,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return appt
}

func TestCreateAssignsSerialsOneToN(t *testing.T) {
	f := newQueueFixture(t)

	const n = 5
	seen := make(map[int]bool, n)
	for i := 0; i < n; i++ {
		appt := f.book(t)
		if seen[appt.SerialNumber] {
			t.Fatalf("serial %d issued twice", appt.SerialNumber)
		}
		seen[appt.SerialNumber] = true
	}

	for s := 1; s <= n; s++ {
		if !seen[s] {
			t.Errorf("serial %d missing, issued set must be exactly 1..%d", s, n)
		}
	}
}

func TestSerialsAreNeverReusedAfterCancellation(t *testing.T) {
	f := newQueueFixture(t)
	ctx := context.Background()

	first := f.book(t)
	f.book(t)

	if err := f.svc.Cancel(ctx, first.ID, nil); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	third := f.book(t)
	if third.SerialNumber != 3 {
		t.Errorf("serial after cancellation = %d, want 3 (cancelled serial 1 must not be reissued)", third.SerialNumber)
	}
}

func TestCallNextReturnsLowestWaitingSerialSkippingCancelled(t *testing.T) {
	f := newQueueFixture(t)
	ctx := context.Background()

	a1 := f.book(t)
	f.book(t)
	f.book(t)

	if err := f.svc.Cancel(ctx, a1.ID, nil); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	called, err := f.svc.CallNext(ctx, f.doctorID, f.date, false)
	if err != nil {
		t.Fatalf("CallNext: %v", err)
	}
	if called.SerialNumber != 2 {
		t.Errorf("CallNext serial = %d, want 2 (serial 1 is cancelled)", called.SerialNumber)
	}
	if called.Status != entappt.StatusCalled {
		t.Errorf("CallNext status = %s, want called", called.Status)
	}
	if called.CalledAt == nil {
		t.Error("CallNext did not stamp called_at")
	}

	next, err := f.svc.CallNext(ctx, f.doctorID, f.date, false)
	if err != nil {
		t.Fatalf("second CallNext: %v", err)
	}
	if next.SerialNumber != 3 {
		t.Errorf("second CallNext serial = %d, want 3 (serial 2 already called)", next.SerialNumber)
	}

	if _, err := f.svc.CallNext(ctx, f.doctorID, f.date, false); !errors.Is(err, ErrNoPatientWaiting) {
		t.Errorf("CallNext on drained queue = %v, want ErrNoPatientWaiting", err)
	}
}

func TestCallNextStartImmediatelySetsInProgress(t *testing.T) {
	f := newQueueFixture(t)

	f.book(t)

	appt, err := f.svc.CallNext(context.Background(), f.doctorID, f.date, true)
	if err != nil {
		t.Fatalf("CallNext: %v", err)
	}
	if appt.Status != entappt.StatusInProgress {
		t.Errorf("status = %s, want in_progress", appt.Status)
	}
	if appt.StartedAt == nil {
		t.Error("started_at not stamped")
	}
}

func TestRecordPaymentRejectsOverpayment(t *testing.T) {
	f := newQueueFixture(t)
	ctx := context.Background()

	appt := f.book(t)
	if appt.TotalAmount != 500 {
		t.Fatalf("total_amount = %d, want the doctor's fee 500", appt.TotalAmount)
	}

	paid, err := f.svc.RecordPayment(ctx, appt.ID, 300, nil)
	if err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	if paid.AmountPaid != 300 {
		t.Errorf("amount_paid = %d, want 300", paid.AmountPaid)
	}

	if _, err := f.svc.RecordPayment(ctx, appt.ID, 300, nil); !errors.Is(err, ErrOverpayment) {
		t.Errorf("RecordPayment past the fee = %v, want ErrOverpayment", err)
	}

	// Settling the exact remainder is fine.
	settled, err := f.svc.RecordPayment(ctx, appt.ID, 200, nil)
	if err != nil {
		t.Fatalf("RecordPayment remainder: %v", err)
	}
	if settled.AmountPaid != settled.TotalAmount {
		t.Errorf("amount_paid = %d, want %d", settled.AmountPaid, settled.TotalAmount)
	}
}

func TestMarkNoShowStampsTimestamp(t *testing.T) {
	f := newQueueFixture(t)
	ctx := context.Background()

	appt := f.book(t)
	if err := f.svc.MarkNoShow(ctx, appt.ID); err != nil {
		t.Fatalf("MarkNoShow: %v", err)
	}

	got, err := f.svc.GetByID(ctx, appt.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != entappt.StatusNoShow {
		t.Errorf("status = %s, want no_show", got.Status)
	}
	if got.NoShowAt == nil {
		t.Error("no_show_at not stamped")
	}
}
