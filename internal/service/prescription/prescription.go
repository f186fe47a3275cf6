package prescription

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/niramoy/niramoy_backend/internal/repo"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
	entrx "github.com/niramoy/niramoy_backend/internal/repo/prescription"
	entrxmed "github.com/niramoy/niramoy_backend/internal/repo/prescriptionmedicine"
	"github.com/niramoy/niramoy_backend/pkg/util/docnum"
)

const numberRetries = 3

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type MedicineLine struct {
	Name         string
	Dosage       string
	Frequency    string
	Duration     string
	Instructions *string
}

type CreateRequest struct {
	PatientID     uuid.UUID
	DoctorID      uuid.UUID
	AppointmentID *uuid.UUID
	Diagnosis     string
	Advice        *string
	FollowUpDate  *time.Time
	Medicines     []MedicineLine
}

// Detail bundles a prescription with its medicine lines.
type Detail struct {
	Prescription *repo.Prescription           `json:"prescription"`
	Medicines    []*repo.PrescriptionMedicine `json:"medicines"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Detail, error)
	GetByID(ctx context.Context, rxID uuid.UUID) (*Detail, error)
	GetByNumber(ctx context.Context, number string) (*Detail, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, page, perPage int) ([]*repo.Prescription, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID, page, perPage int) ([]*repo.Prescription, error)

	// MarkPrinted stamps printed_at on first print; later prints keep the
	// original timestamp.
	MarkPrinted(ctx context.Context, rxID uuid.UUID) (*repo.Prescription, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type prescriptionService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &prescriptionService{db: db}
}

func (s *prescriptionService) Create(ctx context.Context, req CreateRequest) (*Detail, error) {
	if len(req.Medicines) == 0 {
		return nil, ErrNoMedicines
	}

	// The unique prescription_number catches two same-day writers that read
	// the same count; the loser retries with the committed count.
	for attempt := 0; attempt < numberRetries; attempt++ {
		d, err := s.tryCreate(ctx, req)
		if err == nil {
			return d, nil
		}
		if !repo.IsConstraintError(err) {
			return nil, err
		}
	}
	return nil, ErrNumberExhausted
}

func (s *prescriptionService) tryCreate(ctx context.Context, req CreateRequest) (*Detail, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	seq, err := tx.Prescription.Query().
		Where(entrx.CreatedAtGTE(dayStart)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count day prescriptions: %w", err)
	}

	rx, err := tx.Prescription.Create().
		SetPrescriptionNumber(docnum.Format(docnum.PrefixPrescription, now, seq+1)).
		SetPatientID(req.PatientID).
		SetDoctorID(req.DoctorID).
		SetNillableAppointmentID(req.AppointmentID).
		SetDiagnosis(req.Diagnosis).
		SetNillableAdvice(req.Advice).
		SetNillableFollowUpDate(req.FollowUpDate).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create prescription: %w", err)
	}

	meds := make([]*repo.PrescriptionMedicine, 0, len(req.Medicines))
	for _, m := range req.Medicines {
		med, mErr := tx.PrescriptionMedicine.Create().
			SetPrescriptionID(rx.ID).
			SetName(m.Name).
			SetDosage(m.Dosage).
			SetFrequency(m.Frequency).
			SetDuration(m.Duration).
			SetNillableInstructions(m.Instructions).
			Save(ctx)
		if mErr != nil {
			err = fmt.Errorf("create medicine line: %w", mErr)
			return nil, err
		}
		meds = append(meds, med)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit prescription: %w", err)
	}
	return &Detail{Prescription: rx, Medicines: meds}, nil
}

func (s *prescriptionService) GetByID(ctx context.Context, rxID uuid.UUID) (*Detail, error) {
	rx, err := s.db.Prescription.Get(ctx, rxID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get prescription: %w", err)
	}
	return s.withMedicines(ctx, rx)
}

func (s *prescriptionService) GetByNumber(ctx context.Context, number string) (*Detail, error) {
	rx, err := s.db.Prescription.Query().
		Where(entrx.PrescriptionNumber(number)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get prescription by number: %w", err)
	}
	return s.withMedicines(ctx, rx)
}

func (s *prescriptionService) withMedicines(ctx context.Context, rx *repo.Prescription) (*Detail, error) {
	meds, err := s.db.PrescriptionMedicine.Query().
		Where(entrxmed.PrescriptionID(rx.ID)).
		Order(entrxmed.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list medicine lines: %w", err)
	}
	return &Detail{Prescription: rx, Medicines: meds}, nil
}

func (s *prescriptionService) MarkPrinted(ctx context.Context, rxID uuid.UUID) (*repo.Prescription, error) {
	rx, err := s.db.Prescription.Get(ctx, rxID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get prescription: %w", err)
	}
	if rx.PrintedAt != nil {
		return rx, nil
	}

	updated, err := s.db.Prescription.UpdateOne(rx).
		SetPrintedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark prescription printed: %w", err)
	}
	return updated, nil
}

func (s *prescriptionService) ListByPatient(ctx context.Context, patientID uuid.UUID, page, perPage int) ([]*repo.Prescription, error) {
	return s.list(ctx, entrx.PatientID(patientID), page, perPage)
}

func (s *prescriptionService) ListByDoctor(ctx context.Context, doctorID uuid.UUID, page, perPage int) ([]*repo.Prescription, error) {
	return s.list(ctx, entrx.DoctorID(doctorID), page, perPage)
}

func (s *prescriptionService) list(ctx context.Context, pred predicate.Prescription, page, perPage int) ([]*repo.Prescription, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	rxs, err := s.db.Prescription.Query().
		Where(pred).
		Order(entrx.ByCreatedAt(sql.OrderDesc())).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list prescriptions: %w", err)
	}
	return rxs, nil
}
