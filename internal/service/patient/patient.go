package patient

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/niramoy/niramoy_backend/internal/repo"
	entpatient "github.com/niramoy/niramoy_backend/internal/repo/patient"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	FirstName        string
	LastName         string
	Phone            string
	Email            *string
	DateOfBirth      *time.Time
	Gender           *string
	BloodGroup       *string
	Address          *string
	EmergencyContact *string
	MedicalNotes     *string
}

type UpdateRequest struct {
	FirstName        *string
	LastName         *string
	Phone            *string
	Email            *string
	DateOfBirth      *time.Time
	Gender           *string
	BloodGroup       *string
	Address          *string
	EmergencyContact *string
	MedicalNotes     *string
}

type ListRequest struct {
	Search  *string // matches name or phone
	Page    int
	PerPage int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Patient, error)
	GetByID(ctx context.Context, patientID uuid.UUID) (*repo.Patient, error)
	Update(ctx context.Context, patientID uuid.UUID, req UpdateRequest) (*repo.Patient, error)
	List(ctx context.Context, req ListRequest) ([]*repo.Patient, error)
	Delete(ctx context.Context, patientID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type patientService struct {
	db     *repo.Client
	region string // default phone region, e.g. "BD"
}

func New(db *repo.Client, region string) Service {
	return &patientService{db: db, region: region}
}

// normalizePhone validates against the hospital's default region and
// canonicalizes to E.164 so lookups never miss on formatting.
func (s *patientService) normalizePhone(raw string) (string, error) {
	num, err := phonenumbers.Parse(raw, s.region)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPhone, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

func (s *patientService) Create(ctx context.Context, req CreateRequest) (*repo.Patient, error) {
	phone, err := s.normalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	var emergency *string
	if req.EmergencyContact != nil {
		e, eErr := s.normalizePhone(*req.EmergencyContact)
		if eErr != nil {
			return nil, eErr
		}
		emergency = &e
	}

	p, err := s.db.Patient.Create().
		SetFirstName(req.FirstName).
		SetLastName(req.LastName).
		SetPhone(phone).
		SetNillableEmail(req.Email).
		SetNillableDateOfBirth(req.DateOfBirth).
		SetNillableGender((*entpatient.Gender)(req.Gender)).
		SetNillableBloodGroup(req.BloodGroup).
		SetNillableAddress(req.Address).
		SetNillableEmergencyContact(emergency).
		SetNillableMedicalNotes(req.MedicalNotes).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}
	return p, nil
}

func (s *patientService) GetByID(ctx context.Context, patientID uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}

func (s *patientService) Update(ctx context.Context, patientID uuid.UUID, req UpdateRequest) (*repo.Patient, error) {
	p, err := s.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	upd := s.db.Patient.UpdateOne(p)

	if req.Phone != nil {
		phone, pErr := s.normalizePhone(*req.Phone)
		if pErr != nil {
			return nil, pErr
		}
		upd = upd.SetPhone(phone)
	}
	if req.EmergencyContact != nil {
		e, eErr := s.normalizePhone(*req.EmergencyContact)
		if eErr != nil {
			return nil, eErr
		}
		upd = upd.SetEmergencyContact(e)
	}
	if req.FirstName != nil {
		upd = upd.SetFirstName(*req.FirstName)
	}
	if req.LastName != nil {
		upd = upd.SetLastName(*req.LastName)
	}
	if req.Email != nil {
		upd = upd.SetEmail(*req.Email)
	}
	if req.DateOfBirth != nil {
		upd = upd.SetDateOfBirth(*req.DateOfBirth)
	}
	if req.Gender != nil {
		upd = upd.SetGender(entpatient.Gender(*req.Gender))
	}
	if req.BloodGroup != nil {
		upd = upd.SetBloodGroup(*req.BloodGroup)
	}
	if req.Address != nil {
		upd = upd.SetAddress(*req.Address)
	}
	if req.MedicalNotes != nil {
		upd = upd.SetMedicalNotes(*req.MedicalNotes)
	}

	p, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}
	return p, nil
}

func (s *patientService) List(ctx context.Context, req ListRequest) ([]*repo.Patient, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Patient.Query().
		Where(entpatient.DeletedAtIsNil())

	if req.Search != nil && *req.Search != "" {
		q = q.Where(entpatient.Or(
			entpatient.FirstNameContainsFold(*req.Search),
			entpatient.LastNameContainsFold(*req.Search),
			entpatient.PhoneContains(*req.Search),
		))
	}

	patients, err := q.
		Order(entpatient.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

func (s *patientService) Delete(ctx context.Context, patientID uuid.UUID) error {
	p, err := s.GetByID(ctx, patientID)
	if err != nil {
		return err
	}
	return s.db.Patient.UpdateOne(p).
		SetDeletedAt(time.Now()).
		Exec(ctx)
}
