package staff

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/niramoy/niramoy_backend/internal/repo"
	entstaff "github.com/niramoy/niramoy_backend/internal/repo/staff"
	"github.com/niramoy/niramoy_backend/pkg/authorize"
	"github.com/niramoy/niramoy_backend/pkg/util/password"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	FirstName string
	LastName  string
	Phone     string
	Email     *string
	Role      string

	// Password is the initial password. When empty a random one is
	// generated and returned in CreateResult for out-of-band delivery.
	Password string

	// Doctors only
	Specialization  *string
	LicenseNumber   *string
	ConsultationFee int64
}

type CreateResult struct {
	Staff *repo.Staff

	// TempPassword is set only when the password was generated.
	TempPassword string
}

type UpdateRequest struct {
	FirstName       *string
	LastName        *string
	Email           *string
	Specialization  *string
	LicenseNumber   *string
	ConsultationFee *int64
}

type ListRequest struct {
	Role    *string
	Status  *string
	Search  string
	Page    int
	PerPage int
}

type ListResult struct {
	Staff []*repo.Staff
	Total int
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*CreateResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*repo.Staff, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Staff, error)
	List(ctx context.Context, req ListRequest) (*ListResult, error)
	ListDoctors(ctx context.Context) ([]*repo.Staff, error)
	ChangeRole(ctx context.Context, actorID, id uuid.UUID, newRole string) (*repo.Staff, error)
	SetStatus(ctx context.Context, actorID, id uuid.UUID, suspend bool) (*repo.Staff, error)
	ResetPassword(ctx context.Context, id uuid.UUID) (string, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type staffService struct {
	db     *repo.Client
	authz  authorize.IAuthorization
	region string
}

func New(db *repo.Client, authz authorize.IAuthorization, region string) Service {
	return &staffService{db: db, authz: authz, region: region}
}

func (s *staffService) Create(ctx context.Context, req CreateRequest) (*CreateResult, error) {
	role, err := parseRole(req.Role)
	if err != nil {
		return nil, err
	}

	phone, err := s.normalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	exists, err := s.db.Staff.Query().
		Where(entstaff.Phone(phone), entstaff.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check phone: %w", err)
	}
	if exists {
		return nil, ErrPhoneAlreadyExists
	}

	if req.Email != nil && *req.Email != "" {
		emailExists, err := s.db.Staff.Query().
			Where(entstaff.EmailEQ(*req.Email), entstaff.DeletedAtIsNil()).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if emailExists {
			return nil, ErrEmailAlreadyExists
		}
	}

	var tempPassword string
	pass := req.Password
	if pass == "" {
		tempPassword = password.Generate(12)
		pass = tempPassword
	} else if len(pass) < 8 {
		return nil, ErrPasswordTooShort
	}

	hash, err := password.Hash(pass)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	q := s.db.Staff.Create().
		SetFirstName(strings.TrimSpace(req.FirstName)).
		SetLastName(strings.TrimSpace(req.LastName)).
		SetPhone(phone).
		SetPasswordHash(hash).
		SetMustChangePassword(true).
		SetRole(role).
		SetConsultationFee(req.ConsultationFee)

	if req.Email != nil && *req.Email != "" {
		q = q.SetEmail(*req.Email)
	}
	if req.Specialization != nil {
		q = q.SetSpecialization(*req.Specialization)
	}
	if req.LicenseNumber != nil {
		q = q.SetLicenseNumber(*req.LicenseNumber)
	}

	st, err := q.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrPhoneAlreadyExists
		}
		return nil, fmt.Errorf("create staff: %w", err)
	}

	if err := authorize.AssignStaffRole(ctx, s.authz, st.ID.String(), req.Role); err != nil {
		// The account exists but has no permissions until the grant succeeds.
		slog.Error("failed to assign staff role", "staff_id", st.ID, "role", req.Role, "error", err)
		return nil, fmt.Errorf("assign role: %w", err)
	}

	return &CreateResult{Staff: st, TempPassword: tempPassword}, nil
}

func (s *staffService) GetByID(ctx context.Context, id uuid.UUID) (*repo.Staff, error) {
	st, err := s.db.Staff.Query().
		Where(entstaff.ID(id), entstaff.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get staff: %w", err)
	}
	return st, nil
}

func (s *staffService) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Staff, error) {
	st, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := s.db.Staff.UpdateOne(st)
	if req.FirstName != nil {
		upd = upd.SetFirstName(*req.FirstName)
	}
	if req.LastName != nil {
		upd = upd.SetLastName(*req.LastName)
	}
	if req.Email != nil {
		if *req.Email == "" {
			upd = upd.ClearEmail()
		} else {
			upd = upd.SetEmail(*req.Email)
		}
	}
	if req.Specialization != nil {
		upd = upd.SetSpecialization(*req.Specialization)
	}
	if req.LicenseNumber != nil {
		upd = upd.SetLicenseNumber(*req.LicenseNumber)
	}
	if req.ConsultationFee != nil {
		upd = upd.SetConsultationFee(*req.ConsultationFee)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("update staff: %w", err)
	}
	return updated, nil
}

func (s *staffService) List(ctx context.Context, req ListRequest) (*ListResult, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	perPage := req.PerPage
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	q := s.db.Staff.Query().Where(entstaff.DeletedAtIsNil())

	if req.Role != nil {
		role, err := parseRole(*req.Role)
		if err != nil {
			return nil, err
		}
		q = q.Where(entstaff.RoleEQ(role))
	}
	if req.Status != nil {
		q = q.Where(entstaff.StatusEQ(entstaff.Status(*req.Status)))
	}
	if search := strings.TrimSpace(req.Search); search != "" {
		q = q.Where(entstaff.Or(
			entstaff.FirstNameContainsFold(search),
			entstaff.LastNameContainsFold(search),
			entstaff.PhoneContains(search),
		))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count staff: %w", err)
	}

	members, err := q.
		Order(entstaff.ByLastName(), entstaff.ByFirstName()).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}

	return &ListResult{Staff: members, Total: total}, nil
}

func (s *staffService) ListDoctors(ctx context.Context) ([]*repo.Staff, error) {
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
	return doctors, nil
}

func (s *staffService) ChangeRole(ctx context.Context, actorID, id uuid.UUID, newRole string) (*repo.Staff, error) {
	if actorID == id {
		return nil, ErrSelfDemotion
	}
	role, err := parseRole(newRole)
	if err != nil {
		return nil, err
	}

	st, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldRole := string(st.Role)

	updated, err := s.db.Staff.UpdateOne(st).SetRole(role).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}

	if err := authorize.RemoveStaffRole(ctx, s.authz, id.String(), oldRole); err != nil {
		slog.Warn("failed to revoke old staff role", "staff_id", id, "role", oldRole, "error", err)
	}
	if err := authorize.AssignStaffRole(ctx, s.authz, id.String(), newRole); err != nil {
		return nil, fmt.Errorf("assign role: %w", err)
	}

	return updated, nil
}

func (s *staffService) SetStatus(ctx context.Context, actorID, id uuid.UUID, suspend bool) (*repo.Staff, error) {
	if actorID == id {
		return nil, ErrSelfDemotion
	}

	st, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	status := entstaff.StatusACTIVE
	if suspend {
		status = entstaff.StatusSUSPENDED
	}

	updated, err := s.db.Staff.UpdateOne(st).SetStatus(status).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	return updated, nil
}

func (s *staffService) ResetPassword(ctx context.Context, id uuid.UUID) (string, error) {
	st, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	temp := password.Generate(12)
	hash, err := password.Hash(temp)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	_, err = s.db.Staff.UpdateOne(st).
		SetPasswordHash(hash).
		SetMustChangePassword(true).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("reset password: %w", err)
	}
	return temp, nil
}

func (s *staffService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if actorID == id {
		return ErrSelfDemotion
	}

	st, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	_, err = s.db.Staff.UpdateOne(st).
		SetDeletedAt(time.Now()).
		SetStatus(entstaff.StatusSUSPENDED).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("delete staff: %w", err)
	}

	if err := authorize.RemoveStaffRole(ctx, s.authz, id.String(), string(st.Role)); err != nil {
		slog.Warn("failed to revoke staff role", "staff_id", id, "role", st.Role, "error", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func parseRole(raw string) (entstaff.Role, error) {
	role := entstaff.Role(raw)
	if err := entstaff.RoleValidator(role); err != nil {
		return "", ErrInvalidRole
	}
	if _, ok := authorize.StaffRoleToRBACRole[raw]; !ok {
		return "", ErrInvalidRole
	}
	return role, nil
}

func (s *staffService) normalizePhone(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidPhone
	}
	num, err := phonenumbers.Parse(raw, s.region)
	if err != nil {
		return "", ErrInvalidPhone
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
