package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"gorm.io/gorm"

	"github.com/skillhorizon/marketplace-service/internal/models"
	"github.com/skillhorizon/marketplace-service/internal/repositories"
)

// fakeRepository is an in-memory Repository for service tests. It keeps
// insertion order for classes and payments, matching what the Postgres
// implementation guarantees.
type fakeRepository struct {
	users       []*models.User
	requests    []*models.TeacherRequest
	classes     []*models.Class
	assignments []*models.Assignment
	payments    []*models.Payment

	nextUserID       uint
	nextRequestID    uint
	nextClassID      uint
	nextAssignmentID uint
	nextPaymentID    uint

	failWith error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{}
}

func (f *fakeRepository) User() repositories.UserRepository                     { return &fakeUserRepo{f} }
func (f *fakeRepository) TeacherRequest() repositories.TeacherRequestRepository { return &fakeRequestRepo{f} }
func (f *fakeRepository) Class() repositories.ClassRepository                   { return &fakeClassRepo{f} }
func (f *fakeRepository) Assignment() repositories.AssignmentRepository         { return &fakeAssignmentRepo{f} }
func (f *fakeRepository) Payment() repositories.PaymentRepository               { return &fakePaymentRepo{f} }

func (f *fakeRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(f)
}
func (f *fakeRepository) Ping(ctx context.Context) error { return nil }
func (f *fakeRepository) Close() error                   { return nil }

type fakeUserRepo struct{ f *fakeRepository }

func (r *fakeUserRepo) Create(ctx context.Context, tx *gorm.DB, user *models.User) error {
	if r.f.failWith != nil {
		return r.f.failWith
	}
	r.f.nextUserID++
	user.ID = r.f.nextUserID
	r.f.users = append(r.f.users, user)
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.User, error) {
	for _, u := range r.f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*models.User, error) {
	for _, u := range r.f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) List(ctx context.Context, tx *gorm.DB) ([]*models.User, error) {
	return r.f.users, nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	if r.f.failWith != nil {
		return false, r.f.failWith
	}
	_, err := r.GetByEmail(ctx, tx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (r *fakeUserRepo) UpdateRoleByID(ctx context.Context, tx *gorm.DB, id uint, role models.UserRole) (int64, error) {
	for _, u := range r.f.users {
		if u.ID == id {
			u.Role = role
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeUserRepo) UpdateRoleByEmail(ctx context.Context, tx *gorm.DB, email string, role models.UserRole) (int64, error) {
	var matched int64
	for _, u := range r.f.users {
		if u.Email == email {
			u.Role = role
			matched++
		}
	}
	return matched, nil
}

type fakeRequestRepo struct{ f *fakeRepository }

func (r *fakeRequestRepo) Create(ctx context.Context, tx *gorm.DB, request *models.TeacherRequest) error {
	if r.f.failWith != nil {
		return r.f.failWith
	}
	r.f.nextRequestID++
	request.ID = r.f.nextRequestID
	r.f.requests = append(r.f.requests, request)
	return nil
}

func (r *fakeRequestRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*models.TeacherRequest, error) {
	for i := len(r.f.requests) - 1; i >= 0; i-- {
		if r.f.requests[i].Email == email {
			return r.f.requests[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeRequestRepo) List(ctx context.Context, tx *gorm.DB) ([]*models.TeacherRequest, error) {
	return r.f.requests, nil
}

func (r *fakeRequestRepo) UpdateStatusByEmail(ctx context.Context, tx *gorm.DB, email string, status models.RequestStatus) (int64, error) {
	var matched int64
	for _, req := range r.f.requests {
		if req.Email == email {
			req.Status = status
			matched++
		}
	}
	return matched, nil
}

type fakeClassRepo struct{ f *fakeRepository }

func (r *fakeClassRepo) Create(ctx context.Context, tx *gorm.DB, class *models.Class) error {
	r.f.nextClassID++
	class.ID = r.f.nextClassID
	r.f.classes = append(r.f.classes, class)
	return nil
}

func (r *fakeClassRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Class, error) {
	for _, c := range r.f.classes {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: class %d", repositories.ErrNotFound, id)
}

func (r *fakeClassRepo) GetByOwner(ctx context.Context, tx *gorm.DB, ownerEmail string) ([]*models.Class, error) {
	var out []*models.Class
	for _, c := range r.f.classes {
		if c.OwnerEmail == ownerEmail {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeClassRepo) List(ctx context.Context, tx *gorm.DB) ([]*models.Class, error) {
	return r.f.classes, nil
}

func (r *fakeClassRepo) ListByStatus(ctx context.Context, tx *gorm.DB, status models.RequestStatus) ([]*models.Class, error) {
	var out []*models.Class
	for _, c := range r.f.classes {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeClassRepo) Update(ctx context.Context, tx *gorm.DB, class *models.Class) error {
	for i, c := range r.f.classes {
		if c.ID == class.ID {
			r.f.classes[i] = class
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *fakeClassRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, id uint, status models.RequestStatus) (int64, error) {
	for _, c := range r.f.classes {
		if c.ID == id {
			c.Status = status
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeClassRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) (int64, error) {
	for i, c := range r.f.classes {
		if c.ID == id {
			r.f.classes = append(r.f.classes[:i], r.f.classes[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeAssignmentRepo struct{ f *fakeRepository }

func (r *fakeAssignmentRepo) Create(ctx context.Context, tx *gorm.DB, assignment *models.Assignment) error {
	r.f.nextAssignmentID++
	assignment.ID = r.f.nextAssignmentID
	r.f.assignments = append(r.f.assignments, assignment)
	return nil
}

func (r *fakeAssignmentRepo) ListByTeacherAndClass(ctx context.Context, tx *gorm.DB, teacherEmail string, classID uint) ([]*models.Assignment, error) {
	var out []*models.Assignment
	for _, a := range r.f.assignments {
		if a.TeacherEmail == teacherEmail && a.ClassID == classID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakePaymentRepo struct{ f *fakeRepository }

func (r *fakePaymentRepo) Create(ctx context.Context, tx *gorm.DB, payment *models.Payment) error {
	r.f.nextPaymentID++
	payment.ID = r.f.nextPaymentID
	r.f.payments = append(r.f.payments, payment)
	return nil
}

func (r *fakePaymentRepo) ListByStudent(ctx context.Context, tx *gorm.DB, studentEmail string) ([]*models.Payment, error) {
	var out []*models.Payment
	for _, p := range r.f.payments {
		if p.StudentEmail == studentEmail {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) List(ctx context.Context, tx *gorm.DB) ([]*models.Payment, error) {
	return r.f.payments, nil
}

// fakeIntentClient records the last requested amount and currency.
type fakeIntentClient struct {
	lastAmount   int64
	lastCurrency string
	err          error
}

func (c *fakeIntentClient) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	c.lastAmount = amount
	c.lastCurrency = currency
	return "cs_test_secret", nil
}

func testLogger(t *testing.T) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
