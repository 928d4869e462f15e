package user_test

import (
	"context"
	"testing"

	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/user"
	usererrors "go-payroll/internal/user/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	createFn  func(ctx context.Context, u *user.User) error
	findAllFn func(ctx context.Context) ([]user.User, error)
}

func (f *fakeUserRepository) Create(ctx context.Context, u *user.User) error {
	return f.createFn(ctx, u)
}
func (f *fakeUserRepository) FindAll(ctx context.Context) ([]user.User, error) {
	return f.findAllFn(ctx)
}
func (f *fakeUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, gorm.ErrRecordNotFound
}

type fakeEmployeeRepository struct {
	findByIDFn func(ctx context.Context, id string) (*employee.Employee, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *gorm.DB) employee.Repository { return f }
func (f *fakeEmployeeRepository) Create(ctx context.Context, empl *employee.Employee) error {
	return nil
}
func (f *fakeEmployeeRepository) FindAll(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeEmployeeRepository) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepository) FindFirst(ctx context.Context) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepository) Update(ctx context.Context, empl *employee.Employee) error {
	return nil
}

func TestUserService_Create_Admin(t *testing.T) {
	var created *user.User
	repo := &fakeUserRepository{
		createFn: func(ctx context.Context, u *user.User) error {
			created = u
			return nil
		},
	}

	svc := user.NewService(repo, &fakeEmployeeRepository{})
	resp, err := svc.Create(context.Background(), user.CreateUserRequest{
		Name:     "Priya Sharma",
		Email:    "priya@acme.example",
		Password: "s3cret-pass",
		Role:     "admin",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Priya Sharma", resp.Name)
	assert.Equal(t, "admin", resp.Role)
	assert.Empty(t, resp.EmployeeID)
	assert.True(t, resp.IsActive)

	// The stored password must be a verifiable bcrypt hash, never plaintext.
	assert.NotEqual(t, "s3cret-pass", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("s3cret-pass")))
}

func TestUserService_Create_EmployeeRequiresLink(t *testing.T) {
	repo := &fakeUserRepository{
		createFn: func(ctx context.Context, u *user.User) error {
			t.Fatal("create must not run without an employee link")
			return nil
		},
	}

	svc := user.NewService(repo, &fakeEmployeeRepository{})
	_, err := svc.Create(context.Background(), user.CreateUserRequest{
		Name:     "Raj Kumar",
		Email:    "raj@acme.example",
		Password: "s3cret-pass",
		Role:     "employee",
	})

	assert.ErrorIs(t, err, usererrors.ErrEmployeeLinkRequired)
}

func TestUserService_Create_EmployeeLinked(t *testing.T) {
	employeeID := uuid.New()
	linkID := employeeID.String()

	var created *user.User
	repo := &fakeUserRepository{
		createFn: func(ctx context.Context, u *user.User) error {
			created = u
			return nil
		},
	}
	employeeRepo := &fakeEmployeeRepository{
		findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
			assert.Equal(t, employeeID.String(), id)
			return &employee.Employee{ID: employeeID, Name: "Raj Kumar"}, nil
		},
	}

	svc := user.NewService(repo, employeeRepo)
	resp, err := svc.Create(context.Background(), user.CreateUserRequest{
		Name:       "Raj Kumar",
		Email:      "raj@acme.example",
		Password:   "s3cret-pass",
		Role:       "employee",
		EmployeeID: &linkID,
	})

	assert.NoError(t, err)
	assert.Equal(t, employeeID.String(), resp.EmployeeID)
	assert.NotNil(t, created.EmployeeID)
	assert.Equal(t, employeeID, *created.EmployeeID)
}

func TestUserService_Create_EmployeeNotFound(t *testing.T) {
	linkID := uuid.New().String()
	employeeRepo := &fakeEmployeeRepository{
		findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := user.NewService(&fakeUserRepository{}, employeeRepo)
	_, err := svc.Create(context.Background(), user.CreateUserRequest{
		Name:       "Raj Kumar",
		Email:      "raj@acme.example",
		Password:   "s3cret-pass",
		Role:       "employee",
		EmployeeID: &linkID,
	})

	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestUserService_Create_DuplicateMapping(t *testing.T) {
	cases := []struct {
		name       string
		constraint string
		want       error
	}{
		{"duplicate email", "uq_user_email", usererrors.ErrEmailAlreadyRegistered},
		{"employee already linked", "uq_user_employee", usererrors.ErrEmployeeAlreadyLinked},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeUserRepository{
				createFn: func(ctx context.Context, u *user.User) error {
					return &pgconn.PgError{Code: "23505", ConstraintName: tc.constraint}
				},
			}

			svc := user.NewService(repo, &fakeEmployeeRepository{})
			_, err := svc.Create(context.Background(), user.CreateUserRequest{
				Name:     "Priya Sharma",
				Email:    "priya@acme.example",
				Password: "s3cret-pass",
				Role:     "admin",
			})

			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestUserService_GetAll(t *testing.T) {
	employeeID := uuid.New()
	repo := &fakeUserRepository{
		findAllFn: func(ctx context.Context) ([]user.User, error) {
			return []user.User{
				{ID: uuid.New(), Name: "Priya Sharma", Role: "admin", IsActive: true},
				{ID: uuid.New(), Name: "Raj Kumar", Role: "employee", EmployeeID: &employeeID, IsActive: true},
			}, nil
		},
	}

	svc := user.NewService(repo, &fakeEmployeeRepository{})
	users, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Empty(t, users[0].EmployeeID)
	assert.Equal(t, employeeID.String(), users[1].EmployeeID)
}
