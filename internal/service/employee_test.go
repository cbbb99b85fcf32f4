package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ledgerone/ledgerone-api/internal/domain"
	"github.com/ledgerone/ledgerone-api/internal/repository"
	"github.com/ledgerone/ledgerone-api/internal/service"
)

type fakeEmployeeRepo struct {
	employees map[uint]domain.Employee
	nextID    uint

	lastUpdate domain.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		employees: map[uint]domain.Employee{},
		nextID:    1,
	}
}

func (f *fakeEmployeeRepo) Create(_ context.Context, employee domain.Employee) (domain.Employee, error) {
	employee.ID = f.nextID
	f.nextID++
	f.employees[employee.ID] = employee

	return employee, nil
}

func (f *fakeEmployeeRepo) FindByBusinessID(_ context.Context, businessID uint, activeOnly bool) ([]domain.Employee, error) {
	var out []domain.Employee
	for _, employee := range f.employees {
		if employee.BusinessID != businessID {
			continue
		}
		if activeOnly && !employee.IsActive {
			continue
		}
		out = append(out, employee)
	}

	return out, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, employee domain.Employee) (domain.Employee, error) {
	existing, ok := f.employees[employee.ID]
	if !ok || existing.BusinessID != employee.BusinessID {
		return domain.Employee{}, repository.ErrEmployeeNotFound
	}

	f.lastUpdate = employee
	if employee.Passcode == "" {
		employee.Passcode = existing.Passcode
	}
	f.employees[employee.ID] = employee

	return employee, nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id, businessID uint) error {
	existing, ok := f.employees[id]
	if !ok || existing.BusinessID != businessID {
		return repository.ErrEmployeeNotFound
	}

	delete(f.employees, id)

	return nil
}

func TestEmployeeServiceCreateEmployee(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := service.NewEmployeeService(repo)

	created, err := svc.CreateEmployee(context.Background(), domain.Employee{
		BusinessID:  1,
		Name:        "Dana",
		Permissions: domain.EmployeePermissions{POSAccess: true},
	}, "1234")

	require.NoError(t, err)
	assert.True(t, created.IsActive, "new employees start active")
	assert.NotEqual(t, "1234", created.Passcode, "passcode must be stored hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Passcode), []byte("1234")))
}

func TestEmployeeServiceUpdateEmployee(t *testing.T) {
	setup := func(t *testing.T) (*service.EmployeeService, *fakeEmployeeRepo, domain.Employee) {
		t.Helper()

		repo := newFakeEmployeeRepo()
		svc := service.NewEmployeeService(repo)
		created, err := svc.CreateEmployee(context.Background(), domain.Employee{
			BusinessID: 1,
			Name:       "Dana",
		}, "1234")
		require.NoError(t, err)

		return svc, repo, created
	}

	t.Run("blank passcode keeps the stored hash", func(t *testing.T) {
		svc, repo, created := setup(t)
		originalHash := created.Passcode

		created.Name = "Dana L"
		_, err := svc.UpdateEmployee(context.Background(), created, "")

		require.NoError(t, err)
		assert.Empty(t, repo.lastUpdate.Passcode, "no hash may be sent for a blank passcode")
		assert.Equal(t, originalHash, repo.employees[created.ID].Passcode)
		assert.Equal(t, "Dana L", repo.employees[created.ID].Name)
	})

	t.Run("new passcode is re-hashed", func(t *testing.T) {
		svc, repo, created := setup(t)

		_, err := svc.UpdateEmployee(context.Background(), created, "5678")

		require.NoError(t, err)
		stored := repo.employees[created.ID].Passcode
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("5678")))
	})

	t.Run("unknown employee", func(t *testing.T) {
		svc, _, created := setup(t)
		created.ID = 99

		_, err := svc.UpdateEmployee(context.Background(), created, "")

		assert.ErrorIs(t, err, service.ErrEmployeeNotFound)
	})
}

func TestEmployeeServiceDeleteEmployee(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := service.NewEmployeeService(repo)
	created, err := svc.CreateEmployee(context.Background(), domain.Employee{BusinessID: 1, Name: "Dana"}, "1234")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEmployee(context.Background(), created.ID, 1))
	assert.ErrorIs(t, svc.DeleteEmployee(context.Background(), created.ID, 1), service.ErrEmployeeNotFound)
}
