package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/ledgerone/ledgerone-api/internal/domain"
	"github.com/ledgerone/ledgerone-api/internal/repository"
)

var ErrEmployeeNotFound = repository.ErrEmployeeNotFound

type EmployeeRepository interface {
	Create(ctx context.Context, employee domain.Employee) (domain.Employee, error)
	FindByBusinessID(ctx context.Context, businessID uint, activeOnly bool) ([]domain.Employee, error)
	Update(ctx context.Context, employee domain.Employee) (domain.Employee, error)
	Delete(ctx context.Context, id, businessID uint) error
}

// EmployeeService backs the owner-only staff management page.
type EmployeeService struct {
	repo EmployeeRepository
}

func NewEmployeeService(repo EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		repo: repo,
	}
}

func (s *EmployeeService) ListEmployees(ctx context.Context, businessID uint) ([]domain.Employee, error) {
	employees, err := s.repo.FindByBusinessID(ctx, businessID, false)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByBusinessID -> %w", err)
	}

	return employees, nil
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, employee domain.Employee, passcode string) (domain.Employee, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return domain.Employee{}, err
	}
	employee.Passcode = string(hash)
	employee.IsActive = true

	created, err := s.repo.Create(ctx, employee)
	if err != nil {
		return domain.Employee{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// UpdateEmployee saves name, permissions and the active flag. The passcode
// is re-hashed only when a new one is supplied.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, employee domain.Employee, passcode string) (domain.Employee, error) {
	if passcode != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
		if err != nil {
			return domain.Employee{}, err
		}
		employee.Passcode = string(hash)
	} else {
		employee.Passcode = ""
	}

	updated, err := s.repo.Update(ctx, employee)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return domain.Employee{}, ErrEmployeeNotFound
		}

		return domain.Employee{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *EmployeeService) DeleteEmployee(ctx context.Context, id, businessID uint) error {
	if err := s.repo.Delete(ctx, id, businessID); err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return ErrEmployeeNotFound
		}

		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
