package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ledgerone/ledgerone-api/internal/domain"
	"github.com/ledgerone/ledgerone-api/internal/repository"
)

var ErrBusinessNotFound = repository.ErrBusinessNotFound

type BusinessRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Business, error)
	FindAll(ctx context.Context) ([]domain.Business, error)
	Update(ctx context.Context, business domain.Business) (domain.Business, error)
}

type BusinessEmployeeRepository interface {
	FindByBusinessID(ctx context.Context, businessID uint, activeOnly bool) ([]domain.Employee, error)
}

type BusinessService struct {
	repo      BusinessRepository
	employees BusinessEmployeeRepository
}

func NewBusinessService(repo BusinessRepository, employees BusinessEmployeeRepository) *BusinessService {
	return &BusinessService{
		repo:      repo,
		employees: employees,
	}
}

func (s *BusinessService) GetBusiness(ctx context.Context, businessID uint) (domain.Business, error) {
	business, err := s.repo.FindByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return domain.Business{}, ErrBusinessNotFound
		}

		return domain.Business{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return business, nil
}

// UpdateSettings saves the business name and settings from the settings page.
func (s *BusinessService) UpdateSettings(ctx context.Context, businessID uint, name string, settings domain.BusinessSettings) (domain.Business, error) {
	updated, err := s.repo.Update(ctx, domain.Business{
		ID:       businessID,
		Name:     name,
		Settings: settings,
	})
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return domain.Business{}, ErrBusinessNotFound
		}

		return domain.Business{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// ListBusinesses feeds the business picker on the employee login screen.
func (s *BusinessService) ListBusinesses(ctx context.Context) ([]domain.Business, error) {
	businesses, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return businesses, nil
}

// ListLoginEmployees feeds the employee picker: active employees only.
func (s *BusinessService) ListLoginEmployees(ctx context.Context, businessID uint) ([]domain.Employee, error) {
	employees, err := s.employees.FindByBusinessID(ctx, businessID, true)
	if err != nil {
		return nil, fmt.Errorf("s.employees.FindByBusinessID -> %w", err)
	}

	return employees, nil
}
