package repository

import (
	"context"
	"fmt"

	"github.com/ledgerone/ledgerone-api/internal/domain"
	"github.com/ledgerone/ledgerone-api/internal/repository/dao"
)

var ErrEmployeeNotFound = dao.ErrEmployeeNotFound

type EmployeeDAO interface {
	Insert(ctx context.Context, employee dao.Employee) (dao.Employee, error)
	FindByID(ctx context.Context, id, businessID uint) (dao.Employee, error)
	FindByBusinessID(ctx context.Context, businessID uint, activeOnly bool) ([]dao.Employee, error)
	Update(ctx context.Context, employee dao.Employee) (dao.Employee, error)
	Delete(ctx context.Context, id, businessID uint) error
}

type EmployeeRepository struct {
	dao EmployeeDAO
}

func NewEmployeeRepository(dao EmployeeDAO) *EmployeeRepository {
	return &EmployeeRepository{
		dao: dao,
	}
}

func (r *EmployeeRepository) Create(ctx context.Context, employee domain.Employee) (domain.Employee, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(employee))
	if err != nil {
		return domain.Employee{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id, businessID uint) (domain.Employee, error) {
	found, err := r.dao.FindByID(ctx, id, businessID)
	if err != nil {
		return domain.Employee{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EmployeeRepository) FindByBusinessID(ctx context.Context, businessID uint, activeOnly bool) ([]domain.Employee, error) {
	found, err := r.dao.FindByBusinessID(ctx, businessID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByBusinessID -> %w", err)
	}

	employees := make([]domain.Employee, 0, len(found))
	for _, e := range found {
		employees = append(employees, r.daoToDomain(e))
	}

	return employees, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, employee domain.Employee) (domain.Employee, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(employee))
	if err != nil {
		return domain.Employee{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id, businessID uint) error {
	if err := r.dao.Delete(ctx, id, businessID); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *EmployeeRepository) domainToDAO(e domain.Employee) dao.Employee {
	return dao.Employee{
		ID:              e.ID,
		BusinessID:      e.BusinessID,
		Name:            e.Name,
		Passcode:        e.Passcode,
		POSAccess:       e.Permissions.POSAccess,
		InventoryAccess: e.Permissions.InventoryAccess,
		DashboardAccess: e.Permissions.DashboardAccess,
		IsActive:        e.IsActive,
	}
}

func (r *EmployeeRepository) daoToDomain(e dao.Employee) domain.Employee {
	return domain.Employee{
		ID:         e.ID,
		BusinessID: e.BusinessID,
		Name:       e.Name,
		Passcode:   e.Passcode,
		Permissions: domain.EmployeePermissions{
			POSAccess:       e.POSAccess,
			InventoryAccess: e.InventoryAccess,
			DashboardAccess: e.DashboardAccess,
		},
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
