package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/ledgerone/ledgerone-api/internal/domain"
	"github.com/ledgerone/ledgerone-api/internal/repository"
)

var (
	ErrOwnerEmailExists = repository.ErrOwnerEmailExists

	// ErrInvalidCredentials covers every authentication failure, owner and
	// employee alike, so callers cannot learn which field was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthOwnerRepository interface {
	Create(ctx context.Context, owner domain.Owner) (domain.Owner, error)
	FindByID(ctx context.Context, id uint) (domain.Owner, error)
	FindByEmail(ctx context.Context, email string) (domain.Owner, error)
}

type AuthBusinessRepository interface {
	Create(ctx context.Context, business domain.Business) (domain.Business, error)
	FindByID(ctx context.Context, id uint) (domain.Business, error)
	FindByOwnerID(ctx context.Context, ownerID uint) (domain.Business, error)
}

type AuthEmployeeRepository interface {
	FindByID(ctx context.Context, id, businessID uint) (domain.Employee, error)
}

type AuthService struct {
	owners     AuthOwnerRepository
	businesses AuthBusinessRepository
	employees  AuthEmployeeRepository
}

func NewAuthService(owners AuthOwnerRepository, businesses AuthBusinessRepository, employees AuthEmployeeRepository) *AuthService {
	return &AuthService{
		owners:     owners,
		businesses: businesses,
		employees:  employees,
	}
}

// Signup creates the owner account and its business in one step. The
// business starts with default settings.
func (s *AuthService) Signup(ctx context.Context, email, password, businessName string) (domain.Identity, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Identity{}, err
	}

	owner, err := s.owners.Create(ctx, domain.Owner{
		Email:    email,
		Password: string(hash),
	})
	if err != nil {
		if errors.Is(err, repository.ErrOwnerEmailExists) {
			return domain.Identity{}, ErrOwnerEmailExists
		}

		return domain.Identity{}, fmt.Errorf("s.owners.Create -> %w", err)
	}

	business, err := s.businesses.Create(ctx, domain.Business{
		Name:    businessName,
		OwnerID: owner.ID,
		Settings: domain.BusinessSettings{
			POSMode:    domain.POSModeSimple,
			AutoLogout: false,
		},
	})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("s.businesses.Create -> %w", err)
	}

	return domain.Identity{
		Kind:     domain.IdentityOwner,
		Owner:    &owner,
		Business: &business,
	}, nil
}

// LoginOwner verifies owner credentials. An owner whose business row does
// not exist yet resolves to the transitional state with a nil Business.
func (s *AuthService) LoginOwner(ctx context.Context, email, password string) (domain.Identity, error) {
	owner, err := s.owners.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return domain.Identity{}, ErrInvalidCredentials
		}

		return domain.Identity{}, fmt.Errorf("s.owners.FindByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(owner.Password), []byte(password)); err != nil {
		return domain.Identity{}, ErrInvalidCredentials
	}

	return s.resolveOwnerIdentity(ctx, owner)
}

// LoginEmployee matches business + employee + passcode against an active
// employee row. Every mismatch yields the same generic failure.
func (s *AuthService) LoginEmployee(ctx context.Context, businessID, employeeID uint, passcode string) (domain.Identity, error) {
	employee, err := s.employees.FindByID(ctx, employeeID, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return domain.Identity{}, ErrInvalidCredentials
		}

		return domain.Identity{}, fmt.Errorf("s.employees.FindByID -> %w", err)
	}

	if !employee.IsActive {
		return domain.Identity{}, ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(employee.Passcode), []byte(passcode)); err != nil {
		return domain.Identity{}, ErrInvalidCredentials
	}

	business, err := s.businesses.FindByID(ctx, businessID)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("s.businesses.FindByID -> %w", err)
	}

	return domain.Identity{
		Kind:     domain.IdentityEmployee,
		Business: &business,
		Employee: &employee,
	}, nil
}

// ResolveOwner rebuilds the identity for an owner token.
func (s *AuthService) ResolveOwner(ctx context.Context, ownerID uint) (domain.Identity, error) {
	owner, err := s.owners.FindByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return domain.Identity{}, ErrInvalidCredentials
		}

		return domain.Identity{}, fmt.Errorf("s.owners.FindByID -> %w", err)
	}

	return s.resolveOwnerIdentity(ctx, owner)
}

// ResolveEmployee rebuilds the identity for an employee token, re-checking
// the active flag so deactivated employees lose access immediately.
func (s *AuthService) ResolveEmployee(ctx context.Context, businessID, employeeID uint) (domain.Identity, error) {
	employee, err := s.employees.FindByID(ctx, employeeID, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return domain.Identity{}, ErrInvalidCredentials
		}

		return domain.Identity{}, fmt.Errorf("s.employees.FindByID -> %w", err)
	}

	if !employee.IsActive {
		return domain.Identity{}, ErrInvalidCredentials
	}

	business, err := s.businesses.FindByID(ctx, businessID)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("s.businesses.FindByID -> %w", err)
	}

	return domain.Identity{
		Kind:     domain.IdentityEmployee,
		Business: &business,
		Employee: &employee,
	}, nil
}

func (s *AuthService) resolveOwnerIdentity(ctx context.Context, owner domain.Owner) (domain.Identity, error) {
	identity := domain.Identity{
		Kind:  domain.IdentityOwner,
		Owner: &owner,
	}

	business, err := s.businesses.FindByOwnerID(ctx, owner.ID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return identity, nil
		}

		return domain.Identity{}, fmt.Errorf("s.businesses.FindByOwnerID -> %w", err)
	}

	identity.Business = &business

	return identity, nil
}
