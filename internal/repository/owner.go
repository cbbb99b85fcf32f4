package repository

import (
	"context"
	"fmt"

	"github.com/ledgerone/ledgerone-api/internal/domain"
	"github.com/ledgerone/ledgerone-api/internal/repository/dao"
)

var (
	ErrOwnerEmailExists = dao.ErrOwnerEmailExists
	ErrOwnerNotFound    = dao.ErrOwnerNotFound
)

type OwnerDAO interface {
	Insert(ctx context.Context, owner dao.Owner) (dao.Owner, error)
	FindByID(ctx context.Context, id uint) (dao.Owner, error)
	FindByEmail(ctx context.Context, email string) (dao.Owner, error)
}

type OwnerRepository struct {
	dao OwnerDAO
}

func NewOwnerRepository(dao OwnerDAO) *OwnerRepository {
	return &OwnerRepository{
		dao: dao,
	}
}

func (r *OwnerRepository) Create(ctx context.Context, owner domain.Owner) (domain.Owner, error) {
	created, err := r.dao.Insert(ctx, dao.Owner{
		Email:    owner.Email,
		Password: owner.Password,
	})
	if err != nil {
		return domain.Owner{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *OwnerRepository) FindByID(ctx context.Context, id uint) (domain.Owner, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Owner{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *OwnerRepository) FindByEmail(ctx context.Context, email string) (domain.Owner, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.Owner{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *OwnerRepository) daoToDomain(o dao.Owner) domain.Owner {
	return domain.Owner{
		ID:        o.ID,
		Email:     o.Email,
		Password:  o.Password,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
