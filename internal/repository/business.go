package repository

import (
	"context"
	"fmt"

	"github.com/ledgerone/ledgerone-api/internal/domain"
	"github.com/ledgerone/ledgerone-api/internal/repository/dao"
)

var ErrBusinessNotFound = dao.ErrBusinessNotFound

type BusinessDAO interface {
	Insert(ctx context.Context, business dao.Business) (dao.Business, error)
	FindByID(ctx context.Context, id uint) (dao.Business, error)
	FindByOwnerID(ctx context.Context, ownerID uint) (dao.Business, error)
	FindAll(ctx context.Context) ([]dao.Business, error)
	Update(ctx context.Context, business dao.Business) (dao.Business, error)
}

type BusinessRepository struct {
	dao BusinessDAO
}

func NewBusinessRepository(dao BusinessDAO) *BusinessRepository {
	return &BusinessRepository{
		dao: dao,
	}
}

func (r *BusinessRepository) Create(ctx context.Context, business domain.Business) (domain.Business, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(business))
	if err != nil {
		return domain.Business{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *BusinessRepository) FindByID(ctx context.Context, id uint) (domain.Business, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Business{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *BusinessRepository) FindByOwnerID(ctx context.Context, ownerID uint) (domain.Business, error) {
	found, err := r.dao.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return domain.Business{}, fmt.Errorf("r.dao.FindByOwnerID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *BusinessRepository) FindAll(ctx context.Context) ([]domain.Business, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	businesses := make([]domain.Business, 0, len(found))
	for _, b := range found {
		businesses = append(businesses, r.daoToDomain(b))
	}

	return businesses, nil
}

func (r *BusinessRepository) Update(ctx context.Context, business domain.Business) (domain.Business, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(business))
	if err != nil {
		return domain.Business{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *BusinessRepository) domainToDAO(b domain.Business) dao.Business {
	return dao.Business{
		ID:         b.ID,
		Name:       b.Name,
		OwnerID:    b.OwnerID,
		POSMode:    string(b.Settings.POSMode),
		AutoLogout: b.Settings.AutoLogout,
	}
}

func (r *BusinessRepository) daoToDomain(b dao.Business) domain.Business {
	return domain.Business{
		ID:      b.ID,
		Name:    b.Name,
		OwnerID: b.OwnerID,
		Settings: domain.BusinessSettings{
			POSMode:    domain.POSMode(b.POSMode),
			AutoLogout: b.AutoLogout,
		},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
