package repository

import (
	"context"
	"fmt"

	"github.com/ledgerone/ledgerone-api/internal/domain"
	"github.com/ledgerone/ledgerone-api/internal/repository/dao"
)

var ErrProductNotFound = dao.ErrProductNotFound

type ProductDAO interface {
	Insert(ctx context.Context, product dao.Product) (dao.Product, error)
	FindByID(ctx context.Context, id, businessID uint) (dao.Product, error)
	FindByBusinessID(ctx context.Context, businessID uint, availableOnly bool) ([]dao.Product, error)
	FindLowStock(ctx context.Context, businessID uint) ([]dao.Product, error)
	Update(ctx context.Context, product dao.Product) (dao.Product, error)
	Delete(ctx context.Context, id, businessID uint) error
}

type ProductRepository struct {
	dao ProductDAO
}

func NewProductRepository(dao ProductDAO) *ProductRepository {
	return &ProductRepository{
		dao: dao,
	}
}

func (r *ProductRepository) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(product))
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id, businessID uint) (domain.Product, error) {
	found, err := r.dao.FindByID(ctx, id, businessID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ProductRepository) FindByBusinessID(ctx context.Context, businessID uint, availableOnly bool) ([]domain.Product, error) {
	found, err := r.dao.FindByBusinessID(ctx, businessID, availableOnly)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByBusinessID -> %w", err)
	}

	return r.daoToDomainSlice(found), nil
}

func (r *ProductRepository) FindLowStock(ctx context.Context, businessID uint) ([]domain.Product, error) {
	found, err := r.dao.FindLowStock(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindLowStock -> %w", err)
	}

	return r.daoToDomainSlice(found), nil
}

func (r *ProductRepository) Update(ctx context.Context, product domain.Product) (domain.Product, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(product))
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ProductRepository) Delete(ctx context.Context, id, businessID uint) error {
	if err := r.dao.Delete(ctx, id, businessID); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ProductRepository) domainToDAO(p domain.Product) dao.Product {
	return dao.Product{
		ID:                p.ID,
		BusinessID:        p.BusinessID,
		Name:              p.Name,
		Price:             p.Price,
		Cost:              p.Cost,
		StockQuantity:     p.StockQuantity,
		LowStockThreshold: p.LowStockThreshold,
		IsActive:          p.IsActive,
	}
}

func (r *ProductRepository) daoToDomain(p dao.Product) domain.Product {
	return domain.Product{
		ID:                p.ID,
		BusinessID:        p.BusinessID,
		Name:              p.Name,
		Price:             p.Price,
		Cost:              p.Cost,
		StockQuantity:     p.StockQuantity,
		LowStockThreshold: p.LowStockThreshold,
		IsActive:          p.IsActive,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (r *ProductRepository) daoToDomainSlice(found []dao.Product) []domain.Product {
	products := make([]domain.Product, 0, len(found))
	for _, p := range found {
		products = append(products, r.daoToDomain(p))
	}

	return products
}
