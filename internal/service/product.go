package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ledgerone/ledgerone-api/internal/domain"
	"github.com/ledgerone/ledgerone-api/internal/repository"
)

var ErrProductNotFound = repository.ErrProductNotFound

type ProductRepository interface {
	Create(ctx context.Context, product domain.Product) (domain.Product, error)
	FindByID(ctx context.Context, id, businessID uint) (domain.Product, error)
	FindByBusinessID(ctx context.Context, businessID uint, availableOnly bool) ([]domain.Product, error)
	Update(ctx context.Context, product domain.Product) (domain.Product, error)
	Delete(ctx context.Context, id, businessID uint) error
}

type ProductService struct {
	repo ProductRepository
}

func NewProductService(repo ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts lists the business's catalog; availableOnly narrows to
// active in-stock products for the POS screen.
func (s *ProductService) ListProducts(ctx context.Context, businessID uint, availableOnly bool) ([]domain.Product, error) {
	products, err := s.repo.FindByBusinessID(ctx, businessID, availableOnly)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByBusinessID -> %w", err)
	}

	return products, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id, businessID uint) (domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domain.Product{}, ErrProductNotFound
		}

		return domain.Product{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return product, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domain.Product{}, ErrProductNotFound
		}

		return domain.Product{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id, businessID uint) error {
	if err := s.repo.Delete(ctx, id, businessID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return ErrProductNotFound
		}

		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
