package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

type Product struct {
	ID uint `gorm:"primaryKey"`

	BusinessID uint   `gorm:"index;not null"`
	Name       string `gorm:"not null"`

	Price float64 `gorm:"not null"`
	Cost  float64 `gorm:"not null;default:0"`

	StockQuantity     int `gorm:"not null;default:0"`
	LowStockThreshold int `gorm:"not null;default:5"`

	IsActive bool `gorm:"not null;default:true"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ProductDAO struct {
	db *gorm.DB
}

func NewProductDAO(db *gorm.DB) *ProductDAO {
	return &ProductDAO{
		db: db,
	}
}

func (d *ProductDAO) Insert(ctx context.Context, product Product) (Product, error) {
	result := d.db.WithContext(ctx).Create(&product)
	if result.Error != nil {
		return Product{}, result.Error
	}

	return product, nil
}

func (d *ProductDAO) FindByID(ctx context.Context, id, businessID uint) (Product, error) {
	var product Product

	result := d.db.WithContext(ctx).
		First(&product, "id = ? AND business_id = ?", id, businessID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Product{}, ErrProductNotFound
		}

		return Product{}, result.Error
	}

	return product, nil
}

// FindByBusinessID lists the business's products ordered by name.
// availableOnly narrows to active, in-stock products for the POS screen.
func (d *ProductDAO) FindByBusinessID(ctx context.Context, businessID uint, availableOnly bool) ([]Product, error) {
	var products []Product

	query := d.db.WithContext(ctx).Where("business_id = ?", businessID)
	if availableOnly {
		query = query.Where("is_active = ?", true).Where("stock_quantity > 0")
	}

	result := query.Order("name").Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}

	return products, nil
}

// FindLowStock lists active products at or below their reorder threshold,
// lowest stock first.
func (d *ProductDAO) FindLowStock(ctx context.Context, businessID uint) ([]Product, error) {
	var products []Product

	result := d.db.WithContext(ctx).
		Where("business_id = ? AND is_active = ?", businessID, true).
		Where("stock_quantity <= low_stock_threshold").
		Order("stock_quantity").
		Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}

	return products, nil
}

func (d *ProductDAO) Update(ctx context.Context, product Product) (Product, error) {
	result := d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ? AND business_id = ?", product.ID, product.BusinessID).
		Updates(map[string]interface{}{
			"name":                product.Name,
			"price":               product.Price,
			"cost":                product.Cost,
			"stock_quantity":      product.StockQuantity,
			"low_stock_threshold": product.LowStockThreshold,
			"is_active":           product.IsActive,
		})
	if result.Error != nil {
		return Product{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Product{}, ErrProductNotFound
	}

	return d.FindByID(ctx, product.ID, product.BusinessID)
}

func (d *ProductDAO) Delete(ctx context.Context, id, businessID uint) error {
	result := d.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", id, businessID).
		Delete(&Product{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}
