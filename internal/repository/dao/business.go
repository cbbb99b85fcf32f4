package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrBusinessNotFound = errors.New("business not found")

type Business struct {
	ID uint `gorm:"primaryKey"`

	Name    string `gorm:"not null"`
	OwnerID uint   `gorm:"uniqueIndex;not null"`

	// Settings columns, edited together from the settings page.
	POSMode    string `gorm:"not null;default:simple"`
	AutoLogout bool   `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type BusinessDAO struct {
	db *gorm.DB
}

func NewBusinessDAO(db *gorm.DB) *BusinessDAO {
	return &BusinessDAO{
		db: db,
	}
}

func (d *BusinessDAO) Insert(ctx context.Context, business Business) (Business, error) {
	result := d.db.WithContext(ctx).Create(&business)
	if result.Error != nil {
		return Business{}, result.Error
	}

	return business, nil
}

func (d *BusinessDAO) FindByID(ctx context.Context, id uint) (Business, error) {
	var business Business

	result := d.db.WithContext(ctx).First(&business, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Business{}, ErrBusinessNotFound
		}

		return Business{}, result.Error
	}

	return business, nil
}

func (d *BusinessDAO) FindByOwnerID(ctx context.Context, ownerID uint) (Business, error) {
	var business Business

	result := d.db.WithContext(ctx).First(&business, "owner_id = ?", ownerID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Business{}, ErrBusinessNotFound
		}

		return Business{}, result.Error
	}

	return business, nil
}

// FindAll lists every business, ordered by name, for the employee login screen.
func (d *BusinessDAO) FindAll(ctx context.Context) ([]Business, error) {
	var businesses []Business

	result := d.db.WithContext(ctx).Order("name").Find(&businesses)
	if result.Error != nil {
		return nil, result.Error
	}

	return businesses, nil
}

func (d *BusinessDAO) Update(ctx context.Context, business Business) (Business, error) {
	result := d.db.WithContext(ctx).Model(&Business{}).
		Where("id = ?", business.ID).
		Updates(map[string]interface{}{
			"name":        business.Name,
			"pos_mode":    business.POSMode,
			"auto_logout": business.AutoLogout,
		})
	if result.Error != nil {
		return Business{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Business{}, ErrBusinessNotFound
	}

	return d.FindByID(ctx, business.ID)
}
