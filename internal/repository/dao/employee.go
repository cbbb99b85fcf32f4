package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrEmployeeNotFound = errors.New("employee not found")

type Employee struct {
	ID uint `gorm:"primaryKey"`

	BusinessID uint   `gorm:"index;not null"`
	Name       string `gorm:"not null"`
	Passcode   string `gorm:"not null"`

	POSAccess       bool `gorm:"not null;default:false"`
	InventoryAccess bool `gorm:"not null;default:false"`
	DashboardAccess bool `gorm:"not null;default:false"`

	IsActive bool `gorm:"not null;default:true"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type EmployeeDAO struct {
	db *gorm.DB
}

func NewEmployeeDAO(db *gorm.DB) *EmployeeDAO {
	return &EmployeeDAO{
		db: db,
	}
}

func (d *EmployeeDAO) Insert(ctx context.Context, employee Employee) (Employee, error) {
	result := d.db.WithContext(ctx).Create(&employee)
	if result.Error != nil {
		return Employee{}, result.Error
	}

	return employee, nil
}

// FindByID looks up an employee within the acting business only.
func (d *EmployeeDAO) FindByID(ctx context.Context, id, businessID uint) (Employee, error) {
	var employee Employee

	result := d.db.WithContext(ctx).
		First(&employee, "id = ? AND business_id = ?", id, businessID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Employee{}, ErrEmployeeNotFound
		}

		return Employee{}, result.Error
	}

	return employee, nil
}

func (d *EmployeeDAO) FindByBusinessID(ctx context.Context, businessID uint, activeOnly bool) ([]Employee, error) {
	var employees []Employee

	query := d.db.WithContext(ctx).Where("business_id = ?", businessID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	result := query.Order("name").Find(&employees)
	if result.Error != nil {
		return nil, result.Error
	}

	return employees, nil
}

func (d *EmployeeDAO) Update(ctx context.Context, employee Employee) (Employee, error) {
	updates := map[string]interface{}{
		"name":             employee.Name,
		"pos_access":       employee.POSAccess,
		"inventory_access": employee.InventoryAccess,
		"dashboard_access": employee.DashboardAccess,
		"is_active":        employee.IsActive,
	}
	if employee.Passcode != "" {
		updates["passcode"] = employee.Passcode
	}

	result := d.db.WithContext(ctx).Model(&Employee{}).
		Where("id = ? AND business_id = ?", employee.ID, employee.BusinessID).
		Updates(updates)
	if result.Error != nil {
		return Employee{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Employee{}, ErrEmployeeNotFound
	}

	return d.FindByID(ctx, employee.ID, employee.BusinessID)
}

func (d *EmployeeDAO) Delete(ctx context.Context, id, businessID uint) error {
	result := d.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", id, businessID).
		Delete(&Employee{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEmployeeNotFound
	}

	return nil
}
