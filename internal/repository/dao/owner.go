package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrOwnerEmailExists = errors.New("owner already exists")
	ErrOwnerNotFound    = errors.New("owner not found")
)

type Owner struct {
	ID uint `gorm:"primaryKey"`

	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type OwnerDAO struct {
	db *gorm.DB
}

func NewOwnerDAO(db *gorm.DB) *OwnerDAO {
	return &OwnerDAO{
		db: db,
	}
}

func (d *OwnerDAO) Insert(ctx context.Context, owner Owner) (Owner, error) {
	result := d.db.WithContext(ctx).Create(&owner)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `unique constraint "uni_owners_email"`) {
			return Owner{}, ErrOwnerEmailExists
		}

		return Owner{}, result.Error
	}

	return owner, nil
}

func (d *OwnerDAO) FindByID(ctx context.Context, id uint) (Owner, error) {
	var owner Owner

	result := d.db.WithContext(ctx).First(&owner, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Owner{}, ErrOwnerNotFound
		}

		return Owner{}, result.Error
	}

	return owner, nil
}

func (d *OwnerDAO) FindByEmail(ctx context.Context, email string) (Owner, error) {
	var owner Owner

	result := d.db.WithContext(ctx).First(&owner, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Owner{}, ErrOwnerNotFound
		}

		return Owner{}, result.Error
	}

	return owner, nil
}
