package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Aggregation rows scanned out of the grouped report queries.

type SalesTotalRow struct {
	Amount       float64
	Transactions int
}

type DailySalesRow struct {
	Date         string
	Amount       float64
	Transactions int
}

type ProductSalesRow struct {
	Name     string
	Quantity int
	Revenue  float64
}

type EmployeeSalesRow struct {
	Name         string
	Sales        float64
	Transactions int
}

type PaymentMethodRow struct {
	Method string
	Amount float64
	Count  int
}

type MonthlySalesRow struct {
	Month        string
	Sales        float64
	Transactions int
}

type ReportDAO struct {
	db *gorm.DB
}

func NewReportDAO(db *gorm.DB) *ReportDAO {
	return &ReportDAO{
		db: db,
	}
}

func (d *ReportDAO) rangeQuery(ctx context.Context, businessID uint, from, to time.Time) *gorm.DB {
	return d.db.WithContext(ctx).Model(&Transaction{}).
		Where("business_id = ?", businessID).
		Where("created_at >= ? AND created_at < ?", from, to)
}

// SumSales totals the business's transactions in [from, to).
func (d *ReportDAO) SumSales(ctx context.Context, businessID uint, from, to time.Time) (SalesTotalRow, error) {
	var row SalesTotalRow

	err := d.rangeQuery(ctx, businessID, from, to).
		Select("COALESCE(SUM(total_amount), 0) AS amount, COUNT(*) AS transactions").
		Scan(&row).Error
	if err != nil {
		return SalesTotalRow{}, err
	}

	return row, nil
}

func (d *ReportDAO) DailySales(ctx context.Context, businessID uint, from, to time.Time) ([]DailySalesRow, error) {
	var rows []DailySalesRow

	err := d.rangeQuery(ctx, businessID, from, to).
		Select("to_char(created_at, 'YYYY-MM-DD') AS date, SUM(total_amount) AS amount, COUNT(*) AS transactions").
		Group("to_char(created_at, 'YYYY-MM-DD')").
		Order("date").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// TopProducts ranks sold items by revenue over the item-name snapshots, so
// custom free-text items rank alongside catalogued products.
func (d *ReportDAO) TopProducts(ctx context.Context, businessID uint, from, to time.Time, limit int) ([]ProductSalesRow, error) {
	var rows []ProductSalesRow

	err := d.db.WithContext(ctx).Model(&TransactionItem{}).
		Joins("JOIN transactions ON transactions.id = transaction_items.transaction_id").
		Where("transactions.business_id = ?", businessID).
		Where("transactions.created_at >= ? AND transactions.created_at < ?", from, to).
		Select("transaction_items.item_name AS name, SUM(transaction_items.quantity) AS quantity, SUM(transaction_items.total_price) AS revenue").
		Group("transaction_items.item_name").
		Order("revenue DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// EmployeeSales buckets sales per acting employee; owner-performed sales
// (null employee_id) land in the "Owner" bucket.
func (d *ReportDAO) EmployeeSales(ctx context.Context, businessID uint, from, to time.Time) ([]EmployeeSalesRow, error) {
	var rows []EmployeeSalesRow

	err := d.rangeQuery(ctx, businessID, from, to).
		Joins("LEFT JOIN employees ON employees.id = transactions.employee_id").
		Select("COALESCE(employees.name, 'Owner') AS name, SUM(transactions.total_amount) AS sales, COUNT(*) AS transactions").
		Group("COALESCE(employees.name, 'Owner')").
		Order("sales DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (d *ReportDAO) PaymentMethodBreakdown(ctx context.Context, businessID uint, from, to time.Time) ([]PaymentMethodRow, error) {
	var rows []PaymentMethodRow

	err := d.rangeQuery(ctx, businessID, from, to).
		Select("payment_method AS method, SUM(total_amount) AS amount, COUNT(*) AS count").
		Group("payment_method").
		Order("amount DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (d *ReportDAO) MonthlySales(ctx context.Context, businessID uint, from, to time.Time) ([]MonthlySalesRow, error) {
	var rows []MonthlySalesRow

	err := d.rangeQuery(ctx, businessID, from, to).
		Select("to_char(created_at, 'YYYY-MM') AS month, SUM(total_amount) AS sales, COUNT(*) AS transactions").
		Group("to_char(created_at, 'YYYY-MM')").
		Order("month").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}
