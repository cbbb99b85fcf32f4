package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/ledgerone/ledgerone-api/internal/domain"
	"github.com/ledgerone/ledgerone-api/internal/repository/dao"
)

type ReportDAO interface {
	SumSales(ctx context.Context, businessID uint, from, to time.Time) (dao.SalesTotalRow, error)
	DailySales(ctx context.Context, businessID uint, from, to time.Time) ([]dao.DailySalesRow, error)
	TopProducts(ctx context.Context, businessID uint, from, to time.Time, limit int) ([]dao.ProductSalesRow, error)
	EmployeeSales(ctx context.Context, businessID uint, from, to time.Time) ([]dao.EmployeeSalesRow, error)
	PaymentMethodBreakdown(ctx context.Context, businessID uint, from, to time.Time) ([]dao.PaymentMethodRow, error)
	MonthlySales(ctx context.Context, businessID uint, from, to time.Time) ([]dao.MonthlySalesRow, error)
}

type ReportRepository struct {
	dao ReportDAO
}

func NewReportRepository(dao ReportDAO) *ReportRepository {
	return &ReportRepository{
		dao: dao,
	}
}

// SumSales returns the sales total and transaction count in [from, to).
func (r *ReportRepository) SumSales(ctx context.Context, businessID uint, from, to time.Time) (float64, int, error) {
	row, err := r.dao.SumSales(ctx, businessID, from, to)
	if err != nil {
		return 0, 0, fmt.Errorf("r.dao.SumSales -> %w", err)
	}

	return row.Amount, row.Transactions, nil
}

func (r *ReportRepository) DailySales(ctx context.Context, businessID uint, from, to time.Time) ([]domain.DailySales, error) {
	rows, err := r.dao.DailySales(ctx, businessID, from, to)
	if err != nil {
		return nil, fmt.Errorf("r.dao.DailySales -> %w", err)
	}

	series := make([]domain.DailySales, 0, len(rows))
	for _, row := range rows {
		series = append(series, domain.DailySales{
			Date:         row.Date,
			Amount:       row.Amount,
			Transactions: row.Transactions,
		})
	}

	return series, nil
}

func (r *ReportRepository) TopProducts(ctx context.Context, businessID uint, from, to time.Time, limit int) ([]domain.ProductSales, error) {
	rows, err := r.dao.TopProducts(ctx, businessID, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.TopProducts -> %w", err)
	}

	series := make([]domain.ProductSales, 0, len(rows))
	for _, row := range rows {
		series = append(series, domain.ProductSales{
			Name:     row.Name,
			Quantity: row.Quantity,
			Revenue:  row.Revenue,
		})
	}

	return series, nil
}

func (r *ReportRepository) EmployeeSales(ctx context.Context, businessID uint, from, to time.Time) ([]domain.EmployeePerformance, error) {
	rows, err := r.dao.EmployeeSales(ctx, businessID, from, to)
	if err != nil {
		return nil, fmt.Errorf("r.dao.EmployeeSales -> %w", err)
	}

	series := make([]domain.EmployeePerformance, 0, len(rows))
	for _, row := range rows {
		series = append(series, domain.EmployeePerformance{
			Name:         row.Name,
			Sales:        row.Sales,
			Transactions: row.Transactions,
		})
	}

	return series, nil
}

func (r *ReportRepository) PaymentMethodBreakdown(ctx context.Context, businessID uint, from, to time.Time) ([]domain.PaymentMethodStats, error) {
	rows, err := r.dao.PaymentMethodBreakdown(ctx, businessID, from, to)
	if err != nil {
		return nil, fmt.Errorf("r.dao.PaymentMethodBreakdown -> %w", err)
	}

	series := make([]domain.PaymentMethodStats, 0, len(rows))
	for _, row := range rows {
		series = append(series, domain.PaymentMethodStats{
			Method: domain.PaymentMethod(row.Method),
			Amount: row.Amount,
			Count:  row.Count,
		})
	}

	return series, nil
}

func (r *ReportRepository) MonthlySales(ctx context.Context, businessID uint, from, to time.Time) ([]domain.MonthlyTrend, error) {
	rows, err := r.dao.MonthlySales(ctx, businessID, from, to)
	if err != nil {
		return nil, fmt.Errorf("r.dao.MonthlySales -> %w", err)
	}

	series := make([]domain.MonthlyTrend, 0, len(rows))
	for _, row := range rows {
		series = append(series, domain.MonthlyTrend{
			Month:        row.Month,
			Sales:        row.Sales,
			Transactions: row.Transactions,
		})
	}

	return series, nil
}
