package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ledgerone/ledgerone-api/internal/domain"
)

const (
	defaultAnalyticsDays = 30
	topProductsLimit     = 10
	trendMonths          = 12
)

type ReportRepository interface {
	SumSales(ctx context.Context, businessID uint, from, to time.Time) (float64, int, error)
	DailySales(ctx context.Context, businessID uint, from, to time.Time) ([]domain.DailySales, error)
	TopProducts(ctx context.Context, businessID uint, from, to time.Time, limit int) ([]domain.ProductSales, error)
	EmployeeSales(ctx context.Context, businessID uint, from, to time.Time) ([]domain.EmployeePerformance, error)
	PaymentMethodBreakdown(ctx context.Context, businessID uint, from, to time.Time) ([]domain.PaymentMethodStats, error)
	MonthlySales(ctx context.Context, businessID uint, from, to time.Time) ([]domain.MonthlyTrend, error)
}

type ReportProductRepository interface {
	FindLowStock(ctx context.Context, businessID uint) ([]domain.Product, error)
}

type ReportService struct {
	repo     ReportRepository
	products ReportProductRepository
	now      func() time.Time
}

func NewReportService(repo ReportRepository, products ReportProductRepository) *ReportService {
	return &ReportService{
		repo:     repo,
		products: products,
		now:      time.Now,
	}
}

// Dashboard assembles today's and month-to-date totals plus the low-stock
// list.
func (s *ReportService) Dashboard(ctx context.Context, businessID uint) (domain.DashboardStats, error) {
	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	todaySales, todayCount, err := s.repo.SumSales(ctx, businessID, dayStart, dayEnd)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("s.repo.SumSales -> %w", err)
	}

	monthlySales, monthlyCount, err := s.repo.SumSales(ctx, businessID, monthStart, dayEnd)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("s.repo.SumSales -> %w", err)
	}

	lowStock, err := s.products.FindLowStock(ctx, businessID)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("s.products.FindLowStock -> %w", err)
	}

	return domain.DashboardStats{
		TodaySales:          todaySales,
		TodayTransactions:   todayCount,
		MonthlySales:        monthlySales,
		MonthlyTransactions: monthlyCount,
		LowStockProducts:    lowStock,
	}, nil
}

// Analytics aggregates the report series over the trailing window of days.
// The monthly trend always covers the trailing twelve months.
func (s *ReportService) Analytics(ctx context.Context, businessID uint, days int) (domain.Analytics, error) {
	if days <= 0 {
		days = defaultAnalyticsDays
	}

	to := s.now()
	from := to.AddDate(0, 0, -days)

	daily, err := s.repo.DailySales(ctx, businessID, from, to)
	if err != nil {
		return domain.Analytics{}, fmt.Errorf("s.repo.DailySales -> %w", err)
	}

	topProducts, err := s.repo.TopProducts(ctx, businessID, from, to, topProductsLimit)
	if err != nil {
		return domain.Analytics{}, fmt.Errorf("s.repo.TopProducts -> %w", err)
	}

	employees, err := s.repo.EmployeeSales(ctx, businessID, from, to)
	if err != nil {
		return domain.Analytics{}, fmt.Errorf("s.repo.EmployeeSales -> %w", err)
	}

	payments, err := s.repo.PaymentMethodBreakdown(ctx, businessID, from, to)
	if err != nil {
		return domain.Analytics{}, fmt.Errorf("s.repo.PaymentMethodBreakdown -> %w", err)
	}

	trends, err := s.repo.MonthlySales(ctx, businessID, to.AddDate(0, -trendMonths, 0), to)
	if err != nil {
		return domain.Analytics{}, fmt.Errorf("s.repo.MonthlySales -> %w", err)
	}

	return domain.Analytics{
		DailySales:          daily,
		TopProducts:         topProducts,
		EmployeePerformance: employees,
		PaymentMethods:      payments,
		MonthlyTrends:       trends,
	}, nil
}
