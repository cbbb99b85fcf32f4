package domain

// DashboardStats summarizes today's and month-to-date activity plus the
// products flagged for reorder.
type DashboardStats struct {
	TodaySales          float64   `json:"today_sales"`
	TodayTransactions   int       `json:"today_transactions"`
	MonthlySales        float64   `json:"monthly_sales"`
	MonthlyTransactions int       `json:"monthly_transactions"`
	LowStockProducts    []Product `json:"low_stock_products"`
}

type DailySales struct {
	Date         string  `json:"date"`
	Amount       float64 `json:"amount"`
	Transactions int     `json:"transactions"`
}

type ProductSales struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type EmployeePerformance struct {
	Name         string  `json:"name"`
	Sales        float64 `json:"sales"`
	Transactions int     `json:"transactions"`
}

type PaymentMethodStats struct {
	Method PaymentMethod `json:"method"`
	Amount float64       `json:"amount"`
	Count  int           `json:"count"`
}

type MonthlyTrend struct {
	Month        string  `json:"month"`
	Sales        float64 `json:"sales"`
	Transactions int     `json:"transactions"`
}

// Analytics groups the report series served to the analytics page. Every
// series aggregates the same business-scoped, date-filtered transaction set.
type Analytics struct {
	DailySales          []DailySales          `json:"daily_sales"`
	TopProducts         []ProductSales        `json:"top_products"`
	EmployeePerformance []EmployeePerformance `json:"employee_performance"`
	PaymentMethods      []PaymentMethodStats  `json:"payment_methods"`
	MonthlyTrends       []MonthlyTrend        `json:"monthly_trends"`
}
