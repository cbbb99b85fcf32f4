package domain

import "time"

// EmployeePermissions are the page-access flags an owner grants per employee.
type EmployeePermissions struct {
	POSAccess       bool `json:"pos_access"`
	InventoryAccess bool `json:"inventory_access"`
	DashboardAccess bool `json:"dashboard_access"`
}

// Employee is a business-scoped actor who logs in with a passcode
// instead of individual credentials.
type Employee struct {
	ID          uint                `json:"id"`
	BusinessID  uint                `json:"business_id"`
	Name        string              `json:"name"`
	Passcode    string              `json:"-"`
	Permissions EmployeePermissions `json:"permissions"`
	IsActive    bool                `json:"is_active"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}
