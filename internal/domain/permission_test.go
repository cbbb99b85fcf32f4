package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerone/ledgerone-api/internal/domain"
)

func ownerIdentity() domain.Identity {
	return domain.Identity{
		Kind:     domain.IdentityOwner,
		Owner:    &domain.Owner{ID: 1},
		Business: &domain.Business{ID: 1},
	}
}

func employeeIdentity(permissions domain.EmployeePermissions) domain.Identity {
	return domain.Identity{
		Kind:     domain.IdentityEmployee,
		Business: &domain.Business{ID: 1},
		Employee: &domain.Employee{ID: 7, BusinessID: 1, Permissions: permissions, IsActive: true},
	}
}

func TestCanView(t *testing.T) {
	allPages := []domain.Page{
		domain.PageDashboard,
		domain.PagePOS,
		domain.PageInventory,
		domain.PageStaff,
		domain.PageSettings,
		domain.PageSales,
		domain.PageAnalytics,
	}

	t.Run("owner sees every page", func(t *testing.T) {
		for _, page := range allPages {
			assert.True(t, domain.CanView(ownerIdentity(), page), "page %v", page)
		}
	})

	t.Run("unauthenticated sees nothing", func(t *testing.T) {
		for _, page := range allPages {
			assert.False(t, domain.CanView(domain.Identity{}, page), "page %v", page)
		}
	})

	tests := []struct {
		name        string
		permissions domain.EmployeePermissions
		page        domain.Page
		want        bool
	}{
		{
			name:        "pos flag grants pos",
			permissions: domain.EmployeePermissions{POSAccess: true},
			page:        domain.PagePOS,
			want:        true,
		},
		{
			name:        "pos flag alone does not grant inventory",
			permissions: domain.EmployeePermissions{POSAccess: true},
			page:        domain.PageInventory,
			want:        false,
		},
		{
			name:        "inventory flag grants inventory",
			permissions: domain.EmployeePermissions{InventoryAccess: true},
			page:        domain.PageInventory,
			want:        true,
		},
		{
			name:        "dashboard flag grants dashboard",
			permissions: domain.EmployeePermissions{DashboardAccess: true},
			page:        domain.PageDashboard,
			want:        true,
		},
		{
			name:        "sales history rides the dashboard flag",
			permissions: domain.EmployeePermissions{DashboardAccess: true},
			page:        domain.PageSales,
			want:        true,
		},
		{
			name:        "no dashboard flag means no sales history",
			permissions: domain.EmployeePermissions{POSAccess: true, InventoryAccess: true},
			page:        domain.PageSales,
			want:        false,
		},
		{
			name:        "staff is never visible to employees",
			permissions: domain.EmployeePermissions{POSAccess: true, InventoryAccess: true, DashboardAccess: true},
			page:        domain.PageStaff,
			want:        false,
		},
		{
			name:        "settings is never visible to employees",
			permissions: domain.EmployeePermissions{POSAccess: true, InventoryAccess: true, DashboardAccess: true},
			page:        domain.PageSettings,
			want:        false,
		},
		{
			name:        "analytics is never visible to employees",
			permissions: domain.EmployeePermissions{POSAccess: true, InventoryAccess: true, DashboardAccess: true},
			page:        domain.PageAnalytics,
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.CanView(employeeIdentity(tt.permissions), tt.page)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanEdit(t *testing.T) {
	t.Run("owner edits inventory", func(t *testing.T) {
		assert.True(t, domain.CanEdit(ownerIdentity(), domain.PageInventory))
	})

	t.Run("inventory stays view-only for employees", func(t *testing.T) {
		identity := employeeIdentity(domain.EmployeePermissions{InventoryAccess: true})

		assert.True(t, domain.CanView(identity, domain.PageInventory))
		assert.False(t, domain.CanEdit(identity, domain.PageInventory))
	})

	t.Run("pos is editable with the pos flag", func(t *testing.T) {
		identity := employeeIdentity(domain.EmployeePermissions{POSAccess: true})

		assert.True(t, domain.CanEdit(identity, domain.PagePOS))
	})

	t.Run("no view means no edit", func(t *testing.T) {
		identity := employeeIdentity(domain.EmployeePermissions{})

		assert.False(t, domain.CanEdit(identity, domain.PagePOS))
	})
}
