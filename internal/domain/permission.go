package domain

// Page identifies a navigable page of the application.
type Page string

const (
	PageDashboard Page = "dashboard"
	PagePOS       Page = "pos"
	PageInventory Page = "inventory"
	PageStaff     Page = "staff"
	PageSettings  Page = "settings"
	PageSales     Page = "sales"
	PageAnalytics Page = "analytics"
)

type pageRule struct {
	// ownerOnly pages are invisible to employees regardless of flags.
	ownerOnly bool
	// flag selects the employee permission that grants view access.
	flag func(EmployeePermissions) bool
	// ownerOnlyEdit keeps the page view-only for employees even when
	// the view flag is set.
	ownerOnlyEdit bool
}

// pageRules is the single source of truth for page visibility. Sales
// history has no flag of its own and rides the dashboard flag.
var pageRules = map[Page]pageRule{
	PageDashboard: {flag: func(p EmployeePermissions) bool { return p.DashboardAccess }},
	PagePOS:       {flag: func(p EmployeePermissions) bool { return p.POSAccess }},
	PageInventory: {flag: func(p EmployeePermissions) bool { return p.InventoryAccess }, ownerOnlyEdit: true},
	PageSales:     {flag: func(p EmployeePermissions) bool { return p.DashboardAccess }},
	PageStaff:     {ownerOnly: true},
	PageSettings:  {ownerOnly: true},
	PageAnalytics: {ownerOnly: true},
}

// CanView reports whether the identity may see the page. Owners see
// everything; employees see flag-gated pages only.
func CanView(identity Identity, page Page) bool {
	rule, ok := pageRules[page]
	if !ok {
		return false
	}

	switch identity.Kind {
	case IdentityOwner:
		return true
	case IdentityEmployee:
		if rule.ownerOnly || identity.Employee == nil {
			return false
		}

		return rule.flag != nil && rule.flag(identity.Employee.Permissions)
	default:
		return false
	}
}

// CanEdit reports whether the identity may change data on the page.
func CanEdit(identity Identity, page Page) bool {
	if !CanView(identity, page) {
		return false
	}

	rule := pageRules[page]
	if rule.ownerOnlyEdit && identity.Kind != IdentityOwner {
		return false
	}

	return true
}
