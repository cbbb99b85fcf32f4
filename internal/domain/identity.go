package domain

// IdentityKind tags the three mutually exclusive authentication states.
type IdentityKind int

const (
	IdentityUnauthenticated IdentityKind = iota
	IdentityOwner
	IdentityEmployee
)

// Identity is the single tagged value every permission check and handler
// switches on. An owner mid-signup has Kind == IdentityOwner with a nil
// Business until the business row exists. Employee is non-nil only for
// employee sessions.
type Identity struct {
	Kind     IdentityKind `json:"-"`
	Owner    *Owner       `json:"owner,omitempty"`
	Business *Business    `json:"business,omitempty"`
	Employee *Employee    `json:"employee,omitempty"`
}

func (i Identity) IsOwner() bool {
	return i.Kind == IdentityOwner
}

func (i Identity) IsEmployee() bool {
	return i.Kind == IdentityEmployee
}

// HasBusiness reports whether the identity is bound to an acting business.
func (i Identity) HasBusiness() bool {
	return i.Business != nil
}

// ActingEmployeeID returns the employee id to stamp on writes, or nil for
// owner-performed actions.
func (i Identity) ActingEmployeeID() *uint {
	if i.Kind == IdentityEmployee && i.Employee != nil {
		id := i.Employee.ID

		return &id
	}

	return nil
}
