package response

import "github.com/ledgerone/ledgerone-api/internal/domain"

type LoginResponse struct {
	Token    string          `json:"token"`
	Identity SessionResponse `json:"identity"`
}

// SessionResponse is the wire form of the resolved identity.
type SessionResponse struct {
	Role     string           `json:"role"`
	Owner    *domain.Owner    `json:"owner,omitempty"`
	Business *domain.Business `json:"business,omitempty"`
	Employee *domain.Employee `json:"employee,omitempty"`
}

func NewSessionResponse(identity domain.Identity) SessionResponse {
	role := "unauthenticated"
	switch identity.Kind {
	case domain.IdentityOwner:
		role = "owner"
	case domain.IdentityEmployee:
		role = "employee"
	}

	return SessionResponse{
		Role:     role,
		Owner:    identity.Owner,
		Business: identity.Business,
		Employee: identity.Employee,
	}
}
