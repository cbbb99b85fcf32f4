package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ledgerone/ledgerone-api/internal/api/handler/v1/response"
	"github.com/ledgerone/ledgerone-api/internal/domain"
	"github.com/ledgerone/ledgerone-api/internal/pkg/jwthelper"
)

const identityKey = "identity"

var (
	errMissingToken    = errors.New("missing or malformed authorization header")
	errInvalidSession  = errors.New("invalid or expired session")
	errNoBusiness      = errors.New("no business for this account yet")
	errPageNotAllowed  = errors.New("you don't have access to this page")
	errOwnerOnlyAction = errors.New("only the owner can do this")
)

// SessionResolver turns verified token claims back into a live identity,
// so revoked employees and deleted accounts lose access immediately.
type SessionResolver interface {
	ResolveOwner(ctx context.Context, ownerID uint) (domain.Identity, error)
	ResolveEmployee(ctx context.Context, businessID, employeeID uint) (domain.Identity, error)
}

type Authenticator struct {
	signingKey []byte
	resolver   SessionResolver
}

func NewAuthenticator(signingKey string, resolver SessionResolver) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
		resolver:   resolver,
	}
}

// VerifyJWT authenticates the request and stores the resolved identity in
// the request context.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		const prefix = "Bearer "

		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, prefix) {
			abort(ctx, response.ErrUnauthorized(errMissingToken))

			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, strings.TrimPrefix(header, prefix))
		if err != nil {
			abort(ctx, response.ErrUnauthorized(errInvalidSession))

			return
		}

		var identity domain.Identity
		switch claims.Kind {
		case jwthelper.KindOwner:
			identity, err = a.resolver.ResolveOwner(ctx.Request.Context(), claims.OwnerID)
		case jwthelper.KindEmployee:
			identity, err = a.resolver.ResolveEmployee(ctx.Request.Context(), claims.BusinessID, claims.EmployeeID)
		default:
			err = jwthelper.ErrInvalidToken
		}
		if err != nil {
			abort(ctx, response.ErrUnauthorized(errInvalidSession))

			return
		}

		SetIdentity(ctx, identity)
		ctx.Next()
	}
}

// RequirePage allows the request when the identity may view any of the
// given pages, per the permission table.
func RequirePage(pages ...domain.Page) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		identity := GetIdentity(ctx)
		if !identity.HasBusiness() {
			abort(ctx, response.ErrForbidden(errNoBusiness))

			return
		}

		for _, page := range pages {
			if domain.CanView(identity, page) {
				ctx.Next()

				return
			}
		}

		abort(ctx, response.ErrForbidden(errPageNotAllowed))
	}
}

// RequirePageEdit allows the request when the identity may change data on
// the page. Some pages are view-only for employees even with the view flag.
func RequirePageEdit(page domain.Page) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		identity := GetIdentity(ctx)
		if !identity.HasBusiness() {
			abort(ctx, response.ErrForbidden(errNoBusiness))

			return
		}

		if !domain.CanEdit(identity, page) {
			abort(ctx, response.ErrForbidden(errPageNotAllowed))

			return
		}

		ctx.Next()
	}
}

// RequireOwner gates edit actions that stay owner-only regardless of
// employee permission flags.
func RequireOwner() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		identity := GetIdentity(ctx)
		if !identity.IsOwner() || !identity.HasBusiness() {
			abort(ctx, response.ErrForbidden(errOwnerOnlyAction))

			return
		}

		ctx.Next()
	}
}

func SetIdentity(ctx *gin.Context, identity domain.Identity) {
	ctx.Set(identityKey, identity)
}

func GetIdentity(ctx *gin.Context) domain.Identity {
	value, ok := ctx.Get(identityKey)
	if !ok {
		return domain.Identity{}
	}

	identity, ok := value.(domain.Identity)
	if !ok {
		return domain.Identity{}
	}

	return identity
}

func abort(ctx *gin.Context, err *response.Err) {
	response.RenderErr(ctx, err)
	ctx.Abort()
}
