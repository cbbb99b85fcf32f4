package jwthelper

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

const tokenLifespan = 24 * time.Hour

const (
	KindOwner    = "owner"
	KindEmployee = "employee"
)

// Claims carries the authenticated actor. Owner tokens set OwnerID;
// employee tokens set BusinessID and EmployeeID.
type Claims struct {
	jwt.RegisteredClaims
	Kind       string `json:"kind"`
	OwnerID    uint   `json:"owner_id,omitempty"`
	BusinessID uint   `json:"business_id,omitempty"`
	EmployeeID uint   `json:"employee_id,omitempty"`
	UserAgent  string `json:"user_agent"`
}

func GenerateOwnerToken(signingKey []byte, ownerID uint, userAgent string) (string, error) {
	return generate(signingKey, Claims{
		Kind:      KindOwner,
		OwnerID:   ownerID,
		UserAgent: userAgent,
	})
}

func GenerateEmployeeToken(signingKey []byte, businessID, employeeID uint, userAgent string) (string, error) {
	return generate(signingKey, Claims{
		Kind:       KindEmployee,
		BusinessID: businessID,
		EmployeeID: employeeID,
		UserAgent:  userAgent,
	})
}

func generate(signingKey []byte, claims Claims) (string, error) {
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifespan)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(signingKey)
	if err != nil {
		return "", err
	}

	return signed, nil
}

// ParseToken validates the signature and expiry and returns the claims.
func ParseToken(signingKey []byte, tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}

		return signingKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
