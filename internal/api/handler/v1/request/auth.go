package request

import (
	"errors"
	"regexp"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const (
	// Lookaheads need regexp2; the stdlib engine doesn't support them.
	passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`
	passcodeRegexPattern = `^\d{4,6}$`
)

var (
	passwordRegex = regexp2.MustCompile(passwordRegexPattern, regexp2.None)
	passcodeRegex = regexp.MustCompile(passcodeRegexPattern)

	errInvalidPassword = errors.New("the password must be at least 8 characters and contain a letter and a number")
	errInvalidPasscode = errors.New("the passcode must be 4 to 6 digits")
)

type SignupRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	BusinessName string `json:"business_name"`
}

func (req *SignupRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.BusinessName, validation.Required, validation.Length(2, 100)),
	)
	if err != nil {
		return err
	}

	if ok, _ := passwordRegex.MatchString(req.Password); !ok {
		return errInvalidPassword
	}

	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
	)
}

type EmployeeLoginRequest struct {
	BusinessID uint   `json:"business_id"`
	EmployeeID uint   `json:"employee_id"`
	Passcode   string `json:"passcode"`
}

func (req *EmployeeLoginRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.BusinessID, validation.Required),
		validation.Field(&req.EmployeeID, validation.Required),
		validation.Field(&req.Passcode, validation.Required),
	)
	if err != nil {
		return err
	}

	if !passcodeRegex.MatchString(req.Passcode) {
		return errInvalidPasscode
	}

	return nil
}
