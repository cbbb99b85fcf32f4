package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type EmployeePermissionsRequest struct {
	POSAccess       bool `json:"pos_access"`
	InventoryAccess bool `json:"inventory_access"`
	DashboardAccess bool `json:"dashboard_access"`
}

type CreateEmployeeRequest struct {
	Name        string                     `json:"name"`
	Passcode    string                     `json:"passcode"`
	Permissions EmployeePermissionsRequest `json:"permissions"`
}

func (req *CreateEmployeeRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
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

// UpdateEmployeeRequest keeps the stored passcode when Passcode is blank.
type UpdateEmployeeRequest struct {
	Name        string                     `json:"name"`
	Passcode    string                     `json:"passcode"`
	Permissions EmployeePermissionsRequest `json:"permissions"`
	IsActive    bool                       `json:"is_active"`
}

func (req *UpdateEmployeeRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
	)
	if err != nil {
		return err
	}

	if req.Passcode != "" && !passcodeRegex.MatchString(req.Passcode) {
		return errInvalidPasscode
	}

	return nil
}
