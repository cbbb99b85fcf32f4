package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type UpdateBusinessRequest struct {
	Name     string                  `json:"name"`
	Settings BusinessSettingsRequest `json:"settings"`
}

type BusinessSettingsRequest struct {
	POSMode    string `json:"pos_mode"`
	AutoLogout bool   `json:"auto_logout"`
}

func (req *UpdateBusinessRequest) Validate() error {
	if err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
	); err != nil {
		return err
	}

	return validation.ValidateStruct(
		&req.Settings,
		validation.Field(&req.Settings.POSMode, validation.Required, validation.In("simple", "calculator")),
	)
}
