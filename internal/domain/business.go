package domain

import "time"

type POSMode string

const (
	POSModeSimple     POSMode = "simple"
	POSModeCalculator POSMode = "calculator"
)

// BusinessSettings mirrors the per-business preferences edited on the settings page.
type BusinessSettings struct {
	POSMode    POSMode `json:"pos_mode"`
	AutoLogout bool    `json:"auto_logout"`
}

type Business struct {
	ID        uint             `json:"id"`
	Name      string           `json:"name"`
	OwnerID   uint             `json:"owner_id"`
	Settings  BusinessSettings `json:"settings"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Owner is the business's primary account holder.
type Owner struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
