package models

import (
	"time"

	"gorm.io/gorm"
)

// CancelWindow is how long before the booked hour a client may still
// cancel.
const CancelWindow = 2 * time.Hour

// Appointment books a provider's one-hour slot for a client. Date is
// always truncated to the top of the hour. A canceled appointment keeps
// its row; CanceledAt marks the terminal state.
type Appointment struct {
	BaseModel
	UserID     uint       `gorm:"not null;index" json:"user_id"`
	ProviderID uint       `gorm:"not null;index:idx_appointments_provider_date" json:"provider_id"`
	Date       time.Time  `gorm:"not null;index:idx_appointments_provider_date" json:"date"`
	CanceledAt *time.Time `json:"canceled_at"`

	Past       bool `gorm:"-" json:"past"`
	Cancelable bool `gorm:"-" json:"cancelable"`

	User     *User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"user,omitempty"`
	Provider *User `gorm:"foreignKey:ProviderID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"provider,omitempty"`
}

// ComputeFlags derives Past and Cancelable relative to now.
func (a *Appointment) ComputeFlags(now time.Time) {
	a.Past = a.Date.Before(now)
	a.Cancelable = a.Date.Add(-CancelWindow).After(now)
}

// AfterFind keeps the derived flags in sync on every load.
func (a *Appointment) AfterFind(*gorm.DB) error {
	a.ComputeFlags(time.Now())
	return nil
}

// Active reports whether the appointment still occupies its slot.
func (a *Appointment) Active() bool {
	return a.CanceledAt == nil
}
