package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// RegistrationStatus represents the review status of a registration.
type RegistrationStatus string

const (
	RegistrationStatusPending  RegistrationStatus = "pending"
	RegistrationStatusApproved RegistrationStatus = "approved"
	RegistrationStatusRejected RegistrationStatus = "rejected"
)

// PaymentStatus represents whether the delegate fee has been paid.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// Preferences holds the delegate's ranked committee choices. Stored as a
// JSON column, not foreign-key checked.
type Preferences struct {
	Committee1        string `json:"committee1"`
	Committee2        string `json:"committee2,omitempty"`
	Committee3        string `json:"committee3,omitempty"`
	CountryPreference string `json:"country_preference,omitempty"`
}

// Value implements driver.Valuer for the JSON column.
func (p Preferences) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner for the JSON column.
func (p *Preferences) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	case nil:
		*p = Preferences{}
		return nil
	default:
		return fmt.Errorf("unsupported preferences column type %T", src)
	}
}

// Registration is one delegate submission. UniqueCode is minted server-side
// at creation and is the lookup key for check-in verification; it, the
// owning user, the fee snapshot, and the creation timestamp never change
// after insert.
type Registration struct {
	ID                  uint               `json:"id" gorm:"primaryKey"`
	UserID              uint               `json:"user_id" gorm:"not null;index"`
	CommitteeID         *uint              `json:"committee_id,omitempty" gorm:"index"`
	Preferences         Preferences        `json:"preferences" gorm:"type:json"`
	Status              RegistrationStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	PaymentStatus       PaymentStatus      `json:"payment_status" gorm:"type:varchar(20);not null;default:'unpaid'"`
	UniqueCode          string             `json:"unique_code" gorm:"size:6;uniqueIndex;not null"`
	FeeAmount           decimal.Decimal    `json:"fee_amount" gorm:"type:decimal(20,2);not null"`
	DietaryRestrictions string             `json:"dietary_restrictions,omitempty" gorm:"size:500"`
	EmergencyContact    string             `json:"emergency_contact,omitempty" gorm:"size:255"`
	TshirtSize          string             `json:"tshirt_size,omitempty" gorm:"size:10"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`

	// Relations
	User      User       `json:"-" gorm:"foreignKey:UserID"`
	Committee *Committee `json:"-" gorm:"foreignKey:CommitteeID"`
}
