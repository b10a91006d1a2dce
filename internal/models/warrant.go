package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// WarrantType distinguishes what a warrant authorizes.
type WarrantType string

const (
	WarrantTypeArrest WarrantType = "arrest"
	WarrantTypeSearch WarrantType = "search"
	WarrantTypeBoth   WarrantType = "both"
)

// Valid reports whether t is a known warrant type.
func (t WarrantType) Valid() bool {
	return t == WarrantTypeArrest || t == WarrantTypeSearch || t == WarrantTypeBoth
}

// WarrantStatus defines the validity state of a warrant.
type WarrantStatus string

const (
	WarrantStatusActive  WarrantStatus = "active"
	WarrantStatusRevoked WarrantStatus = "revoked"
	WarrantStatusExpired WarrantStatus = "expired"
)

// Articles is a list of penal-code article references stored as a JSON column.
type Articles []string

// Value implements driver.Valuer.
func (a Articles) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	raw, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// Scan implements sql.Scanner.
func (a *Articles) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*a = nil
		return nil
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return fmt.Errorf("articles: unsupported scan type %T", src)
	}
}

// Warrant is a court-issued arrest or search authorization. Warrants are the
// one entity with a hard-delete policy: the issuer or a tech admin may remove
// them outright.
type Warrant struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	WarrantNumber string        `gorm:"size:32;not null;uniqueIndex" json:"warrant_number"`
	TargetName    string        `gorm:"size:120;not null" json:"target_name"`
	WarrantType   WarrantType   `gorm:"type:varchar(8);not null" json:"warrant_type"`
	Reason        string        `gorm:"type:text;not null" json:"reason"`
	Articles      Articles      `gorm:"type:text" json:"articles"`
	ValidUntil    *time.Time    `json:"valid_until,omitempty"`
	Status        WarrantStatus `gorm:"type:varchar(10);not null;default:'active';index" json:"status"`
	IssuedByID    uint          `gorm:"not null;index" json:"issued_by_id"`
	IssuedBy      *Profile      `gorm:"foreignKey:IssuedByID" json:"issued_by,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Warrant) TableName() string {
	return "warrants"
}
