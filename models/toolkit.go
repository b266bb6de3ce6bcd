package models

import "time"

const ToolkitTable = "toolkits"

// Toolkit conditions.
const (
	ConditionExcellent = "excellent"
	ConditionGood      = "good"
	ConditionFair      = "fair"
	ConditionPoor      = "poor"
)

func ValidCondition(c string) bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}

type Toolkit struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Name          string  `gorm:"size:200;not null" json:"name"`
	SKU           string  `gorm:"column:sku;size:120;uniqueIndex;not null" json:"sku"`
	Description   string  `gorm:"size:500" json:"description,omitempty"`
	Quantity      int     `gorm:"not null;default:0" json:"quantity"` // total owned
	Unit          string  `gorm:"size:50;not null;default:'piece'" json:"unit"`
	Brand         string  `gorm:"size:120;not null" json:"brand"`
	Model         string  `gorm:"size:120" json:"model,omitempty"`
	SerialNumber  string  `gorm:"size:120" json:"serial_number,omitempty"`
	Condition     string  `gorm:"size:20;not null;default:'good'" json:"condition"`
	CategoryID    *uint   `gorm:"index" json:"category_id,omitempty"`
	PurchasePrice float64 `json:"purchase_price"`

	// Available is quantity minus the sum of quantities on open loans.
	// Derived per query, never stored.
	Available int `gorm:"->;-:migration" json:"available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Toolkit) TableName() string { return ToolkitTable }

// AvailableQuantity returns the server-reported available count,
// clamped so a missing or inconsistent value reads as 0.
func (t *Toolkit) AvailableQuantity() int {
	if t == nil || t.Available < 0 {
		return 0
	}
	return t.Available
}
