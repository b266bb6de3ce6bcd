package validation

import (
	"strings"

	"github.com/Arss011/network-toolkit-management-api/models"
)

const (
	ToolkitQuantityMin = 0
	ToolkitQuantityMax = 9999
)

type ToolkitForm struct {
	Name      string
	SKU       string
	Quantity  int
	Unit      string
	Brand     string
	Condition string
}

func ValidateToolkit(f ToolkitForm) ErrorMap {
	errs := ErrorMap{}

	switch {
	case strings.TrimSpace(f.Name) == "":
		errs["name"] = "toolkit name is required"
	case len(f.Name) < 3:
		errs["name"] = "toolkit name must be at least 3 characters"
	}

	switch {
	case strings.TrimSpace(f.SKU) == "":
		errs["sku"] = "SKU is required"
	case len(f.SKU) < 3:
		errs["sku"] = "SKU must be at least 3 characters"
	}

	switch {
	case f.Quantity < ToolkitQuantityMin:
		errs["quantity"] = "stock quantity cannot be negative"
	case f.Quantity > ToolkitQuantityMax:
		errs["quantity"] = "stock quantity must be at most 9999"
	}

	if strings.TrimSpace(f.Unit) == "" {
		errs["unit"] = "unit is required"
	}
	if strings.TrimSpace(f.Brand) == "" {
		errs["brand"] = "brand is required"
	}
	if f.Condition == "" {
		errs["condition"] = "condition is required"
	} else if !models.ValidCondition(f.Condition) {
		errs["condition"] = "condition must be excellent, good, fair or poor"
	}

	return errs
}
