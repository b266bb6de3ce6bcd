package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validToolkitForm() ToolkitForm {
	return ToolkitForm{
		Name:      "Crimping Kit",
		SKU:       "NTK-001",
		Quantity:  10,
		Unit:      "piece",
		Brand:     "Fluke",
		Condition: "good",
	}
}

func TestValidateToolkit_Valid(t *testing.T) {
	errs := ValidateToolkit(validToolkitForm())
	assert.True(t, errs.Valid(), "unexpected errors: %v", errs)
}

func TestValidateToolkit_QuantityBounds(t *testing.T) {
	f := validToolkitForm()

	f.Quantity = 0 // zero stock is a legal catalog state
	assert.NotContains(t, ValidateToolkit(f), "quantity")

	f.Quantity = 9999
	assert.NotContains(t, ValidateToolkit(f), "quantity")

	f.Quantity = -1
	assert.Contains(t, ValidateToolkit(f), "quantity")

	f.Quantity = 10000
	assert.Contains(t, ValidateToolkit(f), "quantity")
}

func TestValidateToolkit_Condition(t *testing.T) {
	f := validToolkitForm()
	f.Condition = "rusty"
	assert.Contains(t, ValidateToolkit(f), "condition")
}

func TestValidateToolkit_CollectsAllViolations(t *testing.T) {
	errs := ValidateToolkit(ToolkitForm{Quantity: -1})
	for _, field := range []string{"name", "sku", "quantity", "unit", "brand", "condition"} {
		assert.Contains(t, errs, field)
	}
}
