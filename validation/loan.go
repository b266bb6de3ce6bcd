package validation

import (
	"fmt"
	"time"
)

// Static quantity bounds for a single loan.
const (
	LoanQuantityMin = 1
	LoanQuantityMax = 999
)

const (
	LoanPurposeMax = 200
	LoanNotesMax   = 500
)

// LoanForm is the submittable state of a loan request. Zero time values
// mean the field was left empty.
type LoanForm struct {
	UserID     uint
	ToolkitID  uint
	Quantity   int
	BorrowDate time.Time
	DueDate    time.Time
	Purpose    string
	Notes      string
}

// ValidateLoan checks every rule independently and returns all
// violations. available, when non-nil, is the advisory availability
// estimate for the selected toolkit; the bound it imposes is soft and is
// re-validated authoritatively before commit.
func ValidateLoan(f LoanForm, available *int) ErrorMap {
	errs := ErrorMap{}

	if f.UserID == 0 {
		errs["user_id"] = "user is required"
	}
	if f.ToolkitID == 0 {
		errs["toolkit_id"] = "toolkit is required"
	}

	switch {
	case f.Quantity < LoanQuantityMin:
		errs["quantity"] = fmt.Sprintf("quantity must be at least %d", LoanQuantityMin)
	case f.Quantity > LoanQuantityMax:
		errs["quantity"] = fmt.Sprintf("quantity must be at most %d", LoanQuantityMax)
	case f.ToolkitID != 0 && available != nil && f.Quantity > *available:
		errs["quantity"] = fmt.Sprintf("quantity exceeds available stock. Available: %d", *available)
	}

	if f.BorrowDate.IsZero() {
		errs["borrow_date"] = "borrow date is required"
	}
	if f.DueDate.IsZero() {
		errs["due_date"] = "due date is required"
	} else if !f.BorrowDate.IsZero() && !f.DueDate.After(f.BorrowDate) {
		errs["due_date"] = "due date must be after the borrow date"
	}

	if len(f.Purpose) > LoanPurposeMax {
		errs["purpose"] = fmt.Sprintf("purpose must be at most %d characters", LoanPurposeMax)
	}
	if len(f.Notes) > LoanNotesMax {
		errs["notes"] = fmt.Sprintf("notes must be at most %d characters", LoanNotesMax)
	}

	return errs
}
