package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validLoanForm() LoanForm {
	borrow := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return LoanForm{
		UserID:     1,
		ToolkitID:  2,
		Quantity:   1,
		BorrowDate: borrow,
		DueDate:    borrow.Add(72 * time.Hour),
	}
}

func TestValidateLoan_Valid(t *testing.T) {
	errs := ValidateLoan(validLoanForm(), nil)
	assert.True(t, errs.Valid(), "unexpected errors: %v", errs)
}

func TestValidateLoan_RequiredFields(t *testing.T) {
	errs := ValidateLoan(LoanForm{}, nil)
	for _, field := range []string{"user_id", "toolkit_id", "quantity", "borrow_date", "due_date"} {
		assert.Contains(t, errs, field)
	}
}

func TestValidateLoan_QuantityBounds(t *testing.T) {
	cases := []struct {
		quantity int
		wantErr  bool
	}{
		{0, true},
		{1, false},
		{999, false},
		{1000, true},
		{-5, true},
	}
	for _, tc := range cases {
		f := validLoanForm()
		f.Quantity = tc.quantity
		errs := ValidateLoan(f, nil)
		if tc.wantErr {
			assert.Contains(t, errs, "quantity", "quantity=%d", tc.quantity)
		} else {
			assert.NotContains(t, errs, "quantity", "quantity=%d", tc.quantity)
		}
	}
}

func TestValidateLoan_AvailabilitySoftBound(t *testing.T) {
	available := 3

	f := validLoanForm()
	f.Quantity = 4
	errs := ValidateLoan(f, &available)
	assert.Contains(t, errs, "quantity")

	f.Quantity = 3
	errs = ValidateLoan(f, &available)
	assert.NotContains(t, errs, "quantity")
}

func TestValidateLoan_DueDateMustFollowBorrowDate(t *testing.T) {
	f := validLoanForm()

	f.DueDate = f.BorrowDate.Add(-time.Hour)
	errs := ValidateLoan(f, nil)
	assert.Contains(t, errs, "due_date")

	// Equal timestamps are not strictly after either.
	f.DueDate = f.BorrowDate
	errs = ValidateLoan(f, nil)
	assert.Contains(t, errs, "due_date")
}

func TestValidateLoan_DateErrorIndependentOfOtherFields(t *testing.T) {
	// Every other field broken too: the due_date violation must still
	// be reported on its own key.
	f := LoanForm{
		Quantity:   5000,
		BorrowDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		DueDate:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	errs := ValidateLoan(f, nil)
	assert.Contains(t, errs, "due_date")
	assert.Contains(t, errs, "user_id")
	assert.Contains(t, errs, "quantity")
}

func TestValidateLoan_TextLimits(t *testing.T) {
	f := validLoanForm()
	f.Purpose = string(make([]byte, LoanPurposeMax+1))
	f.Notes = string(make([]byte, LoanNotesMax+1))
	errs := ValidateLoan(f, nil)
	assert.Contains(t, errs, "purpose")
	assert.Contains(t, errs, "notes")

	f.Purpose = string(make([]byte, LoanPurposeMax))
	f.Notes = string(make([]byte, LoanNotesMax))
	errs = ValidateLoan(f, nil)
	assert.True(t, errs.Valid(), "unexpected errors: %v", errs)
}
