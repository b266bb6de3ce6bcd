package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Arss011/network-toolkit-management-api/models"
	"github.com/Arss011/network-toolkit-management-api/validation"
)

// SubmitLoan runs the two-phase loan submission protocol:
//
//  1. field validation against the advisory availability estimate the
//     caller has cached (cheap, catches typos without a round trip);
//  2. a mandatory re-fetch of the toolkit's current available count
//     immediately before the POST, because the estimate can go stale
//     between page load and submit.
//
// The re-check is an eventually-consistent read, not a reservation: the
// server re-derives availability once more under a row lock when it
// commits. Any failure aborts locally with a field error; nothing is
// retried.
//
// Field-level problems come back in the ErrorMap; err is reserved for
// transport or server failures that have no field to land on.
func (c *Client) SubmitLoan(ctx context.Context, form validation.LoanForm, advisoryAvailable *int) (*models.Loan, validation.ErrorMap, error) {
	if errs := validation.ValidateLoan(form, advisoryAvailable); !errs.Valid() {
		return nil, errs, nil
	}

	// Phase two: authoritative re-check.
	tk, err := c.Toolkit(ctx, form.ToolkitID)
	if err != nil {
		if IsNotFound(err) {
			return nil, validation.ErrorMap{"toolkit_id": "toolkit not found"}, nil
		}
		return nil, validation.ErrorMap{"quantity": "could not verify stock availability"}, nil
	}
	if avail := tk.AvailableQuantity(); avail < form.Quantity {
		return nil, validation.ErrorMap{
			"quantity": fmt.Sprintf("insufficient stock. Available: %d, requested: %d", avail, form.Quantity),
		}, nil
	}

	loan, err := c.CreateLoan(ctx, LoanRequest{
		UserID:     form.UserID,
		ToolkitID:  form.ToolkitID,
		Quantity:   form.Quantity,
		BorrowDate: form.BorrowDate,
		DueDate:    form.DueDate,
		Purpose:    form.Purpose,
		Notes:      form.Notes,
	})
	if err != nil {
		// The server may still lose the race we just checked for.
		if apiErr, ok := err.(*APIError); ok {
			switch apiErr.StatusCode {
			case http.StatusConflict:
				return nil, validation.ErrorMap{"quantity": apiErr.Message}, nil
			case http.StatusNotFound:
				return nil, validation.ErrorMap{"toolkit_id": apiErr.Message}, nil
			}
		}
		return nil, nil, err
	}
	return loan, nil, nil
}
