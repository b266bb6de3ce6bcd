package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Arss011/network-toolkit-management-api/db"
	"github.com/Arss011/network-toolkit-management-api/models"
	"github.com/Arss011/network-toolkit-management-api/validation"
)

type LoanController struct{ *Srv }

func NewLoanController(s *Srv) *LoanController { return &LoanController{Srv: s} }

type loanCreateReq struct {
	UserID     uint      `json:"user_id"`
	ToolkitID  uint      `json:"toolkit_id"`
	Quantity   int       `json:"quantity"`
	BorrowDate time.Time `json:"borrow_date"`
	DueDate    time.Time `json:"due_date"`
	Purpose    string    `json:"purpose"`
	Notes      string    `json:"notes"`
	Status     string    `json:"status"` // accepted but ignored; a new loan is always borrowed
}

// Create validates the request and commits the loan. The availability
// check happens inside the repo transaction under a toolkit row lock;
// whatever estimate the client validated against is not trusted here.
func (lc *LoanController) Create(c *gin.Context) {
	var in loanCreateReq
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	errs := validation.ValidateLoan(validation.LoanForm{
		UserID:     in.UserID,
		ToolkitID:  in.ToolkitID,
		Quantity:   in.Quantity,
		BorrowDate: in.BorrowDate,
		DueDate:    in.DueDate,
		Purpose:    in.Purpose,
		Notes:      in.Notes,
	}, nil)
	if in.UserID != 0 {
		if u, err := lc.Repo.FindUserByID(c.Request.Context(), in.UserID); err != nil {
			errs["user_id"] = "user not found"
		} else if !u.IsActive {
			errs["user_id"] = "user is inactive"
		}
	}
	if !errs.Valid() {
		failValidation(c, errs)
		return
	}

	loan := &models.Loan{
		UserID:     in.UserID,
		ToolkitID:  in.ToolkitID,
		Quantity:   in.Quantity,
		BorrowDate: in.BorrowDate,
		DueDate:    in.DueDate,
		Purpose:    in.Purpose,
		Notes:      in.Notes,
	}
	if err := lc.Repo.CreateLoan(c.Request.Context(), loan); err != nil {
		switch {
		case errors.Is(err, db.ErrToolkitNotFound):
			fail(c, http.StatusNotFound, "toolkit not found")
		case errors.Is(err, db.ErrInsufficientStock):
			fail(c, http.StatusConflict, "insufficient stock for this loan")
		default:
			fail(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	uid, uname := actor(c)
	detail := fmt.Sprintf("toolkit %d x%d", loan.ToolkitID, loan.Quantity)
	_, _ = lc.Repo.LogAction(c.Request.Context(), uid, uname, "loan.create", "loan", loan.ID, &detail)

	ok(c, http.StatusCreated, loan)
}

func (lc *LoanController) Get(c *gin.Context) {
	id, okv := idParam(c)
	if !okv {
		return
	}
	loan, err := lc.Repo.FindLoanByID(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusNotFound, "loan not found")
		return
	}
	ok(c, http.StatusOK, loan)
}

func (lc *LoanController) List(c *gin.Context) {
	page, size := pageParams(c)
	userID, _ := strconv.ParseUint(c.Query("user_id"), 10, 64)

	res, err := lc.Repo.ListLoans(c.Request.Context(), db.ListLoansQuery{
		Search: c.Query("search_term"),
		Status: c.Query("status"),
		UserID: uint(userID),
		Page:   page,
		Size:   size,
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	okList(c, res.Loans, page, size, res.Total)
}

type loanUpdateReq struct {
	BorrowDate time.Time `json:"borrow_date"`
	DueDate    time.Time `json:"due_date"`
	Purpose    string    `json:"purpose"`
	Notes      string    `json:"notes"`
}

// Update edits the mutable fields of an open loan. Borrower, toolkit
// and quantity are fixed at creation.
func (lc *LoanController) Update(c *gin.Context) {
	id, okv := idParam(c)
	if !okv {
		return
	}
	var in loanUpdateReq
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	existing, err := lc.Repo.FindLoanByID(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusNotFound, "loan not found")
		return
	}

	errs := validation.ValidateLoan(validation.LoanForm{
		UserID:     existing.UserID,
		ToolkitID:  existing.ToolkitID,
		Quantity:   existing.Quantity,
		BorrowDate: in.BorrowDate,
		DueDate:    in.DueDate,
		Purpose:    in.Purpose,
		Notes:      in.Notes,
	}, nil)
	if !errs.Valid() {
		failValidation(c, errs)
		return
	}

	loan, err := lc.Repo.UpdateLoan(c.Request.Context(), id, in.BorrowDate, in.DueDate, in.Purpose, in.Notes)
	if err != nil {
		if errors.Is(err, db.ErrLoanAlreadyReturned) {
			fail(c, http.StatusConflict, "a returned loan can no longer be edited")
			return
		}
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, http.StatusOK, loan)
}

// Return closes the loan, stamping returned_date. Terminal: a second
// return is a conflict.
func (lc *LoanController) Return(c *gin.Context) {
	id, okv := idParam(c)
	if !okv {
		return
	}
	loan, err := lc.Repo.ReturnLoan(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, db.ErrLoanAlreadyReturned):
			fail(c, http.StatusConflict, "loan already returned")
		case errors.Is(err, gorm.ErrRecordNotFound):
			fail(c, http.StatusNotFound, "loan not found")
		default:
			fail(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	uid, uname := actor(c)
	_, _ = lc.Repo.LogAction(c.Request.Context(), uid, uname, "loan.return", "loan", loan.ID, nil)

	ok(c, http.StatusOK, loan)
}

func (lc *LoanController) Delete(c *gin.Context) {
	id, okv := idParam(c)
	if !okv {
		return
	}
	if err := lc.Repo.DeleteLoan(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "loan not found")
			return
		}
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	uid, uname := actor(c)
	_, _ = lc.Repo.LogAction(c.Request.Context(), uid, uname, "loan.delete", "loan", id, nil)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Stats backs the dashboard counters.
func (lc *LoanController) Stats(c *gin.Context) {
	stats, err := lc.Repo.CountLoans(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, http.StatusOK, stats)
}
