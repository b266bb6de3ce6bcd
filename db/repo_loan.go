package db

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Arss011/network-toolkit-management-api/models"
)

var (
	ErrToolkitNotFound     = errors.New("toolkit not found")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrLoanAlreadyReturned = errors.New("loan already returned")
)

// openLoanQuantity sums, inside tx, the quantities currently out on
// non-returned loans of a toolkit. Callers that need the figure to be
// authoritative must hold a row lock on the toolkit.
func openLoanQuantity(tx *gorm.DB, toolkitID uint) (int, error) {
	var out int
	err := tx.Model(&models.Loan{}).
		Where("toolkit_id = ? AND returned_date IS NULL", toolkitID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&out).Error
	return out, err
}

// CreateLoan commits a loan request. The toolkit row is locked for the
// duration of the transaction, so two concurrent requests cannot both
// pass the availability check: available is re-derived under the lock,
// not trusted from the caller.
func (r *Repo) CreateLoan(ctx context.Context, l *models.Loan) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tk models.Toolkit
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&tk, "id = ?", l.ToolkitID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrToolkitNotFound
			}
			return err
		}

		out, err := openLoanQuantity(tx, tk.ID)
		if err != nil {
			return err
		}
		if tk.Quantity-out < l.Quantity {
			return ErrInsufficientStock
		}

		l.Status = models.LoanStatusBorrowed
		l.ReturnedDate = nil
		return tx.Create(l).Error
	})
}

// ReturnLoan stamps returned_date and flips the stored status. A loan
// is terminal once returned; a second return is rejected rather than
// treated as a no-op so the caller learns the record was already closed.
func (r *Repo) ReturnLoan(ctx context.Context, loanID uint) (*models.Loan, error) {
	var l models.Loan
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&l, "id = ?", loanID).Error; err != nil {
			return err
		}
		if l.ReturnedDate != nil {
			return ErrLoanAlreadyReturned
		}
		now := time.Now().UTC()
		l.ReturnedDate = &now
		l.Status = models.LoanStatusReturned
		return tx.Save(&l).Error
	})
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// UpdateLoan edits the mutable fields of an open loan. user_id,
// toolkit_id and quantity are fixed at creation; returned loans are no
// longer editable at all.
func (r *Repo) UpdateLoan(ctx context.Context, loanID uint, borrowDate, dueDate time.Time, purpose, notes string) (*models.Loan, error) {
	var l models.Loan
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&l, "id = ?", loanID).Error; err != nil {
			return err
		}
		if l.ReturnedDate != nil {
			return ErrLoanAlreadyReturned
		}
		l.BorrowDate = borrowDate
		l.DueDate = dueDate
		l.Purpose = purpose
		l.Notes = notes
		return tx.Save(&l).Error
	})
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// DeleteLoan removes a loan record. Deleting an open loan releases its
// stock implicitly, since availability is derived from open loans.
func (r *Repo) DeleteLoan(ctx context.Context, loanID uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Loan{}, "id = ?", loanID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repo) FindLoanByID(ctx context.Context, id uint) (*models.Loan, error) {
	var l models.Loan
	if err := r.DB.WithContext(ctx).
		Preload("User").Preload("Toolkit").
		First(&l, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

type ListLoansQuery struct {
	Search string
	Status string // "", "active", "overdue", "completed"
	UserID uint
	Page   int
	Size   int
}

type ListLoansResult struct {
	Loans []models.Loan `json:"loans"`
	Total int64         `json:"total"`
}

// ListLoans pages through loans with an optional derived-status filter.
// The filter mirrors Loan.DeriveStatus in SQL: a recorded return wins,
// then the due date against the database clock.
func (r *Repo) ListLoans(ctx context.Context, q ListLoansQuery) (ListLoansResult, error) {
	q.Page, q.Size = clampPage(q.Page, q.Size)

	tx := r.DB.WithContext(ctx).Model(&models.Loan{}).
		Joins("LEFT JOIN users ON users.id = loans.user_id").
		Joins("LEFT JOIN toolkits ON toolkits.id = loans.toolkit_id")

	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		tx = tx.Where(
			"LOWER(users.username) LIKE ? OR LOWER(users.full_name) LIKE ? OR LOWER(toolkits.name) LIKE ? OR LOWER(loans.purpose) LIKE ?",
			like, like, like, like,
		)
	}
	switch q.Status {
	case models.StatusActive:
		tx = tx.Where("loans.returned_date IS NULL AND loans.due_date >= NOW()")
	case models.StatusOverdue:
		tx = tx.Where("loans.returned_date IS NULL AND loans.due_date < NOW()")
	case models.StatusCompleted:
		tx = tx.Where("loans.returned_date IS NOT NULL")
	}
	if q.UserID != 0 {
		tx = tx.Where("loans.user_id = ?", q.UserID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return ListLoansResult{}, err
	}

	var loans []models.Loan
	if err := tx.
		Preload("User").Preload("Toolkit").
		Order("loans.borrow_date DESC").
		Offset((q.Page - 1) * q.Size).
		Limit(q.Size).
		Find(&loans).Error; err != nil {
		return ListLoansResult{}, err
	}
	return ListLoansResult{Loans: loans, Total: total}, nil
}

// LoanStats are the dashboard counters.
type LoanStats struct {
	Total     int64 `json:"total"`
	Active    int64 `json:"active"`
	Overdue   int64 `json:"overdue"`
	Completed int64 `json:"completed"`
}

func (r *Repo) CountLoans(ctx context.Context) (*LoanStats, error) {
	var s LoanStats
	base := func() *gorm.DB { return r.DB.WithContext(ctx).Model(&models.Loan{}) }

	if err := base().Count(&s.Total).Error; err != nil {
		return nil, err
	}
	if err := base().Where("returned_date IS NULL AND due_date >= NOW()").Count(&s.Active).Error; err != nil {
		return nil, err
	}
	if err := base().Where("returned_date IS NULL AND due_date < NOW()").Count(&s.Overdue).Error; err != nil {
		return nil, err
	}
	s.Completed = s.Total - s.Active - s.Overdue
	return &s, nil
}
