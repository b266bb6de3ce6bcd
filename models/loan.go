package models

import "time"

const LoanTable = "loans"

// Stored loan states. "borrowed" covers both active and overdue; which
// one applies is a function of the clock, not a column (see DeriveStatus).
const (
	LoanStatusBorrowed = "borrowed"
	LoanStatusReturned = "returned"
)

// Derived display states.
const (
	StatusActive    = "active"
	StatusOverdue   = "overdue"
	StatusCompleted = "completed"
)

type Loan struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	UserID    uint `gorm:"index;not null" json:"user_id"`    // immutable after create
	ToolkitID uint `gorm:"index;not null" json:"toolkit_id"` // immutable after create
	Quantity  int  `gorm:"not null" json:"quantity"`

	BorrowDate   time.Time  `gorm:"index;not null" json:"borrow_date"`
	DueDate      time.Time  `gorm:"index;not null" json:"due_date"`
	ReturnedDate *time.Time `gorm:"index" json:"returned_date,omitempty"`

	Purpose string `gorm:"size:200" json:"purpose,omitempty"`
	Notes   string `gorm:"size:500" json:"notes,omitempty"`
	Status  string `gorm:"size:20;not null;default:'borrowed'" json:"status"`

	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Toolkit *Toolkit `gorm:"foreignKey:ToolkitID" json:"toolkit,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Loan) TableName() string { return LoanTable }

// StatusInfo is the display form of a loan's state.
type StatusInfo struct {
	Status     string `json:"status"`
	Label      string `json:"label"`
	ColorClass string `json:"color_class"`
}

// DeriveStatus computes the display status of a loan at the given
// instant. A recorded return always wins: a loan returned after its due
// date is completed, never overdue. Otherwise the loan is overdue once
// now passes the due date, and active before that.
func (l *Loan) DeriveStatus(now time.Time) StatusInfo {
	if l.ReturnedDate != nil {
		return StatusInfo{Status: StatusCompleted, Label: "Returned", ColorClass: "bg-green-100 text-green-800"}
	}
	if now.After(l.DueDate) {
		return StatusInfo{Status: StatusOverdue, Label: "Overdue", ColorClass: "bg-red-100 text-red-800"}
	}
	return StatusInfo{Status: StatusActive, Label: "Active", ColorClass: "bg-blue-100 text-blue-800"}
}

// IsReturned reports whether the loan reached its terminal state.
func (l *Loan) IsReturned() bool { return l.ReturnedDate != nil }
