package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Arss011/network-toolkit-management-api/db"
	"github.com/Arss011/network-toolkit-management-api/models"
)

// LoanListParams filter the loan list.
type LoanListParams struct {
	Page       int
	PageSize   int
	SearchTerm string
	Status     string // active, overdue, completed
	UserID     uint
}

// LoanList is one page of loans.
type LoanList struct {
	Data       []models.Loan `json:"data"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
	TotalCount int64         `json:"total_count"`
}

func (c *Client) Loans(ctx context.Context, p LoanListParams) (*LoanList, error) {
	q := pageQuery(p.Page, p.PageSize)
	if p.SearchTerm != "" {
		q.Set("search_term", p.SearchTerm)
	}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.UserID != 0 {
		q.Set("user_id", strconv.FormatUint(uint64(p.UserID), 10))
	}

	var res LoanList
	if err := c.do(ctx, http.MethodGet, "/api/loans", q, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Loan(ctx context.Context, id uint) (*models.Loan, error) {
	var res struct {
		Data models.Loan `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/loans/%d", id), nil, nil, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// LoanRequest is the create payload. Status is always sent as borrowed,
// matching what the server stores for a fresh loan.
type LoanRequest struct {
	UserID     uint      `json:"user_id"`
	ToolkitID  uint      `json:"toolkit_id"`
	Quantity   int       `json:"quantity"`
	BorrowDate time.Time `json:"borrow_date"`
	DueDate    time.Time `json:"due_date"`
	Purpose    string    `json:"purpose"`
	Notes      string    `json:"notes"`
	Status     string    `json:"status"`
}

func (c *Client) CreateLoan(ctx context.Context, req LoanRequest) (*models.Loan, error) {
	req.Status = models.LoanStatusBorrowed
	var res struct {
		Data models.Loan `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/loans", nil, req, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// LoanUpdate carries the fields that stay editable on an open loan.
type LoanUpdate struct {
	BorrowDate time.Time `json:"borrow_date"`
	DueDate    time.Time `json:"due_date"`
	Purpose    string    `json:"purpose"`
	Notes      string    `json:"notes"`
}

func (c *Client) UpdateLoan(ctx context.Context, id uint, upd LoanUpdate) (*models.Loan, error) {
	var res struct {
		Data models.Loan `json:"data"`
	}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/loans/%d", id), nil, upd, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func (c *Client) ReturnLoan(ctx context.Context, id uint) (*models.Loan, error) {
	var res struct {
		Data models.Loan `json:"data"`
	}
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/loans/%d/return", id), nil,
		map[string]string{"status": models.LoanStatusReturned}, &res)
	if err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func (c *Client) DeleteLoan(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/loans/%d", id), nil, nil, nil)
}

func (c *Client) LoanStats(ctx context.Context) (*db.LoanStats, error) {
	var res struct {
		Data db.LoanStats `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/loans/stats", nil, nil, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func pageQuery(page, size int) url.Values {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 10
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(size))
	return q
}
