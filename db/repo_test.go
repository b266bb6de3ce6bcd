package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Arss011/network-toolkit-management-api/models"
)

func newMockRepo(t *testing.T) (*Repo, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return NewRepo(gdb), mock
}

func TestFindUserByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "role", "is_active"}).
			AddRow(7, "jdoe", "user", true))

	u, err := repo.FindUserByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("FindUserByID returned error: %v", err)
	}
	if u.Username != "jdoe" {
		t.Errorf("Username = %q; want %q", u.Username, "jdoe")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestDeleteUserByID_ProtectsAdmin(t *testing.T) {
	repo, mock := newMockRepo(t)

	// Only the lookup runs; no DELETE may follow for the admin singleton.
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(1, models.AdminUsername))

	err := repo.DeleteUserByID(context.Background(), 1)
	if !errors.Is(err, ErrProtectedUser) {
		t.Fatalf("DeleteUserByID error = %v; want ErrProtectedUser", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestUpdateUser_ProtectsAdmin(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(1, models.AdminUsername))

	_, err := repo.UpdateUser(context.Background(), 1, map[string]any{"role": "user"})
	if !errors.Is(err, ErrProtectedUser) {
		t.Fatalf("UpdateUser error = %v; want ErrProtectedUser", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCreateLoan_InsufficientStock(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	// Toolkit row locked: 5 owned.
	mock.ExpectQuery(`SELECT (.+) FROM "toolkits"(.+)FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "quantity"}).AddRow(2, 5))
	// 4 already out on open loans, so only 1 is free.
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(quantity\), 0\) FROM "loans"`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(4))
	mock.ExpectRollback()

	err := repo.CreateLoan(context.Background(), &models.Loan{
		UserID:     1,
		ToolkitID:  2,
		Quantity:   3,
		BorrowDate: time.Now(),
		DueDate:    time.Now().Add(48 * time.Hour),
	})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("CreateLoan error = %v; want ErrInsufficientStock", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCreateLoan_ToolkitNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "toolkits"(.+)FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "quantity"}))
	mock.ExpectRollback()

	err := repo.CreateLoan(context.Background(), &models.Loan{
		UserID:     1,
		ToolkitID:  99,
		Quantity:   1,
		BorrowDate: time.Now(),
		DueDate:    time.Now().Add(48 * time.Hour),
	})
	if !errors.Is(err, ErrToolkitNotFound) {
		t.Fatalf("CreateLoan error = %v; want ErrToolkitNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestReturnLoan_AlreadyReturnedIsTerminal(t *testing.T) {
	repo, mock := newMockRepo(t)

	returned := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "loans"(.+)FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "toolkit_id", "quantity", "returned_date", "status"}).
			AddRow(5, 1, 2, 1, returned, models.LoanStatusReturned))
	mock.ExpectRollback()

	_, err := repo.ReturnLoan(context.Background(), 5)
	if !errors.Is(err, ErrLoanAlreadyReturned) {
		t.Fatalf("ReturnLoan error = %v; want ErrLoanAlreadyReturned", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
