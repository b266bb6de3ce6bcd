package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arss011/network-toolkit-management-api/validation"
)

func submitForm(toolkitID uint, quantity int) validation.LoanForm {
	borrow := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return validation.LoanForm{
		UserID:     1,
		ToolkitID:  toolkitID,
		Quantity:   quantity,
		BorrowDate: borrow,
		DueDate:    borrow.Add(72 * time.Hour),
	}
}

// submitServer fakes the two endpoints the protocol touches and counts
// how often each was hit.
type submitServer struct {
	*httptest.Server
	gets  atomic.Int64
	posts atomic.Int64
}

func newSubmitServer(t *testing.T, available int, createStatus int, createBody string) *submitServer {
	s := &submitServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/toolkits/2":
			s.gets.Add(1)
			fmt.Fprintf(w, `{"success":true,"data":{"id":2,"name":"Crimping Kit","quantity":10,"available":%d}}`, available)
		case r.Method == http.MethodPost && r.URL.Path == "/api/loans":
			s.posts.Add(1)
			w.WriteHeader(createStatus)
			_, _ = w.Write([]byte(createBody))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	return s
}

func TestSubmitLoan_AdvisoryCheckBlocksLocally(t *testing.T) {
	srv := newSubmitServer(t, 3, http.StatusCreated, `{}`)
	defer srv.Close()
	c := New(srv.URL, &Credential{})

	available := 3
	loan, errs, err := c.SubmitLoan(context.Background(), submitForm(2, 4), &available)
	require.NoError(t, err)
	assert.Nil(t, loan)
	assert.Contains(t, errs, "quantity")

	// Phase one failed; phase two must never have run.
	assert.Zero(t, srv.gets.Load())
	assert.Zero(t, srv.posts.Load())
}

func TestSubmitLoan_StaleEstimateCaughtByRecheck(t *testing.T) {
	// The page cached available=3, but someone borrowed one in the
	// meantime: the re-check sees 2 and the submit must not go out.
	srv := newSubmitServer(t, 2, http.StatusCreated, `{}`)
	defer srv.Close()
	c := New(srv.URL, &Credential{})

	available := 3
	loan, errs, err := c.SubmitLoan(context.Background(), submitForm(2, 3), &available)
	require.NoError(t, err)
	assert.Nil(t, loan)
	require.Contains(t, errs, "quantity")
	assert.Contains(t, errs["quantity"], "insufficient stock")
	assert.Contains(t, errs["quantity"], "Available: 2")

	assert.Equal(t, int64(1), srv.gets.Load())
	assert.Zero(t, srv.posts.Load())
}

func TestSubmitLoan_Success(t *testing.T) {
	srv := newSubmitServer(t, 5, http.StatusCreated,
		`{"success":true,"data":{"id":11,"user_id":1,"toolkit_id":2,"quantity":3,"status":"borrowed"}}`)
	defer srv.Close()
	c := New(srv.URL, &Credential{})

	available := 5
	loan, errs, err := c.SubmitLoan(context.Background(), submitForm(2, 3), &available)
	require.NoError(t, err)
	require.Empty(t, errs)
	require.NotNil(t, loan)
	assert.Equal(t, uint(11), loan.ID)

	assert.Equal(t, int64(1), srv.gets.Load())
	assert.Equal(t, int64(1), srv.posts.Load())
}

func TestSubmitLoan_CreateBodyCarriesBorrowedStatus(t *testing.T) {
	var posted map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(`{"success":true,"data":{"id":2,"quantity":10,"available":10}}`))
			return
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&posted))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":1}}`))
	}))
	defer srv.Close()
	c := New(srv.URL, &Credential{})

	_, errs, err := c.SubmitLoan(context.Background(), submitForm(2, 3), nil)
	require.NoError(t, err)
	require.Empty(t, errs)
	assert.Equal(t, "borrowed", posted["status"])
	assert.Equal(t, float64(3), posted["quantity"])
}

func TestSubmitLoan_ToolkitGoneOnRecheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"message":"toolkit not found"}`))
	}))
	defer srv.Close()
	c := New(srv.URL, &Credential{})

	loan, errs, err := c.SubmitLoan(context.Background(), submitForm(2, 1), nil)
	require.NoError(t, err)
	assert.Nil(t, loan)
	assert.Contains(t, errs, "toolkit_id")
}

func TestSubmitLoan_RecheckTransportFailureAborts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New(srv.URL, &Credential{})
	loan, errs, err := c.SubmitLoan(context.Background(), submitForm(2, 1), nil)
	require.NoError(t, err)
	assert.Nil(t, loan)
	assert.Contains(t, errs, "quantity")
}

func TestSubmitLoan_ServerLosesRaceAfterRecheck(t *testing.T) {
	// Re-check passes but the commit hits the authoritative check on
	// the server, which reports the conflict.
	srv := newSubmitServer(t, 3, http.StatusConflict,
		`{"success":false,"message":"insufficient stock for this loan"}`)
	defer srv.Close()
	c := New(srv.URL, &Credential{})

	loan, errs, err := c.SubmitLoan(context.Background(), submitForm(2, 3), nil)
	require.NoError(t, err)
	assert.Nil(t, loan)
	require.Contains(t, errs, "quantity")
	assert.Equal(t, "insufficient stock for this loan", errs["quantity"])
}
