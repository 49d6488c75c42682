package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/eye-test-server/models"
)

func newTestResultRepo(t *testing.T) (*resultRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	wrapped, mock, db := newTestDB(t)
	repo := &resultRepository{
		DB:     wrapped,
		logger: wrapped.logger,
	}
	return repo, mock, db
}

func float64Ptr(v float64) *float64 { return &v }
func stringPtr(v string) *string    { return &v }

func TestSaveResult_Success(t *testing.T) {
	repo, mock, db := newTestResultRepo(t)
	defer db.Close()

	ctx := context.Background()
	result := models.TestResult{
		UserID:           42,
		LeftEyeAcuity:    "20/20",
		RightEyeAcuity:   "20/25",
		LeftEyePower:     float64Ptr(-1.25),
		RightEyePower:    nil,
		LeftEyeCondition: stringPtr("myopia"),
	}

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"result_id", "test_date"}).
		AddRow(11, now)

	mock.ExpectQuery("INSERT INTO test_results").
		WithArgs(result.UserID, result.LeftEyeAcuity, result.RightEyeAcuity, result.LeftEyePower, result.RightEyePower, result.LeftEyeCondition, result.RightEyeCondition).
		WillReturnRows(rows)

	saved, err := repo.SaveResult(ctx, result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ResultID != 11 {
		t.Errorf("expected ResultID=11, got %d", saved.ResultID)
	}
	if !saved.TestDate.Equal(now) {
		t.Errorf("expected server-assigned test date %v, got %v", now, saved.TestDate)
	}
	if saved.UserID != 42 {
		t.Errorf("expected UserID=42, got %d", saved.UserID)
	}
}

func TestSaveResult_ExecError(t *testing.T) {
	repo, mock, db := newTestResultRepo(t)
	defer db.Close()

	ctx := context.Background()
	result := models.TestResult{UserID: 42, LeftEyeAcuity: "20/20", RightEyeAcuity: "20/25"}

	mock.ExpectQuery("INSERT INTO test_results").
		WillReturnError(errors.New("db is down"))

	_, err := repo.SaveResult(ctx, result)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetResultsByUserID_OrderedRows(t *testing.T) {
	repo, mock, db := newTestResultRepo(t)
	defer db.Close()

	ctx := context.Background()

	newest := time.Now()
	oldest := newest.Add(-24 * time.Hour)

	rows := sqlmock.NewRows(resultColumns).
		AddRow(2, 42, "20/20", "20/25", nil, nil, nil, nil, newest).
		AddRow(1, 42, "20/40", "20/40", -1.5, -1.75, "myopia", "myopia", oldest)

	mock.ExpectQuery("SELECT (.+) FROM test_results").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	results, err := repo.GetResultsByUserID(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].ResultID != 2 || results[1].ResultID != 1 {
		t.Errorf("expected newest-first order, got %d then %d", results[0].ResultID, results[1].ResultID)
	}
	if results[1].LeftEyePower == nil || *results[1].LeftEyePower != -1.5 {
		t.Errorf("expected left eye power -1.5, got %v", results[1].LeftEyePower)
	}
	if results[0].LeftEyePower != nil {
		t.Errorf("expected nil power for row without measurement, got %v", *results[0].LeftEyePower)
	}
}

func TestGetResultsByUserID_Empty(t *testing.T) {
	repo, mock, db := newTestResultRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM test_results").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(resultColumns))

	results, err := repo.GetResultsByUserID(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestGetResultsByUserID_QueryError(t *testing.T) {
	repo, mock, db := newTestResultRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM test_results").
		WillReturnError(errors.New("db is down"))

	_, err := repo.GetResultsByUserID(ctx, 42)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetResultsByUserID_ScanError(t *testing.T) {
	repo, mock, db := newTestResultRepo(t)
	defer db.Close()

	ctx := context.Background()

	// intentionally wrong shape → scan error
	rows := sqlmock.NewRows([]string{"result_id"}).AddRow(1)

	mock.ExpectQuery("SELECT (.+) FROM test_results").
		WillReturnRows(rows)

	_, err := repo.GetResultsByUserID(ctx, 42)
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}
