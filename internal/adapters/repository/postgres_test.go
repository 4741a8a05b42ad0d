package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahabubulhasibshawon/storefront-sync/internal/domain"
)

func setupTestStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})
	return NewPostgresStore(db), mock
}

func TestPostgresStore_Get(t *testing.T) {
	query := regexp.QuoteMeta("SELECT value FROM kv_store WHERE key = $1")
	tests := []struct {
		name      string
		mockSetup func(m sqlmock.Sqlmock)
		want      string
		wantErr   error
	}{
		{
			name: "present",
			mockSetup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(query).WithArgs("session").
					WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`{"id":7}`))
			},
			want: `{"id":7}`,
		},
		{
			name: "absent",
			mockSetup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(query).WithArgs("session").WillReturnRows(sqlmock.NewRows([]string{"value"}))
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "driver error",
			mockSetup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(query).WithArgs("session").WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := setupTestStore(t)
			tt.mockSetup(mock)

			got, err := s.Get(context.Background(), "session")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Get() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Get() = %q, want %q", got, tt.want)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresStore_SetAndDelete(t *testing.T) {
	ctx := context.Background()
	s, mock := setupTestStore(t)

	mock.ExpectExec("INSERT INTO kv_store").WithArgs("authToken", "t1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM kv_store WHERE key = $1")).WithArgs("authToken").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Set(ctx, "authToken", "t1"))
	require.NoError(t, s.Delete(ctx, "authToken"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_InitSchema(t *testing.T) {
	tests := []struct {
		name    string
		execErr error
		wantErr bool
	}{
		{name: "created"},
		{name: "failed", execErr: errors.New("permission denied"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := setupTestStore(t)
			exp := mock.ExpectExec("CREATE TABLE IF NOT EXISTS kv_store")
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 0))
			}

			err := s.InitSchema(context.Background())
			if (err != nil) != tt.wantErr {
				t.Errorf("InitSchema() error = %v, wantErr %v", err, tt.wantErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
