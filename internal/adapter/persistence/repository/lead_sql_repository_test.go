package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/domain/entities"
)

var leadColumnNames = []string{"id", "name", "phone", "email", "service_type", "message", "source", "created_at"}

func sampleLead(createdAt time.Time) entities.Lead {
	return entities.Lead{
		ID:          "lead-1",
		Name:        "A",
		Phone:       "+7 900 000-00-00",
		Email:       "a@b.com",
		ServiceType: entities.ServiceTypeOther,
		Message:     "",
		Source:      "contact-form",
		CreatedAt:   createdAt,
	}
}

func TestLeadSQLRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewLeadSQLRepository(db, DialectPostgres)
	now := time.Date(2026, 3, 1, 10, 0, 0, 123000, time.UTC)
	l := sampleLead(now)

	mock.ExpectExec(`INSERT INTO leads \(id, name, phone, email, service_type, message, source, created_at\)\s+VALUES \(\$1, \$2, \$3, \$4, \$5, \$6, \$7, \$8\)`).
		WithArgs(l.ID, l.Name, l.Phone, l.Email, "other", "", "contact-form", now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	created, err := repo.Create(context.Background(), l)
	require.NoError(t, err)
	assert.Equal(t, l, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadSQLRepository_CreateError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewLeadSQLRepository(db, DialectPostgres)
	cause := errors.New("connection refused")
	mock.ExpectExec("INSERT INTO leads").WillReturnError(cause)

	_, err = repo.Create(context.Background(), sampleLead(time.Now().UTC()))
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestLeadSQLRepository_CreateSQLiteEncodesTimeAsText(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewLeadSQLRepository(db, DialectSQLite)
	now := time.Date(2026, 3, 1, 10, 0, 0, 5000, time.UTC)

	mock.ExpectExec(`INSERT INTO leads .* VALUES \(\?, \?, \?, \?, \?, \?, \?, \?\)`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			"2026-03-01T10:00:00.000005000Z").
		WillReturnResult(sqlmock.NewResult(1, 1))

	_, err = repo.Create(context.Background(), sampleLead(now))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadSQLRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewLeadSQLRepository(db, DialectPostgres)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM leads WHERE id = \$1`).
			WithArgs("lead-1").
			WillReturnRows(sqlmock.NewRows(leadColumnNames).
				AddRow("lead-1", "A", "+7 900 000-00-00", "a@b.com", "other", "", "contact-form", now))

		l, err := repo.GetByID(context.Background(), "lead-1")
		require.NoError(t, err)
		assert.Equal(t, sampleLead(now), l)
	})

	t.Run("not found returns zero lead", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM leads WHERE id = \$1`).
			WithArgs("nonexistent").
			WillReturnError(sql.ErrNoRows)

		l, err := repo.GetByID(context.Background(), "nonexistent")
		require.NoError(t, err)
		assert.Empty(t, l.ID)
	})

	t.Run("storage error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM leads`).WillReturnError(errors.New("timeout"))

		_, err := repo.GetByID(context.Background(), "lead-1")
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadSQLRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewLeadSQLRepository(db, DialectSQLite)

	t.Run("rows in insertion order", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM leads ORDER BY created_at ASC, id ASC`).
			WillReturnRows(sqlmock.NewRows(leadColumnNames).
				AddRow("lead-1", "A", "1", "a@b.com", "other", "", "website", "2026-03-01T10:00:00.000000000Z").
				AddRow("lead-2", "B", "2", "b@b.com", "mspro-quad", "hi", "contact-form", []byte("2026-03-01T11:00:00.000000000Z")))

		leads, err := repo.List(context.Background())
		require.NoError(t, err)
		require.Len(t, leads, 2)
		assert.Equal(t, "lead-1", leads[0].ID)
		assert.Equal(t, "lead-2", leads[1].ID)
		assert.Equal(t, entities.ServiceTypeMSProQuad, leads[1].ServiceType)
		assert.Equal(t, time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC), leads[1].CreatedAt)
	})

	t.Run("empty table gives empty slice", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM leads`).WillReturnRows(sqlmock.NewRows(leadColumnNames))

		leads, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, leads)
		assert.Empty(t, leads)
	})

	t.Run("bad timestamp surfaces as error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM leads`).
			WillReturnRows(sqlmock.NewRows(leadColumnNames).
				AddRow("lead-1", "A", "1", "a@b.com", "other", "", "website", "yesterday"))

		_, err := repo.List(context.Background())
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
