package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"govportal/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestProfileRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	tests := []struct {
		name          string
		profileID     uint
		mockBehavior  func()
		expected      *models.Profile
		expectedError bool
	}{
		{
			name:      "Success",
			profileID: 1,
			mockBehavior: func() {
				rows := sqlmock.NewRows([]string{"id", "nickname", "static_id"}).
					AddRow(1, "Jane Doe", "AB-1234")
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "profiles" WHERE "profiles"."id" = $1 AND "profiles"."deleted_at" IS NULL ORDER BY "profiles"."id" LIMIT $2`)).
					WithArgs(1, 1).
					WillReturnRows(rows)
			},
			expected: &models.Profile{ID: 1, Nickname: "Jane Doe", StaticID: "AB-1234"},
		},
		{
			name:      "Not Found",
			profileID: 99,
			mockBehavior: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "profiles" WHERE "profiles"."id" = $1 AND "profiles"."deleted_at" IS NULL ORDER BY "profiles"."id" LIMIT $2`)).
					WithArgs(99, 1).
					WillReturnError(gorm.ErrRecordNotFound)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockBehavior()
			profile, err := repo.GetByID(ctx, tt.profileID)

			if tt.expectedError {
				assert.Error(t, err)
			} else if assert.NotNil(t, profile) {
				assert.Equal(t, tt.expected.Nickname, profile.Nickname)
				assert.Equal(t, tt.expected.StaticID, profile.StaticID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProfileRepository_GetByID_NotFoundCode(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProfileRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "profiles" WHERE "profiles"."id" = $1`)).
		WithArgs(7, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	_, err := repo.GetByID(context.Background(), 7)
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_GetByStaticID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "static_id"}).AddRow(1, "AB-1234")
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "profiles" WHERE static_id = $1`)).
			WithArgs("AB-1234", 1).
			WillReturnRows(rows)

		profile, err := repo.GetByStaticID(ctx, "AB-1234")
		assert.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, "AB-1234", profile.StaticID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "profiles" WHERE static_id = $1`)).
			WithArgs("ZZ-9999", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		// Should return nil, nil per implementation
		profile, err := repo.GetByStaticID(ctx, "ZZ-9999")
		assert.NoError(t, err)
		assert.Nil(t, profile)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProfileRepository_GetByIDs(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	t.Run("Batch lookup", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "nickname", "static_id"}).
			AddRow(1, "Jane Doe", "AB-1234").
			AddRow(3, "John Roe", "CD-5678")
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id","nickname","static_id","faction","gov_role" FROM "profiles" WHERE id IN ($1,$2)`)).
			WithArgs(1, 3).
			WillReturnRows(rows)

		got, err := repo.GetByIDs(ctx, []uint{1, 3})
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, "Jane Doe", got[1].Nickname)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty input skips query", func(t *testing.T) {
		got, err := repo.GetByIDs(ctx, nil)
		assert.NoError(t, err)
		assert.Empty(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProfileRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "profiles"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		profile := &models.Profile{Nickname: "Jane Doe", StaticID: "AB-1234", Email: "static_ab-1234@gosuslugi.local"}
		err := repo.Create(ctx, profile)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unique violation maps to conflict", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "profiles"`)).
			WillReturnError(errors.New(`duplicate key value violates unique constraint "idx_profiles_static_id" (SQLSTATE 23505)`))
		mock.ExpectRollback()

		profile := &models.Profile{Nickname: "Jane Doe", StaticID: "AB-1234"}
		err := repo.Create(ctx, profile)
		require.Error(t, err)
		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "CONFLICT", appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
