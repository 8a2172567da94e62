package repo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"vacation-api/internal/core/auth"
	"vacation-api/internal/domain"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)
	return db, mock
}

func TestUserRepo_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		u := &domain.User{Email: "e@example.com", Name: "E", EmployeeCode: "1000002", Role: auth.RoleEmployee, PasswordHash: "h"}
		require.NoError(t, NewUserRepo(db).Create(ctx, u))
		assert.Equal(t, int64(7), u.ID)
		assert.Equal(t, "h", u.PasswordHash)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
			WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email"`))

		err := NewUserRepo(db).Create(ctx, &domain.User{Email: "e@example.com", Role: auth.RoleEmployee})
		assert.ErrorIs(t, err, domain.ErrDuplicateUser)
	})
}

func TestUserRepo_FindByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "name", "employee_code", "role"}).
				AddRow(1, "m@example.com", "hash", "M", "1000001", "manager"))

		u, err := NewUserRepo(db).FindByEmail(ctx, "m@example.com")
		require.NoError(t, err)
		assert.Equal(t, int64(1), u.ID)
		assert.Equal(t, auth.RoleManager, u.Role)
		assert.Equal(t, "hash", u.PasswordHash)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := NewUserRepo(db).FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestUserRepo_UpdateDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("update missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewUserRepo(db).Update(ctx, &domain.User{ID: 9, Email: "x@example.com", Name: "X", Role: auth.RoleEmployee})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "users" WHERE id = $1`)).
			WithArgs(int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, NewUserRepo(db).Delete(ctx, 3))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestVacationRepo_UpdateStatusIf(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	r := NewVacationRepo(db)

	// 第二次更新前置条件已不成立
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "vacations" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "vacations" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	n, err := r.UpdateStatusIf(ctx, 5, domain.StatusPending, domain.StatusApproved, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = r.UpdateStatusIf(ctx, 5, domain.StatusPending, domain.StatusApproved, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVacationRepo_DeleteIfStatus(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "vacations" WHERE id = $1 AND status = $2`)).
		WithArgs(int64(5), "pending").
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := NewVacationRepo(db).DeleteIfStatus(context.Background(), 5, domain.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestVacationRepo_FindByID(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "vacations" WHERE id = $1`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "from", "to", "reason", "status", "authorized_by"}).
				AddRow(5, 2, from, from.AddDate(0, 0, 2), "Trip", "approved", 1))

		v, err := NewVacationRepo(db).FindByID(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, v.Status)
		require.NotNil(t, v.AuthorizedBy)
		assert.Equal(t, int64(1), *v.AuthorizedBy)
		assert.Nil(t, v.User)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "vacations"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := NewVacationRepo(db).FindByID(ctx, 5)
		assert.ErrorIs(t, err, domain.ErrVacationNotFound)
	})
}

func TestVacationRepo_Insert(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "vacations"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	v, err := domain.NewVacationRequest(2,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), "Trip")
	require.NoError(t, err)
	require.NoError(t, NewVacationRepo(db).Insert(context.Background(), v))
	assert.Equal(t, int64(11), v.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVacationRepo_ListByOwner(t *testing.T) {
	db, mock := newMockDB(t)
	d := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "vacations" WHERE user_id = $1 ORDER BY "from" DESC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "from", "to", "reason", "status"}).
			AddRow(2, 4, d.AddDate(0, 1, 0), d.AddDate(0, 1, 1), "b", "pending").
			AddRow(1, 4, d, d, "a", "rejected"))

	vs, err := NewVacationRepo(db).ListByOwner(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, vs, 2)
	assert.Equal(t, int64(2), vs[0].ID)
	assert.Equal(t, domain.StatusRejected, vs[1].Status)
}
