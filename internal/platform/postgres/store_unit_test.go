package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/biovital365/mandala-api/internal/domain"
	"github.com/biovital365/mandala-api/internal/domain/numerology"
	"github.com/biovital365/mandala-api/internal/platform/postgres"
	"github.com/biovital365/mandala-api/internal/store"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func TestUserStoreCreateHashesPassword(t *testing.T) {
	db, mock := newMock(t)
	s := postgres.NewPostgresUserStore(db, bcrypt.MinCost, nil)

	user, err := domain.NewUser("Seeker@Example.com", "correct horse battery")
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.ID, "seeker@example.com", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Create(context.Background(), user))
	assert.Empty(t, user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("correct horse battery")))
}

func TestUserStoreCreateDuplicateEmail(t *testing.T) {
	db, mock := newMock(t)
	s := postgres.NewPostgresUserStore(db, bcrypt.MinCost, nil)

	user, err := domain.NewUser("seeker@example.com", "correct horse battery")
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO users").WillReturnError(newPgError("23505", "users_email_key"))

	err = s.Create(context.Background(), user)
	assert.ErrorIs(t, err, store.ErrEmailExists)
}

func TestUserStoreCreateRejectsInvalidUser(t *testing.T) {
	db, _ := newMock(t)
	s := postgres.NewPostgresUserStore(db, bcrypt.MinCost, nil)

	err := s.Create(context.Background(), &domain.User{ID: uuid.New(), Email: "nope", Password: "correct horse battery"})
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)
}

func TestUserStoreGetByEmail(t *testing.T) {
	db, mock := newMock(t)
	s := postgres.NewPostgresUserStore(db, bcrypt.MinCost, nil)

	id := uuid.New()
	now := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
		WithArgs("seeker@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "hashed_password", "created_at", "updated_at"}).
			AddRow(id.String(), "seeker@example.com", "hash", now, now))

	user, err := s.GetByEmail(context.Background(), " SEEKER@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "hash", user.HashedPassword)
}

func TestUserStoreGetByIDNotFound(t *testing.T) {
	db, mock := newMock(t)
	s := postgres.NewPostgresUserStore(db, bcrypt.MinCost, nil)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").WillReturnError(sql.ErrNoRows)

	_, err := s.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserStoreDelete(t *testing.T) {
	db, mock := newMock(t)
	s := postgres.NewPostgresUserStore(db, bcrypt.MinCost, nil)
	id := uuid.New()

	mock.ExpectExec("DELETE FROM users").WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, s.Delete(context.Background(), id))

	mock.ExpectExec("DELETE FROM users").WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, s.Delete(context.Background(), id), store.ErrUserNotFound)
}

func testCalculation(t *testing.T) *domain.Calculation {
	t.Helper()
	dob, err := numerology.ParseBirthDate("1990-05-12")
	require.NoError(t, err)
	subject := numerology.Subject{FullName: "Ana", BirthDate: dob, AsOfYear: 2025}
	calc, err := domain.NewCalculation(uuid.New(), subject, numerology.Derive(subject))
	require.NoError(t, err)
	return calc
}

var calculationRowColumns = []string{
	"id", "user_id", "full_name", "birth_date", "as_of_year",
	"essence", "life_path", "name_vibration", "personal_year", "divine_gift", "created_at",
}

func calculationRow(rows *sqlmock.Rows, c *domain.Calculation) *sqlmock.Rows {
	return rows.AddRow(
		c.ID.String(), c.UserID.String(), c.Subject.FullName, c.Subject.BirthDate.Time(), c.Subject.AsOfYear,
		c.Map.Essence, c.Map.LifePath, c.Map.NameVibration, c.Map.PersonalYear, c.Map.DivineGift,
		c.CreatedAt,
	)
}

func TestCalculationStoreCreate(t *testing.T) {
	db, mock := newMock(t)
	s := postgres.NewPostgresCalculationStore(db, nil)
	calc := testCalculation(t)

	mock.ExpectExec("INSERT INTO calculations").
		WithArgs(calc.ID, calc.UserID, "Ana", calc.Subject.BirthDate.Time(), 2025, 3, 9, 7, 8, 9, calc.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, s.Create(context.Background(), calc))
}

func TestCalculationStoreCreateErrors(t *testing.T) {
	t.Run("tampered map is rejected before the insert", func(t *testing.T) {
		db, _ := newMock(t)
		s := postgres.NewPostgresCalculationStore(db, nil)
		calc := testCalculation(t)
		calc.Map.LifePath = 1

		err := s.Create(context.Background(), calc)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.ErrorIs(t, err, domain.ErrMapMismatch)
	})

	t.Run("unknown owner", func(t *testing.T) {
		db, mock := newMock(t)
		s := postgres.NewPostgresCalculationStore(db, nil)
		mock.ExpectExec("INSERT INTO calculations").
			WillReturnError(newPgError("23503", "calculations_user_id_fkey"))

		err := s.Create(context.Background(), testCalculation(t))
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestCalculationStoreGetByID(t *testing.T) {
	db, mock := newMock(t)
	s := postgres.NewPostgresCalculationStore(db, nil)
	calc := testCalculation(t)

	mock.ExpectQuery("SELECT (.+) FROM calculations WHERE id = \\$1").
		WithArgs(calc.ID).
		WillReturnRows(calculationRow(sqlmock.NewRows(calculationRowColumns), calc))

	got, err := s.GetByID(context.Background(), calc.ID)
	require.NoError(t, err)
	assert.Equal(t, calc, got)

	mock.ExpectQuery("SELECT (.+) FROM calculations").WillReturnError(sql.ErrNoRows)
	_, err = s.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrCalculationNotFound)
}

func TestCalculationStoreListByUser(t *testing.T) {
	db, mock := newMock(t)
	s := postgres.NewPostgresCalculationStore(db, nil)
	first, second := testCalculation(t), testCalculation(t)
	userID := first.UserID

	rows := sqlmock.NewRows(calculationRowColumns)
	calculationRow(rows, first)
	calculationRow(rows, second)

	mock.ExpectQuery("SELECT (.+) FROM calculations WHERE user_id = \\$1").
		WithArgs(userID, postgres.MaxListLimit, 0).
		WillReturnRows(rows)

	got, err := s.ListByUser(context.Background(), userID, 1000, -5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)
}

func TestCalculationStoreListByUserRowError(t *testing.T) {
	db, mock := newMock(t)
	s := postgres.NewPostgresCalculationStore(db, nil)
	calc := testCalculation(t)

	rows := calculationRow(sqlmock.NewRows(calculationRowColumns), calc).
		RowError(0, errors.New("connection reset"))
	mock.ExpectQuery("SELECT (.+) FROM calculations").WillReturnRows(rows)

	_, err := s.ListByUser(context.Background(), calc.UserID, 10, 0)
	assert.ErrorContains(t, err, "connection reset")
}

func TestStoresWithTx(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM users").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	users := postgres.NewPostgresUserStore(db, bcrypt.MinCost, nil)
	err := store.RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
		return users.WithTx(tx).Delete(ctx, uuid.New())
	})
	assert.NoError(t, err)
}
