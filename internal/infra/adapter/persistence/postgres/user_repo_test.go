package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"recipe-catalog/internal/domain/entity"
	"recipe-catalog/internal/infra/adapter/persistence/postgres"
)

func userRow(u *entity.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "first_name", "surname", "email", "hashed_password", "is_superuser",
	}).AddRow(
		u.ID, u.FirstName, u.Surname, u.Email, u.HashedPassword, u.IsSuperuser,
	)
}

func TestUserRepo_FindByID(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := &entity.User{
		ID: 7, FirstName: "Jane", Surname: "Doe",
		Email: "jane@example.com", HashedPassword: "$2a$12$hash", IsSuperuser: false,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id`)).
		WithArgs(int64(7)).
		WillReturnRows(userRow(want))

	repo := postgres.NewUserRepo(db)
	got, err := repo.FindByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("FindByID err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUserRepo_FindByID_notFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id`)).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "first_name", "surname", "email", "hashed_password", "is_superuser",
		}))

	repo := postgres.NewUserRepo(db)
	got, err := repo.FindByID(context.Background(), 99)
	if err != nil {
		t.Fatalf("FindByID err=%v", err)
	}
	if got != nil {
		t.Fatalf("want nil user for missing row, got %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUserRepo_FindByEmail(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := &entity.User{
		ID: 1, Email: "jane@example.com", HashedPassword: "$2a$12$hash",
	}

	mock.ExpectQuery(`FROM users`).
		WithArgs("jane@example.com").
		WillReturnRows(userRow(want))

	repo := postgres.NewUserRepo(db)
	got, err := repo.FindByEmail(context.Background(), "jane@example.com")
	if err != nil {
		t.Fatalf("FindByEmail err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUserRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs("Jane", "Doe", "jane@example.com", "$2a$12$hash", false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	repo := postgres.NewUserRepo(db)
	user := &entity.User{
		FirstName: "Jane", Surname: "Doe",
		Email: "jane@example.com", HashedPassword: "$2a$12$hash",
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if user.ID != 3 {
		t.Fatalf("want assigned ID 3, got %d", user.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUserRepo_Create_queryError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WillReturnError(errors.New("connection reset"))

	repo := postgres.NewUserRepo(db)
	err := repo.Create(context.Background(), &entity.User{Email: "jane@example.com"})
	if err == nil {
		t.Fatal("want error, got nil")
	}
	if errors.Is(err, entity.ErrDuplicateUser) {
		t.Fatalf("generic failure must not map to duplicate: %v", err)
	}
}
