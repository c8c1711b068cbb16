package tests

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"

	"catkeeper/internal/server/repository"
	serr "catkeeper/internal/shared/errors"
)

// Успех
func TestUsersRepository_Create_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`INSERT INTO user`).
		WithArgs("test@gmail.com", "hash").
		WillReturnRows(
			sqlmock.NewRows([]string{"id"}).AddRow(int64(1)),
		)

	got, err := repo.Create(context.Background(), "test@gmail.com", "hash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
}

// Такой пользователь уже есть
func TestUsersRepository_Create_AlreadyExists(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	sqliteErr := sqlite3.Error{
		Code:         sqlite3.ErrConstraint,
		ExtendedCode: sqlite3.ErrConstraintUnique,
	}

	mock.ExpectQuery(`INSERT INTO user`).
		WillReturnError(sqliteErr)

	_, err := repo.Create(context.Background(), "test@gmail.com", "hash")

	if err != serr.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

// Ошибка сервера
func TestUsersRepository_Create_InternalError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`INSERT INTO user`).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.Create(context.Background(), "test@gmail.com", "hash")

	if err != serr.ErrInternal {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

// поиск по email
func TestUsersRepository_GetByEmail_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT id, password_hash FROM user`).
		WithArgs("test@gmail.com").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "password_hash"}).AddRow(int64(5), "hash"),
		)

	id, hash, err := repo.GetByEmail(context.Background(), "test@gmail.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 5 || hash != "hash" {
		t.Fatalf("unexpected result: id=%v hash=%q", id, hash)
	}
}

// пользователь не найден
func TestUsersRepository_GetByEmail_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT id, password_hash FROM user`).
		WillReturnError(sql.ErrNoRows)

	_, _, err := repo.GetByEmail(context.Background(), "nobody@gmail.com")

	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// поиск по id
func TestUsersRepository_GetByID_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	created := time.Now()
	mock.ExpectQuery(`SELECT id, email, created_at FROM user`).
		WithArgs(int64(5)).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "email", "created_at"}).
				AddRow(int64(5), "test@gmail.com", created),
		)

	u, err := repo.GetByID(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != 5 || u.Email != "test@gmail.com" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

// список пользователей
func TestUsersRepository_List_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT id, email, created_at FROM user`).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "email", "created_at"}).
				AddRow(int64(1), "a@gmail.com", now).
				AddRow(int64(2), "b@example.com", now),
		)

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

// пустой список — не ошибка
func TestUsersRepository_List_Empty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT id, email, created_at FROM user`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "created_at"}))

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected empty list, got %d", len(users))
	}
}

// удаление
func TestUsersRepository_Delete_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectExec(`DELETE FROM user`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// удаление несуществующего
func TestUsersRepository_Delete_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectExec(`DELETE FROM user`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)

	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
