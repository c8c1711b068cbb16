package tests

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"catkeeper/internal/server/repository"
	"catkeeper/internal/server/service"
	serr "catkeeper/internal/shared/errors"
	"catkeeper/internal/shared/utils"
)

func catRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "breed", "owner_id", "last_fed"})
}

// Успех
func TestCatsRepository_Create_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewCatsRepository(db)

	mock.ExpectQuery(`INSERT INTO cat`).
		WithArgs("Barsik", "siberian", int64(1), nil).
		WillReturnRows(
			catRows().AddRow(int64(10), "Barsik", "siberian", int64(1), nil),
		)

	cat, err := repo.Create(context.Background(), 1, "Barsik", "siberian", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.ID != 10 || cat.Name != "Barsik" || cat.OwnerID != 1 {
		t.Fatalf("unexpected cat: %+v", cat)
	}
	if cat.LastFed != nil {
		t.Fatalf("expected nil last_fed, got %v", *cat.LastFed)
	}
}

// Ошибка сервера
func TestCatsRepository_Create_InternalError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewCatsRepository(db)

	mock.ExpectQuery(`INSERT INTO cat`).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.Create(context.Background(), 1, "Barsik", "siberian", nil)

	if err != serr.ErrInternal {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

// список котов владельца
func TestCatsRepository_ListByOwner_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewCatsRepository(db)

	mock.ExpectQuery(`SELECT id, name, breed, owner_id, last_fed`).
		WithArgs(int64(1)).
		WillReturnRows(
			catRows().
				AddRow(int64(10), "Barsik", "siberian", int64(1), "2026-08-28T10:00:00Z").
				AddRow(int64(11), "Murka", "sphynx", int64(1), nil),
		)

	cats, err := repo.ListByOwner(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cats) != 2 {
		t.Fatalf("expected 2 cats, got %d", len(cats))
	}
	if cats[0].LastFed == nil || *cats[0].LastFed != "2026-08-28T10:00:00Z" {
		t.Fatalf("unexpected last_fed: %+v", cats[0].LastFed)
	}
	if cats[1].LastFed != nil {
		t.Fatalf("expected nil last_fed for second cat")
	}
}

// у владельца нет котов
func TestCatsRepository_ListByOwner_Empty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewCatsRepository(db)

	mock.ExpectQuery(`SELECT id, name, breed, owner_id, last_fed`).
		WithArgs(int64(2)).
		WillReturnRows(catRows())

	cats, err := repo.ListByOwner(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cats) != 0 {
		t.Fatalf("expected empty list, got %d", len(cats))
	}
}

// кот не найден
func TestCatsRepository_GetByID_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewCatsRepository(db)

	mock.ExpectQuery(`SELECT id, name, breed, owner_id, last_fed`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)

	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// частичное обновление: только last_fed
func TestCatsRepository_Update_LastFedOnly(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewCatsRepository(db)

	mock.ExpectExec(`UPDATE cat SET last_fed = \? WHERE id = \?`).
		WithArgs("2026-08-29T10:00:00Z", int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectQuery(`SELECT id, name, breed, owner_id, last_fed`).
		WithArgs(int64(10)).
		WillReturnRows(
			catRows().AddRow(int64(10), "Barsik", "siberian", int64(1), "2026-08-29T10:00:00Z"),
		)

	cat, err := repo.Update(context.Background(), 10, service.UpdateCatFields{
		LastFed: utils.StrPtr("2026-08-29T10:00:00Z"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.LastFed == nil || *cat.LastFed != "2026-08-29T10:00:00Z" {
		t.Fatalf("unexpected last_fed: %+v", cat.LastFed)
	}
}

// обновление имени и породы разом
func TestCatsRepository_Update_NameAndBreed(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewCatsRepository(db)

	mock.ExpectExec(`UPDATE cat SET name = \?, breed = \? WHERE id = \?`).
		WithArgs("Murzik", "persian", int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectQuery(`SELECT id, name, breed, owner_id, last_fed`).
		WithArgs(int64(10)).
		WillReturnRows(
			catRows().AddRow(int64(10), "Murzik", "persian", int64(1), nil),
		)

	cat, err := repo.Update(context.Background(), 10, service.UpdateCatFields{
		Name:  utils.StrPtr("Murzik"),
		Breed: utils.StrPtr("persian"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Name != "Murzik" || cat.Breed != "persian" {
		t.Fatalf("unexpected cat: %+v", cat)
	}
}

// обновление несуществующего кота
func TestCatsRepository_Update_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewCatsRepository(db)

	mock.ExpectExec(`UPDATE cat SET name = \? WHERE id = \?`).
		WithArgs("Murzik", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), 99, service.UpdateCatFields{
		Name: utils.StrPtr("Murzik"),
	})

	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// пустой набор полей — просто перечитываем запись
func TestCatsRepository_Update_NoFields(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewCatsRepository(db)

	mock.ExpectQuery(`SELECT id, name, breed, owner_id, last_fed`).
		WithArgs(int64(10)).
		WillReturnRows(
			catRows().AddRow(int64(10), "Barsik", "siberian", int64(1), nil),
		)

	cat, err := repo.Update(context.Background(), 10, service.UpdateCatFields{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.ID != 10 {
		t.Fatalf("unexpected cat: %+v", cat)
	}
}

// удаление
func TestCatsRepository_Delete_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewCatsRepository(db)

	mock.ExpectExec(`DELETE FROM cat`).
		WithArgs(int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// удаление несуществующего
func TestCatsRepository_Delete_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewCatsRepository(db)

	mock.ExpectExec(`DELETE FROM cat`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)

	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
