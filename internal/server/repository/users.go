// Package repository реализует доступ к хранилищу (sqlite) поверх database/sql.
// Слой отвечает исключительно за сохранение и извлечение данных без бизнес-логики.
package repository

import (
	"context"
	"database/sql"

	"github.com/mattn/go-sqlite3"

	serr "catkeeper/internal/shared/errors"
	"catkeeper/internal/shared/models"
)

type UsersRepository struct {
	db *sql.DB
}

func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// isUniqueViolation распознаёт нарушение UNIQUE-ограничения sqlite
// (аналог кода 23505 в postgres).
func isUniqueViolation(err error) bool {
	if sqliteErr, ok := err.(sqlite3.Error); ok {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

func (r *UsersRepository) Create(ctx context.Context, email, passwordHash string) (int64, error) {
	var id int64

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO user (email, password_hash)
		 VALUES (?, ?)
		 RETURNING id`,
		email, passwordHash,
	).Scan(&id)

	if err != nil {
		if isUniqueViolation(err) {
			return 0, serr.ErrAlreadyExists
		}
		return 0, serr.ErrInternal
	}

	return id, nil
}

func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (int64, string, error) {
	var (
		id   int64
		hash string
	)

	err := r.db.QueryRowContext(ctx,
		`SELECT id, password_hash FROM user WHERE email = ?`,
		email,
	).Scan(&id, &hash)

	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", serr.ErrNotFound
		}
		return 0, "", serr.ErrInternal
	}

	return id, hash, nil
}

func (r *UsersRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, created_at FROM user WHERE id = ?`,
		id,
	).Scan(&u.ID, &u.Email, &u.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

func (r *UsersRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, email, created_at FROM user ORDER BY id`,
	)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.CreatedAt); err != nil {
			return nil, serr.ErrInternal
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}

	return users, nil
}

func (r *UsersRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM user WHERE id = ?`,
		id,
	)
	if err != nil {
		return serr.ErrInternal
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return serr.ErrInternal
	}
	if affected == 0 {
		return serr.ErrNotFound
	}

	return nil
}
