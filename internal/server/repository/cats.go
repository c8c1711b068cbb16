package repository

import (
	"context"
	"database/sql"
	"strings"

	serr "catkeeper/internal/shared/errors"
	"catkeeper/internal/shared/models"
	"catkeeper/internal/server/service"
)

type CatsRepository struct {
	db *sql.DB
}

func NewCatsRepository(db *sql.DB) *CatsRepository {
	return &CatsRepository{db: db}
}

func (r *CatsRepository) Create(ctx context.Context, ownerID int64, name, breed string, lastFed *string) (models.Cat, error) {
	var c models.Cat

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO cat (name, breed, owner_id, last_fed)
		 VALUES (?, ?, ?, ?)
		 RETURNING id, name, breed, owner_id, last_fed`,
		name, breed, ownerID, lastFed,
	).Scan(&c.ID, &c.Name, &c.Breed, &c.OwnerID, &c.LastFed)

	if err != nil {
		return models.Cat{}, serr.ErrInternal
	}

	return c, nil
}

func (r *CatsRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Cat, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, breed, owner_id, last_fed
		 FROM cat
		 WHERE owner_id = ?
		 ORDER BY id`,
		ownerID,
	)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	cats := make([]models.Cat, 0)
	for rows.Next() {
		var c models.Cat
		if err := rows.Scan(&c.ID, &c.Name, &c.Breed, &c.OwnerID, &c.LastFed); err != nil {
			return nil, serr.ErrInternal
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}

	return cats, nil
}

func (r *CatsRepository) GetByID(ctx context.Context, id int64) (models.Cat, error) {
	var c models.Cat

	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, breed, owner_id, last_fed FROM cat WHERE id = ?`,
		id,
	).Scan(&c.ID, &c.Name, &c.Breed, &c.OwnerID, &c.LastFed)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.Cat{}, serr.ErrNotFound
		}
		return models.Cat{}, serr.ErrInternal
	}

	return c, nil
}

// Update собирает SET-часть только из переданных полей, порядок фиксированный:
// name, breed, last_fed. После обновления возвращает актуальную запись.
func (r *CatsRepository) Update(ctx context.Context, id int64, fields service.UpdateCatFields) (models.Cat, error) {
	set := make([]string, 0, 3)
	args := make([]any, 0, 4)

	if fields.Name != nil {
		set = append(set, "name = ?")
		args = append(args, *fields.Name)
	}
	if fields.Breed != nil {
		set = append(set, "breed = ?")
		args = append(args, *fields.Breed)
	}
	if fields.LastFed != nil {
		set = append(set, "last_fed = ?")
		args = append(args, *fields.LastFed)
	}

	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)

	res, err := r.db.ExecContext(ctx,
		`UPDATE cat SET `+strings.Join(set, ", ")+` WHERE id = ?`,
		args...,
	)
	if err != nil {
		return models.Cat{}, serr.ErrInternal
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.Cat{}, serr.ErrInternal
	}
	if affected == 0 {
		return models.Cat{}, serr.ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *CatsRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM cat WHERE id = ?`,
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
