package service

import (
	"context"
	"strings"

	serr "catkeeper/internal/shared/errors"
	"catkeeper/internal/shared/models"
)

// CatsService реализует бизнес-логику работы с котами.
//
// Сервис:
//   - валидирует входные данные;
//   - гарантирует, что у кота всегда есть существующий владелец;
//   - не знает о HTTP и БД напрямую.
//
// Scoping по владельцу обеспечивается запросами (ListByOwner),
// а не отдельной ACL-структурой.
type CatsService struct {
	cats  CatsRepo
	users UsersRepo
}

// NewCatsService создаёт новый CatsService.
func NewCatsService(cats CatsRepo, users UsersRepo) *CatsService {
	return &CatsService{
		cats:  cats,
		users: users,
	}
}

// Create создаёт нового кота для указанного владельца.
//
// Валидации:
//   - name и breed не пустые;
//   - ownerID > 0 и указывает на существующего пользователя.
//
// Ошибки:
//   - ErrInvalidInput — невалидные данные;
//   - ErrNotFound — владелец не существует;
//   - ErrInternal — ошибка хранилища.
func (s *CatsService) Create(ctx context.Context, ownerID int64, name, breed string, lastFed *string) (models.Cat, error) {
	name = strings.TrimSpace(name)
	breed = strings.TrimSpace(breed)

	if name == "" || breed == "" || ownerID <= 0 {
		return models.Cat{}, serr.ErrInvalidInput
	}

	// кот не может существовать без владельца
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		return models.Cat{}, err
	}

	return s.cats.Create(ctx, ownerID, name, breed, lastFed)
}

// ListForOwner возвращает всех котов указанного владельца.
//
// Для существующего владельца без котов возвращается пустой срез,
// а не ошибка.
//
// Ошибки:
//   - ErrInvalidInput — некорректный id;
//   - ErrNotFound — владелец не существует.
func (s *CatsService) ListForOwner(ctx context.Context, ownerID int64) ([]models.Cat, error) {
	if ownerID <= 0 {
		return nil, serr.ErrInvalidInput
	}

	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}

	return s.cats.ListByOwner(ctx, ownerID)
}

// Get возвращает кота по id.
//
// Ошибки:
//   - ErrInvalidInput — некорректный id;
//   - ErrNotFound — кот не существует.
func (s *CatsService) Get(ctx context.Context, id int64) (models.Cat, error) {
	if id <= 0 {
		return models.Cat{}, serr.ErrInvalidInput
	}
	return s.cats.GetByID(ctx, id)
}

// Update применяет частичное обновление и возвращает обновлённую запись.
//
// Отсутствующие поля не меняются; id неизменяем.
// Переданные name/breed не могут быть пустыми строками.
//
// Ошибки:
//   - ErrInvalidInput — некорректный id или пустое значение поля;
//   - ErrNotFound — кот не существует.
func (s *CatsService) Update(ctx context.Context, id int64, fields UpdateCatFields) (models.Cat, error) {
	if id <= 0 {
		return models.Cat{}, serr.ErrInvalidInput
	}
	if fields.Name != nil && strings.TrimSpace(*fields.Name) == "" {
		return models.Cat{}, serr.ErrInvalidInput
	}
	if fields.Breed != nil && strings.TrimSpace(*fields.Breed) == "" {
		return models.Cat{}, serr.ErrInvalidInput
	}

	return s.cats.Update(ctx, id, fields)
}

// Delete удаляет кота по id.
//
// Политика единая с Update: удаление несуществующего кота — ErrNotFound,
// а не тихий успех.
func (s *CatsService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return serr.ErrInvalidInput
	}
	return s.cats.Delete(ctx, id)
}
