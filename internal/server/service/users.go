package service

import (
	"context"

	serr "catkeeper/internal/shared/errors"
	"catkeeper/internal/shared/models"
)

// UsersService реализует бизнес-логику работы с пользователями.
//
// Создание пользователя сюда сознательно не входит: регистрация
// (и POST /users) идёт через AuthService.Register, чтобы пароль
// всегда проходил через хэширование.
type UsersService struct {
	users UsersRepo
	cats  CatsRepo
}

// NewUsersService создаёт новый UsersService.
func NewUsersService(users UsersRepo, cats CatsRepo) *UsersService {
	return &UsersService{
		users: users,
		cats:  cats,
	}
}

// List возвращает всех пользователей (без парольного материала).
func (s *UsersService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// Get возвращает пользователя по id.
//
// Ошибки:
//   - ErrInvalidInput — некорректный id;
//   - ErrNotFound — пользователь не существует.
func (s *UsersService) Get(ctx context.Context, id int64) (models.User, error) {
	if id <= 0 {
		return models.User{}, serr.ErrInvalidInput
	}
	return s.users.GetByID(ctx, id)
}

// Delete удаляет пользователя по id.
//
// Ошибки:
//   - ErrInvalidInput — некорректный id;
//   - ErrNotFound — пользователь не существует.
func (s *UsersService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return serr.ErrInvalidInput
	}
	return s.users.Delete(ctx, id)
}

// Cats возвращает котов указанного пользователя.
//
// Несуществующий пользователь — ErrNotFound; существующий без котов —
// пустой срез.
func (s *UsersService) Cats(ctx context.Context, id int64) ([]models.Cat, error) {
	if id <= 0 {
		return nil, serr.ErrInvalidInput
	}

	if _, err := s.users.GetByID(ctx, id); err != nil {
		return nil, err
	}

	return s.cats.ListByOwner(ctx, id)
}
