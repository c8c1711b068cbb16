// Package service содержит бизнес-логику приложения (catkeeper).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"

	"catkeeper/internal/server/config"
	"catkeeper/internal/shared/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users UsersRepo
	Cats  CatsRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth  *AuthService
	Users *UsersService
	Cats  *CatsService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (параметры хеширования пароля и подписи токенов).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:  NewAuthService(repos.Users, cfg),
		Users: NewUsersService(repos.Users, repos.Cats),
		Cats:  NewCatsService(repos.Cats, repos.Users),
	}
}

// UsersRepo — репозиторий пользователей.
//
// GetByEmail отдаёт хэш пароля отдельным значением: он нужен только
// AuthService и не должен просачиваться в модели.
type UsersRepo interface {
	Create(ctx context.Context, email, passwordHash string) (int64, error)
	GetByEmail(ctx context.Context, email string) (int64, string, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, id int64) error
}

// UpdateCatFields — частичное обновление кота.
//
// nil-поле означает "не менять". Пустая структура допустима:
// обновление тогда сводится к чтению текущей записи.
type UpdateCatFields struct {
	Name    *string
	Breed   *string
	LastFed *string
}

// Empty сообщает, есть ли в патче хоть одно поле.
func (f UpdateCatFields) Empty() bool {
	return f.Name == nil && f.Breed == nil && f.LastFed == nil
}

// CatsRepo — репозиторий котов (CRUD, scoping по владельцу).
type CatsRepo interface {
	Create(ctx context.Context, ownerID int64, name, breed string, lastFed *string) (models.Cat, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Cat, error)
	GetByID(ctx context.Context, id int64) (models.Cat, error)
	Update(ctx context.Context, id int64, fields UpdateCatFields) (models.Cat, error)
	Delete(ctx context.Context, id int64) error
}
