// Методы клиента для работы с котами: список, создание, кормление, удаление.
package api

import "fmt"

// Cat описывает кота в ответах сервера.
type Cat struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Breed   string  `json:"breed"`
	OwnerID int64   `json:"ownerId"`
	LastFed *string `json:"lastFed,omitempty"`
}

// CreateCatRequest описывает тело запроса создания кота.
type CreateCatRequest struct {
	Name  string `json:"name"`
	Breed string `json:"breed"`
}

// feedCatRequest — тело PATCH-запроса отметки кормления.
type feedCatRequest struct {
	LastFed string `json:"lastFed"`
}

// ListCats возвращает всех котов текущего пользователя.
func (c *Client) ListCats(accessToken string) ([]Cat, error) {
	var resp []Cat
	err := c.GetJSON("/cats", &resp, accessToken)
	return resp, err
}

// CreateCat создаёт нового кота текущего пользователя.
func (c *Client) CreateCat(name, breed string, accessToken string) (Cat, error) {
	var resp Cat
	err := c.PostJSON("/cats", CreateCatRequest{Name: name, Breed: breed}, &resp, accessToken)
	return resp, err
}

// FeedCat отмечает время кормления кота.
//
// lastFed — строка времени (например, RFC3339), записывается как есть.
func (c *Client) FeedCat(id int64, lastFed string, accessToken string) (Cat, error) {
	var resp Cat
	err := c.PatchJSON(fmt.Sprintf("/cats/%d", id), feedCatRequest{LastFed: lastFed}, &resp, accessToken)
	return resp, err
}

// DeleteCat удаляет кота по идентификатору.
func (c *Client) DeleteCat(id int64, accessToken string) error {
	return c.DeleteJSON(fmt.Sprintf("/cats/%d", id), nil, accessToken)
}
