package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// NewProfileCmd создаёт CLI-команду вывода данных текущего пользователя.
//
// Команда использует сохранённый access токен и запрашивает /auth/profile.
//
// Пример использования:
//
//	catkeeper profile
func NewProfileCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Данные текущего пользователя",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AccessToken == "" {
				return errors.New("not logged in; run: catkeeper login --email <email>")
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.Profile(app.Creds.AccessToken)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "id=%d\nemail=%s\n", resp.ID, resp.Email)
			return nil
		},
	}
}
