package cli

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

// NewCatsCmd создаёт группу CLI-команд для работы с котами.
//
// Подкоманды:
//   - list:   список котов текущего пользователя;
//   - create: создание нового кота;
//   - feed:   отметка времени кормления;
//   - delete: удаление кота.
//
// Все подкоманды требуют предварительного входа (catkeeper login).
func NewCatsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cats",
		Short: "Работа с котами (list/create/feed/delete)",
	}

	cmd.AddCommand(newCatsListCmd(app))
	cmd.AddCommand(newCatsCreateCmd(app))
	cmd.AddCommand(newCatsFeedCmd(app))
	cmd.AddCommand(newCatsDeleteCmd(app))

	return cmd
}

// requireToken проверяет наличие сохранённого access токена.
func requireToken(app *App) (string, error) {
	if app.Creds == nil || app.Creds.AccessToken == "" {
		return "", errors.New("not logged in; run: catkeeper login --email <email>")
	}
	return app.Creds.AccessToken, nil
}

// parseCatID разбирает позиционный аргумент с идентификатором кота.
func parseCatID(args []string) (int64, error) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid cat id: %q", args[0])
	}
	return id, nil
}

func newCatsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Список котов текущего пользователя",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			cats, err := c.ListCats(token)
			if err != nil {
				return err
			}

			if len(cats) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no cats yet")
				return nil
			}

			for _, cat := range cats {
				lastFed := "never"
				if cat.LastFed != nil {
					lastFed = *cat.LastFed
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\tlast_fed=%s\n",
					cat.ID, cat.Name, cat.Breed, lastFed)
			}
			return nil
		},
	}
}

func newCatsCreateCmd(app *App) *cobra.Command {
	var name, breed string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Создать нового кота",
		Long: `Создание кота текущего пользователя.

Пример:
  catkeeper cats create --name Barsik --breed siberian
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			cat, err := c.CreateCat(name, breed, token)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created cat %d (%s, %s)\n", cat.ID, cat.Name, cat.Breed)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "cat name")
	cmd.Flags().StringVar(&breed, "breed", "", "cat breed")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("breed")

	return cmd
}

func newCatsFeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "feed <id>",
		Short: "Отметить кормление кота (записывает текущее время)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			id, err := parseCatID(args)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			cat, err := c.FeedCat(id, time.Now().Format(time.RFC3339), token)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "cat %d (%s) fed\n", cat.ID, cat.Name)
			return nil
		},
	}
}

func newCatsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Удалить кота",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			id, err := parseCatID(args)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			if err := c.DeleteCat(id, token); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "cat %d deleted\n", id)
			return nil
		},
	}
}
