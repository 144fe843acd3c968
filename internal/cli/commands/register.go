package commands

import (
	"BarterAPI/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"BarterAPI/internal/cli/api"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Зарегистрировать нового пользователя" }
func (registerCmd) Usage() string       { return "register <email> <password> <name> <phone>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 4 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/users/register"
	req := RegisterRequest{Email: args[0], Password: args[1], Name: args[2], Phone: args[3]}
	resp, body, err := api.PostJSON(endpoint, req, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusCreated:
		fmt.Fprintln(Out, "Registered successfully")
		return nil
	case http.StatusConflict:
		return errors.New("email already in use")
	case http.StatusBadRequest:
		return fmt.Errorf("invalid input: %s", strings.TrimSpace(string(body)))
	}
	return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
}

func init() { RegisterCmd(registerCmd{}) }
