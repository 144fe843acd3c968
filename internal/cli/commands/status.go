package commands

import (
	"BarterAPI/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"BarterAPI/internal/cli/api"
	"BarterAPI/internal/cli/auth"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Показать текущего пользователя" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	token, _ := auth.LoadToken(cfg.TokenFile)
	if token == "" {
		fmt.Fprintln(Out, "Status: anonymous (no token)")
		return nil
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/auth/me"
	resp, body, err := api.GetJSON(endpoint, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized {
		fmt.Fprintln(Out, "Status: anonymous (token rejected)")
		return nil
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var profile struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal(body, &profile); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "Status: logged in as %s (id=%d, %s)\n", profile.Name, profile.ID, profile.Email)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
