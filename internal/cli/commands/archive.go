package commands

import (
	"BarterAPI/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"BarterAPI/internal/cli/api"
)

type archiveCmd struct{}

func (archiveCmd) Name() string        { return "archive" }
func (archiveCmd) Description() string { return "Отправить объявление в архив" }
func (archiveCmd) Usage() string       { return "archive <listingId>" }

func (archiveCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/listings/archive/" + strconv.FormatInt(id, 10)
	resp, body, err := api.PutJSON(endpoint, struct{}{}, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
		fmt.Fprintln(Out, "Объявление архивировано")
		return nil
	case http.StatusNotFound:
		return errors.New("объявление не найдено")
	}
	return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}

func init() { RegisterCmd(archiveCmd{}) }
