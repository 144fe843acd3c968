package commands

import (
	"BarterAPI/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"BarterAPI/internal/cli/api"
)

type favoritePair struct {
	UserID    int64 `json:"userId"`
	ListingID int64 `json:"listingId"`
}

func parsePair(args []string) (favoritePair, error) {
	if len(args) != 2 {
		return favoritePair{}, ErrUsage
	}
	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return favoritePair{}, ErrUsage
	}
	listingID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return favoritePair{}, ErrUsage
	}
	return favoritePair{UserID: userID, ListingID: listingID}, nil
}

type favAddCmd struct{}

func (favAddCmd) Name() string        { return "fav-add" }
func (favAddCmd) Description() string { return "Добавить объявление в избранное" }
func (favAddCmd) Usage() string       { return "fav-add <userId> <listingId>" }

func (favAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	pair, err := parsePair(args)
	if err != nil {
		return err
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/favorites"
	resp, body, err := api.PostJSON(endpoint, pair, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
		fmt.Fprintln(Out, "Добавлено в избранное")
		return nil
	case http.StatusConflict:
		return errors.New("уже в избранном")
	case http.StatusNotFound:
		return errors.New("пользователь или объявление не найдены")
	}
	return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}

type favListCmd struct{}

func (favListCmd) Name() string        { return "fav-list" }
func (favListCmd) Description() string { return "Показать избранное пользователя" }
func (favListCmd) Usage() string       { return "fav-list <userId>" }

func (favListCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/favorites/user/" + strconv.FormatInt(userID, 10)
	resp, body, err := api.GetJSON(endpoint, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var list []listingView
	if err := json.Unmarshal(body, &list); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	printListings(list)
	return nil
}

type favRemoveCmd struct{}

func (favRemoveCmd) Name() string        { return "fav-rm" }
func (favRemoveCmd) Description() string { return "Убрать объявление из избранного" }
func (favRemoveCmd) Usage() string       { return "fav-rm <userId> <listingId>" }

func (favRemoveCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	pair, err := parsePair(args)
	if err != nil {
		return err
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/favorites/user/" +
		strconv.FormatInt(pair.UserID, 10) + "/listing/" + strconv.FormatInt(pair.ListingID, 10)
	resp, body, err := api.Delete(endpoint, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
		fmt.Fprintln(Out, "Удалено из избранного")
		return nil
	case http.StatusNotFound:
		return errors.New("запись в избранном не найдена")
	}
	return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}

func init() {
	RegisterCmd(favAddCmd{})
	RegisterCmd(favListCmd{})
	RegisterCmd(favRemoveCmd{})
}
