package commands

import (
	"BarterAPI/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"BarterAPI/internal/cli/api"
)

type listingsCmd struct{}

func (listingsCmd) Name() string        { return "listings" }
func (listingsCmd) Description() string { return "Показать активные объявления пользователя" }
func (listingsCmd) Usage() string       { return "listings <userId> [archived]" }

func (listingsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}

	path := "/api/listings/user/" + strconv.FormatInt(userID, 10)
	if len(args) == 2 {
		if args[1] != "archived" {
			return ErrUsage
		}
		path = "/api/listings/archived/" + strconv.FormatInt(userID, 10)
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + path
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

func init() { RegisterCmd(listingsCmd{}) }
