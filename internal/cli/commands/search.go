package commands

import (
	"BarterAPI/internal/config"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"BarterAPI/internal/cli/api"
)

// listingView — поля объявления, которые печатает CLI.
type listingView struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	City       string `json:"city"`
	Type       string `json:"type"`
	IsArchived bool   `json:"isArchived"`
}

func printListings(list []listingView) {
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет объявлений")
		return
	}
	for _, l := range list {
		arch := ""
		if l.IsArchived {
			arch = " (в архиве)"
		}
		fmt.Fprintf(Out, "- #%d  %s  [%s, %s]  %s%s\n", l.ID, l.Title, l.Category, l.City, l.Type, arch)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
}

type searchCmd struct{}

func (searchCmd) Name() string        { return "search" }
func (searchCmd) Description() string { return "Поиск объявлений с фильтрами" }
func (searchCmd) Usage() string {
	return "search [-q <подстрока>] [-categories <a,b>] [-type <Нужно|Отдам>]"
}

func (searchCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.SetOutput(Out)
	query := fs.String("q", "", "подстрока в названии или описании")
	categories := fs.String("categories", "", "категории через запятую")
	listingType := fs.String("type", "", "тип объявления")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}

	params := url.Values{}
	if *query != "" {
		params.Set("query", *query)
	}
	if *categories != "" {
		params.Set("categories", *categories)
	}
	if *listingType != "" {
		params.Set("type", *listingType)
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/listings"
	if enc := params.Encode(); enc != "" {
		endpoint += "?" + enc
	}
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

func init() { RegisterCmd(searchCmd{}) }
