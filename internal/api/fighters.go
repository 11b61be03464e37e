package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/preston-bernstein/fightcard-service/internal/domain/fighters"
)

// Fighters returns one page of the roster.
func (c *Client) Fighters(ctx context.Context, offset, limit int) ([]fighters.Fighter, error) {
	var payload []fighterWire
	if _, err := c.do(ctx, request{
		op:     OpFighters,
		method: http.MethodGet,
		path:   "/fighters",
		query:  pageQuery(offset, limit),
	}, &payload); err != nil {
		return nil, err
	}
	return mapFighters(payload), nil
}

// Fighter fetches one profile. Unknown ids surface the backend's 404.
func (c *Client) Fighter(ctx context.Context, id int) (fighters.Fighter, error) {
	var payload fighterWire
	if _, err := c.do(ctx, request{
		op:     OpFighter,
		method: http.MethodGet,
		path:   "/fighters/" + strconv.Itoa(id),
	}, &payload); err != nil {
		return fighters.Fighter{}, err
	}
	return mapFighter(payload), nil
}

// SearchFighters runs the backend's name/nickname/division/country search.
func (c *Client) SearchFighters(ctx context.Context, q string) (fighters.SearchResult, error) {
	var payload fighterSearchWire
	if _, err := c.do(ctx, request{
		op:     OpSearchFighters,
		method: http.MethodGet,
		path:   "/fighters/search",
		query:  url.Values{"q": {strings.TrimSpace(q)}},
	}, &payload); err != nil {
		return fighters.SearchResult{}, err
	}

	list := mapFighters(payload.Fighters)
	total := payload.Total
	if total < len(list) {
		total = len(list)
	}
	return fighters.SearchResult{Fighters: list, Total: total}, nil
}
