package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/preston-bernstein/fightcard-service/internal/domain/fights"
	"github.com/preston-bernstein/fightcard-service/internal/optional"
)

// FighterFights returns a fighter's bout history; 404 means none recorded.
func (c *Client) FighterFights(ctx context.Context, fighterID int) ([]fights.HistoryEntry, error) {
	var payload []fightHistoryWire
	if _, err := c.do(ctx, request{
		op:          OpFighterFights,
		method:      http.MethodGet,
		path:        "/fighters/" + strconv.Itoa(fighterID) + "/fights",
		absentOn404: true,
	}, &payload); err != nil {
		return nil, err
	}
	return mapHistory(payload), nil
}

// EventFights returns the fight card of an event. The backend reports an
// empty card as 404, which maps to an empty slice.
func (c *Client) EventFights(ctx context.Context, eventID int) ([]fights.Fight, error) {
	path, query := c.adapter.eventFights(eventID)

	var payload []fightWire
	if _, err := c.do(ctx, request{
		op:          OpEventFights,
		method:      http.MethodGet,
		path:        path,
		query:       query,
		absentOn404: true,
	}, &payload); err != nil {
		return nil, err
	}
	return mapFights(payload), nil
}

// Fight fetches a single bout by id.
func (c *Client) Fight(ctx context.Context, fightID int) (fights.Fight, error) {
	var payload fightWire
	if _, err := c.do(ctx, request{
		op:     OpFight,
		method: http.MethodGet,
		path:   "/fights/fight",
		query:  url.Values{"fight_id": {strconv.Itoa(fightID)}},
	}, &payload); err != nil {
		return fights.Fight{}, err
	}

	fight := mapFight(payload)
	if !fight.ID.IsPresent() {
		fight.ID = optional.Some(fightID)
	}
	return fight, nil
}
