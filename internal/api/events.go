package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/preston-bernstein/fightcard-service/internal/domain/events"
)

// UpcomingEvents lists events on or after today. The backend answers 404 once
// a page runs past the end, which is reported as an empty page.
func (c *Client) UpcomingEvents(ctx context.Context, offset, limit int) ([]events.Event, error) {
	return c.listEvents(ctx, OpUpcomingEvents, "/events/upcoming", offset, limit)
}

// PastEvents lists concluded events, most recent first.
func (c *Client) PastEvents(ctx context.Context, offset, limit int) ([]events.Event, error) {
	return c.listEvents(ctx, OpPastEvents, "/events/past", offset, limit)
}

func (c *Client) listEvents(ctx context.Context, op, path string, offset, limit int) ([]events.Event, error) {
	var payload []eventWire
	_, err := c.do(ctx, request{
		op:          op,
		method:      http.MethodGet,
		path:        path,
		query:       pageQuery(offset, limit),
		absentOn404: true,
	}, &payload)
	if err != nil {
		return nil, err
	}
	return mapEvents(payload), nil
}

// MainEvents returns the headline bout of the next few events.
func (c *Client) MainEvents(ctx context.Context, limit int) ([]events.MainEvent, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var payload []mainEventWire
	if _, err := c.do(ctx, request{
		op:     OpMainEvents,
		method: http.MethodGet,
		path:   "/events/main-events",
		query:  query,
	}, &payload); err != nil {
		return nil, err
	}
	return mapMainEvents(payload), nil
}

// EventSummary looks up an event's title and date by its URL.
func (c *Client) EventSummary(ctx context.Context, eventURL string) (events.Summary, error) {
	var payload eventSummaryWire
	if _, err := c.do(ctx, request{
		op:     OpEventSummary,
		method: http.MethodGet,
		path:   "/ufc/event/summary",
		query:  url.Values{"event_url": {eventURL}},
	}, &payload); err != nil {
		return events.Summary{}, err
	}

	summary := mapSummary(payload)
	if summary.URL == "" {
		summary.URL = eventURL
	}
	return summary, nil
}

func pageQuery(offset, limit int) url.Values {
	query := url.Values{"offset": {strconv.Itoa(max(offset, 0))}}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	return query
}
