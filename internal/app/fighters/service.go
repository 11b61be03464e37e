package fighters

import (
	"context"
	"errors"
	"strings"

	domainfighters "github.com/preston-bernstein/fightcard-service/internal/domain/fighters"
	"github.com/preston-bernstein/fightcard-service/internal/domain/fights"
)

const (
	defaultPageSize = 10
	maxPages        = 20
)

// ErrEmptyQuery is returned when a search has nothing to search for.
var ErrEmptyQuery = errors.New("search query required")

// Client defines the upstream calls the fighter screens need.
type Client interface {
	Fighters(ctx context.Context, offset, limit int) ([]domainfighters.Fighter, error)
	Fighter(ctx context.Context, id int) (domainfighters.Fighter, error)
	SearchFighters(ctx context.Context, q string) (domainfighters.SearchResult, error)
	FighterFights(ctx context.Context, fighterID int) ([]fights.HistoryEntry, error)
}

// Service coordinates fighter operations using a Client.
type Service struct {
	client   Client
	pageSize int
}

// NewService constructs a Service. pageSize <= 0 uses the roster default.
func NewService(client Client, pageSize int) *Service {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Service{client: client, pageSize: pageSize}
}

// RosterQuery describes how much of the roster to load and how to filter it.
type RosterQuery struct {
	Pages    int
	PageSize int
	Filter   string
}

// Roster loads pages in order, merging each into the list by id, then
// applies the local filter. Loading stops early on a short page.
func (s *Service) Roster(ctx context.Context, q RosterQuery) ([]domainfighters.Fighter, error) {
	pages := min(max(q.Pages, 1), maxPages)
	size := q.PageSize
	if size <= 0 {
		size = s.pageSize
	}

	list := []domainfighters.Fighter{}
	for i := 0; i < pages; i++ {
		page, err := s.client.Fighters(ctx, i*size, size)
		if err != nil {
			return nil, err
		}
		list = domainfighters.MergePage(list, page)
		if len(page) < size {
			break
		}
	}
	return domainfighters.Filter(list, strings.ToLower(strings.TrimSpace(q.Filter))), nil
}

// Search runs the backend search for q.
func (s *Service) Search(ctx context.Context, q string) (domainfighters.SearchResult, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return domainfighters.SearchResult{}, ErrEmptyQuery
	}
	res, err := s.client.SearchFighters(ctx, q)
	if err != nil {
		return domainfighters.SearchResult{}, err
	}
	if res.Fighters == nil {
		res.Fighters = []domainfighters.Fighter{}
	}
	return res, nil
}

// Profile returns a fighter with its display fields derived.
func (s *Service) Profile(ctx context.Context, id int) (domainfighters.Profile, error) {
	f, err := s.client.Fighter(ctx, id)
	if err != nil {
		return domainfighters.Profile{}, err
	}
	return domainfighters.NewProfile(f), nil
}

// History returns a fighter's past bouts.
func (s *Service) History(ctx context.Context, id int) ([]fights.HistoryEntry, error) {
	list, err := s.client.FighterFights(ctx, id)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return []fights.HistoryEntry{}, nil
	}
	return list, nil
}
