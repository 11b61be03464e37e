package predictions

import (
	"sort"
	"time"

	"github.com/gosimple/slug"

	"github.com/preston-bernstein/fightcard-service/internal/domain/predictions"
	"github.com/preston-bernstein/fightcard-service/internal/optional"
)

// Group is the predictions made for one event. Anchor is a URL-safe id
// derived from the title.
type Group struct {
	Key         string                    `json:"key"`
	Anchor      string                    `json:"anchor"`
	Title       string                    `json:"title"`
	Date        optional.Value[time.Time] `json:"date"`
	Resolved    bool                      `json:"resolved"`
	Predictions []predictions.Prediction  `json:"predictions"`
}

// GroupByEvent partitions predictions by event key. Within a group, entries
// with a fight index come first in index order and the rest keep their
// arrival order. Groups are ordered by event date ascending with unknown
// dates last; ties keep first-appearance order.
func GroupByEvent(list []predictions.Prediction, meta Meta) []Group {
	index := make(map[string]int)
	groups := make([]Group, 0)
	for _, p := range list {
		i, ok := index[p.EventKey]
		if !ok {
			em := meta[p.EventKey]
			title := meta.title(p.EventKey)
			i = len(groups)
			index[p.EventKey] = i
			groups = append(groups, Group{
				Key:      p.EventKey,
				Anchor:   slug.Make(title),
				Title:    title,
				Date:     em.Date,
				Resolved: em.Resolved,
			})
		}
		groups[i].Predictions = append(groups[i].Predictions, p)
	}

	for i := range groups {
		byFightIndex(groups[i].Predictions)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		di, oki := groups[i].Date.Get()
		dj, okj := groups[j].Date.Get()
		if oki && okj {
			return di.Before(dj)
		}
		return oki && !okj
	})
	return groups
}

func byFightIndex(list []predictions.Prediction) {
	sort.SliceStable(list, func(i, j int) bool {
		xi, oki := list[i].FightIndex.Get()
		xj, okj := list[j].FightIndex.Get()
		if oki && okj {
			return xi < xj
		}
		return oki && !okj
	})
}
