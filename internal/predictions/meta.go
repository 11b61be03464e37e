package predictions

import (
	"time"

	"github.com/preston-bernstein/fightcard-service/internal/optional"
)

// EventMeta is the display metadata resolved for one event key.
type EventMeta struct {
	Key      string
	Title    string
	Date     optional.Value[time.Time]
	Resolved bool
}

// Meta maps event keys to their resolved metadata.
type Meta map[string]EventMeta

func (m Meta) date(key string) (time.Time, bool) {
	em, ok := m[key]
	if !ok {
		return time.Time{}, false
	}
	return em.Date.Get()
}

// title returns the resolved title, falling back to the raw key.
func (m Meta) title(key string) string {
	if em, ok := m[key]; ok && em.Title != "" {
		return em.Title
	}
	if key == "" {
		return unknownEventTitle
	}
	return key
}

const unknownEventTitle = "Unknown event"
