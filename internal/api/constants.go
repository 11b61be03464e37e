package api

import "time"

const (
	defaultBaseURL     = "http://localhost:8000"
	defaultTimeout     = 10 * time.Second
	defaultMaxAttempts = 3
	defaultRetryDelay  = time.Second

	// errorBodyLimit caps how much of a failed response is read for its message.
	errorBodyLimit = 4096
)

// Operation names used for logs and metrics.
const (
	OpUpcomingEvents   = "events.upcoming"
	OpPastEvents       = "events.past"
	OpMainEvents       = "events.main"
	OpEventSummary     = "events.summary"
	OpFighters         = "fighters.list"
	OpFighter          = "fighters.get"
	OpSearchFighters   = "fighters.search"
	OpFighterFights    = "fighters.fights"
	OpEventFights      = "fights.event"
	OpFight            = "fights.get"
	OpCreatePrediction = "predictions.create"
	OpPrediction       = "predictions.get"
	OpPredictions      = "predictions.list"
	OpRegister         = "auth.register"
	OpLogin            = "auth.login"
)
