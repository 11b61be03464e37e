package api

import "encoding/json"

type eventWire struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Date         string  `json:"date"`
	Venue        *string `json:"venue"`
	Location     string  `json:"location"`
	LocationFlag *string `json:"location_flag"`
}

type eventSummaryWire struct {
	EventURL   string `json:"event_url"`
	EventTitle string `json:"event_title"`
	EventDate  string `json:"event_date"`
}

type mainEventWire struct {
	EventID          int     `json:"event_id"`
	EventTitle       string  `json:"event_title"`
	EventDate        string  `json:"event_date"`
	Fighter1ID       int     `json:"fighter_1_id"`
	Fighter2ID       int     `json:"fighter_2_id"`
	Fighter1Name     string  `json:"fighter_1_name"`
	Fighter2Name     string  `json:"fighter_2_name"`
	Fighter1Nickname *string `json:"fighter_1_nickname"`
	Fighter2Nickname *string `json:"fighter_2_nickname"`
	Fighter1Image    *string `json:"fighter_1_image"`
	Fighter2Image    *string `json:"fighter_2_image"`
	Fighter1Ranking  *string `json:"fighter_1_ranking"`
	Fighter2Ranking  *string `json:"fighter_2_ranking"`
}

type fighterWire struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Nickname    *string `json:"nickname"`
	ImageURL    *string `json:"image_url"`
	Record      *string `json:"record"`
	Ranking     *string `json:"ranking"`
	Country     *string `json:"country"`
	City        *string `json:"city"`
	DOB         *string `json:"dob"`
	Height      *string `json:"height"`
	WeightClass *string `json:"weight_class"`
	Association *string `json:"association"`
}

type fighterSearchWire struct {
	Fighters []fighterWire `json:"fighters"`
	Total    int           `json:"total"`
}

type fightWire struct {
	ID              *int    `json:"id"`
	EventID         *int    `json:"event_id"`
	MatchNumber     *int    `json:"match_number"`
	Fighter1ID      int     `json:"fighter_1_id"`
	Fighter2ID      int     `json:"fighter_2_id"`
	Fighter1Name    string  `json:"fighter_1_name"`
	Fighter2Name    string  `json:"fighter_2_name"`
	Fighter1Image   *string `json:"fighter_1_image"`
	Fighter2Image   *string `json:"fighter_2_image"`
	Fighter1Ranking *string `json:"fighter_1_ranking"`
	Fighter2Ranking *string `json:"fighter_2_ranking"`
	Fighter1Flag    *string `json:"fighter_1_flag"`
	Fighter2Flag    *string `json:"fighter_2_flag"`
	WeightClass     string  `json:"weight_class"`
	WinnerID        *int    `json:"winner_id"`
	Winner          *string `json:"winner"`
	Method          *string `json:"method"`
	Round           *int    `json:"round"`
	Time            *string `json:"time"`
}

type fightHistoryWire struct {
	FightID      *int    `json:"fight_id"`
	EventID      *int    `json:"event_id"`
	EventTitle   string  `json:"event_title"`
	EventDate    *string `json:"event_date"`
	OpponentID   *int    `json:"opponent_id"`
	OpponentName string  `json:"opponent_name"`
	Result       string  `json:"result"`
	Method       *string `json:"method"`
	Round        *int    `json:"round"`
	Time         *string `json:"time"`
}

type credentialsWire struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenWire struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// rawList defers decoding of list elements to a revision adapter.
type rawList []json.RawMessage
