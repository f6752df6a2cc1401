package models

import "encoding/json"

// RecordType distinguishes the two line kinds in the JSONL store.
type RecordType string

const (
	// RecordTypeExample marks the narrative artifact line
	RecordTypeExample RecordType = "example"

	// RecordTypeTrueReport marks the ground-truth artifact line
	RecordTypeTrueReport RecordType = "true_report"
)

// TeamInfo is the roster metadata embedded in both artifacts. The
// example omits Participants; the report carries them sorted.
type TeamInfo struct {
	Coach          string   `json:"coach"`
	Roster         []string `json:"roster"`
	StartingLineup []string `json:"starting_lineup"`
	Bench          []string `json:"bench"`
	Participants   []string `json:"participants,omitempty"`
}

// PlayEntry is one rendered play-by-play line on the wire.
type PlayEntry struct {
	EventID     int    `json:"event_id"`
	Description string `json:"description"`
}

// TeamBox pairs a team's totals with its per-player lines.
type TeamBox struct {
	Stats   StatLine            `json:"stats"`
	Players map[string]StatLine `json:"players"`
}

// GameExample is the narrative artifact handed to the downstream task:
// the matchup, team metadata without participants, and the play-by-play.
type GameExample struct {
	Matchup    string              `json:"matchup"`
	Teams      map[string]TeamInfo `json:"teams"`
	PlayByPlay []PlayEntry         `json:"play_by_play"`
}

// TrueReport is the ground-truth artifact paired with an example.
type TrueReport struct {
	Matchup    string              `json:"matchup"`
	Difficulty string              `json:"difficulty"`
	FinalScore string              `json:"final_score"`
	Teams      map[string]TeamInfo `json:"teams"`
	FinalStats map[string]TeamBox  `json:"final_stats"`
}

// GameRecord bundles the two artifacts for one generated game.
type GameRecord struct {
	// GameID keys the pair in the store, e.g. "hard_game_3"
	GameID string

	// Example is the narrative artifact
	Example *GameExample

	// Report is the ground-truth artifact
	Report *TrueReport
}

// RecordLine is the JSONL envelope: one line per artifact, example and
// report lines consecutive per game id. The layout is a compatibility
// contract with the downstream evaluation and must not change.
type RecordLine struct {
	GameID string          `json:"game_id"`
	Type   RecordType      `json:"type"`
	Data   json.RawMessage `json:"data"`
}
