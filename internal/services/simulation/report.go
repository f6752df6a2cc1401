package simulation

import (
	"fmt"
	"sort"

	"github.com/courtside/hoopgen/internal/models"
)

// buildExample assembles the narrative artifact from the finished game.
func buildExample(state *models.GameState) *models.GameExample {
	plays := make([]models.PlayEntry, 0, len(state.Events))
	for _, ev := range state.Events {
		plays = append(plays, models.PlayEntry{
			EventID:     ev.ID,
			Description: ev.Text,
		})
	}

	return &models.GameExample{
		Matchup:    matchup(state),
		Teams:      teamSheets(state, false),
		PlayByPlay: plays,
	}
}

// buildReport assembles the ground-truth artifact from the finished
// game. Every rostered player appears in the box score, including those
// who never played.
func buildReport(state *models.GameState) *models.TrueReport {
	stats := make(map[string]models.TeamBox, 2)
	for _, name := range []string{state.TeamA, state.TeamB} {
		team := state.Team(name)
		players := make(map[string]models.StatLine, len(team.Roster))
		for _, player := range team.Roster {
			players[player] = team.Players[player].Stats
		}
		stats[name] = models.TeamBox{
			Stats:   team.Stats,
			Players: players,
		}
	}

	return &models.TrueReport{
		Matchup:    matchup(state),
		Difficulty: state.Difficulty,
		FinalScore: fmt.Sprintf("%s: %d, %s: %d", state.TeamA, state.Score(state.TeamA), state.TeamB, state.Score(state.TeamB)),
		Teams:      teamSheets(state, true),
		FinalStats: stats,
	}
}

func matchup(state *models.GameState) string {
	return fmt.Sprintf("%s vs %s", state.TeamA, state.TeamB)
}

// teamSheets builds the per-team metadata block shared by both
// artifacts. The report variant carries the sorted participant list; the
// example leaves it off so the set must be recovered from the log.
func teamSheets(state *models.GameState, withParticipants bool) map[string]models.TeamInfo {
	sheets := make(map[string]models.TeamInfo, 2)
	for _, name := range []string{state.TeamA, state.TeamB} {
		team := state.Team(name)
		info := models.TeamInfo{
			Coach:          team.Coach,
			Roster:         append([]string(nil), team.Roster...),
			StartingLineup: append([]string(nil), team.StartingLineup...),
			Bench:          append([]string(nil), team.InitialBench...),
		}
		if withParticipants {
			info.Participants = append([]string(nil), team.Participants...)
			sort.Strings(info.Participants)
		}
		sheets[name] = info
	}
	return sheets
}
