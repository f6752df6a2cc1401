package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/courtside/hoopgen/internal/config"
	"github.com/courtside/hoopgen/internal/models"
	"github.com/courtside/hoopgen/internal/rng"
	rngMocks "github.com/courtside/hoopgen/internal/rng/mocks"
	"github.com/courtside/hoopgen/internal/services/narrative"
)

func scenarioRoster(prefix string) []string {
	roster := make([]string, 0, 12)
	for i := 'A'; i < 'A'+12; i++ {
		roster = append(roster, prefix+" "+string(i))
	}
	return roster
}

func scenarioTeam(name, coach, prefix string) *models.TeamState {
	roster := scenarioRoster(prefix)
	return models.NewTeamState(name, coach, roster, roster)
}

// scenarioEngine builds an engine around a hand-made game state so tests
// can drive individual mutators directly. The narrator always draws from
// its own stream, leaving the engine stream free for scripting.
func scenarioEngine(t *testing.T, stream rng.Stream, mutate func(*config.DifficultyProfile)) *engine {
	t.Helper()

	profile := config.BuiltinProfiles()[config.LevelBasic]
	if mutate != nil {
		mutate(profile)
	}
	require.NoError(t, profile.Validate())

	narrator, err := narrative.New(&narrative.Config{
		Stream:     rng.New(&rng.Config{Seed: 99}),
		Breadth:    profile.LexiconBreadth,
		AssistBias: profile.AdversarialAssistBias,
	})
	require.NoError(t, err)

	state := models.NewGameState(string(config.LevelBasic),
		scenarioTeam("Homeland", "Coach Home", "Home"),
		scenarioTeam("Awayside", "Coach Away", "Away"))

	return newEngine(state, profile, stream, narrator)
}

func eventKinds(events []models.Event) []models.EventKind {
	kinds := make([]models.EventKind, 0, len(events))
	for _, ev := range events {
		kinds = append(kinds, ev.Kind)
	}
	return kinds
}

func TestCheckFoulOutReplacesFromBench(t *testing.T) {
	eng := scenarioEngine(t, rng.New(&rng.Config{Seed: 1}), nil)
	home := eng.state.Team("Homeland")
	player := home.OnCourt[0]

	eng.state.Apply(models.Delta{
		{Team: "Homeland", Player: player, Stat: models.StatFouls, Amount: eng.profile.FoulLimit},
	})

	require.True(t, eng.checkFoulOut(home, player))

	assert.True(t, home.Player(player).FouledOut)
	assert.NotContains(t, home.OnCourt, player)
	assert.NotContains(t, home.Bench, player)
	assert.Len(t, home.OnCourt, 5)
	assert.Len(t, home.Bench, 6)
	assert.Len(t, home.Participants, 6)
	assert.False(t, home.ShortHanded)

	kinds := eventKinds(eng.state.Events)
	require.Equal(t, []models.EventKind{models.EventKindFoulOut, models.EventKindSubstitution}, kinds)
	assert.Contains(t, eng.state.Events[0].Text, "disqualified")
	assert.Contains(t, eng.state.Events[1].Text, "fouled out")
}

func TestCheckFoulOutBelowLimitIsNoop(t *testing.T) {
	eng := scenarioEngine(t, rng.New(&rng.Config{Seed: 1}), nil)
	home := eng.state.Team("Homeland")
	player := home.OnCourt[0]

	eng.state.Apply(models.Delta{
		{Team: "Homeland", Player: player, Stat: models.StatFouls, Amount: eng.profile.FoulLimit - 1},
	})

	assert.False(t, eng.checkFoulOut(home, player))
	assert.False(t, home.Player(player).FouledOut)
	assert.Contains(t, home.OnCourt, player)
	assert.Empty(t, eng.state.Events)
}

func TestCheckFoulOutWithEmptyBenchGoesShortHanded(t *testing.T) {
	eng := scenarioEngine(t, rng.New(&rng.Config{Seed: 1}), nil)

	five := scenarioRoster("Thin")[:5]
	thin := models.NewTeamState("Homeland", "Coach Home", five, five)
	eng.state.Teams["Homeland"] = thin
	player := thin.OnCourt[0]

	eng.state.Apply(models.Delta{
		{Team: "Homeland", Player: player, Stat: models.StatFouls, Amount: eng.profile.FoulLimit},
	})

	require.True(t, eng.checkFoulOut(thin, player))

	assert.True(t, thin.ShortHanded)
	assert.Len(t, thin.OnCourt, 4)
	assert.Empty(t, thin.Bench)

	kinds := eventKinds(eng.state.Events)
	require.Equal(t, []models.EventKind{models.EventKindFoulOut, models.EventKindShortHanded}, kinds)
}

func TestCheckFoulOutOnBenchRemovesQuietly(t *testing.T) {
	eng := scenarioEngine(t, rng.New(&rng.Config{Seed: 1}), nil)
	home := eng.state.Team("Homeland")
	player := home.Bench[0]

	eng.state.Apply(models.Delta{
		{Team: "Homeland", Player: player, Stat: models.StatFouls, Amount: eng.profile.FoulLimit},
	})

	require.True(t, eng.checkFoulOut(home, player))

	assert.True(t, home.Player(player).FouledOut)
	assert.NotContains(t, home.Bench, player)
	assert.Len(t, home.OnCourt, 5)
	assert.False(t, home.ShortHanded)

	kinds := eventKinds(eng.state.Events)
	require.Equal(t, []models.EventKind{models.EventKindFoulOut}, kinds)
}

func TestFreeThrowsMadeLastHandsBallToOpponent(t *testing.T) {
	ctrl := gomock.NewController(t)
	stream := rngMocks.NewMockStream(ctrl)
	eng := scenarioEngine(t, stream, nil)
	home := eng.state.Team("Homeland")
	away := eng.state.Team("Awayside")
	shooter := home.OnCourt[0]

	gomock.InOrder(
		stream.EXPECT().Float64().Return(0.9),
		stream.EXPECT().Float64().Return(0.3),
	)

	eng.freeThrows(shooter, home, away, 2, false)

	line := home.Player(shooter).Stats
	assert.Equal(t, 1, line.Points)
	assert.Equal(t, 1, line.FTMade)
	assert.Equal(t, 2, line.FTAttempted)

	kinds := eventKinds(eng.state.Events)
	require.Equal(t, []models.EventKind{models.EventKindFreeThrowMissed, models.EventKindFreeThrowMade}, kinds)
	assert.Equal(t, "Awayside", eng.state.Possession)
	assert.Empty(t, eng.state.BallHandler)
}

func TestFreeThrowsMissedLastGoesToRebound(t *testing.T) {
	ctrl := gomock.NewController(t)
	stream := rngMocks.NewMockStream(ctrl)
	eng := scenarioEngine(t, stream, nil)
	home := eng.state.Team("Homeland")
	away := eng.state.Team("Awayside")
	shooter := home.OnCourt[0]

	gomock.InOrder(
		stream.EXPECT().Float64().Return(0.3),
		stream.EXPECT().Float64().Return(0.9),
		stream.EXPECT().Float64().Return(0.9),
		stream.EXPECT().Intn(5).Return(2),
	)

	eng.freeThrows(shooter, home, away, 2, false)

	rebounder := away.OnCourt[2]
	line := away.Player(rebounder).Stats
	assert.Equal(t, 1, line.Rebounds)
	assert.Equal(t, 1, line.DefensiveRebounds)

	kinds := eventKinds(eng.state.Events)
	require.Equal(t, []models.EventKind{
		models.EventKindFreeThrowMade,
		models.EventKindFreeThrowMissed,
		models.EventKindDefensiveRebound,
	}, kinds)
	assert.Equal(t, "Awayside", eng.state.Possession)
	assert.Equal(t, rebounder, eng.state.BallHandler)
}

func TestFreeThrowsBetweenShotWindowKeepsShooterOnFloor(t *testing.T) {
	eng := scenarioEngine(t, rng.New(&rng.Config{Seed: 3}), func(p *config.DifficultyProfile) {
		p.SubstitutionRate = 1
	})
	home := eng.state.Team("Homeland")
	away := eng.state.Team("Awayside")
	shooter := home.OnCourt[0]

	eng.freeThrows(shooter, home, away, 2, true)

	kinds := eventKinds(eng.state.Events)
	require.GreaterOrEqual(t, len(kinds), 4)
	assert.Equal(t, models.EventKindSubstitution, kinds[1])
	assert.Equal(t, models.EventKindSubstitution, kinds[2])
	assert.Equal(t, "Homeland", eng.state.Events[1].Team)
	assert.Equal(t, "Awayside", eng.state.Events[2].Team)
	assert.Contains(t, home.OnCourt, shooter)
	assert.Len(t, home.OnCourt, 5)
	assert.Len(t, away.OnCourt, 5)
}

// applyScenarioScore records a made basket the way the score events do,
// so review tests start from a reviewable state.
func applyScenarioScore(eng *engine, points int) *models.ScoringRecord {
	home := eng.state.Team("Homeland")
	passer, scorer := home.OnCourt[0], home.OnCourt[1]
	made, attempted := models.Stat2PTMade, models.Stat2PTAttempted
	kind := models.EventKindScore2PT
	if points == 3 {
		made, attempted = models.Stat3PTMade, models.Stat3PTAttempted
		kind = models.EventKindScore3PT
	}

	delta := models.Delta{
		{Team: "Homeland", Player: passer, Stat: models.StatAssists, Amount: 1},
		{Team: "Homeland", Player: scorer, Stat: models.StatPoints, Amount: points},
		{Team: "Homeland", Player: scorer, Stat: made, Amount: 1},
		{Team: "Homeland", Player: scorer, Stat: attempted, Amount: 1},
	}
	eng.state.Apply(delta)
	eng.state.LastScoring = &models.ScoringRecord{
		Kind:       kind,
		PointValue: points,
		Team:       "Homeland",
		Passer:     passer,
		Scorer:     scorer,
		Delta:      delta,
	}
	return eng.state.LastScoring
}

func TestReviewOverturnRulesOffensiveFoul(t *testing.T) {
	ctrl := gomock.NewController(t)
	stream := rngMocks.NewMockStream(ctrl)
	eng := scenarioEngine(t, stream, func(p *config.DifficultyProfile) {
		p.VARRate = 1
	})
	home := eng.state.Team("Homeland")
	away := eng.state.Team("Awayside")
	rec := applyScenarioScore(eng, 2)

	gomock.InOrder(
		stream.EXPECT().Float64().Return(0.0),
		stream.EXPECT().Intn(2).Return(0),
		stream.EXPECT().Intn(5).Return(0),
	)

	eng.reviewLastScore(home, away)

	assert.Zero(t, home.Stats.Points)
	assert.Zero(t, home.Stats.TwoPTMade)
	assert.Zero(t, home.Stats.TwoPTAttempted)
	assert.Zero(t, home.Stats.Assists)
	assert.Equal(t, 1, home.Stats.Fouls)
	assert.Equal(t, 1, home.Stats.Turnovers)

	scorer := home.Player(rec.Scorer).Stats
	assert.Zero(t, scorer.Points)
	assert.Equal(t, 1, scorer.Fouls)
	assert.Equal(t, 1, scorer.Turnovers)

	assert.Equal(t, 1, home.FoulsThisPeriod)
	assert.Nil(t, eng.state.LastScoring)
	require.NoError(t, eng.state.CheckInvariants())

	kinds := eventKinds(eng.state.Events)
	require.Equal(t, []models.EventKind{models.EventKindVAROverturn}, kinds)
	assert.Contains(t, eng.state.Events[0].Text, "offensive foul")
}

func TestReviewOverturnPastTeamFoulLimitAwardsBonus(t *testing.T) {
	ctrl := gomock.NewController(t)
	stream := rngMocks.NewMockStream(ctrl)
	eng := scenarioEngine(t, stream, func(p *config.DifficultyProfile) {
		p.VARRate = 1
		p.TeamFoulLimit = 5
	})
	home := eng.state.Team("Homeland")
	away := eng.state.Team("Awayside")
	home.FoulsThisPeriod = 5
	applyScenarioScore(eng, 2)

	gomock.InOrder(
		stream.EXPECT().Float64().Return(0.0),
		stream.EXPECT().Intn(2).Return(0),
		stream.EXPECT().Intn(5).Return(0),
		stream.EXPECT().Float64().Return(0.3),
		stream.EXPECT().Float64().Return(0.3),
	)

	eng.reviewLastScore(home, away)

	victim := away.OnCourt[0]
	line := away.Player(victim).Stats
	assert.Equal(t, 2, line.Points)
	assert.Equal(t, 2, line.FTMade)
	assert.Equal(t, 2, line.FTAttempted)
	assert.Equal(t, 6, home.FoulsThisPeriod)
	assert.Equal(t, "Homeland", eng.state.Possession)

	kinds := eventKinds(eng.state.Events)
	require.Equal(t, []models.EventKind{
		models.EventKindVAROverturn,
		models.EventKindBonusFreeThrows,
		models.EventKindFreeThrowMade,
		models.EventKindFreeThrowMade,
	}, kinds)
	assert.Contains(t, eng.state.Events[1].Text, "bonus")
}

func TestReviewReclassifyDowngradesThree(t *testing.T) {
	ctrl := gomock.NewController(t)
	stream := rngMocks.NewMockStream(ctrl)
	eng := scenarioEngine(t, stream, func(p *config.DifficultyProfile) {
		p.VARRate = 1
	})
	home := eng.state.Team("Homeland")
	away := eng.state.Team("Awayside")
	rec := applyScenarioScore(eng, 3)

	gomock.InOrder(
		stream.EXPECT().Float64().Return(0.0),
		stream.EXPECT().Intn(2).Return(1),
	)

	eng.reviewLastScore(home, away)

	scorer := home.Player(rec.Scorer).Stats
	assert.Equal(t, 2, scorer.Points)
	assert.Zero(t, scorer.ThreePTMade)
	assert.Zero(t, scorer.ThreePTAttempted)
	assert.Equal(t, 1, scorer.TwoPTMade)
	assert.Equal(t, 1, scorer.TwoPTAttempted)
	assert.Equal(t, 1, home.Player(rec.Passer).Stats.Assists)
	assert.Equal(t, 2, home.Stats.Points)
	require.NoError(t, eng.state.CheckInvariants())

	kinds := eventKinds(eng.state.Events)
	require.Equal(t, []models.EventKind{models.EventKindVARReclassify}, kinds)
	assert.Contains(t, eng.state.Events[0].Text, "toe on the line")
}

func TestReviewFallsBackToUpgradeWithEmptyBench(t *testing.T) {
	ctrl := gomock.NewController(t)
	stream := rngMocks.NewMockStream(ctrl)
	eng := scenarioEngine(t, stream, func(p *config.DifficultyProfile) {
		p.VARRate = 1
	})

	five := scenarioRoster("Thin")[:5]
	thin := models.NewTeamState("Homeland", "Coach Home", five, five)
	eng.state.Teams["Homeland"] = thin
	away := eng.state.Team("Awayside")
	rec := applyScenarioScore(eng, 2)

	gomock.InOrder(
		stream.EXPECT().Float64().Return(0.0),
		stream.EXPECT().Intn(2).Return(0),
	)

	eng.reviewLastScore(thin, away)

	scorer := thin.Player(rec.Scorer).Stats
	assert.Equal(t, 3, scorer.Points)
	assert.Zero(t, scorer.TwoPTMade)
	assert.Equal(t, 1, scorer.ThreePTMade)
	assert.Zero(t, thin.Stats.Fouls)
	require.NoError(t, eng.state.CheckInvariants())

	kinds := eventKinds(eng.state.Events)
	require.Equal(t, []models.EventKind{models.EventKindVARReclassify}, kinds)
	assert.Contains(t, eng.state.Events[0].Text, "foot behind the line")
}

func TestBillChargesAgainstPeriodBudget(t *testing.T) {
	eng := scenarioEngine(t, rng.New(&rng.Config{Seed: 1}), nil)
	eng.targets = []int{10, 10, 10, 10}
	eng.target = 40

	eng.billed = 8
	eng.bill(5, false)
	assert.Equal(t, 10, eng.billed)
	assert.Equal(t, 2, eng.total)
}

func TestBillHoldsLatePeriodsOpenUntilShot(t *testing.T) {
	eng := scenarioEngine(t, rng.New(&rng.Config{Seed: 1}), nil)
	eng.targets = []int{10, 10, 10, 10}
	eng.target = 40
	eng.state.Period = models.PeriodQ4

	eng.billed = 8
	eng.bill(5, false)
	assert.Equal(t, 9, eng.billed, "a non-shot possession must not fill a late period")

	eng.bill(5, true)
	assert.Equal(t, 10, eng.billed, "a shot attempt closes the budget")

	eng.bill(3, false)
	assert.Equal(t, 10, eng.billed, "a spent budget charges nothing")
}

func TestAdvanceQuarterRotatesPossession(t *testing.T) {
	eng := scenarioEngine(t, rng.New(&rng.Config{Seed: 1}), nil)
	eng.targets = []int{8, 8, 8, 8}
	eng.target = 32
	eng.openers = [4]string{"Homeland", "Awayside", "Homeland", "Awayside"}
	eng.billed = 8
	eng.state.Team("Homeland").FoulsThisPeriod = 3
	eng.state.LastScoring = &models.ScoringRecord{}

	assert.False(t, eng.advanceQuarter(false), "a non-shot ending must not close a quarter")

	require.True(t, eng.advanceQuarter(true))
	assert.Equal(t, models.PeriodQ2, eng.state.Period)
	assert.Equal(t, "Awayside", eng.state.Possession)
	assert.Empty(t, eng.state.BallHandler)
	assert.Zero(t, eng.billed)
	assert.Zero(t, eng.state.Team("Homeland").FoulsThisPeriod)
	assert.Nil(t, eng.state.LastScoring)

	require.Len(t, eng.state.Events, 2)
	assert.Equal(t, "End of Q1.", eng.state.Events[0].Text)
	assert.Equal(t, "Start of Q2.", eng.state.Events[1].Text)
}

func TestAdvanceQuarterNeverClosesRegulationEnd(t *testing.T) {
	eng := scenarioEngine(t, rng.New(&rng.Config{Seed: 1}), nil)
	eng.targets = []int{8, 8, 8, 8}
	eng.target = 32
	eng.state.Period = models.PeriodQ4
	eng.billed = 8

	assert.False(t, eng.advanceQuarter(true))
	assert.Empty(t, eng.state.Events)
}

func TestMaybeExtendOvertimeOnTie(t *testing.T) {
	eng := scenarioEngine(t, rng.New(&rng.Config{Seed: 1}), nil)
	eng.targets = []int{8, 8, 8, 8}
	eng.target = 32
	eng.total = 32
	eng.state.Period = models.PeriodQ4

	eng.maybeExtendOvertime()

	assert.Equal(t, models.Overtime(1), eng.state.Period)
	assert.Equal(t, []int{8, 8, 8, 8, 4}, eng.targets)
	assert.Equal(t, 36, eng.target)
	assert.Zero(t, eng.billed)
	assert.NotEmpty(t, eng.state.Possession)
	assert.NotEmpty(t, eng.state.BallHandler)

	kinds := eventKinds(eng.state.Events)
	require.Equal(t, []models.EventKind{
		models.EventKindPeriodEnd,
		models.EventKindOvertimeCalled,
		models.EventKindJumpBall,
		models.EventKindPeriodStart,
	}, kinds)
	assert.Equal(t, "Q4 ends in a tie. Going to OT1.", eng.state.Events[1].Text)
	assert.Equal(t, "Start of OT1.", eng.state.Events[3].Text)
}

func TestMaybeExtendOvertimeSkipsDecidedGames(t *testing.T) {
	eng := scenarioEngine(t, rng.New(&rng.Config{Seed: 1}), nil)
	eng.targets = []int{8, 8, 8, 8}
	eng.target = 32
	eng.total = 32
	eng.state.Period = models.PeriodQ4
	eng.state.Apply(models.Delta{
		{Team: "Homeland", Player: eng.state.Team("Homeland").OnCourt[0], Stat: models.StatPoints, Amount: 2},
	})

	eng.maybeExtendOvertime()

	assert.Equal(t, models.PeriodQ4, eng.state.Period)
	assert.Empty(t, eng.state.Events)
	assert.Equal(t, 32, eng.target)
}
