package narrative

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/hoopgen/internal/models"
	"github.com/courtside/hoopgen/internal/rng"
)

func newTestService(t *testing.T, seed int64, breadth int, bias float64) *Service {
	t.Helper()

	svc, err := New(&Config{
		Stream:     rng.New(&rng.Config{Seed: seed}),
		Breadth:    breadth,
		AssistBias: bias,
	})
	require.NoError(t, err)

	return svc
}

func TestNewValidatesConfig(t *testing.T) {
	stream := rng.New(&rng.Config{Seed: 1})

	testCases := []struct {
		name     string
		cfg      *Config
		expected error
	}{
		{
			name:     "nil config",
			cfg:      nil,
			expected: ErrNilConfig,
		},
		{
			name:     "nil stream",
			cfg:      &Config{Breadth: 1},
			expected: ErrNilStream,
		},
		{
			name:     "zero breadth",
			cfg:      &Config{Stream: stream, Breadth: 0},
			expected: ErrInvalidBreadth,
		},
		{
			name:     "bias above one",
			cfg:      &Config{Stream: stream, Breadth: 1, AssistBias: 1.5},
			expected: ErrInvalidBias,
		},
		{
			name:     "negative bias",
			cfg:      &Config{Stream: stream, Breadth: 1, AssistBias: -0.1},
			expected: ErrInvalidBias,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, err := New(tc.cfg)
			assert.Nil(t, svc)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestNarrowSizes(t *testing.T) {
	testCases := []struct {
		poolSize int
		breadth  int
		expected int
	}{
		{poolSize: 10, breadth: 4, expected: 2},
		{poolSize: 9, breadth: 4, expected: 2},
		{poolSize: 6, breadth: 4, expected: 2},
		{poolSize: 10, breadth: 2, expected: 5},
		{poolSize: 9, breadth: 2, expected: 4},
		{poolSize: 6, breadth: 2, expected: 4},
		{poolSize: 10, breadth: 1, expected: 10},
		{poolSize: 6, breadth: 1, expected: 6},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("pool %d breadth %d", tc.poolSize, tc.breadth), func(t *testing.T) {
			pool := make([]string, tc.poolSize)
			for i := range pool {
				pool[i] = fmt.Sprintf("phrase-%d", i)
			}

			stream := rng.New(&rng.Config{Seed: 7})
			sub := narrow(stream, pool, tc.breadth)
			assert.Len(t, sub, tc.expected)

			seen := make(map[string]bool)
			for _, phrase := range sub {
				assert.False(t, seen[phrase], "duplicate phrase %q", phrase)
				assert.Contains(t, pool, phrase)
				seen[phrase] = true
			}
		})
	}
}

func TestSameSeedSameWording(t *testing.T) {
	render := func(svc *Service) []string {
		out := []string{
			svc.JumpBall("Ora", "Pall", "Ora"),
		}
		for i := 0; i < 50; i++ {
			out = append(out,
				svc.Pass("Ora", "Pall"),
				svc.AssistedMake("Ora", "Pall", i%2 == 0),
				svc.ReverseAssistedMake("Ora", "Pall", i%2 == 1),
				svc.AssistedMiss("Pall", "Ora", i%3 == 0),
			)
		}
		return out
	}

	first := render(newTestService(t, 99, 2, 0.5))
	second := render(newTestService(t, 99, 2, 0.5))

	assert.Equal(t, first, second)
}

func TestBreadthLimitsDistinctWording(t *testing.T) {
	testCases := []struct {
		name     string
		breadth  int
		expected int
	}{
		{name: "narrowest", breadth: 4, expected: 2 * 2},
		{name: "full", breadth: 1, expected: 10 * 8},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(t, 11, tc.breadth, 0)

			distinct := make(map[string]bool)
			for i := 0; i < 6000; i++ {
				distinct[svc.AssistedMake("Ora", "Pall", false)] = true
			}

			assert.Len(t, distinct, tc.expected)
		})
	}
}

func TestAssistBiasSelectsPassPool(t *testing.T) {
	plain := make(map[string]bool)
	for _, phrase := range plainPassPhrases {
		plain[fmt.Sprintf("Ora %s Pall.", phrase)] = true
	}
	assist := make(map[string]bool)
	for _, phrase := range assistPassPhrases {
		assist[fmt.Sprintf("Ora %s Pall.", phrase)] = true
	}

	t.Run("zero bias stays neutral", func(t *testing.T) {
		svc := newTestService(t, 3, 1, 0)
		for i := 0; i < 300; i++ {
			assert.True(t, plain[svc.Pass("Ora", "Pall")])
		}
	})

	t.Run("full bias borrows assist wording", func(t *testing.T) {
		svc := newTestService(t, 3, 1, 1)
		for i := 0; i < 300; i++ {
			line := svc.Pass("Ora", "Pall")
			assert.True(t, assist[line])
			assert.False(t, plain[line])
		}
	})
}

func TestFixedTemplates(t *testing.T) {
	svc := newTestService(t, 5, 1, 0)

	assert.Equal(t, "The game starts with a jump ball between Ora and Pall. Ora wins possession.",
		svc.JumpBall("Ora", "Pall", "Ora"))
	assert.Equal(t, "Overtime 2 jump ball between Ora and Pall. Pall wins the tip.",
		svc.OvertimeJumpBall(2, "Ora", "Pall", "Pall"))
	assert.Equal(t, "Start of Q1.", svc.PeriodStart(models.PeriodQ1))
	assert.Equal(t, "End of Q4.", svc.PeriodEnd(models.PeriodQ4))
	assert.Equal(t, "Start of OT2.", svc.PeriodStart(models.Overtime(2)))
	assert.Equal(t, "Q4 ends in a tie. Going to OT1.", svc.TieAnnouncement(models.PeriodQ4))
	assert.Equal(t, "OT1 ends in a tie. Going to OT2.", svc.TieAnnouncement(models.Overtime(1)))
	assert.Equal(t, "End of game.", svc.EndOfGame())

	assert.Equal(t, "Ora inbounds the ball to Pall to start the possession.",
		svc.InboundPass("Ora", "Pall"))
	assert.Equal(t, "A bad pass from Ora results in a turnover.", svc.Turnover("Ora"))
	assert.Equal(t, "Ora steals the ball from Pall!", svc.Steal("Ora", "Pall"))
	assert.Equal(t, "Coach Vee calls a timeout.", svc.Timeout("Coach Vee"))
	assert.Equal(t, "The game resumes after a timeout.", svc.Resume())

	assert.Equal(t, "Pall tries a 2-point shot, but is blocked by Ora!",
		svc.Block("Ora", "Pall", false))
	assert.Equal(t, "Pall tries a 3-point shot, but is blocked by Ora!",
		svc.Block("Ora", "Pall", true))
	assert.Equal(t, "Ora is fouled by Pall on a 2-point attempt and will go to the line for two shots.",
		svc.ShootingFoul("Ora", "Pall", false))
	assert.Equal(t, "Ora is fouled by Pall on a 3-point attempt and will go to the line for three shots.",
		svc.ShootingFoul("Ora", "Pall", true))

	assert.Equal(t, "Ora makes the first free throw.", svc.FreeThrowMade("Ora", 1))
	assert.Equal(t, "Ora misses the second free throw.", svc.FreeThrowMissed("Ora", 2))
	assert.Equal(t, "Ora makes the third free throw.", svc.FreeThrowMade("Ora", 3))

	assert.Equal(t, "Offensive rebound by Ora!", svc.OffensiveRebound("Ora"))
	assert.Equal(t, "Defensive rebound by Ora.", svc.DefensiveRebound("Ora"))

	assert.Equal(t, "Substitution by Coach Vee: Ora comes in for Pall.",
		svc.Substitution("Coach Vee", "Ora", "Pall"))
	assert.Equal(t, "Substitution by Coach Vee: Ora comes in for Pall (fouled out).",
		svc.FoulOutSubstitution("Coach Vee", "Ora", "Pall"))
	assert.Equal(t, "Pall commits a 5th foul and is disqualified. Iceland available players: 7.",
		svc.FoulOut("Pall", 5, "Iceland", 7))
	assert.Equal(t, "Iceland has no eligible substitutes and will continue short-handed.",
		svc.ShortHanded("Iceland"))

	assert.Equal(t, "After a VAR review, the previous basket by Pall is overturned due to an offensive foul committed by Pall against Ora before the shot.",
		svc.VAROverturn("Pall", "Ora"))
	assert.Equal(t, "After a VAR review, Pall's basket is downgraded from three to two points (toe on the line).",
		svc.VARDowngrade("Pall"))
	assert.Equal(t, "After a VAR review, Pall's basket is upgraded from two to three points (foot behind the line).",
		svc.VARUpgrade("Pall"))
	assert.Equal(t, "Ora is awarded two free throws (team fouls in bonus).",
		svc.BonusFreeThrows("Ora"))
}
