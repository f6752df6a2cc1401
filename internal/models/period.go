package models

import "fmt"

// Period numbers the periods of a game: 1 through 4 are the quarters,
// higher values are overtimes.
type Period int

const (
	// PeriodQ1 is the first quarter
	PeriodQ1 Period = 1

	// PeriodQ2 is the second quarter
	PeriodQ2 Period = 2

	// PeriodQ3 is the third quarter
	PeriodQ3 Period = 3

	// PeriodQ4 is the fourth quarter
	PeriodQ4 Period = 4
)

// Overtime returns the k-th overtime period.
func Overtime(k int) Period {
	return Period(4 + k)
}

// IsOvertime reports whether p comes after regulation.
func (p Period) IsOvertime() bool {
	return p > PeriodQ4
}

// OvertimeNumber returns k for the k-th overtime, or 0 during
// regulation.
func (p Period) OvertimeNumber() int {
	if !p.IsOvertime() {
		return 0
	}
	return int(p - PeriodQ4)
}

// Next returns the period that follows p.
func (p Period) Next() Period {
	return p + 1
}

// String renders the scoreboard label: Q1 through Q4, then OT1, OT2
// and so on.
func (p Period) String() string {
	if p.IsOvertime() {
		return fmt.Sprintf("OT%d", p.OvertimeNumber())
	}
	return fmt.Sprintf("Q%d", int(p))
}
