package models

// StatChange is one signed adjustment to a single player's statistic.
// Team names the player's team so applying a change moves the team line
// in lockstep with the player line.
type StatChange struct {
	// Team is the name of the team whose line moves with this change
	Team string

	// Player is the name of the player whose line moves with this change
	Player string

	// Stat is the statistic being adjusted
	Stat Stat

	// Amount is the signed adjustment
	Amount int
}

// Delta is the ordered list of stat changes produced by one event.
// Deltas are the only way game statistics move; recording them makes
// every mutation exactly invertible.
type Delta []StatChange

// Inverse returns the delta that exactly undoes d: amounts negated,
// changes in reverse order.
func (d Delta) Inverse() Delta {
	inv := make(Delta, 0, len(d))
	for i := len(d) - 1; i >= 0; i-- {
		c := d[i]
		c.Amount = -c.Amount
		inv = append(inv, c)
	}
	return inv
}
