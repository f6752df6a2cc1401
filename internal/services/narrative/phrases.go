package narrative

// Phrase pools for play-by-play wording. A game narrows most pools to a
// per-game sub-lexicon sized by the difficulty's lexicon breadth; the plain
// ball-movement pool is never narrowed.
var (
	assistPassPhrases = []string{
		"passed the ball to",
		"dished it to",
		"fed",
		"kicked it out to",
		"delivered the ball to",
		"lobbed it to",
		"swung it over to",
		"found",
		"dropped it off to",
		"set up",
	}

	receiverPassPhrases = []string{
		"gets a sharp pass from",
		"receives a quick pass from",
		"is set up by",
		"catches a perfect pass from",
		"takes a pass from",
		"is found by",
		"is fed by",
		"is delivered the ball by",
		"is kicked the ball by",
	}

	plainPassPhrases = []string{
		"passes to",
		"sends it to",
		"plays it to",
		"moves it to",
		"rotates it to",
		"pushes it to",
	}

	madeTwoPhrases = []string{
		"finishes with a mid-range jump shot.",
		"finishes with a layup at the rim.",
		"knocks down a successful 2-point jump shot.",
		"attempted a 3-pointer and made it, but stepped on the 3-point line.",
		"dunks with one hand.",
		"dunks with two hands.",
		"drives to the basket and scores with a layup.",
		"pulls up for a mid-range jumper and hits it.",
	}

	madeThreePhrases = []string{
		"is open on the perimeter for a successful 3-point shot.",
		"is in the corner, and makes the 3-point shot.",
		"catches and shoots a successful 3-pointer.",
		"drives and kicks out to a 3-point shooter, who nails it.",
		"tries a very difficult 3-pointer, but makes it.",
		"tries a very difficult 3-pointer, but nails it.",
	}

	missedTwoPhrases = []string{
		"attempts an easy 2-point shot, but misses.",
		"misses a mid-range jump shot.",
		"misses a layup at the rim.",
		"misses a 2-point jump shot.",
		"attempted a 3-pointer but stepped on the 3-point line and missed.",
		"goes up for a dunk but misses.",
		"attempts a dunk but misses.",
		"drives to the basket but misses the layup.",
		"pulls up for a mid-range jumper but misses.",
	}

	missedThreePhrases = []string{
		"attempts an easy 3-point shot, but misses.",
		"is open on the perimeter for a 3-point shot, but misses.",
		"is in the corner, and misses the 3-point shot.",
		"catches and shoots a 3-pointer, but misses.",
		"drives and kicks out to a 3-point shooter, who misses.",
		"tries a very easy 3-pointer, but misses.",
		"tries a very easy 3-pointer, but misses.",
	}
)

// ftOrdinals labels free throws within a trip to the line.
var ftOrdinals = [...]string{"first", "second", "third"}
