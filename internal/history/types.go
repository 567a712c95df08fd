// Package history parses plain-text poker hand-history exports into
// structured hand records. Each supported site has its own text dialect;
// detection is keyed on the export's file-name prefix.
package history

import "time"

// Street identifies the betting round an action belongs to.
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return "unknown"
	}
}

// Verb is the normalized action vocabulary shared by all dialects.
type Verb string

const (
	Post  Verb = "post"
	Bet   Verb = "bet"
	Call  Verb = "call"
	Raise Verb = "raise"
	Check Verb = "check"
	Fold  Verb = "fold"
)

// Action is a single player action. Amount is the incremental number of
// cents the action put into the pot (raises are recorded as the delta
// over the player's prior commitment on that street, regardless of how
// the site prints them).
type Action struct {
	Street Street
	Player string
	Verb   Verb
	Amount int64
}

// Seat describes a player's starting state for one hand.
type Seat struct {
	Number int
	Player string
	Stack  int64
}

// Award is one pot-collection line: the amount a player was paid from
// the main pot or a side pot at the end of the hand.
type Award struct {
	Player string
	Amount int64
	Pot    string // "main", "side" or "" when the site does not label it
}

// Refund is an uncalled bet returned to a player.
type Refund struct {
	Player string
	Amount int64
}

// Hand is one parsed hand. Immutable after parsing.
type Hand struct {
	ID         string
	Dialect    string
	Timestamp  time.Time // normalized to UTC
	Table      string
	SmallBlind int64
	BigBlind   int64
	Seats      []Seat
	Actions    []Action
	Awards     []Award
	Refunds    []Refund

	// FileIndex records which input file (in configured order) the hand
	// came from; it is the first tie-break when timestamps collide.
	FileIndex int
}

// SeatFor returns the seat occupied by player, if any.
func (h *Hand) SeatFor(player string) (Seat, bool) {
	for _, s := range h.Seats {
		if s.Player == player {
			return s, true
		}
	}
	return Seat{}, false
}

// Contributed returns the total cents player put into the hand across
// all streets, net of any uncalled bet returned to them.
func (h *Hand) Contributed(player string) int64 {
	var total int64
	for _, a := range h.Actions {
		if a.Player == player {
			total += a.Amount
		}
	}
	for _, r := range h.Refunds {
		if r.Player == player {
			total -= r.Amount
		}
	}
	return total
}

// ContributedTotal returns the total cents all players put in.
func (h *Hand) ContributedTotal() int64 {
	var total int64
	for _, a := range h.Actions {
		total += a.Amount
	}
	for _, r := range h.Refunds {
		total -= r.Amount
	}
	return total
}

// Awarded returns the total cents player collected from all pots.
func (h *Hand) Awarded(player string) int64 {
	var total int64
	for _, a := range h.Awards {
		if a.Player == player {
			total += a.Amount
		}
	}
	return total
}

// AwardedTotal returns the total cents collected across all players.
func (h *Hand) AwardedTotal() int64 {
	var total int64
	for _, a := range h.Awards {
		total += a.Amount
	}
	return total
}

// Folded reports whether player folded at any point in the hand.
func (h *Hand) Folded(player string) bool {
	for _, a := range h.Actions {
		if a.Player == player && a.Verb == Fold {
			return true
		}
	}
	return false
}
