// Package result computes the hero's net chip outcome for a parsed hand.
package result

import (
	"errors"
	"fmt"

	"github.com/lox/bankroll/internal/history"
	"github.com/lox/bankroll/internal/pots"
)

// ErrPotInvariant is returned when a hand's award lines pay out more
// than the pots contained. That can only come from a parsing or pot
// calculation bug, so it is surfaced rather than folded into a result.
var ErrPotInvariant = errors.New("awards exceed pot total")

// HeroResult returns the hero's net result for the hand in cents:
// everything collected from any pot minus everything contributed across
// all streets. ok is false when the hero is not seated in the hand; the
// hand then contributes nothing to the session (not a zero).
func HeroResult(h *history.Hand, hero string) (net int64, ok bool, err error) {
	if _, seated := h.SeatFor(hero); !seated {
		return 0, false, nil
	}
	if err := CheckInvariant(h); err != nil {
		return 0, false, err
	}
	return h.Awarded(hero) - h.Contributed(hero), true, nil
}

// CheckInvariant rebuilds the hand's pot structure from player
// contributions and verifies the total awarded never exceeds it.
// Awards may legitimately fall short when a site rolls an uncalled
// return into its own accounting, never the other way around.
func CheckInvariant(h *history.Hand) error {
	built := pots.Build(contributions(h))
	if awarded := h.AwardedTotal(); awarded > pots.Total(built) {
		return fmt.Errorf("hand %s: awarded %s of %s contributed: %w",
			h.ID, history.FormatCents(awarded),
			history.FormatCents(pots.Total(built)), ErrPotInvariant)
	}
	return nil
}

// Pots exposes the tiered pot structure for a hand: the main pot capped
// at the smallest all-in commitment, then one side pot per deeper
// all-in tier. A player is treated as all-in when their contribution
// consumed their entire starting stack.
func Pots(h *history.Hand) []pots.Pot {
	return pots.Build(contributions(h))
}

func contributions(h *history.Hand) []pots.Contribution {
	contribs := make([]pots.Contribution, 0, len(h.Seats))
	for _, seat := range h.Seats {
		amount := h.Contributed(seat.Player)
		contribs = append(contribs, pots.Contribution{
			Seat:   seat.Number,
			Amount: amount,
			Folded: h.Folded(seat.Player),
			AllIn:  amount > 0 && amount >= seat.Stack,
		})
	}
	return contribs
}
