// Package phh encodes parsed hands in PHH (poker hand history) TOML
// format for interchange with other tooling.
package phh

import (
	"fmt"
	"sort"

	"github.com/lox/bankroll/internal/history"
)

// HandHistory is one hand in PHH form. Monetary values are in cents.
type HandHistory struct {
	Variant           string   `toml:"variant"`
	Table             string   `toml:"table,omitempty"`
	SeatCount         int      `toml:"seat_count,omitempty"`
	Seats             []int    `toml:"seats,omitempty"`
	BlindsOrStraddles []int64  `toml:"blinds_or_straddles"`
	StartingStacks    []int64  `toml:"starting_stacks"`
	Winnings          []int64  `toml:"winnings,omitempty"`
	Actions           []string `toml:"actions"`
	Players           []string `toml:"players,omitempty"`
	HandID            string   `toml:"hand"`
	Time              string   `toml:"time,omitempty"`
	Day               int      `toml:"day,omitempty"`
	Month             int      `toml:"month,omitempty"`
	Year              int      `toml:"year,omitempty"`
}

// FromHand converts a parsed hand to PHH form. Players are indexed
// p1..pN in seat order, as the format requires.
func FromHand(h *history.Hand) *HandHistory {
	seats := append([]history.Seat(nil), h.Seats...)
	sort.Slice(seats, func(i, j int) bool { return seats[i].Number < seats[j].Number })

	index := make(map[string]int, len(seats))
	out := &HandHistory{
		Variant:   "NT", // no-limit Texas hold'em
		Table:     h.Table,
		SeatCount: len(seats),
		HandID:    h.ID,
		Time:      h.Timestamp.Format("15:04:05"),
		Day:       h.Timestamp.Day(),
		Month:     int(h.Timestamp.Month()),
		Year:      h.Timestamp.Year(),
	}
	for i, s := range seats {
		index[s.Player] = i
		out.Seats = append(out.Seats, s.Number)
		out.Players = append(out.Players, s.Player)
		out.StartingStacks = append(out.StartingStacks, s.Stack)
	}
	out.BlindsOrStraddles = blinds(h, seats, index)

	for _, a := range h.Actions {
		if formatted, ok := formatAction(index[a.Player], a); ok {
			out.Actions = append(out.Actions, formatted)
		}
	}

	out.Winnings = make([]int64, len(seats))
	for _, award := range h.Awards {
		if i, ok := index[award.Player]; ok {
			out.Winnings[i] += award.Amount
		}
	}
	return out
}

// blinds places each player's blind post at their seat index.
func blinds(h *history.Hand, seats []history.Seat, index map[string]int) []int64 {
	posts := make([]int64, len(seats))
	for _, a := range h.Actions {
		if a.Street == history.Preflop && a.Verb == history.Post {
			if i, ok := index[a.Player]; ok {
				posts[i] += a.Amount
			}
		}
	}
	return posts
}

// formatAction converts the normalized action vocabulary into PHH
// action strings. Blind posts are carried in blinds_or_straddles
// rather than the action list.
func formatAction(playerIdx int, a history.Action) (string, bool) {
	player := fmt.Sprintf("p%d", playerIdx+1)
	switch a.Verb {
	case history.Fold:
		return fmt.Sprintf("%s f", player), true
	case history.Check, history.Call:
		return fmt.Sprintf("%s cc", player), true
	case history.Bet, history.Raise:
		if a.Amount <= 0 {
			return "", false
		}
		return fmt.Sprintf("%s cbr %d", player, a.Amount), true
	case history.Post:
		return "", false
	default:
		return "", false
	}
}
