// Package session merges hands from all input files into one
// chronological running-total series of hero winnings.
package session

import (
	"errors"
	"sort"
	"time"

	"github.com/lox/bankroll/internal/history"
	"github.com/lox/bankroll/internal/result"
)

// ErrNoHeroHands is returned when no parsed hand seats the hero; the
// run has nothing to plot.
var ErrNoHeroHands = errors.New("no hands involving hero")

// Point is one hand's entry in the series.
type Point struct {
	Timestamp  time.Time
	HandID     string
	Table      string
	Net        int64 // this hand's result, cents
	Cumulative int64 // running total, cents
}

// Series is the hero's bankroll over time, non-decreasing in timestamp.
type Series []Point

// Aggregate filters to hands the hero played, orders them by timestamp
// (ties broken by input-file order, then hand id, so the series is the
// same on every run) and produces the prefix-sum of per-hand results.
func Aggregate(hands []history.Hand, hero string) (Series, error) {
	type entry struct {
		hand *history.Hand
		net  int64
	}

	entries := make([]entry, 0, len(hands))
	for i := range hands {
		net, ok, err := result.HeroResult(&hands[i], hero)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		entries = append(entries, entry{hand: &hands[i], net: net})
	}
	if len(entries) == 0 {
		return nil, ErrNoHeroHands
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].hand, entries[j].hand
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.Before(b.Timestamp)
		}
		if a.FileIndex != b.FileIndex {
			return a.FileIndex < b.FileIndex
		}
		return a.ID < b.ID
	})

	series := make(Series, len(entries))
	var running int64
	for i, e := range entries {
		running += e.net
		series[i] = Point{
			Timestamp:  e.hand.Timestamp,
			HandID:     e.hand.ID,
			Table:      e.hand.Table,
			Net:        e.net,
			Cumulative: running,
		}
	}
	return series, nil
}

// Total returns the final cumulative value, zero for an empty series.
func (s Series) Total() int64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].Cumulative
}
