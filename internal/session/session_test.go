package session

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/bankroll/internal/history"
)

func at(minute int) time.Time {
	return time.Date(2020, 5, 15, 21, minute, 0, 0, time.UTC)
}

// winHand builds a hand where hero bets `risk` and collects `collect`
// against a single caller, so hero's net is collect-risk.
func winHand(id string, ts time.Time, fileIndex int, risk, collect int64) history.Hand {
	h := history.Hand{
		ID:        id,
		Timestamp: ts,
		Table:     "Osaka",
		FileIndex: fileIndex,
		Seats: []history.Seat{
			{Number: 1, Player: "hero", Stack: 10000},
			{Number: 2, Player: "villain", Stack: 10000},
		},
		Actions: []history.Action{
			{Street: history.Preflop, Player: "hero", Verb: history.Bet, Amount: risk},
			{Street: history.Preflop, Player: "villain", Verb: history.Call, Amount: risk},
		},
	}
	if collect > 0 {
		h.Awards = []history.Award{{Player: "hero", Amount: collect}}
	} else {
		h.Awards = []history.Award{{Player: "villain", Amount: 2 * risk}}
	}
	return h
}

// foldHand builds a hand where hero posts a blind and folds.
func foldHand(id string, ts time.Time, fileIndex int, blind int64) history.Hand {
	return history.Hand{
		ID:        id,
		Timestamp: ts,
		Table:     "Osaka",
		FileIndex: fileIndex,
		Seats: []history.Seat{
			{Number: 1, Player: "hero", Stack: 10000},
			{Number: 2, Player: "villain", Stack: 10000},
		},
		Actions: []history.Action{
			{Street: history.Preflop, Player: "hero", Verb: history.Post, Amount: blind},
			{Street: history.Preflop, Player: "villain", Verb: history.Post, Amount: 2 * blind},
			{Street: history.Preflop, Player: "hero", Verb: history.Fold},
		},
		Awards: []history.Award{{Player: "villain", Amount: 3 * blind}},
	}
}

// absentHand builds a hand the hero did not play.
func absentHand(id string, ts time.Time) history.Hand {
	return history.Hand{
		ID:        id,
		Timestamp: ts,
		Seats: []history.Seat{
			{Number: 2, Player: "villain", Stack: 10000},
			{Number: 3, Player: "other", Stack: 10000},
		},
		Actions: []history.Action{
			{Street: history.Preflop, Player: "villain", Verb: history.Bet, Amount: 10},
			{Street: history.Preflop, Player: "other", Verb: history.Call, Amount: 10},
		},
		Awards: []history.Award{{Player: "other", Amount: 20}},
	}
}

// Hero wins +50, loses -20, folds a blind for -5: running total 50, 30, 25.
func TestAggregateRunningTotal(t *testing.T) {
	t.Parallel()

	hands := []history.Hand{
		winHand("h1", at(1), 0, 50, 100),
		winHand("h2", at(2), 0, 20, 0),
		foldHand("h3", at(3), 0, 5),
	}

	series, err := Aggregate(hands, "hero")
	require.NoError(t, err)
	require.Len(t, series, 3)

	assert.Equal(t, int64(50), series[0].Cumulative)
	assert.Equal(t, int64(30), series[1].Cumulative)
	assert.Equal(t, int64(25), series[2].Cumulative)
	assert.Equal(t, int64(25), series.Total())
}

// Hands from two files with overlapping time ranges merge purely by
// timestamp, not by file grouping.
func TestAggregateMergesAcrossFiles(t *testing.T) {
	t.Parallel()

	hands := []history.Hand{
		winHand("a1", at(1), 0, 10, 20),
		winHand("a3", at(5), 0, 10, 20),
		winHand("b2", at(3), 1, 10, 20),
		winHand("b4", at(7), 1, 10, 20),
	}

	series, err := Aggregate(hands, "hero")
	require.NoError(t, err)
	require.Len(t, series, 4)

	assert.Equal(t, []string{"a1", "b2", "a3", "b4"},
		[]string{series[0].HandID, series[1].HandID, series[2].HandID, series[3].HandID})
}

func TestAggregateTimestampsMonotonic(t *testing.T) {
	t.Parallel()

	hands := []history.Hand{
		winHand("h3", at(9), 0, 10, 20),
		winHand("h1", at(2), 0, 10, 20),
		winHand("h2", at(5), 1, 10, 20),
	}

	series, err := Aggregate(hands, "hero")
	require.NoError(t, err)
	for i := 1; i < len(series); i++ {
		assert.False(t, series[i].Timestamp.Before(series[i-1].Timestamp))
	}
}

func TestAggregateTieBreakByFileThenID(t *testing.T) {
	t.Parallel()

	ts := at(4)
	hands := []history.Hand{
		winHand("z9", ts, 1, 10, 20),
		winHand("m5", ts, 0, 10, 20),
		winHand("a1", ts, 1, 10, 20),
	}

	series, err := Aggregate(hands, "hero")
	require.NoError(t, err)
	assert.Equal(t, []string{"m5", "a1", "z9"},
		[]string{series[0].HandID, series[1].HandID, series[2].HandID})
}

func TestAggregateExcludesAbsentHands(t *testing.T) {
	t.Parallel()

	hands := []history.Hand{
		winHand("h1", at(1), 0, 50, 100),
		absentHand("h2", at(2)),
		winHand("h3", at(3), 0, 20, 0),
	}

	series, err := Aggregate(hands, "hero")
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, "h1", series[0].HandID)
	assert.Equal(t, "h3", series[1].HandID)
}

func TestAggregateNoHeroHands(t *testing.T) {
	t.Parallel()

	hands := []history.Hand{absentHand("h1", at(1))}
	_, err := Aggregate(hands, "hero")
	assert.True(t, errors.Is(err, ErrNoHeroHands))
}

func TestAggregateIdempotent(t *testing.T) {
	t.Parallel()

	hands := []history.Hand{
		winHand("h2", at(2), 1, 20, 0),
		winHand("h1", at(1), 0, 50, 100),
		foldHand("h3", at(3), 0, 5),
	}

	first, err := Aggregate(hands, "hero")
	require.NoError(t, err)
	second, err := Aggregate(hands, "hero")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAggregatePropagatesInvariantViolation(t *testing.T) {
	t.Parallel()

	broken := winHand("h1", at(1), 0, 10, 20)
	broken.Awards = []history.Award{{Player: "hero", Amount: 500}}

	_, err := Aggregate([]history.Hand{broken}, "hero")
	assert.Error(t, err)
}
