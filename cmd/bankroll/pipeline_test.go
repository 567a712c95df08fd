package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture888 = `#Game No : 1361371073
***** 888poker Hand History for Game 1361371073 *****
$0.01/$0.02 Blinds No Limit Holdem - *** 15 05 2020 21:40:28
Table Osaka 6 Max (Real Money)
Seat 1 is the button
Total number of players : 2
Seat 1: walimay ( $2.14 )
Seat 4: superpippa69 ( $2.02 )
superpippa69 posts small blind [$0.01]
walimay posts big blind [$0.02]
** Dealing down cards **
superpippa69 calls [$0.01]
walimay checks
** Dealing flop ** [ 2s, 7h, Jd ]
walimay bets [$0.02]
superpippa69 calls [$0.02]
** Dealing turn ** [ 5c ]
walimay checks
superpippa69 checks
** Dealing river ** [ 9d ]
walimay checks
superpippa69 bets [$0.04]
walimay calls [$0.04]
** Summary **
superpippa69 collected [ $0.16 ]
`

const fixtureStars = `PokerStars Hand #912000001:  Hold'em No Limit ($0.01/$0.02 USD) - 2020/05/15 21:41:00 ET
Table 'Osaka' 6-max Seat #1 is the button
Seat 1: walimay ($2.14 in chips)
Seat 4: superpippa69 ($2.02 in chips)
superpippa69: posts small blind $0.01
walimay: posts big blind $0.02
*** HOLE CARDS ***
superpippa69: raises $0.04 to $0.06
walimay: folds
Uncalled bet ($0.04) returned to superpippa69
superpippa69 collected $0.04 from pot
*** SUMMARY ***
Total pot $0.04 | Rake $0
`

func writeInput(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestChartCmdEndToEnd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeInput(t, dir, "888_session.txt", fixture888)
	writeInput(t, dir, "pokerstars_session.txt", fixtureStars)

	out := filepath.Join(dir, "out", "session.png")
	cmd := ChartCmd{
		runFlags: runFlags{
			Config: filepath.Join(dir, "absent.hcl"),
			Hero:   "superpippa69",
			Dir:    dir,
			Files:  []string{"888_session.txt", "pokerstars_session.txt"},
		},
		Out: out,
	}
	require.NoError(t, cmd.Run())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}

func TestChartCmdContinuesPastUnknownDialect(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeInput(t, dir, "888_session.txt", fixture888)
	writeInput(t, dir, "partypoker_session.txt", "unrecognized")

	out := filepath.Join(dir, "session.png")
	cmd := ChartCmd{
		runFlags: runFlags{
			Config: filepath.Join(dir, "absent.hcl"),
			Hero:   "superpippa69",
			Dir:    dir,
			Files:  []string{"partypoker_session.txt", "888_session.txt"},
		},
		Out: out,
	}
	require.NoError(t, cmd.Run())

	_, err := os.Stat(out)
	assert.NoError(t, err)
}

func TestChartCmdFailsWhenAllFilesInvalid(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeInput(t, dir, "partypoker_session.txt", "unrecognized")

	cmd := ChartCmd{
		runFlags: runFlags{
			Config: filepath.Join(dir, "absent.hcl"),
			Hero:   "superpippa69",
			Dir:    dir,
			Files:  []string{"partypoker_session.txt"},
		},
		Out: filepath.Join(dir, "session.png"),
	}
	assert.Error(t, cmd.Run())
}

func TestChartCmdFailsWithoutHeroHands(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeInput(t, dir, "888_session.txt", fixture888)

	cmd := ChartCmd{
		runFlags: runFlags{
			Config: filepath.Join(dir, "absent.hcl"),
			Hero:   "nobody_here",
			Dir:    dir,
			Files:  []string{"888_session.txt"},
		},
		Out: filepath.Join(dir, "session.png"),
	}
	assert.Error(t, cmd.Run())
}

func TestExportCmdEndToEnd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeInput(t, dir, "888_session.txt", fixture888)

	out := filepath.Join(dir, "session.phhs")
	cmd := ExportCmd{
		runFlags: runFlags{
			Config: filepath.Join(dir, "absent.hcl"),
			Hero:   "superpippa69",
			Dir:    dir,
			Files:  []string{"888_session.txt"},
		},
		Out: out,
	}
	require.NoError(t, cmd.Run())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `hand = "1361371073"`)
}
