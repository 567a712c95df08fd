package history

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// dialectStars parses PokerStars exports. Raises carry to-amount
// semantics ("raises $X to $Y"), so the parser tracks per-street
// commitments to record the incremental delta. Everything from the
// "*** SUMMARY ***" marker on restates earlier lines and is ignored.
type dialectStars struct{}

var (
	starsHeader = regexp.MustCompile(`^PokerStars (?:Zoom )?Hand #(\d+):\s+(.+?)\(([£$€][\d,.]+)/([£$€][\d,.]+)(?: [A-Z]{3})?\) - (\d{4})/(\d{2})/(\d{2}) (\d{2}):(\d{2}):(\d{2})(?: ([A-Z]{1,5}))?`)
	starsTable  = regexp.MustCompile(`^Table '([^']+)'`)
	starsSeat   = regexp.MustCompile(`^Seat (\d+): (.+?) \(([£$€][\d,.]+) in chips\)`)
	starsPost   = regexp.MustCompile(`^(.+?): posts (?:small blind|big blind|small & big blinds|the ante) ([£$€][\d,.]+)`)
	starsBet    = regexp.MustCompile(`^(.+?): bets ([£$€][\d,.]+)`)
	starsCall   = regexp.MustCompile(`^(.+?): calls ([£$€][\d,.]+)`)
	starsRaise  = regexp.MustCompile(`^(.+?): raises ([£$€][\d,.]+) to ([£$€][\d,.]+)`)
	starsCheck  = regexp.MustCompile(`^(.+?): checks`)
	starsFold   = regexp.MustCompile(`^(.+?): folds`)
	starsUncall = regexp.MustCompile(`^Uncalled bet \(([£$€][\d,.]+)\) returned to (.+)$`)
	starsWon    = regexp.MustCompile(`^(.+?) collected ([£$€][\d,.]+) from (pot|main pot|side pot(?:-\d+)?)`)
	starsStreet = regexp.MustCompile(`^\*\*\* (HOLE CARDS|FLOP|TURN|RIVER|SHOW DOWN|SUMMARY) \*\*`)
)

// starsZones maps the zone abbreviations PokerStars stamps hands with
// to fixed UTC offsets. Fixed offsets keep cross-file ordering
// consistent even where the abbreviation is DST-ambiguous.
var starsZones = map[string]*time.Location{
	"ET":   time.FixedZone("ET", -5*3600),
	"CT":   time.FixedZone("CT", -6*3600),
	"MT":   time.FixedZone("MT", -7*3600),
	"PT":   time.FixedZone("PT", -8*3600),
	"GMT":  time.UTC,
	"UTC":  time.UTC,
	"WET":  time.FixedZone("WET", 0),
	"CET":  time.FixedZone("CET", 1*3600),
	"EET":  time.FixedZone("EET", 2*3600),
	"MSK":  time.FixedZone("MSK", 3*3600),
	"BRT":  time.FixedZone("BRT", -3*3600),
	"AEST": time.FixedZone("AEST", 10*3600),
}

func (dialectStars) Name() string { return "pokerstars" }

func (dialectStars) SplitHands(raw string) []string {
	return splitAtLineStarts(raw, starsHeader)
}

func (d dialectStars) ParseHand(block string) (*Hand, error) {
	hand := &Hand{Dialect: d.Name()}
	street := Preflop
	// per-player commitment on the current street, for raise deltas
	committed := map[string]int64{}

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimRight(line, "\r ")

		if m := starsStreet.FindStringSubmatch(line); m != nil {
			if m[1] == "SUMMARY" {
				break
			}
			// blind posts count toward preflop raise-to amounts, so the
			// HOLE CARDS marker must not clear commitments
			switch m[1] {
			case "FLOP":
				street = Flop
			case "TURN":
				street = Turn
			case "RIVER":
				street = River
			default:
				continue
			}
			committed = map[string]int64{}
			continue
		}

		switch {
		case hand.ID == "" && starsHeader.MatchString(line):
			m := starsHeader.FindStringSubmatch(line)
			hand.ID = m[1]
			hand.SmallBlind, _ = ParseAmount(m[3])
			hand.BigBlind, _ = ParseAmount(m[4])
			loc := time.UTC
			if m[11] != "" {
				if z, ok := starsZones[m[11]]; ok {
					loc = z
				}
			}
			ts, err := time.ParseInLocation("2006/01/02 15:04:05",
				fmt.Sprintf("%s/%s/%s %s:%s:%s", m[5], m[6], m[7], m[8], m[9], m[10]), loc)
			if err != nil {
				return nil, fmt.Errorf("bad timestamp: %w", err)
			}
			hand.Timestamp = ts.UTC()

		case starsTable.MatchString(line):
			hand.Table = starsTable.FindStringSubmatch(line)[1]

		case starsSeat.MatchString(line):
			m := starsSeat.FindStringSubmatch(line)
			stack, err := ParseAmount(m[3])
			if err != nil {
				return nil, fmt.Errorf("seat line %q: %w", line, err)
			}
			num := 0
			fmt.Sscanf(m[1], "%d", &num)
			hand.Seats = append(hand.Seats, Seat{Number: num, Player: m[2], Stack: stack})

		case starsUncall.MatchString(line):
			m := starsUncall.FindStringSubmatch(line)
			amount, err := ParseAmount(m[1])
			if err != nil {
				return nil, fmt.Errorf("uncalled line %q: %w", line, err)
			}
			hand.Refunds = append(hand.Refunds, Refund{Player: m[2], Amount: amount})

		case starsWon.MatchString(line):
			m := starsWon.FindStringSubmatch(line)
			amount, err := ParseAmount(m[2])
			if err != nil {
				return nil, fmt.Errorf("collect line %q: %w", line, err)
			}
			pot := "main"
			if strings.HasPrefix(m[3], "side") {
				pot = "side"
			}
			hand.Awards = append(hand.Awards, Award{Player: m[1], Amount: amount, Pot: pot})

		case starsRaise.MatchString(line):
			m := starsRaise.FindStringSubmatch(line)
			to, err := ParseAmount(m[3])
			if err != nil {
				return nil, fmt.Errorf("raise line %q: %w", line, err)
			}
			delta := to - committed[m[1]]
			committed[m[1]] = to
			hand.Actions = append(hand.Actions, Action{
				Street: street, Player: m[1], Verb: Raise, Amount: delta,
			})

		case starsPost.MatchString(line):
			m := starsPost.FindStringSubmatch(line)
			amount, err := ParseAmount(m[2])
			if err != nil {
				return nil, fmt.Errorf("post line %q: %w", line, err)
			}
			committed[m[1]] += amount
			hand.Actions = append(hand.Actions, Action{
				Street: street, Player: m[1], Verb: Post, Amount: amount,
			})

		case starsBet.MatchString(line):
			m := starsBet.FindStringSubmatch(line)
			amount, err := ParseAmount(m[2])
			if err != nil {
				return nil, fmt.Errorf("bet line %q: %w", line, err)
			}
			committed[m[1]] += amount
			hand.Actions = append(hand.Actions, Action{
				Street: street, Player: m[1], Verb: Bet, Amount: amount,
			})

		case starsCall.MatchString(line):
			m := starsCall.FindStringSubmatch(line)
			amount, err := ParseAmount(m[2])
			if err != nil {
				return nil, fmt.Errorf("call line %q: %w", line, err)
			}
			committed[m[1]] += amount
			hand.Actions = append(hand.Actions, Action{
				Street: street, Player: m[1], Verb: Call, Amount: amount,
			})

		case starsFold.MatchString(line):
			m := starsFold.FindStringSubmatch(line)
			hand.Actions = append(hand.Actions, Action{Street: street, Player: m[1], Verb: Fold})

		case starsCheck.MatchString(line):
			m := starsCheck.FindStringSubmatch(line)
			hand.Actions = append(hand.Actions, Action{Street: street, Player: m[1], Verb: Check})
		}
	}

	if hand.ID == "" {
		return nil, fmt.Errorf("no hand header in block")
	}
	if len(hand.Seats) == 0 {
		return nil, fmt.Errorf("hand %s: no seat lines", hand.ID)
	}
	return hand, nil
}
