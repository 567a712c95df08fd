package history

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// dialect888 parses 888poker exports. A hand begins with a "#Game No"
// line followed by the starred header; amounts on action lines are
// incremental (the site prints the chips added by each action).
type dialect888 struct{}

var (
	d888GameNo   = regexp.MustCompile(`^#Game No\s*:\s*(\d+)`)
	d888Header   = regexp.MustCompile(`^\*{3,} 888poker Hand History for Game (\d+) \*{3,}`)
	d888DateLine = regexp.MustCompile(`(\d{2}) (\d{2}) (\d{4}) (\d{2}):(\d{2}):(\d{2})`)
	d888Seat     = regexp.MustCompile(`^Seat (\d+): (.+?) \( ?([£$€][\d,.]+) ?\)\s*$`)
	d888Action   = regexp.MustCompile(`^(.+?) (posts small blind|posts big blind|posts dead blind|posts ante|posts|bets|calls|raises) \[\s*([^\]]+?)\s*\]`)
	d888NoAmount = regexp.MustCompile(`^(.+?) (folds|checks)\s*$`)
	d888Collect  = regexp.MustCompile(`^(.+?) collected \[\s*([^\]]+?)\s*\]`)
	d888Street   = regexp.MustCompile(`^\*\* Dealing (down cards|flop|turn|river) \*\*`)
)

func (dialect888) Name() string { return "888" }

func (dialect888) SplitHands(raw string) []string {
	// Older exports omit the "#Game No" line, so fall back to the
	// starred header as the hand boundary.
	starts := d888GameNo
	if !d888GameNo.MatchString(firstMatchingLine(raw, d888GameNo, d888Header)) {
		starts = d888Header
	}
	return splitAtLineStarts(raw, starts)
}

// firstMatchingLine returns the first line matching any of the given
// patterns, or "" when none match.
func firstMatchingLine(raw string, patterns ...*regexp.Regexp) string {
	for _, line := range strings.Split(raw, "\n") {
		for _, p := range patterns {
			if p.MatchString(line) {
				return line
			}
		}
	}
	return ""
}

// splitAtLineStarts slices raw into blocks beginning at each line that
// matches starts. Text before the first boundary is discarded.
func splitAtLineStarts(raw string, starts *regexp.Regexp) []string {
	var blocks []string
	var current []string
	inHand := false
	for _, line := range strings.Split(raw, "\n") {
		if starts.MatchString(line) {
			if inHand {
				blocks = append(blocks, strings.Join(current, "\n"))
			}
			current = current[:0]
			inHand = true
		}
		if inHand {
			current = append(current, line)
		}
	}
	if inHand && len(current) > 0 {
		blocks = append(blocks, strings.Join(current, "\n"))
	}
	return blocks
}

func (d dialect888) ParseHand(block string) (*Hand, error) {
	hand := &Hand{Dialect: d.Name()}
	street := Preflop
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimRight(line, "\r ")
		switch {
		case hand.ID == "" && d888GameNo.MatchString(line):
			hand.ID = d888GameNo.FindStringSubmatch(line)[1]

		case hand.ID == "" && d888Header.MatchString(line):
			hand.ID = d888Header.FindStringSubmatch(line)[1]

		case strings.Contains(line, "Blinds"):
			amounts := amountRe.FindAllString(line, -1)
			if len(amounts) >= 2 {
				hand.SmallBlind, _ = ParseAmount(amounts[0])
				hand.BigBlind, _ = ParseAmount(amounts[1])
			}
			if m := d888DateLine.FindStringSubmatch(line); m != nil {
				// 888 prints "DD MM YYYY hh:mm:ss" with no zone
				ts, err := time.Parse("02 01 2006 15:04:05",
					fmt.Sprintf("%s %s %s %s:%s:%s", m[1], m[2], m[3], m[4], m[5], m[6]))
				if err != nil {
					return nil, fmt.Errorf("bad timestamp: %w", err)
				}
				hand.Timestamp = ts.UTC()
			}

		case strings.HasPrefix(line, "Table "):
			fields := strings.Fields(line)
			if len(fields) >= 2 {
				hand.Table = strings.Trim(fields[1], "'")
			}

		case d888Seat.MatchString(line):
			m := d888Seat.FindStringSubmatch(line)
			stack, err := ParseAmount(m[3])
			if err != nil {
				return nil, fmt.Errorf("seat line %q: %w", line, err)
			}
			num := 0
			fmt.Sscanf(m[1], "%d", &num)
			hand.Seats = append(hand.Seats, Seat{Number: num, Player: m[2], Stack: stack})

		case d888Street.MatchString(line):
			switch d888Street.FindStringSubmatch(line)[1] {
			case "flop":
				street = Flop
			case "turn":
				street = Turn
			case "river":
				street = River
			}

		case d888Collect.MatchString(line):
			m := d888Collect.FindStringSubmatch(line)
			amount, err := ParseAmount(m[2])
			if err != nil {
				return nil, fmt.Errorf("collect line %q: %w", line, err)
			}
			hand.Awards = append(hand.Awards, Award{Player: m[1], Amount: amount})

		case d888Action.MatchString(line):
			m := d888Action.FindStringSubmatch(line)
			amount, err := ParseAmount(m[3])
			if err != nil {
				return nil, fmt.Errorf("action line %q: %w", line, err)
			}
			verb := Post
			switch m[2] {
			case "bets":
				verb = Bet
			case "calls":
				verb = Call
			case "raises":
				verb = Raise
			}
			hand.Actions = append(hand.Actions, Action{
				Street: street, Player: m[1], Verb: verb, Amount: amount,
			})

		case d888NoAmount.MatchString(line):
			m := d888NoAmount.FindStringSubmatch(line)
			verb := Fold
			if m[2] == "checks" {
				verb = Check
			}
			hand.Actions = append(hand.Actions, Action{Street: street, Player: m[1], Verb: verb})
		}
	}

	if hand.ID == "" {
		return nil, fmt.Errorf("no game number in block")
	}
	if hand.Timestamp.IsZero() {
		return nil, fmt.Errorf("hand %s: no timestamp line", hand.ID)
	}
	if len(hand.Seats) == 0 {
		return nil, fmt.Errorf("hand %s: no seat lines", hand.ID)
	}
	return hand, nil
}
