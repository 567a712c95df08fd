package history

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// amountRe matches a currency amount as the sites print them,
// e.g. "$2", "$2.02", "€1,234.50".
var amountRe = regexp.MustCompile(`[£$€]\s?([\d,]+(?:\.\d+)?)`)

// ParseAmount converts a currency string such as "$2.02" into integer
// cents. All arithmetic downstream is in cents so pot splits and
// remainders stay exact.
func ParseAmount(s string) (int64, error) {
	m := amountRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("no currency amount in %q", s)
	}
	return centsFromDecimal(strings.ReplaceAll(m[1], ",", ""))
}

// LastAmount extracts the final currency amount on a line. Some 888
// lines carry more than one amount; the payout is always the last.
func LastAmount(s string) (int64, error) {
	matches := amountRe.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return 0, fmt.Errorf("no currency amount in %q", s)
	}
	return centsFromDecimal(strings.ReplaceAll(matches[len(matches)-1][1], ",", ""))
}

func centsFromDecimal(s string) (int64, error) {
	whole, frac, _ := strings.Cut(s, ".")
	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad amount %q: %w", s, err)
	}
	cents := dollars * 100
	if frac != "" {
		// normalize to exactly two decimal places
		if len(frac) > 2 {
			frac = frac[:2]
		}
		for len(frac) < 2 {
			frac += "0"
		}
		f, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("bad amount %q: %w", s, err)
		}
		cents += f
	}
	return cents, nil
}

// FormatCents renders cents as a dollar string for display.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
