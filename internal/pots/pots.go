// Package pots builds main/side pot structure from per-player
// contributions and splits pot awards among tied winners.
package pots

import "sort"

// Pot is one pot layer. Eligible lists the seat numbers that can be
// awarded from it, ascending. Cap is the per-player contribution level
// this pot tops out at; the final (uncapped) pot has Cap 0.
type Pot struct {
	Amount   int64
	Eligible []int
	Cap      int64
}

// Contribution is one player's total commitment to a hand.
type Contribution struct {
	Seat   int
	Amount int64
	Folded bool
	AllIn  bool
}

// Build folds contributions into an ordered list of pots: the main pot
// capped at the smallest all-in amount, then one side pot per further
// all-in tier, then an uncapped pot for whatever remains. Folded
// players' chips count toward pot amounts but never toward eligibility.
func Build(contribs []Contribution) []Pot {
	// ascending distinct all-in tiers
	tierSet := map[int64]bool{}
	for _, c := range contribs {
		if c.AllIn && c.Amount > 0 {
			tierSet[c.Amount] = true
		}
	}
	tiers := make([]int64, 0, len(tierSet))
	for amount := range tierSet {
		tiers = append(tiers, amount)
	}
	sort.Slice(tiers, func(i, j int) bool { return tiers[i] < tiers[j] })

	var pots []Pot
	var prev int64
	for _, level := range tiers {
		pot := Pot{Cap: level}
		for _, c := range contribs {
			slice := min(c.Amount, level) - min(c.Amount, prev)
			if slice > 0 {
				pot.Amount += slice
			}
			if !c.Folded && c.Amount > prev {
				pot.Eligible = append(pot.Eligible, c.Seat)
			}
		}
		if pot.Amount > 0 && len(pot.Eligible) > 0 {
			sort.Ints(pot.Eligible)
			pots = append(pots, pot)
		}
		prev = level
	}

	// residual pot above the deepest all-in tier
	residual := Pot{}
	for _, c := range contribs {
		if c.Amount > prev {
			residual.Amount += c.Amount - prev
			if !c.Folded {
				residual.Eligible = append(residual.Eligible, c.Seat)
			}
		}
	}
	if residual.Amount > 0 && len(residual.Eligible) > 0 {
		sort.Ints(residual.Eligible)
		pots = append(pots, residual)
	}
	return pots
}

// Total sums the amounts across pots.
func Total(pots []Pot) int64 {
	var total int64
	for _, p := range pots {
		total += p.Amount
	}
	return total
}

// Split divides amount evenly among the winning seats. The shares sum
// to exactly amount: any remainder cents go to the lowest seat number,
// mirroring the live-play convention of paying odd chips to the
// earliest position.
func Split(amount int64, winners []int) map[int]int64 {
	if len(winners) == 0 {
		return nil
	}
	seats := append([]int(nil), winners...)
	sort.Ints(seats)

	share := amount / int64(len(seats))
	remainder := amount % int64(len(seats))

	awards := make(map[int]int64, len(seats))
	for _, seat := range seats {
		awards[seat] = share
	}
	awards[seats[0]] += remainder
	return awards
}
