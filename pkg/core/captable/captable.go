// Package captable simulates ownership dilution across priced funding rounds.
package captable

import (
	"errors"
	"fmt"
)

// ShareClass distinguishes common, preferred and option-pool shares.
type ShareClass string

const (
	ClassCommon    ShareClass = "common"
	ClassPreferred ShareClass = "preferred"
	ClassPool      ShareClass = "pool"
)

// PoolHolderName is the cap-table line that holds the option pool.
const PoolHolderName = "Option Pool"

// ErrInvalidRound is returned when a round cannot be priced.
var ErrInvalidRound = errors.New("captable: invalid round")

// Holder is one line of the cap table.
type Holder struct {
	Name   string     `json:"name"`
	Class  ShareClass `json:"class"`
	Shares float64    `json:"shares"`
}

// Round is a priced equity round.
type Round struct {
	Name              string  `json:"name"`
	Investor          string  `json:"investor,omitempty"` // defaults to "<Name> Investors"
	PreMoneyValuation float64 `json:"preMoneyValuation"`
	Investment        float64 `json:"investment"`
	OptionPoolPercent float64 `json:"optionPoolPercent"` // target pool size, post-money, 0-100
}

// Ownership is a holder's position after a round.
type Ownership struct {
	Holder  string     `json:"holder"`
	Class   ShareClass `json:"class"`
	Shares  float64    `json:"shares"`
	Percent float64    `json:"percent"`
}

// RoundResult describes the cap table after one round.
type RoundResult struct {
	Round              string      `json:"round"`
	PricePerShare      float64     `json:"pricePerShare"`
	PreRoundShares     float64     `json:"preRoundShares"`
	PoolTopUp          float64     `json:"poolTopUp"`
	InvestorShares     float64     `json:"investorShares"`
	PostMoneyValuation float64     `json:"postMoneyValuation"`
	TotalShares        float64     `json:"totalShares"`
	Table              []Ownership `json:"table"`
}

// Simulate applies rounds in order to the starting holders. The option pool is
// topped up before the round (diluting existing holders only) so that it
// equals OptionPoolPercent of the post-money share count.
func Simulate(holders []Holder, rounds []Round) ([]RoundResult, error) {
	table := make([]Holder, len(holders))
	copy(table, holders)

	results := make([]RoundResult, 0, len(rounds))
	for i, r := range rounds {
		res, next, err := applyRound(table, r)
		if err != nil {
			return nil, fmt.Errorf("round %d (%s): %w", i+1, r.Name, err)
		}
		table = next
		results = append(results, res)
	}
	return results, nil
}

func applyRound(table []Holder, r Round) (RoundResult, []Holder, error) {
	if r.PreMoneyValuation <= 0 {
		return RoundResult{}, nil, fmt.Errorf("%w: pre-money valuation must be positive", ErrInvalidRound)
	}
	if r.Investment < 0 {
		return RoundResult{}, nil, fmt.Errorf("%w: investment must not be negative", ErrInvalidRound)
	}

	var existing, pool float64
	for _, h := range table {
		existing += h.Shares
		if h.Class == ClassPool {
			pool += h.Shares
		}
	}
	if existing-pool <= 0 {
		return RoundResult{}, nil, fmt.Errorf("%w: no shares outstanding", ErrInvalidRound)
	}

	// 1. Investor and pool fractions of post-money
	investorFrac := r.Investment / (r.PreMoneyValuation + r.Investment)
	poolFrac := r.OptionPoolPercent / 100
	if investorFrac+poolFrac >= 1 {
		return RoundResult{}, nil, fmt.Errorf("%w: investor and pool take %.1f%% of the company",
			ErrInvalidRound, (investorFrac+poolFrac)*100)
	}

	// 2. Solve total = (existing - pool) / (1 - f - p); never shrink the pool
	total := (existing - pool) / (1 - investorFrac - poolFrac)
	topUp := poolFrac*total - pool
	if topUp < 0 {
		topUp = 0
		total = existing / (1 - investorFrac)
	}
	investorShares := investorFrac * total

	// 3. Price is set on the pre-money fully diluted count (including top-up)
	price := r.PreMoneyValuation / (existing + topUp)

	next := make([]Holder, len(table))
	copy(next, table)
	if topUp > 0 {
		next = addShares(next, PoolHolderName, ClassPool, topUp)
	}
	investor := r.Investor
	if investor == "" {
		investor = r.Name + " Investors"
	}
	if investorShares > 0 {
		next = addShares(next, investor, ClassPreferred, investorShares)
	}

	res := RoundResult{
		Round:              r.Name,
		PricePerShare:      price,
		PreRoundShares:     existing,
		PoolTopUp:          topUp,
		InvestorShares:     investorShares,
		PostMoneyValuation: price * total,
		TotalShares:        total,
		Table:              ownershipTable(next, total),
	}
	return res, next, nil
}

func addShares(table []Holder, name string, class ShareClass, shares float64) []Holder {
	for i := range table {
		if table[i].Name == name {
			table[i].Shares += shares
			return table
		}
	}
	return append(table, Holder{Name: name, Class: class, Shares: shares})
}

func ownershipTable(table []Holder, total float64) []Ownership {
	out := make([]Ownership, 0, len(table))
	for _, h := range table {
		out = append(out, Ownership{
			Holder:  h.Name,
			Class:   h.Class,
			Shares:  h.Shares,
			Percent: h.Shares / total * 100,
		})
	}
	return out
}
